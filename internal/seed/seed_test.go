package seed

import (
	"testing"

	"grantflow-be/internal/entity"
	"grantflow-be/internal/model"
	"grantflow-be/pkg/events"
	"grantflow-be/pkg/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	data, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, data.Prompts)
	assert.NotEmpty(t, data.Templates)

	codes := make(map[string]*model.NotificationType)
	for i := range data.NotificationTypes {
		codes[data.NotificationTypes[i].Code] = &data.NotificationTypes[i]
	}
	for _, code := range []string{
		events.WorkflowSaveFailed,
		events.WorkflowCompleted,
		events.TemplateDownloaded,
		events.CommentPosted,
		events.SystemBroadcast,
	} {
		assert.Contains(t, codes, code)
	}
	require.NotNil(t, codes[events.SystemBroadcast])
	require.NotNil(t, codes[events.WorkflowCompleted])
	assert.Equal(t, model.TargetBroadcast, codes[events.SystemBroadcast].TargetType)
	assert.True(t, codes[events.WorkflowCompleted].HasChannel("email"))
}

// Every reference token in the built-in catalog should resolve against the
// seeded library, otherwise a step would show no resources.
func TestSeedCoversCatalogReferences(t *testing.T) {
	data, err := Load()
	require.NoError(t, err)

	prompts := make([]*entity.Prompt, len(data.Prompts))
	for i, p := range data.Prompts {
		prompts[i] = &entity.Prompt{Title: p.Title, Category: p.Category}
	}
	templates := make([]*entity.Template, len(data.Templates))
	for i, tm := range data.Templates {
		templates[i] = &entity.Template{Title: tm.Title, Category: tm.Category}
	}

	for _, step := range workflow.ListSteps() {
		for _, ref := range step.PromptRefs {
			assert.NotEmpty(t, workflow.MatchReferences([]string{ref}, prompts), "step %s prompt ref %q", step.ID, ref)
		}
		for _, ref := range step.TemplateRefs {
			assert.NotEmpty(t, workflow.MatchReferences([]string{ref}, templates), "step %s template ref %q", step.ID, ref)
		}
	}
}
