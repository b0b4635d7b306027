package community

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsFor(t *testing.T) {
	assert.Equal(t, int64(1), PointsFor(InteractionCopy))
	assert.Equal(t, int64(2), PointsFor(InteractionDownload))
	assert.Equal(t, int64(3), PointsFor(InteractionComment))
	assert.Equal(t, int64(0), PointsFor("view"))
}

func TestLevel(t *testing.T) {
	tests := []struct {
		xp        int64
		wantLevel int
		wantNext  int64
	}{
		{xp: 0, wantLevel: 1, wantNext: 250},
		{xp: 249, wantLevel: 1, wantNext: 1},
		{xp: 250, wantLevel: 2, wantNext: 250},
		{xp: 2847, wantLevel: 12, wantNext: 153},
		{xp: -5, wantLevel: 1, wantNext: 250},
	}
	for _, tt := range tests {
		level, next := Level(tt.xp)
		assert.Equal(t, tt.wantLevel, level, "xp=%d", tt.xp)
		assert.Equal(t, tt.wantNext, next, "xp=%d", tt.xp)
	}
}

func TestAchievements(t *testing.T) {
	got := Achievements(Stats{PromptsCopied: 127, TemplatesDownloaded: 5, WorkflowsCompleted: 1})

	unlocked := map[string]bool{}
	for _, a := range got {
		unlocked[a.Key] = a.Unlocked
	}
	assert.Equal(t, map[string]bool{
		"first-steps":        true,
		"copy-master":        true,
		"template-collector": false,
		"community-helper":   false,
	}, unlocked)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Newcomer", Title(1))
	assert.Equal(t, "Research Innovator", Title(12))
	assert.Equal(t, "Grant Master", Title(42))
}
