package service

import (
	"context"
	"testing"

	"grantflow-be/internal/dto"
	"grantflow-be/internal/entity"
	"grantflow-be/pkg/community"
	"grantflow-be/pkg/events"
	"grantflow-be/pkg/markdown"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadFileName(t *testing.T) {
	tests := []struct {
		title, fileType, want string
	}{
		{"Budget Justification", "DOCX", "Budget Justification.docx"},
		{"Letters: support/commitment", "pdf", "Letters_ support_commitment.pdf"},
		{"Plain", "", "Plain.txt"},
		{"  ", "md", "template.md"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, DownloadFileName(tt.title, tt.fileType))
		})
	}
}

func TestTemplateService_DownloadRecordsInteraction(t *testing.T) {
	db := newFakeDB()
	sink := &recordingEvents{}
	tmpl := &entity.Template{Id: uuid.New(), Title: "Data management plan", FileType: "md", Content: "# DMP"}
	db.templates = []*entity.Template{tmpl}
	svc := NewTemplateService(fakeFactory{db: db}, markdown.NewRenderer(), sink, nopLogger())
	userId := uuid.New()

	res, err := svc.Download(context.Background(), userId, tmpl.Id)
	require.NoError(t, err)
	assert.Equal(t, "Data management plan.md", res.FileName)
	assert.Equal(t, []byte("# DMP"), res.Content)
	assert.Equal(t, 1, tmpl.DownloadCount)
	require.Len(t, db.interactions, 1)
	assert.Equal(t, community.InteractionDownload, db.interactions[0].InteractionType)
	assert.Equal(t, []string{events.TemplateDownloaded}, sink.types())

	// Anonymous downloads still count but earn nobody points.
	_, err = svc.Download(context.Background(), uuid.Nil, tmpl.Id)
	require.NoError(t, err)
	assert.Equal(t, 2, tmpl.DownloadCount)
	assert.Len(t, db.interactions, 1)

	_, err = svc.Download(context.Background(), userId, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFavoriteService_Toggle(t *testing.T) {
	db := newFakeDB()
	prompt := &entity.Prompt{Id: uuid.New(), Title: "Specific aims"}
	db.prompts = []*entity.Prompt{prompt}
	svc := NewFavoriteService(fakeFactory{db: db})
	userId := uuid.New()
	ctx := context.Background()

	res, err := svc.Toggle(ctx, userId, entity.ItemTypePrompt, prompt.Id)
	require.NoError(t, err)
	assert.True(t, res.IsFavorited)

	status, err := svc.Status(ctx, userId, entity.ItemTypePrompt, prompt.Id)
	require.NoError(t, err)
	assert.True(t, status.IsFavorited)

	all, err := svc.GetAll(ctx, userId)
	require.NoError(t, err)
	require.Len(t, all.Prompts, 1)
	assert.Empty(t, all.Templates)

	res, err = svc.Toggle(ctx, userId, entity.ItemTypePrompt, prompt.Id)
	require.NoError(t, err)
	assert.False(t, res.IsFavorited)
	assert.Empty(t, db.favorites)
}

func TestFavoriteService_Validation(t *testing.T) {
	svc := NewFavoriteService(fakeFactory{db: newFakeDB()})
	ctx := context.Background()

	_, err := svc.Toggle(ctx, uuid.New(), "notebook", uuid.New())
	assert.ErrorIs(t, err, ErrInvalidItemType)

	_, err = svc.Toggle(ctx, uuid.New(), entity.ItemTypeTemplate, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentService_Create(t *testing.T) {
	db := newFakeDB()
	sink := &recordingEvents{}
	prompt := &entity.Prompt{Id: uuid.New(), Title: "Specific aims"}
	db.prompts = []*entity.Prompt{prompt}
	userId := uuid.New()
	db.profiles[userId] = &entity.UserProfile{UserId: userId, Name: "Dr. Rivera"}
	svc := NewCommentService(fakeFactory{db: db}, markdown.NewRenderer(), sink, nopLogger())
	ctx := context.Background()

	res, err := svc.Create(ctx, userId, entity.ItemTypePrompt, prompt.Id, &dto.CreateCommentRequest{
		Content: "  Worked <b>great</b> for my R01  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Worked great for my R01", res.Content)
	assert.Equal(t, "Dr. Rivera", res.AuthorName)
	assert.Equal(t, []string{events.CommentPosted}, sink.types())
	require.Len(t, db.interactions, 1)
	assert.Equal(t, community.InteractionComment, db.interactions[0].InteractionType)

	reply, err := svc.Create(ctx, uuid.New(), entity.ItemTypePrompt, prompt.Id, &dto.CreateCommentRequest{
		Content:         "Same here",
		ParentCommentId: &res.Id,
	})
	require.NoError(t, err)
	assert.Equal(t, "Anonymous researcher", reply.AuthorName)

	list, err := svc.GetAll(ctx, entity.ItemTypePrompt, prompt.Id)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, res.Id, list[0].Id)
}

func TestCommentService_CreateRejectsBadInput(t *testing.T) {
	db := newFakeDB()
	prompt := &entity.Prompt{Id: uuid.New()}
	db.prompts = []*entity.Prompt{prompt}
	svc := NewCommentService(fakeFactory{db: db}, markdown.NewRenderer(), &recordingEvents{}, nopLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, uuid.New(), entity.ItemTypePrompt, prompt.Id, &dto.CreateCommentRequest{Content: "<p> </p>"})
	assert.ErrorIs(t, err, ErrEmptyComment)

	missing := uuid.New()
	_, err = svc.Create(ctx, uuid.New(), entity.ItemTypePrompt, prompt.Id, &dto.CreateCommentRequest{Content: "hi", ParentCommentId: &missing})
	assert.ErrorIs(t, err, ErrInvalidParent)

	_, err = svc.Create(ctx, uuid.New(), "note", prompt.Id, &dto.CreateCommentRequest{Content: "hi"})
	assert.ErrorIs(t, err, ErrInvalidItemType)

	assert.Empty(t, db.comments)
}
