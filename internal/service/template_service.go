package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"grantflow-be/internal/dto"
	"grantflow-be/internal/entity"
	"grantflow-be/internal/pkg/logger"
	"grantflow-be/internal/repository/specification"
	"grantflow-be/internal/repository/unitofwork"
	"grantflow-be/pkg/community"
	"grantflow-be/pkg/events"
	"grantflow-be/pkg/markdown"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

type ITemplateService interface {
	GetAll(ctx context.Context, req *dto.ListTemplatesRequest) ([]*dto.TemplateResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowTemplateResponse, error)
	Download(ctx context.Context, userId, id uuid.UUID) (*dto.TemplateDownload, error)
}

type templateService struct {
	uowFactory unitofwork.RepositoryFactory
	renderer   *markdown.Renderer
	events     events.Publisher
	logger     logger.ILogger
}

func NewTemplateService(uowFactory unitofwork.RepositoryFactory, renderer *markdown.Renderer, eventPublisher events.Publisher, log logger.ILogger) ITemplateService {
	return &templateService{
		uowFactory: uowFactory,
		renderer:   renderer,
		events:     eventPublisher,
		logger:     log,
	}
}

func (s *templateService) GetAll(ctx context.Context, req *dto.ListTemplatesRequest) ([]*dto.TemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	templates, err := uow.TemplateRepository().FindAll(ctx,
		specification.TemplateSearch(req.Search),
		specification.ByCategory{Category: req.Category},
		specification.ByTemplateType{Type: req.Type},
		specification.FeaturedFirst{},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		res = append(res, toTemplateResponse(t))
	}
	return res, nil
}

func (s *templateService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowTemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	template, err := uow.TemplateRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrNotFound
	}

	preview, err := s.renderer.ToHTML(template.Content)
	if err != nil {
		return nil, err
	}
	return &dto.ShowTemplateResponse{
		TemplateResponse: *toTemplateResponse(template),
		Content:          template.Content,
		PreviewHtml:      preview,
	}, nil
}

func (s *templateService) Download(ctx context.Context, userId, id uuid.UUID) (*dto.TemplateDownload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	template, err := uow.TemplateRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrNotFound
	}

	if err := uow.TemplateRepository().IncrementDownloadCount(ctx, id); err != nil {
		return nil, err
	}
	if userId != uuid.Nil {
		err := uow.UserInteractionRepository().Create(ctx, &entity.UserInteraction{
			UserId:          userId,
			ItemType:        entity.ItemTypeTemplate,
			ItemId:          id,
			InteractionType: community.InteractionDownload,
			Metadata:        map[string]interface{}{"file_type": template.FileType},
		})
		if err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if userId != uuid.Nil {
		evt := events.New(events.TemplateDownloaded, map[string]interface{}{
			"user_id":     userId.String(),
			"entity_type": entity.ItemTypeTemplate,
			"entity_id":   template.Id.String(),
			"title":       template.Title,
		})
		if err := s.events.Publish(ctx, evt); err != nil {
			s.logger.Warn("TemplateService", "Failed to publish download event", map[string]interface{}{"error": err})
		}
	}

	return &dto.TemplateDownload{
		FileName: DownloadFileName(template.Title, template.FileType),
		Content:  []byte(template.Content),
	}, nil
}

var unsafeFileChars = regexp.MustCompile(`[/\\:*?"<>|\x00-\x1f]`)

// DownloadFileName builds "<title>.<ext>" with the lower-cased file type,
// defaulting to txt.
func DownloadFileName(title, fileType string) string {
	ext := strings.ToLower(strings.TrimSpace(fileType))
	if ext == "" {
		ext = "txt"
	}
	name := strings.TrimSpace(unsafeFileChars.ReplaceAllString(title, "_"))
	if name == "" {
		name = "template"
	}
	return fmt.Sprintf("%s.%s", name, ext)
}

func toTemplateResponse(t *entity.Template) *dto.TemplateResponse {
	size := t.FileSize
	if size == 0 {
		size = int64(len(t.Content))
	}
	return &dto.TemplateResponse{
		Id:            t.Id,
		Title:         t.Title,
		Description:   t.Description,
		Category:      t.Category,
		Type:          t.Type,
		Tags:          t.Tags,
		FileType:      t.FileType,
		FileSize:      size,
		FileSizeLabel: humanize.Bytes(uint64(size)),
		DownloadCount: t.DownloadCount,
		LikeCount:     t.LikeCount,
		Rating:        t.Rating,
		IsFeatured:    t.IsFeatured,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
