package service

import (
	"context"

	"grantflow-be/internal/dto"
	"grantflow-be/internal/entity"
	"grantflow-be/internal/pkg/logger"
	"grantflow-be/internal/repository/specification"
	"grantflow-be/internal/repository/unitofwork"
	"grantflow-be/pkg/community"
	"grantflow-be/pkg/markdown"

	"github.com/google/uuid"
)

type IPromptService interface {
	GetAll(ctx context.Context, req *dto.ListPromptsRequest) ([]*dto.PromptResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowPromptResponse, error)
	Copy(ctx context.Context, userId, id uuid.UUID) (*dto.CopyPromptResponse, error)
}

type promptService struct {
	uowFactory unitofwork.RepositoryFactory
	renderer   *markdown.Renderer
	logger     logger.ILogger
}

func NewPromptService(uowFactory unitofwork.RepositoryFactory, renderer *markdown.Renderer, log logger.ILogger) IPromptService {
	return &promptService{
		uowFactory: uowFactory,
		renderer:   renderer,
		logger:     log,
	}
}

func (s *promptService) GetAll(ctx context.Context, req *dto.ListPromptsRequest) ([]*dto.PromptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	prompts, err := uow.PromptRepository().FindAll(ctx,
		specification.PromptSearch(req.Search),
		specification.ByCategory{Category: req.Category},
		specification.FeaturedFirst{},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PromptResponse, 0, len(prompts))
	for _, p := range prompts {
		res = append(res, toPromptResponse(p))
	}
	return res, nil
}

func (s *promptService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowPromptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	prompt, err := uow.PromptRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if prompt == nil {
		return nil, ErrNotFound
	}

	html, err := s.renderer.ToHTML(prompt.Content)
	if err != nil {
		return nil, err
	}
	return &dto.ShowPromptResponse{
		PromptResponse: *toPromptResponse(prompt),
		ContentHtml:    html,
	}, nil
}

// Copy returns the prompt body for the clipboard and counts the copy. The
// interaction is only recorded for signed-in users.
func (s *promptService) Copy(ctx context.Context, userId, id uuid.UUID) (*dto.CopyPromptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	prompt, err := uow.PromptRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if prompt == nil {
		return nil, ErrNotFound
	}

	if err := uow.PromptRepository().IncrementCopyCount(ctx, id); err != nil {
		return nil, err
	}
	if userId != uuid.Nil {
		err := uow.UserInteractionRepository().Create(ctx, &entity.UserInteraction{
			UserId:          userId,
			ItemType:        entity.ItemTypePrompt,
			ItemId:          id,
			InteractionType: community.InteractionCopy,
		})
		if err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CopyPromptResponse{
		Id:        prompt.Id,
		Content:   prompt.Content,
		CopyCount: prompt.CopyCount + 1,
	}, nil
}

func toPromptResponse(p *entity.Prompt) *dto.PromptResponse {
	return &dto.PromptResponse{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		Content:     p.Content,
		Category:    p.Category,
		Tags:        p.Tags,
		CopyCount:   p.CopyCount,
		LikeCount:   p.LikeCount,
		Rating:      p.Rating,
		IsFeatured:  p.IsFeatured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
