package service

import (
	"context"
	"strings"

	"grantflow-be/internal/dto"
	"grantflow-be/internal/entity"
	"grantflow-be/internal/pkg/logger"
	"grantflow-be/internal/repository/specification"
	"grantflow-be/internal/repository/unitofwork"
	"grantflow-be/pkg/community"
	"grantflow-be/pkg/events"
	"grantflow-be/pkg/markdown"

	"github.com/google/uuid"
)

type ICommentService interface {
	GetAll(ctx context.Context, itemType string, itemId uuid.UUID) ([]*dto.CommentResponse, error)
	Create(ctx context.Context, userId uuid.UUID, itemType string, itemId uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
}

type commentService struct {
	uowFactory unitofwork.RepositoryFactory
	renderer   *markdown.Renderer
	events     events.Publisher
	logger     logger.ILogger
}

func NewCommentService(uowFactory unitofwork.RepositoryFactory, renderer *markdown.Renderer, eventPublisher events.Publisher, log logger.ILogger) ICommentService {
	return &commentService{
		uowFactory: uowFactory,
		renderer:   renderer,
		events:     eventPublisher,
		logger:     log,
	}
}

// GetAll lists an item's comments oldest first.
func (s *commentService) GetAll(ctx context.Context, itemType string, itemId uuid.UUID) ([]*dto.CommentResponse, error) {
	if !entity.ValidItemType(itemType) {
		return nil, ErrInvalidItemType
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	comments, err := uow.CommentRepository().FindAll(ctx,
		specification.ByItem{ItemType: itemType, ItemID: itemId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	names, err := s.authorNames(ctx, uow, comments)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		res = append(res, toCommentResponse(c, names[c.UserId]))
	}
	return res, nil
}

func (s *commentService) authorNames(ctx context.Context, uow unitofwork.UnitOfWork, comments []*entity.Comment) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string)
	for _, c := range comments {
		if _, seen := names[c.UserId]; seen {
			continue
		}
		profile, err := uow.UserProfileRepository().FindByUserId(ctx, c.UserId)
		if err != nil {
			return nil, err
		}
		names[c.UserId] = ""
		if profile != nil {
			names[c.UserId] = profile.Name
		}
	}
	return names, nil
}

func (s *commentService) Create(ctx context.Context, userId uuid.UUID, itemType string, itemId uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if !entity.ValidItemType(itemType) {
		return nil, ErrInvalidItemType
	}
	content := s.renderer.PlainText(strings.TrimSpace(req.Content))
	if content == "" {
		return nil, ErrEmptyComment
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := ensureItemExists(ctx, uow, itemType, itemId); err != nil {
		return nil, err
	}
	if req.ParentCommentId != nil {
		parent, err := uow.CommentRepository().FindOne(ctx,
			specification.ByID{ID: *req.ParentCommentId},
			specification.ByItem{ItemType: itemType, ItemID: itemId},
		)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrInvalidParent
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	comment := &entity.Comment{
		UserId:          userId,
		ItemType:        itemType,
		ItemId:          itemId,
		ParentCommentId: req.ParentCommentId,
		Content:         content,
	}
	if err := uow.CommentRepository().Create(ctx, comment); err != nil {
		return nil, err
	}
	err := uow.UserInteractionRepository().Create(ctx, &entity.UserInteraction{
		UserId:          userId,
		ItemType:        itemType,
		ItemId:          itemId,
		InteractionType: community.InteractionComment,
	})
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	evt := events.New(events.CommentPosted, map[string]interface{}{
		"user_id":     userId.String(),
		"entity_type": itemType,
		"entity_id":   itemId.String(),
	})
	if err := s.events.Publish(ctx, evt); err != nil {
		s.logger.Warn("CommentService", "Failed to publish comment event", map[string]interface{}{"error": err})
	}

	names, err := s.authorNames(ctx, uow, []*entity.Comment{comment})
	if err != nil {
		return nil, err
	}
	return toCommentResponse(comment, names[userId]), nil
}

func toCommentResponse(c *entity.Comment, author string) *dto.CommentResponse {
	if author == "" {
		author = "Anonymous researcher"
	}
	return &dto.CommentResponse{
		Id:              c.Id,
		UserId:          c.UserId,
		AuthorName:      author,
		ItemType:        c.ItemType,
		ItemId:          c.ItemId,
		ParentCommentId: c.ParentCommentId,
		Content:         c.Content,
		LikeCount:       c.LikeCount,
		CreatedAt:       c.CreatedAt,
	}
}
