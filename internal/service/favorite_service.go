package service

import (
	"context"

	"grantflow-be/internal/dto"
	"grantflow-be/internal/entity"
	"grantflow-be/internal/repository/specification"
	"grantflow-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFavoriteService interface {
	GetAll(ctx context.Context, userId uuid.UUID) (*dto.FavoritesResponse, error)
	Status(ctx context.Context, userId uuid.UUID, itemType string, itemId uuid.UUID) (*dto.FavoriteStatusResponse, error)
	Toggle(ctx context.Context, userId uuid.UUID, itemType string, itemId uuid.UUID) (*dto.FavoriteStatusResponse, error)
}

type favoriteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFavoriteService(uowFactory unitofwork.RepositoryFactory) IFavoriteService {
	return &favoriteService{uowFactory: uowFactory}
}

func (s *favoriteService) GetAll(ctx context.Context, userId uuid.UUID) (*dto.FavoritesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	favorites, err := uow.FavoriteRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	var promptIds, templateIds []uuid.UUID
	for _, f := range favorites {
		switch f.ItemType {
		case entity.ItemTypePrompt:
			promptIds = append(promptIds, f.ItemId)
		case entity.ItemTypeTemplate:
			templateIds = append(templateIds, f.ItemId)
		}
	}

	res := &dto.FavoritesResponse{
		Prompts:   make([]*dto.PromptResponse, 0, len(promptIds)),
		Templates: make([]*dto.TemplateResponse, 0, len(templateIds)),
	}
	if len(promptIds) > 0 {
		prompts, err := uow.PromptRepository().FindAll(ctx, specification.ByIDs{IDs: promptIds})
		if err != nil {
			return nil, err
		}
		for _, p := range prompts {
			res.Prompts = append(res.Prompts, toPromptResponse(p))
		}
	}
	if len(templateIds) > 0 {
		templates, err := uow.TemplateRepository().FindAll(ctx, specification.ByIDs{IDs: templateIds})
		if err != nil {
			return nil, err
		}
		for _, t := range templates {
			res.Templates = append(res.Templates, toTemplateResponse(t))
		}
	}
	return res, nil
}

func (s *favoriteService) Status(ctx context.Context, userId uuid.UUID, itemType string, itemId uuid.UUID) (*dto.FavoriteStatusResponse, error) {
	if !entity.ValidItemType(itemType) {
		return nil, ErrInvalidItemType
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.FavoriteRepository().Count(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByItem{ItemType: itemType, ItemID: itemId},
	)
	if err != nil {
		return nil, err
	}
	return &dto.FavoriteStatusResponse{ItemType: itemType, ItemId: itemId, IsFavorited: count > 0}, nil
}

func (s *favoriteService) Toggle(ctx context.Context, userId uuid.UUID, itemType string, itemId uuid.UUID) (*dto.FavoriteStatusResponse, error) {
	if !entity.ValidItemType(itemType) {
		return nil, ErrInvalidItemType
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := ensureItemExists(ctx, uow, itemType, itemId); err != nil {
		return nil, err
	}

	existing, err := uow.FavoriteRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByItem{ItemType: itemType, ItemID: itemId},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.FavoriteStatusResponse{ItemType: itemType, ItemId: itemId}
	if existing != nil {
		if err := uow.FavoriteRepository().Delete(ctx, existing.Id); err != nil {
			return nil, err
		}
		return res, nil
	}

	err = uow.FavoriteRepository().Create(ctx, &entity.Favorite{
		UserId:   userId,
		ItemType: itemType,
		ItemId:   itemId,
	})
	if err != nil {
		return nil, err
	}
	res.IsFavorited = true
	return res, nil
}

func ensureItemExists(ctx context.Context, uow unitofwork.UnitOfWork, itemType string, itemId uuid.UUID) error {
	var count int64
	var err error
	switch itemType {
	case entity.ItemTypePrompt:
		count, err = uow.PromptRepository().Count(ctx, specification.ByID{ID: itemId})
	case entity.ItemTypeTemplate:
		count, err = uow.TemplateRepository().Count(ctx, specification.ByID{ID: itemId})
	default:
		return ErrInvalidItemType
	}
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
