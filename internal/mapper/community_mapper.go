package mapper

import (
	"encoding/json"

	"grantflow-be/internal/entity"
	"grantflow-be/internal/model"

	"gorm.io/datatypes"
)

type FavoriteMapper struct{}

func NewFavoriteMapper() *FavoriteMapper {
	return &FavoriteMapper{}
}

func (m *FavoriteMapper) ToEntity(f *model.Favorite) *entity.Favorite {
	if f == nil {
		return nil
	}
	return &entity.Favorite{
		Id:        f.Id,
		UserId:    f.UserId,
		ItemType:  f.ItemType,
		ItemId:    f.ItemId,
		CreatedAt: f.CreatedAt,
	}
}

func (m *FavoriteMapper) ToModel(f *entity.Favorite) *model.Favorite {
	if f == nil {
		return nil
	}
	return &model.Favorite{
		Id:        f.Id,
		UserId:    f.UserId,
		ItemType:  f.ItemType,
		ItemId:    f.ItemId,
		CreatedAt: f.CreatedAt,
	}
}

func (m *FavoriteMapper) ToEntities(favorites []*model.Favorite) []*entity.Favorite {
	entities := make([]*entity.Favorite, len(favorites))
	for i, f := range favorites {
		entities[i] = m.ToEntity(f)
	}
	return entities
}

type CommentMapper struct{}

func NewCommentMapper() *CommentMapper {
	return &CommentMapper{}
}

func (m *CommentMapper) ToEntity(c *model.Comment) *entity.Comment {
	if c == nil {
		return nil
	}
	return &entity.Comment{
		Id:              c.Id,
		UserId:          c.UserId,
		ItemType:        c.ItemType,
		ItemId:          c.ItemId,
		ParentCommentId: c.ParentCommentId,
		Content:         c.Content,
		LikeCount:       c.LikeCount,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       timePtr(c.UpdatedAt),
	}
}

func (m *CommentMapper) ToModel(c *entity.Comment) *model.Comment {
	if c == nil {
		return nil
	}
	return &model.Comment{
		Id:              c.Id,
		UserId:          c.UserId,
		ItemType:        c.ItemType,
		ItemId:          c.ItemId,
		ParentCommentId: c.ParentCommentId,
		Content:         c.Content,
		LikeCount:       c.LikeCount,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       timeVal(c.UpdatedAt),
	}
}

func (m *CommentMapper) ToEntities(comments []*model.Comment) []*entity.Comment {
	entities := make([]*entity.Comment, len(comments))
	for i, c := range comments {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

type UserInteractionMapper struct{}

func NewUserInteractionMapper() *UserInteractionMapper {
	return &UserInteractionMapper{}
}

func (m *UserInteractionMapper) ToModel(i *entity.UserInteraction) *model.UserInteraction {
	if i == nil {
		return nil
	}
	var metadata datatypes.JSON
	if len(i.Metadata) > 0 {
		if raw, err := json.Marshal(i.Metadata); err == nil {
			metadata = raw
		}
	}
	return &model.UserInteraction{
		Id:              i.Id,
		UserId:          i.UserId,
		ItemType:        i.ItemType,
		ItemId:          i.ItemId,
		InteractionType: i.InteractionType,
		Metadata:        metadata,
		CreatedAt:       i.CreatedAt,
	}
}

func (m *UserInteractionMapper) ToEntity(i *model.UserInteraction) *entity.UserInteraction {
	if i == nil {
		return nil
	}
	var metadata map[string]interface{}
	if len(i.Metadata) > 0 {
		_ = json.Unmarshal(i.Metadata, &metadata)
	}
	return &entity.UserInteraction{
		Id:              i.Id,
		UserId:          i.UserId,
		ItemType:        i.ItemType,
		ItemId:          i.ItemId,
		InteractionType: i.InteractionType,
		Metadata:        metadata,
		CreatedAt:       i.CreatedAt,
	}
}

type UserProfileMapper struct{}

func NewUserProfileMapper() *UserProfileMapper {
	return &UserProfileMapper{}
}

func (m *UserProfileMapper) ToEntity(p *model.UserProfile) *entity.UserProfile {
	if p == nil {
		return nil
	}
	return &entity.UserProfile{
		UserId:       p.UserId,
		Name:         p.Name,
		Email:        p.Email,
		Institution:  p.Institution,
		Department:   p.Department,
		ResearchArea: p.ResearchArea,
		Website:      p.Website,
		Bio:          p.Bio,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    timePtr(p.UpdatedAt),
	}
}

func (m *UserProfileMapper) ToModel(p *entity.UserProfile) *model.UserProfile {
	if p == nil {
		return nil
	}
	return &model.UserProfile{
		UserId:       p.UserId,
		Name:         p.Name,
		Email:        p.Email,
		Institution:  p.Institution,
		Department:   p.Department,
		ResearchArea: p.ResearchArea,
		Website:      p.Website,
		Bio:          p.Bio,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    timeVal(p.UpdatedAt),
	}
}
