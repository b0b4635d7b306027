package mapper

import (
	"grantflow-be/internal/entity"
	"grantflow-be/internal/model"
)

type PromptMapper struct{}

func NewPromptMapper() *PromptMapper {
	return &PromptMapper{}
}

func (m *PromptMapper) ToEntity(p *model.Prompt) *entity.Prompt {
	if p == nil {
		return nil
	}
	return &entity.Prompt{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		Content:     p.Content,
		Category:    p.Category,
		Tags:        nonNilTags(p.Tags),
		CopyCount:   p.CopyCount,
		LikeCount:   p.LikeCount,
		Rating:      p.Rating,
		IsFeatured:  p.IsFeatured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   timePtr(p.UpdatedAt),
	}
}

func (m *PromptMapper) ToModel(p *entity.Prompt) *model.Prompt {
	if p == nil {
		return nil
	}
	return &model.Prompt{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		Content:     p.Content,
		Category:    p.Category,
		Tags:        nonNilTags(p.Tags),
		CopyCount:   p.CopyCount,
		LikeCount:   p.LikeCount,
		Rating:      p.Rating,
		IsFeatured:  p.IsFeatured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   timeVal(p.UpdatedAt),
	}
}

func (m *PromptMapper) ToEntities(prompts []*model.Prompt) []*entity.Prompt {
	entities := make([]*entity.Prompt, len(prompts))
	for i, p := range prompts {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

type TemplateMapper struct{}

func NewTemplateMapper() *TemplateMapper {
	return &TemplateMapper{}
}

func (m *TemplateMapper) ToEntity(t *model.Template) *entity.Template {
	if t == nil {
		return nil
	}
	return &entity.Template{
		Id:            t.Id,
		Title:         t.Title,
		Description:   t.Description,
		Content:       t.Content,
		Category:      t.Category,
		Type:          t.Type,
		Tags:          nonNilTags(t.Tags),
		FileType:      t.FileType,
		FileSize:      t.FileSize,
		DownloadCount: t.DownloadCount,
		LikeCount:     t.LikeCount,
		Rating:        t.Rating,
		IsFeatured:    t.IsFeatured,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     timePtr(t.UpdatedAt),
	}
}

func (m *TemplateMapper) ToModel(t *entity.Template) *model.Template {
	if t == nil {
		return nil
	}
	return &model.Template{
		Id:            t.Id,
		Title:         t.Title,
		Description:   t.Description,
		Content:       t.Content,
		Category:      t.Category,
		Type:          t.Type,
		Tags:          nonNilTags(t.Tags),
		FileType:      t.FileType,
		FileSize:      t.FileSize,
		DownloadCount: t.DownloadCount,
		LikeCount:     t.LikeCount,
		Rating:        t.Rating,
		IsFeatured:    t.IsFeatured,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     timeVal(t.UpdatedAt),
	}
}

func (m *TemplateMapper) ToEntities(templates []*model.Template) []*entity.Template {
	entities := make([]*entity.Template, len(templates))
	for i, t := range templates {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
