// Package seed loads the built-in prompt library, template gallery and
// notification type registry.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"grantflow-be/internal/entity"
	"grantflow-be/internal/model"
	"grantflow-be/internal/repository/specification"
	"grantflow-be/internal/repository/unitofwork"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type PromptSeed struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	Featured    bool     `yaml:"featured"`
	Rating      float64  `yaml:"rating"`
	Content     string   `yaml:"content"`
}

type TemplateSeed struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	Type        string   `yaml:"type"`
	FileType    string   `yaml:"file_type"`
	Tags        []string `yaml:"tags"`
	Featured    bool     `yaml:"featured"`
	Rating      float64  `yaml:"rating"`
	Content     string   `yaml:"content"`
}

type Data struct {
	Prompts           []PromptSeed             `yaml:"prompts"`
	Templates         []TemplateSeed           `yaml:"templates"`
	NotificationTypes []model.NotificationType `yaml:"notification_types"`
}

// Result counts rows created by Apply. Existing rows are left alone.
type Result struct {
	Prompts           int
	Templates         int
	NotificationTypes int
}

// Load parses the embedded seed file.
func Load() (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &data, nil
}

// Apply inserts missing prompts and templates (matched by title) and
// upserts every notification type, all in one transaction.
func Apply(ctx context.Context, uowFactory unitofwork.RepositoryFactory, data *Data) (*Result, error) {
	uow := uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	res := &Result{}
	for _, p := range data.Prompts {
		existing, err := uow.PromptRepository().FindOne(ctx, specification.ByTitle{Title: p.Title})
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}
		err = uow.PromptRepository().Create(ctx, &entity.Prompt{
			Title:       p.Title,
			Description: p.Description,
			Content:     p.Content,
			Category:    p.Category,
			Tags:        p.Tags,
			Rating:      p.Rating,
			IsFeatured:  p.Featured,
		})
		if err != nil {
			return nil, fmt.Errorf("seed prompt %q: %w", p.Title, err)
		}
		res.Prompts++
	}

	for _, t := range data.Templates {
		existing, err := uow.TemplateRepository().FindOne(ctx, specification.ByTitle{Title: t.Title})
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}
		err = uow.TemplateRepository().Create(ctx, &entity.Template{
			Title:       t.Title,
			Description: t.Description,
			Content:     t.Content,
			Category:    t.Category,
			Type:        t.Type,
			Tags:        t.Tags,
			FileType:    t.FileType,
			FileSize:    int64(len(t.Content)),
			Rating:      t.Rating,
			IsFeatured:  t.Featured,
		})
		if err != nil {
			return nil, fmt.Errorf("seed template %q: %w", t.Title, err)
		}
		res.Templates++
	}

	for i := range data.NotificationTypes {
		if err := uow.NotificationRepository().UpsertNotificationType(ctx, &data.NotificationTypes[i]); err != nil {
			return nil, fmt.Errorf("seed notification type %s: %w", data.NotificationTypes[i].Code, err)
		}
		res.NotificationTypes++
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return res, nil
}
