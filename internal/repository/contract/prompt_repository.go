package contract

import (
	"context"

	"grantflow-be/internal/entity"
	"grantflow-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PromptRepository interface {
	Create(ctx context.Context, prompt *entity.Prompt) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Prompt, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Prompt, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	IncrementCopyCount(ctx context.Context, id uuid.UUID) error
}
