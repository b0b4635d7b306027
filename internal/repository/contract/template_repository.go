package contract

import (
	"context"

	"grantflow-be/internal/entity"
	"grantflow-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TemplateRepository interface {
	Create(ctx context.Context, template *entity.Template) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Template, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Template, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	IncrementDownloadCount(ctx context.Context, id uuid.UUID) error
	SumDownloads(ctx context.Context) (int64, error)
}
