package contract

import (
	"context"

	"grantflow-be/internal/entity"
	"grantflow-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserProfileRepository interface {
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserProfile, error)
	Upsert(ctx context.Context, profile *entity.UserProfile) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
