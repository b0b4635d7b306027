package contract

import (
	"context"

	"grantflow-be/internal/entity"

	"github.com/google/uuid"
)

type UserWorkflowRepository interface {
	// FindByUserId returns nil, nil when the user has never saved progress.
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserWorkflow, error)
	// Upsert replaces the stored map for the user in one statement.
	Upsert(ctx context.Context, workflow *entity.UserWorkflow) error
}
