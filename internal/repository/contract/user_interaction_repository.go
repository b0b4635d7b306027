package contract

import (
	"context"

	"grantflow-be/internal/entity"
	"grantflow-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserInteractionRepository interface {
	Create(ctx context.Context, interaction *entity.UserInteraction) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// CountByType returns interaction_type -> count for one user.
	CountByType(ctx context.Context, userId uuid.UUID) (map[string]int64, error)
	// Leaderboard ranks users by interaction points, highest first.
	Leaderboard(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error)
	CountDistinctUsers(ctx context.Context) (int64, error)
}
