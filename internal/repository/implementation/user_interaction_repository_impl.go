package implementation

import (
	"context"

	"grantflow-be/internal/entity"
	"grantflow-be/internal/mapper"
	"grantflow-be/internal/model"
	"grantflow-be/internal/repository/contract"
	"grantflow-be/internal/repository/specification"
	"grantflow-be/pkg/community"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserInteractionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserInteractionMapper
}

func NewUserInteractionRepository(db *gorm.DB) contract.UserInteractionRepository {
	return &UserInteractionRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserInteractionMapper(),
	}
}

func (r *UserInteractionRepositoryImpl) Create(ctx context.Context, interaction *entity.UserInteraction) error {
	m := r.mapper.ToModel(interaction)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*interaction = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserInteractionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.UserInteraction{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserInteractionRepositoryImpl) CountByType(ctx context.Context, userId uuid.UUID) (map[string]int64, error) {
	var rows []struct {
		InteractionType string
		Total           int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.UserInteraction{}).
		Select("interaction_type, COUNT(*) AS total").
		Where("user_id = ?", userId).
		Group("interaction_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.InteractionType] = row.Total
	}
	return counts, nil
}

const leaderboardQuery = `
SELECT ui.user_id,
       COALESCE(up.name, '') AS name,
       COALESCE(up.institution, '') AS institution,
       SUM(CASE ui.interaction_type WHEN ? THEN ? WHEN ? THEN ? WHEN ? THEN ? ELSE 0 END) AS points,
       COUNT(*) FILTER (WHERE ui.interaction_type = ?) AS prompts_copied,
       COUNT(*) FILTER (WHERE ui.interaction_type = ?) AS templates_downloaded,
       COUNT(*) FILTER (WHERE ui.interaction_type = ?) AS comments
FROM user_interactions ui
LEFT JOIN user_profiles up ON up.user_id = ui.user_id
GROUP BY ui.user_id, up.name, up.institution
ORDER BY points DESC, ui.user_id
LIMIT ?`

func (r *UserInteractionRepositoryImpl) Leaderboard(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error) {
	var rows []model.LeaderboardRow
	err := r.db.WithContext(ctx).Raw(leaderboardQuery,
		community.InteractionCopy, community.PointsFor(community.InteractionCopy),
		community.InteractionDownload, community.PointsFor(community.InteractionDownload),
		community.InteractionComment, community.PointsFor(community.InteractionComment),
		community.InteractionCopy,
		community.InteractionDownload,
		community.InteractionComment,
		limit,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*entity.LeaderboardEntry, len(rows))
	for i, row := range rows {
		entries[i] = &entity.LeaderboardEntry{
			Rank:                i + 1,
			UserId:              row.UserId,
			Name:                row.Name,
			Institution:         row.Institution,
			Points:              row.Points,
			PromptsCopied:       row.PromptsCopied,
			TemplatesDownloaded: row.TemplatesDownloaded,
			Comments:            row.Comments,
		}
	}
	return entries, nil
}

func (r *UserInteractionRepositoryImpl) CountDistinctUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.UserInteraction{}).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}
