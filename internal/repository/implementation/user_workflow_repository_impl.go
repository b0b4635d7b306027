package implementation

import (
	"context"
	"errors"

	"grantflow-be/internal/entity"
	"grantflow-be/internal/mapper"
	"grantflow-be/internal/model"
	"grantflow-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserWorkflowRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserWorkflowMapper
}

func NewUserWorkflowRepository(db *gorm.DB) contract.UserWorkflowRepository {
	return &UserWorkflowRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserWorkflowMapper(),
	}
}

func (r *UserWorkflowRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserWorkflow, error) {
	var m model.UserWorkflow
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserWorkflowRepositoryImpl) Upsert(ctx context.Context, workflow *entity.UserWorkflow) error {
	m := r.mapper.ToModel(workflow)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"workflow_data", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*workflow = *r.mapper.ToEntity(m)
	return nil
}
