package service

import (
	"context"

	"grantflow-be/internal/entity"
	"grantflow-be/internal/repository/unitofwork"
	"grantflow-be/pkg/workflow"

	"github.com/google/uuid"
)

// progressStore adapts the user_workflows repository to workflow.ProgressStore.
type progressStore struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProgressStore(uowFactory unitofwork.RepositoryFactory) workflow.ProgressStore {
	return &progressStore{uowFactory: uowFactory}
}

func (s *progressStore) FetchProgress(ctx context.Context, userID uuid.UUID) (map[string]bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	record, err := uow.UserWorkflowRepository().FindByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return record.Steps, nil
}

func (s *progressStore) UpsertProgress(ctx context.Context, userID uuid.UUID, progress map[string]bool) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserWorkflowRepository().Upsert(ctx, &entity.UserWorkflow{
		UserId: userID,
		Steps:  progress,
	})
}
