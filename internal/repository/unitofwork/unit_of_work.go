package unitofwork

import (
	"context"

	"grantflow-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserWorkflowRepository() contract.UserWorkflowRepository
	PromptRepository() contract.PromptRepository
	TemplateRepository() contract.TemplateRepository
	FavoriteRepository() contract.FavoriteRepository
	CommentRepository() contract.CommentRepository
	UserInteractionRepository() contract.UserInteractionRepository
	UserProfileRepository() contract.UserProfileRepository
	NotificationRepository() contract.NotificationRepository
}
