package service

import (
	"context"

	"grantflow-be/internal/dto"
	"grantflow-be/internal/entity"
	"grantflow-be/internal/repository/specification"
	"grantflow-be/internal/repository/unitofwork"
	"grantflow-be/pkg/community"
	"grantflow-be/pkg/markdown"

	"github.com/google/uuid"
)

type IProfileService interface {
	Get(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type profileService struct {
	uowFactory      unitofwork.RepositoryFactory
	workflowService IWorkflowService
	renderer        *markdown.Renderer
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory, workflowService IWorkflowService, renderer *markdown.Renderer) IProfileService {
	return &profileService{
		uowFactory:      uowFactory,
		workflowService: workflowService,
		renderer:        renderer,
	}
}

func (s *profileService) Get(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	if userId == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.UserProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &entity.UserProfile{UserId: userId}
	}
	return s.buildResponse(ctx, uow, profile)
}

// Update stores the profile. Every free-text field is reduced to plain text.
func (s *profileService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if userId == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	profile := &entity.UserProfile{
		UserId:       userId,
		Name:         s.renderer.PlainText(req.Name),
		Email:        req.Email,
		Institution:  s.renderer.PlainText(req.Institution),
		Department:   s.renderer.PlainText(req.Department),
		ResearchArea: s.renderer.PlainText(req.ResearchArea),
		Website:      req.Website,
		Bio:          s.renderer.PlainText(req.Bio),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserProfileRepository().Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return s.buildResponse(ctx, uow, profile)
}

func (s *profileService) buildResponse(ctx context.Context, uow unitofwork.UnitOfWork, profile *entity.UserProfile) (*dto.ProfileResponse, error) {
	userId := profile.UserId

	counts, err := uow.UserInteractionRepository().CountByType(ctx, userId)
	if err != nil {
		return nil, err
	}
	favorites, err := uow.FavoriteRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	progress, err := s.workflowService.Progress(ctx, userId)
	if err != nil {
		return nil, err
	}

	var workflowsCompleted int64
	if progress.Total > 0 && progress.Completed == progress.Total {
		workflowsCompleted = 1
	}

	stats := community.Stats{
		PromptsCopied:       counts[community.InteractionCopy],
		TemplatesDownloaded: counts[community.InteractionDownload],
		Comments:            counts[community.InteractionComment],
		WorkflowsCompleted:  workflowsCompleted,
	}
	var points int64
	for interaction, n := range counts {
		points += community.PointsFor(interaction) * n
	}
	level, toNext := community.Level(points)

	return &dto.ProfileResponse{
		UserId:       userId,
		Name:         profile.Name,
		Email:        profile.Email,
		Institution:  profile.Institution,
		Department:   profile.Department,
		ResearchArea: profile.ResearchArea,
		Website:      profile.Website,
		Bio:          profile.Bio,
		Stats: dto.ProfileStats{
			StepsCompleted:      progress.Completed,
			WorkflowsCompleted:  workflowsCompleted,
			Favorites:           favorites,
			Comments:            stats.Comments,
			PromptsCopied:       stats.PromptsCopied,
			TemplatesDownloaded: stats.TemplatesDownloaded,
			Points:              points,
			Level:               level,
			PointsToNextLevel:   toNext,
			Title:               community.Title(level),
		},
		Achievements: community.Achievements(stats),
	}, nil
}
