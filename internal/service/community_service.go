package service

import (
	"context"
	"sync"
	"time"

	"grantflow-be/internal/dto"
	"grantflow-be/internal/entity"
	"grantflow-be/internal/pkg/logger"
	"grantflow-be/internal/repository/memory"
	"grantflow-be/internal/repository/unitofwork"
	"grantflow-be/pkg/community"

	"github.com/dustin/go-humanize"
	"github.com/robfig/cron/v3"
)

type ICommunityService interface {
	Leaderboard(ctx context.Context) (*dto.LeaderboardResponse, error)
	Stats(ctx context.Context) (*dto.CommunityStatsResponse, error)
	// RefreshLeaderboard recomputes the ranking and replaces the cache.
	RefreshLeaderboard(ctx context.Context) error
	// Start schedules periodic refreshes until ctx is cancelled.
	Start(ctx context.Context) error
}

type communityService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.LeaderboardCache
	size       int
	schedule   string
	logger     logger.ILogger

	mu          sync.RWMutex
	refreshedAt *time.Time
}

func NewCommunityService(
	uowFactory unitofwork.RepositoryFactory,
	cache *memory.LeaderboardCache,
	size int,
	schedule string,
	log logger.ILogger,
) ICommunityService {
	if size <= 0 {
		size = 10
	}
	return &communityService{
		uowFactory: uowFactory,
		cache:      cache,
		size:       size,
		schedule:   schedule,
		logger:     log,
	}
}

func (s *communityService) Start(ctx context.Context) error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	c := cron.New(cron.WithParser(parser))

	_, err := c.AddFunc(s.schedule, func() {
		if err := s.RefreshLeaderboard(ctx); err != nil {
			s.logger.Error("CommunityService", "Leaderboard refresh failed", map[string]interface{}{"error": err})
		}
	})
	if err != nil {
		return err
	}

	if err := s.RefreshLeaderboard(ctx); err != nil {
		s.logger.Warn("CommunityService", "Initial leaderboard refresh failed", map[string]interface{}{"error": err})
	}

	c.Start()
	s.logger.Info("CommunityService", "Leaderboard refresh scheduled", map[string]interface{}{"schedule": s.schedule})

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

func (s *communityService) RefreshLeaderboard(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	entries, err := uow.UserInteractionRepository().Leaderboard(ctx, s.size)
	if err != nil {
		return err
	}
	s.cache.Set(entries)

	now := time.Now()
	s.mu.Lock()
	s.refreshedAt = &now
	s.mu.Unlock()
	return nil
}

func (s *communityService) Leaderboard(ctx context.Context) (*dto.LeaderboardResponse, error) {
	entries, ok := s.cache.Get()
	if !ok {
		if err := s.RefreshLeaderboard(ctx); err != nil {
			return nil, err
		}
		entries, _ = s.cache.Get()
	}

	res := &dto.LeaderboardResponse{Entries: make([]*dto.LeaderboardEntryResponse, 0, len(entries))}
	for _, e := range entries {
		res.Entries = append(res.Entries, toLeaderboardEntryResponse(e))
	}
	s.mu.RLock()
	res.RefreshedAt = s.refreshedAt
	s.mu.RUnlock()
	return res, nil
}

func toLeaderboardEntryResponse(e *entity.LeaderboardEntry) *dto.LeaderboardEntryResponse {
	level, _ := community.Level(e.Points)
	name := e.Name
	if name == "" {
		name = "Anonymous researcher"
	}
	return &dto.LeaderboardEntryResponse{
		Rank:                e.Rank,
		UserId:              e.UserId,
		Name:                name,
		Institution:         e.Institution,
		Points:              e.Points,
		Level:               level,
		Title:               community.Title(level),
		PromptsCopied:       e.PromptsCopied,
		TemplatesDownloaded: e.TemplatesDownloaded,
		Comments:            e.Comments,
	}
}

func (s *communityService) Stats(ctx context.Context) (*dto.CommunityStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prompts, err := uow.PromptRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	templates, err := uow.TemplateRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	downloads, err := uow.TemplateRepository().SumDownloads(ctx)
	if err != nil {
		return nil, err
	}
	members, err := uow.UserProfileRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	active, err := uow.UserInteractionRepository().CountDistinctUsers(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.CommunityStatsResponse{
		Prompts:        prompts,
		Templates:      templates,
		Downloads:      downloads,
		DownloadsLabel: humanize.Comma(downloads),
		Members:        members,
		ActiveMembers:  active,
	}, nil
}
