package service

import (
	"context"
	"testing"
	"time"

	"grantflow-be/internal/entity"
	"grantflow-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityService_LeaderboardIsCached(t *testing.T) {
	db := newFakeDB()
	leader := uuid.New()
	db.leaderboard = []*entity.LeaderboardEntry{
		{Rank: 1, UserId: leader, Name: "Dr. Okafor", Points: 120},
		{Rank: 2, UserId: uuid.New(), Points: 30},
	}
	svc := NewCommunityService(fakeFactory{db: db}, memory.NewLeaderboardCache(), 10, "@every 1h", nopLogger())
	ctx := context.Background()

	res, err := svc.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, res.Entries, 2)
	require.NotNil(t, res.RefreshedAt)
	assert.Equal(t, leader, res.Entries[0].UserId)
	assert.Equal(t, "Anonymous researcher", res.Entries[1].Name)
	assert.NotEmpty(t, res.Entries[0].Title)

	db.mu.Lock()
	db.leaderboard = nil
	db.mu.Unlock()

	res, err = svc.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Len(t, res.Entries, 2)

	require.NoError(t, svc.RefreshLeaderboard(ctx))
	res, err = svc.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Empty(t, res.Entries)
}

func TestCommunityService_Stats(t *testing.T) {
	db := newFakeDB()
	db.prompts = []*entity.Prompt{{Id: uuid.New()}, {Id: uuid.New()}}
	db.templates = []*entity.Template{{Id: uuid.New(), DownloadCount: 1200}, {Id: uuid.New(), DownloadCount: 34}}
	db.profiles[uuid.New()] = &entity.UserProfile{}
	db.interactions = []*entity.UserInteraction{{UserId: uuid.New()}, {UserId: uuid.New()}}
	svc := NewCommunityService(fakeFactory{db: db}, memory.NewLeaderboardCache(), 10, "@every 1h", nopLogger())

	res, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.Prompts)
	assert.EqualValues(t, 2, res.Templates)
	assert.EqualValues(t, 1234, res.Downloads)
	assert.Equal(t, "1,234", res.DownloadsLabel)
	assert.EqualValues(t, 1, res.Members)
	assert.EqualValues(t, 2, res.ActiveMembers)
}

func TestCommunityService_StartRejectsBadSchedule(t *testing.T) {
	svc := NewCommunityService(fakeFactory{db: newFakeDB()}, memory.NewLeaderboardCache(), 10, "every five minutes", nopLogger())
	assert.Error(t, svc.Start(context.Background()))
}

func TestCommunityService_StartStopsWithContext(t *testing.T) {
	cache := memory.NewLeaderboardCache()
	svc := NewCommunityService(fakeFactory{db: newFakeDB()}, cache, 10, "@every 1h", nopLogger())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- svc.Start(ctx) }()

	require.Eventually(t, func() bool {
		_, ok := cache.Get()
		return ok
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}
