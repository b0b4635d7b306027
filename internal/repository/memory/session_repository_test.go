package memory

import (
	"testing"
	"time"

	"grantflow-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateReturnsSameSession(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	userId := uuid.New()

	first := repo.GetOrCreate(userId)
	first.Loaded = true
	second := repo.GetOrCreate(userId)

	assert.Same(t, first, second)
	assert.True(t, second.Loaded)
	assert.Equal(t, 1, repo.Count())
}

func TestSessionsAreIsolatedPerUser(t *testing.T) {
	repo := NewSessionRepository(time.Minute)

	a := repo.GetOrCreate(uuid.New())
	b := repo.GetOrCreate(uuid.New())

	assert.NotSame(t, a, b)
	assert.Equal(t, 2, repo.Count())
}

func TestSessionExpires(t *testing.T) {
	repo := NewSessionRepository(20 * time.Millisecond)
	userId := uuid.New()
	repo.GetOrCreate(userId)

	require.Eventually(t, func() bool {
		_, found := repo.Get(userId)
		return !found
	}, time.Second, 10*time.Millisecond)
}

func TestLeaderboardCache(t *testing.T) {
	c := NewLeaderboardCache()
	_, found := c.Get()
	assert.False(t, found)

	entries := []*entity.LeaderboardEntry{{Rank: 1, Name: "Ada", Points: 12}}
	c.Set(entries)

	got, found := c.Get()
	require.True(t, found)
	assert.Equal(t, entries, got)
}
