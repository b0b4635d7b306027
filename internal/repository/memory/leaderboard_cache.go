package memory

import (
	"grantflow-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const leaderboardKey = "leaderboard"

// LeaderboardCache keeps the last computed ranking. Entries never expire;
// the refresh job overwrites them.
type LeaderboardCache struct {
	cache *cache.Cache
}

func NewLeaderboardCache() *LeaderboardCache {
	return &LeaderboardCache{cache: cache.New(cache.NoExpiration, 0)}
}

func (c *LeaderboardCache) Set(entries []*entity.LeaderboardEntry) {
	c.cache.Set(leaderboardKey, entries, cache.NoExpiration)
}

func (c *LeaderboardCache) Get() ([]*entity.LeaderboardEntry, bool) {
	if x, found := c.cache.Get(leaderboardKey); found {
		return x.([]*entity.LeaderboardEntry), true
	}
	return nil, false
}
