package memory

import (
	"sync"
	"time"

	"grantflow-be/pkg/workflow"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// WorkflowSession is one signed-in user's in-memory progress. Callers must
// hold Mu while reading or replacing State.
type WorkflowSession struct {
	Mu       sync.Mutex
	UserId   uuid.UUID
	State    []workflow.StepState
	Degraded bool
	Loaded   bool
}

type SessionRepository struct {
	cache *cache.Cache
	mu    sync.Mutex
}

// NewSessionRepository expires idle sessions after ttl and sweeps every ttl/3.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	cleanup := ttl / 3
	if cleanup <= 0 {
		cleanup = time.Minute
	}
	return &SessionRepository{
		cache: cache.New(ttl, cleanup),
	}
}

// GetOrCreate returns the live session for userId, creating an unloaded one
// when none exists. Every access refreshes the expiration.
func (r *SessionRepository) GetOrCreate(userId uuid.UUID) *WorkflowSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := userId.String()
	if x, found := r.cache.Get(key); found {
		session := x.(*WorkflowSession)
		r.cache.Set(key, session, cache.DefaultExpiration)
		return session
	}

	session := &WorkflowSession{UserId: userId}
	r.cache.Set(key, session, cache.DefaultExpiration)
	return session
}

func (r *SessionRepository) Get(userId uuid.UUID) (*WorkflowSession, bool) {
	if x, found := r.cache.Get(userId.String()); found {
		return x.(*WorkflowSession), true
	}
	return nil, false
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
