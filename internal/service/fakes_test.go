package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"grantflow-be/internal/entity"
	"grantflow-be/internal/model"
	"grantflow-be/internal/pkg/logger"
	"grantflow-be/internal/repository/contract"
	"grantflow-be/internal/repository/specification"
	"grantflow-be/internal/repository/unitofwork"
	"grantflow-be/pkg/events"

	"github.com/google/uuid"
)

var errDown = errors.New("database unavailable")

// fakeDB backs every fake repository. Specifications other than the id,
// owner and item filters are ignored.
type fakeDB struct {
	mu sync.Mutex

	workflows     map[uuid.UUID]map[string]bool
	fetchErr      error
	upsertErr     error
	upsertCalls   int
	prompts       []*entity.Prompt
	templates     []*entity.Template
	favorites     []*entity.Favorite
	comments      []*entity.Comment
	interactions  []*entity.UserInteraction
	profiles      map[uuid.UUID]*entity.UserProfile
	leaderboard   []*entity.LeaderboardEntry
	notifications []model.Notification
	notifTypes    map[string]*model.NotificationType
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		workflows:  make(map[uuid.UUID]map[string]bool),
		profiles:   make(map[uuid.UUID]*entity.UserProfile),
		notifTypes: make(map[string]*model.NotificationType),
	}
}

type filter struct {
	id       uuid.UUID
	userId   uuid.UUID
	itemType string
	itemId   uuid.UUID
}

func matches(specs []specification.Specification, f filter) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if s.ID != f.id {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if id == f.id {
					found = true
				}
			}
			if !found {
				return false
			}
		case specification.UserOwnedBy:
			if s.UserID != f.userId {
				return false
			}
		case specification.ByItem:
			if s.ItemType != f.itemType || s.ItemID != f.itemId {
				return false
			}
		}
	}
	return true
}

type fakeFactory struct{ db *fakeDB }

func (f fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return fakeUow{db: f.db}
}

type fakeUow struct{ db *fakeDB }

func (u fakeUow) Begin(ctx context.Context) error { return nil }
func (u fakeUow) Commit() error                   { return nil }
func (u fakeUow) Rollback() error                 { return nil }

func (u fakeUow) UserWorkflowRepository() contract.UserWorkflowRepository {
	return fakeWorkflowRepo{u.db}
}
func (u fakeUow) PromptRepository() contract.PromptRepository     { return fakePromptRepo{u.db} }
func (u fakeUow) TemplateRepository() contract.TemplateRepository { return fakeTemplateRepo{u.db} }
func (u fakeUow) FavoriteRepository() contract.FavoriteRepository { return fakeFavoriteRepo{u.db} }
func (u fakeUow) CommentRepository() contract.CommentRepository   { return fakeCommentRepo{u.db} }
func (u fakeUow) UserProfileRepository() contract.UserProfileRepository {
	return fakeProfileRepo{u.db}
}
func (u fakeUow) UserInteractionRepository() contract.UserInteractionRepository {
	return fakeInteractionRepo{u.db}
}
func (u fakeUow) NotificationRepository() contract.NotificationRepository {
	return fakeNotificationRepo{u.db}
}

type fakeWorkflowRepo struct{ db *fakeDB }

func (r fakeWorkflowRepo) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserWorkflow, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fetchErr != nil {
		return nil, r.db.fetchErr
	}
	steps, ok := r.db.workflows[userId]
	if !ok {
		return nil, nil
	}
	copied := make(map[string]bool, len(steps))
	for k, v := range steps {
		copied[k] = v
	}
	return &entity.UserWorkflow{UserId: userId, Steps: copied}, nil
}

func (r fakeWorkflowRepo) Upsert(ctx context.Context, workflow *entity.UserWorkflow) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.upsertCalls++
	if r.db.upsertErr != nil {
		return r.db.upsertErr
	}
	copied := make(map[string]bool, len(workflow.Steps))
	for k, v := range workflow.Steps {
		copied[k] = v
	}
	r.db.workflows[workflow.UserId] = copied
	return nil
}

func (db *fakeDB) stored(userId uuid.UUID) (map[string]bool, int) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.workflows[userId], db.upsertCalls
}

type fakePromptRepo struct{ db *fakeDB }

func (r fakePromptRepo) Create(ctx context.Context, p *entity.Prompt) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if p.Id == uuid.Nil {
		p.Id = uuid.New()
	}
	r.db.prompts = append(r.db.prompts, p)
	return nil
}

func (r fakePromptRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Prompt, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r fakePromptRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Prompt, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.Prompt
	for _, p := range r.db.prompts {
		if matches(specs, filter{id: p.Id}) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r fakePromptRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r fakePromptRepo) IncrementCopyCount(ctx context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, p := range r.db.prompts {
		if p.Id == id {
			p.CopyCount++
		}
	}
	return nil
}

type fakeTemplateRepo struct{ db *fakeDB }

func (r fakeTemplateRepo) Create(ctx context.Context, t *entity.Template) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if t.Id == uuid.Nil {
		t.Id = uuid.New()
	}
	r.db.templates = append(r.db.templates, t)
	return nil
}

func (r fakeTemplateRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Template, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r fakeTemplateRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Template, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.Template
	for _, t := range r.db.templates {
		if matches(specs, filter{id: t.Id}) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r fakeTemplateRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r fakeTemplateRepo) IncrementDownloadCount(ctx context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, t := range r.db.templates {
		if t.Id == id {
			t.DownloadCount++
		}
	}
	return nil
}

func (r fakeTemplateRepo) SumDownloads(ctx context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var total int64
	for _, t := range r.db.templates {
		total += int64(t.DownloadCount)
	}
	return total, nil
}

type fakeFavoriteRepo struct{ db *fakeDB }

func (r fakeFavoriteRepo) Create(ctx context.Context, f *entity.Favorite) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	f.Id = uuid.New()
	f.CreatedAt = time.Now()
	r.db.favorites = append(r.db.favorites, f)
	return nil
}

func (r fakeFavoriteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	kept := r.db.favorites[:0]
	for _, f := range r.db.favorites {
		if f.Id != id {
			kept = append(kept, f)
		}
	}
	r.db.favorites = kept
	return nil
}

func (r fakeFavoriteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Favorite, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r fakeFavoriteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Favorite, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.Favorite
	for _, f := range r.db.favorites {
		if matches(specs, filter{id: f.Id, userId: f.UserId, itemType: f.ItemType, itemId: f.ItemId}) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r fakeFavoriteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeCommentRepo struct{ db *fakeDB }

func (r fakeCommentRepo) Create(ctx context.Context, c *entity.Comment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c.Id = uuid.New()
	c.CreatedAt = time.Now()
	r.db.comments = append(r.db.comments, c)
	return nil
}

func (r fakeCommentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Comment, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r fakeCommentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Comment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.Comment
	for _, c := range r.db.comments {
		if matches(specs, filter{id: c.Id, userId: c.UserId, itemType: c.ItemType, itemId: c.ItemId}) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r fakeCommentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeInteractionRepo struct{ db *fakeDB }

func (r fakeInteractionRepo) Create(ctx context.Context, i *entity.UserInteraction) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	i.Id = uuid.New()
	r.db.interactions = append(r.db.interactions, i)
	return nil
}

func (r fakeInteractionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var n int64
	for _, i := range r.db.interactions {
		if matches(specs, filter{id: i.Id, userId: i.UserId, itemType: i.ItemType, itemId: i.ItemId}) {
			n++
		}
	}
	return n, nil
}

func (r fakeInteractionRepo) CountByType(ctx context.Context, userId uuid.UUID) (map[string]int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make(map[string]int64)
	for _, i := range r.db.interactions {
		if i.UserId == userId {
			out[i.InteractionType]++
		}
	}
	return out, nil
}

func (r fakeInteractionRepo) Leaderboard(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if limit < len(r.db.leaderboard) {
		return r.db.leaderboard[:limit], nil
	}
	return r.db.leaderboard, nil
}

func (r fakeInteractionRepo) CountDistinctUsers(ctx context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	seen := make(map[uuid.UUID]struct{})
	for _, i := range r.db.interactions {
		seen[i.UserId] = struct{}{}
	}
	return int64(len(seen)), nil
}

type fakeProfileRepo struct{ db *fakeDB }

func (r fakeProfileRepo) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserProfile, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.profiles[userId], nil
}

func (r fakeProfileRepo) Upsert(ctx context.Context, p *entity.UserProfile) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.profiles[p.UserId] = p
	return nil
}

func (r fakeProfileRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return int64(len(r.db.profiles)), nil
}

type fakeNotificationRepo struct{ db *fakeDB }

func (r fakeNotificationRepo) CreateNotification(ctx context.Context, n *model.Notification) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.notifications = append(r.db.notifications, *n)
	return nil
}

func (r fakeNotificationRepo) GetNotificationsByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []model.Notification
	for _, n := range r.db.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

func (r fakeNotificationRepo) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var n int64
	for _, x := range r.db.notifications {
		if x.UserID == userID && !x.IsRead {
			n++
		}
	}
	return n, nil
}

func (r fakeNotificationRepo) MarkAsRead(ctx context.Context, userID, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i := range r.db.notifications {
		if r.db.notifications[i].ID == id && r.db.notifications[i].UserID == userID {
			r.db.notifications[i].IsRead = true
			return nil
		}
	}
	return contract.ErrNotificationNotFound
}

func (r fakeNotificationRepo) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i := range r.db.notifications {
		if r.db.notifications[i].UserID == userID {
			r.db.notifications[i].IsRead = true
		}
	}
	return nil
}

func (r fakeNotificationRepo) GetNotificationTypeByCode(ctx context.Context, code string) (*model.NotificationType, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	t, ok := r.db.notifTypes[code]
	if !ok || !t.IsActive {
		return nil, nil
	}
	return t, nil
}

func (r fakeNotificationRepo) UpsertNotificationType(ctx context.Context, t *model.NotificationType) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.notifTypes[t.Code] = t
	return nil
}

// recordingEvents captures published domain events.
type recordingEvents struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingEvents) Publish(ctx context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recordingEvents) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.EventType()
	}
	return out
}

// recordingQueue captures payloads instead of sending them to watermill.
type recordingQueue struct {
	mu       sync.Mutex
	payloads [][]byte
	err      error
}

func (q *recordingQueue) Publish(ctx context.Context, payload any) error {
	if q.err != nil {
		return q.err
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.payloads = append(q.payloads, raw)
	return nil
}

func (q *recordingQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.payloads)
}

func nopLogger() logger.ILogger {
	return logger.NewNopLogger()
}
