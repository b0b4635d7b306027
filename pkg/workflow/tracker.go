package workflow

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"
)

// StepState is a step definition plus the user's completion flag.
type StepState struct {
	StepDefinition
	IsCompleted bool `json:"is_completed"`
}

// ProgressStore persists one completion map per user.
// FetchProgress returns a nil map and no error when the user has no record.
type ProgressStore interface {
	FetchProgress(ctx context.Context, userID uuid.UUID) (map[string]bool, error)
	UpsertProgress(ctx context.Context, userID uuid.UUID, progress map[string]bool) error
}

// Tracker reconciles stored progress with a catalog.
// uuid.Nil is treated as the anonymous user: nothing is read or written.
type Tracker struct {
	catalog *Catalog
	store   ProgressStore
}

func NewTracker(catalog *Catalog, store ProgressStore) *Tracker {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Tracker{
		catalog: catalog,
		store:   store,
	}
}

func (t *Tracker) Catalog() *Catalog {
	return t.catalog
}

// Load returns the user's current view of the checklist. When the store
// fails the all-incomplete state is returned together with an error wrapping
// ErrProgressLoadFailed, so callers can render it and report the failure.
func (t *Tracker) Load(ctx context.Context, userID uuid.UUID) ([]StepState, error) {
	steps := t.catalog.ListSteps()
	if userID == uuid.Nil {
		return Merge(steps, nil), nil
	}

	progress, err := t.store.FetchProgress(ctx, userID)
	if err != nil {
		return Merge(steps, nil), fmt.Errorf("%w: %w", ErrProgressLoadFailed, err)
	}
	return Merge(steps, progress), nil
}

// Save writes the complete snapshot of state for userID.
func (t *Tracker) Save(ctx context.Context, userID uuid.UUID, state []StepState) error {
	if userID == uuid.Nil {
		return nil
	}
	if err := t.store.UpsertProgress(ctx, userID, Snapshot(state)); err != nil {
		return fmt.Errorf("%w: %w", ErrProgressSaveFailed, err)
	}
	return nil
}

// Merge overlays a completion map onto step definitions. Missing ids are
// incomplete; ids in progress that are not in steps are ignored.
func Merge(steps []StepDefinition, progress map[string]bool) []StepState {
	state := make([]StepState, len(steps))
	for i, s := range steps {
		state[i] = StepState{
			StepDefinition: s,
			IsCompleted:    progress[s.ID],
		}
	}
	return state
}

// Toggle flips the completion flag of stepID in a copy of state. An unknown
// id yields an unchanged copy.
func Toggle(state []StepState, stepID string) []StepState {
	next, _ := ToggleStep(state, stepID)
	return next
}

// ToggleStep is Toggle that also reports unknown ids with
// ErrReferenceNotFound. The returned slice is always a usable copy.
func ToggleStep(state []StepState, stepID string) ([]StepState, error) {
	next := slices.Clone(state)
	for i := range next {
		if next[i].ID == stepID {
			next[i].IsCompleted = !next[i].IsCompleted
			return next, nil
		}
	}
	return next, fmt.Errorf("%w: %s", ErrReferenceNotFound, stepID)
}

// Snapshot serializes every step of state into a complete id -> flag map.
func Snapshot(state []StepState) map[string]bool {
	out := make(map[string]bool, len(state))
	for _, s := range state {
		out[s.ID] = s.IsCompleted
	}
	return out
}

func CompletedCount(state []StepState) int {
	n := 0
	for _, s := range state {
		if s.IsCompleted {
			n++
		}
	}
	return n
}

// ProgressRatio is completed/total, or 0 for an empty state.
func ProgressRatio(state []StepState) float64 {
	if len(state) == 0 {
		return 0
	}
	return float64(CompletedCount(state)) / float64(len(state))
}

// IsComplete reports whether every step is done. Empty state is not complete.
func IsComplete(state []StepState) bool {
	return len(state) > 0 && CompletedCount(state) == len(state)
}

// Summary is the aggregate shown next to the checklist.
type Summary struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Ratio     float64 `json:"ratio"`
	Percent   int     `json:"percent"`
}

func Summarize(state []StepState) Summary {
	ratio := ProgressRatio(state)
	return Summary{
		Completed: CompletedCount(state),
		Total:     len(state),
		Ratio:     ratio,
		Percent:   int(math.Round(ratio * 100)),
	}
}
