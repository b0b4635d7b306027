package service

import (
	"context"
	"errors"
	"sync/atomic"

	"grantflow-be/internal/dto"
	"grantflow-be/internal/pkg/logger"
	"grantflow-be/internal/repository/memory"
	"grantflow-be/internal/repository/unitofwork"
	"grantflow-be/pkg/events"
	"grantflow-be/pkg/workflow"

	"github.com/google/uuid"
)

type IWorkflowService interface {
	Catalog(ctx context.Context) *dto.CatalogResponse
	Get(ctx context.Context, userId uuid.UUID) (*dto.WorkflowResponse, error)
	Toggle(ctx context.Context, userId uuid.UUID, stepId string) (*dto.ToggleStepResponse, error)
	Progress(ctx context.Context, userId uuid.UUID) (*workflow.Summary, error)
	Resources(ctx context.Context, stepId string) (*dto.StepResourcesResponse, error)
	// Queued counts save commands accepted by the queue since start.
	Queued() uint64
}

type workflowService struct {
	tracker    *workflow.Tracker
	sessions   *memory.SessionRepository
	saveQueue  IPublisherService
	events     events.Publisher
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	sequence   atomic.Uint64
	queued     atomic.Uint64
}

func NewWorkflowService(
	tracker *workflow.Tracker,
	sessions *memory.SessionRepository,
	saveQueue IPublisherService,
	eventPublisher events.Publisher,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IWorkflowService {
	return &workflowService{
		tracker:    tracker,
		sessions:   sessions,
		saveQueue:  saveQueue,
		events:     eventPublisher,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *workflowService) Queued() uint64 {
	return s.queued.Load()
}

func (s *workflowService) Catalog(ctx context.Context) *dto.CatalogResponse {
	steps := s.tracker.Catalog().ListSteps()
	return &dto.CatalogResponse{
		Phases: workflow.GroupByPhase(steps),
		Total:  len(steps),
	}
}

// session returns the user's live session with its mutex held. The caller
// must unlock it. A session whose last load failed is retried until the user
// makes a local change.
func (s *workflowService) session(ctx context.Context, userId uuid.UUID) *memory.WorkflowSession {
	session := s.sessions.GetOrCreate(userId)
	session.Mu.Lock()
	if session.Loaded {
		return session
	}

	state, err := s.tracker.Load(ctx, userId)
	session.State = state
	session.Degraded = err != nil
	session.Loaded = err == nil
	if err != nil {
		s.logger.Warn("WorkflowService", "Failed to load workflow progress, showing empty checklist", map[string]interface{}{
			"user_id": userId,
			"error":   err,
		})
	}
	return session
}

func (s *workflowService) Get(ctx context.Context, userId uuid.UUID) (*dto.WorkflowResponse, error) {
	if userId == uuid.Nil {
		state, _ := s.tracker.Load(ctx, userId)
		return &dto.WorkflowResponse{
			Phases:    workflow.GroupByPhase(state),
			Summary:   workflow.Summarize(state),
			Anonymous: true,
		}, nil
	}

	session := s.session(ctx, userId)
	defer session.Mu.Unlock()

	return &dto.WorkflowResponse{
		Phases:   workflow.GroupByPhase(session.State),
		Summary:  workflow.Summarize(session.State),
		Degraded: session.Degraded,
	}, nil
}

// Toggle flips one step in the session and queues a full-snapshot save. It
// never waits for the save; failures surface as notifications.
func (s *workflowService) Toggle(ctx context.Context, userId uuid.UUID, stepId string) (*dto.ToggleStepResponse, error) {
	if userId == uuid.Nil {
		state, _ := s.tracker.Load(ctx, userId)
		next, err := workflow.ToggleStep(state, stepId)
		return toggleResponse(next, stepId, err == nil), nil
	}

	session := s.session(ctx, userId)
	defer session.Mu.Unlock()

	before := session.State
	next, err := workflow.ToggleStep(before, stepId)
	if errors.Is(err, workflow.ErrReferenceNotFound) {
		s.logger.Debug("WorkflowService", "Ignoring toggle of unknown step", map[string]interface{}{"user_id": userId, "step_id": stepId})
		return toggleResponse(next, stepId, false), nil
	}

	session.State = next
	// Local state is now authoritative even if the initial load failed.
	session.Loaded = true
	session.Degraded = false

	cmd := dto.WorkflowSaveCommand{
		UserId:   userId,
		Progress: workflow.Snapshot(next),
		Sequence: s.sequence.Add(1),
	}
	// Enqueued under the session lock so a user's commands are numbered in
	// the order their toggles were applied.
	if err := s.saveQueue.Publish(ctx, cmd); err != nil {
		s.logger.Error("WorkflowService", "Failed to queue workflow save", map[string]interface{}{"user_id": userId, "error": err})
		s.publishEvent(ctx, events.WorkflowSaveFailed, map[string]interface{}{
			"user_id": userId.String(),
			"reason":  err.Error(),
		})
	} else {
		s.queued.Add(1)
	}

	if !workflow.IsComplete(before) && workflow.IsComplete(next) {
		s.publishEvent(ctx, events.WorkflowCompleted, map[string]interface{}{
			"user_id":     userId.String(),
			"total_steps": len(next),
		})
	}

	return toggleResponse(next, stepId, true), nil
}

func toggleResponse(state []workflow.StepState, stepId string, known bool) *dto.ToggleStepResponse {
	res := &dto.ToggleStepResponse{
		StepId:  stepId,
		Known:   known,
		Summary: workflow.Summarize(state),
	}
	for _, st := range state {
		if st.ID == stepId {
			res.IsCompleted = st.IsCompleted
			break
		}
	}
	return res
}

func (s *workflowService) Progress(ctx context.Context, userId uuid.UUID) (*workflow.Summary, error) {
	res, err := s.Get(ctx, userId)
	if err != nil {
		return nil, err
	}
	return &res.Summary, nil
}

func (s *workflowService) Resources(ctx context.Context, stepId string) (*dto.StepResourcesResponse, error) {
	step, ok := s.tracker.Catalog().Step(stepId)
	if !ok {
		return nil, ErrNotFound
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	prompts, err := uow.PromptRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	templates, err := uow.TemplateRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.StepResourcesResponse{
		StepId:    step.ID,
		Prompts:   make([]*dto.PromptResponse, 0),
		Templates: make([]*dto.TemplateResponse, 0),
	}
	for _, p := range workflow.MatchReferences(step.PromptRefs, prompts) {
		res.Prompts = append(res.Prompts, toPromptResponse(p))
	}
	for _, t := range workflow.MatchReferences(step.TemplateRefs, templates) {
		res.Templates = append(res.Templates, toTemplateResponse(t))
	}
	return res, nil
}

func (s *workflowService) publishEvent(ctx context.Context, eventType string, payload map[string]interface{}) {
	if err := s.events.Publish(ctx, events.New(eventType, payload)); err != nil {
		s.logger.Warn("WorkflowService", "Failed to publish event", map[string]interface{}{"type": eventType, "error": err})
	}
}
