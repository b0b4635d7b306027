package dto

import (
	"grantflow-be/pkg/workflow"

	"github.com/google/uuid"
)

type CatalogResponse struct {
	Phases []workflow.PhaseGroup[workflow.StepDefinition] `json:"phases"`
	Total  int                                            `json:"total"`
}

type WorkflowResponse struct {
	Phases  []workflow.PhaseGroup[workflow.StepState] `json:"phases"`
	Summary workflow.Summary                          `json:"summary"`
	// Degraded is set when stored progress could not be loaded and the view
	// shows every step as incomplete.
	Degraded  bool `json:"degraded"`
	Anonymous bool `json:"anonymous"`
}

type ToggleStepResponse struct {
	StepId      string           `json:"step_id"`
	IsCompleted bool             `json:"is_completed"`
	Known       bool             `json:"known"`
	Summary     workflow.Summary `json:"summary"`
}

type StepResourcesResponse struct {
	StepId    string              `json:"step_id"`
	Prompts   []*PromptResponse   `json:"prompts"`
	Templates []*TemplateResponse `json:"templates"`
}

// WorkflowSaveCommand is the payload queued for asynchronous persistence.
type WorkflowSaveCommand struct {
	UserId   uuid.UUID       `json:"user_id"`
	Progress map[string]bool `json:"progress"`
	Sequence uint64          `json:"sequence"`
}
