package mapper

import (
	"time"

	"grantflow-be/internal/entity"
	"grantflow-be/internal/model"

	"gorm.io/datatypes"
)

type UserWorkflowMapper struct{}

func NewUserWorkflowMapper() *UserWorkflowMapper {
	return &UserWorkflowMapper{}
}

func (m *UserWorkflowMapper) ToEntity(w *model.UserWorkflow) *entity.UserWorkflow {
	if w == nil {
		return nil
	}
	steps := w.WorkflowData.Data()
	if steps == nil {
		steps = map[string]bool{}
	}
	return &entity.UserWorkflow{
		UserId:    w.UserId,
		Steps:     steps,
		UpdatedAt: timePtr(w.UpdatedAt),
	}
}

func (m *UserWorkflowMapper) ToModel(w *entity.UserWorkflow) *model.UserWorkflow {
	if w == nil {
		return nil
	}
	steps := w.Steps
	if steps == nil {
		steps = map[string]bool{}
	}
	var updatedAt time.Time
	if w.UpdatedAt != nil {
		updatedAt = *w.UpdatedAt
	}
	return &model.UserWorkflow{
		UserId:       w.UserId,
		WorkflowData: datatypes.NewJSONType(steps),
		UpdatedAt:    updatedAt,
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeVal(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
