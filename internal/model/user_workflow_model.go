package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserWorkflow holds one row per user: the completion flag of every step
// the user has touched, keyed by step id.
type UserWorkflow struct {
	UserId       uuid.UUID                           `gorm:"type:uuid;primaryKey"`
	WorkflowData datatypes.JSONType[map[string]bool] `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt    time.Time                           `gorm:"autoCreateTime"`
	UpdatedAt    time.Time                           `gorm:"autoUpdateTime"`
}

func (UserWorkflow) TableName() string {
	return "user_workflows"
}
