package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserWorkflow struct {
	UserId    uuid.UUID
	Steps     map[string]bool
	UpdatedAt *time.Time
}
