package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByInteractionType struct {
	Type string
}

func (s ByInteractionType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("interaction_type = ?", s.Type)
}
