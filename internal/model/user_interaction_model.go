package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserInteraction is an append-only log of copies, downloads and comments.
// Leaderboard points are derived from it.
type UserInteraction struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID      `gorm:"type:uuid;not null;index:idx_interactions_user,priority:1"`
	ItemType        string         `gorm:"type:varchar(20);not null"`
	ItemId          uuid.UUID      `gorm:"type:uuid;not null;index"`
	InteractionType string         `gorm:"type:varchar(20);not null;index:idx_interactions_user,priority:2"`
	Metadata        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
}

func (UserInteraction) TableName() string {
	return "user_interactions"
}

// LeaderboardRow is a read model produced by the leaderboard aggregate query.
type LeaderboardRow struct {
	UserId              uuid.UUID
	Name                string
	Institution         string
	Points              int64
	PromptsCopied       int64
	TemplatesDownloaded int64
	Comments            int64
}
