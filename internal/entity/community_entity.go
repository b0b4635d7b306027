package entity

import (
	"time"

	"github.com/google/uuid"
)

type Favorite struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	ItemType  string
	ItemId    uuid.UUID
	CreatedAt time.Time
}

type Comment struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	ItemType        string
	ItemId          uuid.UUID
	ParentCommentId *uuid.UUID
	Content         string
	LikeCount       int
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

type UserInteraction struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	ItemType        string
	ItemId          uuid.UUID
	InteractionType string
	Metadata        map[string]interface{}
	CreatedAt       time.Time
}

type UserProfile struct {
	UserId       uuid.UUID
	Name         string
	Email        string
	Institution  string
	Department   string
	ResearchArea string
	Website      string
	Bio          string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

type LeaderboardEntry struct {
	Rank                int
	UserId              uuid.UUID
	Name                string
	Institution         string
	Points              int64
	PromptsCopied       int64
	TemplatesDownloaded int64
	Comments            int64
}
