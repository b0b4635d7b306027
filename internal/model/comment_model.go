package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID      `gorm:"type:uuid;not null;index"`
	ItemType        string         `gorm:"type:varchar(20);not null;index:idx_comments_item,priority:1"`
	ItemId          uuid.UUID      `gorm:"type:uuid;not null;index:idx_comments_item,priority:2"`
	ParentCommentId *uuid.UUID     `gorm:"type:uuid;index"`
	Content         string         `gorm:"type:text;not null"`
	LikeCount       int            `gorm:"default:0"`
	CreatedAt       time.Time      `gorm:"autoCreateTime;index:idx_comments_item,priority:3"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Comment) TableName() string {
	return "comments"
}
