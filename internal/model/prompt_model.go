package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Prompt struct {
	Id          uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string                      `gorm:"type:varchar(255);not null;index"`
	Description string                      `gorm:"type:text"`
	Content     string                      `gorm:"type:text;not null"`
	Category    string                      `gorm:"type:varchar(100);not null;index"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb;default:'[]'"`
	CopyCount   int                         `gorm:"default:0"`
	LikeCount   int                         `gorm:"default:0"`
	Rating      float64                     `gorm:"type:numeric(2,1);default:0"`
	IsFeatured  bool                        `gorm:"default:false"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt              `gorm:"index"`
}

func (Prompt) TableName() string {
	return "prompts"
}
