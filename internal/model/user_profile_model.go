package model

import (
	"time"

	"github.com/google/uuid"
)

type UserProfile struct {
	UserId       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255)"`
	Email        string    `gorm:"type:varchar(255);index"`
	Institution  string    `gorm:"type:varchar(255)"`
	Department   string    `gorm:"type:varchar(255)"`
	ResearchArea string    `gorm:"type:varchar(255)"`
	Website      string    `gorm:"type:varchar(255)"`
	Bio          string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
