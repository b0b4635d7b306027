package model

import (
	"time"

	"github.com/google/uuid"
)

type Favorite struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_item,priority:1"`
	ItemType  string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_favorites_user_item,priority:2"`
	ItemId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_item,priority:3;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Favorite) TableName() string {
	return "favorites"
}
