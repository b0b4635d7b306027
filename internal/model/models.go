package model

import (
	"log"

	"gorm.io/gorm"
)

// All lists every table-backed model in migration order.
func All() []interface{} {
	return []interface{}{
		&UserProfile{},
		&UserWorkflow{},
		&Prompt{},
		&Template{},
		&Favorite{},
		&Comment{},
		&UserInteraction{},
		&NotificationType{},
		&Notification{},
	}
}

// Migrate enables pgcrypto for gen_random_uuid and auto-migrates every model.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Printf("Warn: Failed to enable pgcrypto: %v. Continuing...", err)
	}
	return db.AutoMigrate(All()...)
}
