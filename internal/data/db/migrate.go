package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/coursekey/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	err := db.AutoMigrate(
		// Content hierarchy
		&domain.Course{},
		&domain.Division{},
		&domain.Item{},
		&domain.LearningObjective{},
		&domain.Material{},

		// People and conversations
		&domain.User{},
		&domain.Chat{},
		&domain.Message{},

		// Moderation
		&domain.Flag{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
