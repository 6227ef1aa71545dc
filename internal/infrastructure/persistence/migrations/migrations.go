package migrations

import (
	"gorm.io/gorm"

	"saigonbistro/internal/infrastructure/persistence/models"
)

func MigrateTicketTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TicketModel{},
		&models.CommentModel{},
		&models.FeedbackModel{},
	)
}

func MigrateUserTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.OrderModel{},
	)
}

// MigrateAll runs every table migration in dependency order.
func MigrateAll(db *gorm.DB) error {
	if err := MigrateUserTables(db); err != nil {
		return err
	}
	return MigrateTicketTables(db)
}
