package database

import (
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/models"
)

// New opens the sqlite database at path, creating parent directories
// as needed. TranslateError makes unique-constraint violations surface
// as gorm.ErrDuplicatedKey, which the repositories rely on: the
// database constraint, not application logic, is the source of truth
// for duplicate emails and usernames.
func New(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	return gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.RefreshToken{},
		&models.Item{},
		&models.Booking{},
		&models.ContactMessage{},
	)
}
