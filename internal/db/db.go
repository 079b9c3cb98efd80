package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to the postgres database described by dsn.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
