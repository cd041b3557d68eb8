package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupDB opens the application database. DATABASE_URL selects a
// PostgreSQL DSN; otherwise a local SQLite file is used.
func SetupDB(cfg Config) *gorm.DB {
	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			panic("Failed to connect to database")
		}
		log.Println("Setup postgres database")
		return db
	}

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseFile), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to database")
	}
	log.Printf("Setup sqlite database (%s)", cfg.DatabaseFile)
	return db
}

// SetupTestDB returns an in-memory SQLite database for tests.
func SetupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to database")
	}
	return db
}
