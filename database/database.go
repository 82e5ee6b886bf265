package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/KENOx7/qayib/config"
	"github.com/KENOx7/qayib/models"
)

var DB *gorm.DB

// Connect opens the store, migrates the schema and seeds empty tables.
// Any failure here is fatal: the app cannot run without its database.
func Connect(cfg *config.Config) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	default:
		db, err = gorm.Open(sqlite.Open(cfg.DBFile), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
	if err := Seed(DB); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Subject{},
		&models.Absence{},
	)
}
