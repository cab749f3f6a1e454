package db

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/textloom/rephrase-api/internal/models"
	"github.com/textloom/rephrase-api/internal/rephrase"
)

// Connect opens the MySQL connection and runs schema migration.
func Connect(dsn string) *gorm.DB {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	if err := gdb.AutoMigrate(
		&models.User{},
		&rephrase.Session{},
		&rephrase.Variant{},
	); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	return gdb
}
