package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MustOpen opens the database connection or exits.
func MustOpen(dsn string) *gorm.DB {
	if dsn == "" {
		log.Fatal("DB_DSN is empty (check your .env)")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}
	return db
}
