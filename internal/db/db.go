package db

import (
	"log"

	"github.com/sharan-555/portfolio-api/internal/analytics"
	"github.com/sharan-555/portfolio-api/internal/chat"
	"github.com/sharan-555/portfolio-api/internal/contact"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func Connect(dsn string) *gorm.DB {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		log.Fatalf("db migrate: %v", err)
	}
	return gdb
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&chat.Session{},
		&chat.Message{},
		&contact.Message{},
		&analytics.Record{},
	)
}
