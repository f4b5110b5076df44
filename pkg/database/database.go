package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB opens the database the document row lives in: postgres when
// DATABASE_URL is set, otherwise a local sqlite file (SQLITE_PATH, default
// erp.db). Single-user tooling, so sqlite is the normal case.
func ConnectDB() *gorm.DB {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	var (
		db  *gorm.DB
		err error
	)
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // no implicit prepared statements behind poolers
		}), &gorm.Config{Logger: newLogger, PrepareStmt: false})
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "erp.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{Logger: newLogger})
	}

	if err != nil {
		log.Fatal("Failed to connect to database. \n", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established")
	return db
}
