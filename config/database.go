package config

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// dbPath is the live database file backing DB. Backups copy this file.
var dbPath string

func ConnectDB() {
	if err := openDB(App.DBPath); err != nil {
		logrus.WithError(err).WithField("path", App.DBPath).Fatal("Failed to connect database")
	}
}

func openDB(path string) error {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}
	DB = db
	dbPath = path
	return nil
}

// DBPath returns the path of the live database file, empty if not connected.
func DBPath() string {
	return dbPath
}

// CloseDB releases the underlying connection pool. Required before the live
// database file is overwritten by a restore.
func CloseDB() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ReopenDB reconnects to the live database file after a restore.
func ReopenDB() error {
	return openDB(dbPath)
}
