package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"opticpro-backend/config"
)

// BackupService copies the live database file to and from a backup
// directory. Backups are plain file copies: no manifest, no checksum, no
// transactional guarantee. A crash mid-copy during restore corrupts the
// live store; deployments that care must serialize restores externally.
type BackupService struct {
	backupDir string
}

func NewBackupService() *BackupService {
	return &BackupService{backupDir: config.App.BackupDir}
}

// Create copies the live database file to backupPath, creating parent
// directories and overwriting any existing file. Failures are logged and
// reported as false, never as a panic.
func (s *BackupService) Create(backupPath string) bool {
	dbPath := config.DBPath()
	if dbPath == "" {
		logrus.Error("Database path is not configured")
		return false
	}

	if _, err := os.Stat(dbPath); err != nil {
		logrus.WithError(err).WithField("path", dbPath).Error("Source database file not found")
		return false
	}

	if dir := filepath.Dir(backupPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logrus.WithError(err).WithField("path", dir).Error("Failed to create backup directory")
			return false
		}
	}

	if err := copyFile(dbPath, backupPath); err != nil {
		logrus.WithError(err).WithField("path", backupPath).Error("Failed to create database backup")
		return false
	}

	logrus.WithField("path", backupPath).Info("Database backup created")
	return true
}

// Restore overwrites the live database file with backupPath's contents.
// The live connection is released first and reopened afterwards.
func (s *BackupService) Restore(backupPath string) bool {
	if _, err := os.Stat(backupPath); err != nil {
		logrus.WithError(err).WithField("path", backupPath).Error("Backup file not found")
		return false
	}

	dbPath := config.DBPath()
	if dbPath == "" {
		logrus.Error("Database path is not configured")
		return false
	}

	if err := config.CloseDB(); err != nil {
		logrus.WithError(err).Error("Failed to close database connection")
		return false
	}

	if err := copyFile(backupPath, dbPath); err != nil {
		logrus.WithError(err).WithField("path", backupPath).Error("Failed to restore database")
		// Reconnect regardless so the app keeps serving whatever is on disk.
		if reopenErr := config.ReopenDB(); reopenErr != nil {
			logrus.WithError(reopenErr).Error("Failed to reopen database")
		}
		return false
	}

	if err := config.ReopenDB(); err != nil {
		logrus.WithError(err).Error("Failed to reopen database after restore")
		return false
	}

	logrus.WithField("path", backupPath).Info("Database restored from backup")
	return true
}

// CreateScheduled writes a timestamp-named backup into the configured
// backup directory.
func (s *BackupService) CreateScheduled() bool {
	timestamp := time.Now().Format("20060102_150405")
	backupPath := filepath.Join(s.backupDir, fmt.Sprintf("opticpro_backup_%s.db", timestamp))
	return s.Create(backupPath)
}

// StartScheduler runs timestamped backups on the given cron spec.
func (s *BackupService) StartScheduler(spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		s.CreateScheduled()
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	logrus.WithField("schedule", spec).Info("Backup scheduler started")
	return c, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
