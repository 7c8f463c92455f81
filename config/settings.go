package config

import (
	"os"
	"strconv"
)

// Settings holds everything the app reads from the environment, loaded once
// at startup. Tests may swap App for a custom instance.
type Settings struct {
	Port           string
	DBPath         string
	BackupDir      string
	BackupSchedule string // cron spec; empty disables scheduled backups

	// Customer delete is an optional capability in some deployments.
	CustomerDeleteEnabled bool

	// One-time administrator seed applied on every startup (idempotent).
	AdminUserName string
	AdminEmail    string
	AdminPassword string
}

var App = defaultSettings()

func defaultSettings() *Settings {
	return &Settings{
		Port:      "8080",
		DBPath:    "opticpro.db",
		BackupDir: "backups",
	}
}

// LoadSettings reads the environment into App.
func LoadSettings() *Settings {
	s := defaultSettings()

	if v := os.Getenv("PORT"); v != "" {
		s.Port = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		s.DBPath = v
	}
	if v := os.Getenv("BACKUP_DIR"); v != "" {
		s.BackupDir = v
	}
	s.BackupSchedule = os.Getenv("BACKUP_SCHEDULE")

	if v := os.Getenv("FEATURE_CUSTOMER_DELETE"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			s.CustomerDeleteEnabled = enabled
		}
	}

	s.AdminUserName = os.Getenv("ADMIN_USERNAME")
	s.AdminEmail = os.Getenv("ADMIN_EMAIL")
	s.AdminPassword = os.Getenv("ADMIN_PASSWORD")

	App = s
	return s
}
