package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"opticpro-backend/config"
	"opticpro-backend/models"
	"opticpro-backend/routes"
	"opticpro-backend/services"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}
	config.LoadSettings()
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Customer{},
		&models.Prescription{},
		&models.Order{},
		&models.Account{},
		&models.Role{},
	)

	// Administrator seed: idempotent, runs on every startup.
	if err := services.NewAccountService(config.DB).EnsureSeed(config.App); err != nil {
		logrus.WithError(err).Fatal("Failed to seed roles and admin account")
	}
}

func main() {
	if spec := config.App.BackupSchedule; spec != "" {
		if _, err := services.NewBackupService().StartScheduler(spec); err != nil {
			logrus.WithError(err).WithField("schedule", spec).Error("Invalid backup schedule")
		}
	}

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + config.App.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
