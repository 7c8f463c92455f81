package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"opticpro-backend/config"
	"opticpro-backend/controllers"
	"opticpro-backend/models"
	"opticpro-backend/utils"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)

			customers.GET("/:id/prescriptions", controllers.GetCustomerPrescriptions)
			customers.POST("/:id/prescriptions", controllers.CreatePrescription)
		}

		// Prescription routes
		prescriptions := api.Group("/prescriptions")
		{
			prescriptions.GET("/:id", controllers.GetPrescription)
			prescriptions.PUT("/:id", controllers.UpdatePrescription)
			prescriptions.DELETE("/:id", controllers.DeletePrescription)
		}

		// Order routes
		orders := api.Group("/orders")
		{
			orders.POST("", controllers.CreateOrder)
			orders.GET("", controllers.GetOrders)
			orders.GET("/:id", controllers.GetOrder)
			orders.PUT("/:id", controllers.UpdateOrder)
		}

		// Admin routes: account management and backup/restore
		admin := api.Group("/admin", utils.RequireRole(models.RoleAdmin))
		{
			accounts := admin.Group("/accounts")
			{
				accounts.GET("", controllers.GetAccounts)
				accounts.POST("", controllers.CreateAccount)
				accounts.PUT("/:id", controllers.UpdateAccount)
				accounts.DELETE("/:id", controllers.DeleteAccount)
			}

			admin.POST("/backup", controllers.CreateBackup)
			admin.POST("/restore", controllers.RestoreBackup)
		}
	}

	return r
}
