package routes

import (
	"churchease-backend/config"
	"churchease-backend/controllers"
	"churchease-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Reservation routes
		reservations := api.Group("/reservations")
		{
			reservations.POST("", controllers.CreateReservation)
			reservations.GET("", controllers.GetReservations)
			reservations.GET("/by-date/:date", controllers.GetReservationsByDate)
			reservations.GET("/available-slots/:date", controllers.GetAvailableSlots)
			reservations.GET("/calendar-data", controllers.GetCalendarData)
			reservations.GET("/:id", controllers.GetReservation)
			reservations.PUT("/:id", controllers.UpdateReservation)
			reservations.POST("/:id/approve", controllers.ApproveReservation)
			reservations.POST("/:id/assign-priest", controllers.AssignPriest)
			reservations.GET("/:id/payments", controllers.GetPaymentsByReservation)
		}

		// Payment routes
		payments := api.Group("/payments")
		{
			payments.POST("", controllers.CreatePayment)
			payments.PUT("/:id", controllers.UpdatePayment)
		}

		// Service pricing routes
		api.GET("/service-pricing", controllers.GetServicePricing)
		api.PUT("/service-pricing", utils.RequireRole("admin"), controllers.UpsertServicePrice)

		// Priest routes
		priests := api.Group("/priests")
		{
			priests.GET("", controllers.GetPriests)
			priests.GET("/:id", controllers.GetPriest)
			priests.POST("", utils.RequireRole("admin"), controllers.CreatePriest)
			priests.PUT("/:id", utils.RequireRole("admin"), controllers.UpdatePriest)
			priests.DELETE("/:id", utils.RequireRole("admin"), controllers.DeletePriest)
		}

		// Event routes
		events := api.Group("/events")
		{
			events.GET("", controllers.GetEvents)
			events.POST("", controllers.CreateEvent)
			events.PUT("/:id", controllers.UpdateEvent)
		}

		// Holiday lookup
		api.GET("/holidays/:date", controllers.GetHoliday)

		// Dashboard routes
		api.GET("/dashboard/stats", controllers.GetDashboardStats)
		api.GET("/dashboard/today-schedule", controllers.GetTodaySchedule)

		// Report routes
		reportController := controllers.ReportController{}
		api.GET("/reports/stipendium-summary", reportController.GetStipendiumSummary)
		api.GET("/reports/monthly-reservations", reportController.GetMonthlyReservations)
	}

	return r
}
