package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxiops/internal/config"
	"taxiops/internal/domain/models"
	"taxiops/internal/http/handlers"
	"taxiops/internal/http/middleware"
)

// NewRouter wires middleware and all API routes.
func NewRouter(env config.Env) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies(nil)

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(env.CORSOrigins))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.GET("/db-check", middleware.RequireAuth(), middleware.RequireRoles(models.RoleAdmin), handlers.DBCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/request-otp", handlers.RequestOTP)
			auth.POST("/verify-otp", handlers.VerifyOTP)
			auth.GET("/me", middleware.RequireAuth(), handlers.Me)
		}

		private := api.Group("")
		private.Use(middleware.RequireAuth())
		{
			private.GET("/trips", handlers.GetTrips)
			private.POST("/trips", handlers.CreateTrip)
			private.GET("/trips/:id", handlers.GetTrip)
			private.PUT("/trips/:id", handlers.UpdateTrip)
			private.DELETE("/trips/:id", handlers.DeleteTrip)
			private.GET("/trips/:id/invoice", handlers.GetTripInvoice)

			private.GET("/maintenance", handlers.GetMaintenance)
			private.POST("/maintenance", handlers.CreateMaintenance)
			private.PUT("/maintenance/:id", handlers.UpdateMaintenance)
			private.DELETE("/maintenance/:id", handlers.DeleteMaintenance)

			private.GET("/outside-trips", handlers.GetOutsideTrips)
			private.POST("/outside-trips", handlers.CreateOutsideTrip)
			private.PUT("/outside-trips/:id", handlers.UpdateOutsideTrip)
			private.DELETE("/outside-trips/:id", handlers.DeleteOutsideTrip)

			private.GET("/reports/monthly", handlers.GetMonthlyReport)
			private.GET("/reports/expenses", handlers.GetExpenseReport)
			private.GET("/reports/summary", handlers.GetDashboardSummary)

			private.GET("/exports/trips", handlers.ExportTrips)
			private.GET("/exports/maintenance", handlers.ExportMaintenance)
			private.GET("/exports/outside-trips", handlers.ExportOutsideTrips)
			private.POST("/imports/trips", handlers.ImportTrips)
		}
	}

	return r
}
