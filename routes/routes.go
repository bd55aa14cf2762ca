package routes

import (
	"net/http"
	"time"

	"meydancha/handlers"
	"meydancha/middleware"
	"meydancha/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.SignInHandler)

		// Protected routes.
		api.Use(middleware.AuthMiddleware())
		api.POST("/logout", hb.SignOutHandler)
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.PUT("/me/password", hb.ChangePasswordHandler)
		api.DELETE("/me", hb.DeleteAccountHandler)
		api.GET("/me/notifications", hb.ListNotificationsHandler)
		api.PUT("/me/notifications/:id/read", hb.MarkNotificationReadHandler)
	}
}

// RegisterFieldRoutes registers venue search and management endpoints.
func RegisterFieldRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/fields")
	{
		// Public: search, detail, day schedule, quotes, reviews, campaigns.
		api.GET("", hb.ListFieldsHandler)
		api.GET("/:id", hb.GetFieldHandler)
		api.GET("/:id/schedule", hb.GetDayScheduleHandler)
		api.GET("/:id/reviews", hb.ListFieldReviewsHandler)
		api.GET("/:id/campaigns", hb.ListFieldCampaignsHandler)

		// Owner management.
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		protected.POST("", middleware.RequireRole(models.RoleOwner), hb.CreateFieldHandler)
		protected.PUT("/:id", hb.UpdateFieldHandler)
		protected.DELETE("/:id", hb.DeleteFieldHandler)
		protected.GET("/:id/bookings", hb.ListFieldBookingsHandler)
	}
}

// RegisterBookingRoutes registers reservation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("/quote", hb.QuoteHandler)

		api.Use(middleware.AuthMiddleware())
		api.POST("", hb.CreateBookingHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
		api.GET("/mine", hb.ListOwnBookingsHandler)
	}
}

// RegisterOwnerRoutes registers the owner dashboard endpoints.
func RegisterOwnerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/owner")
	{
		api.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleOwner, models.RoleAdmin))
		api.GET("/fields", hb.ListOwnFieldsHandler)
		api.GET("/campaigns", hb.ListOwnCampaignsHandler)
		api.POST("/campaigns", hb.CreateCampaignHandler)
		api.PUT("/campaigns/:id/active", hb.SetCampaignActiveHandler)
		api.DELETE("/campaigns/:id", hb.DeleteCampaignHandler)
	}
}

// RegisterReviewRoutes registers review creation and moderation.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("", hb.CreateReviewHandler)
		api.DELETE("/:id", hb.DeleteReviewHandler)
	}
}

// RegisterComplaintRoutes registers player complaint endpoints.
func RegisterComplaintRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/complaints")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("", hb.CreateComplaintHandler)
		api.GET("/mine", hb.ListOwnComplaintsHandler)
	}
}

// RegisterAdminRoutes registers moderation endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
		api.GET("/users", hb.ListUsersHandler)
		api.GET("/owners/pending", hb.ListPendingOwnersHandler)
		api.PUT("/owners/:id/status", hb.SetOwnerStatusHandler)
		api.GET("/complaints", hb.ListComplaintsHandler)
		api.PUT("/complaints/:id", hb.ResolveComplaintHandler)
		api.PUT("/fields/:id/blocked", hb.SetFieldBlockedHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Meydancha"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterFieldRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterOwnerRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterComplaintRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
