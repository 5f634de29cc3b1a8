package routes

import (
	"time"

	"arenaslot/handlers"
	"arenaslot/middleware"
	"arenaslot/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		// Public winner board.
		api.GET("/winners", hb.WinnersHandler)

		authed := api.Group("")
		authed.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		authed.Use(middleware.RequireRole(models.RoleUser, models.RoleAdmin))
		authed.GET("/slots", hb.GenerateSlotsHandler)
		authed.POST("/orders", hb.CreateOrderHandler)
		authed.POST("", hb.ConfirmBookingHandler)
		authed.POST("/payments/verify", hb.VerifyPaymentHandler)
		authed.GET("/mine", hb.MyBookingsHandler)
		authed.GET("/count", hb.CountBookingsHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.GET("", hb.ListBookingsHandler)
		admin.PUT("/:id/winner", hb.UpdateWinnerHandler)
		admin.POST("/bulk-update", hb.BulkUpdateHandler)
	}
}

// RegisterNotificationRoutes sets up the admin fan-out endpoint.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRole(models.RoleAdmin))
		api.POST("", hb.NotifyHandler)
	}
}

// RegisterCatalogRoutes sets up package, banner and video endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	packages := r.Group("/api/packages")
	{
		authed := packages.Group("")
		authed.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		authed.Use(middleware.RequireRole(models.RoleUser, models.RoleAdmin))
		authed.GET("/active", hb.GetActivePackagesHandler)

		admin := packages.Group("")
		admin.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.GET("", hb.GetPackagesHandler)
		admin.POST("", hb.AddPackageHandler)
		admin.PUT("/:id", hb.EditPackageHandler)
		admin.DELETE("/:id", hb.DeletePackageHandler)
	}

	banners := r.Group("/api/banners")
	{
		banners.GET("/active", hb.GetActiveBannersHandler)

		admin := banners.Group("")
		admin.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.GET("", hb.GetBannersHandler)
		admin.POST("", hb.AddBannerHandler)
		admin.PUT("/:id", hb.EditBannerHandler)
		admin.DELETE("/:id", hb.DeleteBannerHandler)
	}

	videos := r.Group("/api/videos")
	{
		videos.GET("/active", hb.GetActiveVideosHandler)

		admin := videos.Group("")
		admin.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.GET("", hb.GetVideosHandler)
		admin.POST("", hb.AddVideoHandler)
		admin.PUT("/:id", hb.EditVideoHandler)
		admin.DELETE("/:id", hb.DeleteVideoHandler)
	}
}

// RegisterContactRoutes sets up the public contact form and its admin view.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/contact")
	{
		api.POST("", hb.SubmitContactHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.GET("", hb.ListContactsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
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

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterHealthRoute(r)
}
