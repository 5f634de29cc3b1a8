package handlers

import (
	"net/http"

	userRepoPkg "arenaslot/database/repository/user"
	"arenaslot/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so the route
// registrar receives a single dependency.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc

	// Booking endpoints
	GenerateSlotsHandler  gin.HandlerFunc
	CreateOrderHandler    gin.HandlerFunc
	ConfirmBookingHandler gin.HandlerFunc
	VerifyPaymentHandler  gin.HandlerFunc
	ListBookingsHandler   gin.HandlerFunc
	MyBookingsHandler     gin.HandlerFunc
	CountBookingsHandler  gin.HandlerFunc
	UpdateWinnerHandler   gin.HandlerFunc
	WinnersHandler        gin.HandlerFunc
	NotifyHandler         gin.HandlerFunc
	BulkUpdateHandler     gin.HandlerFunc

	// Package endpoints
	AddPackageHandler        gin.HandlerFunc
	EditPackageHandler       gin.HandlerFunc
	DeletePackageHandler     gin.HandlerFunc
	GetPackagesHandler       gin.HandlerFunc
	GetActivePackagesHandler gin.HandlerFunc

	// Banner endpoints
	AddBannerHandler        gin.HandlerFunc
	EditBannerHandler       gin.HandlerFunc
	DeleteBannerHandler     gin.HandlerFunc
	GetBannersHandler       gin.HandlerFunc
	GetActiveBannersHandler gin.HandlerFunc

	// Video endpoints
	AddVideoHandler        gin.HandlerFunc
	EditVideoHandler       gin.HandlerFunc
	DeleteVideoHandler     gin.HandlerFunc
	GetVideosHandler       gin.HandlerFunc
	GetActiveVideosHandler gin.HandlerFunc

	// Contact endpoints
	SubmitContactHandler gin.HandlerFunc
	ListContactsHandler  gin.HandlerFunc
}

// HealthHandler reports the most recent dependency probe results.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo || !status.Redis {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
