package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arenaslot/config"
	"arenaslot/database"
	bookingRepoPkg "arenaslot/database/repository/booking"
	catalogRepoPkg "arenaslot/database/repository/catalog"
	userRepoPkg "arenaslot/database/repository/user"
	"arenaslot/handlers"
	"arenaslot/middleware"
	"arenaslot/routes"
	"arenaslot/services/booking"
	"arenaslot/services/notification"
	"arenaslot/services/payment"
	"arenaslot/services/storage"
	"arenaslot/services/user"
	"arenaslot/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	storageService, err := storage.NewCloudinaryStorage()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	location, err := time.LoadLocation(config.AppConfig.SlotTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load slot timezone %q: %v", config.AppConfig.SlotTimezone, err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	packageRepo := catalogRepoPkg.NewMongoPackageRepo()
	bannerRepo := catalogRepoPkg.NewMongoBannerRepo()
	videoRepo := catalogRepoPkg.NewMongoVideoRepo()
	contactRepo := catalogRepoPkg.NewMongoContactRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	smsSender, whatsappSender := notification.NewTwilioSenders()
	dispatcher := &notification.DefaultDispatcher{
		Email:    notification.NewSMTPEmailSender(),
		SMS:      smsSender,
		WhatsApp: whatsappSender,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:       bookingRepo,
		Gateway:    payment.NewRazorpayGateway(),
		Dispatcher: dispatcher,
		Location:   location,
	}

	// handlers.
	authHandler := handlers.NewAuthHandler(userService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	packageHandler := handlers.NewPackageHandler(packageRepo)
	bannerHandler := handlers.NewBannerHandler(bannerRepo, storageService)
	videoHandler := handlers.NewVideoHandler(videoRepo)
	contactHandler := handlers.NewContactHandler(contactRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,

		GenerateSlotsHandler:  bookingHandler.GenerateSlotsHandler,
		CreateOrderHandler:    bookingHandler.CreateOrderHandler,
		ConfirmBookingHandler: bookingHandler.ConfirmBookingHandler,
		VerifyPaymentHandler:  bookingHandler.VerifyPaymentHandler,
		ListBookingsHandler:   bookingHandler.ListBookingsHandler,
		MyBookingsHandler:     bookingHandler.MyBookingsHandler,
		CountBookingsHandler:  bookingHandler.CountBookingsHandler,
		UpdateWinnerHandler:   bookingHandler.UpdateWinnerHandler,
		WinnersHandler:        bookingHandler.WinnersHandler,
		NotifyHandler:         bookingHandler.NotifyHandler,
		BulkUpdateHandler:     bookingHandler.BulkUpdateHandler,

		AddPackageHandler:        packageHandler.AddPackageHandler,
		EditPackageHandler:       packageHandler.EditPackageHandler,
		DeletePackageHandler:     packageHandler.DeletePackageHandler,
		GetPackagesHandler:       packageHandler.GetPackagesHandler,
		GetActivePackagesHandler: packageHandler.GetActivePackagesHandler,

		AddBannerHandler:        bannerHandler.AddBannerHandler,
		EditBannerHandler:       bannerHandler.EditBannerHandler,
		DeleteBannerHandler:     bannerHandler.DeleteBannerHandler,
		GetBannersHandler:       bannerHandler.GetBannersHandler,
		GetActiveBannersHandler: bannerHandler.GetActiveBannersHandler,

		AddVideoHandler:        videoHandler.AddVideoHandler,
		EditVideoHandler:       videoHandler.EditVideoHandler,
		DeleteVideoHandler:     videoHandler.DeleteVideoHandler,
		GetVideosHandler:       videoHandler.GetVideosHandler,
		GetActiveVideosHandler: videoHandler.GetActiveVideosHandler,

		SubmitContactHandler: contactHandler.SubmitContactHandler,
		ListContactsHandler:  contactHandler.ListContactsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
