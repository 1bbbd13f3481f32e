package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"fitsphere/internal/config"
	"fitsphere/internal/database"
	"fitsphere/internal/domain"
	"fitsphere/internal/gateway"
	"fitsphere/internal/middleware"
	"fitsphere/internal/modules/analytics"
	"fitsphere/internal/modules/auth"
	"fitsphere/internal/modules/booking"
	"fitsphere/internal/modules/catalog"
	"fitsphere/internal/modules/chat"
	"fitsphere/internal/modules/media"
	"fitsphere/internal/modules/notification"
	"fitsphere/internal/modules/order"
	"fitsphere/internal/modules/settings"
	"fitsphere/internal/modules/testimonial"
	"fitsphere/internal/modules/users"
	jwtsvc "fitsphere/internal/pkg/jwt"
	"fitsphere/internal/repository"
	"fitsphere/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db,
		&domain.User{},
		&domain.Product{},
		&domain.Program{},
		&domain.Trainer{},
		&domain.Video{},
		&domain.Image{},
		&domain.Order{},
		&domain.Payment{},
		&domain.Notification{},
		&domain.ChatMessage{},
		&domain.VenueSettings{},
		&domain.Testimonial{},
		repository.BookingSchema(),
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	programRepo := repository.NewProgramRepository(db)
	trainerRepo := repository.NewTrainerRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	imageRepo := repository.NewImageRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	chatRepo := repository.NewChatRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	gw := gateway.NewRazorpay(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.Razorpay.Currency, cfg.Razorpay.Timeout)
	bunny := storage.NewBunny(
		cfg.Bunny.StorageZone,
		cfg.Bunny.StoragePassword,
		cfg.Bunny.StorageRegion,
		cfg.Bunny.PullZoneURL,
		cfg.Bunny.UploadTimeout,
		cfg.Bunny.DeleteTimeout,
	)

	hub := chat.NewHub()
	defer hub.Close()

	notifService := notification.NewService(notifRepo, hub)
	notifHandler := notification.NewHandler(notifService)

	authService := auth.NewService(userRepo, j, notifService)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(productRepo, programRepo, trainerRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	mediaService := media.NewService(videoRepo, imageRepo, bunny)
	mediaHandler := media.NewHandler(mediaService)

	bookingService := booking.NewService(
		bookingRepo, userRepo, programRepo, trainerRepo,
		venueRepo, paymentRepo, gw, notifService,
	)
	bookingHandler := booking.NewHandler(bookingService)

	orderService := order.NewService(orderRepo, productRepo, paymentRepo, gw, notifService)
	orderHandler := order.NewHandler(orderService)

	chatService := chat.NewService(chatRepo, userRepo, hub)
	chatHandler := chat.NewHandler(chatService, j)

	analyticsService := analytics.NewService(analyticsRepo, userRepo, productRepo, paymentRepo, videoRepo)
	analyticsHandler := analytics.NewHandler(analyticsService)

	settingsService := settings.NewService(venueRepo)
	settingsHandler := settings.NewHandler(settingsService)

	testimonialService := testimonial.NewService(testimonialRepo, userRepo, notifService)
	testimonialHandler := testimonial.NewHandler(testimonialService)

	usersHandler := users.NewHandler(userRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.EnsureDefaultAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Printf("default admin bootstrap failed: %v", err)
	}
	cancel()

	r := gin.Default()

	v1 := r.Group("/api/v1")

	protected := v1.Group("/")
	protected.Use(middleware.Auth(j))

	admin := v1.Group("/")
	admin.Use(middleware.Auth(j), middleware.AdminOnly())

	authHandler.RegisterRoutes(v1, protected)
	catalogHandler.RegisterRoutes(v1, admin)
	mediaHandler.RegisterRoutes(v1, admin)
	bookingHandler.RegisterRoutes(protected, admin)
	orderHandler.RegisterRoutes(protected, admin)
	chatHandler.RegisterRoutes(v1, protected, admin)
	notifHandler.RegisterRoutes(admin)
	analyticsHandler.RegisterRoutes(admin)
	settingsHandler.RegisterRoutes(v1, admin)
	testimonialHandler.RegisterRoutes(v1, protected, admin)
	usersHandler.RegisterRoutes(admin)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
