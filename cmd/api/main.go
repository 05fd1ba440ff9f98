package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"eventhub/internal/config"
	"eventhub/internal/database"
	"eventhub/internal/middleware"
	"eventhub/internal/modules/auth"
	"eventhub/internal/modules/bookings"
	"eventhub/internal/modules/catalog"
	"eventhub/internal/modules/checkout"
	"eventhub/internal/modules/notify"
	jwtsvc "eventhub/internal/pkg/jwt"
	"eventhub/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(eventRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingsService := bookings.NewService(bookingRepo)
	bookingsHandler := bookings.NewHandler(bookingsService)

	hub := notify.NewHub()
	notifier := notify.New(hub)
	notifyHandler := notify.NewHandler(hub, notifier, j)

	store := checkout.NewSessionStore(cfg.SessionTTL)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go store.RunJanitor(ctx, time.Minute)

	checkoutService := checkout.NewService(
		eventRepo,
		bookingRepo,
		checkout.SimulatedGateway{Delay: cfg.SettlementDelay},
		notifier,
		store,
		log.Printf,
	)
	checkoutHandler := checkout.NewHandler(checkoutService, userRepo)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))

		// public
		authHandler.RegisterRoutes(v1, protected)
		catalogHandler.RegisterRoutes(v1)
		notifyHandler.RegisterRoutes(v1)

		// protected
		checkoutHandler.RegisterRoutes(protected)
		bookingsHandler.RegisterRoutes(protected)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
