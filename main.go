// File: salonbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonbook/config"
	"salonbook/cron"
	"salonbook/database"
	appointmentRepo "salonbook/database/repository/appointment"
	catalogRepo "salonbook/database/repository/catalog"
	hoursRepo "salonbook/database/repository/hours"
	ownerRepo "salonbook/database/repository/owner"
	salonRepo "salonbook/database/repository/salon"
	staffRepo "salonbook/database/repository/staff"
	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/routes"
	"salonbook/services/availability"
	"salonbook/services/booking"
	"salonbook/services/owner"
	"salonbook/services/salon"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if err := utils.RegisterBindingValidations(); err != nil {
		logger.Fatal("main: failed to register request validations", zap.Error(err))
	}
	utils.RegisterMetrics()

	loc, err := time.LoadLocation(cfg.SalonTimezone)
	if err != nil {
		logger.Fatal("main: invalid SALON_TIMEZONE", zap.String("timezone", cfg.SalonTimezone), zap.Error(err))
	}

	if err := database.InitDB(logger); err != nil {
		logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
	}
	db := database.DB()

	authCache, err := utils.NewRedisClient(cfg, cfg.RedisAuthDB)
	if err != nil {
		logger.Fatal("main: failed to connect to auth cache", zap.Error(err))
	}
	redisClients := []*redis.Client{authCache}

	// repositories.
	owners := ownerRepo.NewMongoOwnerRepo(db)
	salons := salonRepo.NewMongoSalonRepo(db)
	hours := hoursRepo.NewMongoHoursRepo(db)
	catalog := catalogRepo.NewMongoCatalogRepo(db)
	staff := staffRepo.NewMongoStaffRepo(db)
	appointments := appointmentRepo.NewMongoAppointmentRepo(db)

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	for name, repo := range map[string]interface{ EnsureIndexes(context.Context) error }{
		"owners": owners, "salons": salons, "working_hours": hours,
		"services": catalog, "staff": staff, "appointments": appointments,
	} {
		if err := repo.EnsureIndexes(indexCtx); err != nil {
			logger.Fatal("main: failed to create indexes", zap.String("collection", name), zap.Error(err))
		}
	}
	cancelIndex()

	// booking lock: redis serialises commits across instances.
	var locker booking.Locker
	switch cfg.BookingLockMode {
	case "local":
		locker = booking.NewLocalLocker()
	default:
		lockClient, err := utils.NewRedisClient(cfg, cfg.RedisLockDB)
		if err != nil {
			logger.Fatal("main: failed to connect to booking lock store", zap.Error(err))
		}
		redisClients = append(redisClients, lockClient)
		locker = booking.NewRedisLocker(lockClient, time.Duration(cfg.BookingLockTTLSeconds)*time.Second)
	}

	queue := asynq.NewClient(cron.QueueRedisOpt())
	defer queue.Close()

	// services.
	slotService := availability.NewSlotService(salons, hours, staff, appointments, cfg.SlotGranularity, loc)
	slotService.Logger = logger

	creator := &booking.DefaultAppointmentCreator{
		Salons:       salons,
		Slots:        slotService,
		Services:     catalog,
		Appointments: appointments,
		Locker:       locker,
		Scheduler:    booking.NewAsynqCompletionScheduler(queue),
		MaxAttempts:  cfg.BookingMaxAttempts,
		Location:     loc,
		Now:          time.Now,
		Logger:       logger,
	}
	manager := &booking.DefaultAppointmentManager{
		Appointments: appointments,
		Salons:       salons,
		Services:     catalog,
		Staff:        staff,
		Logger:       logger,
	}
	salonService := &salon.DefaultSalonService{
		Salons:  salons,
		Hours:   hours,
		Catalog: catalog,
		Staff:   staff,
		Logger:  logger,
	}

	signer, err := utils.NewTokenSigner(cfg.JWTSecret)
	if err != nil {
		logger.Fatal("main: JWT_SECRET is required", zap.Error(err))
	}
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	ownerService := &owner.DefaultOwnerService{
		Repo:       owners,
		Salons:     salons,
		Signer:     signer,
		Cache:      authCache,
		SessionTTL: sessionTTL,
		Logger:     logger,
	}

	worker := cron.InitCompletionWorker(manager, logger)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	utils.StartHealthMonitor(ctx, redisClients, database.MongoClient)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	handlerBundle := handlers.NewHandlerBundle(
		ownerService, cfg.SessionCookie,
		handlers.NewAvailabilityHandler(slotService),
		handlers.NewBookingHandler(creator, manager),
		handlers.NewSalonHandler(salonService),
		handlers.NewAuthHandler(ownerService, salonService, cfg.SessionCookie, cfg.CookieSecure, sessionTTL),
	)
	routes.RegisterRoutes(router, handlerBundle, cfg.Origins())

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("timezone", loc.String()))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	worker.Shutdown()
	stop()
	for _, c := range redisClients {
		_ = c.Close()
	}
	if err := database.Close(shutdownCtx); err != nil {
		logger.Error("main: failed to disconnect from MongoDB", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
