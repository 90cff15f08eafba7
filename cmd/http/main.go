package main

import (
	"arena-scheduler-service/internal/app/config"
	"arena-scheduler-service/internal/app/delivery/http/controllers"
	"arena-scheduler-service/internal/app/delivery/http/middlewares"
	"arena-scheduler-service/internal/app/delivery/http/routers"
	"arena-scheduler-service/internal/app/drivers/database"
	"arena-scheduler-service/internal/app/drivers/logger"
	"arena-scheduler-service/internal/app/drivers/messaging"
	"arena-scheduler-service/internal/app/drivers/storage"
	"arena-scheduler-service/internal/app/services/core/arenas"
	"arena-scheduler-service/internal/app/services/core/categories"
	"arena-scheduler-service/internal/app/services/core/timesheets"
	"arena-scheduler-service/internal/app/services/shared/capability"
	"arena-scheduler-service/internal/app/services/shared/publisher"
	"arena-scheduler-service/internal/app/services/shared/ratelimiter"
	"arena-scheduler-service/internal/app/services/shared/redis"
	sharedStorage "arena-scheduler-service/internal/app/services/shared/storage"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	postgresDB := database.NewPostgresDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error while shutting down resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	capabilityChecker := capability.NewPlanCapability(bootstrap.InternalConfig.App.Plan)
	objectStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)
	exportLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)

	eventPublisher, err := publisher.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.Timesheet.EventQueue)
	if err != nil {
		return err
	}
	bootstrap.Closers = append(bootstrap.Closers, eventPublisher.Close)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Arena
	arenaPostgresRepository := arenas.NewArenaPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	arenaUsecase := arenas.NewArenaUsecase(arenaPostgresRepository, redisRepository, capabilityChecker, bootstrap.InternalConfig, bootstrap.Logger)
	arenaController := controllers.NewArenaController(bootstrap.Logger, arenaUsecase, bootstrap.InternalConfig)

	// Category
	categoryPostgresRepository := categories.NewCategoryPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	categoryUsecase := categories.NewCategoryUsecase(categoryPostgresRepository, redisRepository, capabilityChecker, bootstrap.InternalConfig, bootstrap.Logger)
	categoryController := controllers.NewCategoryController(bootstrap.Logger, categoryUsecase, bootstrap.InternalConfig)

	// Timesheet
	timesheetPostgresRepository := timesheets.NewTimesheetPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	timesheetUsecase := timesheets.NewTimesheetUsecase(timesheets.TimesheetUsecaseDeps{
		TimesheetRepository: timesheetPostgresRepository,
		ArenaRepository:     arenaPostgresRepository,
		RedisRepository:     redisRepository,
		ObjectStorage:       objectStorage,
		EventPublisher:      eventPublisher,
		CapabilityChecker:   capabilityChecker,
		ExportLimiter:       exportLimiter,
	}, bootstrap.InternalConfig, bootstrap.Logger)
	timesheetController := controllers.NewTimesheetController(bootstrap.Logger, timesheetUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, routers.Controllers{
		Arena:     arenaController,
		Category:  categoryController,
		Timesheet: timesheetController,
		Slot:      controllers.NewSlotController(bootstrap.Logger),
	})
	return nil
}
