// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zeefreeze/config"
	"zeefreeze/cron"
	"zeefreeze/database"
	availabilityRepo "zeefreeze/database/repository/availability"
	eventRepo "zeefreeze/database/repository/event"
	installationRepo "zeefreeze/database/repository/installation"
	interventionRepo "zeefreeze/database/repository/intervention"
	invoiceRepo "zeefreeze/database/repository/invoice"
	messageRepo "zeefreeze/database/repository/message"
	notificationRepo "zeefreeze/database/repository/notification"
	technicianRepo "zeefreeze/database/repository/technician"
	userRepoPkg "zeefreeze/database/repository/user"
	"zeefreeze/handlers"
	"zeefreeze/middleware"
	"zeefreeze/routes"
	"zeefreeze/services/availability"
	"zeefreeze/services/installation"
	"zeefreeze/services/intervention"
	"zeefreeze/services/invoice"
	"zeefreeze/services/message"
	"zeefreeze/services/notification"
	"zeefreeze/services/payment"
	"zeefreeze/services/storage"
	"zeefreeze/services/tasks"
	"zeefreeze/services/technician"
	"zeefreeze/services/user"
	"zeefreeze/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	storageService, err := storage.NewCloudinaryStorageService(config.AppConfig.CloudinaryURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	techRepo := technicianRepo.NewMongoTechnicianRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	evRepo := eventRepo.NewMongoEventRepo()
	ivRepo := interventionRepo.NewMongoInterventionRepo()
	instRepo := installationRepo.NewMongoInstallationRepo()
	invRepo := invoiceRepo.NewMongoInvoiceRepo()
	notifRepo := notificationRepo.NewMongoNotificationRepo()
	msgRepo := messageRepo.NewMongoMessageRepo()

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Repo:     availRepo,
		SeedDays: config.AppConfig.AvailabilitySeedDays,
	}

	technicianService, err := technician.NewDefaultTechnicianService(techRepo, availabilityService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize technician service: %v", err)
	}

	userService, err := user.NewDefaultUserService(userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize user service: %v", err)
	}

	notificationService, err := notification.NewDefaultNotificationService(notifRepo, userRepo, techRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	interventionService, err := intervention.NewDefaultInterventionService(ivRepo, evRepo, availabilityService, notificationService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize intervention service: %v", err)
	}

	installationService, err := installation.NewDefaultInstallationService(instRepo, evRepo, availabilityService, notificationService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize installation service: %v", err)
	}

	paymentHandler := payment.NewStripePaymentHandler()
	invoiceService, err := invoice.NewDefaultInvoiceService(invRepo, paymentHandler, notificationService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize invoice service: %v", err)
	}

	messageService, err := message.NewDefaultMessageService(msgRepo, notificationService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize message service: %v", err)
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	reminderScheduler, err := tasks.NewAsynqReminderScheduler(asynqClient)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize reminder scheduler: %v", err)
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		TechnicianRepo: techRepo,
		UserRepo:       userRepo,

		Availability:  handlers.NewAvailabilityHandler(availabilityService),
		Technicians:   handlers.NewTechnicianHandler(technicianService),
		Users:         handlers.NewUserHandler(userService),
		Interventions: handlers.NewInterventionHandler(interventionService),
		Installations: handlers.NewInstallationHandler(installationService),
		Invoices:      handlers.NewInvoiceHandler(invoiceService),
		Notifications: handlers.NewNotificationHandler(notificationService),
		Messages:      handlers.NewMessageHandler(messageService),
		Agenda:        handlers.NewAgendaHandler(evRepo, availabilityService, reminderScheduler),
		Storage:       handlers.NewStorageHandler(storageService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetOTPCacheClient()},
		database.MongoClient,
	)

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
