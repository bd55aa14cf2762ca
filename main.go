package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meydancha/config"
	"meydancha/cron"
	"meydancha/database"
	bookingRepoPkg "meydancha/database/repository/booking"
	campaignRepoPkg "meydancha/database/repository/campaign"
	complaintRepoPkg "meydancha/database/repository/complaint"
	fieldRepoPkg "meydancha/database/repository/field"
	notificationRepoPkg "meydancha/database/repository/notification"
	reviewRepoPkg "meydancha/database/repository/review"
	userRepoPkg "meydancha/database/repository/user"
	"meydancha/handlers"
	"meydancha/middleware"
	"meydancha/routes"
	"meydancha/services/admin"
	"meydancha/services/booking"
	"meydancha/services/campaign"
	"meydancha/services/complaint"
	"meydancha/services/field"
	"meydancha/services/notification"
	"meydancha/services/review"
	"meydancha/services/tasks"
	"meydancha/services/user"
	"meydancha/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	loc, err := time.LoadLocation(config.AppConfig.BookingTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid booking timezone %q: %v", config.AppConfig.BookingTimezone, err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	fieldRepo := fieldRepoPkg.NewMongoFieldRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	campaignRepo := campaignRepoPkg.NewMongoCampaignRepo()
	complaintRepo := complaintRepoPkg.NewMongoComplaintRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	type indexed interface {
		EnsureIndexes() error
	}
	for _, repo := range []interface{}{userRepo, fieldRepo, bookingRepo} {
		if ix, ok := repo.(indexed); ok {
			if err := ix.EnsureIndexes(); err != nil {
				logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
			}
		}
	}

	// Services.
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		TokenTTL: 24 * time.Hour,
	}
	fieldService := &field.DefaultFieldService{
		Repo:     fieldRepo,
		UserRepo: userRepo,
	}
	notificationService := &notification.DefaultNotificationService{
		Repo: notificationRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		FieldRepo:    fieldRepo,
		CampaignRepo: campaignRepo,
		Scheduler:    tasks.NewAsynqReminderScheduler(),
		Window: booking.DayWindow{
			OpenHour:  config.AppConfig.BookingOpenHour,
			CloseHour: config.AppConfig.BookingCloseHour,
		},
		ReminderLead: time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
		Now:          func() time.Time { return time.Now().In(loc) },
	}
	reviewService := &review.DefaultReviewService{
		Repo:        reviewRepo,
		BookingRepo: bookingRepo,
		FieldRepo:   fieldRepo,
		Now:         func() time.Time { return time.Now().In(loc) },
	}
	campaignService := &campaign.DefaultCampaignService{
		Repo:      campaignRepo,
		FieldRepo: fieldRepo,
	}
	complaintService := &complaint.DefaultComplaintService{
		Repo:      complaintRepo,
		FieldRepo: fieldRepo,
	}
	adminService := &admin.DefaultAdminService{
		UserRepo:      userRepo,
		FieldRepo:     fieldRepo,
		ComplaintRepo: complaintRepo,
		Notifier:      notificationService,
	}

	// Background workers.
	cron.InitReminderWorker(bookingRepo, notificationService)
	cron.InitCompletionSweeper(bookingRepo, loc, 10*time.Minute)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(handlers.Services{
		User:         userService,
		Field:        fieldService,
		Booking:      bookingService,
		Review:       reviewService,
		Campaign:     campaignService,
		Complaint:    complaintService,
		Notification: notificationService,
		Admin:        adminService,
	})
	routes.RegisterRoutes(router, handlerBundle)

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
