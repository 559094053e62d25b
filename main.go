package main

import (
	"time"

	"creative-edge/config"
	"creative-edge/database"
	adminapi "creative-edge/internal/api/admin"
	mediaapi "creative-edge/internal/api/media"
	meetingsapi "creative-edge/internal/api/meetings"
	portfolioapi "creative-edge/internal/api/portfolio"
	routes "creative-edge/internal/app/http"
	"creative-edge/internal/app/http/middleware"
	"creative-edge/internal/app/submission"
	"creative-edge/internal/domain/access"
	"creative-edge/internal/domain/meetings"
	"creative-edge/internal/infra/logger"
	"creative-edge/internal/infra/mailer"
	"creative-edge/internal/infra/objectstore"
	"creative-edge/internal/infra/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxMultipartMemory = 32 << 20

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	if err := logger.Init(logger.Options{Level: config.LOG_LEVEL, Path: config.LOG_PATH}); err != nil {
		panic(err)
	}
	defer logger.Sync()

	database.InitDB(config.DB_URL)

	records := store.New(database.DB, logger.L.Named("store"))

	uploads, err := objectstore.New(objectstore.Config{
		Driver:    config.STORAGE_DRIVER,
		LocalPath: config.STORAGE_LOCAL_PATH,
		PublicURL: config.STORAGE_PUBLIC_URL,
		Bucket:    config.S3_BUCKET,
		Region:    config.S3_REGION,
		Endpoint:  config.S3_ENDPOINT,
		AccessKey: config.S3_ACCESS_KEY,
		SecretKey: config.S3_SECRET_KEY,
	})
	if err != nil {
		logger.L.Fatal("failed to init object storage", zap.Error(err))
	}

	relay := mailer.NewSMTP(mailer.Config{
		Host:     config.SMTP_HOST,
		Port:     config.SMTP_PORT,
		Secure:   config.SMTP_SECURE,
		Username: config.SMTP_USER,
		Password: config.SMTP_PASS,
	})
	if config.SMTP_HOST == "" {
		logger.L.Warn("SMTP_HOST not set, meeting requests will fail to send")
	}

	gate := access.NewGate(records)
	notifier := meetings.NewNotifier(relay, config.SITE_NAME, config.MEETING_TO_EMAIL, logger.L.Named("meetings"))
	flow := submission.NewFlow(records, uploads, notifier, submission.Options{
		MaxPhotoMB: config.MAX_PHOTO_MB,
		Logger:     logger.L.Named("submission"),
	})

	r := gin.New()
	r.MaxMultipartMemory = maxMultipartMemory
	if err := r.SetTrustedProxies(config.TRUSTED_PROXIES); err != nil {
		logger.L.Fatal("invalid TRUSTED_PROXIES", zap.Error(err))
	}
	r.Use(gin.Recovery(), middleware.RequestIDMiddleware(), middleware.LoggingMiddleware())

	// CORS before routes
	if config.CORS_ORIGIN != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{config.CORS_ORIGIN},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	h := routes.Handlers{
		Portfolio:          portfolioapi.NewHandler(records, flow, logger.L.Named("portfolio")),
		Media:              mediaapi.NewHandler(records, flow, logger.L.Named("media")),
		Meetings:           meetingsapi.NewHandler(notifier, flow, logger.L.Named("meetings")),
		Admin:              adminapi.NewHandler(gate),
		Gate:               gate,
		RateLimitPerMinute: config.RATE_LIMIT_PER_MINUTE,
		MaxMultipartMemory: maxMultipartMemory,
	}
	if local, ok := uploads.(*objectstore.Local); ok {
		h.UploadsDir = local.Root()
	}
	routes.RegisterRoutes(r, h)

	logger.L.Info("listening", zap.String("port", config.PORT), zap.String("storage", config.STORAGE_DRIVER))
	if err := r.Run(":" + config.PORT); err != nil {
		logger.L.Fatal("server stopped", zap.Error(err))
	}
}
