package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "sponsorcrm/docs"
	"sponsorcrm/internal/config"
	"sponsorcrm/internal/handlers"
	"sponsorcrm/internal/logger"
	"sponsorcrm/internal/metrics"
	"sponsorcrm/internal/middleware"
	"sponsorcrm/internal/pdf"
	"sponsorcrm/internal/repositories"
	"sponsorcrm/internal/routes"
	"sponsorcrm/internal/services"
)

func Run() {
	cfg := config.LoadConfig()

	if err := logger.Init(cfg.Log.Level, cfg.Server.Env); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	log := logger.L()
	defer log.Sync()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}()
	if err := db.Ping(); err != nil {
		log.Fatal("database is unreachable", zap.Error(err))
	}

	// === Repos ===
	contactRepo := repositories.NewContactRepository(db)
	leadRepo := repositories.NewLeadRepository(db, contactRepo)
	sponsorRepo := repositories.NewSponsorRepository(db, contactRepo)

	// === Services ===
	leadService := services.NewLeadService(leadRepo)
	sponsorService := services.NewSponsorService(sponsorRepo, leadService)
	statsService := services.NewStatsService(leadRepo, sponsorRepo)

	extractor, err := services.NewGeminiExtractor(context.Background(), cfg.Extraction.APIKey, cfg.Extraction.Model)
	if err != nil {
		log.Fatal("failed to init extractor", zap.Error(err))
	}

	notifier, err := services.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		// notifications are optional, do not block startup
		log.Warn("telegram notifier disabled", zap.Error(err))
	}

	inboundEmailService := services.NewInboundEmailService(extractor, leadService, notifier)

	// Follow-up digest loop, enabled per config
	if cfg.Digest.Enabled && cfg.Digest.Recipient != "" {
		digest := services.NewDigestService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
			cfg.Digest.Recipient,
			leadRepo,
		)
		go digest.Run(24*time.Hour, nil)
		log.Info("follow-up digest enabled", zap.String("recipient", cfg.Digest.Recipient))
	}

	pdfGen := pdf.NewReportGenerator()

	// === Handlers ===
	leadHandler := handlers.NewLeadHandler(leadService)
	sponsorHandler := handlers.NewSponsorHandler(sponsorService, pdfGen)
	statsHandler := handlers.NewStatsHandler(statsService)
	parseDocHandler := handlers.NewParseDocumentHandler(extractor)
	inboundEmailHandler := handlers.NewInboundEmailHandler(inboundEmailService, cfg.Webhook.Secret)
	reportHandler := handlers.NewReportHandler(statsService, leadService, pdfGen)
	healthHandler := handlers.NewHealthHandler(db)

	// === Gin ===
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(metrics.Middleware())

	router.GET("/metrics", metrics.Handler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		leadHandler,
		sponsorHandler,
		statsHandler,
		parseDocHandler,
		inboundEmailHandler,
		reportHandler,
		healthHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("server listening", zap.String("addr", listenAddr))
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
