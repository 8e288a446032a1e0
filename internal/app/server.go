// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"shopfront-service/internal/config"
	"shopfront-service/internal/db"
	authHandler "shopfront-service/internal/handlers/auth"
	cartHandler "shopfront-service/internal/handlers/cart"
	catalogHandler "shopfront-service/internal/handlers/catalog"
	checkoutHandler "shopfront-service/internal/handlers/checkout"
	orderHandler "shopfront-service/internal/handlers/orders"
	pageHandler "shopfront-service/internal/handlers/pages"
	wsHandler "shopfront-service/internal/handlers/websocket"
	"shopfront-service/internal/middleware"
	"shopfront-service/internal/pkg/session"
	"shopfront-service/internal/repository/postgres"
	authUsecase "shopfront-service/internal/service/auth"
	cartUsecase "shopfront-service/internal/service/cart"
	checkoutUsecase "shopfront-service/internal/service/checkout"
	"shopfront-service/internal/upstream"
	"shopfront-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	s.logger = logger

	// ----- Migrations -----
	if err := db.RunMigrations(s.cfg.DatabaseURL, s.cfg.MigrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	sqlDB, err := db.ConnectSQL(s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open audit connection: %w", err)
	}

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Println("[REDIS] connected")

	// ----- Upstream API client -----
	api := upstream.NewClient(s.cfg.UpstreamBaseURL, s.cfg.UpstreamTimeout, logger)

	// ----- Session plumbing -----
	codec := session.NewCodec(s.cfg.CookieSecret, "shopfront-service", s.cfg.SessionTTL)
	profileCache := session.NewRedisStore(redisClient, s.cfg.ProfileCacheTTL)
	rateLimiter := session.NewRateLimiter(redisClient)

	// ----- Repositories -----
	cartRepo := postgres.NewCartRepository(pool)
	auditRepo := postgres.NewCheckoutAuditRepository(sqlDB)

	// ----- WebSocket Hub -----
	hub := websocket.NewHub(logger)
	go hub.Run(context.Background())

	// ----- Services -----
	authService := authUsecase.NewAuthService(api, profileCache, codec, logger)
	cartService := cartUsecase.NewCartService(cartRepo, logger)
	checkoutService := checkoutUsecase.NewCheckoutService(cartService, api, auditRepo, hub, logger)

	// ----- Middlewares -----
	sessionMW := middleware.NewSessionMiddleware(authService, s.cfg.CookieName, s.cfg.CookieSecure)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Handlers -----
	handlers := &Handlers{
		AuthHandler:     authHandler.NewAuthHandler(authService, sessionMW, rateLimiter, logger),
		ProductHandler:  catalogHandler.NewProductHandler(api, logger),
		CartHandler:     cartHandler.NewCartHandler(cartService, logger),
		CheckoutHandler: checkoutHandler.NewCheckoutHandler(checkoutService, logger),
		OrderHandler:    orderHandler.NewOrderHandler(api, auditRepo, logger),
		PageHandler:     pageHandler.NewPageHandler(api, cartService, logger),
		WSHandler:       wsHandler.NewWSHandler(hub, logger),
		SessionMW:       sessionMW,
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	log.Printf("server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
