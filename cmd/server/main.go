// @title           Atelie Backend API
// @version         1.0.0
// @description     Backend API for a garment workshop: service orders with their size grids and status lifecycle, helper payments, dashboard totals and voice-assisted order entry.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atelie-backend/docs"
	"atelie-backend/internal/config"
	"atelie-backend/internal/connectivity"
	"atelie-backend/internal/database"
	"atelie-backend/internal/dynamodb"
	"atelie-backend/internal/extraction"
	"atelie-backend/internal/handlers"
	"atelie-backend/internal/live"
	"atelie-backend/internal/logging"
	"atelie-backend/internal/middleware"
	"atelie-backend/internal/services"
	"atelie-backend/internal/store"
	"atelie-backend/internal/supabase"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	probeTimeout    = 3 * time.Second
	shutdownTimeout = 10 * time.Second
)

// backend is the selected persistence: repositories plus the change signals
// that drive the live snapshots.
type backend struct {
	servicos          services.ServicoRepository
	pagamentos        services.PagamentoRepository
	servicosChanges   <-chan struct{}
	pagamentosChanges <-chan struct{}
	probeTarget       string
}

// triggers lets handlers refresh a snapshot right after their own write.
type triggers struct {
	servicos   live.Trigger
	pagamentos live.Trigger
}

func (t triggers) ServicosChanged()   { t.servicos.Fire() }
func (t triggers) PagamentosChanged() { t.pagamentos.Fire() }

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	logFile, err := logging.OpenLogFile(cfg.LogFile)
	if err != nil {
		logger.Fatal("failed to open log file", zap.Error(err))
	}
	if logFile != nil {
		defer logFile.Close()
		logger = logging.AttachFileLogger(logger, logFile, !cfg.IsProduction())
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var be *backend
	switch cfg.StoreBackend {
	case config.BackendDynamoDB:
		be, err = openDynamoDB(ctx, cfg, logger)
	default:
		be, err = openSupabase(ctx, cfg, logger)
	}
	if err != nil {
		logger.Fatal("failed to initialize store backend", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}

	// Photos always go to Supabase Storage when it is configured, whatever
	// backend holds the records.
	var photoStorage services.PhotoStorage
	if cfg.SupabaseURL != "" {
		storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
		if err != nil {
			logger.Warn("photo storage disabled", zap.Error(err))
		} else {
			photoStorage = storageClient
		}
	}

	loc := cfg.Location()
	checker := connectivity.NewChecker(be.probeTarget, probeTimeout, logger)
	photos := services.NewStorageService(photoStorage, logger)
	servicoService := services.NewServicoService(be.servicos, photos, checker, loc, logger)
	pagamentoService := services.NewPagamentoService(be.pagamentos, checker, loc, logger)
	vozService := services.NewVozService(extraction.NewOpenRouterExtractor(cfg, logger), logger)

	// Live snapshots
	st := store.New()
	trig := triggers{servicos: live.NewTrigger(), pagamentos: live.NewTrigger()}
	feedLogger := logger.Named("live")
	go live.Run(ctx, live.Merge(ctx, be.servicosChanges, trig.servicos), servicoService.List, st.SetServicos, func(err error) {
		feedLogger.Warn("failed to reload servicos", zap.Error(err))
	})
	go live.Run(ctx, live.Merge(ctx, be.pagamentosChanges, trig.pagamentos), pagamentoService.List, st.SetPagamentos, func(err error) {
		feedLogger.Warn("failed to reload pagamentos", zap.Error(err))
	})

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logging.GinLogger(logger))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.NewHealthHandler(cfg.StoreBackend, st, checker).Health)

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))
	handlers.Handlers{
		Servicos:   handlers.NewServicosHandler(servicoService, st, trig, loc),
		Pagamentos: handlers.NewPagamentosHandler(pagamentoService, st, trig, loc),
		Dashboard:  handlers.NewDashboardHandler(st, loc),
		Voz:        handlers.NewVozHandler(vozService),
	}.Register(api)

	if !cfg.AuthEnabled() {
		logger.Warn("SUPABASE_JWT_SECRET not set; API routes are unauthenticated")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port), zap.String("backend", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func openSupabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*backend, error) {
	client, err := supabase.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Supabase client: %w", err)
	}

	be := &backend{
		servicos:    client.Servicos(),
		pagamentos:  client.Pagamentos(),
		probeTarget: cfg.SupabaseURL,
	}

	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set; migrations skipped and snapshots refreshed by polling",
			zap.Duration("interval", cfg.PollInterval))
		be.servicosChanges = live.Ticker(ctx, cfg.PollInterval)
		be.pagamentosChanges = live.Ticker(ctx, cfg.PollInterval)
		return be, nil
	}

	migrator, err := database.NewMigrator(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Warn("failed to initialize migrator", zap.Error(err))
	} else {
		if err := migrator.Run(); err != nil {
			logger.Warn("migration failed", zap.Error(err))
		}
		_ = migrator.Close()
	}

	realtime := supabase.NewRealtimeClient(cfg.DatabaseURL, logger)
	be.servicosChanges = changesOrPoll(ctx, realtime, cfg.ServicosTable, cfg.PollInterval, logger)
	be.pagamentosChanges = changesOrPoll(ctx, realtime, cfg.PagamentosTable, cfg.PollInterval, logger)
	return be, nil
}

func changesOrPoll(ctx context.Context, realtime *supabase.RealtimeClient, table string, interval time.Duration, logger *zap.Logger) <-chan struct{} {
	changes, err := realtime.Changes(ctx, table)
	if err != nil {
		logger.Warn("realtime unavailable; polling instead",
			zap.String("table", table), zap.Duration("interval", interval), zap.Error(err))
		return live.Ticker(ctx, interval)
	}
	return changes
}

func openDynamoDB(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*backend, error) {
	client, err := dynamodb.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	probeTarget := cfg.DynamoDBEndpoint
	if cfg.DynamoDBEndpoint != "" {
		if err := dynamodb.EnsureTables(ctx, client, logger, cfg.DynamoServicosTable, cfg.DynamoPagamentosTable); err != nil {
			return nil, err
		}
	} else {
		probeTarget = fmt.Sprintf("https://dynamodb.%s.amazonaws.com", cfg.AWSRegion)
	}

	return &backend{
		servicos:          dynamodb.NewServicoRepository(client, cfg.DynamoServicosTable),
		pagamentos:        dynamodb.NewPagamentoRepository(client, cfg.DynamoPagamentosTable),
		servicosChanges:   live.Ticker(ctx, cfg.PollInterval),
		pagamentosChanges: live.Ticker(ctx, cfg.PollInterval),
		probeTarget:       probeTarget,
	}, nil
}
