package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"file_wallet/internal/app/port"
	"file_wallet/internal/app/service"
	"file_wallet/internal/infrastructure/addrval"
	"file_wallet/internal/infrastructure/configloader"
	"file_wallet/internal/infrastructure/custodial"
	"file_wallet/internal/infrastructure/pricing"
	"file_wallet/internal/infrastructure/restapi"
	"file_wallet/internal/pkg/metrics"
	"file_wallet/internal/pkg/utils"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Bootstrap logger for everything that can fail before zap is up.
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()

	// Route slog through zap so both APIs land in the same stream.
	slogHandler := zapslog.NewHandler(zapLogger.Core(), &zapslog.HandlerOptions{})
	slog.SetDefault(slog.New(slogHandler))

	cfgPath := utils.GetEnv("CONFIG_PATH", "config/config.yaml")
	cfg, err := configloader.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		log.Warnf("Invalid log level in config: %s. Defaulting to Info.", cfg.Logging.Level)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	zapLogger.Info("Configuration loaded", zap.String("path", cfgPath))

	metrics.MustRegisterMetrics()

	// Valuation: static stand-in, fronted by the HTTP oracle when a quote
	// API is configured.
	var prices port.PriceProvider = pricing.NewStaticOracle()
	if cfg.Pricing.BaseURL != "" {
		prices = pricing.NewHTTPOracle(cfg, zapLogger, prices)
		zapLogger.Info("HTTP price oracle initialized", zap.String("baseURL", cfg.Pricing.BaseURL))
	} else {
		zapLogger.Warn("No quote API configured, using static stand-in prices")
	}

	addressValidator := addrval.NewBase58Validator()
	classifier := service.NewHeuristicNFTClassifier(cfg)

	planner := service.NewRoutePlanner(addressValidator, zapLogger, cfg)
	translator := service.NewAssetTranslator(classifier, prices, zapLogger)
	catalogService := service.NewCatalogService(translator, zapLogger, cfg)
	custodialClient := custodial.NewHandCashClient(cfg, zapLogger)

	router := restapi.SetupRouter(
		restapi.NewRouteHandler(planner),
		restapi.NewAssetHandler(translator, catalogService),
		restapi.NewCustodialHandler(custodialClient),
		zapLogger,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		zapLogger.Info("Starting HTTP server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("Server exited")
}
