package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"file_wallet/internal/app/provider"
	"file_wallet/internal/app/service"
	"file_wallet/internal/infrastructure/configloader"
	"file_wallet/internal/infrastructure/pricing"
	"file_wallet/internal/pkg/logger"

	"go.uber.org/zap"
)

// assetcat translates a wallet snapshot file into a display catalog and
// prints it, using the static stand-in oracle for valuations.
func main() {
	configPath := flag.String("config", "", "optional path to a YAML config file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: assetcat [-config config.yaml] <snapshot.json>")
		os.Exit(2)
	}

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	cfg := configloader.Default()
	if *configPath != "" {
		cfg, err = configloader.Load(*configPath)
		if err != nil {
			zapLogger.Fatal("Failed to load configuration", zap.Error(err))
		}
	}

	logger.InitSlog(cfg.Logging.Level)
	appLogger := logger.NewSlogAdapter()

	snapshotProvider := provider.NewSnapshotProvider(flag.Arg(0), appLogger)
	snapshot, err := snapshotProvider.GetSnapshot()
	if err != nil {
		zapLogger.Fatal("Failed to load snapshot", zap.String("path", flag.Arg(0)), zap.Error(err))
	}

	translator := service.NewAssetTranslator(
		service.NewHeuristicNFTClassifier(cfg),
		pricing.NewStaticOracle(),
		zapLogger,
	)
	catalogService := service.NewCatalogService(translator, zapLogger, cfg)

	catalog, err := catalogService.BuildCatalog(context.Background(), *snapshot)
	if err != nil {
		zapLogger.Fatal("Failed to build catalog", zap.Error(err))
	}

	fmt.Printf("%-32s %-5s %-12s %12s %14s\n", "FILENAME", "TYPE", "TICKER", "AMOUNT", "VALUE (USD)")
	for _, asset := range catalog.Assets {
		fmt.Printf("%-32s %-5s %-12s %12.2f %14.2f\n",
			asset.Filename, asset.Type, asset.Ticker, asset.DisplayAmount, asset.ValueUSD)
	}
	fmt.Printf("\n%d assets, estimated total %.2f USD\n", len(catalog.Assets), catalog.TotalValueUSD)
}
