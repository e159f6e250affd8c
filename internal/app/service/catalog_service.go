package service

import (
	"context"
	"sort"
	"sync"

	"file_wallet/internal/app/port"
	"file_wallet/internal/domain/entity"
	"file_wallet/internal/infrastructure/configloader"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// catalogServiceImpl implements port.CatalogService by fanning snapshot
// records out to the translator.
type catalogServiceImpl struct {
	translator port.AssetTranslator
	logger     *zap.Logger
	cfg        *configloader.Config
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(translator port.AssetTranslator, logger *zap.Logger, cfg *configloader.Config) port.CatalogService {
	return &catalogServiceImpl{
		translator: translator,
		logger:     logger.Named("CatalogService"),
		cfg:        cfg,
	}
}

// BuildCatalog implements port.CatalogService. Each record translates
// independently, so records are processed concurrently and the result is
// ordered by filename for a stable display.
func (s *catalogServiceImpl) BuildCatalog(ctx context.Context, snapshot entity.WalletSnapshot) (*entity.AssetCatalog, error) {
	catalog := &entity.AssetCatalog{
		Assets: make([]entity.FileAsset, 0, len(snapshot.Tokens)+len(snapshot.Inscriptions)),
	}

	var mu sync.Mutex
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.cfg.Catalog.MaxConcurrentTranslations)

	for i := range snapshot.Tokens {
		token := &snapshot.Tokens[i]
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			asset := s.translator.FromFungibleToken(token)
			mu.Lock()
			catalog.Assets = append(catalog.Assets, asset)
			mu.Unlock()
			return nil
		})
	}

	for i := range snapshot.Inscriptions {
		record := &snapshot.Inscriptions[i]
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			asset := s.translator.FromInscription(record)
			mu.Lock()
			catalog.Assets = append(catalog.Assets, asset)
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(catalog.Assets, func(i, j int) bool {
		return catalog.Assets[i].Filename < catalog.Assets[j].Filename
	})
	for i := range catalog.Assets {
		catalog.TotalValueUSD += catalog.Assets[i].ValueUSD
	}

	s.logger.Info("Catalog built",
		zap.Int("assetCount", len(catalog.Assets)),
		zap.Float64("totalValueUSD", catalog.TotalValueUSD))
	return catalog, nil
}
