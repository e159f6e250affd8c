package port

import (
	"context"

	"file_wallet/internal/domain/entity"
)

// CatalogService translates a wallet snapshot into a display catalog.
type CatalogService interface {
	BuildCatalog(ctx context.Context, snapshot entity.WalletSnapshot) (*entity.AssetCatalog, error)
}

// SnapshotProvider defines the interface for fetching a wallet snapshot.
type SnapshotProvider interface {
	GetSnapshot() (*entity.WalletSnapshot, error)
}
