package provider

import (
	"file_wallet/internal/app/port"
	"file_wallet/internal/domain/entity"
	"file_wallet/internal/pkg/utils"
)

type snapshotProviderImpl struct {
	snapshotFilePath string
	logger           port.Logger
}

// NewSnapshotProvider creates a new SnapshotProvider.
func NewSnapshotProvider(filePath string, logger port.Logger) port.SnapshotProvider {
	return &snapshotProviderImpl{snapshotFilePath: filePath, logger: logger}
}

// GetSnapshot loads the wallet snapshot from the configured file.
func (p *snapshotProviderImpl) GetSnapshot() (*entity.WalletSnapshot, error) {
	p.logger.Debug("Loading wallet snapshot from file", "path", p.snapshotFilePath)
	snapshot, err := utils.LoadSnapshotFromJSON(p.snapshotFilePath)
	if err != nil {
		p.logger.Error("Failed to load wallet snapshot", "path", p.snapshotFilePath, "error", err)
		return nil, err
	}
	p.logger.Info("Wallet snapshot loaded successfully",
		"tokens", len(snapshot.Tokens), "inscriptions", len(snapshot.Inscriptions), "path", p.snapshotFilePath)
	return snapshot, nil
}
