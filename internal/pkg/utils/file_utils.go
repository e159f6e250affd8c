package utils

import (
	"os"

	"file_wallet/internal/domain/entity"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadSnapshotFromJSON reads a wallet snapshot (token and inscription
// lists) from a JSON file.
func LoadSnapshotFromJSON(filePath string) (*entity.WalletSnapshot, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var snapshot entity.WalletSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// GetEnv returns the value of an environment variable or a fallback when
// it is unset or empty.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
