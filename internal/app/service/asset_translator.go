package service

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"

	"file_wallet/internal/app/port"
	"file_wallet/internal/domain/entity"
	"file_wallet/internal/pkg/metrics"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrUnsupportedContainerVersion is returned for container documents
	// with an unrecognized version tag.
	ErrUnsupportedContainerVersion = errors.New("unsupported container version")
	// ErrUnsupportedContainerType is returned for container documents
	// whose type discriminator is neither ft nor nft.
	ErrUnsupportedContainerType = errors.New("unsupported container type")
	// ErrMalformedContainer is returned when a container document cannot
	// be parsed or lacks a required field.
	ErrMalformedContainer = errors.New("malformed container document")
	// ErrUnsupportedStandard is returned when an asset of an unknown
	// token standard is converted to a transfer descriptor.
	ErrUnsupportedStandard = errors.New("unsupported token standard")
)

var (
	nonFilenameChars    = regexp.MustCompile(`[^a-zA-Z0-9\-_]`)
	repeatedUnderscores = regexp.MustCompile(`_+`)
)

// assetTranslatorImpl implements port.AssetTranslator.
type assetTranslatorImpl struct {
	classifier port.NFTClassifier
	prices     port.PriceProvider
	logger     *zap.Logger
}

// NewAssetTranslator creates a new asset translator with the given
// classification policy and valuation provider.
func NewAssetTranslator(classifier port.NFTClassifier, prices port.PriceProvider, logger *zap.Logger) port.AssetTranslator {
	return &assetTranslatorImpl{
		classifier: classifier,
		prices:     prices,
		logger:     logger.Named("AssetTranslator"),
	}
}

// FromFungibleToken implements port.AssetTranslator.
func (t *assetTranslatorImpl) FromFungibleToken(token *entity.Bsv20Token) entity.FileAsset {
	ticker := token.DisplayTicker("TOKEN")

	var asset entity.FileAsset
	if t.classifier.IsNFTLike(token) {
		asset = t.fungibleAsNFT(token, ticker)
	} else {
		asset = t.fungibleAsFT(token, ticker)
	}

	metrics.AssetTranslationsTotal.WithLabelValues(string(asset.Standard), string(asset.Type)).Inc()
	t.logger.Debug("Translated fungible token record",
		zap.String("ticker", ticker),
		zap.String("type", string(asset.Type)),
		zap.String("filename", asset.Filename))
	return asset
}

func (t *assetTranslatorImpl) fungibleAsNFT(token *entity.Bsv20Token, ticker string) entity.FileAsset {
	metadata := entity.AssetMetadata{
		"name":        ticker,
		"description": "BSV20 NFT token",
	}
	if token.Collection != "" {
		metadata["collection"] = token.Collection
	}

	return entity.FileAsset{
		ID:              tokenID(token),
		Filename:        sanitizeFilename(ticker) + ".nft",
		Type:            entity.AssetNFT,
		Icon:            resolveIcon(ticker, entity.AssetNFT),
		DisplayAmount:   1,
		Ticker:          ticker,
		ValueUSD:        t.unitPrice(ticker),
		Metadata:        metadata,
		UnderlyingToken: token,
		Standard:        entity.StandardBSV20,
		Confirmed:       token.All.Confirmed > 0,
		Pending:         token.All.Pending > 0,
		LastModified:    time.Now(),
		ContentType:     "application/bsv20-nft",
	}
}

func (t *assetTranslatorImpl) fungibleAsFT(token *entity.Bsv20Token, ticker string) entity.FileAsset {
	// Pending units are excluded from the displayed confirmed amount.
	amount := float64(token.All.Confirmed)

	metadata := entity.AssetMetadata{
		"name":        ticker + " Shares",
		"description": "Fungible BSV20 tokens",
		"decimals":    float64(token.Decimals),
	}
	if token.Max > 0 {
		metadata["totalSupply"] = float64(token.Max)
	}

	return entity.FileAsset{
		ID:              tokenID(token),
		Filename:        sanitizeFilename(ticker) + "-shares.ft",
		Type:            entity.AssetFT,
		Icon:            resolveIcon(ticker, entity.AssetFT),
		DisplayAmount:   amount,
		Ticker:          ticker,
		ValueUSD:        t.unitPrice(ticker) * amount,
		Metadata:        metadata,
		UnderlyingToken: token,
		Standard:        entity.StandardBSV20,
		Confirmed:       amount > 0,
		Pending:         token.All.Pending > 0,
		LastModified:    time.Now(),
		ContentType:     "application/bsv20-ft",
	}
}

// FromInscription implements port.AssetTranslator.
func (t *assetTranslatorImpl) FromInscription(record *entity.Inscription) entity.FileAsset {
	name := extractInscriptionName(record)

	metadata := entity.AssetMetadata{
		"name":        name,
		"description": "Bitcoin Ordinals inscription",
		"contentType": record.ContentType,
	}
	if record.InscriptionID != "" {
		metadata["inscriptionId"] = record.InscriptionID
	}
	// Record-supplied metadata wins over the derived defaults.
	for key, value := range record.Metadata {
		metadata[key] = value
	}

	id := record.ID
	if id == "" {
		id = record.InscriptionID
	}
	if id == "" {
		id = generateAssetID()
	}

	contentType := record.ContentType
	if contentType == "" {
		contentType = "application/ordinals"
	}

	asset := entity.FileAsset{
		ID:              id,
		Filename:        sanitizeFilename(name) + ".nft",
		Type:            entity.AssetNFT,
		Icon:            resolveContentTypeIcon(record.ContentType),
		DisplayAmount:   1,
		Ticker:          name,
		ValueUSD:        t.prices.OrdinalEstimateUSD(record.ID),
		Metadata:        metadata,
		UnderlyingToken: record,
		Standard:        entity.StandardOrdinals,
		Confirmed:       true,
		LastModified:    time.Now(),
		ContentType:     contentType,
	}

	metrics.AssetTranslationsTotal.WithLabelValues(string(asset.Standard), string(asset.Type)).Inc()
	return asset
}

// ToContainer implements port.AssetTranslator.
func (t *assetTranslatorImpl) ToContainer(asset entity.FileAsset) entity.FileContainer {
	if asset.Type == entity.AssetFT {
		ticker := asset.Ticker
		if ticker == "" {
			ticker = "TOKEN"
		}
		return entity.FTContainer{
			Version:    entity.ContainerVersion,
			Type:       entity.AssetFT,
			Ticker:     ticker,
			Amount:     asset.DisplayAmount,
			Decimals:   metadataFloat(asset.Metadata, "decimals"),
			Metadata:   asset.Metadata,
			Blockchain: chainRef(asset),
		}
	}

	name := metadataString(asset.Metadata, "name")
	if name == "" {
		name = asset.Ticker
	}
	if name == "" {
		name = "NFT"
	}
	metadata := asset.Metadata
	if metadata == nil {
		metadata = entity.AssetMetadata{}
	}
	return entity.NFTContainer{
		Version:    entity.ContainerVersion,
		Type:       entity.AssetNFT,
		Name:       name,
		Metadata:   metadata,
		Blockchain: chainRef(asset),
	}
}

// ExportContainer implements port.AssetTranslator.
func (t *assetTranslatorImpl) ExportContainer(asset entity.FileAsset) ([]byte, error) {
	data, err := json.Marshal(t.ToContainer(asset))
	if err != nil {
		return nil, fmt.Errorf("failed to serialize container: %w", err)
	}
	return data, nil
}

// FromContainer implements port.AssetTranslator. Derived fields
// (filename, icon) are recomputed, never taken on faith from the input.
func (t *assetTranslatorImpl) FromContainer(data []byte) (*entity.FileAsset, error) {
	var header entity.ContainerHeader
	if err := json.Unmarshal(data, &header); err != nil {
		metrics.ContainerParseFailuresTotal.Inc()
		return nil, fmt.Errorf("%w: %v", ErrMalformedContainer, err)
	}
	if header.Version != entity.ContainerVersion {
		metrics.ContainerParseFailuresTotal.Inc()
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContainerVersion, header.Version)
	}

	switch header.Type {
	case entity.AssetFT:
		return t.parseFTContainer(data)
	case entity.AssetNFT:
		return t.parseNFTContainer(data)
	default:
		metrics.ContainerParseFailuresTotal.Inc()
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContainerType, header.Type)
	}
}

func (t *assetTranslatorImpl) parseFTContainer(data []byte) (*entity.FileAsset, error) {
	var container entity.FTContainer
	if err := json.Unmarshal(data, &container); err != nil {
		metrics.ContainerParseFailuresTotal.Inc()
		return nil, fmt.Errorf("%w: %v", ErrMalformedContainer, err)
	}
	if container.Ticker == "" {
		metrics.ContainerParseFailuresTotal.Inc()
		return nil, fmt.Errorf("%w: missing ticker", ErrMalformedContainer)
	}

	return &entity.FileAsset{
		ID:              generateAssetID(),
		Filename:        sanitizeFilename(container.Ticker) + "-shares.ft",
		Type:            entity.AssetFT,
		Icon:            resolveIcon(container.Ticker, entity.AssetFT),
		DisplayAmount:   container.Amount,
		Ticker:          container.Ticker,
		Metadata:        container.Metadata,
		UnderlyingToken: container.Blockchain.TokenData,
		Standard:        entity.NormalizeStandard(container.Blockchain.Standard),
		Confirmed:       true,
		ContentType:     "application/bitcoin-ft",
	}, nil
}

func (t *assetTranslatorImpl) parseNFTContainer(data []byte) (*entity.FileAsset, error) {
	var container entity.NFTContainer
	if err := json.Unmarshal(data, &container); err != nil {
		metrics.ContainerParseFailuresTotal.Inc()
		return nil, fmt.Errorf("%w: %v", ErrMalformedContainer, err)
	}
	if container.Name == "" {
		metrics.ContainerParseFailuresTotal.Inc()
		return nil, fmt.Errorf("%w: missing name", ErrMalformedContainer)
	}

	metadata := container.Metadata
	if metadata == nil {
		metadata = entity.AssetMetadata{}
	}

	return &entity.FileAsset{
		ID:              generateAssetID(),
		Filename:        sanitizeFilename(container.Name) + ".nft",
		Type:            entity.AssetNFT,
		Icon:            resolveIcon(container.Name, entity.AssetNFT),
		DisplayAmount:   1,
		Ticker:          container.Name,
		Metadata:        metadata,
		UnderlyingToken: container.Blockchain.TokenData,
		Standard:        entity.NormalizeStandard(container.Blockchain.Standard),
		Confirmed:       true,
		ContentType:     "application/bitcoin-nft",
	}, nil
}

// ToTransaction implements port.AssetTranslator. The descriptor shape
// is per-standard: fungible transfers carry the raw token record and an
// amount, ordinals transfers move the whole inscription.
func (t *assetTranslatorImpl) ToTransaction(asset entity.FileAsset, recipient string, amount float64) (*entity.TransferDescriptor, error) {
	switch asset.Standard {
	case entity.StandardBSV20:
		if amount <= 0 {
			amount = asset.DisplayAmount
		}
		if amount <= 0 {
			amount = 1
		}
		return &entity.TransferDescriptor{
			Type:      entity.TransferBSV20,
			Token:     asset.UnderlyingToken,
			Recipient: recipient,
			Amount:    amount,
		}, nil
	case entity.StandardOrdinals:
		return &entity.TransferDescriptor{
			Type:        entity.TransferOrdinals,
			Inscription: asset.UnderlyingToken,
			Recipient:   recipient,
		}, nil
	default:
		t.logger.Warn("Rejected transfer for unknown standard",
			zap.String("standard", string(asset.Standard)),
			zap.String("assetId", asset.ID))
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStandard, asset.Standard)
	}
}

// unitPrice looks up the ticker's quote, defaulting to 1.00 when the
// provider has none so holdings never display as worthless.
func (t *assetTranslatorImpl) unitPrice(ticker string) float64 {
	if price, ok := t.prices.PriceUSD(ticker); ok {
		return price
	}
	return 1.00
}

// chainRef captures the provenance fields of the raw record backing an
// asset.
func chainRef(asset entity.FileAsset) entity.BlockchainRef {
	ref := entity.BlockchainRef{
		Standard:  string(asset.Standard),
		TokenData: asset.UnderlyingToken,
	}

	switch record := asset.UnderlyingToken.(type) {
	case *entity.Bsv20Token:
		if record.Txid != "" {
			vout := record.Vout
			ref.Txid = record.Txid
			ref.Vout = &vout
		}
	case *entity.Inscription:
		if record.Txid != "" {
			vout := record.Vout
			ref.Txid = record.Txid
			ref.Vout = &vout
		}
		ref.InscriptionID = record.InscriptionID
	}
	return ref
}

// extractInscriptionName resolves a display name: explicit metadata name,
// then a prefix of the inscription id, then the record id.
func extractInscriptionName(record *entity.Inscription) string {
	if name := metadataString(record.Metadata, "name"); name != "" {
		return name
	}
	if record.InscriptionID != "" {
		prefix := record.InscriptionID
		if len(prefix) > 8 {
			prefix = prefix[:8]
		}
		return "Inscription-" + prefix
	}
	if record.ID != "" {
		return "Ordinal-" + record.ID
	}
	return "Ordinal-Unknown"
}

// sanitizeFilename strips characters unsafe for a display filename,
// collapses runs of underscores, trims leading/trailing underscores and
// lower-cases. Idempotent.
func sanitizeFilename(name string) string {
	sanitized := nonFilenameChars.ReplaceAllString(name, "_")
	sanitized = repeatedUnderscores.ReplaceAllString(sanitized, "_")
	sanitized = strings.Trim(sanitized, "_")
	return strings.ToLower(sanitized)
}

func tokenID(token *entity.Bsv20Token) string {
	if token.ID != "" {
		return token.ID
	}
	return generateAssetID()
}

const assetIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func generateAssetID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = assetIDAlphabet[rand.IntN(len(assetIDAlphabet))]
	}
	return fmt.Sprintf("file-%d-%s", time.Now().UnixMilli(), suffix)
}

func metadataString(metadata entity.AssetMetadata, key string) string {
	if metadata == nil {
		return ""
	}
	if value, ok := metadata[key].(string); ok {
		return value
	}
	return ""
}

func metadataFloat(metadata entity.AssetMetadata, key string) float64 {
	if metadata == nil {
		return 0
	}
	if value, ok := metadata[key].(float64); ok {
		return value
	}
	return 0
}
