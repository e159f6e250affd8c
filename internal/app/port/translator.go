package port

import "file_wallet/internal/domain/entity"

// AssetTranslator normalizes raw chain token records into file assets and
// converts assets to and from portable container documents.
// Implementations are pure over their inputs and safe for concurrent use.
type AssetTranslator interface {
	// FromFungibleToken translates a BSV20-style record, classifying it
	// as fungible or NFT-like via the injected classifier policy.
	FromFungibleToken(token *entity.Bsv20Token) entity.FileAsset

	// FromInscription translates an ordinals inscription record. The
	// result is always an NFT asset.
	FromInscription(record *entity.Inscription) entity.FileAsset

	// ToContainer captures an asset as a versioned export document.
	ToContainer(asset entity.FileAsset) entity.FileContainer

	// ExportContainer is ToContainer followed by JSON serialization.
	ExportContainer(asset entity.FileAsset) ([]byte, error)

	// FromContainer parses a serialized container and reconstructs the
	// asset, recomputing derived fields (filename, icon) rather than
	// trusting serialized copies. Unknown versions or types are rejected.
	FromContainer(data []byte) (*entity.FileAsset, error)

	// ToTransaction converts an asset into the transfer descriptor for
	// its standard. Assets of an unknown standard are rejected before any
	// transaction is attempted.
	ToTransaction(asset entity.FileAsset, recipient string, amount float64) (*entity.TransferDescriptor, error)
}

// NFTClassifier decides whether a fungible-protocol token should be
// presented as a unique asset. The default is a heuristic; callers with
// better information inject their own policy.
type NFTClassifier interface {
	IsNFTLike(token *entity.Bsv20Token) bool
}
