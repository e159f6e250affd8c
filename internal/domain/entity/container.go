package entity

// ContainerVersion is the only container format version this code reads
// or writes. Parsers must reject anything else.
const ContainerVersion = "1.0"

// BlockchainRef preserves enough chain provenance inside a container to
// reconstruct an equivalent asset: the originating standard, the raw
// record, and its chain coordinates.
type BlockchainRef struct {
	Standard      string  `json:"standard"`
	TokenData     any     `json:"tokenData,omitempty"`
	Txid          string  `json:"txid,omitempty"`
	Vout          *uint32 `json:"vout,omitempty"`
	InscriptionID string  `json:"inscriptionId,omitempty"`
}

// FileContainer is the portable export document for a FileAsset. The two
// variants share the version/type header used for parse dispatch.
type FileContainer interface {
	ContainerType() AssetType
}

// ContainerHeader is the discriminator read before choosing a variant.
type ContainerHeader struct {
	Version string    `json:"version"`
	Type    AssetType `json:"type"`
}

// FTContainer is the export document for a fungible holding.
type FTContainer struct {
	Version    string        `json:"version"`
	Type       AssetType     `json:"type"`
	Ticker     string        `json:"ticker"`
	Amount     float64       `json:"amount"`
	Decimals   float64       `json:"decimals"`
	Metadata   AssetMetadata `json:"metadata,omitempty"`
	Blockchain BlockchainRef `json:"blockchain"`
}

// ContainerType implements FileContainer.
func (c FTContainer) ContainerType() AssetType { return AssetFT }

// NFTContainer is the export document for a unique holding.
type NFTContainer struct {
	Version    string        `json:"version"`
	Type       AssetType     `json:"type"`
	Name       string        `json:"name"`
	Metadata   AssetMetadata `json:"metadata"`
	Blockchain BlockchainRef `json:"blockchain"`
}

// ContainerType implements FileContainer.
func (c NFTContainer) ContainerType() AssetType { return AssetNFT }
