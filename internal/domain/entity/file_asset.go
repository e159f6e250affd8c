package entity

import "time"

// AssetType distinguishes fungible holdings from unique ones.
type AssetType string

const (
	AssetFT  AssetType = "ft"
	AssetNFT AssetType = "nft"
)

// TokenStandard tags the protocol a holding originates from.
type TokenStandard string

const (
	StandardBSV20    TokenStandard = "bsv20"
	StandardOrdinals TokenStandard = "ordinals"
	StandardUnknown  TokenStandard = "unknown"
)

// NormalizeStandard maps an arbitrary standard tag onto the closed set of
// known standards, defaulting to StandardUnknown.
func NormalizeStandard(s string) TokenStandard {
	switch TokenStandard(s) {
	case StandardBSV20:
		return StandardBSV20
	case StandardOrdinals:
		return StandardOrdinals
	default:
		return StandardUnknown
	}
}

// AssetMetadata carries arbitrary descriptive fields (name, description,
// collection, decimals, ...). Numeric values are stored as float64 so a
// serialized asset deserializes to an equal map.
type AssetMetadata map[string]any

// FileAsset is the normalized, display-ready view of one on-chain token
// holding. It is recomputed from the raw record on every translation and
// carries no persistent identity.
type FileAsset struct {
	ID       string    `json:"id"`
	Filename string    `json:"filename"`
	Type     AssetType `json:"type"`

	Icon          string  `json:"icon"`
	DisplayAmount float64 `json:"displayAmount"`
	Ticker        string  `json:"ticker,omitempty"`

	// ValueUSD is a display estimate, never an authoritative price.
	ValueUSD float64 `json:"value"`

	Metadata AssetMetadata `json:"metadata,omitempty"`

	// UnderlyingToken references the raw chain record. Held by reference,
	// never copied or mutated.
	UnderlyingToken any           `json:"-"`
	Standard        TokenStandard `json:"standard"`

	Confirmed bool `json:"confirmed"`
	Pending   bool `json:"pending,omitempty"`

	LastModified time.Time `json:"lastModified,omitempty"`
	ContentType  string    `json:"contentType,omitempty"`
}
