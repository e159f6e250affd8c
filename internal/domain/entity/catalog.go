package entity

// WalletSnapshot is the raw holdings of one wallet as fetched by the
// application shell from its providers.
type WalletSnapshot struct {
	Tokens       []Bsv20Token  `json:"tokens"`
	Inscriptions []Inscription `json:"inscriptions"`
}

// AssetCatalog is a wallet snapshot translated into display assets, with
// an aggregate estimated value.
type AssetCatalog struct {
	Assets        []FileAsset `json:"assets"`
	TotalValueUSD float64     `json:"totalValueUSD"`
}
