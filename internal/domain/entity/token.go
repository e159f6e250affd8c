package entity

// TokenAmounts holds the on-chain unit counts of a token holding.
type TokenAmounts struct {
	Confirmed uint64 `json:"confirmed"`
	Pending   uint64 `json:"pending"`
}

// Bsv20Token is a raw BSV20-style fungible token record as delivered by a
// wallet provider. Field names follow the on-chain inscription JSON
// (tick/sym/max/dec), matching what indexers emit.
type Bsv20Token struct {
	Ticker     string       `json:"tick,omitempty"`
	Symbol     string       `json:"sym,omitempty"`
	ID         string       `json:"id,omitempty"`
	Max        uint64       `json:"max,omitempty"`
	Decimals   uint8        `json:"dec,omitempty"`
	Collection string       `json:"collection,omitempty"`
	Txid       string       `json:"txid,omitempty"`
	Vout       uint32       `json:"vout"`
	All        TokenAmounts `json:"all"`
}

// DisplayTicker returns the first non-empty of tick and sym, or the
// provided fallback.
func (t *Bsv20Token) DisplayTicker(fallback string) string {
	if t.Ticker != "" {
		return t.Ticker
	}
	if t.Symbol != "" {
		return t.Symbol
	}
	return fallback
}

// Inscription is a raw ordinals inscription record as delivered by a
// wallet provider.
type Inscription struct {
	ID            string        `json:"id"`
	InscriptionID string        `json:"inscriptionId,omitempty"`
	ContentType   string        `json:"contentType"`
	Content       string        `json:"content,omitempty"`
	Metadata      AssetMetadata `json:"metadata,omitempty"`
	Txid          string        `json:"txid,omitempty"`
	Vout          uint32        `json:"vout"`
	Address       string        `json:"address,omitempty"`
}

// CustodialBalance is the spendable balance reported by the custodial
// account provider.
type CustodialBalance struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// PaymentResult is returned by the custodial provider after a payment is
// accepted.
type PaymentResult struct {
	TransactionID string `json:"transactionId"`
}
