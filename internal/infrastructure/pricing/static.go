package pricing

import (
	"math/rand/v2"
	"strings"

	"file_wallet/internal/app/port"
)

// staticQuotes is a fixed demo quote table. Tickers missing here simply
// have no quote.
var staticQuotes = map[string]float64{
	"AAPL":  175.50,
	"GOOGL": 135.25,
	"TSLA":  248.50,
	"MSFT":  378.90,
	"GOLD":  2045.00,
	"BTC":   43500.00,
	"BSV":   45.25,
}

// StaticOracle is a stand-in port.PriceProvider: a fixed quote table and
// a bounded pseudo-random inscription estimate. It exists so the
// translator always has a provider to run against and must never be used
// as an authoritative price source.
type StaticOracle struct{}

// NewStaticOracle creates the stand-in provider.
func NewStaticOracle() *StaticOracle {
	return &StaticOracle{}
}

var _ port.PriceProvider = (*StaticOracle)(nil)

// PriceUSD implements port.PriceProvider.
func (o *StaticOracle) PriceUSD(ticker string) (float64, bool) {
	price, ok := staticQuotes[strings.ToUpper(ticker)]
	return price, ok
}

// OrdinalEstimateUSD implements port.PriceProvider. Returns a placeholder
// in the 100-1100 USD range.
func (o *StaticOracle) OrdinalEstimateUSD(id string) float64 {
	return rand.Float64()*1000 + 100
}
