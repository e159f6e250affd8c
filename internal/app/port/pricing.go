package port

// PriceProvider supplies USD valuations for display purposes.
type PriceProvider interface {
	// PriceUSD returns the unit price for a ticker and whether a quote
	// was available.
	PriceUSD(ticker string) (float64, bool)

	// OrdinalEstimateUSD estimates the value of a single inscription.
	// Stand-in implementations return a bounded placeholder and must
	// never be treated as authoritative.
	OrdinalEstimateUSD(id string) float64
}
