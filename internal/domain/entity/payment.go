package entity

// FundingSource identifies which account funds a payment.
type FundingSource string

const (
	// SourcePrimary is the user's locally-held, non-custodial wallet.
	SourcePrimary FundingSource = "primary"
	// SourceSecondary is the linked custodial (HandCash) wallet.
	SourceSecondary FundingSource = "secondary"
	// SourceSplit draws from both accounts, or signals that either account
	// could fund the payment when RouteDecision.CanUseBoth is set.
	SourceSplit FundingSource = "split"
)

// PaymentRequest is an immutable snapshot of a single payment attempt.
// SecondaryBalance is nil when no custodial account is linked; the planner
// never reads linkage from ambient state.
type PaymentRequest struct {
	To               string   `json:"to"`
	Amount           float64  `json:"amount"`
	Currency         string   `json:"currency"`
	PrimaryBalance   float64  `json:"primaryBalance"`
	SecondaryBalance *float64 `json:"secondaryBalance,omitempty"`
}

// RouteDecision is the planner's verdict for a payment request.
type RouteDecision struct {
	Source FundingSource `json:"source"`
	Reason string        `json:"reason"`
	// CanUseBoth is set when both accounts are individually sufficient and
	// the caller is free to apply its own preference.
	CanUseBoth bool `json:"canUseBoth"`
}

// FeeEstimate holds the per-source fee components for a decided route.
// Total is always the sum of the non-nil components.
type FeeEstimate struct {
	Primary   *float64 `json:"primary,omitempty"`
	Secondary *float64 `json:"secondary,omitempty"`
	Total     float64  `json:"total"`
}

// SplitResult is the outcome of dividing an amount across both accounts.
type SplitResult struct {
	PrimaryAmount   float64 `json:"primaryAmount"`
	SecondaryAmount float64 `json:"secondaryAmount"`
}

// ValidationResult reports whether a payment may proceed. Insufficient
// balance is an expected business outcome, so it is carried here rather
// than as an error value.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}
