package port

import "file_wallet/internal/domain/entity"

// RoutePlanner decides, for a requested payment, which account funds it,
// what it costs, and whether it may proceed against live balances.
// Implementations are pure over their inputs and safe for concurrent use.
type RoutePlanner interface {
	// PlanRoute classifies the recipient and picks a funding source.
	// Unreachable or unrecognized recipients yield a primary-source
	// decision whose reason explains the rejection; callers must not
	// submit a payment for those.
	PlanRoute(req entity.PaymentRequest) entity.RouteDecision

	// EstimateFees prices a decided route per funding source.
	EstimateFees(decision entity.RouteDecision) entity.FeeEstimate

	// Validate re-derives sufficiency for the decision against the
	// balances in req, independent of how the decision was produced.
	Validate(req entity.PaymentRequest, decision entity.RouteDecision) entity.ValidationResult

	// SplitAmount divides amount greedily, primary account first. The sum
	// of the parts equals amount whenever the combined balance covers it.
	SplitAmount(amount, primaryBalance, secondaryBalance float64) entity.SplitResult
}

// AddressValidator reports whether a string is a syntactically valid
// native chain address.
type AddressValidator interface {
	IsValidChainAddress(address string) bool
}
