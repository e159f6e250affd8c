package service

import (
	"fmt"
	"regexp"

	"file_wallet/internal/app/port"
	"file_wallet/internal/domain/entity"
	"file_wallet/internal/infrastructure/configloader"
	"file_wallet/internal/pkg/metrics"

	"go.uber.org/zap"
)

var (
	// Custodial handles start with $ and contain only alphanumerics and
	// underscores.
	custodialHandlePattern = regexp.MustCompile(`^\$[a-zA-Z0-9_]+$`)
	// Basic paymail (email-shaped) validation.
	paymailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// routePlannerImpl implements port.RoutePlanner.
type routePlannerImpl struct {
	addrValidator port.AddressValidator
	logger        *zap.Logger
	cfg           *configloader.Config
}

// NewRoutePlanner creates a new route planner. The address validator is
// the only chain-specific collaborator; everything else is arithmetic
// over the balances carried in the request.
func NewRoutePlanner(av port.AddressValidator, logger *zap.Logger, cfg *configloader.Config) port.RoutePlanner {
	return &routePlannerImpl{
		addrValidator: av,
		logger:        logger.Named("RoutePlanner"),
		cfg:           cfg,
	}
}

// PlanRoute implements port.RoutePlanner.
func (s *routePlannerImpl) PlanRoute(req entity.PaymentRequest) entity.RouteDecision {
	secondaryBalance := 0.0
	if req.SecondaryBalance != nil {
		secondaryBalance = *req.SecondaryBalance
	}
	// Linked and funded; a linked account holding nothing cannot fund
	// anything, so it is treated the same as not connected.
	hasSecondary := req.SecondaryBalance != nil && secondaryBalance > 0

	var decision entity.RouteDecision
	switch {
	case custodialHandlePattern.MatchString(req.To):
		decision = s.planForCustodialHandle(req.Amount, secondaryBalance, hasSecondary)
	case paymailPattern.MatchString(req.To):
		decision = s.planForPaymail(req, secondaryBalance)
	case s.addrValidator.IsValidChainAddress(req.To):
		decision = s.planForChainAddress(req, secondaryBalance, hasSecondary)
	default:
		decision = entity.RouteDecision{
			Source:     entity.SourcePrimary,
			Reason:     "Invalid recipient address format.",
			CanUseBoth: false,
		}
	}

	metrics.RouteDecisionsTotal.WithLabelValues(string(decision.Source)).Inc()
	s.logger.Debug("Route planned",
		zap.String("source", string(decision.Source)),
		zap.Bool("canUseBoth", decision.CanUseBoth),
		zap.Float64("amount", req.Amount))
	return decision
}

// planForCustodialHandle handles recipients reachable only through the
// custodial network. A primary-source result here is a soft rejection:
// it signals "cannot proceed via the intended route", not that the
// primary account will be used for this recipient.
func (s *routePlannerImpl) planForCustodialHandle(amount, secondaryBalance float64, hasSecondary bool) entity.RouteDecision {
	if !hasSecondary {
		return entity.RouteDecision{
			Source:     entity.SourcePrimary,
			Reason:     "HandCash not connected. Send to a BSV address instead.",
			CanUseBoth: false,
		}
	}
	if secondaryBalance < amount {
		return entity.RouteDecision{
			Source:     entity.SourcePrimary,
			Reason:     "Insufficient HandCash balance. Use the native wallet or top up HandCash.",
			CanUseBoth: false,
		}
	}
	return entity.RouteDecision{
		Source:     entity.SourceSecondary,
		Reason:     "Sending to a HandCash handle requires the HandCash wallet.",
		CanUseBoth: false,
	}
}

// planForPaymail handles email-shaped recipients, reachable from either
// account. When both accounts individually suffice the planner never
// silently picks one; it defers the choice to the caller.
func (s *routePlannerImpl) planForPaymail(req entity.PaymentRequest, secondaryBalance float64) entity.RouteDecision {
	canAffordPrimary := req.PrimaryBalance >= req.Amount
	canAffordSecondary := secondaryBalance >= req.Amount

	switch {
	case canAffordPrimary && canAffordSecondary:
		return entity.RouteDecision{
			Source:     entity.SourceSplit,
			Reason:     "Both wallets have sufficient balance. Choose your preferred source.",
			CanUseBoth: true,
		}
	case canAffordPrimary:
		return entity.RouteDecision{
			Source:     entity.SourcePrimary,
			Reason:     "Using native wallet (sufficient balance).",
			CanUseBoth: false,
		}
	case canAffordSecondary:
		return entity.RouteDecision{
			Source:     entity.SourceSecondary,
			Reason:     "Using HandCash wallet (sufficient balance).",
			CanUseBoth: false,
		}
	default:
		return entity.RouteDecision{
			Source:     entity.SourcePrimary,
			Reason:     "Insufficient balance in both wallets.",
			CanUseBoth: false,
		}
	}
}

// planForChainAddress handles native chain addresses, preferring the
// primary account and falling back to the secondary or a split.
func (s *routePlannerImpl) planForChainAddress(req entity.PaymentRequest, secondaryBalance float64, hasSecondary bool) entity.RouteDecision {
	if req.PrimaryBalance >= req.Amount {
		return entity.RouteDecision{
			Source:     entity.SourcePrimary,
			Reason:     "Using native wallet for BSV address transaction.",
			CanUseBoth: hasSecondary && secondaryBalance >= req.Amount,
		}
	}
	if hasSecondary && secondaryBalance >= req.Amount {
		return entity.RouteDecision{
			Source:     entity.SourceSecondary,
			Reason:     "Insufficient native balance. Using HandCash wallet.",
			CanUseBoth: false,
		}
	}
	if req.PrimaryBalance+secondaryBalance >= req.Amount {
		return entity.RouteDecision{
			Source:     entity.SourceSplit,
			Reason:     "Transaction requires funds from both wallets.",
			CanUseBoth: true,
		}
	}
	return entity.RouteDecision{
		Source:     entity.SourcePrimary,
		Reason:     "Insufficient balance across all wallets.",
		CanUseBoth: false,
	}
}

// EstimateFees implements port.RoutePlanner. The secondary fee carries a
// multiplicative convenience surcharge over the base fee; a split route
// pays both components.
func (s *routePlannerImpl) EstimateFees(decision entity.RouteDecision) entity.FeeEstimate {
	baseFee := s.cfg.Fees.BaseFee

	switch decision.Source {
	case entity.SourcePrimary:
		primary := baseFee
		return entity.FeeEstimate{Primary: &primary, Total: primary}
	case entity.SourceSecondary:
		secondary := baseFee * s.cfg.Fees.SecondaryMultiplier
		return entity.FeeEstimate{Secondary: &secondary, Total: secondary}
	case entity.SourceSplit:
		primary := baseFee
		secondary := baseFee * s.cfg.Fees.SecondaryMultiplier
		return entity.FeeEstimate{
			Primary:   &primary,
			Secondary: &secondary,
			Total:     primary + secondary,
		}
	default:
		return entity.FeeEstimate{Total: baseFee}
	}
}

// Validate implements port.RoutePlanner. Sufficiency is re-derived from
// the balances in req so a stale or manually-built decision is still
// checked against live figures at submission time.
func (s *routePlannerImpl) Validate(req entity.PaymentRequest, decision entity.RouteDecision) entity.ValidationResult {
	if req.Amount <= 0 {
		return entity.ValidationResult{Valid: false, Error: "Amount must be greater than 0"}
	}

	secondaryBalance := 0.0
	if req.SecondaryBalance != nil {
		secondaryBalance = *req.SecondaryBalance
	}

	fees := s.EstimateFees(decision)
	totalNeeded := req.Amount + fees.Total

	switch decision.Source {
	case entity.SourcePrimary:
		if req.PrimaryBalance < totalNeeded {
			return entity.ValidationResult{
				Valid: false,
				Error: fmt.Sprintf("Insufficient balance. Need %.8f BSV (including fees)", totalNeeded),
			}
		}
	case entity.SourceSecondary:
		if secondaryBalance < totalNeeded {
			return entity.ValidationResult{
				Valid: false,
				Error: fmt.Sprintf("Insufficient HandCash balance. Need %.8f BSV (including fees)", totalNeeded),
			}
		}
	case entity.SourceSplit:
		if req.PrimaryBalance+secondaryBalance < totalNeeded {
			return entity.ValidationResult{
				Valid: false,
				Error: fmt.Sprintf("Insufficient combined balance. Need %.8f BSV (including fees)", totalNeeded),
			}
		}
	}

	return entity.ValidationResult{Valid: true}
}

// SplitAmount implements port.RoutePlanner. Greedy: as much as possible
// from the primary account, the remainder from the secondary, never more
// than either balance.
func (s *routePlannerImpl) SplitAmount(amount, primaryBalance, secondaryBalance float64) entity.SplitResult {
	primaryAmount := amount
	if primaryBalance < primaryAmount {
		primaryAmount = primaryBalance
	}

	secondaryAmount := amount - primaryAmount
	if secondaryBalance < secondaryAmount {
		secondaryAmount = secondaryBalance
	}

	return entity.SplitResult{
		PrimaryAmount:   primaryAmount,
		SecondaryAmount: secondaryAmount,
	}
}
