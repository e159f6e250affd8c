package service

import (
	"testing"

	"file_wallet/internal/domain/entity"
	"file_wallet/internal/infrastructure/configloader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testChainAddress = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"

// fakeAddressValidator accepts only the addresses it was given.
type fakeAddressValidator struct {
	valid map[string]bool
}

func (v *fakeAddressValidator) IsValidChainAddress(address string) bool {
	return v.valid[address]
}

func newTestPlanner(t *testing.T) *routePlannerImpl {
	t.Helper()
	planner := NewRoutePlanner(
		&fakeAddressValidator{valid: map[string]bool{testChainAddress: true}},
		zap.NewNop(),
		configloader.Default(),
	)
	return planner.(*routePlannerImpl)
}

func balance(v float64) *float64 { return &v }

func TestPlanRouteCustodialHandle(t *testing.T) {
	planner := newTestPlanner(t)

	tests := []struct {
		name             string
		secondaryBalance *float64
		wantSource       entity.FundingSource
		wantReason       string
	}{
		{
			name:             "not linked is a soft rejection",
			secondaryBalance: nil,
			wantSource:       entity.SourcePrimary,
			wantReason:       "HandCash not connected. Send to a BSV address instead.",
		},
		{
			name:             "linked but empty is treated as not connected",
			secondaryBalance: balance(0),
			wantSource:       entity.SourcePrimary,
			wantReason:       "HandCash not connected. Send to a BSV address instead.",
		},
		{
			name:             "insufficient custodial balance",
			secondaryBalance: balance(0.5),
			wantSource:       entity.SourcePrimary,
			wantReason:       "Insufficient HandCash balance. Use the native wallet or top up HandCash.",
		},
		{
			name:             "sufficient custodial balance",
			secondaryBalance: balance(2),
			wantSource:       entity.SourceSecondary,
			wantReason:       "Sending to a HandCash handle requires the HandCash wallet.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			decision := planner.PlanRoute(entity.PaymentRequest{
				To:               "$satoshi",
				Amount:           1,
				Currency:         "BSV",
				PrimaryBalance:   100,
				SecondaryBalance: tc.secondaryBalance,
			})

			assert.Equal(t, tc.wantSource, decision.Source)
			assert.Equal(t, tc.wantReason, decision.Reason)
			assert.False(t, decision.CanUseBoth)
		})
	}
}

func TestPlanRoutePaymail(t *testing.T) {
	planner := newTestPlanner(t)

	tests := []struct {
		name             string
		primaryBalance   float64
		secondaryBalance *float64
		wantSource       entity.FundingSource
		wantCanUseBoth   bool
	}{
		{
			name:             "both sufficient defers the choice",
			primaryBalance:   10,
			secondaryBalance: balance(10),
			wantSource:       entity.SourceSplit,
			wantCanUseBoth:   true,
		},
		{
			name:             "only primary sufficient",
			primaryBalance:   10,
			secondaryBalance: balance(1),
			wantSource:       entity.SourcePrimary,
		},
		{
			name:             "only secondary sufficient",
			primaryBalance:   1,
			secondaryBalance: balance(10),
			wantSource:       entity.SourceSecondary,
		},
		{
			name:             "neither sufficient",
			primaryBalance:   1,
			secondaryBalance: balance(1),
			wantSource:       entity.SourcePrimary,
		},
		{
			name:           "insufficient with no secondary account",
			primaryBalance: 1,
			wantSource:     entity.SourcePrimary,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			decision := planner.PlanRoute(entity.PaymentRequest{
				To:               "alice@example.com",
				Amount:           5,
				Currency:         "BSV",
				PrimaryBalance:   tc.primaryBalance,
				SecondaryBalance: tc.secondaryBalance,
			})

			assert.Equal(t, tc.wantSource, decision.Source)
			assert.Equal(t, tc.wantCanUseBoth, decision.CanUseBoth)
			assert.NotEmpty(t, decision.Reason)
		})
	}
}

func TestPlanRouteChainAddress(t *testing.T) {
	planner := newTestPlanner(t)

	tests := []struct {
		name             string
		primaryBalance   float64
		secondaryBalance *float64
		wantSource       entity.FundingSource
		wantCanUseBoth   bool
	}{
		{
			name:           "primary sufficient and preferred",
			primaryBalance: 10,
			wantSource:     entity.SourcePrimary,
		},
		{
			name:             "primary sufficient, secondary also sufficient is informational",
			primaryBalance:   10,
			secondaryBalance: balance(10),
			wantSource:       entity.SourcePrimary,
			wantCanUseBoth:   true,
		},
		{
			name:             "secondary covers what primary cannot",
			primaryBalance:   1,
			secondaryBalance: balance(10),
			wantSource:       entity.SourceSecondary,
		},
		{
			name:             "combined balance forces a split",
			primaryBalance:   3,
			secondaryBalance: balance(3),
			wantSource:       entity.SourceSplit,
			wantCanUseBoth:   true,
		},
		{
			name:             "nothing suffices",
			primaryBalance:   1,
			secondaryBalance: balance(1),
			wantSource:       entity.SourcePrimary,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			decision := planner.PlanRoute(entity.PaymentRequest{
				To:               testChainAddress,
				Amount:           5,
				Currency:         "BSV",
				PrimaryBalance:   tc.primaryBalance,
				SecondaryBalance: tc.secondaryBalance,
			})

			assert.Equal(t, tc.wantSource, decision.Source)
			assert.Equal(t, tc.wantCanUseBoth, decision.CanUseBoth)
		})
	}
}

func TestPlanRouteUnrecognizedRecipient(t *testing.T) {
	planner := newTestPlanner(t)

	for _, to := range []string{"not-an-address", "$", "alice@", "@example.com"} {
		decision := planner.PlanRoute(entity.PaymentRequest{
			To:             to,
			Amount:         1,
			PrimaryBalance: 100,
		})
		assert.Equal(t, entity.SourcePrimary, decision.Source, "recipient %q", to)
		assert.Equal(t, "Invalid recipient address format.", decision.Reason, "recipient %q", to)
		assert.False(t, decision.CanUseBoth, "recipient %q", to)
	}
}

func TestEstimateFees(t *testing.T) {
	planner := newTestPlanner(t)
	baseFee := planner.cfg.Fees.BaseFee
	multiplier := planner.cfg.Fees.SecondaryMultiplier

	primary := planner.EstimateFees(entity.RouteDecision{Source: entity.SourcePrimary})
	require.NotNil(t, primary.Primary)
	assert.Nil(t, primary.Secondary)
	assert.Equal(t, baseFee, *primary.Primary)
	assert.Equal(t, baseFee, primary.Total)

	secondary := planner.EstimateFees(entity.RouteDecision{Source: entity.SourceSecondary})
	require.NotNil(t, secondary.Secondary)
	assert.Nil(t, secondary.Primary)
	assert.Equal(t, baseFee*multiplier, secondary.Total)
	assert.GreaterOrEqual(t, secondary.Total, primary.Total)

	split := planner.EstimateFees(entity.RouteDecision{Source: entity.SourceSplit})
	require.NotNil(t, split.Primary)
	require.NotNil(t, split.Secondary)
	assert.Equal(t, *split.Primary+*split.Secondary, split.Total)

	// The split fee is exactly the sum of the single-source fees.
	assert.Equal(t, primary.Total+secondary.Total, split.Total)
}

func TestValidate(t *testing.T) {
	planner := newTestPlanner(t)
	baseFee := planner.cfg.Fees.BaseFee

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		result := planner.Validate(
			entity.PaymentRequest{To: "alice@example.com", Amount: 0, PrimaryBalance: 10},
			entity.RouteDecision{Source: entity.SourcePrimary},
		)
		assert.False(t, result.Valid)
		assert.Equal(t, "Amount must be greater than 0", result.Error)
	})

	t.Run("fees push a borderline balance under", func(t *testing.T) {
		// Balance covers the amount but not amount plus fees.
		result := planner.Validate(
			entity.PaymentRequest{To: "alice@example.com", Amount: 5, PrimaryBalance: 5},
			entity.RouteDecision{Source: entity.SourcePrimary},
		)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "Insufficient balance")
	})

	t.Run("primary passes with fees covered", func(t *testing.T) {
		result := planner.Validate(
			entity.PaymentRequest{To: "alice@example.com", Amount: 5, PrimaryBalance: 5 + baseFee},
			entity.RouteDecision{Source: entity.SourcePrimary},
		)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Error)
	})

	t.Run("secondary checked against the secondary balance", func(t *testing.T) {
		result := planner.Validate(
			entity.PaymentRequest{To: "$satoshi", Amount: 5, PrimaryBalance: 100, SecondaryBalance: balance(4)},
			entity.RouteDecision{Source: entity.SourceSecondary},
		)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "Insufficient HandCash balance")
	})

	t.Run("split checked against the combined balance", func(t *testing.T) {
		result := planner.Validate(
			entity.PaymentRequest{To: testChainAddress, Amount: 6, PrimaryBalance: 3, SecondaryBalance: balance(4)},
			entity.RouteDecision{Source: entity.SourceSplit},
		)
		assert.True(t, result.Valid)

		result = planner.Validate(
			entity.PaymentRequest{To: testChainAddress, Amount: 8, PrimaryBalance: 3, SecondaryBalance: balance(4)},
			entity.RouteDecision{Source: entity.SourceSplit},
		)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "Insufficient combined balance")
	})

	t.Run("stale decision is re-checked against live balances", func(t *testing.T) {
		// A decision planned against an older, larger balance must fail
		// once the live balance no longer covers the payment.
		decision := planner.PlanRoute(entity.PaymentRequest{
			To: "alice@example.com", Amount: 5, PrimaryBalance: 10,
		})
		require.Equal(t, entity.SourcePrimary, decision.Source)

		result := planner.Validate(
			entity.PaymentRequest{To: "alice@example.com", Amount: 5, PrimaryBalance: 1},
			decision,
		)
		assert.False(t, result.Valid)
	})
}

func TestSplitAmount(t *testing.T) {
	planner := newTestPlanner(t)

	tests := []struct {
		name          string
		amount        float64
		primary       float64
		secondary     float64
		wantPrimary   float64
		wantSecondary float64
	}{
		{"primary covers everything", 5, 10, 10, 5, 0},
		{"remainder drawn from secondary", 15, 10, 10, 10, 5},
		{"primary empty", 5, 0, 10, 0, 5},
		{"exact combined fit", 20, 10, 10, 10, 10},
		{"secondary capped when combined insufficient", 25, 10, 10, 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := planner.SplitAmount(tc.amount, tc.primary, tc.secondary)
			assert.Equal(t, tc.wantPrimary, result.PrimaryAmount)
			assert.Equal(t, tc.wantSecondary, result.SecondaryAmount)

			assert.LessOrEqual(t, result.PrimaryAmount, tc.primary)
			assert.LessOrEqual(t, result.SecondaryAmount, tc.secondary)
			if tc.primary+tc.secondary >= tc.amount {
				assert.Equal(t, tc.amount, result.PrimaryAmount+result.SecondaryAmount)
			}
		})
	}
}
