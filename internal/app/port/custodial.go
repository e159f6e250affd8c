package port

import (
	"context"

	"file_wallet/internal/domain/entity"
)

// CustodialClient is the surface of the linked custodial wallet account.
// The routing core never calls it; the application shell queries it to
// build PaymentRequest values and to submit secondary-source payments.
type CustodialClient interface {
	// IsLinked reports whether an account is connected.
	IsLinked() bool

	// Balance fetches the spendable balance of the linked account.
	Balance(ctx context.Context) (*entity.CustodialBalance, error)

	// SendPayment submits a payment through the custodial provider.
	SendPayment(ctx context.Context, to string, amount float64, currency string) (*entity.PaymentResult, error)
}
