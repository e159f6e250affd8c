package custodial

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"file_wallet/internal/app/port"
	"file_wallet/internal/domain/entity"
	"file_wallet/internal/infrastructure/configloader"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotLinked is returned when an operation requires a connected
// custodial account and none is.
var ErrNotLinked = errors.New("custodial account not linked")

// balanceResponse is the wire shape of the balance endpoint.
type balanceResponse struct {
	SpendableBalance float64 `json:"spendableBalance"`
	CurrencyCode     string  `json:"currencyCode"`
}

// paymentRequestBody is the wire shape of the pay endpoint.
type paymentRequestBody struct {
	Destination  string  `json:"destination"`
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currencyCode"`
}

// paymentResponse is the wire shape of the pay endpoint's result.
type paymentResponse struct {
	TransactionID string `json:"transactionId"`
}

// handCashClient implements port.CustodialClient against the HandCash
// Connect wallet API. Linkage is determined by the presence of an auth
// token obtained by the OAuth flow outside this process.
type handCashClient struct {
	client    *fasthttp.Client
	baseURL   string
	authToken string
	timeout   time.Duration
	logger    *zap.Logger
}

// NewHandCashClient creates the custodial account client.
func NewHandCashClient(cfg *configloader.Config, logger *zap.Logger) port.CustodialClient {
	return &handCashClient{
		client:    &fasthttp.Client{},
		baseURL:   strings.TrimRight(cfg.Custodial.BaseURL, "/"),
		authToken: cfg.Custodial.AuthToken,
		timeout:   time.Duration(cfg.Custodial.RequestTimeoutMillis) * time.Millisecond,
		logger:    logger.Named("HandCashClient"),
	}
}

// IsLinked implements port.CustodialClient.
func (c *handCashClient) IsLinked() bool {
	return c.authToken != ""
}

// Balance implements port.CustodialClient.
func (c *handCashClient) Balance(ctx context.Context) (*entity.CustodialBalance, error) {
	if !c.IsLinked() {
		return nil, ErrNotLinked
	}

	body, err := c.do(ctx, fasthttp.MethodGet, "/v1/connect/wallet/balance", nil)
	if err != nil {
		return nil, err
	}

	var parsed balanceResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal balance response: %w", err)
	}

	return &entity.CustodialBalance{
		Amount: parsed.SpendableBalance,
		Unit:   parsed.CurrencyCode,
	}, nil
}

// SendPayment implements port.CustodialClient.
func (c *handCashClient) SendPayment(ctx context.Context, to string, amount float64, currency string) (*entity.PaymentResult, error) {
	if !c.IsLinked() {
		return nil, ErrNotLinked
	}

	payload, err := json.Marshal(paymentRequestBody{
		Destination:  to,
		Amount:       amount,
		CurrencyCode: currency,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize payment request: %w", err)
	}

	body, err := c.do(ctx, fasthttp.MethodPost, "/v1/connect/wallet/pay", payload)
	if err != nil {
		return nil, err
	}

	var parsed paymentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payment response: %w", err)
	}

	c.logger.Info("Custodial payment submitted",
		zap.String("to", to),
		zap.Float64("amount", amount),
		zap.String("transactionId", parsed.TransactionID))
	return &entity.PaymentResult{TransactionID: parsed.TransactionID}, nil
}

func (c *handCashClient) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	requestURL := c.baseURL + path

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(method)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.Header.Set("Authorization", "Bearer "+c.authToken)
	if payload != nil {
		req.SetBody(payload)
	}

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
		}
	} else {
		if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
			return nil, fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Error("Custodial API request failed",
			zap.String("url", requestURL),
			zap.Int("statusCode", resp.StatusCode()))
		return nil, fmt.Errorf("custodial API request to %s failed with status %d", requestURL, resp.StatusCode())
	}

	// resp.Body() is reused by fasthttp after release.
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}
