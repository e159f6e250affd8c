package pricing

import (
	"fmt"
	"strings"
	"time"

	"file_wallet/internal/app/port"
	"file_wallet/internal/infrastructure/configloader"

	jsoniter "github.com/json-iterator/go"
	"github.com/patrickmn/go-cache"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// quoteResponse is the wire shape of the quote API.
type quoteResponse struct {
	Ticker   string  `json:"ticker"`
	PriceUSD float64 `json:"priceUsd"`
}

// httpOracle implements port.PriceProvider against an HTTP quote API,
// with a TTL cache in front and a rate limiter on outbound calls.
// Inscription estimates are delegated to the fallback provider until a
// listings API is integrated.
type httpOracle struct {
	client   *fasthttp.Client
	baseURL  string
	timeout  time.Duration
	logger   *zap.Logger
	quotes   *cache.Cache
	limiter  *rate.Limiter
	fallback port.PriceProvider
}

// NewHTTPOracle creates the HTTP-backed price provider.
func NewHTTPOracle(cfg *configloader.Config, logger *zap.Logger, fallback port.PriceProvider) port.PriceProvider {
	return &httpOracle{
		client:   &fasthttp.Client{},
		baseURL:  strings.TrimRight(cfg.Pricing.BaseURL, "/"),
		timeout:  time.Duration(cfg.Pricing.RequestTimeoutMillis) * time.Millisecond,
		logger:   logger.Named("PriceOracle"),
		quotes:   cache.New(time.Duration(cfg.Pricing.CacheTTLMinutes)*time.Minute, 10*time.Minute),
		limiter:  rate.NewLimiter(rate.Limit(cfg.Pricing.RateLimitPerSecond), cfg.Pricing.RateLimitBurst),
		fallback: fallback,
	}
}

// PriceUSD implements port.PriceProvider.
func (o *httpOracle) PriceUSD(ticker string) (float64, bool) {
	key := strings.ToUpper(ticker)
	if cached, found := o.quotes.Get(key); found {
		return cached.(float64), true
	}

	if !o.limiter.Allow() {
		o.logger.Warn("Quote request dropped by rate limiter", zap.String("ticker", key))
		return 0, false
	}

	price, err := o.fetchQuote(key)
	if err != nil {
		o.logger.Warn("Failed to fetch quote", zap.String("ticker", key), zap.Error(err))
		return 0, false
	}

	o.quotes.Set(key, price, cache.DefaultExpiration)
	return price, true
}

// OrdinalEstimateUSD implements port.PriceProvider.
func (o *httpOracle) OrdinalEstimateUSD(id string) float64 {
	return o.fallback.OrdinalEstimateUSD(id)
}

func (o *httpOracle) fetchQuote(ticker string) (float64, error) {
	requestURL := fmt.Sprintf("%s/v1/quotes/%s", o.baseURL, ticker)

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetContentTypeBytes([]byte("application/json"))

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if err := o.client.DoTimeout(req, resp, o.timeout); err != nil {
		return 0, fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return 0, fmt.Errorf("quote API request to %s failed with status %d: %s",
			requestURL, resp.StatusCode(), string(resp.Body()))
	}

	var quote quoteResponse
	if err := json.Unmarshal(resp.Body(), &quote); err != nil {
		return 0, fmt.Errorf("failed to unmarshal quote response from %s: %w", requestURL, err)
	}
	return quote.PriceUSD, nil
}
