package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"file_wallet/internal/app/service"
	"file_wallet/internal/domain/entity"
	"file_wallet/internal/infrastructure/configloader"
	"file_wallet/internal/infrastructure/custodial"
	"file_wallet/internal/infrastructure/pricing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAddressValidator struct{}

func (stubAddressValidator) IsValidChainAddress(address string) bool {
	return address == "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
}

type stubCustodialClient struct {
	linked bool
}

func (c *stubCustodialClient) IsLinked() bool { return c.linked }

func (c *stubCustodialClient) Balance(ctx context.Context) (*entity.CustodialBalance, error) {
	if !c.linked {
		return nil, custodial.ErrNotLinked
	}
	return &entity.CustodialBalance{Amount: 12.5, Unit: "BSV"}, nil
}

func (c *stubCustodialClient) SendPayment(ctx context.Context, to string, amount float64, currency string) (*entity.PaymentResult, error) {
	if !c.linked {
		return nil, custodial.ErrNotLinked
	}
	return &entity.PaymentResult{TransactionID: "txn-1"}, nil
}

func newTestRouter(t *testing.T, linked bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := configloader.Default()
	logger := zap.NewNop()

	planner := service.NewRoutePlanner(stubAddressValidator{}, logger, cfg)
	translator := service.NewAssetTranslator(
		service.NewHeuristicNFTClassifier(cfg),
		pricing.NewStaticOracle(),
		logger,
	)
	catalogService := service.NewCatalogService(translator, logger, cfg)

	return SetupRouter(
		NewRouteHandler(planner),
		NewAssetHandler(translator, catalogService),
		NewCustodialHandler(&stubCustodialClient{linked: linked}),
		logger,
	)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPlanRouteEndpoint(t *testing.T) {
	router := newTestRouter(t, true)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/route/plan", gin.H{
		"to":             "alice@example.com",
		"amount":         5,
		"currency":       "BSV",
		"primaryBalance": 10,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PlanRouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, entity.SourcePrimary, resp.Decision.Source)
	assert.NotEmpty(t, resp.Decision.Reason)
	require.NotNil(t, resp.Fees.Primary)
	assert.Equal(t, resp.Fees.Total, *resp.Fees.Primary)
}

func TestPlanRouteEndpointRejectsBadInput(t *testing.T) {
	router := newTestRouter(t, true)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/route/plan", gin.H{"to": "", "amount": 5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/route/plan", gin.H{"to": "alice@example.com", "amount": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSplitEndpoint(t *testing.T) {
	router := newTestRouter(t, true)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/route/split", SplitRequest{
		Amount:           15,
		PrimaryBalance:   10,
		SecondaryBalance: 10,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result entity.SplitResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 10.0, result.PrimaryAmount)
	assert.Equal(t, 5.0, result.SecondaryAmount)
}

func TestAssetImportEndpoint(t *testing.T) {
	router := newTestRouter(t, true)

	t.Run("valid container", func(t *testing.T) {
		body := []byte(`{"version":"1.0","type":"ft","ticker":"GOLD","amount":3,"blockchain":{"standard":"bsv20"}}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/import", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var asset entity.FileAsset
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &asset))
		assert.Equal(t, "gold-shares.ft", asset.Filename)
		assert.Equal(t, entity.AssetFT, asset.Type)
	})

	t.Run("unsupported version is a client error", func(t *testing.T) {
		body := []byte(`{"version":"2.0","type":"ft","ticker":"GOLD","amount":3}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/import", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAssetExportImportRoundTrip(t *testing.T) {
	router := newTestRouter(t, true)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/assets/from-token", gin.H{
		"tick": "GOLD",
		"max":  10000,
		"all":  gin.H{"confirmed": 3},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var asset entity.FileAsset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &asset))

	rec = doJSON(t, router, http.MethodPost, "/api/v1/assets/export", asset)
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/import", bytes.NewReader(rec.Body.Bytes()))
	importRec := httptest.NewRecorder()
	router.ServeHTTP(importRec, req)
	require.Equal(t, http.StatusOK, importRec.Code)

	var parsed entity.FileAsset
	require.NoError(t, json.Unmarshal(importRec.Body.Bytes(), &parsed))
	assert.Equal(t, asset.Ticker, parsed.Ticker)
	assert.Equal(t, asset.Filename, parsed.Filename)
	assert.Equal(t, asset.DisplayAmount, parsed.DisplayAmount)
}

func TestCatalogEndpoint(t *testing.T) {
	router := newTestRouter(t, true)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/assets/catalog", gin.H{
		"tokens": []gin.H{
			{"tick": "GOLD", "max": 10000, "all": gin.H{"confirmed": 3}},
		},
		"inscriptions": []gin.H{
			{"id": "ord-1", "contentType": "image/png"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var catalog entity.AssetCatalog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &catalog))
	assert.Len(t, catalog.Assets, 2)
	assert.Positive(t, catalog.TotalValueUSD)
}

func TestCustodialEndpoints(t *testing.T) {
	t.Run("linked", func(t *testing.T) {
		router := newTestRouter(t, true)

		rec := doJSON(t, router, http.MethodGet, "/api/v1/custodial/status", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"linked":true}`, rec.Body.String())

		rec = doJSON(t, router, http.MethodGet, "/api/v1/custodial/balance", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var balance entity.CustodialBalance
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &balance))
		assert.Equal(t, 12.5, balance.Amount)

		rec = doJSON(t, router, http.MethodPost, "/api/v1/custodial/pay", CustodialPayRequest{
			To: "$satoshi", Amount: 1,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not linked", func(t *testing.T) {
		router := newTestRouter(t, false)

		rec := doJSON(t, router, http.MethodGet, "/api/v1/custodial/balance", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)

		rec = doJSON(t, router, http.MethodPost, "/api/v1/custodial/pay", CustodialPayRequest{
			To: "$satoshi", Amount: 1,
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestToTransactionEndpoint(t *testing.T) {
	router := newTestRouter(t, true)

	t.Run("fungible asset", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/assets/to-transaction", gin.H{
			"asset": gin.H{
				"id":            "tok-1",
				"type":          "ft",
				"ticker":        "GOLD",
				"displayAmount": 3,
				"standard":      "bsv20",
			},
			"recipient": "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var descriptor entity.TransferDescriptor
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &descriptor))
		assert.Equal(t, entity.TransferBSV20, descriptor.Type)
		assert.Equal(t, 3.0, descriptor.Amount)
	})

	t.Run("unknown standard is a client error", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/assets/to-transaction", gin.H{
			"asset":     gin.H{"id": "tok-2", "type": "ft", "standard": "unknown"},
			"recipient": "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing recipient", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/assets/to-transaction", gin.H{
			"asset": gin.H{"id": "tok-3", "type": "ft", "standard": "bsv20"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, true)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPprofEndpoint(t *testing.T) {
	router := newTestRouter(t, true)

	rec := doJSON(t, router, http.MethodGet, "/debug/pprof/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
