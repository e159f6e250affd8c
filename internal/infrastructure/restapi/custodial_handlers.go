package restapi

import (
	"errors"
	"net/http"

	"file_wallet/internal/app/port"
	"file_wallet/internal/infrastructure/custodial"

	"github.com/gin-gonic/gin"
)

// CustodialPayRequest is the body of the custodial pay endpoint.
type CustodialPayRequest struct {
	To       string  `json:"to"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// CustodialHandler exposes the custodial account surface the shell needs
// before building payment requests.
type CustodialHandler struct {
	client port.CustodialClient
}

// NewCustodialHandler creates a new CustodialHandler.
func NewCustodialHandler(client port.CustodialClient) *CustodialHandler {
	return &CustodialHandler{client: client}
}

// StatusHandler reports whether a custodial account is linked.
func (h *CustodialHandler) StatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"linked": h.client.IsLinked()})
}

// BalanceHandler fetches the spendable custodial balance.
func (h *CustodialHandler) BalanceHandler(c *gin.Context) {
	balance, err := h.client.Balance(c.Request.Context())
	if err != nil {
		if errors.Is(err, custodial.ErrNotLinked) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, balance)
}

// PayHandler submits a payment through the custodial provider.
func (h *CustodialHandler) PayHandler(c *gin.Context) {
	var body CustodialPayRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.To == "" || body.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipient and positive amount are required"})
		return
	}
	if body.Currency == "" {
		body.Currency = "BSV"
	}

	result, err := h.client.SendPayment(c.Request.Context(), body.To, body.Amount, body.Currency)
	if err != nil {
		if errors.Is(err, custodial.ErrNotLinked) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
