package restapi

import (
	"net/http"

	"file_wallet/internal/app/port"
	"file_wallet/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

// PlanRouteResponse bundles the decision with its fee estimate so the
// shell renders both from a single call.
type PlanRouteResponse struct {
	Decision entity.RouteDecision `json:"decision"`
	Fees     entity.FeeEstimate   `json:"fees"`
}

// ValidateRequest carries a request/decision pair for re-validation
// against live balances.
type ValidateRequest struct {
	Request  entity.PaymentRequest `json:"request"`
	Decision entity.RouteDecision  `json:"decision"`
}

// SplitRequest carries the inputs for a split computation.
type SplitRequest struct {
	Amount           float64 `json:"amount"`
	PrimaryBalance   float64 `json:"primaryBalance"`
	SecondaryBalance float64 `json:"secondaryBalance"`
}

// RouteHandler handles HTTP requests for the route planner.
type RouteHandler struct {
	planner port.RoutePlanner
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(planner port.RoutePlanner) *RouteHandler {
	return &RouteHandler{planner: planner}
}

// PlanRouteHandler plans a funding route for a payment request.
func (h *RouteHandler) PlanRouteHandler(c *gin.Context) {
	var req entity.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.To == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipient must not be empty"})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than 0"})
		return
	}

	decision := h.planner.PlanRoute(req)
	c.JSON(http.StatusOK, PlanRouteResponse{
		Decision: decision,
		Fees:     h.planner.EstimateFees(decision),
	})
}

// ValidateHandler re-validates a previously planned decision against the
// balances in the request.
func (h *RouteHandler) ValidateHandler(c *gin.Context) {
	var body ValidateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.planner.Validate(body.Request, body.Decision))
}

// SplitHandler computes the greedy split of an amount across both
// accounts.
func (h *RouteHandler) SplitHandler(c *gin.Context) {
	var body SplitRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than 0"})
		return
	}

	c.JSON(http.StatusOK, h.planner.SplitAmount(body.Amount, body.PrimaryBalance, body.SecondaryBalance))
}
