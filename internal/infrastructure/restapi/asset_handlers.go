package restapi

import (
	"errors"
	"net/http"

	"file_wallet/internal/app/port"
	"file_wallet/internal/app/service"
	"file_wallet/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

// AssetHandler handles HTTP requests for asset translation and container
// import/export.
type AssetHandler struct {
	translator port.AssetTranslator
	catalog    port.CatalogService
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(translator port.AssetTranslator, catalog port.CatalogService) *AssetHandler {
	return &AssetHandler{translator: translator, catalog: catalog}
}

// FromTokenHandler translates a raw fungible token record.
func (h *AssetHandler) FromTokenHandler(c *gin.Context) {
	var token entity.Bsv20Token
	if err := c.ShouldBindJSON(&token); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.translator.FromFungibleToken(&token))
}

// FromInscriptionHandler translates a raw inscription record.
func (h *AssetHandler) FromInscriptionHandler(c *gin.Context) {
	var record entity.Inscription
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.translator.FromInscription(&record))
}

// ExportContainerHandler serializes an asset into its portable container
// document.
func (h *AssetHandler) ExportContainerHandler(c *gin.Context) {
	var asset entity.FileAsset
	if err := c.ShouldBindJSON(&asset); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.translator.ExportContainer(asset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// ImportContainerHandler parses a container document back into an asset.
// Unknown versions and malformed documents are client errors.
func (h *AssetHandler) ImportContainerHandler(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := h.translator.FromContainer(data)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedContainerVersion),
			errors.Is(err, service.ErrUnsupportedContainerType),
			errors.Is(err, service.ErrMalformedContainer):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, asset)
}

// ToTransactionRequest carries an asset and transfer parameters for
// conversion into a transaction descriptor.
type ToTransactionRequest struct {
	Asset     entity.FileAsset `json:"asset"`
	Recipient string           `json:"recipient"`
	Amount    float64          `json:"amount"`
}

// ToTransactionHandler converts an asset into the transfer descriptor
// for its standard. Unknown standards are rejected up front.
func (h *AssetHandler) ToTransactionHandler(c *gin.Context) {
	var body ToTransactionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Recipient == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipient must not be empty"})
		return
	}

	descriptor, err := h.translator.ToTransaction(body.Asset, body.Recipient, body.Amount)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedStandard) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, descriptor)
}

// CatalogHandler translates a full wallet snapshot into a display
// catalog.
func (h *AssetHandler) CatalogHandler(c *gin.Context) {
	var snapshot entity.WalletSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	catalog, err := h.catalog.BuildCatalog(c.Request.Context(), snapshot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, catalog)
}
