package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devsystem/carwash-erp/internal/domains/supplies/application"
	"github.com/devsystem/carwash-erp/internal/domains/supplies/domain"
	"github.com/devsystem/carwash-erp/internal/domains/supplies/ports"
	apierrors "github.com/devsystem/carwash-erp/internal/shared/errors"
)

// SupplyAPI wires HTTP transport with the supply ledger service.
type SupplyAPI struct {
	ledger ports.Ledger
}

// NewSupplyAPI creates a SupplyAPI backed by the provided ledger.
func NewSupplyAPI(ledger ports.Ledger) SupplyAPI {
	return SupplyAPI{ledger: ledger}
}

// Register mounts the supply routes on the given group.
func (api SupplyAPI) Register(group *gin.RouterGroup) {
	group.GET("/supplies", api.ListSupplies)
	group.POST("/supplies/restock", api.RestockSupply)
	group.DELETE("/supplies", api.ResetInventory)
}

type restockPayload struct {
	Name            string   `json:"name"`
	CurrentQuantity *float64 `json:"currentQuantity"`
	SKU             string   `json:"sku"`
}

type supplyView struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	SKU             string  `json:"sku"`
	CurrentQuantity float64 `json:"currentQuantity"`
}

// Get /api/supplies
// List all tracked supplies.
func (api SupplyAPI) ListSupplies(c *gin.Context) {
	supplies, err := api.ledger.List(c.Request.Context())
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, toViews(supplies))
}

// Post /api/supplies/restock
// Merge the incoming quantity into an existing supply or create a new one.
func (api SupplyAPI) RestockSupply(c *gin.Context) {
	var payload restockPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	input := ports.RestockInput{Name: payload.Name, SKU: payload.SKU}
	if payload.CurrentQuantity != nil {
		input.Quantity = *payload.CurrentQuantity
	}
	supply, err := api.ledger.Restock(c.Request.Context(), input)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, toView(supply))
}

// Delete /api/supplies
// Zero every supply quantity, keeping rows, names, and SKUs.
func (api SupplyAPI) ResetInventory(c *gin.Context) {
	count, err := api.ledger.ResetAll(c.Request.Context())
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("inventory reset to 0 (%d supplies)", count)})
}

func respondLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidInput):
		apierrors.Respond(c, apierrors.ErrValidation.WithDetail(err.Error()))
	case errors.Is(err, ports.ErrNotFound):
		apierrors.Respond(c, apierrors.NewNotFoundProblem("supply", c.Param("id")))
	default:
		apierrors.RespondError(c, err)
	}
}

func toView(supply *domain.Supply) supplyView {
	return supplyView{
		ID:              supply.ID,
		Name:            supply.Name,
		SKU:             supply.SKU,
		CurrentQuantity: supply.CurrentQuantity,
	}
}

func toViews(supplies []*domain.Supply) []supplyView {
	views := make([]supplyView, 0, len(supplies))
	for _, supply := range supplies {
		views = append(views, toView(supply))
	}
	return views
}
