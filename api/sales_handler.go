package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pos_inventory/internal/products"
	"pos_inventory/internal/sales"
	"pos_inventory/internal/users"
)

// salesHandler implements the sale endpoints.
type salesHandler struct {
	salesService *sales.Service
	logger       *zap.Logger
}

func newSalesHandler(salesService *sales.Service, logger *zap.Logger) *salesHandler {
	return &salesHandler{
		salesService: salesService,
		logger:       logger,
	}
}

// handleCreateSale handles POST /api/v1/sales. The sale is created for
// the user named in the body, defaulting to the authenticated user.
func (h *salesHandler) handleCreateSale(c *gin.Context) {
	var req struct {
		UserID uint                `json:"userId"`
		Lines  []sales.LineRequest `json:"lines"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	if req.UserID == 0 {
		if claims := claimsFrom(c); claims != nil {
			req.UserID = claims.UserID
		}
	}

	view, err := h.salesService.CreateSale(c.Request.Context(), req.UserID, req.Lines)
	if err != nil {
		var stock *sales.InsufficientStockError
		switch {
		case errors.As(err, &stock):
			c.JSON(http.StatusBadRequest, gin.H{"error": stock.Error()})
		case errors.Is(err, products.ErrNotFound), errors.Is(err, users.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, sales.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to create sale", zap.Uint("user_id", req.UserID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sale"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "sale created", "data": view})
}

// handleListSales handles GET /api/v1/sales. Admins see every sale,
// customers only their own.
func (h *salesHandler) handleListSales(c *gin.Context) {
	list, err := h.salesService.ListSales(c.Request.Context(), policyFrom(c))
	if err != nil {
		h.logger.Error("failed to list sales", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sales"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// handleCancelSale handles DELETE /api/v1/sales/:id.
func (h *salesHandler) handleCancelSale(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	err := h.salesService.CancelSale(c.Request.Context(), id, policyFrom(c))
	if err != nil {
		switch {
		case errors.Is(err, sales.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
		case errors.Is(err, sales.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to cancel this sale"})
		default:
			h.logger.Error("failed to cancel sale", zap.Uint("sale_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel sale"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "sale cancelled"})
}
