package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/tailorshop/internal/domain/errors"
	"github.com/polkiloo/tailorshop/internal/server/http/dto"
)

// TrackHandler serves public order tracking. The order number is the only
// credential.
type TrackHandler struct {
	orders OrderFacade
}

func NewTrackHandler(orders OrderFacade) *TrackHandler {
	return &TrackHandler{orders: orders}
}

// Track handles GET /api/track/:orderNumber.
func (h *TrackHandler) Track(c *gin.Context) {
	details, err := h.orders.TrackOrder(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.TrackErrorResponse{Message: "Order not found. Please check your order number."})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.TrackErrorResponse{Message: "Failed to track order"})
		return
	}

	c.JSON(http.StatusOK, dto.TrackResponse{Success: true, Order: toPublicOrderResponse(*details)})
}
