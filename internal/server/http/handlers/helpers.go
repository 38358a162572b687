package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/tailorshop/internal/domain/errors"
	"github.com/polkiloo/tailorshop/internal/domain/model"
	"github.com/polkiloo/tailorshop/internal/server/http/dto"
	"github.com/polkiloo/tailorshop/internal/server/http/middleware"
)

// CurrentPrincipal extracts the authenticated caller from context.
func CurrentPrincipal(c *gin.Context) (model.Principal, bool) {
	val, ok := c.Get(middleware.PrincipalContextKey)
	if !ok {
		return model.Principal{}, false
	}
	principal, ok := val.(model.Principal)
	return principal, ok
}

// CurrentCustomerID returns the caller id when a customer is signed in.
func CurrentCustomerID(c *gin.Context) (int64, bool) {
	principal, ok := CurrentPrincipal(c)
	if !ok || principal.Role != model.RoleCustomer {
		return 0, false
	}
	return principal.ID, true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "request body too large"})
			return false
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

// respondError maps domain errors to status codes. Unexpected errors are
// attached to the context for the request logger and answered with message.
func respondError(c *gin.Context, err error, message string) {
	var validationErr *domainErrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: validationErr.Fields})
	case errors.Is(err, domainErrors.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order status"})
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, domainErrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "forbidden"})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "already exists"})
	case errors.Is(err, domainErrors.ErrInvalidStatusTransition):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "order status cannot be changed"})
	case errors.Is(err, domainErrors.ErrGateway):
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: message})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: message})
	}
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		Stock:       p.Stock,
		IsAvailable: p.IsAvailable,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []model.Product) []dto.ProductResponse {
	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}
	return response
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:               order.ID,
		OrderNumber:      order.OrderNumber,
		CustomerID:       order.CustomerID,
		CustomerName:     order.CustomerName,
		CustomerEmail:    order.CustomerEmail,
		CustomerPhone:    order.CustomerPhone,
		CustomerAddress:  order.CustomerAddress,
		CustomerState:    order.CustomerState,
		Subtotal:         order.Subtotal,
		ShippingCharges:  order.ShippingCharges,
		TotalAmount:      order.TotalAmount,
		PaymentStatus:    string(order.PaymentStatus),
		OrderStatus:      string(order.OrderStatus),
		GatewayOrderID:   order.GatewayOrderID,
		GatewayPaymentID: order.GatewayPaymentID,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
}

func toOrderDetailsResponse(details model.OrderDetails) dto.OrderResponse {
	response := toOrderResponse(details.Order)
	response.Items = make([]dto.OrderItemResponse, 0, len(details.Items))
	for _, item := range details.Items {
		response.Items = append(response.Items, dto.OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	response.Timeline = make([]dto.TimelineStepResponse, 0, len(details.Timeline))
	for _, step := range details.Timeline {
		response.Timeline = append(response.Timeline, dto.TimelineStepResponse{
			Status:      step.Status,
			Label:       step.Label,
			Completed:   step.Completed,
			Date:        step.Date,
			Description: step.Description,
		})
	}
	return response
}

func toCustomerResponse(c *model.Customer) *dto.CustomerResponse {
	response := &dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
	if !c.CreatedAt.IsZero() {
		created := c.CreatedAt
		response.CreatedAt = &created
	}
	return response
}

// toPublicOrderResponse renders an order looked up by its number alone.
// The number is the only credential, so internal ids and gateway
// references stay private.
func toPublicOrderResponse(details model.OrderDetails) dto.OrderResponse {
	response := toOrderDetailsResponse(details)
	response.ID = 0
	response.CustomerID = nil
	response.GatewayOrderID = ""
	response.GatewayPaymentID = nil
	return response
}
