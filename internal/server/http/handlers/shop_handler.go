package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/tailorshop/internal/domain/errors"
	"github.com/polkiloo/tailorshop/internal/domain/model"
	"github.com/polkiloo/tailorshop/internal/server/http/dto"
)

// ShopHandler serves the storefront catalog and checkout.
type ShopHandler struct {
	catalog CatalogFacade
	orders  OrderFacade
}

// NewShopHandler constructs ShopHandler.
func NewShopHandler(catalog CatalogFacade, orders OrderFacade) *ShopHandler {
	return &ShopHandler{catalog: catalog, orders: orders}
}

// Products handles GET /api/shop/products.
func (h *ShopHandler) Products(c *gin.Context) {
	products, err := h.catalog.Products(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err, "failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}

// Product handles GET /api/shop/products/:id.
func (h *ShopHandler) Product(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "product not found"})
		return
	}
	product, err := h.catalog.Product(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// Categories handles GET /api/shop/categories.
func (h *ShopHandler) Categories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateOrder handles POST /api/shop/create-order.
func (h *ShopHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	checkout := model.CheckoutRequest{
		Amount:          req.Amount,
		Subtotal:        req.Subtotal,
		ShippingCharges: req.ShippingCharges,
		Customer: model.CustomerInfo{
			Name:    req.CustomerInfo.Name,
			Email:   req.CustomerInfo.Email,
			Phone:   req.CustomerInfo.Phone,
			Address: req.CustomerInfo.Address,
			State:   req.CustomerInfo.State,
		},
		Items: make([]model.CheckoutItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		checkout.Items = append(checkout.Items, model.CheckoutItem{
			ProductID: item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	if customerID, ok := CurrentCustomerID(c); ok {
		checkout.CustomerID = &customerID
	}

	session, err := h.orders.CreateOrder(c.Request.Context(), checkout)
	if err != nil {
		respondError(c, err, "failed to create order")
		return
	}

	c.JSON(http.StatusOK, dto.CreateOrderResponse{
		OrderID:     session.GatewayOrderID,
		Amount:      session.Amount,
		Currency:    session.Currency,
		OrderNumber: session.OrderNumber,
		DBOrderID:   session.OrderID,
		KeyID:       session.KeyID,
	})
}

// VerifyPayment handles POST /api/shop/verify-payment.
func (h *ShopHandler) VerifyPayment(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.orders.VerifyPayment(c.Request.Context(), model.PaymentConfirmation{
		GatewayOrderID:   req.RazorpayOrderID,
		GatewayPaymentID: req.RazorpayPaymentID,
		Signature:        req.RazorpaySignature,
		OrderID:          req.DBOrderID,
	})
	if err != nil {
		// the payment is committed even when stock could not follow
		if !errors.Is(err, domainErrors.ErrStockUpdate) || result == nil {
			respondError(c, err, "payment verification failed")
			return
		}
		_ = c.Error(err)
	}

	if !result.Verified {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "payment could not be verified, contact support"})
		return
	}

	response := dto.VerifyPaymentResponse{Success: true, Message: "Payment verified successfully"}
	if result.Duplicate {
		response.Message = "Payment already verified"
	}
	if result.Order != nil {
		response.OrderNumber = result.Order.OrderNumber
	}
	c.JSON(http.StatusOK, response)
}

// Order handles GET /api/shop/orders/:orderNumber.
func (h *ShopHandler) Order(c *gin.Context) {
	details, err := h.orders.TrackOrder(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		respondError(c, err, "failed to fetch order")
		return
	}
	c.JSON(http.StatusOK, toPublicOrderResponse(*details))
}
