package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/tailorshop/internal/domain/model"
	"github.com/polkiloo/tailorshop/internal/server/http/dto"
	"github.com/polkiloo/tailorshop/internal/server/http/middleware"
)

// AuthHandler processes customer sign up, login and profile endpoints.
type AuthHandler struct {
	facade AuthFacade
	orders OrderFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, orders OrderFacade) *AuthHandler {
	return &AuthHandler{facade: facade, orders: orders}
}

// SignUp handles POST /api/auth/signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, token, err := h.facade.SignUp(c.Request.Context(), model.Registration{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Address:  req.Address,
	})
	if err != nil {
		respondError(c, err, "signup failed")
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, Customer: toCustomerResponse(customer)})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, token, err := h.facade.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		respondError(c, err, "login failed")
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, Customer: toCustomerResponse(customer)})
}

// Profile handles GET /api/auth/profile.
func (h *AuthHandler) Profile(c *gin.Context) {
	customerID, _ := CurrentCustomerID(c)
	customer, err := h.facade.Profile(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err, "failed to fetch profile")
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// UpdateProfile handles PUT /api/auth/profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	customerID, _ := CurrentCustomerID(c)
	customer, err := h.facade.UpdateProfile(c.Request.Context(), customerID, model.CustomerUpdate{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		respondError(c, err, "update failed")
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Orders handles GET /api/auth/orders.
func (h *AuthHandler) Orders(c *gin.Context) {
	customerID, _ := CurrentCustomerID(c)
	orders, err := h.orders.CustomerOrders(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err, "failed to fetch orders")
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderDetailsResponse(o))
	}
	c.JSON(http.StatusOK, response)
}
