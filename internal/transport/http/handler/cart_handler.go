package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-api/internal/feature/cart"
	mdw "storefront-api/internal/transport/http/middleware"
	resp "storefront-api/internal/transport/http/response"
)

type CartHandler struct {
	svc *cart.Service
	log *zap.Logger
}

func NewCartHandler(svc *cart.Service, log *zap.Logger) *CartHandler {
	return &CartHandler{svc: svc, log: log}
}

func (h *CartHandler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, cart.ErrUnknownProduct):
		resp.ValidationFailed(c, resp.FieldError("product_id", "The selected product_id is invalid."))
	case errors.Is(err, cart.ErrInvalidQty):
		resp.ValidationFailed(c, resp.FieldError("quantity", "The quantity is invalid."))
	case errors.Is(err, cart.ErrBadPayment):
		resp.ValidationFailed(c, resp.FieldError("payment_method", "The selected payment_method is invalid."))
	case errors.Is(err, cart.ErrEmptyCart):
		resp.Message(c, http.StatusBadRequest, "Cart is empty")
	default:
		h.log.Error(op, zap.Error(err))
		resp.Message(c, http.StatusInternalServerError, "Internal server error")
	}
}

type addReq struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// Add POST /cart/add
func (h *CartHandler) Add(c *gin.Context) {
	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, resp.FromBinding(err))
		return
	}
	result, err := h.svc.Add(c.Request.Context(), mdw.SessionID(c), req.ProductID, req.Quantity)
	if err != nil {
		h.fail(c, "cart add", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product added to cart", "cart": result})
}

// View GET /cart/view
func (h *CartHandler) View(c *gin.Context) {
	result, grandTotal, err := h.svc.View(c.Request.Context(), mdw.SessionID(c))
	if err != nil {
		h.fail(c, "cart view", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": result, "grand_total": grandTotal})
}

type updateReq struct {
	ProductID uint `json:"product_id" binding:"required"`
	// pointer so quantity 0 (remove the line) passes required
	Quantity *int `json:"quantity" binding:"required,min=0"`
}

// Update PUT /cart/update
func (h *CartHandler) Update(c *gin.Context) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, resp.FromBinding(err))
		return
	}
	result, err := h.svc.Update(c.Request.Context(), mdw.SessionID(c), req.ProductID, *req.Quantity)
	if err != nil {
		h.fail(c, "cart update", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "cart": result})
}

type removeReq struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// Remove DELETE /cart/remove
func (h *CartHandler) Remove(c *gin.Context) {
	var req removeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, resp.FromBinding(err))
		return
	}
	result, err := h.svc.Remove(c.Request.Context(), mdw.SessionID(c), req.ProductID)
	if err != nil {
		h.fail(c, "cart remove", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart", "cart": result})
}

type checkoutReq struct {
	ShippingDetails string `json:"shipping_details" binding:"required,max=255"`
	PaymentMethod   string `json:"payment_method" binding:"required,oneof=cash_on_delivery"`
}

// Checkout POST /checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, resp.FromBinding(err))
		return
	}
	details, err := h.svc.CheckoutCart(c.Request.Context(), mdw.SessionID(c), cart.Checkout{
		ShippingDetails: req.ShippingDetails,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		h.fail(c, "checkout", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Checkout successful", "details": details})
}
