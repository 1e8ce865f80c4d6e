package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-api/internal/domain"
	"storefront-api/internal/feature/catalog"
	resp "storefront-api/internal/transport/http/response"
)

type CatalogHandler struct {
	svc *catalog.Service
	log *zap.Logger
}

func NewCatalogHandler(svc *catalog.Service, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: log}
}

type listReq struct {
	Category  string `form:"category"`
	Search    string `form:"search"`
	SortPrice string `form:"sort_price" binding:"omitempty,oneof=asc desc"`
	Page      int    `form:"page"`
}

// List GET /products
func (h *CatalogHandler) List(c *gin.Context) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resp.ValidationFailed(c, resp.FromBinding(err))
		return
	}

	result, err := h.svc.List(c.Request.Context(), domain.ListParams{
		Category:  req.Category,
		Search:    req.Search,
		SortPrice: req.SortPrice,
		Page:      req.Page,
	})
	if err != nil {
		h.log.Error("catalog list", zap.Error(err))
		resp.Message(c, http.StatusInternalServerError, "Unable to fetch products")
		return
	}
	c.JSON(http.StatusOK, result)
}

type productReq struct {
	Description string  `json:"description" binding:"required,max=255"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required,max=64"`
}

// Create POST /products (admin)
func (h *CatalogHandler) Create(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, resp.FromBinding(err))
		return
	}
	p := &domain.Product{Description: req.Description, Price: req.Price, Category: req.Category}
	if err := h.svc.Create(p); err != nil {
		h.log.Error("product create", zap.Error(err))
		resp.Message(c, http.StatusInternalServerError, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "product": p})
}

// Update PUT /products/:id (admin)
func (h *CatalogHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.ValidationFailed(c, resp.FieldError("id", "The id must be an integer."))
		return
	}
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, resp.FromBinding(err))
		return
	}
	p, err := h.svc.Update(uint(id), req.Description, req.Price, req.Category)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			resp.Message(c, http.StatusNotFound, "Product not found")
			return
		}
		h.log.Error("product update", zap.Error(err))
		resp.Message(c, http.StatusInternalServerError, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": p})
}

// Delete DELETE /products/:id (admin)
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.ValidationFailed(c, resp.FieldError("id", "The id must be an integer."))
		return
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			resp.Message(c, http.StatusNotFound, "Product not found")
			return
		}
		h.log.Error("product delete", zap.Error(err))
		resp.Message(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	resp.Message(c, http.StatusOK, "Product deleted")
}
