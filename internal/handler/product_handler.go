package handler

import (
	"github.com/autoflex/autoflex-erp/internal/service"
	"github.com/gin-gonic/gin"
)

// ProductHandler 产品处理器
type ProductHandler struct {
	svc *service.ProductService
}

// NewProductHandler 创建产品处理器
func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// List 获取产品列表
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.svc.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, products)
}

// Create 创建产品
func (h *ProductHandler) Create(c *gin.Context) {
	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}

	Created(c, product)
}

// Get 获取产品详情
func (h *ProductHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Product ID is required")
		return
	}

	product, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}

	Success(c, product)
}

// Update 更新产品
func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Product ID is required")
		return
	}

	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		RespondError(c, err)
		return
	}

	Success(c, product)
}

// Delete 删除产品
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Product ID is required")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}

	Success(c, nil)
}
