package handler

import (
	"github.com/autoflex/autoflex-erp/internal/service"
	"github.com/gin-gonic/gin"
)

// BOMHandler BOM处理器
type BOMHandler struct {
	svc *service.BOMService
}

// NewBOMHandler 创建BOM处理器
func NewBOMHandler(svc *service.BOMService) *BOMHandler {
	return &BOMHandler{svc: svc}
}

// List 获取某产品的BOM行项
func (h *BOMHandler) List(c *gin.Context) {
	productID := c.Param("id")
	if productID == "" {
		BadRequest(c, "Product ID is required")
		return
	}

	lines, err := h.svc.List(c.Request.Context(), productID)
	if err != nil {
		RespondError(c, err)
		return
	}

	Success(c, lines)
}

// Replace 整体替换某产品的BOM
func (h *BOMHandler) Replace(c *gin.Context) {
	productID := c.Param("id")
	if productID == "" {
		BadRequest(c, "Product ID is required")
		return
	}

	var items []service.BOMItemRequest
	if err := c.ShouldBindJSON(&items); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	lines, err := h.svc.Replace(c.Request.Context(), productID, items)
	if err != nil {
		RespondError(c, err)
		return
	}

	Success(c, lines)
}
