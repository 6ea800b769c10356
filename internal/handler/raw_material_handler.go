package handler

import (
	"github.com/autoflex/autoflex-erp/internal/service"
	"github.com/gin-gonic/gin"
)

// RawMaterialHandler 原材料处理器
type RawMaterialHandler struct {
	svc *service.RawMaterialService
}

// NewRawMaterialHandler 创建原材料处理器
func NewRawMaterialHandler(svc *service.RawMaterialService) *RawMaterialHandler {
	return &RawMaterialHandler{svc: svc}
}

// List 获取原材料列表
func (h *RawMaterialHandler) List(c *gin.Context) {
	materials, err := h.svc.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, materials)
}

// Create 创建原材料
func (h *RawMaterialHandler) Create(c *gin.Context) {
	var req service.RawMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	material, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}

	Created(c, material)
}

// Get 获取原材料详情
func (h *RawMaterialHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Raw material ID is required")
		return
	}

	material, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}

	Success(c, material)
}

// Update 更新原材料
func (h *RawMaterialHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Raw material ID is required")
		return
	}

	var req service.RawMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	material, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		RespondError(c, err)
		return
	}

	Success(c, material)
}

// Delete 删除原材料
func (h *RawMaterialHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Raw material ID is required")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}

	Success(c, nil)
}
