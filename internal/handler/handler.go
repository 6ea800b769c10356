package handler

import (
	"errors"

	"github.com/autoflex/autoflex-erp/internal/repository"
	"github.com/autoflex/autoflex-erp/internal/service"
	"github.com/gin-gonic/gin"
)

// Handlers 处理器集合
type Handlers struct {
	Product     *ProductHandler
	RawMaterial *RawMaterialHandler
	BOM         *BOMHandler
	Suggestion  *SuggestionHandler
}

// NewHandlers 创建处理器集合
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Product:     NewProductHandler(svc.Product),
		RawMaterial: NewRawMaterialHandler(svc.RawMaterial),
		BOM:         NewBOMHandler(svc.BOM),
		Suggestion:  NewSuggestionHandler(svc.Suggestion),
	}
}

// Response 通用响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 参数错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

// Conflict 唯一约束冲突响应
func Conflict(c *gin.Context, message string) {
	Error(c, 40900, message)
}

// InternalError 服务器错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// RespondError 按错误类型映射响应码
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, repository.ErrConflict):
		Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalid):
		BadRequest(c, err.Error())
	default:
		InternalError(c, err.Error())
	}
}
