package handler

import (
	"github.com/autoflex/autoflex-erp/internal/service"
	"github.com/gin-gonic/gin"
)

// SuggestionHandler 生产建议处理器
type SuggestionHandler struct {
	svc *service.SuggestionService
}

// NewSuggestionHandler 创建生产建议处理器
func NewSuggestionHandler(svc *service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{svc: svc}
}

// Suggest GET /production-suggestions
func (h *SuggestionHandler) Suggest(c *gin.Context) {
	plan, err := h.svc.Suggest(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, plan)
}

// Export GET /production-suggestions/export
func (h *SuggestionHandler) Export(c *gin.Context) {
	f, filename, err := h.svc.ExportExcel(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}
