package handler

import (
	"github.com/gin-gonic/gin"
	auditapp "github.com/rescue-ops/backend/internal/application/audit"
	"github.com/rescue-ops/backend/internal/domain/audit"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/rescue-ops/backend/internal/interfaces/http/dto"
)

// AuditHandler exposes the read side of the audit trail
type AuditHandler struct {
	BaseHandler
	auditService *auditapp.Service
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService *auditapp.Service) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List returns a page of the whole trail, newest first.
// GET /audit
func (h *AuditHandler) List(c *gin.Context) {
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	records, total, err := h.auditService.ListAll(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page := shared.NewPaginated(records, total, filter.Page, filter.PageSize)
	writePage(c, &page)
}

// History returns the transitions of one subject, newest first.
// GET /audit/:kind/:id
func (h *AuditHandler) History(c *gin.Context) {
	kind, err := audit.ParseSubjectKind(c.Param("kind"))
	if err != nil {
		h.Error(c, dto.ErrCodeInvalidInput, err.Error(), "kind")
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	subject, err := audit.NewSubject(kind, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	records, err := h.auditService.History(c.Request.Context(), subject)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}
