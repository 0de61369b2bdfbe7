package handler

import (
	"github.com/gin-gonic/gin"
	incidentapp "github.com/rescue-ops/backend/internal/application/incident"
)

// IncidentHandler handles incident endpoints
type IncidentHandler struct {
	BaseHandler
	incidentService *incidentapp.Service
}

// NewIncidentHandler creates a new IncidentHandler
func NewIncidentHandler(incidentService *incidentapp.Service) *IncidentHandler {
	return &IncidentHandler{incidentService: incidentService}
}

// Create reports an incident.
// POST /incidents
func (h *IncidentHandler) Create(c *gin.Context) {
	var req incidentapp.CreateIncidentInput
	if !h.bindJSON(c, &req) {
		return
	}

	inc, err := h.incidentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, inc)
}

// GetByID returns one incident.
// GET /incidents/:id
func (h *IncidentHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	inc, err := h.incidentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inc)
}

// List returns a page of incidents.
// GET /incidents
func (h *IncidentHandler) List(c *gin.Context) {
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	page, err := h.incidentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	writePage(c, page)
}

// Update applies a partial update, including assignment. A status change
// is audited.
// PUT /incidents/:id
func (h *IncidentHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req incidentapp.UpdateIncidentInput
	if !h.bindJSON(c, &req) {
		return
	}

	inc, err := h.incidentService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inc)
}

// Delete removes an incident.
// DELETE /incidents/:id
func (h *IncidentHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.incidentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
