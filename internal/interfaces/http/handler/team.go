package handler

import (
	"github.com/gin-gonic/gin"
	teamsapp "github.com/rescue-ops/backend/internal/application/teams"
)

// TeamHandler handles team endpoints
type TeamHandler struct {
	BaseHandler
	teamService *teamsapp.TeamService
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(teamService *teamsapp.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// Create registers a team.
// POST /teams
func (h *TeamHandler) Create(c *gin.Context) {
	var req teamsapp.CreateTeamInput
	if !h.bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, team)
}

// GetByID returns one team.
// GET /teams/:id
func (h *TeamHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, team)
}

// List returns a page of teams.
// GET /teams
func (h *TeamHandler) List(c *gin.Context) {
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	page, err := h.teamService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	writePage(c, page)
}

// ListByCompany returns every team of a company.
// GET /companies/:id/teams
func (h *TeamHandler) ListByCompany(c *gin.Context) {
	companyID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	teams, err := h.teamService.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, teams)
}

// Update applies a partial update. A status change is audited.
// PUT /teams/:id
func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req teamsapp.UpdateTeamInput
	if !h.bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, team)
}

// Delete removes a team that nothing references.
// DELETE /teams/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// TeamTypeHandler handles the team type catalog
type TeamTypeHandler struct {
	BaseHandler
	teamTypeService *teamsapp.TeamTypeService
}

// NewTeamTypeHandler creates a new TeamTypeHandler
func NewTeamTypeHandler(teamTypeService *teamsapp.TeamTypeService) *TeamTypeHandler {
	return &TeamTypeHandler{teamTypeService: teamTypeService}
}

// Create adds a team type.
func (h *TeamTypeHandler) Create(c *gin.Context) {
	var req teamsapp.CreateTeamTypeInput
	if !h.bindJSON(c, &req) {
		return
	}

	teamType, err := h.teamTypeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, teamType)
}

// GetByID returns one team type.
func (h *TeamTypeHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	teamType, err := h.teamTypeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, teamType)
}

// List returns a page of team types.
func (h *TeamTypeHandler) List(c *gin.Context) {
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	page, err := h.teamTypeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	writePage(c, page)
}

// Delete removes a team type no team refers to.
func (h *TeamTypeHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.teamTypeService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CompanyHandler handles company endpoints
type CompanyHandler struct {
	BaseHandler
	companyService *teamsapp.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyService *teamsapp.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Create registers a company.
// POST /companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var req teamsapp.CreateCompanyInput
	if !h.bindJSON(c, &req) {
		return
	}

	company, err := h.companyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, company)
}

// GetByID returns one company.
// GET /companies/:id
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	company, err := h.companyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// List returns a page of companies.
// GET /companies
func (h *CompanyHandler) List(c *gin.Context) {
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	page, err := h.companyService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	writePage(c, page)
}

// Update applies a partial update.
// PUT /companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req teamsapp.UpdateCompanyInput
	if !h.bindJSON(c, &req) {
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// Delete removes a company that owns no teams.
// DELETE /companies/:id
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
