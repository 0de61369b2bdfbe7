package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/rescue-ops/backend/internal/application/identity"
)

// UserHandler handles user endpoints
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create registers a user.
// POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req identityapp.CreateUserInput
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, user)
}

// GetByID returns one user.
// GET /users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// List returns a page of users.
// GET /users
func (h *UserHandler) List(c *gin.Context) {
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	page, err := h.userService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	writePage(c, page)
}

// Update applies a partial update. A status change is audited.
// PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req identityapp.UpdateUserInput
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// Delete removes a user that nothing references.
// DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// UserTypeHandler handles the user type catalog
type UserTypeHandler struct {
	BaseHandler
	userTypeService *identityapp.UserTypeService
}

// NewUserTypeHandler creates a new UserTypeHandler
func NewUserTypeHandler(userTypeService *identityapp.UserTypeService) *UserTypeHandler {
	return &UserTypeHandler{userTypeService: userTypeService}
}

// Create adds a user type.
func (h *UserTypeHandler) Create(c *gin.Context) {
	var req identityapp.CreateUserTypeInput
	if !h.bindJSON(c, &req) {
		return
	}

	userType, err := h.userTypeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, userType)
}

// GetByID returns one user type.
func (h *UserTypeHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	userType, err := h.userTypeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, userType)
}

// List returns a page of user types.
func (h *UserTypeHandler) List(c *gin.Context) {
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	page, err := h.userTypeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	writePage(c, page)
}

// Delete removes a user type no user refers to.
func (h *UserTypeHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.userTypeService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
