package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	messagingapp "github.com/rescue-ops/backend/internal/application/messaging"
)

// MessageHandler handles message endpoints
type MessageHandler struct {
	BaseHandler
	messageService *messagingapp.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService *messagingapp.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Create sends a message.
// POST /messages
func (h *MessageHandler) Create(c *gin.Context) {
	var req messagingapp.CreateMessageInput
	if !h.bindJSON(c, &req) {
		return
	}

	msg, err := h.messageService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, msg)
}

// GetByID returns one message.
// GET /messages/:id
func (h *MessageHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	msg, err := h.messageService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, msg)
}

// List returns a page of messages.
// GET /messages
func (h *MessageHandler) List(c *gin.Context) {
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	page, err := h.messageService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	writePage(c, page)
}

// Update applies a partial update. A status change is audited.
// PUT /messages/:id
func (h *MessageHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req messagingapp.UpdateMessageInput
	if !h.bindJSON(c, &req) {
		return
	}

	msg, err := h.messageService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, msg)
}

// Delete removes a message no notification refers to.
// DELETE /messages/:id
func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.messageService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	BaseHandler
	notificationService *messagingapp.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *messagingapp.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// Create notifies a user.
// POST /notifications
func (h *NotificationHandler) Create(c *gin.Context) {
	var req messagingapp.CreateNotificationInput
	if !h.bindJSON(c, &req) {
		return
	}

	n, err := h.notificationService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, n)
}

// GetByID returns one notification.
// GET /notifications/:id
func (h *NotificationHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	n, err := h.notificationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, n)
}

// List returns a page of notifications.
// GET /notifications
func (h *NotificationHandler) List(c *gin.Context) {
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	page, err := h.notificationService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	writePage(c, page)
}

// ListForRecipient returns a user's notifications, optionally unread only.
// GET /users/:id/notifications?unread=true
func (h *NotificationHandler) ListForRecipient(c *gin.Context) {
	userID, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	unreadOnly := false
	if raw := c.Query("unread"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.BadRequest(c, "unread must be a boolean")
			return
		}
		unreadOnly = parsed
	}

	list, err := h.notificationService.ListForRecipient(c.Request.Context(), userID, unreadOnly)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, list)
}

// Update applies a partial update.
// PUT /notifications/:id
func (h *NotificationHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req messagingapp.UpdateNotificationInput
	if !h.bindJSON(c, &req) {
		return
	}

	n, err := h.notificationService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, n)
}

// MarkRead marks a notification as read. Repeating it is harmless.
// POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	n, err := h.notificationService.MarkRead(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, n)
}

// Delete removes a notification.
// DELETE /notifications/:id
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
