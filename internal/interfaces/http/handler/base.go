// Package handler holds the gin handlers of the rescue operations API.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/rescue-ops/backend/internal/infrastructure/logger"
	"github.com/rescue-ops/backend/internal/interfaces/http/dto"
	"github.com/rescue-ops/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context, falling back to
// the request header
func getRequestID(c *gin.Context) string {
	if id := middleware.GetRequestID(c); id != "" {
		return id
	}
	return c.GetHeader(middleware.HeaderRequestID)
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response, deriving the status from the code
func (h *BaseHandler) Error(c *gin.Context, code, message, field string) {
	c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponse(dto.ErrorInfo{
		Code:      code,
		Message:   message,
		Field:     field,
		RequestID: getRequestID(c),
	}))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, dto.ErrCodeBadRequest, message, "")
}

// HandleError converts an application error to an HTTP response. Anything
// that is not a domain error is logged and reported as internal.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, dto.NormalizeErrorCode(domainErr.Code), domainErr.Message, domainErr.Field)
		return
	}

	logger.FromContext(c.Request.Context()).Error("Unhandled error", zap.Error(err))
	h.Error(c, dto.ErrCodeInternal, "An unexpected error occurred", "")
}

// bindJSON decodes the body into req, answering 400 on failure.
func (h *BaseHandler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.Error(c, dto.ErrCodePayloadTooLarge, "Request body exceeds maximum allowed size", "")
			return false
		}
		h.Error(c, dto.ErrCodeInvalidJSON, err.Error(), "")
		return false
	}
	return true
}

// pathID parses a positive integer path parameter, answering 400 otherwise.
func (h *BaseHandler) pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		h.Error(c, dto.ErrCodeInvalidInput, "must be a positive integer", name)
		return 0, false
	}
	return id, true
}

// listFilter binds paging query parameters, answering 400 on bad values.
func (h *BaseHandler) listFilter(c *gin.Context) (shared.Filter, bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.Error(c, dto.ErrCodeInvalidInput, err.Error(), "")
		return shared.Filter{}, false
	}
	return req.ToFilter(), true
}

// writePage sends a page of items with its pagination meta
func writePage[T any](c *gin.Context, page *shared.Paginated[T]) {
	c.JSON(http.StatusOK, dto.NewPageResponse(page))
}
