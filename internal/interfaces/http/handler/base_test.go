package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/rescue-ops/backend/internal/interfaces/http/dto"
	"github.com/rescue-ops/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetRequestID(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(*gin.Context)
		expectedID string
	}{
		{
			name:       "from context",
			setup:      func(c *gin.Context) { c.Set(middleware.RequestIDKey, "ctx-id") },
			expectedID: "ctx-id",
		},
		{
			name:       "from header when context empty",
			setup:      func(c *gin.Context) { c.Request.Header.Set(middleware.HeaderRequestID, "header-id") },
			expectedID: "header-id",
		},
		{
			name:       "empty when not set",
			setup:      func(c *gin.Context) {},
			expectedID: "",
		},
		{
			name: "context takes precedence over header",
			setup: func(c *gin.Context) {
				c.Set(middleware.RequestIDKey, "ctx-id")
				c.Request.Header.Set(middleware.HeaderRequestID, "header-id")
			},
			expectedID: "ctx-id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(c)
			assert.Equal(t, tt.expectedID, getRequestID(c))
		})
	}
}

func TestBaseHandler_SuccessResponses(t *testing.T) {
	h := &BaseHandler{}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	h.Success(c, map[string]string{"key": "value"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode(t, w).Success)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	h.Created(c, map[string]int{"id": 1})
	assert.Equal(t, http.StatusCreated, w.Code)

	router := gin.New()
	router.DELETE("/x", func(c *gin.Context) { h.NoContent(c) })
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/x", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestBaseHandler_HandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		code     string
		field    string
		contains string
	}{
		{"validation rejected carries field", shared.NewValidationRejected("address_id", "address 4 not found"),
			http.StatusBadRequest, dto.ErrCodeValidationRejected, "address_id", "address 4 not found"},
		{"not found", shared.NewNotFound("team", 7), http.StatusNotFound, dto.ErrCodeNotFound, "", "team 7 not found"},
		{"active references", shared.NewHasActiveReferences("company", 3),
			http.StatusConflict, dto.ErrCodeHasActiveReferences, "", "has active references"},
		{"integrity conflict", shared.NewIntegrityConflict("fk"), http.StatusConflict, dto.ErrCodeIntegrityConflict, "", "fk"},
		{"remote unavailable", shared.ErrRemoteUnavailable, http.StatusServiceUnavailable, dto.ErrCodeRemoteUnavailable, "", ""},
		{"audit input invalid", shared.NewAuditInputInvalid("subject required"),
			http.StatusInternalServerError, dto.ErrCodeAuditInputInvalid, "", ""},
		{"wrapped domain error", fmt.Errorf("outer: %w", shared.NewNotFound("user", 2)),
			http.StatusNotFound, dto.ErrCodeNotFound, "", "user 2 not found"},
		{"plain error is hidden", errors.New("pq: connection refused"),
			http.StatusInternalServerError, dto.ErrCodeInternal, "", "unexpected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &BaseHandler{}
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Set(middleware.RequestIDKey, "req-9")

			h.HandleError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			resp := decode(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.field, resp.Error.Field)
			assert.Equal(t, "req-9", resp.Error.RequestID)
			assert.Contains(t, resp.Error.Message, tt.contains)
			assert.NotContains(t, resp.Error.Message, "pq:")
		})
	}
}

func TestBaseHandler_HandleErrorNil(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	h.HandleError(c, nil)
	assert.Empty(t, w.Body.Bytes())
}

func TestBaseHandler_PathID(t *testing.T) {
	h := &BaseHandler{}
	router := gin.New()
	router.GET("/items/:id", func(c *gin.Context) {
		id, ok := h.pathID(c, "id")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, id)
	})

	for _, bad := range []string{"abc", "0", "-4", "1.5"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/"+bad, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
		resp := decode(t, w)
		assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
		assert.Equal(t, "id", resp.Error.Field)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", w.Body.String())
}

func TestBaseHandler_BindJSON(t *testing.T) {
	h := &BaseHandler{}
	router := gin.New()
	router.POST("/items", func(c *gin.Context) {
		var req struct {
			Name string `json:"name"`
		}
		if !h.bindJSON(c, &req) {
			return
		}
		c.String(http.StatusOK, req.Name)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"name":`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidJSON, decode(t, w).Error.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"name":"alpha"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alpha", w.Body.String())
}

func TestBaseHandler_ListFilter(t *testing.T) {
	h := &BaseHandler{}
	router := gin.New()
	router.GET("/items", func(c *gin.Context) {
		f, ok := h.listFilter(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, f)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items?page_size=500", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items?order_dir=sideways", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items?page=3&page_size=5", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var f shared.Filter
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &f))
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 5, f.PageSize)
}
