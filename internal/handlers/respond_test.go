package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jobhive/jobhive/internal/apperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRenderErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation maps to 400", apperr.Validation("no data"), http.StatusBadRequest},
		{"unauthorized maps to 401", apperr.Unauthorized("insufficient permissions"), http.StatusUnauthorized},
		{"not found maps to 404", apperr.NotFoundf("company %s", "acme"), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			renderError(c, tt.err)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRenderErrorHidesInternalDetail(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	renderError(c, errors.New("pq: connection refused"))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Errorf("internal detail leaked to response: %s", w.Body.String())
	}
}

func TestValidationMessageJoinsFieldErrors(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"u1"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
	}
	err := bindJSON(c, &req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("error kind = %v, want validation", err)
	}
	msg := err.Error()
	for _, field := range []string{"Password", "Email"} {
		if !strings.Contains(msg, field) {
			t.Errorf("message %q missing field %s", msg, field)
		}
	}
}
