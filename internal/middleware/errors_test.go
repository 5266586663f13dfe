package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trainpulse/internal/domain/dto"
	"github.com/guttosm/trainpulse/internal/logger"
)

type assertErr struct{}

func (assertErr) Error() string { return "boom" }

func TestErrorHandler(t *testing.T) {
	cases := []struct {
		name        string
		handler     gin.HandlerFunc
		wantCode    int
		wantMessage string
	}{
		{
			name:        "plain error becomes 500",
			handler:     func(c *gin.Context) { _ = c.Error(assertErr{}) },
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
		{
			name: "status and ErrorResponse are kept",
			handler: func(c *gin.Context) {
				c.Status(http.StatusBadRequest)
				_ = c.Error(dto.NewErrorResponse("invalid filter", assertErr{}))
			},
			wantCode:    http.StatusBadRequest,
			wantMessage: "invalid filter",
		},
		{
			name:     "no error leaves response alone",
			handler:  func(c *gin.Context) { c.String(http.StatusOK, "ok") },
			wantCode: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(ErrorHandler)
			r.GET("/", tc.handler)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != tc.wantCode {
				t.Fatalf("code=%d, want %d", w.Code, tc.wantCode)
			}
			if tc.wantMessage == "" {
				return
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Message != tc.wantMessage || body.ErrorDetails != "boom" {
				t.Fatalf("unexpected body %+v", body)
			}
		})
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	var logs bytes.Buffer
	logger.SetOutput(&logs)
	logger.Init("error", false)
	t.Cleanup(func() {
		logger.SetOutput(os.Stdout)
		logger.Init("info", false)
	})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != 500 {
		t.Fatalf("code=%d", w.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.ErrorDetails != "boom" {
		t.Fatalf("unexpected body %s (%v)", w.Body.String(), err)
	}
	line := logs.String()
	if !strings.Contains(line, `"route":"/panic"`) || !strings.Contains(line, `"error":"boom"`) || !strings.Contains(line, "panic recovered") {
		t.Fatalf("unexpected log line %q", line)
	}
}

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var attached int
	r.GET("/err", func(c *gin.Context) {
		AbortWithError(c, http.StatusBadRequest, "bad stuff", assertErr{})
		attached = len(c.Errors)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/err", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct == "" {
		t.Fatalf("expected content-type set")
	}
	if attached != 1 {
		t.Fatalf("expected error attached to context, got %d", attached)
	}
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	for _, path := range []string{"/ok", "/missing"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if path == "/ok" && w.Code != http.StatusNoContent {
			t.Fatalf("code=%d", w.Code)
		}
	}
}
