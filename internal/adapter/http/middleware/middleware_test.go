package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studio_api/internal/infrastructure/ratelimit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFromContext(c)) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	if id := w.Header().Get(RequestIDHeader); id == "" || id != w.Body.String() {
		t.Fatalf("expected generated id in header and context, got %q / %q", id, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc")
	if w := serve(r, req); w.Body.String() != "abc" {
		t.Fatalf("expected incoming id to be kept, got %q", w.Body.String())
	}
}

func TestLoggingAndRecovery(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	r := gin.New()
	r.Use(RequestID(), Logging(log), Recovery(log))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["code"] != "INTERNAL_ERROR" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	if logs.FilterMessage("panic recovered").Len() != 1 {
		t.Fatalf("expected panic to be logged")
	}
	entries := logs.FilterMessage("request complete").All()
	if len(entries) != 1 || entries[0].ContextMap()["status"] != int64(500) || entries[0].ContextMap()["route"] != "/panic" {
		t.Fatalf("unexpected request log %+v", entries)
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://studio.example/"}))
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://studio.example")
	w := serve(r, req)
	if w.Code != http.StatusNoContent || w.Header().Get("Access-Control-Allow-Origin") != "https://studio.example" {
		t.Fatalf("unexpected preflight %d %v", w.Code, w.Header())
	}

	req = httptest.NewRequest(http.MethodPost, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = serve(r, req)
	if w.Code != http.StatusOK || w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("foreign origin must not be allowed: %v", w.Header())
	}
}

type errLimiter struct{}

func (errLimiter) Allow(context.Context, string, ratelimit.Rule) (ratelimit.Decision, error) {
	return ratelimit.Decision{}, errors.New("down")
}

func TestRateLimit(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	limiter := ratelimit.NewMemoryWindow(func() time.Time { return now })

	r := gin.New()
	r.POST("/contact", RateLimit(limiter, "contact", ratelimit.Rule{Limit: 2, Window: time.Minute}, zap.NewNop()), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	for i := 0; i < 2; i++ {
		if w := serve(r, httptest.NewRequest(http.MethodPost, "/contact", nil)); w.Code != http.StatusCreated {
			t.Fatalf("request %d expected 201, got %d", i+1, w.Code)
		}
	}
	w := serve(r, httptest.NewRequest(http.MethodPost, "/contact", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}

	// another client is unaffected
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.RemoteAddr = "10.0.0.9:1234"
	if w := serve(r, req); w.Code != http.StatusCreated {
		t.Fatalf("expected other client to pass, got %d", w.Code)
	}

	r2 := gin.New()
	r2.POST("/contact", RateLimit(errLimiter{}, "contact", ratelimit.Rule{Limit: 1, Window: time.Minute}, zap.NewNop()), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	if w := serve(r2, httptest.NewRequest(http.MethodPost, "/contact", nil)); w.Code != http.StatusCreated {
		t.Fatalf("limiter errors must not block, got %d", w.Code)
	}
}

func TestWebhookSecret(t *testing.T) {
	cases := []struct {
		name   string
		secret string
		header string
		want   int
	}{
		{"match", "s3cret", "s3cret", http.StatusOK},
		{"mismatch", "s3cret", "wrong", http.StatusUnauthorized},
		{"missing header", "s3cret", "", http.StatusUnauthorized},
		{"no server secret", "", "", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/hook", WebhookSecret(tc.secret, zap.NewNop()), func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodPost, "/hook", nil)
			if tc.header != "" {
				req.Header.Set(WebhookSecretHeader, tc.header)
			}
			if w := serve(r, req); w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}
