package captcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func newTestVerifier(t *testing.T, handler http.HandlerFunc) *TurnstileVerifier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	v := NewTurnstileVerifier("secret", zap.NewNop())
	v.endpoint = srv.URL
	return v
}

func TestTurnstileVerifier_Verify(t *testing.T) {
	t.Run("disabled without secret", func(t *testing.T) {
		ok, err := NewTurnstileVerifier("", zap.NewNop()).Verify(context.Background(), "", "")
		if err != nil || !ok {
			t.Fatalf("expected pass, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("empty token rejected without a call", func(t *testing.T) {
		v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatalf("siteverify must not be called")
		})
		ok, err := v.Verify(context.Background(), " ", "")
		if err != nil || ok {
			t.Fatalf("expected rejection, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("forwards token and ip", func(t *testing.T) {
		v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				t.Fatalf("parse form: %v", err)
			}
			if r.PostForm.Get("secret") != "secret" || r.PostForm.Get("response") != "tok" || r.PostForm.Get("remoteip") != "1.2.3.4" {
				t.Fatalf("unexpected form %v", r.PostForm)
			}
			w.Write([]byte(`{"success":true}`))
		})
		ok, err := v.Verify(context.Background(), "tok", "1.2.3.4")
		if err != nil || !ok {
			t.Fatalf("expected pass, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
		})
		ok, err := v.Verify(context.Background(), "tok", "")
		if err != nil || ok {
			t.Fatalf("expected rejection, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("upstream error", func(t *testing.T) {
		v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		if _, err := v.Verify(context.Background(), "tok", ""); err == nil {
			t.Fatalf("expected error")
		}
	})
}
