package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio_api/internal/adapter/http/handlers/mocks"
	"studio_api/internal/domain/entities"
	"studio_api/internal/domain/pricing"
	"studio_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestContractRegenerationHandler_Regenerate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewContractRegenerationHandler(mocks.NewMockIContractRegenerationUseCase(ctrl), zap.NewNop())
		r := gin.New()
		r.POST("/v1/webhooks/contract-regeneration", h.Regenerate)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/contract-regeneration", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	cases := []struct {
		name       string
		result     usecase.RegenerationResult
		err        error
		wantCode   int
		wantStatus string
	}{
		{name: "not found", err: usecase.ErrOnboardingNotFound, wantCode: http.StatusNotFound},
		{name: "already processing", err: usecase.ErrRegenerationInProgress, wantCode: http.StatusConflict},
		{name: "failed", err: errors.Join(usecase.ErrRegenerationFailed, errors.New("render")), wantCode: http.StatusInternalServerError},
		{
			name:       "skipped",
			result:     usecase.RegenerationResult{Status: usecase.RegenerationSkipped, Onboarding: entities.Onboarding{ID: "onb-1"}},
			wantCode:   http.StatusOK,
			wantStatus: "skipped",
		},
		{
			name: "regenerated",
			result: usecase.RegenerationResult{
				Status:     usecase.RegenerationDone,
				Onboarding: entities.Onboarding{ID: "onb-1", ContractPDFURL: "https://files.example.com/contracts/onb-1/new.pdf"},
				Correction: &pricing.Correction{ID: "c-1", PreviousTotal: 5720, NewTotal: 5220},
			},
			wantCode:   http.StatusOK,
			wantStatus: "regenerated",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIContractRegenerationUseCase(ctrl)
			h := NewContractRegenerationHandler(uc, zap.NewNop())
			r := gin.New()
			r.POST("/v1/webhooks/contract-regeneration", h.Regenerate)

			uc.EXPECT().Regenerate(gomock.Any(), "onb-1").Return(tc.result, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/contract-regeneration", bytes.NewBufferString(`{"_id":"onb-1"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
			}
			if tc.wantStatus != "" {
				var body map[string]any
				_ = json.Unmarshal(w.Body.Bytes(), &body)
				if body["status"] != tc.wantStatus {
					t.Fatalf("unexpected body: %s", w.Body.String())
				}
			}
		})
	}
}

func TestContractRegenerationHandler_RequestAdjustment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid adjustment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractRegenerationUseCase(ctrl)
		h := NewContractRegenerationHandler(uc, zap.NewNop())
		r := gin.New()
		r.PATCH("/v1/onboardings/:id/adjustment", h.RequestAdjustment)

		uc.EXPECT().RequestAdjustment(gomock.Any(), "onb-1", gomock.Any()).Return(entities.Onboarding{}, errors.Join(usecase.ErrInvalidAdjustment, pricing.ErrInvalidDiscount))

		req := httptest.NewRequest(http.MethodPatch, "/v1/onboardings/onb-1/adjustment", bytes.NewBufferString(`{"discount":{"type":"percentage","value":150}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractRegenerationUseCase(ctrl)
		h := NewContractRegenerationHandler(uc, zap.NewNop())
		r := gin.New()
		r.PATCH("/v1/onboardings/:id/adjustment", h.RequestAdjustment)

		want := pricing.Adjustment{CustomItems: []pricing.CustomItem{{Label: "Zusatzdrehtag", Price: 490, Quantity: 1}}, Reason: "Nachtrag"}
		uc.EXPECT().RequestAdjustment(gomock.Any(), "onb-1", want).Return(entities.Onboarding{ID: "onb-1", RegenerateRequested: true}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/onboardings/onb-1/adjustment", bytes.NewBufferString(`{"custom_items":[{"label":"Zusatzdrehtag","price":490,"quantity":1}],"reason":"Nachtrag"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["regenerate_requested"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
