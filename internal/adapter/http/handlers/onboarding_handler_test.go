package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studio_api/internal/adapter/http/handlers/mocks"
	"studio_api/internal/domain/entities"
	"studio_api/internal/domain/pricing"
	"studio_api/internal/domain/wizard"
	"studio_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newOnboardingRouter(uc usecase.IOnboardingUseCase) *gin.Engine {
	h := NewOnboardingHandler(uc, zap.NewNop())
	r := gin.New()
	r.POST("/v1/onboarding/drafts", h.CreateDraft)
	r.GET("/v1/onboarding/drafts/:id", h.GetDraft)
	r.PUT("/v1/onboarding/drafts/:id/steps/:step", h.SaveStep)
	r.POST("/v1/onboarding/drafts/:id/back", h.Back)
	r.POST("/v1/onboarding/drafts/:id/submit", h.Submit)
	r.GET("/v1/onboardings/:id", h.GetOnboarding)
	return r
}

func TestOnboardingHandler_CreateAndGetDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOnboardingUseCase(ctrl)
	r := newOnboardingRouter(uc)

	d := wizard.NewDraft("d-1", time.Now().UTC())
	d.Project = wizard.ProjectDetails{VideoType: pricing.VideoTypeSocial, Duration: pricing.DurationShort, Complexity: pricing.ComplexityPremium}
	d.Signature.Image = "data:image/png;base64,AAAA"
	uc.EXPECT().CreateDraft(gomock.Any()).Return(d, nil)
	uc.EXPECT().GetDraft(gomock.Any(), "d-1").Return(d, nil)
	uc.EXPECT().GetDraft(gomock.Any(), "missing").Return(nil, usecase.ErrDraftNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/onboarding/drafts", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/onboarding/drafts/d-1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["has_signature"] != true || body["signature"] != nil {
		t.Fatalf("signature image must not be echoed: %s", w.Body.String())
	}
	preview, ok := body["preview"].(map[string]any)
	if !ok || preview["total_price"] == nil {
		t.Fatalf("expected price preview, got %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/onboarding/drafts/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestOnboardingHandler_SaveStep(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newOnboardingRouter(mocks.NewMockIOnboardingUseCase(ctrl))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/v1/onboarding/drafts/d-1/steps/payment", bytes.NewBufferString(`{}`)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gate failure returns fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOnboardingUseCase(ctrl)
		r := newOnboardingRouter(uc)

		d := wizard.NewDraft("d-1", time.Now().UTC())
		verr := &wizard.ValidationError{Step: wizard.StepContactInfo, Fields: []string{"phone", "street"}}
		uc.EXPECT().SaveStep(gomock.Any(), "d-1", wizard.StepContactInfo, gomock.Any()).Return(d, verr)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/v1/onboarding/drafts/d-1/steps/contact_info", bytes.NewBufferString(`{"name":"Erika"}`)))
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body struct {
			Code   string   `json:"code"`
			Fields []string `json:"fields"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "STEP_VALIDATION_FAILED" || len(body.Fields) != 2 || body.Fields[0] != "phone" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("step mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOnboardingUseCase(ctrl)
		r := newOnboardingRouter(uc)

		uc.EXPECT().SaveStep(gomock.Any(), "d-1", wizard.StepExtras, gomock.Any()).Return(nil, wizard.ErrStepMismatch)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/v1/onboarding/drafts/d-1/steps/extras", bytes.NewBufferString(`{"drone":true}`)))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("advances", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOnboardingUseCase(ctrl)
		r := newOnboardingRouter(uc)

		d := wizard.NewDraft("d-1", time.Now().UTC())
		d.Step = wizard.StepContractReview
		uc.EXPECT().SaveStep(gomock.Any(), "d-1", wizard.StepExtras, json.RawMessage(`{"drone":true}`)).Return(d, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/v1/onboarding/drafts/d-1/steps/extras", bytes.NewBufferString(`{"drone":true}`)))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["step"] != string(wizard.StepContractReview) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOnboardingHandler_BackAndSubmit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "at first step", err: wizard.ErrAtFirstStep, want: http.StatusConflict},
		{name: "not ready", err: wizard.ErrNotReady, want: http.StatusConflict},
		{name: "invalid signature", err: usecase.ErrInvalidSignature, want: http.StatusBadRequest},
		{name: "submission failed", err: errors.Join(usecase.ErrSubmissionFailed, errors.New("s3 down")), want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIOnboardingUseCase(ctrl)
			r := newOnboardingRouter(uc)

			path := "/v1/onboarding/drafts/d-1/submit"
			if tc.err == wizard.ErrAtFirstStep {
				path = "/v1/onboarding/drafts/d-1/back"
				uc.EXPECT().Back(gomock.Any(), "d-1").Return(nil, tc.err)
			} else {
				uc.EXPECT().Submit(gomock.Any(), "d-1").Return(entities.Onboarding{}, nil, tc.err)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("submit success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOnboardingUseCase(ctrl)
		r := newOnboardingRouter(uc)

		o := entities.Onboarding{ID: "onb-1", Status: entities.OnboardingStatusSigned, ContractPDFURL: "https://files.example.com/contracts/onb-1/x.pdf"}
		uc.EXPECT().Submit(gomock.Any(), "d-1").Return(o, wizard.NewDraft("d-1", time.Now()), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/onboarding/drafts/d-1/submit", nil))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "onb-1" || body["status"] != "signed" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if corrections, ok := body["corrections"].([]any); !ok || len(corrections) != 0 {
			t.Fatalf("expected empty corrections list, got %s", w.Body.String())
		}
	})
}

func TestOnboardingHandler_GetOnboarding(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOnboardingUseCase(ctrl)
	r := newOnboardingRouter(uc)

	uc.EXPECT().GetOnboarding(gomock.Any(), "nope").Return(entities.Onboarding{}, usecase.ErrOnboardingNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/onboardings/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
