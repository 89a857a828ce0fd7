package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio_api/internal/adapter/http/handlers/mocks"
	"studio_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func multipartBody(t *testing.T, field, name string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile(field, name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func TestUploadHandler_Upload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewUploadHandler(mocks.NewMockIUploadUseCase(ctrl), 1024, zap.NewNop())
		r := gin.New()
		r.POST("/v1/uploads", h.Upload)

		body, ct := multipartBody(t, "other", "briefing.pdf", []byte("%PDF-1.4"))
		req := httptest.NewRequest(http.MethodPost, "/v1/uploads", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("type not allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUploadUseCase(ctrl)
		h := NewUploadHandler(uc, 1024, zap.NewNop())
		r := gin.New()
		r.POST("/v1/uploads", h.Upload)

		uc.EXPECT().Upload(gomock.Any(), "run.exe", gomock.Any()).Return(usecase.UploadedFile{}, usecase.ErrUploadTypeNotAllowed)

		body, ct := multipartBody(t, UploadFormField, "run.exe", []byte("MZ"))
		req := httptest.NewRequest(http.MethodPost, "/v1/uploads", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnsupportedMediaType {
			t.Fatalf("expected 415, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUploadUseCase(ctrl)
		h := NewUploadHandler(uc, 1024, zap.NewNop())
		r := gin.New()
		r.POST("/v1/uploads", h.Upload)

		uc.EXPECT().Upload(gomock.Any(), "briefing.pdf", gomock.Any()).DoAndReturn(func(_ any, name string, rd io.Reader) (usecase.UploadedFile, error) {
			data, _ := io.ReadAll(rd)
			return usecase.UploadedFile{Key: "uploads/x-briefing.pdf", URL: "http://localhost:8080/files/uploads/x-briefing.pdf", FileName: name, Size: int64(len(data))}, nil
		})

		body, ct := multipartBody(t, UploadFormField, "briefing.pdf", []byte("%PDF-1.4 briefing"))
		req := httptest.NewRequest(http.MethodPost, "/v1/uploads", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})
}
