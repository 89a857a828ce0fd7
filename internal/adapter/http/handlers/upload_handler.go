package handlers

import (
	"errors"
	"net/http"

	"studio_api/internal/usecase"
	"studio_api/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadFormField is the multipart field carrying the file.
const UploadFormField = "file"

// multipart boundaries and headers on top of the file itself
const multipartOverhead = 1 << 20

type UploadHandler struct {
	usecase  usecase.IUploadUseCase
	maxBytes int64
	log      *zap.Logger
}

func NewUploadHandler(uc usecase.IUploadUseCase, maxBytes int64, log *zap.Logger) *UploadHandler {
	return &UploadHandler{usecase: uc, maxBytes: maxBytes, log: log.Named("upload.handler")}
}

// Upload godoc
// @Summary      Upload a briefing file
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Briefing file"
// @Success      201   {object}  usecase.UploadedFile
// @Failure      400   {object}  pkg.HTTPError
// @Failure      413   {object}  pkg.HTTPError
// @Failure      415   {object}  pkg.HTTPError
// @Router       /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	file, header, err := c.Request.FormFile(UploadFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		appErr := invalidRequest()
		if errors.As(err, &tooLarge) {
			appErr = mapUploadError(usecase.ErrUploadTooLarge)
		}
		h.log.Info("invalid upload form", zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	uploaded, err := h.usecase.Upload(c.Request.Context(), header.Filename, file)
	if err != nil {
		appErr := mapUploadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, uploaded)
}

func mapUploadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUploadTooLarge):
		return pkg.NewDomainErrorSimple("UPLOAD_TOO_LARGE", "File exceeds the size limit", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrUploadEmpty):
		return pkg.NewDomainErrorSimple("UPLOAD_EMPTY", "File is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUploadTypeNotAllowed):
		return pkg.NewDomainErrorSimple("UPLOAD_TYPE_NOT_ALLOWED", "File type not allowed", http.StatusUnsupportedMediaType)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
