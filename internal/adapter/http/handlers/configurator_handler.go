package handlers

import (
	"errors"
	"net/http"

	request "studio_api/internal/adapter/http/dto/request"
	response "studio_api/internal/adapter/http/dto/response"
	"studio_api/internal/usecase"
	"studio_api/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ConfiguratorHandler struct {
	usecase usecase.IConfiguratorUseCase
	log     *zap.Logger
}

func NewConfiguratorHandler(uc usecase.IConfiguratorUseCase, log *zap.Logger) *ConfiguratorHandler {
	return &ConfiguratorHandler{usecase: uc, log: log.Named("configurator.handler")}
}

// Estimate godoc
// @Summary      Price estimate for a configurator selection
// @Tags         configurator
// @Accept       json
// @Produce      json
// @Param        body  body      request.ConfiguratorEstimateRequest  true  "Configuration"
// @Success      200   {object}  pricing.PriceResult
// @Failure      400   {object}  pkg.HTTPError
// @Router       /configurator/estimate [post]
func (h *ConfiguratorHandler) Estimate(c *gin.Context) {
	var req request.ConfiguratorEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.Estimate(c.Request.Context(), req.ToConfigInput())
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, res)
}

// SubmitRequest godoc
// @Summary      Send a configurator request to the studio
// @Tags         configurator
// @Accept       json
// @Produce      json
// @Param        body  body      request.ConfiguratorSubmitRequest  true  "Lead and configuration"
// @Success      201   {object}  response.InquiryResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      429   {object}  pkg.HTTPError
// @Router       /configurator/requests [post]
func (h *ConfiguratorHandler) SubmitRequest(c *gin.Context) {
	var req request.ConfiguratorSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Info("invalid submit payload", zap.Error(err))
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	inq, err := h.usecase.SubmitRequest(c.Request.Context(), req.Lead(), req.Config.ToConfigInput())
	if err != nil {
		h.log.Error("submit failed", zap.Error(err))
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromInquiry(inq))
}

func invalidRequest() *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
}

func mapInquiryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConfig), errors.Is(err, usecase.ErrInvalidLead), errors.Is(err, usecase.ErrEmptyMessage):
		return invalidRequest()
	case errors.Is(err, usecase.ErrCaptchaFailed):
		return pkg.NewDomainErrorSimple("CAPTCHA_FAILED", "Captcha verification failed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCaptchaUnavailable):
		return pkg.NewDomainError("CAPTCHA_UNAVAILABLE", "Captcha verification unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
