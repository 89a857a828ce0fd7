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

// ContractRegenerationHandler serves the editor endpoints. Both routes sit
// behind the webhook secret middleware.
type ContractRegenerationHandler struct {
	usecase usecase.IContractRegenerationUseCase
	log     *zap.Logger
}

func NewContractRegenerationHandler(uc usecase.IContractRegenerationUseCase, log *zap.Logger) *ContractRegenerationHandler {
	return &ContractRegenerationHandler{usecase: uc, log: log.Named("regeneration.handler")}
}

// RequestAdjustment godoc
// @Summary      Store a post-signature price adjustment and raise the regenerate flag
// @Tags         regeneration
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Onboarding ID"
// @Param        body  body      request.AdjustmentRequest  true  "Adjustment"
// @Success      200   {object}  response.OnboardingResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Security     WebhookSecret
// @Router       /onboardings/{id}/adjustment [patch]
func (h *ContractRegenerationHandler) RequestAdjustment(c *gin.Context) {
	var req request.AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	o, err := h.usecase.RequestAdjustment(c.Request.Context(), c.Param("id"), req.ToAdjustment())
	if err != nil {
		appErr := mapRegenerationError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.log.Error("adjustment failed", zap.String("onboarding_id", c.Param("id")), zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOnboarding(o))
}

// Regenerate godoc
// @Summary      CMS webhook: regenerate the contract of an adjusted onboarding
// @Tags         regeneration
// @Accept       json
// @Produce      json
// @Param        body  body      request.RegenerationWebhookRequest  true  "Changed document"
// @Success      200   {object}  response.RegenerationResponse
// @Failure      401   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     WebhookSecret
// @Router       /webhooks/contract-regeneration [post]
func (h *ContractRegenerationHandler) Regenerate(c *gin.Context) {
	var req request.RegenerationWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.Regenerate(c.Request.Context(), req.ID)
	if err != nil {
		appErr := mapRegenerationError(err)
		h.log.Info("regeneration not done", zap.String("onboarding_id", req.ID), zap.String("code", appErr.Code), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRegeneration(res))
}

func mapRegenerationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOnboardingID):
		return invalidRequest()
	case errors.Is(err, usecase.ErrInvalidAdjustment):
		return pkg.NewDomainErrorSimple("INVALID_ADJUSTMENT", "Invalid adjustment", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOnboardingNotFound):
		return pkg.NewDomainErrorSimple("ONBOARDING_NOT_FOUND", "Onboarding not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRegenerationInProgress):
		return pkg.NewDomainErrorSimple("ALREADY_PROCESSING", "already processing", http.StatusConflict)
	case errors.Is(err, usecase.ErrRegenerationFailed):
		return pkg.NewDomainError("REGENERATION_FAILED", "Contract regeneration failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
