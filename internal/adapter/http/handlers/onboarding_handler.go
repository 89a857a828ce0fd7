package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	response "studio_api/internal/adapter/http/dto/response"
	"studio_api/internal/domain/wizard"
	"studio_api/internal/usecase"
	"studio_api/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OnboardingHandler serves the wizard drafts and the signed onboarding documents.
type OnboardingHandler struct {
	usecase usecase.IOnboardingUseCase
	log     *zap.Logger
}

func NewOnboardingHandler(uc usecase.IOnboardingUseCase, log *zap.Logger) *OnboardingHandler {
	return &OnboardingHandler{usecase: uc, log: log.Named("onboarding.handler")}
}

// CreateDraft godoc
// @Summary      Start an onboarding wizard
// @Tags         onboarding
// @Produce      json
// @Success      201  {object}  response.DraftResponse
// @Router       /onboarding/drafts [post]
func (h *OnboardingHandler) CreateDraft(c *gin.Context) {
	d, err := h.usecase.CreateDraft(c.Request.Context())
	if err != nil {
		h.log.Error("create draft failed", zap.Error(err))
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDraft(d))
}

// GetDraft godoc
// @Summary      Current wizard state with live price preview
// @Tags         onboarding
// @Produce      json
// @Param        id   path      string  true  "Draft ID"
// @Success      200  {object}  response.DraftResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /onboarding/drafts/{id} [get]
func (h *OnboardingHandler) GetDraft(c *gin.Context) {
	d, err := h.usecase.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

// SaveStep godoc
// @Summary      Store a step and advance when its gate passes
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        id    path      string  true  "Draft ID"
// @Param        step  path      string  true  "contact_info, project_details, extras, contract_review or signature"
// @Success      200   {object}  response.DraftResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /onboarding/drafts/{id}/steps/{step} [put]
func (h *OnboardingHandler) SaveStep(c *gin.Context) {
	step, err := wizard.ParseStep(c.Param("step"))
	if err != nil || step == wizard.StepSubmitted {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	raw, err := c.GetRawData()
	if err != nil || !json.Valid(raw) {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	d, err := h.usecase.SaveStep(c.Request.Context(), c.Param("id"), step, json.RawMessage(raw))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

// Back godoc
// @Summary      Move the wizard one step back
// @Tags         onboarding
// @Produce      json
// @Param        id   path      string  true  "Draft ID"
// @Success      200  {object}  response.DraftResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /onboarding/drafts/{id}/back [post]
func (h *OnboardingHandler) Back(c *gin.Context) {
	d, err := h.usecase.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

// Submit godoc
// @Summary      Sign and submit the onboarding
// @Tags         onboarding
// @Produce      json
// @Param        id   path      string  true  "Draft ID"
// @Success      201  {object}  response.OnboardingResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /onboarding/drafts/{id}/submit [post]
func (h *OnboardingHandler) Submit(c *gin.Context) {
	draftID := c.Param("id")
	o, _, err := h.usecase.Submit(c.Request.Context(), draftID)
	if err != nil {
		h.log.Info("submit rejected", zap.String("draft_id", draftID), zap.Error(err))
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOnboarding(o))
}

// GetOnboarding godoc
// @Summary      Signed onboarding document
// @Tags         onboarding
// @Produce      json
// @Param        id   path      string  true  "Onboarding ID"
// @Success      200  {object}  response.OnboardingResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /onboardings/{id} [get]
func (h *OnboardingHandler) GetOnboarding(c *gin.Context) {
	o, err := h.usecase.GetOnboarding(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOnboarding(o))
}

func (h *OnboardingHandler) respondError(c *gin.Context, err error) {
	var verr *wizard.ValidationError
	if errors.As(err, &verr) {
		appErr := pkg.NewDomainErrorSimple("STEP_VALIDATION_FAILED", "Please complete the required fields", http.StatusUnprocessableEntity)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithFields(verr.Fields))
		return
	}
	appErr := mapOnboardingError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("code", appErr.Code), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapOnboardingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDraftID), errors.Is(err, usecase.ErrInvalidOnboardingID),
		errors.Is(err, usecase.ErrInvalidStepPayload), errors.Is(err, wizard.ErrUnknownStep):
		return invalidRequest()
	case errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Signature must be a PNG or JPEG image", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOnboardingNotFound):
		return pkg.NewDomainErrorSimple("ONBOARDING_NOT_FOUND", "Onboarding not found", http.StatusNotFound)
	case errors.Is(err, wizard.ErrStepMismatch):
		return pkg.NewDomainErrorSimple("STEP_MISMATCH", "Step is not the current step", http.StatusConflict)
	case errors.Is(err, wizard.ErrAlreadyDone):
		return pkg.NewDomainErrorSimple("ALREADY_SUBMITTED", "Onboarding already submitted", http.StatusConflict)
	case errors.Is(err, wizard.ErrNotReady):
		return pkg.NewDomainErrorSimple("NOT_READY", "Onboarding is not ready for submission", http.StatusConflict)
	case errors.Is(err, wizard.ErrAtFirstStep):
		return pkg.NewDomainErrorSimple("AT_FIRST_STEP", "Already at the first step", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmissionFailed):
		return pkg.NewDomainError("SUBMISSION_FAILED", "Submission failed, please try again", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
