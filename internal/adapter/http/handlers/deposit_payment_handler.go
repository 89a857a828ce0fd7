package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "studio_api/internal/adapter/http/dto/response"
	"studio_api/internal/usecase"
	"studio_api/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DepositPaymentHandler handles HTTP requests for onboarding deposit payments.
type DepositPaymentHandler struct {
	usecase  usecase.IDepositPaymentUseCase
	mockMode bool
	log      *zap.Logger
}

func NewDepositPaymentHandler(uc usecase.IDepositPaymentUseCase, mockMode bool, log *zap.Logger) *DepositPaymentHandler {
	return &DepositPaymentHandler{usecase: uc, mockMode: mockMode, log: log.Named("payment.handler")}
}

// PayDeposit godoc
// @Summary      Pay the deposit of a signed onboarding
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      string                         true  "Onboarding ID"
// @Param        body  body      request.DepositPaymentRequest  true  "Mercado Pago payload"
// @Success      200   {object}  response.DepositPaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /onboardings/{id}/deposit-payment [post]
func (h *DepositPaymentHandler) PayDeposit(c *gin.Context) {
	onboardingID := c.Param("id")
	log := h.log.With(zap.String("onboarding_id", onboardingID))
	log.Info("pay deposit start")

	payload, err := readProviderPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Info("invalid payload", zap.Error(err))
			appErr := invalidRequest()
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Info("payload invalid in mock mode, using empty payload", zap.Error(err))
		payload = json.RawMessage("{}")
	}

	created, err := h.usecase.PayDeposit(c.Request.Context(), onboardingID, payload)
	if err != nil {
		log.Info("pay deposit failed", zap.Error(err))
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("pay deposit success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	c.JSON(http.StatusOK, response.FromDepositPayment(created))
}

// GetDepositPayment godoc
// @Summary      Latest deposit payment of an onboarding
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Onboarding ID"
// @Success      200  {object}  response.DepositPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /onboardings/{id}/deposit-payment [get]
func (h *DepositPaymentHandler) GetDepositPayment(c *gin.Context) {
	latest, err := h.usecase.GetLatest(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDepositPayment(latest))
}

// readProviderPayload accepts either {"provider_payload": {...}} or the bare provider object.
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}

func mapDepositPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOnboardingID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return invalidRequest()
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOnboardingNotFound):
		return pkg.NewDomainErrorSimple("ONBOARDING_NOT_FOUND", "Onboarding not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDepositAlreadyPaid):
		return pkg.NewDomainErrorSimple("DEPOSIT_ALREADY_PAID", "Deposit already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrOnboardingNotPayable):
		return pkg.NewDomainErrorSimple("ONBOARDING_NOT_PAYABLE", "Onboarding is not payable", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
