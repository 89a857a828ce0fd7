package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"studio_api/internal/domain/entities"
	"studio_api/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrDepositPaymentNotFound         = errors.New("deposit payment not found")
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrDepositAlreadyPaid             = errors.New("deposit already paid")
	ErrOnboardingNotPayable           = errors.New("onboarding is not payable")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IDepositPaymentUseCase pays the deposit of a signed onboarding.
//
// The amount, the external reference and the default payer always come from
// the stored onboarding, never from the request.
type IDepositPaymentUseCase interface {
	PayDeposit(ctx context.Context, onboardingID string, providerPayload json.RawMessage) (entities.DepositPayment, error)
	GetLatest(ctx context.Context, onboardingID string) (entities.DepositPayment, error)
	ListByOnboardingID(ctx context.Context, onboardingID string) ([]entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo        interfaces.IDepositPaymentRepository
	onboardings interfaces.IOnboardingRepository
	gateway     interfaces.IPaymentGateway
	mockMode    bool
	now         func() time.Time
	log         *zap.Logger
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

// NewDepositPaymentUseCase: in mockMode the provider fields of the payload
// (payment method, payer) are not required.
func NewDepositPaymentUseCase(repo interfaces.IDepositPaymentRepository, onboardings interfaces.IOnboardingRepository, gateway interfaces.IPaymentGateway, mockMode bool, log *zap.Logger) *DepositPaymentUseCase {
	return &DepositPaymentUseCase{
		repo:        repo,
		onboardings: onboardings,
		gateway:     gateway,
		mockMode:    mockMode,
		now:         func() time.Time { return time.Now().UTC() },
		log:         log.Named("payment.usecase"),
	}
}

func (u *DepositPaymentUseCase) PayDeposit(ctx context.Context, onboardingID string, providerPayload json.RawMessage) (entities.DepositPayment, error) {
	onboardingID = strings.TrimSpace(onboardingID)
	if onboardingID == "" {
		return entities.DepositPayment{}, ErrInvalidOnboardingID
	}
	log := u.log.With(zap.String("onboarding_id", onboardingID))
	log.Info("pay deposit start", zap.Int("payload_len", len(providerPayload)))

	if len(strings.TrimSpace(string(providerPayload))) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil || reqMap == nil {
		return entities.DepositPayment{}, ErrInvalidPaymentPayload
	}
	if !u.mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Info("missing payment_method_id")
		return entities.DepositPayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.DepositPayment{}, ErrPaymentGatewayNotConfigured
	}

	o, err := u.onboardings.GetByID(ctx, onboardingID)
	if err != nil {
		return entities.DepositPayment{}, fmt.Errorf("load onboarding: %w", err)
	}
	if o.ID == "" {
		return entities.DepositPayment{}, ErrOnboardingNotFound
	}
	switch o.Status {
	case entities.OnboardingStatusSigned:
	case entities.OnboardingStatusDepositPaid:
		return entities.DepositPayment{}, ErrDepositAlreadyPaid
	default:
		return entities.DepositPayment{}, ErrOnboardingNotPayable
	}

	ensurePayer(reqMap, o.Client.Email)
	delete(reqMap, "transaction_amount")
	delete(reqMap, "external_reference")
	description, _ := reqMap["description"].(string)
	if strings.TrimSpace(description) == "" {
		description = fmt.Sprintf("Anzahlung %s", o.Project.Name)
	}
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.DepositPayment{}, fmt.Errorf("encode payment payload: %w", err)
	}

	res, err := u.gateway.ChargeDeposit(ctx, interfaces.DepositCharge{
		OnboardingID: o.ID,
		Amount:       o.Pricing.DepositAmount,
		Description:  description,
		Payload:      payload,
	})
	if err != nil {
		log.Error("payment gateway failed", zap.Error(err))
		return entities.DepositPayment{}, mapGatewayError(err)
	}
	log.Info("payment gateway success", zap.String("provider_payment_id", res.ID), zap.String("provider_status", res.Status))

	var parsed map[string]any
	if err := json.Unmarshal(res.Raw, &parsed); err != nil {
		log.Warn("provider response not parseable", zap.Error(err))
	}

	created, err := u.repo.Create(ctx, entities.DepositPayment{
		ID:                 res.ID,
		OnboardingID:       o.ID,
		Amount:             o.Pricing.DepositAmount,
		Date:               u.now(),
		Status:             paymentStatus(res.Status),
		ProviderPayloadRaw: res.Raw,
		ProviderPayload:    parsed,
	})
	if err != nil {
		log.Error("payment store failed", zap.String("payment_id", res.ID), zap.Error(err))
		return entities.DepositPayment{}, fmt.Errorf("store payment: %w", err)
	}

	if created.Status == entities.PaymentStatusApproved {
		if _, err := u.onboardings.UpdateStatus(ctx, o.ID, entities.OnboardingStatusDepositPaid); err != nil {
			log.Error("failed marking deposit as paid", zap.String("payment_id", created.ID), zap.Error(err))
		}
	}
	log.Info("pay deposit success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)), zap.Int("amount", created.Amount))
	return created, nil
}

func (u *DepositPaymentUseCase) GetLatest(ctx context.Context, onboardingID string) (entities.DepositPayment, error) {
	onboardingID = strings.TrimSpace(onboardingID)
	if onboardingID == "" {
		return entities.DepositPayment{}, ErrInvalidOnboardingID
	}
	latest, err := u.repo.GetLatestByOnboardingID(ctx, onboardingID)
	if err != nil {
		return entities.DepositPayment{}, fmt.Errorf("load latest payment: %w", err)
	}
	if latest.ID == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	return latest, nil
}

func (u *DepositPaymentUseCase) ListByOnboardingID(ctx context.Context, onboardingID string) ([]entities.DepositPayment, error) {
	onboardingID = strings.TrimSpace(onboardingID)
	if onboardingID == "" {
		return nil, ErrInvalidOnboardingID
	}
	return u.repo.ListByOnboardingID(ctx, onboardingID)
}

func paymentStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(providerStatus) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusRejected
	}
	return entities.PaymentStatusPending
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayer falls back to the client's email when the payload names no payer.
func ensurePayer(m map[string]any, clientEmail string) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		payer = map[string]any{}
		m["payer"] = payer
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && clientEmail != "" {
		payer["email"] = clientEmail
	}
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, `"code":2002`):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, `"code":2034`):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`):
		return ErrPaymentGatewayBadRequest
	}
	return fmt.Errorf("create payment: %w", err)
}
