package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"studio_api/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

// MercadoPagoGateway creates deposit payments. In mock mode every payment is
// approved locally and the provider is never called.
type MercadoPagoGateway struct {
	client   paymentCreator
	mockMode bool
	now      func() time.Time
	log      *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool, log *zap.Logger) (*MercadoPagoGateway, error) {
	log = log.Named("payment.gateway")
	if mock {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: time.Now, log: log}, nil
	}
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercado pago config: %w", err)
	}
	log.Info("mercado pago client initialized")
	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: time.Now, log: log}, nil
}

func (g *MercadoPagoGateway) ChargeDeposit(ctx context.Context, charge interfaces.DepositCharge) (interfaces.ProviderPayment, error) {
	if g == nil {
		return interfaces.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}
	log := g.log.With(zap.String("onboarding_id", charge.OnboardingID))
	if g.mockMode {
		return g.mockCharge(charge, log)
	}
	if g.client == nil {
		return interfaces.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if len(charge.Payload) > 0 {
		if err := json.Unmarshal(charge.Payload, &req); err != nil {
			return interfaces.ProviderPayment{}, fmt.Errorf("decode payment request: %w", err)
		}
	}
	req.TransactionAmount = float64(charge.Amount)
	req.ExternalReference = charge.OnboardingID
	if req.Description == "" {
		req.Description = charge.Description
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Error("sdk create failed", zap.Error(err))
		return interfaces.ProviderPayment{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.ProviderPayment{}, fmt.Errorf("encode provider response: %w", err)
	}
	id := fmt.Sprintf("%d", resp.ID)
	log.Info("payment created", zap.String("provider_payment_id", id), zap.String("provider_status", resp.Status))
	return interfaces.ProviderPayment{ID: id, Status: resp.Status, Raw: raw}, nil
}

// mockCharge approves locally and answers with the charge fields a real
// provider would echo.
func (g *MercadoPagoGateway) mockCharge(charge interfaces.DepositCharge, log *zap.Logger) (interfaces.ProviderPayment, error) {
	resp := map[string]any{}
	if len(charge.Payload) > 0 {
		if err := json.Unmarshal(charge.Payload, &resp); err != nil || resp == nil {
			resp = map[string]any{"request_payload_raw": string(charge.Payload)}
		}
	}

	now := g.now().UTC()
	id := "mock-" + strconv.FormatInt(now.UnixNano(), 10)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["transaction_amount"] = charge.Amount
	resp["external_reference"] = charge.OnboardingID
	if _, ok := resp["description"]; !ok {
		resp["description"] = charge.Description
	}
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = now.Format(time.RFC3339Nano)

	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.ProviderPayment{}, fmt.Errorf("encode mock response: %w", err)
	}
	log.Info("mock payment approved", zap.String("provider_payment_id", id))
	return interfaces.ProviderPayment{ID: id, Status: "approved", Raw: raw}, nil
}
