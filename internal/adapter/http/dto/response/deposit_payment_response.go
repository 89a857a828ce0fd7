package response

import (
	"time"

	"studio_api/internal/domain/entities"
)

type DepositPaymentResponse struct {
	PaymentID    string    `json:"payment_id"`
	OnboardingID string    `json:"onboarding_id"`
	Amount       int       `json:"amount"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromDepositPayment(p entities.DepositPayment) DepositPaymentResponse {
	return DepositPaymentResponse{
		PaymentID:          p.ID,
		OnboardingID:       p.OnboardingID,
		Amount:             p.Amount,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
