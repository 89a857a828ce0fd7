package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
//
// Only approved payments are persisted today; the other states exist for
// provider responses that are stored for audit.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// DepositPayment is the deposit paid for a signed onboarding.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (onboarding_id-date-index): onboarding_id, sorted by date
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original provider response (JSON) for audit.
//   - ProviderPayload is the parsed representation, useful for debugging.

type DepositPayment struct {
	ID           string        `json:"id"`
	OnboardingID string        `json:"onboarding_id"`
	Amount       int           `json:"amount"`
	Date         time.Time     `json:"date"`
	Status       PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
