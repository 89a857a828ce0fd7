package interfaces

import (
	"context"
	"encoding/json"
)

// DepositCharge is a deposit payment prepared from a stored onboarding.
// Amount and OnboardingID win over anything the provider payload carries.
type DepositCharge struct {
	OnboardingID string
	Amount       int
	Description  string
	Payload      json.RawMessage
}

// ProviderPayment is what the provider answered for a charge.
type ProviderPayment struct {
	ID     string
	Status string
	Raw    json.RawMessage
}

type IPaymentGateway interface {
	ChargeDeposit(ctx context.Context, charge DepositCharge) (ProviderPayment, error)
}
