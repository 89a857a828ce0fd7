package request

import "encoding/json"

// DepositPaymentRequest is the payload for paying an onboarding deposit.
//
// `provider_payload` is forwarded as-is (raw JSON) to support varying Mercado
// Pago schemas. A bare provider object without the envelope is accepted too.
type DepositPaymentRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
