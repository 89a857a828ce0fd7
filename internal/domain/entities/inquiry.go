package entities

import (
	"time"

	"studio_api/internal/domain/pricing"
)

type InquiryKind string

const (
	InquiryKindContact      InquiryKind = "contact"
	InquiryKindConfigurator InquiryKind = "configurator"
)

// Inquiry is a lead from the public funnel: the contact form or a submitted
// configurator estimate.
//
// Storage model (Postgres): table inquiries, config and estimate as jsonb.
type Inquiry struct {
	ID        string               `json:"id"`
	Kind      InquiryKind          `json:"kind"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Phone     string               `json:"phone,omitempty"`
	Company   string               `json:"company,omitempty"`
	Message   string               `json:"message,omitempty"`
	Config    *pricing.ConfigInput `json:"config,omitempty"`
	Estimate  *pricing.PriceResult `json:"estimate,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}
