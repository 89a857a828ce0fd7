package entities

import (
	"time"

	"studio_api/internal/domain/pricing"
)

// OnboardingStatus is the lifecycle of a signed onboarding document.
type OnboardingStatus string

const (
	OnboardingStatusSigned      OnboardingStatus = "signed"
	OnboardingStatusDepositPaid OnboardingStatus = "deposit_paid"
	OnboardingStatusCancelled   OnboardingStatus = "cancelled"
)

// RegenerationStaleAfter is how long a regeneration claim blocks other deliveries.
const RegenerationStaleAfter = 10 * time.Minute

type Client struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	ZipCity string `json:"zip_city"`
	Company string `json:"company,omitempty"`
}

type Project struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Budget      string              `json:"budget"`
	Deadline    string              `json:"deadline,omitempty"`
	Config      pricing.ConfigInput `json:"config"`
}

// Onboarding is the signed contract document.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Post-signature price changes go through the regeneration flow only:
//   - an editor stores Adjustment and raises RegenerateRequested
//   - the webhook claims the document (RegenerationStartedAt, Version CAS)
//   - pricing, contract reference and one appended Correction are committed together
type Onboarding struct {
	ID      string           `json:"id"`
	DraftID string           `json:"draft_id"`
	Status  OnboardingStatus `json:"status"`
	Client  Client           `json:"client"`
	Project Project          `json:"project"`

	Pricing pricing.OnboardingPricing `json:"pricing"`

	ContractKey    string    `json:"contract_key"`
	ContractPDFURL string    `json:"contract_pdf_url"`
	SignatureKey   string    `json:"signature_key"`
	SignedPlace    string    `json:"signed_place,omitempty"`
	SignedAt       time.Time `json:"signed_at"`

	Adjustment            *pricing.Adjustment  `json:"adjustment,omitempty"`
	RegenerateRequested   bool                 `json:"regenerate_requested"`
	RegenerationStartedAt *time.Time           `json:"regeneration_started_at,omitempty"`
	Corrections           []pricing.Correction `json:"corrections"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegenerationClaimable reports whether a regeneration may start now.
func (o Onboarding) RegenerationClaimable(now time.Time) bool {
	if !o.RegenerateRequested {
		return false
	}
	if o.RegenerationStartedAt == nil {
		return true
	}
	return now.Sub(*o.RegenerationStartedAt) > RegenerationStaleAfter
}

// ContractRevision is the atomic post-regeneration update of an onboarding.
type ContractRevision struct {
	Pricing        pricing.OnboardingPricing
	ContractKey    string
	ContractPDFURL string
	Correction     pricing.Correction
}
