package response

import (
	"time"

	"studio_api/internal/domain/entities"
	"studio_api/internal/domain/pricing"
	"studio_api/internal/domain/wizard"
	"studio_api/internal/usecase"
)

// DraftResponse is the wizard state shown to the browser. The signature image
// is not echoed back.
type DraftResponse struct {
	ID           string                `json:"id"`
	Step         string                `json:"step"`
	Contact      wizard.ContactInfo    `json:"contact"`
	Project      wizard.ProjectDetails `json:"project"`
	Extras       pricing.Extras        `json:"extras"`
	Review       wizard.ContractReview `json:"review"`
	HasSignature bool                  `json:"has_signature"`
	SignedPlace  string                `json:"signed_place,omitempty"`
	Preview      *pricing.PriceResult  `json:"preview,omitempty"`
	OnboardingID string                `json:"onboarding_id,omitempty"`
	LastError    string                `json:"last_error,omitempty"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

func FromDraft(d *wizard.Draft) DraftResponse {
	res := DraftResponse{
		ID:           d.ID,
		Step:         string(d.Step),
		Contact:      d.Contact,
		Project:      d.Project,
		Extras:       d.Extras,
		Review:       d.Review,
		HasSignature: d.Signature.Image != "",
		SignedPlace:  d.Signature.Place,
		OnboardingID: d.OnboardingID,
		LastError:    d.LastError,
		UpdatedAt:    d.UpdatedAt,
	}
	if preview, ok := d.Preview(); ok {
		res.Preview = preview
	}
	return res
}

type OnboardingResponse struct {
	ID                  string                    `json:"id"`
	Status              string                    `json:"status"`
	Client              entities.Client           `json:"client"`
	Project             entities.Project          `json:"project"`
	Pricing             pricing.OnboardingPricing `json:"pricing"`
	ContractPDFURL      string                    `json:"contract_pdf_url"`
	SignedPlace         string                    `json:"signed_place,omitempty"`
	SignedAt            time.Time                 `json:"signed_at"`
	RegenerateRequested bool                      `json:"regenerate_requested"`
	Corrections         []pricing.Correction      `json:"corrections"`
	CreatedAt           time.Time                 `json:"created_at"`
	UpdatedAt           time.Time                 `json:"updated_at"`
}

func FromOnboarding(o entities.Onboarding) OnboardingResponse {
	corrections := o.Corrections
	if corrections == nil {
		corrections = []pricing.Correction{}
	}
	return OnboardingResponse{
		ID:                  o.ID,
		Status:              string(o.Status),
		Client:              o.Client,
		Project:             o.Project,
		Pricing:             o.Pricing,
		ContractPDFURL:      o.ContractPDFURL,
		SignedPlace:         o.SignedPlace,
		SignedAt:            o.SignedAt,
		RegenerateRequested: o.RegenerateRequested,
		Corrections:         corrections,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

type RegenerationResponse struct {
	Status         string              `json:"status"`
	OnboardingID   string              `json:"onboarding_id"`
	ContractPDFURL string              `json:"contract_pdf_url,omitempty"`
	Correction     *pricing.Correction `json:"correction,omitempty"`
}

func FromRegeneration(r usecase.RegenerationResult) RegenerationResponse {
	return RegenerationResponse{
		Status:         string(r.Status),
		OnboardingID:   r.Onboarding.ID,
		ContractPDFURL: r.Onboarding.ContractPDFURL,
		Correction:     r.Correction,
	}
}
