package entities

import "studio_api/internal/domain/pricing"

// ContractDocument is everything printed on a contract PDF.
// Correction is set for regenerated contracts.
type ContractDocument struct {
	Company        CompanyInfo
	Clauses        []ContractClause
	Onboarding     Onboarding
	SignatureImage []byte
	Correction     *pricing.Correction
}
