package response

import (
	"time"

	"studio_api/internal/domain/entities"
	"studio_api/internal/domain/pricing"
)

type InquiryResponse struct {
	ID        string               `json:"id"`
	Kind      string               `json:"kind"`
	Estimate  *pricing.PriceResult `json:"estimate,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

func FromInquiry(in entities.Inquiry) InquiryResponse {
	return InquiryResponse{ID: in.ID, Kind: string(in.Kind), Estimate: in.Estimate, CreatedAt: in.CreatedAt}
}
