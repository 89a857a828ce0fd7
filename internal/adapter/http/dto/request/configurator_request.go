package request

import (
	"strings"

	"studio_api/internal/domain/pricing"
	"studio_api/internal/usecase"
)

// ConfiguratorEstimateRequest is one configurator form state.
type ConfiguratorEstimateRequest struct {
	VideoType  string         `json:"video_type" binding:"required"`
	Duration   string         `json:"duration" binding:"required"`
	Complexity string         `json:"complexity" binding:"required"`
	Extras     pricing.Extras `json:"extras"`
}

func (r ConfiguratorEstimateRequest) ToConfigInput() pricing.ConfigInput {
	return pricing.ConfigInput{
		VideoType:  pricing.VideoType(strings.TrimSpace(r.VideoType)),
		Duration:   pricing.Duration(strings.TrimSpace(r.Duration)),
		Complexity: pricing.Complexity(strings.TrimSpace(r.Complexity)),
		Extras:     r.Extras,
	}
}

// ConfiguratorSubmitRequest turns an estimate into a lead. Prices sent by the
// client are not part of the payload; the server recomputes them.
type ConfiguratorSubmitRequest struct {
	Name    string                      `json:"name" binding:"required"`
	Email   string                      `json:"email" binding:"required"`
	Phone   string                      `json:"phone"`
	Company string                      `json:"company"`
	Message string                      `json:"message"`
	Config  ConfiguratorEstimateRequest `json:"config" binding:"required"`
}

func (r ConfiguratorSubmitRequest) Lead() usecase.LeadContact {
	return usecase.LeadContact{Name: r.Name, Email: r.Email, Phone: r.Phone, Company: r.Company, Message: r.Message}
}

type ContactRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Phone        string `json:"phone"`
	Company      string `json:"company"`
	Message      string `json:"message" binding:"required"`
	CaptchaToken string `json:"captcha_token"`
}

func (r ContactRequest) Lead() usecase.LeadContact {
	return usecase.LeadContact{Name: r.Name, Email: r.Email, Phone: r.Phone, Company: r.Company, Message: r.Message}
}
