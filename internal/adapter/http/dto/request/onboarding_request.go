package request

import (
	"strings"

	"studio_api/internal/domain/pricing"
)

// AdjustmentRequest is sent by the editor to correct a signed contract.
type AdjustmentRequest struct {
	CustomItems []pricing.CustomItem `json:"custom_items"`
	Discount    *pricing.Discount    `json:"discount"`
	Reason      string               `json:"reason"`
}

func (r AdjustmentRequest) ToAdjustment() pricing.Adjustment {
	items := make([]pricing.CustomItem, 0, len(r.CustomItems))
	for _, it := range r.CustomItems {
		it.Label = strings.TrimSpace(it.Label)
		items = append(items, it)
	}
	return pricing.Adjustment{CustomItems: items, Discount: r.Discount, Reason: strings.TrimSpace(r.Reason)}
}

// RegenerationWebhookRequest is the CMS document-change notification.
type RegenerationWebhookRequest struct {
	ID string `json:"_id" binding:"required"`
}
