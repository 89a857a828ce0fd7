package pricing

import (
	"math"
	"strings"
	"time"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// DiscountLabel prefixes the breakdown line of a discount.
const DiscountLabel = "Rabatt"

const defaultCorrectionReason = "Vertragskorrektur"

// MaxAmount caps custom item totals and the adjusted contract total, in euros.
const MaxAmount = 10_000_000

// CustomItem is an editor-added position; its total is Price * Quantity.
type CustomItem struct {
	Label    string `json:"label"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

type Discount struct {
	Type   DiscountType `json:"type"`
	Value  float64      `json:"value"`
	Reason string       `json:"reason,omitempty"`
}

// Adjustment is the post-signature change requested by an editor.
type Adjustment struct {
	CustomItems []CustomItem `json:"custom_items"`
	Discount    *Discount    `json:"discount,omitempty"`
	Reason      string       `json:"reason,omitempty"`
}

// Correction is the audit record appended for every post-signature price change.
type Correction struct {
	ID                  string    `json:"id"`
	CorrectedAt         time.Time `json:"corrected_at"`
	Reason              string    `json:"reason"`
	PreviousTotal       int       `json:"previous_total"`
	NewTotal            int       `json:"new_total"`
	PreviousContractURL string    `json:"previous_contract_url,omitempty"`
	NewContractURL      string    `json:"new_contract_url,omitempty"`
}

// Validate checks item labels, quantities and the discount shape. Item totals
// and their sum may not exceed MaxAmount.
func (a Adjustment) Validate() error {
	sum := 0
	for _, it := range a.CustomItems {
		if strings.TrimSpace(it.Label) == "" || it.Price < 0 || it.Quantity < 0 {
			return ErrInvalidLineItem
		}
		if it.Price > MaxAmount || it.Quantity > MaxAmount {
			return ErrInvalidLineItem
		}
		sum += it.Price * it.quantity()
		if sum > MaxAmount {
			return ErrInvalidLineItem
		}
	}
	if d := a.Discount; d != nil {
		switch d.Type {
		case DiscountPercentage:
			if d.Value < 0 || d.Value > 100 || math.IsNaN(d.Value) {
				return ErrInvalidDiscount
			}
		case DiscountFixed:
			if d.Value < 0 || math.IsNaN(d.Value) || math.IsInf(d.Value, 0) {
				return ErrInvalidDiscount
			}
		default:
			return ErrInvalidDiscount
		}
	}
	return nil
}

// ApplyAdjustment recomputes a signed price from its stored base, the custom
// items and the discount. The returned correction has no ID and no contract
// URLs; the caller fills them once the new contract exists.
func ApplyAdjustment(prev OnboardingPricing, adj Adjustment, at time.Time) (OnboardingPricing, Correction, error) {
	if err := adj.Validate(); err != nil {
		return OnboardingPricing{}, Correction{}, err
	}

	baseTotal, baseLines := prev.BaseTotal, prev.BaseBreakdown
	if len(baseLines) == 0 {
		// documents signed before the base was stored
		baseTotal, baseLines = prev.TotalPrice, prev.Breakdown
	}

	lines := cloneLines(baseLines)
	additional := 0
	for _, it := range adj.CustomItems {
		qty := it.quantity()
		itemTotal := it.Price * qty
		additional += itemTotal
		if baseTotal+additional > MaxAmount {
			return OnboardingPricing{}, Correction{}, ErrInvalidLineItem
		}
		lines = append(lines, LineItem{Label: strings.TrimSpace(it.Label), Price: itemTotal, Quantity: qty})
	}

	total := baseTotal + additional
	if d := adj.Discount; d != nil {
		amount := discountAmount(total, *d)
		if amount > 0 {
			label := DiscountLabel
			if r := strings.TrimSpace(d.Reason); r != "" {
				label += ": " + r
			}
			lines = append(lines, LineItem{Label: label, Price: -amount})
			total -= amount
		}
	}

	deposit, remaining := SplitDeposit(total, prev.DepositPercentage)
	next := OnboardingPricing{
		TotalPrice:        total,
		DepositPercentage: prev.DepositPercentage,
		DepositAmount:     deposit,
		RemainingAmount:   remaining,
		Breakdown:         lines,
		EstimatedDays:     prev.EstimatedDays,
		BaseTotal:         baseTotal,
		BaseBreakdown:     cloneLines(baseLines),
	}

	return next, Correction{
		CorrectedAt:   at.UTC(),
		Reason:        correctionReason(adj),
		PreviousTotal: prev.TotalPrice,
		NewTotal:      total,
	}, nil
}

// discountAmount never exceeds the running total. The cap is applied before
// the float is converted so a huge fixed value cannot wrap.
func discountAmount(total int, d Discount) int {
	var raw float64
	switch d.Type {
	case DiscountPercentage:
		raw = float64(total) * d.Value / 100
	case DiscountFixed:
		raw = d.Value
	}
	raw = math.Round(raw)
	switch {
	case raw >= float64(total):
		return total
	case raw <= 0:
		return 0
	}
	return int(raw)
}

// quantity treats an unset quantity as one piece.
func (it CustomItem) quantity() int {
	if it.Quantity == 0 {
		return 1
	}
	return it.Quantity
}

func correctionReason(adj Adjustment) string {
	if r := strings.TrimSpace(adj.Reason); r != "" {
		return r
	}
	if adj.Discount != nil {
		if r := strings.TrimSpace(adj.Discount.Reason); r != "" {
			return r
		}
	}
	return defaultCorrectionReason
}
