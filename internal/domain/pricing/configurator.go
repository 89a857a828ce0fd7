package pricing

import "fmt"

// Extras are the independently togglable add-ons of a configuration.
type Extras struct {
	Drone           bool `json:"drone"`
	Music           bool `json:"music"`
	Subtitles       bool `json:"subtitles"`
	SocialCuts      bool `json:"social_cuts"`
	ExpressDelivery bool `json:"express_delivery"`
}

// Selected returns the booked extras in breakdown order.
func (e Extras) Selected() []Extra {
	flags := map[Extra]bool{
		ExtraDrone:           e.Drone,
		ExtraMusic:           e.Music,
		ExtraSubtitles:       e.Subtitles,
		ExtraSocialCuts:      e.SocialCuts,
		ExtraExpressDelivery: e.ExpressDelivery,
	}
	out := make([]Extra, 0, len(ExtrasOrder))
	for _, x := range ExtrasOrder {
		if flags[x] {
			out = append(out, x)
		}
	}
	return out
}

// ConfigInput is one configurator form state.
type ConfigInput struct {
	VideoType  VideoType  `json:"video_type"`
	Duration   Duration   `json:"duration"`
	Complexity Complexity `json:"complexity"`
	Extras     Extras     `json:"extras"`
}

// Validate reports the first enum field that is out of range.
func (in ConfigInput) Validate() error {
	switch {
	case !in.VideoType.Valid():
		return ErrUnknownVideoType
	case !in.Duration.Valid():
		return ErrUnknownDuration
	case !in.Complexity.Valid():
		return ErrUnknownComplexity
	}
	return nil
}

// LineItem is one labeled position of a breakdown. Discounts carry a negative price.
type LineItem struct {
	Label    string `json:"label"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity,omitempty"`
}

type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// PriceResult is the non-binding configurator estimate.
type PriceResult struct {
	BasePrice     int        `json:"base_price"`
	ExtrasPrice   int        `json:"extras_price"`
	TotalPrice    int        `json:"total_price"`
	PriceRange    PriceRange `json:"price_range"`
	Breakdown     []LineItem `json:"breakdown"`
	EstimatedDays int        `json:"estimated_days"`
}

// CalculatePrice computes the configurator estimate. It has no side effects.
func CalculatePrice(in ConfigInput) (PriceResult, error) {
	lines, base, extras, err := priceLines(in)
	if err != nil {
		return PriceResult{}, err
	}
	days, err := estimatedDays(in.Complexity, in.Extras.ExpressDelivery)
	if err != nil {
		return PriceResult{}, err
	}

	total := base + extras
	return PriceResult{
		BasePrice:   base,
		ExtrasPrice: extras,
		TotalPrice:  total,
		PriceRange: PriceRange{
			Min: roundDiv(total*9, 10),
			Max: roundDiv(total*11, 10),
		},
		Breakdown:     lines,
		EstimatedDays: days,
	}, nil
}

// priceLines builds the shared base + extras breakdown used by both flows.
func priceLines(in ConfigInput) (lines []LineItem, base int, extras int, err error) {
	if err := in.Validate(); err != nil {
		return nil, 0, 0, err
	}
	tariffPrice, err := BasePrice(in.VideoType, in.Complexity)
	if err != nil {
		return nil, 0, 0, err
	}
	base, err = applyDuration(tariffPrice, in.Duration)
	if err != nil {
		return nil, 0, 0, err
	}

	selected := in.Extras.Selected()
	lines = make([]LineItem, 0, 1+len(selected))
	lines = append(lines, LineItem{Label: BaseLabel(in.VideoType, in.Complexity), Price: base})
	for _, x := range selected {
		fee := extraFees[x]
		extras += fee
		lines = append(lines, LineItem{Label: extraLabels[x], Price: fee})
	}
	return lines, base, extras, nil
}

// BaseLabel is the breakdown label of the base position, e.g. "Imagefilm (Standard)".
func BaseLabel(v VideoType, c Complexity) string {
	return fmt.Sprintf("%s (%s)", v.Label(), c.Label())
}
