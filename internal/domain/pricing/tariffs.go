package pricing

import "errors"

var (
	ErrUnknownVideoType         = errors.New("unknown video type")
	ErrUnknownDuration          = errors.New("unknown duration")
	ErrUnknownComplexity        = errors.New("unknown complexity")
	ErrInvalidDepositPercentage = errors.New("deposit percentage must be between 0 and 100")
	ErrInvalidLineItem          = errors.New("invalid line item")
	ErrInvalidDiscount          = errors.New("invalid discount")
)

type VideoType string

const (
	VideoTypeImagefilm  VideoType = "imagefilm"
	VideoTypeRecruiting VideoType = "recruiting"
	VideoTypeProdukt    VideoType = "produkt"
	VideoTypeSocial     VideoType = "social"
	VideoTypeEvent      VideoType = "event"
)

type Duration string

const (
	DurationShort  Duration = "short"
	DurationMedium Duration = "medium"
	DurationLong   Duration = "long"
)

type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityStandard Complexity = "standard"
	ComplexityPremium  Complexity = "premium"
)

// Extra identifies an optional flat-fee add-on.
type Extra string

const (
	ExtraDrone           Extra = "drone"
	ExtraMusic           Extra = "music"
	ExtraSubtitles       Extra = "subtitles"
	ExtraSocialCuts      Extra = "socialCuts"
	ExtraExpressDelivery Extra = "expressDelivery"
)

// ExpressDeliveryDays overrides the complexity lookup when express delivery is booked.
const ExpressDeliveryDays = 5

// tariff is the published base price in EUR per video type and complexity.
var tariff = map[VideoType]map[Complexity]int{
	VideoTypeImagefilm:  {ComplexitySimple: 2500, ComplexityStandard: 3800, ComplexityPremium: 6500},
	VideoTypeRecruiting: {ComplexitySimple: 2200, ComplexityStandard: 3400, ComplexityPremium: 5800},
	VideoTypeProdukt:    {ComplexitySimple: 1800, ComplexityStandard: 2900, ComplexityPremium: 4900},
	VideoTypeSocial:     {ComplexitySimple: 900, ComplexityStandard: 1500, ComplexityPremium: 2600},
	VideoTypeEvent:      {ComplexitySimple: 1500, ComplexityStandard: 2500, ComplexityPremium: 4200},
}

// durationTenths holds the duration multipliers in tenths (1.0 / 1.4 / 1.8)
// so the multiplication rounds exactly.
var durationTenths = map[Duration]int{
	DurationShort:  10,
	DurationMedium: 14,
	DurationLong:   18,
}

var baseDays = map[Complexity]int{
	ComplexitySimple:   10,
	ComplexityStandard: 15,
	ComplexityPremium:  25,
}

var extraFees = map[Extra]int{
	ExtraDrone:           400,
	ExtraMusic:           250,
	ExtraSubtitles:       150,
	ExtraSocialCuts:      300,
	ExtraExpressDelivery: 500,
}

var videoTypeLabels = map[VideoType]string{
	VideoTypeImagefilm:  "Imagefilm",
	VideoTypeRecruiting: "Recruiting-Video",
	VideoTypeProdukt:    "Produktvideo",
	VideoTypeSocial:     "Social-Media-Clip",
	VideoTypeEvent:      "Eventfilm",
}

var complexityLabels = map[Complexity]string{
	ComplexitySimple:   "Einfach",
	ComplexityStandard: "Standard",
	ComplexityPremium:  "Premium",
}

var extraLabels = map[Extra]string{
	ExtraDrone:           "Drohnenaufnahmen",
	ExtraMusic:           "Lizenzmusik",
	ExtraSubtitles:       "Untertitel",
	ExtraSocialCuts:      "Social-Media-Schnittversionen",
	ExtraExpressDelivery: "Express-Lieferung",
}

// ExtrasOrder is the order in which selected extras appear in a breakdown.
var ExtrasOrder = []Extra{ExtraDrone, ExtraMusic, ExtraSubtitles, ExtraSocialCuts, ExtraExpressDelivery}

// VideoTypes lists every supported video type in display order.
var VideoTypes = []VideoType{VideoTypeImagefilm, VideoTypeRecruiting, VideoTypeProdukt, VideoTypeSocial, VideoTypeEvent}

var Durations = []Duration{DurationShort, DurationMedium, DurationLong}

var Complexities = []Complexity{ComplexitySimple, ComplexityStandard, ComplexityPremium}

// BasePrice returns the tariff for a video type and complexity.
func BasePrice(v VideoType, c Complexity) (int, error) {
	row, ok := tariff[v]
	if !ok {
		return 0, ErrUnknownVideoType
	}
	price, ok := row[c]
	if !ok {
		return 0, ErrUnknownComplexity
	}
	return price, nil
}

// ExtraFee returns the flat fee of an extra.
func ExtraFee(e Extra) (int, bool) {
	fee, ok := extraFees[e]
	return fee, ok
}

func ExtraLabel(e Extra) string {
	return extraLabels[e]
}

func (v VideoType) Valid() bool {
	_, ok := tariff[v]
	return ok
}

func (d Duration) Valid() bool {
	_, ok := durationTenths[d]
	return ok
}

func (c Complexity) Valid() bool {
	_, ok := baseDays[c]
	return ok
}

func (v VideoType) Label() string {
	return videoTypeLabels[v]
}

func (c Complexity) Label() string {
	return complexityLabels[c]
}

// applyDuration multiplies a base price by the duration factor, rounding half up.
func applyDuration(base int, d Duration) (int, error) {
	tenths, ok := durationTenths[d]
	if !ok {
		return 0, ErrUnknownDuration
	}
	return roundDiv(base*tenths, 10), nil
}

func estimatedDays(c Complexity, express bool) (int, error) {
	days, ok := baseDays[c]
	if !ok {
		return 0, ErrUnknownComplexity
	}
	if express {
		return ExpressDeliveryDays, nil
	}
	return days, nil
}

// roundDiv divides a non-negative numerator and rounds half up.
func roundDiv(num, den int) int {
	return (num*2 + den) / (den * 2)
}

// Percent returns round(amount * pct / 100) with half-up rounding for whole percents.
func Percent(amount, pct int) int {
	return roundDiv(amount*pct, 100)
}
