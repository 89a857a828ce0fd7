package pricing

// OnboardingPricing is the firm price of a signed onboarding.
//
// BaseTotal and BaseBreakdown keep the price as signed, before any
// contract adjustment, so adjustments never compound.
type OnboardingPricing struct {
	TotalPrice        int        `json:"total_price"`
	DepositPercentage int        `json:"deposit_percentage"`
	DepositAmount     int        `json:"deposit_amount"`
	RemainingAmount   int        `json:"remaining_amount"`
	Breakdown         []LineItem `json:"breakdown"`
	EstimatedDays     int        `json:"estimated_days"`
	BaseTotal         int        `json:"base_total"`
	BaseBreakdown     []LineItem `json:"base_breakdown"`
}

// CalculateOnboardingPrice computes the firm onboarding price for a configuration
// and a deposit percentage set by business policy.
func CalculateOnboardingPrice(in ConfigInput, depositPercentage int) (OnboardingPricing, error) {
	if depositPercentage < 0 || depositPercentage > 100 {
		return OnboardingPricing{}, ErrInvalidDepositPercentage
	}
	lines, base, extras, err := priceLines(in)
	if err != nil {
		return OnboardingPricing{}, err
	}
	days, err := estimatedDays(in.Complexity, in.Extras.ExpressDelivery)
	if err != nil {
		return OnboardingPricing{}, err
	}

	total := base + extras
	deposit, remaining := SplitDeposit(total, depositPercentage)
	return OnboardingPricing{
		TotalPrice:        total,
		DepositPercentage: depositPercentage,
		DepositAmount:     deposit,
		RemainingAmount:   remaining,
		Breakdown:         lines,
		EstimatedDays:     days,
		BaseTotal:         total,
		BaseBreakdown:     cloneLines(lines),
	}, nil
}

// SplitDeposit rounds the deposit and returns the exact complement as remaining amount.
func SplitDeposit(total, depositPercentage int) (deposit, remaining int) {
	deposit = Percent(total, depositPercentage)
	return deposit, total - deposit
}

func cloneLines(in []LineItem) []LineItem {
	if in == nil {
		return nil
	}
	out := make([]LineItem, len(in))
	copy(out, in)
	return out
}
