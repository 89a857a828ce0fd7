package interfaces

import (
	"context"

	"studio_api/internal/domain/entities"
	"studio_api/internal/domain/pricing"
)

// INotifier sends the transactional mails of the site. Callers log failures
// and never fail the request because of them.
type INotifier interface {
	InquiryReceived(ctx context.Context, in entities.Inquiry) error
	OnboardingSubmitted(ctx context.Context, o entities.Onboarding) error
	ContractRegenerated(ctx context.Context, o entities.Onboarding, c pricing.Correction) error
}
