package interfaces

import (
	"context"

	"studio_api/internal/domain/entities"
)

// IDepositPaymentRepository keeps every deposit attempt of an onboarding.
// GetLatestByOnboardingID returns an empty payment when there is none.
type IDepositPaymentRepository interface {
	Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error)
	GetLatestByOnboardingID(ctx context.Context, onboardingID string) (entities.DepositPayment, error)
	ListByOnboardingID(ctx context.Context, onboardingID string) ([]entities.DepositPayment, error)
}
