package interfaces

import (
	"context"
	"errors"
	"time"

	"studio_api/internal/domain/entities"
	"studio_api/internal/domain/pricing"
)

// ErrVersionConflict is returned when a conditional write lost against a
// concurrent writer (version mismatch or claim already held).
var ErrVersionConflict = errors.New("onboarding version conflict")

// IOnboardingRepository abstracts persistence of signed onboarding documents.
//
// Not-found lookups return a zero Onboarding and a nil error.
// Every write bumps Version; the regeneration writes are conditional on it.
type IOnboardingRepository interface {
	Create(ctx context.Context, o entities.Onboarding) (entities.Onboarding, error)
	GetByID(ctx context.Context, id string) (entities.Onboarding, error)
	UpdateStatus(ctx context.Context, id string, status entities.OnboardingStatus) (entities.Onboarding, error)
	RequestRegeneration(ctx context.Context, id string, adj pricing.Adjustment) (entities.Onboarding, error)
	ClaimRegeneration(ctx context.Context, id string, expectedVersion int64, now time.Time) (entities.Onboarding, error)
	ReleaseRegeneration(ctx context.Context, id string, expectedVersion int64) error
	CommitRevision(ctx context.Context, id string, expectedVersion int64, rev entities.ContractRevision, now time.Time) (entities.Onboarding, error)
}
