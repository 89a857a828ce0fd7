package interfaces

import (
	"context"

	"studio_api/internal/domain/wizard"
)

// IDraftStore keeps onboarding wizard drafts between requests.
// Get returns nil and no error for an unknown or expired draft.
type IDraftStore interface {
	Save(ctx context.Context, d *wizard.Draft) error
	Get(ctx context.Context, id string) (*wizard.Draft, error)
}
