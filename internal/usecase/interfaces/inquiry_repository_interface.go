package interfaces

import (
	"context"

	"studio_api/internal/domain/entities"
)

// IInquiryRepository persists contact and configurator leads.
type IInquiryRepository interface {
	Create(ctx context.Context, in entities.Inquiry) (entities.Inquiry, error)
	GetByID(ctx context.Context, id string) (entities.Inquiry, error)
}
