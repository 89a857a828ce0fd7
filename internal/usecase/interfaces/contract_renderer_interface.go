package interfaces

import (
	"context"

	"studio_api/internal/domain/entities"
)

// IContractRenderer turns contract data into a PDF document.
type IContractRenderer interface {
	Render(ctx context.Context, doc entities.ContractDocument) ([]byte, error)
}
