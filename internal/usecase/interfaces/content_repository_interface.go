package interfaces

import (
	"context"

	"studio_api/internal/domain/entities"
)

// IContentRepository reads editorial content: company data, contract clauses
// and the public site sections.
type IContentRepository interface {
	Company(ctx context.Context) (entities.CompanyInfo, error)
	Clauses(ctx context.Context) ([]entities.ContractClause, error)
	Services(ctx context.Context) ([]entities.ServiceEntry, error)
	FAQ(ctx context.Context) ([]entities.FAQEntry, error)
	Testimonials(ctx context.Context) ([]entities.Testimonial, error)
	Portfolio(ctx context.Context) ([]entities.PortfolioItem, error)
}
