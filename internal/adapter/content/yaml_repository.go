// Package content serves the editorial copy of the site from YAML.
package content

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"studio_api/internal/domain/entities"
	"studio_api/internal/usecase/interfaces"

	"gopkg.in/yaml.v3"
)

const defaultDepositPercentage = 50

//go:embed default_content.yaml
var defaultContent []byte

type document struct {
	Company      entities.CompanyInfo      `yaml:"company"`
	Clauses      []entities.ContractClause `yaml:"clauses"`
	Services     []entities.ServiceEntry   `yaml:"services"`
	FAQ          []entities.FAQEntry       `yaml:"faq"`
	Testimonials []entities.Testimonial    `yaml:"testimonials"`
	Portfolio    []entities.PortfolioItem  `yaml:"portfolio"`
}

// YAMLRepository holds the built-in content, overridden section by section by
// an optional file. The file is read once at construction.
type YAMLRepository struct {
	doc document
}

var _ interfaces.IContentRepository = (*YAMLRepository)(nil)

func NewYAMLRepository(path string) (*YAMLRepository, error) {
	var base document
	if err := yaml.Unmarshal(defaultContent, &base); err != nil {
		return nil, fmt.Errorf("parse built-in content: %w", err)
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read content file: %w", err)
		}
		if err == nil {
			var override document
			if err := yaml.Unmarshal(b, &override); err != nil {
				return nil, fmt.Errorf("parse content file %s: %w", path, err)
			}
			base = merge(base, override)
		}
	}

	if p := base.Company.DepositPercentage; p <= 0 || p > 100 {
		base.Company.DepositPercentage = defaultDepositPercentage
	}
	return &YAMLRepository{doc: base}, nil
}

func (r *YAMLRepository) Company(context.Context) (entities.CompanyInfo, error) {
	return r.doc.Company, nil
}

func (r *YAMLRepository) Clauses(context.Context) ([]entities.ContractClause, error) {
	return append([]entities.ContractClause(nil), r.doc.Clauses...), nil
}

func (r *YAMLRepository) Services(context.Context) ([]entities.ServiceEntry, error) {
	return append([]entities.ServiceEntry(nil), r.doc.Services...), nil
}

func (r *YAMLRepository) FAQ(context.Context) ([]entities.FAQEntry, error) {
	return append([]entities.FAQEntry(nil), r.doc.FAQ...), nil
}

func (r *YAMLRepository) Testimonials(context.Context) ([]entities.Testimonial, error) {
	return append([]entities.Testimonial(nil), r.doc.Testimonials...), nil
}

func (r *YAMLRepository) Portfolio(context.Context) ([]entities.PortfolioItem, error) {
	return append([]entities.PortfolioItem(nil), r.doc.Portfolio...), nil
}

// merge lets b override a: non-empty company fields and whole non-empty lists.
func merge(a, b document) document {
	out := a
	c := &out.Company
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&c.Name, b.Company.Name},
		{&c.Owner, b.Company.Owner},
		{&c.Street, b.Company.Street},
		{&c.ZipCity, b.Company.ZipCity},
		{&c.Email, b.Company.Email},
		{&c.Phone, b.Company.Phone},
		{&c.TaxID, b.Company.TaxID},
		{&c.IBAN, b.Company.IBAN},
	} {
		if f.src != "" {
			*f.dst = f.src
		}
	}
	if b.Company.DepositPercentage != 0 {
		c.DepositPercentage = b.Company.DepositPercentage
	}
	if len(b.Clauses) > 0 {
		out.Clauses = b.Clauses
	}
	if len(b.Services) > 0 {
		out.Services = b.Services
	}
	if len(b.FAQ) > 0 {
		out.FAQ = b.FAQ
	}
	if len(b.Testimonials) > 0 {
		out.Testimonials = b.Testimonials
	}
	if len(b.Portfolio) > 0 {
		out.Portfolio = b.Portfolio
	}
	return out
}
