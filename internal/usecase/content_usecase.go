package usecase

import (
	"context"
	"errors"

	"studio_api/internal/usecase/interfaces"
)

var ErrUnknownContentSection = errors.New("unknown content section")

// Public content sections served to the site.
const (
	ContentServices     = "services"
	ContentFAQ          = "faq"
	ContentTestimonials = "testimonials"
	ContentPortfolio    = "portfolio"
)

type IContentUseCase interface {
	Section(ctx context.Context, name string) (any, error)
}

type ContentUseCase struct {
	repo interfaces.IContentRepository
}

var _ IContentUseCase = (*ContentUseCase)(nil)

func NewContentUseCase(repo interfaces.IContentRepository) *ContentUseCase {
	return &ContentUseCase{repo: repo}
}

func (u *ContentUseCase) Section(ctx context.Context, name string) (any, error) {
	var (
		items any
		err   error
	)
	switch name {
	case ContentServices:
		items, err = u.repo.Services(ctx)
	case ContentFAQ:
		items, err = u.repo.FAQ(ctx)
	case ContentTestimonials:
		items, err = u.repo.Testimonials(ctx)
	case ContentPortfolio:
		items, err = u.repo.Portfolio(ctx)
	default:
		return nil, ErrUnknownContentSection
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}
