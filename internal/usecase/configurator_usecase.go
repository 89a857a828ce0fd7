package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"studio_api/internal/domain/entities"
	"studio_api/internal/domain/pricing"
	"studio_api/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidLead   = errors.New("name and a valid email are required")
)

// LeadContact is the person behind a contact or configurator request.
type LeadContact struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Message string
}

func (c LeadContact) normalized() (LeadContact, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Company = strings.TrimSpace(c.Company)
	c.Message = strings.TrimSpace(c.Message)
	if c.Name == "" || !strings.Contains(c.Email, "@") {
		return c, ErrInvalidLead
	}
	return c, nil
}

// IConfiguratorUseCase prices configurator states and turns them into leads.
type IConfiguratorUseCase interface {
	Estimate(ctx context.Context, in pricing.ConfigInput) (pricing.PriceResult, error)
	SubmitRequest(ctx context.Context, contact LeadContact, in pricing.ConfigInput) (entities.Inquiry, error)
}

// ConfiguratorUseCase works without an inquiry store; leads are then only mailed.
type ConfiguratorUseCase struct {
	repo     interfaces.IInquiryRepository
	notifier interfaces.INotifier
	log      *zap.Logger
}

var _ IConfiguratorUseCase = (*ConfiguratorUseCase)(nil)

func NewConfiguratorUseCase(repo interfaces.IInquiryRepository, notifier interfaces.INotifier, log *zap.Logger) *ConfiguratorUseCase {
	return &ConfiguratorUseCase{repo: repo, notifier: notifier, log: log.Named("configurator.usecase")}
}

func (u *ConfiguratorUseCase) Estimate(_ context.Context, in pricing.ConfigInput) (pricing.PriceResult, error) {
	res, err := pricing.CalculatePrice(in)
	if err != nil {
		return pricing.PriceResult{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return res, nil
}

// SubmitRequest recomputes the estimate server-side; client-sent prices are never trusted.
func (u *ConfiguratorUseCase) SubmitRequest(ctx context.Context, contact LeadContact, in pricing.ConfigInput) (entities.Inquiry, error) {
	contact, err := contact.normalized()
	if err != nil {
		return entities.Inquiry{}, err
	}
	res, err := u.Estimate(ctx, in)
	if err != nil {
		return entities.Inquiry{}, err
	}

	inq := entities.Inquiry{
		ID:        uuid.NewString(),
		Kind:      entities.InquiryKindConfigurator,
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Company:   contact.Company,
		Message:   contact.Message,
		Config:    &in,
		Estimate:  &res,
		CreatedAt: time.Now().UTC(),
	}
	u.log.Info("submit start", zap.String("inquiry_id", inq.ID), zap.Int("total_price", res.TotalPrice))
	return storeAndNotify(ctx, u.repo, u.notifier, u.log, inq)
}

func storeAndNotify(ctx context.Context, repo interfaces.IInquiryRepository, notifier interfaces.INotifier, log *zap.Logger, inq entities.Inquiry) (entities.Inquiry, error) {
	if repo != nil {
		created, err := repo.Create(ctx, inq)
		if err != nil {
			log.Error("inquiry store failed", zap.String("inquiry_id", inq.ID), zap.Error(err))
			return entities.Inquiry{}, fmt.Errorf("store inquiry: %w", err)
		}
		inq = created
	} else {
		log.Warn("inquiry store not configured, mail only", zap.String("inquiry_id", inq.ID))
	}

	if notifier != nil {
		if err := notifier.InquiryReceived(ctx, inq); err != nil {
			log.Error("inquiry notification failed", zap.String("inquiry_id", inq.ID), zap.Error(err))
		}
	}
	log.Info("inquiry accepted", zap.String("inquiry_id", inq.ID), zap.String("kind", string(inq.Kind)))
	return inq, nil
}
