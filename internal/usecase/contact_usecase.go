package usecase

import (
	"context"
	"errors"
	"time"

	"studio_api/internal/domain/entities"
	"studio_api/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCaptchaFailed      = errors.New("captcha verification failed")
	ErrCaptchaUnavailable = errors.New("captcha verification unavailable")
	ErrEmptyMessage       = errors.New("message is required")
)

type IContactUseCase interface {
	Submit(ctx context.Context, contact LeadContact, captchaToken, remoteIP string) (entities.Inquiry, error)
}

type ContactUseCase struct {
	repo     interfaces.IInquiryRepository
	notifier interfaces.INotifier
	captcha  interfaces.ICaptchaVerifier
	log      *zap.Logger
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(repo interfaces.IInquiryRepository, notifier interfaces.INotifier, captcha interfaces.ICaptchaVerifier, log *zap.Logger) *ContactUseCase {
	return &ContactUseCase{repo: repo, notifier: notifier, captcha: captcha, log: log.Named("contact.usecase")}
}

func (u *ContactUseCase) Submit(ctx context.Context, contact LeadContact, captchaToken, remoteIP string) (entities.Inquiry, error) {
	contact, err := contact.normalized()
	if err != nil {
		return entities.Inquiry{}, err
	}
	if contact.Message == "" {
		return entities.Inquiry{}, ErrEmptyMessage
	}

	if u.captcha != nil {
		ok, err := u.captcha.Verify(ctx, captchaToken, remoteIP)
		if err != nil {
			u.log.Error("captcha verification error", zap.Error(err))
			return entities.Inquiry{}, ErrCaptchaUnavailable
		}
		if !ok {
			return entities.Inquiry{}, ErrCaptchaFailed
		}
	}

	inq := entities.Inquiry{
		ID:        uuid.NewString(),
		Kind:      entities.InquiryKindContact,
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Company:   contact.Company,
		Message:   contact.Message,
		CreatedAt: time.Now().UTC(),
	}
	u.log.Info("submit start", zap.String("inquiry_id", inq.ID))
	return storeAndNotify(ctx, u.repo, u.notifier, u.log, inq)
}
