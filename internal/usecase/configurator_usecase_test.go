package usecase

import (
	"context"
	"errors"
	"testing"

	"studio_api/internal/domain/entities"
	"studio_api/internal/domain/pricing"
	mock_interfaces "studio_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func validConfig() pricing.ConfigInput {
	return pricing.ConfigInput{
		VideoType:  pricing.VideoTypeImagefilm,
		Duration:   pricing.DurationMedium,
		Complexity: pricing.ComplexityStandard,
		Extras:     pricing.Extras{Drone: true},
	}
}

func TestConfiguratorUseCase_Estimate(t *testing.T) {
	uc := NewConfiguratorUseCase(nil, nil, zap.NewNop())

	res, err := uc.Estimate(context.Background(), validConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 3800 * 1.4 = 5320, + drone 400
	if res.TotalPrice != 5720 {
		t.Fatalf("expected 5720, got %d", res.TotalPrice)
	}

	_, err = uc.Estimate(context.Background(), pricing.ConfigInput{VideoType: "kino"})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestConfiguratorUseCase_SubmitRequest(t *testing.T) {
	t.Run("invalid lead", func(t *testing.T) {
		uc := NewConfiguratorUseCase(nil, nil, zap.NewNop())
		_, err := uc.SubmitRequest(context.Background(), LeadContact{Name: "Erika", Email: "nope"}, validConfig())
		if !errors.Is(err, ErrInvalidLead) {
			t.Fatalf("expected ErrInvalidLead, got %v", err)
		}
	})

	t.Run("stores and notifies with server price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewConfiguratorUseCase(repo, notifier, zap.NewNop())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in entities.Inquiry) (entities.Inquiry, error) {
			if in.Kind != entities.InquiryKindConfigurator || in.Estimate == nil || in.Estimate.TotalPrice != 5720 {
				t.Fatalf("unexpected inquiry: %+v", in)
			}
			return in, nil
		})
		notifier.EXPECT().InquiryReceived(gomock.Any(), gomock.Any()).Return(errors.New("mail down"))

		inq, err := uc.SubmitRequest(context.Background(), LeadContact{Name: " Erika ", Email: "erika@example.com"}, validConfig())
		if err != nil {
			t.Fatalf("mail failure must not fail the request: %v", err)
		}
		if inq.Name != "Erika" || inq.ID == "" {
			t.Fatalf("unexpected inquiry %+v", inq)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		uc := NewConfiguratorUseCase(repo, nil, zap.NewNop())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Inquiry{}, errors.New("db"))

		if _, err := uc.SubmitRequest(context.Background(), LeadContact{Name: "Erika", Email: "erika@example.com"}, validConfig()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestContactUseCase_Submit(t *testing.T) {
	lead := LeadContact{Name: "Erika", Email: "erika@example.com", Message: "Wir planen einen Imagefilm."}

	t.Run("empty message", func(t *testing.T) {
		uc := NewContactUseCase(nil, nil, nil, zap.NewNop())
		_, err := uc.Submit(context.Background(), LeadContact{Name: "Erika", Email: "erika@example.com"}, "", "")
		if !errors.Is(err, ErrEmptyMessage) {
			t.Fatalf("expected ErrEmptyMessage, got %v", err)
		}
	})

	t.Run("captcha rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		captcha := mock_interfaces.NewMockICaptchaVerifier(ctrl)
		uc := NewContactUseCase(nil, nil, captcha, zap.NewNop())

		captcha.EXPECT().Verify(gomock.Any(), "tok", "1.2.3.4").Return(false, nil)

		_, err := uc.Submit(context.Background(), lead, "tok", "1.2.3.4")
		if !errors.Is(err, ErrCaptchaFailed) {
			t.Fatalf("expected ErrCaptchaFailed, got %v", err)
		}
	})

	t.Run("captcha error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		captcha := mock_interfaces.NewMockICaptchaVerifier(ctrl)
		uc := NewContactUseCase(nil, nil, captcha, zap.NewNop())

		captcha.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("timeout"))

		_, err := uc.Submit(context.Background(), lead, "tok", "")
		if !errors.Is(err, ErrCaptchaUnavailable) {
			t.Fatalf("expected ErrCaptchaUnavailable, got %v", err)
		}
	})

	t.Run("success without store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		captcha := mock_interfaces.NewMockICaptchaVerifier(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewContactUseCase(nil, notifier, captcha, zap.NewNop())

		captcha.EXPECT().Verify(gomock.Any(), "tok", "").Return(true, nil)
		notifier.EXPECT().InquiryReceived(gomock.Any(), gomock.Any()).Return(nil)

		inq, err := uc.Submit(context.Background(), lead, "tok", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inq.Kind != entities.InquiryKindContact {
			t.Fatalf("unexpected kind %q", inq.Kind)
		}
	})
}

func TestContentUseCase_Section(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIContentRepository(ctrl)
	uc := NewContentUseCase(repo)

	repo.EXPECT().FAQ(gomock.Any()).Return([]entities.FAQEntry{{Question: "Wie lange?", Answer: "15 Tage"}}, nil)

	got, err := uc.Section(context.Background(), ContentFAQ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if faq, ok := got.([]entities.FAQEntry); !ok || len(faq) != 1 {
		t.Fatalf("unexpected section %#v", got)
	}

	if _, err := uc.Section(context.Background(), "company"); !errors.Is(err, ErrUnknownContentSection) {
		t.Fatalf("expected ErrUnknownContentSection, got %v", err)
	}
}
