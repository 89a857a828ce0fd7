package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"studio_api/internal/domain/entities"
	"studio_api/internal/domain/pricing"
	"studio_api/internal/usecase/interfaces"
	mock_interfaces "studio_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type regenerationMocks struct {
	repo     *mock_interfaces.MockIOnboardingRepository
	content  *mock_interfaces.MockIContentRepository
	renderer *mock_interfaces.MockIContractRenderer
	storage  *mock_interfaces.MockIObjectStorage
	notifier *mock_interfaces.MockINotifier
}

var regenNow = time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

func newRegenerationUseCase(t *testing.T) (*ContractRegenerationUseCase, regenerationMocks) {
	ctrl := gomock.NewController(t)
	m := regenerationMocks{
		repo:     mock_interfaces.NewMockIOnboardingRepository(ctrl),
		content:  mock_interfaces.NewMockIContentRepository(ctrl),
		renderer: mock_interfaces.NewMockIContractRenderer(ctrl),
		storage:  mock_interfaces.NewMockIObjectStorage(ctrl),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
	}
	uc := NewContractRegenerationUseCase(m.repo, m.content, m.renderer, m.storage, m.notifier, zap.NewNop())
	uc.now = func() time.Time { return regenNow }
	return uc, m
}

func signedOnboarding() entities.Onboarding {
	return entities.Onboarding{
		ID:             "onb-1",
		Status:         entities.OnboardingStatusSigned,
		Client:         entities.Client{Name: "Erika", Email: "erika@example.com"},
		SignatureKey:   "signatures/onb-1/s.png",
		ContractKey:    "contracts/onb-1/a.pdf",
		ContractPDFURL: "https://cdn/contracts/onb-1/a.pdf",
		Pricing: pricing.OnboardingPricing{
			TotalPrice: 5720, DepositPercentage: 50, DepositAmount: 2860, RemainingAmount: 2860,
			Breakdown:     []pricing.LineItem{{Label: "Imagefilm", Price: 5720}},
			BaseTotal:     5720,
			BaseBreakdown: []pricing.LineItem{{Label: "Imagefilm", Price: 5720}},
		},
		Adjustment: &pricing.Adjustment{
			CustomItems: []pricing.CustomItem{{Label: "Zusatzdrehtag", Price: 490, Quantity: 1}},
			Reason:      "Zusatzdrehtag",
		},
		RegenerateRequested: true,
		Version:             3,
	}
}

func TestContractRegenerationUseCase_RequestAdjustment(t *testing.T) {
	t.Run("invalid adjustment", func(t *testing.T) {
		uc, _ := newRegenerationUseCase(t)
		adj := pricing.Adjustment{CustomItems: []pricing.CustomItem{{Label: " ", Price: 10}}}
		if _, err := uc.RequestAdjustment(context.Background(), "onb-1", adj); !errors.Is(err, ErrInvalidAdjustment) {
			t.Fatalf("expected ErrInvalidAdjustment, got %v", err)
		}
	})

	t.Run("amount above ceiling", func(t *testing.T) {
		uc, _ := newRegenerationUseCase(t)
		adj := pricing.Adjustment{CustomItems: []pricing.CustomItem{{Label: "Drehtag", Price: 1 << 62, Quantity: 4}}}
		if _, err := uc.RequestAdjustment(context.Background(), "onb-1", adj); !errors.Is(err, ErrInvalidAdjustment) {
			t.Fatalf("expected ErrInvalidAdjustment, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newRegenerationUseCase(t)
		m.repo.EXPECT().RequestRegeneration(gomock.Any(), "onb-1", gomock.Any()).Return(entities.Onboarding{}, nil)
		if _, err := uc.RequestAdjustment(context.Background(), "onb-1", pricing.Adjustment{}); !errors.Is(err, ErrOnboardingNotFound) {
			t.Fatalf("expected ErrOnboardingNotFound, got %v", err)
		}
	})
}

func TestContractRegenerationUseCase_Regenerate(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newRegenerationUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "onb-1").Return(entities.Onboarding{}, nil)
		if _, err := uc.Regenerate(context.Background(), "onb-1"); !errors.Is(err, ErrOnboardingNotFound) {
			t.Fatalf("expected ErrOnboardingNotFound, got %v", err)
		}
	})

	t.Run("skipped without flag", func(t *testing.T) {
		uc, m := newRegenerationUseCase(t)
		o := signedOnboarding()
		o.RegenerateRequested = false
		m.repo.EXPECT().GetByID(gomock.Any(), "onb-1").Return(o, nil)

		res, err := uc.Regenerate(context.Background(), "onb-1")
		if err != nil || res.Status != RegenerationSkipped {
			t.Fatalf("expected skipped, got %+v err=%v", res, err)
		}
	})

	t.Run("fresh claim blocks", func(t *testing.T) {
		uc, m := newRegenerationUseCase(t)
		o := signedOnboarding()
		started := regenNow.Add(-time.Minute)
		o.RegenerationStartedAt = &started
		m.repo.EXPECT().GetByID(gomock.Any(), "onb-1").Return(o, nil)

		if _, err := uc.Regenerate(context.Background(), "onb-1"); !errors.Is(err, ErrRegenerationInProgress) {
			t.Fatalf("expected ErrRegenerationInProgress, got %v", err)
		}
	})

	t.Run("claim lost", func(t *testing.T) {
		uc, m := newRegenerationUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "onb-1").Return(signedOnboarding(), nil)
		m.repo.EXPECT().ClaimRegeneration(gomock.Any(), "onb-1", int64(3), regenNow).Return(entities.Onboarding{}, interfaces.ErrVersionConflict)

		if _, err := uc.Regenerate(context.Background(), "onb-1"); !errors.Is(err, ErrRegenerationInProgress) {
			t.Fatalf("expected ErrRegenerationInProgress, got %v", err)
		}
	})

	t.Run("render failure releases the claim", func(t *testing.T) {
		uc, m := newRegenerationUseCase(t)
		claimed := signedOnboarding()
		claimed.Version = 4
		claimed.RegenerationStartedAt = &regenNow

		m.repo.EXPECT().GetByID(gomock.Any(), "onb-1").Return(signedOnboarding(), nil)
		m.repo.EXPECT().ClaimRegeneration(gomock.Any(), "onb-1", int64(3), regenNow).Return(claimed, nil)
		m.content.EXPECT().Company(gomock.Any()).Return(entities.CompanyInfo{}, nil)
		m.content.EXPECT().Clauses(gomock.Any()).Return(nil, nil)
		m.storage.EXPECT().Open(gomock.Any(), "signatures/onb-1/s.png").Return(io.NopCloser(strings.NewReader("png")), nil)
		m.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil, errors.New("font missing"))
		m.repo.EXPECT().ReleaseRegeneration(gomock.Any(), "onb-1", int64(4)).Return(nil)

		if _, err := uc.Regenerate(context.Background(), "onb-1"); !errors.Is(err, ErrRegenerationFailed) {
			t.Fatalf("expected ErrRegenerationFailed, got %v", err)
		}
	})

	t.Run("regenerated", func(t *testing.T) {
		uc, m := newRegenerationUseCase(t)
		claimed := signedOnboarding()
		claimed.Version = 4
		claimed.RegenerationStartedAt = &regenNow

		m.repo.EXPECT().GetByID(gomock.Any(), "onb-1").Return(signedOnboarding(), nil)
		m.repo.EXPECT().ClaimRegeneration(gomock.Any(), "onb-1", int64(3), regenNow).Return(claimed, nil)
		m.content.EXPECT().Company(gomock.Any()).Return(entities.CompanyInfo{Name: "Lichtwerk"}, nil)
		m.content.EXPECT().Clauses(gomock.Any()).Return(nil, nil)
		m.storage.EXPECT().Open(gomock.Any(), "signatures/onb-1/s.png").Return(io.NopCloser(strings.NewReader("png")), nil)
		m.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, doc entities.ContractDocument) ([]byte, error) {
				if doc.Correction == nil || doc.Onboarding.Pricing.TotalPrice != 6210 {
					t.Fatalf("document must carry the corrected price: %+v", doc.Onboarding.Pricing)
				}
				return []byte("%PDF"), nil
			})
		m.storage.EXPECT().Put(gomock.Any(), gomock.Any(), "application/pdf", gomock.Any()).Return("https://cdn/contracts/onb-1/b.pdf", nil)
		m.repo.EXPECT().CommitRevision(gomock.Any(), "onb-1", int64(4), gomock.Any(), regenNow).
			DoAndReturn(func(_ context.Context, _ string, _ int64, rev entities.ContractRevision, _ time.Time) (entities.Onboarding, error) {
				if rev.Pricing.DepositAmount != 3105 || rev.Pricing.RemainingAmount != 3105 {
					t.Fatalf("unexpected deposit split %+v", rev.Pricing)
				}
				c := rev.Correction
				if c.ID == "" || c.PreviousTotal != 5720 || c.NewTotal != 6210 ||
					c.PreviousContractURL != "https://cdn/contracts/onb-1/a.pdf" || c.NewContractURL != "https://cdn/contracts/onb-1/b.pdf" {
					t.Fatalf("unexpected correction %+v", c)
				}
				o := claimed
				o.Pricing = rev.Pricing
				o.Version = 5
				o.RegenerateRequested = false
				o.RegenerationStartedAt = nil
				o.Corrections = append(o.Corrections, c)
				return o, nil
			})
		m.notifier.EXPECT().ContractRegenerated(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("mail down"))

		res, err := uc.Regenerate(context.Background(), "onb-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != RegenerationDone || res.Onboarding.Version != 5 || len(res.Onboarding.Corrections) != 1 {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("commit conflict releases an owned marker", func(t *testing.T) {
		uc, m := newRegenerationUseCase(t)
		claimed := signedOnboarding()
		claimed.Version = 4
		claimed.RegenerationStartedAt = &regenNow
		changed := claimed
		changed.Version = 5

		gomock.InOrder(
			m.repo.EXPECT().GetByID(gomock.Any(), "onb-1").Return(signedOnboarding(), nil),
			m.repo.EXPECT().ClaimRegeneration(gomock.Any(), "onb-1", int64(3), regenNow).Return(claimed, nil),
			m.repo.EXPECT().CommitRevision(gomock.Any(), "onb-1", int64(4), gomock.Any(), regenNow).Return(entities.Onboarding{}, interfaces.ErrVersionConflict),
			m.repo.EXPECT().GetByID(gomock.Any(), "onb-1").Return(changed, nil),
			m.repo.EXPECT().ReleaseRegeneration(gomock.Any(), "onb-1", int64(5)).Return(nil),
		)
		m.content.EXPECT().Company(gomock.Any()).Return(entities.CompanyInfo{}, nil)
		m.content.EXPECT().Clauses(gomock.Any()).Return(nil, nil)
		m.storage.EXPECT().Open(gomock.Any(), gomock.Any()).Return(io.NopCloser(strings.NewReader("png")), nil)
		m.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
		m.storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn/b.pdf", nil)

		if _, err := uc.Regenerate(context.Background(), "onb-1"); !errors.Is(err, ErrRegenerationInProgress) {
			t.Fatalf("expected ErrRegenerationInProgress, got %v", err)
		}
	})
}
