package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"studio_api/internal/domain/entities"
	"studio_api/internal/domain/pricing"
	"studio_api/internal/infrastructure/storage"
	"studio_api/internal/usecase/interfaces"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

var (
	ErrInvalidAdjustment      = errors.New("invalid contract adjustment")
	ErrRegenerationInProgress = errors.New("contract regeneration already in progress")
	ErrRegenerationFailed     = errors.New("contract regeneration failed")
)

type RegenerationStatus string

const (
	RegenerationDone    RegenerationStatus = "regenerated"
	RegenerationSkipped RegenerationStatus = "skipped"
)

type RegenerationResult struct {
	Status     RegenerationStatus
	Onboarding entities.Onboarding
	Correction *pricing.Correction
}

// IContractRegenerationUseCase applies editor corrections to signed contracts.
//
// Regenerate is safe to call concurrently for the same onboarding: exactly
// one caller wins the version claim, the others get ErrRegenerationInProgress.
type IContractRegenerationUseCase interface {
	RequestAdjustment(ctx context.Context, onboardingID string, adj pricing.Adjustment) (entities.Onboarding, error)
	Regenerate(ctx context.Context, onboardingID string) (RegenerationResult, error)
}

type ContractRegenerationUseCase struct {
	repo     interfaces.IOnboardingRepository
	content  interfaces.IContentRepository
	renderer interfaces.IContractRenderer
	storage  interfaces.IObjectStorage
	notifier interfaces.INotifier
	now      func() time.Time
	log      *zap.Logger
}

var _ IContractRegenerationUseCase = (*ContractRegenerationUseCase)(nil)

func NewContractRegenerationUseCase(
	repo interfaces.IOnboardingRepository,
	content interfaces.IContentRepository,
	renderer interfaces.IContractRenderer,
	objects interfaces.IObjectStorage,
	notifier interfaces.INotifier,
	log *zap.Logger,
) *ContractRegenerationUseCase {
	return &ContractRegenerationUseCase{
		repo:     repo,
		content:  content,
		renderer: renderer,
		storage:  objects,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log.Named("regeneration.usecase"),
	}
}

func (u *ContractRegenerationUseCase) RequestAdjustment(ctx context.Context, onboardingID string, adj pricing.Adjustment) (entities.Onboarding, error) {
	onboardingID = strings.TrimSpace(onboardingID)
	if onboardingID == "" {
		return entities.Onboarding{}, ErrInvalidOnboardingID
	}
	if err := adj.Validate(); err != nil {
		return entities.Onboarding{}, fmt.Errorf("%w: %v", ErrInvalidAdjustment, err)
	}

	o, err := u.repo.RequestRegeneration(ctx, onboardingID, adj)
	if err != nil {
		return entities.Onboarding{}, err
	}
	if o.ID == "" {
		return entities.Onboarding{}, ErrOnboardingNotFound
	}
	u.log.Info("adjustment stored", zap.String("onboarding_id", o.ID), zap.Int("custom_items", len(adj.CustomItems)), zap.Bool("discount", adj.Discount != nil))
	return o, nil
}

func (u *ContractRegenerationUseCase) Regenerate(ctx context.Context, onboardingID string) (RegenerationResult, error) {
	onboardingID = strings.TrimSpace(onboardingID)
	if onboardingID == "" {
		return RegenerationResult{}, ErrInvalidOnboardingID
	}
	log := u.log.With(zap.String("onboarding_id", onboardingID))
	log.Info("regenerate start")

	o, err := u.repo.GetByID(ctx, onboardingID)
	if err != nil {
		return RegenerationResult{}, err
	}
	if o.ID == "" {
		return RegenerationResult{}, ErrOnboardingNotFound
	}
	if !o.RegenerateRequested {
		log.Info("regenerate skipped, no pending adjustment")
		return RegenerationResult{Status: RegenerationSkipped, Onboarding: o}, nil
	}

	now := u.now()
	if !o.RegenerationClaimable(now) {
		return RegenerationResult{}, ErrRegenerationInProgress
	}
	claimed, err := u.repo.ClaimRegeneration(ctx, o.ID, o.Version, now)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Info("claim lost", zap.Int64("version", o.Version))
			return RegenerationResult{}, ErrRegenerationInProgress
		}
		return RegenerationResult{}, fmt.Errorf("claim regeneration: %w", err)
	}
	if claimed.ID == "" {
		return RegenerationResult{}, ErrOnboardingNotFound
	}

	rev, err := u.buildRevision(ctx, claimed, now)
	if err != nil {
		log.Error("regenerate failed before commit", zap.Error(err))
		u.release(ctx, claimed)
		return RegenerationResult{}, fmt.Errorf("%w: %v", ErrRegenerationFailed, err)
	}

	committed, err := u.repo.CommitRevision(ctx, claimed.ID, claimed.Version, rev, u.now())
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Warn("commit lost against a concurrent writer", zap.Int64("version", claimed.Version))
			u.releaseIfOwned(ctx, claimed.ID, now)
			return RegenerationResult{}, ErrRegenerationInProgress
		}
		log.Error("commit failed", zap.Error(err))
		u.release(ctx, claimed)
		return RegenerationResult{}, fmt.Errorf("%w: %v", ErrRegenerationFailed, err)
	}

	if u.notifier != nil {
		if err := u.notifier.ContractRegenerated(ctx, committed, rev.Correction); err != nil {
			log.Error("regeneration notification failed", zap.Error(err))
		}
	}
	log.Info("regenerate success",
		zap.String("correction_id", rev.Correction.ID),
		zap.Int("previous_total", rev.Correction.PreviousTotal),
		zap.Int("new_total", rev.Correction.NewTotal))
	return RegenerationResult{Status: RegenerationDone, Onboarding: committed, Correction: &rev.Correction}, nil
}

// buildRevision prices, renders and uploads the corrected contract. Nothing
// is written to the onboarding document here.
func (u *ContractRegenerationUseCase) buildRevision(ctx context.Context, o entities.Onboarding, now time.Time) (entities.ContractRevision, error) {
	var adj pricing.Adjustment
	if o.Adjustment != nil {
		adj = *o.Adjustment
	}
	next, corr, err := pricing.ApplyAdjustment(o.Pricing, adj, now)
	if err != nil {
		return entities.ContractRevision{}, fmt.Errorf("apply adjustment: %w", err)
	}
	corr.ID = ulid.Make().String()
	corr.PreviousContractURL = o.ContractPDFURL

	company, err := u.content.Company(ctx)
	if err != nil {
		return entities.ContractRevision{}, fmt.Errorf("load company: %w", err)
	}
	clauses, err := u.content.Clauses(ctx)
	if err != nil {
		return entities.ContractRevision{}, fmt.Errorf("load clauses: %w", err)
	}
	sig, err := u.signature(ctx, o.SignatureKey)
	if err != nil {
		return entities.ContractRevision{}, err
	}

	corrected := o
	corrected.Pricing = next
	pdf, err := u.renderer.Render(ctx, entities.ContractDocument{
		Company:        company,
		Clauses:        clauses,
		Onboarding:     corrected,
		SignatureImage: sig,
		Correction:     &corr,
	})
	if err != nil {
		return entities.ContractRevision{}, fmt.Errorf("render contract: %w", err)
	}

	key := storage.ContractKey(o.ID)
	url, err := u.storage.Put(ctx, key, "application/pdf", bytes.NewReader(pdf))
	if err != nil {
		return entities.ContractRevision{}, fmt.Errorf("upload contract: %w", err)
	}
	corr.NewContractURL = url

	return entities.ContractRevision{
		Pricing:        next,
		ContractKey:    key,
		ContractPDFURL: url,
		Correction:     corr,
	}, nil
}

func (u *ContractRegenerationUseCase) signature(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	rc, err := u.storage.Open(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("open signature: %w", err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read signature: %w", err)
	}
	return b, nil
}

// release drops the processing marker so the next delivery can retry.
func (u *ContractRegenerationUseCase) release(ctx context.Context, claimed entities.Onboarding) {
	if err := u.repo.ReleaseRegeneration(context.WithoutCancel(ctx), claimed.ID, claimed.Version); err != nil {
		u.log.Error("failed releasing regeneration claim",
			zap.String("onboarding_id", claimed.ID),
			zap.Int64("version", claimed.Version),
			zap.Error(err))
	}
}

// releaseIfOwned drops the marker after the document changed under the claim,
// as long as the marker is still the one set at claimedAt.
func (u *ContractRegenerationUseCase) releaseIfOwned(ctx context.Context, id string, claimedAt time.Time) {
	ctx = context.WithoutCancel(ctx)
	o, err := u.repo.GetByID(ctx, id)
	if err != nil || o.RegenerationStartedAt == nil || !o.RegenerationStartedAt.Equal(claimedAt) {
		return
	}
	u.release(ctx, o)
}
