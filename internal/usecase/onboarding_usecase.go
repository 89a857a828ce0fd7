package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"studio_api/internal/domain/entities"
	"studio_api/internal/domain/pricing"
	"studio_api/internal/domain/wizard"
	"studio_api/internal/infrastructure/storage"
	"studio_api/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrDraftNotFound       = errors.New("draft not found")
	ErrInvalidDraftID      = errors.New("invalid draft id")
	ErrInvalidStepPayload  = errors.New("invalid step payload")
	ErrSubmissionFailed    = errors.New("onboarding submission failed")
	ErrOnboardingNotFound  = errors.New("onboarding not found")
	ErrInvalidOnboardingID = errors.New("invalid onboarding id")
)

// IOnboardingUseCase drives the wizard from the first step to a signed contract.
//
// SaveStep returns the saved draft together with a *wizard.ValidationError
// when the step gate fails; the payload is kept either way.
type IOnboardingUseCase interface {
	CreateDraft(ctx context.Context) (*wizard.Draft, error)
	GetDraft(ctx context.Context, id string) (*wizard.Draft, error)
	SaveStep(ctx context.Context, id string, step wizard.Step, payload json.RawMessage) (*wizard.Draft, error)
	Back(ctx context.Context, id string) (*wizard.Draft, error)
	Submit(ctx context.Context, id string) (entities.Onboarding, *wizard.Draft, error)
	GetOnboarding(ctx context.Context, id string) (entities.Onboarding, error)
}

type OnboardingUseCase struct {
	drafts   interfaces.IDraftStore
	repo     interfaces.IOnboardingRepository
	content  interfaces.IContentRepository
	renderer interfaces.IContractRenderer
	storage  interfaces.IObjectStorage
	notifier interfaces.INotifier
	now      func() time.Time
	log      *zap.Logger
}

var _ IOnboardingUseCase = (*OnboardingUseCase)(nil)

func NewOnboardingUseCase(
	drafts interfaces.IDraftStore,
	repo interfaces.IOnboardingRepository,
	content interfaces.IContentRepository,
	renderer interfaces.IContractRenderer,
	objects interfaces.IObjectStorage,
	notifier interfaces.INotifier,
	log *zap.Logger,
) *OnboardingUseCase {
	return &OnboardingUseCase{
		drafts:   drafts,
		repo:     repo,
		content:  content,
		renderer: renderer,
		storage:  objects,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log.Named("onboarding.usecase"),
	}
}

func (u *OnboardingUseCase) CreateDraft(ctx context.Context) (*wizard.Draft, error) {
	d := wizard.NewDraft(uuid.NewString(), u.now())
	if err := u.drafts.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	u.log.Info("draft created", zap.String("draft_id", d.ID))
	return d, nil
}

func (u *OnboardingUseCase) GetDraft(ctx context.Context, id string) (*wizard.Draft, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidDraftID
	}
	d, err := u.drafts.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if d == nil {
		return nil, ErrDraftNotFound
	}
	return d, nil
}

func (u *OnboardingUseCase) SaveStep(ctx context.Context, id string, step wizard.Step, payload json.RawMessage) (*wizard.Draft, error) {
	d, err := u.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Step == wizard.StepSubmitted {
		return d, wizard.ErrAlreadyDone
	}
	if step != d.Step {
		return d, wizard.ErrStepMismatch
	}
	if err := applyStepPayload(d, step, payload); err != nil {
		return d, err
	}

	advanceErr := d.Advance(step, u.now())
	if err := u.drafts.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	if advanceErr != nil {
		u.log.Info("step gate failed", zap.String("draft_id", d.ID), zap.String("step", string(step)), zap.Error(advanceErr))
		return d, advanceErr
	}
	u.log.Info("step saved", zap.String("draft_id", d.ID), zap.String("step", string(step)), zap.String("next", string(d.Step)))
	return d, nil
}

func applyStepPayload(d *wizard.Draft, step wizard.Step, payload json.RawMessage) error {
	decode := func(v any) error {
		if len(bytes.TrimSpace(payload)) == 0 {
			return ErrInvalidStepPayload
		}
		if err := json.Unmarshal(payload, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStepPayload, err)
		}
		return nil
	}

	switch step {
	case wizard.StepContactInfo:
		var c wizard.ContactInfo
		if err := decode(&c); err != nil {
			return err
		}
		d.SetContact(c)
	case wizard.StepProjectDetails:
		var p wizard.ProjectDetails
		if err := decode(&p); err != nil {
			return err
		}
		d.SetProject(p)
	case wizard.StepExtras:
		var e pricing.Extras
		if err := decode(&e); err != nil {
			return err
		}
		d.SetExtras(e)
	case wizard.StepContractReview:
		var r wizard.ContractReview
		if err := decode(&r); err != nil {
			return err
		}
		d.SetReview(r)
	case wizard.StepSignature:
		var s wizard.Signature
		if err := decode(&s); err != nil {
			return err
		}
		d.SetSignature(s)
	default:
		return wizard.ErrUnknownStep
	}
	return nil
}

func (u *OnboardingUseCase) Back(ctx context.Context, id string) (*wizard.Draft, error) {
	d, err := u.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := d.Back(u.now()); err != nil {
		return d, err
	}
	if err := u.drafts.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return d, nil
}

// Submit prices the draft, renders and stores the signed contract and creates
// the onboarding document. Any failure leaves the draft at the signature step
// with LastError set so the user can retry.
func (u *OnboardingUseCase) Submit(ctx context.Context, id string) (entities.Onboarding, *wizard.Draft, error) {
	d, err := u.GetDraft(ctx, id)
	if err != nil {
		return entities.Onboarding{}, nil, err
	}
	if err := d.ReadyToSubmit(); err != nil {
		return entities.Onboarding{}, d, err
	}
	u.log.Info("submit start", zap.String("draft_id", d.ID))

	o, err := u.createOnboarding(ctx, d)
	if err != nil {
		u.log.Error("submit failed", zap.String("draft_id", d.ID), zap.Error(err))
		d.MarkFailed(submitErrorMessage(err), u.now())
		if saveErr := u.drafts.Save(ctx, d); saveErr != nil {
			u.log.Error("failed saving draft after submit error", zap.String("draft_id", d.ID), zap.Error(saveErr))
		}
		if errors.Is(err, ErrInvalidSignature) {
			return entities.Onboarding{}, d, err
		}
		return entities.Onboarding{}, d, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	d.MarkSubmitted(o.ID, u.now())
	if err := u.drafts.Save(ctx, d); err != nil {
		// the onboarding exists; a stale draft only allows a visible retry
		u.log.Error("failed saving submitted draft", zap.String("draft_id", d.ID), zap.Error(err))
	}

	if u.notifier != nil {
		if err := u.notifier.OnboardingSubmitted(ctx, o); err != nil {
			u.log.Error("onboarding notification failed", zap.String("onboarding_id", o.ID), zap.Error(err))
		}
	}
	u.log.Info("submit success", zap.String("draft_id", d.ID), zap.String("onboarding_id", o.ID), zap.Int("total_price", o.Pricing.TotalPrice))
	return o, d, nil
}

func (u *OnboardingUseCase) createOnboarding(ctx context.Context, d *wizard.Draft) (entities.Onboarding, error) {
	company, err := u.content.Company(ctx)
	if err != nil {
		return entities.Onboarding{}, fmt.Errorf("load company: %w", err)
	}
	clauses, err := u.content.Clauses(ctx)
	if err != nil {
		return entities.Onboarding{}, fmt.Errorf("load clauses: %w", err)
	}
	price, err := pricing.CalculateOnboardingPrice(d.Config(), company.DepositPercentage)
	if err != nil {
		return entities.Onboarding{}, fmt.Errorf("price onboarding: %w", err)
	}
	sig, sigType, err := decodeSignature(d.Signature.Image)
	if err != nil {
		return entities.Onboarding{}, err
	}

	now := u.now()
	o := entities.Onboarding{
		ID:      uuid.NewString(),
		DraftID: d.ID,
		Status:  entities.OnboardingStatusSigned,
		Client: entities.Client{
			Name:    strings.TrimSpace(d.Contact.Name),
			Email:   strings.TrimSpace(d.Contact.Email),
			Phone:   strings.TrimSpace(d.Contact.Phone),
			Street:  strings.TrimSpace(d.Contact.Street),
			ZipCity: strings.TrimSpace(d.Contact.ZipCity),
			Company: strings.TrimSpace(d.Contact.Company),
		},
		Project: entities.Project{
			Name:        strings.TrimSpace(d.Project.ProjectName),
			Description: strings.TrimSpace(d.Project.Description),
			Budget:      strings.TrimSpace(d.Project.Budget),
			Deadline:    strings.TrimSpace(d.Project.Deadline),
			Config:      d.Config(),
		},
		Pricing:     price,
		SignedPlace: strings.TrimSpace(d.Signature.Place),
		SignedAt:    now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	o.SignatureKey = storage.SignatureKey(o.ID, sigType)
	if _, err := u.storage.Put(ctx, o.SignatureKey, sigType, bytes.NewReader(sig)); err != nil {
		return entities.Onboarding{}, fmt.Errorf("upload signature: %w", err)
	}

	pdf, err := u.renderer.Render(ctx, entities.ContractDocument{
		Company:        company,
		Clauses:        clauses,
		Onboarding:     o,
		SignatureImage: sig,
	})
	if err != nil {
		return entities.Onboarding{}, fmt.Errorf("render contract: %w", err)
	}
	o.ContractKey = storage.ContractKey(o.ID)
	url, err := u.storage.Put(ctx, o.ContractKey, "application/pdf", bytes.NewReader(pdf))
	if err != nil {
		return entities.Onboarding{}, fmt.Errorf("upload contract: %w", err)
	}
	o.ContractPDFURL = url

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Onboarding{}, fmt.Errorf("create onboarding: %w", err)
	}
	return created, nil
}

func submitErrorMessage(err error) string {
	if errors.Is(err, ErrInvalidSignature) {
		return ErrInvalidSignature.Error()
	}
	return "Die Übermittlung ist fehlgeschlagen. Bitte versuchen Sie es erneut."
}

func (u *OnboardingUseCase) GetOnboarding(ctx context.Context, id string) (entities.Onboarding, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Onboarding{}, ErrInvalidOnboardingID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Onboarding{}, err
	}
	if o.ID == "" {
		return entities.Onboarding{}, ErrOnboardingNotFound
	}
	return o, nil
}
