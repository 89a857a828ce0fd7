// Package wizard models the onboarding form flow: linear steps, each guarded
// by a validation gate, ending in a submitted contract.
package wizard

import (
	"errors"
	"strings"
	"time"

	"studio_api/internal/domain/pricing"
)

type Step string

const (
	StepContactInfo    Step = "contact_info"
	StepProjectDetails Step = "project_details"
	StepExtras         Step = "extras"
	StepContractReview Step = "contract_review"
	StepSignature      Step = "signature"
	StepSubmitted      Step = "submitted"
)

var steps = []Step{StepContactInfo, StepProjectDetails, StepExtras, StepContractReview, StepSignature, StepSubmitted}

var (
	ErrValidation   = errors.New("step validation failed")
	ErrStepMismatch = errors.New("step is not the current step")
	ErrUnknownStep  = errors.New("unknown step")
	ErrAlreadyDone  = errors.New("onboarding already submitted")
	ErrNotReady     = errors.New("onboarding is not ready for submission")
	ErrAtFirstStep  = errors.New("already at the first step")
)

// ValidationError names the fields that block a step gate.
type ValidationError struct {
	Step   Step
	Fields []string
}

func (e *ValidationError) Error() string {
	return "step " + string(e.Step) + ": missing or invalid " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func ParseStep(raw string) (Step, error) {
	s := Step(strings.TrimSpace(raw))
	for _, known := range steps {
		if s == known {
			return s, nil
		}
	}
	return "", ErrUnknownStep
}

type ContactInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	ZipCity string `json:"zip_city"`
	Company string `json:"company,omitempty"`
}

type ProjectDetails struct {
	ProjectName string             `json:"project_name"`
	Description string             `json:"description"`
	Budget      string             `json:"budget"`
	VideoType   pricing.VideoType  `json:"video_type"`
	Duration    pricing.Duration   `json:"duration"`
	Complexity  pricing.Complexity `json:"complexity"`
	Deadline    string             `json:"deadline,omitempty"`
}

type ContractReview struct {
	TermsAccepted bool `json:"terms_accepted"`
}

type Signature struct {
	Image string `json:"image"`
	Place string `json:"place,omitempty"`
}

// Draft is the in-progress onboarding. Data of every step is kept while the
// user moves back and forth or retries a failed submission.
type Draft struct {
	ID        string         `json:"id"`
	Step      Step           `json:"step"`
	Contact   ContactInfo    `json:"contact"`
	Project   ProjectDetails `json:"project"`
	Extras    pricing.Extras `json:"extras"`
	Review    ContractReview `json:"review"`
	Signature Signature      `json:"signature"`

	OnboardingID string    `json:"onboarding_id,omitempty"`
	LastError    string    `json:"last_error,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewDraft(id string, now time.Time) *Draft {
	return &Draft{ID: id, Step: StepContactInfo, CreatedAt: now, UpdatedAt: now}
}

// Config is the pricing input collected by the project and extras steps.
func (d *Draft) Config() pricing.ConfigInput {
	return pricing.ConfigInput{
		VideoType:  d.Project.VideoType,
		Duration:   d.Project.Duration,
		Complexity: d.Project.Complexity,
		Extras:     d.Extras,
	}
}

// Preview returns the live price estimate once the project step holds a valid configuration.
func (d *Draft) Preview() (*pricing.PriceResult, bool) {
	res, err := pricing.CalculatePrice(d.Config())
	if err != nil {
		return nil, false
	}
	return &res, true
}

func (d *Draft) SetContact(c ContactInfo) { d.Contact = c }

func (d *Draft) SetProject(p ProjectDetails) { d.Project = p }

func (d *Draft) SetExtras(e pricing.Extras) { d.Extras = e }

func (d *Draft) SetReview(r ContractReview) { d.Review = r }

func (d *Draft) SetSignature(s Signature) { d.Signature = s }

// Advance validates the gate of step and moves to the next one. The step must
// be the current step. The signature step is validated but not left: only a
// successful submission reaches StepSubmitted.
func (d *Draft) Advance(step Step, now time.Time) error {
	if d.Step == StepSubmitted {
		return ErrAlreadyDone
	}
	if step != d.Step {
		return ErrStepMismatch
	}
	if err := d.validate(step); err != nil {
		return err
	}
	d.UpdatedAt = now
	if step == StepSignature {
		return nil
	}
	d.Step = steps[indexOf(step)+1]
	return nil
}

// Back moves one step towards the start, keeping all data.
func (d *Draft) Back(now time.Time) error {
	if d.Step == StepSubmitted {
		return ErrAlreadyDone
	}
	i := indexOf(d.Step)
	if i <= 0 {
		return ErrAtFirstStep
	}
	d.Step = steps[i-1]
	d.UpdatedAt = now
	return nil
}

// ReadyToSubmit checks that the draft sits at the signature step and every gate passes.
func (d *Draft) ReadyToSubmit() error {
	if d.Step == StepSubmitted {
		return ErrAlreadyDone
	}
	if d.Step != StepSignature {
		return ErrNotReady
	}
	for _, s := range steps[:indexOf(StepSubmitted)] {
		if err := d.validate(s); err != nil {
			return err
		}
	}
	return nil
}

// MarkSubmitted is called after the server round-trip succeeded.
func (d *Draft) MarkSubmitted(onboardingID string, now time.Time) {
	d.Step = StepSubmitted
	d.OnboardingID = onboardingID
	d.LastError = ""
	d.UpdatedAt = now
}

// MarkFailed records a failed submission; the draft stays at the signature step.
func (d *Draft) MarkFailed(msg string, now time.Time) {
	d.LastError = msg
	d.UpdatedAt = now
}

func (d *Draft) validate(step Step) error {
	var missing []string
	switch step {
	case StepContactInfo:
		missing = requireNonEmpty(missing, map[string]string{
			"name":     d.Contact.Name,
			"email":    d.Contact.Email,
			"phone":    d.Contact.Phone,
			"street":   d.Contact.Street,
			"zip_city": d.Contact.ZipCity,
		}, "name", "email", "phone", "street", "zip_city")
		if e := strings.TrimSpace(d.Contact.Email); e != "" && !strings.Contains(e, "@") {
			missing = append(missing, "email")
		}
	case StepProjectDetails:
		missing = requireNonEmpty(missing, map[string]string{
			"project_name": d.Project.ProjectName,
			"description":  d.Project.Description,
			"budget":       d.Project.Budget,
		}, "project_name", "description", "budget")
		if !d.Project.VideoType.Valid() {
			missing = append(missing, "video_type")
		}
		if !d.Project.Duration.Valid() {
			missing = append(missing, "duration")
		}
		if !d.Project.Complexity.Valid() {
			missing = append(missing, "complexity")
		}
	case StepExtras:
	case StepContractReview:
		if !d.Review.TermsAccepted {
			missing = append(missing, "terms_accepted")
		}
	case StepSignature:
		if strings.TrimSpace(d.Signature.Image) == "" {
			missing = append(missing, "image")
		}
	default:
		return ErrUnknownStep
	}
	if len(missing) > 0 {
		return &ValidationError{Step: step, Fields: missing}
	}
	return nil
}

func requireNonEmpty(missing []string, values map[string]string, order ...string) []string {
	for _, k := range order {
		if strings.TrimSpace(values[k]) == "" {
			missing = append(missing, k)
		}
	}
	return missing
}

func indexOf(s Step) int {
	for i, known := range steps {
		if known == s {
			return i
		}
	}
	return -1
}
