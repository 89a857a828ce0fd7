package mail

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"studio_api/internal/domain/entities"
	"studio_api/internal/domain/pricing"
	"studio_api/internal/usecase/interfaces"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("mail").Funcs(template.FuncMap{
	"euro": formatEuro,
}).ParseFS(templateFS, "templates/*.html"))

// Notifier renders the site's transactional mails and hands them to a Mailer.
// Studio notifications go to studioTo; they are skipped when it is empty.
type Notifier struct {
	mailer   Mailer
	studioTo []string
	company  string
	log      *zap.Logger
}

var _ interfaces.INotifier = (*Notifier)(nil)

func NewNotifier(mailer Mailer, studioTo string, company string, log *zap.Logger) *Notifier {
	var to []string
	for _, addr := range strings.Split(studioTo, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			to = append(to, addr)
		}
	}
	return &Notifier{mailer: mailer, studioTo: to, company: company, log: log.Named("mail.notifier")}
}

func (n *Notifier) InquiryReceived(ctx context.Context, in entities.Inquiry) error {
	subject := "Neue Kontaktanfrage von " + in.Name
	if in.Kind == entities.InquiryKindConfigurator {
		subject = "Neue Konfigurator-Anfrage von " + in.Name
	}
	return n.toStudio(ctx, "inquiry_studio.html", subject, in.Email, in)
}

func (n *Notifier) OnboardingSubmitted(ctx context.Context, o entities.Onboarding) error {
	data := onboardingData{Company: n.company, Onboarding: o}
	studioErr := n.toStudio(ctx, "onboarding_studio.html", "Neuer Auftrag: "+o.Project.Name, o.Client.Email, data)
	clientErr := n.toClient(ctx, "onboarding_client.html", "Ihr Auftrag bei "+n.company, o.Client.Email, data)
	return errors.Join(studioErr, clientErr)
}

func (n *Notifier) ContractRegenerated(ctx context.Context, o entities.Onboarding, c pricing.Correction) error {
	data := onboardingData{Company: n.company, Onboarding: o, Correction: &c}
	studioErr := n.toStudio(ctx, "regenerated_studio.html", "Vertrag korrigiert: "+o.Project.Name, "", data)
	clientErr := n.toClient(ctx, "regenerated_client.html", "Ihr korrigierter Vertrag", o.Client.Email, data)
	return errors.Join(studioErr, clientErr)
}

type onboardingData struct {
	Company    string
	Onboarding entities.Onboarding
	Correction *pricing.Correction
}

func (n *Notifier) toStudio(ctx context.Context, tmpl, subject, replyTo string, data any) error {
	if len(n.studioTo) == 0 {
		n.log.Debug("studio recipient not configured, skipping", zap.String("template", tmpl))
		return nil
	}
	return n.send(ctx, tmpl, Message{To: n.studioTo, ReplyTo: replyTo, Subject: subject}, data)
}

func (n *Notifier) toClient(ctx context.Context, tmpl, subject, to string, data any) error {
	if to == "" {
		return nil
	}
	return n.send(ctx, tmpl, Message{To: []string{to}, Subject: subject}, data)
}

func (n *Notifier) send(ctx context.Context, tmpl string, msg Message, data any) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, tmpl, data); err != nil {
		return fmt.Errorf("render %s: %w", tmpl, err)
	}
	msg.HTML = buf.String()
	return n.mailer.Send(ctx, msg)
}

func formatEuro(v int) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.Itoa(v)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "." + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s + " €"
}
