package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strconv"
	"strings"

	"studio_api/internal/domain/entities"
	"studio_api/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

const (
	pageMargin  = 20.0
	lineHeight  = 6.0
	contentW    = 210.0 - 2*pageMargin
	amountColW  = 40.0
	signatureW  = 60.0
	signatureID = "signature"
)

// ContractRenderer draws the onboarding contract on A4 portrait pages.
type ContractRenderer struct {
	log *zap.Logger
}

var _ interfaces.IContractRenderer = (*ContractRenderer)(nil)

func NewContractRenderer(log *zap.Logger) *ContractRenderer {
	return &ContractRenderer{log: log.Named("pdf.contract")}
}

func (r *ContractRenderer) Render(ctx context.Context, doc entities.ContractDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := fpdf.New("P", "mm", "A4", "")
	p.SetMargins(pageMargin, pageMargin, pageMargin)
	p.SetAutoPageBreak(true, pageMargin)
	tr := p.UnicodeTranslatorFromDescriptor("")
	o := doc.Onboarding

	p.SetTitle(tr("Produktionsvertrag "+o.Project.Name), false)
	p.SetAuthor(tr(doc.Company.Name), false)
	p.AddPage()

	// company header
	p.SetFont("Helvetica", "B", 16)
	p.CellFormat(contentW, 9, tr(doc.Company.Name), "", 1, "L", false, 0, "")
	p.SetFont("Helvetica", "", 9)
	for _, line := range nonEmpty(
		doc.Company.Owner,
		joinNonEmpty(", ", doc.Company.Street, doc.Company.ZipCity),
		joinNonEmpty(" | ", doc.Company.Email, doc.Company.Phone),
		labeled("Steuernummer", doc.Company.TaxID),
		labeled("IBAN", doc.Company.IBAN),
	) {
		p.CellFormat(contentW, 4.5, tr(line), "", 1, "L", false, 0, "")
	}
	p.Ln(6)

	p.SetFont("Helvetica", "B", 14)
	p.CellFormat(contentW, 8, tr("Produktionsvertrag"), "", 1, "L", false, 0, "")
	if doc.Correction != nil {
		p.SetFont("Helvetica", "B", 10)
		p.SetTextColor(170, 40, 40)
		p.MultiCell(contentW, 5, tr(fmt.Sprintf("Korrigierte Fassung vom %s. Grund: %s",
			germanDate(doc.Correction.CorrectedAt), doc.Correction.Reason)), "", "L", false)
		p.SetTextColor(0, 0, 0)
	}
	p.Ln(3)

	section(p, tr, "Auftraggeber")
	for _, line := range nonEmpty(
		o.Client.Name,
		o.Client.Company,
		o.Client.Street,
		o.Client.ZipCity,
		joinNonEmpty(" | ", o.Client.Email, o.Client.Phone),
	) {
		p.CellFormat(contentW, 5, tr(line), "", 1, "L", false, 0, "")
	}
	p.Ln(3)

	section(p, tr, "Projekt")
	kv(p, tr, "Projektname", o.Project.Name)
	kv(p, tr, "Videotyp", string(o.Project.Config.VideoType))
	kv(p, tr, "Länge", string(o.Project.Config.Duration))
	kv(p, tr, "Aufwand", string(o.Project.Config.Complexity))
	if o.Project.Deadline != "" {
		kv(p, tr, "Wunschtermin", o.Project.Deadline)
	}
	if o.Project.Description != "" {
		p.SetFont("Helvetica", "", 10)
		p.MultiCell(contentW, 5, tr(o.Project.Description), "", "L", false)
	}
	p.Ln(3)

	section(p, tr, "Vergütung")
	p.SetFont("Helvetica", "", 10)
	for _, li := range o.Pricing.Breakdown {
		label := li.Label
		if li.Quantity > 1 {
			label = strconv.Itoa(li.Quantity) + " x " + label
		}
		p.CellFormat(contentW-amountColW, lineHeight, tr(label), "B", 0, "L", false, 0, "")
		p.CellFormat(amountColW, lineHeight, tr(euro(li.Price)), "B", 1, "R", false, 0, "")
	}
	p.SetFont("Helvetica", "B", 10)
	amountRow(p, tr, "Gesamtpreis", o.Pricing.TotalPrice)
	p.SetFont("Helvetica", "", 10)
	amountRow(p, tr, fmt.Sprintf("Anzahlung (%d %%)", o.Pricing.DepositPercentage), o.Pricing.DepositAmount)
	amountRow(p, tr, "Restbetrag", o.Pricing.RemainingAmount)
	p.CellFormat(contentW-amountColW, lineHeight, tr("Geschätzte Produktionszeit"), "", 0, "L", false, 0, "")
	p.CellFormat(amountColW, lineHeight, tr(fmt.Sprintf("%d Werktage", o.Pricing.EstimatedDays)), "", 1, "R", false, 0, "")
	p.Ln(4)

	if len(doc.Clauses) > 0 {
		section(p, tr, "Vertragsbedingungen")
		for i, c := range doc.Clauses {
			p.SetFont("Helvetica", "B", 10)
			p.MultiCell(contentW, 5, tr(fmt.Sprintf("§ %d %s", i+1, c.Title)), "", "L", false)
			p.SetFont("Helvetica", "", 9)
			p.MultiCell(contentW, 4.5, tr(c.Body), "", "L", false)
			p.Ln(2)
		}
	}

	section(p, tr, "Unterschrift Auftraggeber")
	if imgType, ok := r.imageType(doc.SignatureImage); ok {
		p.RegisterImageOptionsReader(signatureID, fpdf.ImageOptions{ImageType: imgType}, bytes.NewReader(doc.SignatureImage))
		p.ImageOptions(signatureID, pageMargin, p.GetY()+2, signatureW, 0, true, fpdf.ImageOptions{ImageType: imgType}, 0, "")
	}
	p.SetFont("Helvetica", "", 10)
	p.CellFormat(contentW, lineHeight, tr(joinNonEmpty(", ", o.SignedPlace, germanDate(o.SignedAt))), "T", 1, "L", false, 0, "")
	p.CellFormat(contentW, lineHeight, tr(o.Client.Name), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("render contract: %w", err)
	}
	r.log.Debug("contract rendered",
		zap.String("onboarding_id", o.ID),
		zap.Int("bytes", buf.Len()),
		zap.Bool("corrected", doc.Correction != nil))
	return buf.Bytes(), nil
}

// imageType decodes the header only; an unreadable signature is left out
// of the document instead of failing it.
func (r *ContractRenderer) imageType(b []byte) (string, bool) {
	if len(b) == 0 {
		return "", false
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		r.log.Warn("signature image not decodable", zap.Error(err))
		return "", false
	}
	switch format {
	case "png":
		return "PNG", true
	case "jpeg":
		return "JPG", true
	}
	return "", false
}

func section(p *fpdf.Fpdf, tr func(string) string, title string) {
	p.SetFont("Helvetica", "B", 11)
	p.CellFormat(contentW, 7, tr(title), "", 1, "L", false, 0, "")
	p.SetFont("Helvetica", "", 10)
}

func kv(p *fpdf.Fpdf, tr func(string) string, key, value string) {
	p.SetFont("Helvetica", "", 10)
	p.CellFormat(45, 5, tr(key+":"), "", 0, "L", false, 0, "")
	p.CellFormat(contentW-45, 5, tr(value), "", 1, "L", false, 0, "")
}

func amountRow(p *fpdf.Fpdf, tr func(string) string, label string, v int) {
	p.CellFormat(contentW-amountColW, lineHeight, tr(label), "", 0, "L", false, 0, "")
	p.CellFormat(amountColW, lineHeight, tr(euro(v)), "", 1, "R", false, 0, "")
}

func labeled(label, v string) string {
	if v == "" {
		return ""
	}
	return label + ": " + v
}

func nonEmpty(in ...string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func joinNonEmpty(sep string, in ...string) string {
	return strings.Join(nonEmpty(in...), sep)
}
