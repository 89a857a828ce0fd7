package pdf

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"studio_api/internal/domain/entities"
	"studio_api/internal/domain/pricing"

	lpdf "github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

func signaturePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 12))
	for x := 0; x < 40; x++ {
		img.Set(x, 6, color.Black)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func sampleDocument(t *testing.T) entities.ContractDocument {
	signed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return entities.ContractDocument{
		Company: entities.CompanyInfo{Name: "Lichtwerk Studio", Street: "Hafenstrasse 4", ZipCity: "20457 Hamburg"},
		Clauses: []entities.ContractClause{{Title: "Leistungsumfang", Body: "Die Produktion umfasst Konzept, Dreh und Schnitt."}},
		Onboarding: entities.Onboarding{
			ID:     "onb-1",
			Client: entities.Client{Name: "Erika Muster", Email: "erika@example.com"},
			Project: entities.Project{
				Name:   "Imagefilm Baeckerei",
				Config: pricing.ConfigInput{VideoType: pricing.VideoTypeImagefilm, Duration: pricing.DurationMedium, Complexity: pricing.ComplexityStandard},
			},
			Pricing: pricing.OnboardingPricing{
				TotalPrice:        5720,
				DepositPercentage: 50,
				DepositAmount:     2860,
				RemainingAmount:   2860,
				EstimatedDays:     15,
				Breakdown:         []pricing.LineItem{{Label: "Imagefilm Standard", Price: 5320}, {Label: "Drohnenaufnahmen", Price: 400}},
			},
			SignedPlace: "Hamburg",
			SignedAt:    signed,
		},
		SignatureImage: signaturePNG(t),
	}
}

func plainText(t *testing.T, b []byte) string {
	t.Helper()
	r, err := lpdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	txt, err := r.GetPlainText()
	if err != nil {
		t.Fatalf("extract text: %v", err)
	}
	out, err := io.ReadAll(txt)
	if err != nil {
		t.Fatalf("read text: %v", err)
	}
	return string(out)
}

func TestContractRenderer_Render(t *testing.T) {
	r := NewContractRenderer(zap.NewNop())

	b, err := r.Render(context.Background(), sampleDocument(t))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Fatalf("output is not a pdf")
	}

	text := plainText(t, b)
	for _, want := range []string{"Lichtwerk", "Produktionsvertrag", "Erika", "Gesamtpreis", "5.720", "2.860", "Leistungsumfang", "Hamburg"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in contract text:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Korrigierte") {
		t.Fatalf("original contract must not carry a correction note")
	}
}

func TestContractRenderer_CorrectedVersion(t *testing.T) {
	r := NewContractRenderer(zap.NewNop())
	doc := sampleDocument(t)
	doc.SignatureImage = []byte("not an image")
	doc.Correction = &pricing.Correction{
		CorrectedAt: time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC),
		Reason:      "Zusatzdrehtag",
	}

	b, err := r.Render(context.Background(), doc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	text := plainText(t, b)
	for _, want := range []string{"Korrigierte", "Zusatzdrehtag"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in contract text:\n%s", want, text)
		}
	}
}

func TestContractRenderer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewContractRenderer(zap.NewNop()).Render(ctx, sampleDocument(t)); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestEuro(t *testing.T) {
	cases := map[int]string{0: "0 €", 950: "950 €", 5720: "5.720 €", 1234567: "1.234.567 €", -300: "-300 €"}
	for in, want := range cases {
		if got := euro(in); got != want {
			t.Fatalf("euro(%d) = %q, want %q", in, got, want)
		}
	}
}
