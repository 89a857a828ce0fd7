package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"studio_api/internal/domain/entities"
	"studio_api/internal/domain/pricing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestInquiryPGRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := NewInquiryPGRepository(db)
	now := time.Now().UTC()

	t.Run("contact inquiry keeps json columns null", func(t *testing.T) {
		in := entities.Inquiry{
			ID:        "inq-1",
			Kind:      entities.InquiryKindContact,
			Name:      "Max",
			Email:     "max@example.com",
			Message:   "Hallo",
			CreatedAt: now,
		}
		mock.ExpectExec("INSERT INTO inquiries").
			WithArgs("inq-1", "contact", "Max", "max@example.com", "", "", "Hallo", nil, nil, now).
			WillReturnResult(sqlmock.NewResult(1, 1))

		if _, err := repo.Create(context.Background(), in); err != nil {
			t.Fatalf("Create: %v", err)
		}
	})

	t.Run("configurator inquiry stores config and estimate", func(t *testing.T) {
		cfg := pricing.ConfigInput{VideoType: pricing.VideoTypeImagefilm, Duration: pricing.DurationMedium, Complexity: pricing.ComplexityStandard}
		est, err := pricing.CalculatePrice(cfg)
		if err != nil {
			t.Fatalf("CalculatePrice: %v", err)
		}
		in := entities.Inquiry{
			ID:        "inq-2",
			Kind:      entities.InquiryKindConfigurator,
			Name:      "Max",
			Email:     "max@example.com",
			Config:    &cfg,
			Estimate:  &est,
			CreatedAt: now,
		}
		mock.ExpectExec("INSERT INTO inquiries").
			WithArgs("inq-2", "configurator", "Max", "max@example.com", "", "", "", sqlmock.AnyArg(), sqlmock.AnyArg(), now).
			WillReturnResult(sqlmock.NewResult(1, 1))

		if _, err := repo.Create(context.Background(), in); err != nil {
			t.Fatalf("Create: %v", err)
		}
	})

	t.Run("exec error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO inquiries").WillReturnError(errors.New("db down"))
		if _, err := repo.Create(context.Background(), entities.Inquiry{ID: "inq-3"}); err == nil {
			t.Fatalf("expected error")
		}
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestInquiryPGRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	repo := NewInquiryPGRepository(db)

	cols := []string{"id", "kind", "name", "email", "phone", "company", "message", "config", "estimate", "created_at"}
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM inquiries").
		WithArgs("inq-2").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			"inq-2", "configurator", "Max", "max@example.com", "", "", "",
			[]byte(`{"video_type":"social","duration":"short","complexity":"simple","extras":{}}`),
			[]byte(`{"total_price":900}`),
			now,
		))

	in, err := repo.GetByID(context.Background(), "inq-2")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if in.Config == nil || in.Config.VideoType != pricing.VideoTypeSocial {
		t.Fatalf("expected decoded config, got %+v", in.Config)
	}
	if in.Estimate == nil || in.Estimate.TotalPrice != 900 {
		t.Fatalf("expected decoded estimate, got %+v", in.Estimate)
	}

	mock.ExpectQuery("SELECT (.+) FROM inquiries").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(cols))

	missing, err := repo.GetByID(context.Background(), "missing")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected empty result, got %+v err=%v", missing, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
