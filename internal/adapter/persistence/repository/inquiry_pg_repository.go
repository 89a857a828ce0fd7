package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"studio_api/internal/domain/entities"
	"studio_api/internal/domain/pricing"
	"studio_api/internal/usecase/interfaces"
)

// InquiryPGRepository stores leads in the inquiries table.
type InquiryPGRepository struct {
	db *sql.DB
}

var _ interfaces.IInquiryRepository = (*InquiryPGRepository)(nil)

func NewInquiryPGRepository(db *sql.DB) *InquiryPGRepository {
	return &InquiryPGRepository{db: db}
}

func (r *InquiryPGRepository) Create(ctx context.Context, in entities.Inquiry) (entities.Inquiry, error) {
	const query = `
INSERT INTO inquiries (id, kind, name, email, phone, company, message, config, estimate, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	cfg, err := marshalJSONB(in.Config)
	if err != nil {
		return entities.Inquiry{}, err
	}
	est, err := marshalJSONB(in.Estimate)
	if err != nil {
		return entities.Inquiry{}, err
	}

	_, err = r.db.ExecContext(ctx, query,
		in.ID, string(in.Kind), in.Name, in.Email, in.Phone, in.Company, in.Message, cfg, est, in.CreatedAt,
	)
	if err != nil {
		return entities.Inquiry{}, err
	}
	return in, nil
}

func (r *InquiryPGRepository) GetByID(ctx context.Context, id string) (entities.Inquiry, error) {
	const query = `
SELECT id, kind, name, email, phone, company, message, config, estimate, created_at
FROM inquiries WHERE id = $1`

	var (
		in       entities.Inquiry
		kind     string
		cfg, est []byte
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&in.ID, &kind, &in.Name, &in.Email, &in.Phone, &in.Company, &in.Message, &cfg, &est, &in.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Inquiry{}, nil
	}
	if err != nil {
		return entities.Inquiry{}, err
	}
	in.Kind = entities.InquiryKind(kind)

	if len(cfg) > 0 {
		var c pricing.ConfigInput
		if err := json.Unmarshal(cfg, &c); err != nil {
			return entities.Inquiry{}, err
		}
		in.Config = &c
	}
	if len(est) > 0 {
		var e pricing.PriceResult
		if err := json.Unmarshal(est, &e); err != nil {
			return entities.Inquiry{}, err
		}
		in.Estimate = &e
	}
	return in, nil
}

// marshalJSONB returns nil for nil pointers so the column stays NULL.
func marshalJSONB[T any](v *T) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}
