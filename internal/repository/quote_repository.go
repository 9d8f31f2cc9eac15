package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/hsvanberg/offert-service/internal/model"
)

// QuoteRepository keeps quotes and the business profile as JSON documents in
// sqlite. SaveQuotes replaces the whole collection in one transaction, which
// is the contract the service layer builds its upserts on.
type QuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

func (r *QuoteRepository) LoadQuotes(ctx context.Context) ([]model.Quote, error) {
	var payloads []string
	err := r.db.WithContext(ctx).
		Raw(`SELECT payload FROM quote_records ORDER BY position`).
		Scan(&payloads).Error
	if err != nil {
		return nil, err
	}

	quotes := make([]model.Quote, 0, len(payloads))
	for _, payload := range payloads {
		var quote model.Quote
		if err := json.Unmarshal([]byte(payload), &quote); err != nil {
			return nil, fmt.Errorf("decode quote record: %w", err)
		}
		quotes = append(quotes, quote)
	}
	return quotes, nil
}

func (r *QuoteRepository) SaveQuotes(ctx context.Context, quotes []model.Quote) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM quote_records`).Error; err != nil {
			return err
		}
		for i, quote := range quotes {
			payload, err := json.Marshal(quote)
			if err != nil {
				return fmt.Errorf("encode quote record: %w", err)
			}
			err = tx.Exec(
				`INSERT INTO quote_records (id, position, payload) VALUES (?, ?, ?)`,
				quote.ID.String(), i, string(payload),
			).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *QuoteRepository) LoadProfile(ctx context.Context) (*model.BusinessProfile, error) {
	var payloads []string
	err := r.db.WithContext(ctx).
		Raw(`SELECT payload FROM profile_record WHERE id = 1`).
		Scan(&payloads).Error
	if err != nil {
		return nil, err
	}
	if len(payloads) == 0 {
		return nil, nil
	}

	var profile model.BusinessProfile
	if err := json.Unmarshal([]byte(payloads[0]), &profile); err != nil {
		return nil, fmt.Errorf("decode profile record: %w", err)
	}
	return &profile, nil
}

func (r *QuoteRepository) SaveProfile(ctx context.Context, profile model.BusinessProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile record: %w", err)
	}
	return r.db.WithContext(ctx).Exec(
		`INSERT INTO profile_record (id, payload) VALUES (1, ?)
		 ON CONFLICT (id) DO UPDATE SET payload = excluded.payload`,
		string(payload),
	).Error
}
