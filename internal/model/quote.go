package model

import (
	"time"

	"github.com/google/uuid"
)

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	// QuoteStatusExpired is a valid stored value but nothing assigns it;
	// the list view derives an expired look from ValidUntil instead.
	QuoteStatusExpired QuoteStatus = "expired"
)

type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountAmount     DiscountKind = "amount"
)

// Discount is an optional rebate on an item or on the whole quote.
// A nil Discount or a zero Value means no discount is applied.
type Discount struct {
	Kind  DiscountKind `json:"type"`
	Value float64      `json:"value"`
}

func (d *Discount) Applies() bool {
	return d != nil && d.Value > 0
}

type QuoteItem struct {
	ID              uuid.UUID `json:"id"`
	Description     string    `json:"description"`
	Quantity        float64   `json:"quantity"`
	Unit            string    `json:"unit"`
	Price           float64   `json:"price"`
	Discount        *Discount `json:"discount,omitempty"`
	HasROTDeduction bool      `json:"hasRotDeduction,omitempty"`
}

type Recipient struct {
	Name        string `json:"name"`
	CompanyName string `json:"companyName,omitempty"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}

type Quote struct {
	ID            uuid.UUID   `json:"id"`
	Number        string      `json:"number"`
	Title         string      `json:"title"`
	CreatedAt     time.Time   `json:"createdAt"`
	ValidUntil    time.Time   `json:"validUntil"`
	Status        QuoteStatus `json:"status"`
	Recipient     Recipient   `json:"recipient"`
	Items         []QuoteItem `json:"items"`
	Notes         string      `json:"notes,omitempty"`
	Terms         string      `json:"terms,omitempty"`
	TotalDiscount *Discount   `json:"totalDiscount,omitempty"`
}

// LooksExpired reports the derived display state of a stale draft. The stored
// status is never mutated by it.
func (q Quote) LooksExpired(now time.Time) bool {
	return q.Status == QuoteStatusDraft && q.ValidUntil.Before(now)
}
