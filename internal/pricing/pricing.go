// Package pricing computes quote totals. All functions are pure and work on
// raw IEEE-754 doubles; rounding happens only at display formatting.
package pricing

import (
	"math"

	"github.com/hsvanberg/offert-service/internal/model"
)

// ROTRate is the flat Swedish ROT deduction applied to eligible labor items.
// The statutory per-person yearly cap is intentionally not enforced.
const ROTRate = 0.3

// ItemPrice returns the line amount after the item's own discount.
// Percentage discounts are applied unclamped, so a discount above 100%
// produces a negative amount. Fixed-amount discounts are clamped at zero.
func ItemPrice(item model.QuoteItem) float64 {
	base := number(item.Quantity) * number(item.Price)

	if !item.Discount.Applies() {
		return base
	}

	if item.Discount.Kind == model.DiscountPercentage {
		return base * (1 - item.Discount.Value/100)
	}
	return math.Max(0, base-item.Discount.Value)
}

// ItemROTDeduction returns 30% of the discounted line amount for items
// flagged as ROT-eligible, zero otherwise.
func ItemROTDeduction(item model.QuoteItem) float64 {
	if !item.HasROTDeduction {
		return 0
	}
	return ItemPrice(item) * ROTRate
}

// Subtotal sums the discounted line amounts in sequence order.
func Subtotal(items []model.QuoteItem) float64 {
	sum := 0.0
	for _, item := range items {
		sum += ItemPrice(item)
	}
	return sum
}

// Total applies the optional whole-quote discount on top of the subtotal,
// with the same unclamped-percentage / clamped-amount rule as ItemPrice.
func Total(items []model.QuoteItem, discount *model.Discount) float64 {
	subtotal := Subtotal(items)

	if !discount.Applies() {
		return subtotal
	}

	if discount.Kind == model.DiscountPercentage {
		return subtotal * (1 - discount.Value/100)
	}
	return math.Max(0, subtotal-discount.Value)
}

// TotalROTDeduction sums the deduction over ROT-flagged items.
func TotalROTDeduction(items []model.QuoteItem) float64 {
	sum := 0.0
	for _, item := range items {
		sum += ItemROTDeduction(item)
	}
	return sum
}

// Summary carries every derived amount the views need. TotalAfterROT is
// always computed here and never persisted.
type Summary struct {
	Subtotal      float64 `json:"subtotal"`
	Total         float64 `json:"total"`
	ROTDeduction  float64 `json:"rotDeduction"`
	TotalAfterROT float64 `json:"totalAfterRot"`
	HasROTItems   bool    `json:"hasRotItems"`
}

// Summarize computes the full display summary for a quote.
func Summarize(quote model.Quote) Summary {
	total := Total(quote.Items, quote.TotalDiscount)
	rot := TotalROTDeduction(quote.Items)

	hasROT := false
	for _, item := range quote.Items {
		if item.HasROTDeduction {
			hasROT = true
			break
		}
	}

	return Summary{
		Subtotal:      Subtotal(quote.Items),
		Total:         total,
		ROTDeduction:  rot,
		TotalAfterROT: total - rot,
		HasROTItems:   hasROT,
	}
}

// number guards sums against NaN leaking in from unparsed form input.
func number(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
