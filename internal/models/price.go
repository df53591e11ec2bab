package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Price is either a numeric amount or an opaque label such as "Enterprise".
// In JSON it is a number or a string respectively.
type Price struct {
	amount  decimal.Decimal
	label   string
	numeric bool
}

// PriceAmount returns a numeric price
func PriceAmount(amount decimal.Decimal) Price {
	return Price{amount: amount, numeric: true}
}

// PriceInt returns a numeric price from a whole amount
func PriceInt(amount int64) Price {
	return PriceAmount(decimal.NewFromInt(amount))
}

// PriceLabel returns a non-numeric price label
func PriceLabel(label string) Price {
	return Price{label: label}
}

// IsNumeric reports whether the price carries an amount
func (p Price) IsNumeric() bool {
	return p.numeric
}

// Amount returns the numeric amount, zero for labels
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Label returns the label, empty for numeric prices
func (p Price) Label() string {
	return p.label
}

// IsZero reports whether the price carries neither an amount nor a label,
// as when the field was missing from the document
func (p Price) IsZero() bool {
	return !p.numeric && strings.TrimSpace(p.label) == ""
}

// IsFree reports whether the price is the numeric amount 0
func (p Price) IsFree() bool {
	return p.numeric && p.amount.IsZero()
}

// Discounted applies a percentage discount and rounds to the nearest
// whole unit. Label prices report ok=false. The result never leaves
// [0, amount] for non-negative amounts.
func (p Price) Discounted(percent int) (decimal.Decimal, bool) {
	if !p.numeric {
		return decimal.Zero, false
	}
	percent = min(max(percent, 0), 100)

	remaining := hundred.Sub(decimal.NewFromInt(int64(percent)))
	return p.amount.Mul(remaining).Div(hundred).Round(0), true
}

func (p Price) String() string {
	if p.numeric {
		return p.amount.String()
	}
	return p.label
}

// MarshalJSON writes numbers bare and labels as strings
func (p Price) MarshalJSON() ([]byte, error) {
	if p.numeric {
		return []byte(p.amount.String()), nil
	}
	return json.Marshal(p.label)
}

// UnmarshalJSON accepts a JSON number or string
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("price must be a number or a label")
	}

	if data[0] == '"' {
		var label string
		if err := json.Unmarshal(data, &label); err != nil {
			return fmt.Errorf("parse price label: %w", err)
		}
		*p = PriceLabel(label)
		return nil
	}

	amount, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("parse price amount: %w", err)
	}
	if amount.IsNegative() {
		return fmt.Errorf("price must not be negative: %s", amount)
	}
	*p = PriceAmount(amount)
	return nil
}

// DiscountedPrice returns the project's price after its discount
func (p Project) DiscountedPrice() (decimal.Decimal, bool) {
	return p.Price.Discounted(p.Discount)
}
