package entities

import "github.com/shopspring/decimal"

// Fee is a percentage-based fee definition (service charge, cover charge).
// A nil percentage is legal and yields a zero fee amount.
type Fee struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
	OwnerID    int64            `json:"owner_id"`
}
