package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// OrderStatus represents the preparation lifecycle of an order.
//
// Domain notes:
//   - Transitions are forward-only: PENDING -> DOING -> DONE.
//   - Moving backwards is rejected; the kitchen never "un-prepares" an order.

type OrderStatus string

const (
	StatusPending OrderStatus = "PENDING"
	StatusDoing   OrderStatus = "DOING"
	StatusDone    OrderStatus = "DONE"
)

// ParseOrderStatus resolves a client-supplied status string case-insensitively.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusDoing:
		return StatusDoing, nil
	case StatusDone:
		return StatusDone, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s OrderStatus) rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusDoing:
		return 1
	case StatusDone:
		return 2
	default:
		return -1
	}
}

// OrderLineItem is a menu reference with the price and name captured at order
// time. Later menu edits never affect a placed order.
type OrderLineItem struct {
	MenuID   int64           `json:"menu_id"`
	MenuName string          `json:"menu_name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// AppliedFee is a fee computed from a fee definition's percentage at order
// time. A snapshot, not a live reference.
type AppliedFee struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Order is the aggregate root.
//
// Storage model (DynamoDB):
//   - PK: id (number, allocated by the store)
//   - GSI (owner_id-created_at-index): owner_id + created_at
//
// Version backs optimistic locking on status transitions.
type Order struct {
	ID                int64           `json:"id"`
	TableNumber       int             `json:"table_number"`
	Items             []OrderLineItem `json:"items"`
	AppliedFees       []AppliedFee    `json:"applied_fees"`
	AdditionalComment string          `json:"additional_comment,omitempty"`
	TotalOrderPrice   decimal.Decimal `json:"total_order_price"`
	TotalFeesValue    decimal.Decimal `json:"total_fees_value"`
	FinalTotalPrice   decimal.Decimal `json:"final_total_price"`
	Status            OrderStatus     `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	StartedAt         *time.Time      `json:"started_at,omitempty"`
	FinishedAt        *time.Time      `json:"finished_at,omitempty"`
	OwnerID           int64           `json:"owner_id"`
	Version           int64           `json:"-"`
}

// ApplyStatus advances the order to target, stamping startedAt/finishedAt as
// the lifecycle requires. It reports whether the order actually changed:
// requesting the current status again is accepted as a no-op, and finishedAt
// is set exactly once.
func (o *Order) ApplyStatus(target OrderStatus, now time.Time) (bool, error) {
	if target.rank() < o.Status.rank() {
		return false, ErrInvalidTransition
	}
	if target == o.Status {
		return false, nil
	}

	switch target {
	case StatusDoing:
		if o.StartedAt == nil {
			t := now
			o.StartedAt = &t
		}
	case StatusDone:
		if o.FinishedAt == nil {
			t := now
			o.FinishedAt = &t
		}
	}
	o.Status = target
	return true, nil
}
