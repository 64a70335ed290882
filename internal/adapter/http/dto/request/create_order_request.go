package request

import (
	"errors"
	"strings"

	"comanda/internal/usecase"
)

var (
	ErrMissingTableNumber = errors.New("table_number is required")
	ErrMissingCreatedBy   = errors.New("created_by is required")
	ErrInvalidQuantity    = errors.New("item quantity must be at least 1")
	ErrCommentTooLong     = errors.New("additional_comment must not exceed 500 characters")
)

const maxCommentLength = 500

type OrderItemRequest struct {
	MenuID   int64 `json:"menu_id" binding:"required"`
	Quantity int   `json:"quantity" binding:"required"`
}

// CreateOrderRequest is the inbound payload for registering a table's order.
// Items and applied_fee_ids may be empty: draft orders price to zero.
type CreateOrderRequest struct {
	TableNumber       int                `json:"table_number" binding:"required"`
	Items             []OrderItemRequest `json:"items"`
	AppliedFeeIDs     []int64            `json:"applied_fee_ids"`
	AdditionalComment string             `json:"additional_comment"`
	CreatedBy         int64              `json:"created_by" binding:"required"`
}

// Validate enforces the caller contract before the command reaches pricing.
func (r CreateOrderRequest) Validate() error {
	if r.TableNumber < 1 {
		return ErrMissingTableNumber
	}
	if r.CreatedBy < 1 {
		return ErrMissingCreatedBy
	}
	for _, it := range r.Items {
		if it.Quantity < 1 {
			return ErrInvalidQuantity
		}
	}
	if len(r.AdditionalComment) > maxCommentLength {
		return ErrCommentTooLong
	}
	return nil
}

// ToCommand translates the payload into the use case command.
func (r CreateOrderRequest) ToCommand() usecase.CreateOrderCommand {
	items := make([]usecase.OrderItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.OrderItemInput{MenuID: it.MenuID, Quantity: it.Quantity})
	}
	return usecase.CreateOrderCommand{
		TableNumber:       r.TableNumber,
		Items:             items,
		AppliedFeeIDs:     r.AppliedFeeIDs,
		AdditionalComment: strings.TrimSpace(r.AdditionalComment),
		CreatedBy:         r.CreatedBy,
	}
}

// UpdateOrderStatusRequest carries the requested preparation status.
// Matching is case-insensitive; unknown values are rejected downstream.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
