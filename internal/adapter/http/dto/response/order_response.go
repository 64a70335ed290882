package response

import (
	"time"

	"comanda/internal/domain/entities"
)

type OrderLineItemResponse struct {
	MenuID   int64  `json:"menu_id"`
	MenuName string `json:"menu_name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

type AppliedFeeResponse struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// OrderResponse is the full order representation returned by the create and
// status endpoints. Monetary fields are fixed-point strings; the three totals
// are the persisted values, never recomputed on read.
type OrderResponse struct {
	ID                int64                   `json:"id"`
	TableNumber       int                     `json:"table_number"`
	Items             []OrderLineItemResponse `json:"items"`
	AppliedFees       []AppliedFeeResponse    `json:"applied_fees"`
	AdditionalComment string                  `json:"additional_comment,omitempty"`
	TotalOrderPrice   string                  `json:"total_order_price"`
	TotalFeesValue    string                  `json:"total_fees_value"`
	FinalTotalPrice   string                  `json:"final_total_price"`
	Status            string                  `json:"status"`
	CreatedAt         time.Time               `json:"created_at"`
	StartedAt         *time.Time              `json:"started_at,omitempty"`
	FinishedAt        *time.Time              `json:"finished_at,omitempty"`
	OwnerID           int64                   `json:"owner_id"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderLineItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderLineItemResponse{
			MenuID:   it.MenuID,
			MenuName: it.MenuName,
			Quantity: it.Quantity,
			Price:    it.Price.StringFixed(2),
		})
	}
	fees := make([]AppliedFeeResponse, 0, len(o.AppliedFees))
	for _, f := range o.AppliedFees {
		fees = append(fees, AppliedFeeResponse{Name: f.Name, Amount: f.Amount.StringFixed(2)})
	}
	return OrderResponse{
		ID:                o.ID,
		TableNumber:       o.TableNumber,
		Items:             items,
		AppliedFees:       fees,
		AdditionalComment: o.AdditionalComment,
		TotalOrderPrice:   o.TotalOrderPrice.StringFixed(2),
		TotalFeesValue:    o.TotalFeesValue.StringFixed(2),
		FinalTotalPrice:   o.FinalTotalPrice.StringFixed(2),
		Status:            string(o.Status),
		CreatedAt:         o.CreatedAt,
		StartedAt:         o.StartedAt,
		FinishedAt:        o.FinishedAt,
		OwnerID:           o.OwnerID,
	}
}

// AverageTimeResponse wraps the kitchen-performance aggregate.
type AverageTimeResponse struct {
	AveragePreparationMinutes float64 `json:"average_preparation_minutes"`
}
