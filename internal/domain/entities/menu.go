package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Menu is a menu item owned by a restaurant account. Only the current price
// (and name) at order time are captured into an order; the entity itself is
// managed by the menu CRUD outside this service.
type Menu struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	OwnerID     int64           `json:"owner_id"`
	CreatedAt   time.Time       `json:"created_at"`
}
