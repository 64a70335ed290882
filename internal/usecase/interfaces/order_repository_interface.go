package interfaces

import (
	"context"
	"errors"
	"time"

	"comanda/internal/domain/entities"
)

// ErrVersionConflict is returned by Update when the persisted version no
// longer matches the one the caller loaded. Two concurrent transitions for
// the same order id cannot both win.
var ErrVersionConflict = errors.New("order version conflict")

// IOrderRepository abstracts DynamoDB persistence for the Order aggregate.
//
// The order engine must be able to:
//   - persist a priced order (id and created_at are assigned here)
//   - load an order for a status transition
//   - update with read-modify-write atomicity per order id
//   - range-query by owner and creation time for the kitchen dashboard
//   - compute the average preparation aggregate at the store boundary

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id int64) (entities.Order, error)
	Update(ctx context.Context, o entities.Order) (entities.Order, error)
	ListByOwnerAndCreatedBetween(ctx context.Context, ownerID int64, start, end time.Time) ([]entities.Order, error)
	AveragePreparationSeconds(ctx context.Context, ownerID int64, start, end time.Time) (float64, bool, error)
}
