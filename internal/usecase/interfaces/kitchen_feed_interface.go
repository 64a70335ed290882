package interfaces

import (
	"context"

	"comanda/internal/domain/entities"
)

// IKitchenFeed pushes just-persisted orders to the real-time kitchen channel.
// Delivery is fire-and-forget: callers log a failure and move on, they never
// roll back the committed write.

type IKitchenFeed interface {
	PublishOrder(ctx context.Context, o entities.Order) error
}
