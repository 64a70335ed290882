package interfaces

import (
	"context"

	"comanda/internal/domain/entities"
)

// IFeeRepository is the read-only fee-definition lookup.
// ListByIDs returns only the subset that exists; missing ids are dropped,
// not reported. That permissive contract is load-bearing for order pricing.

type IFeeRepository interface {
	ListByIDs(ctx context.Context, ids []int64) ([]entities.Fee, error)
}
