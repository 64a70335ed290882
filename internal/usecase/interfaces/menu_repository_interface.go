package interfaces

import (
	"context"

	"comanda/internal/domain/entities"
)

// IMenuRepository is the read-only menu lookup the pricer depends on.
// A zero-valued Menu (ID == 0) means the id does not exist.

type IMenuRepository interface {
	GetByID(ctx context.Context, id int64) (entities.Menu, error)
}
