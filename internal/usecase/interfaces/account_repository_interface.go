package interfaces

import (
	"context"

	"comanda/internal/domain/entities"
)

// IAccountRepository resolves the creator of an order to an account.
// A zero-valued Account (UserID == 0) means the id does not exist.

type IAccountRepository interface {
	GetByUserID(ctx context.Context, userID int64) (entities.Account, error)
}
