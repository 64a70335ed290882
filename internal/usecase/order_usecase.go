package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrMenuNotFound       = errors.New("menu not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrOrderConflict      = errors.New("order was modified concurrently")
	ErrInvalidTableNumber = errors.New("invalid table number")
	ErrInvalidQuantity    = errors.New("invalid item quantity")
	ErrInvalidCreatedBy   = errors.New("invalid creator id")
	ErrCommentTooLong     = errors.New("additional comment too long")
)

const maxCommentLength = 500

// OrderItemInput is a raw line item as received from the inbound surface.
type OrderItemInput struct {
	MenuID   int64
	Quantity int
}

// CreateOrderCommand carries everything needed to price and persist an order.
// CreatedBy is the staff account registering the order; the owner the order is
// scoped to is resolved from it.
type CreateOrderCommand struct {
	TableNumber       int
	Items             []OrderItemInput
	AppliedFeeIDs     []int64
	AdditionalComment string
	CreatedBy         int64
}

// IOrderUseCase exposes the order engine operations:
//   - CreateOrder: price, persist and announce a new order
//   - UpdateOrderStatus: advance the preparation lifecycle
//   - ListTodayOrders: today's orders for an owner's kitchen dashboard
//   - AveragePreparationMinutes: mean preparation time for today's DONE orders

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) (entities.Order, error)
	ListTodayOrders(ctx context.Context, ownerID int64) ([]entities.Order, error)
	AveragePreparationMinutes(ctx context.Context, ownerID int64) (float64, error)
}

type OrderUseCase struct {
	orders   interfaces.IOrderRepository
	menus    interfaces.IMenuRepository
	fees     interfaces.IFeeRepository
	accounts interfaces.IAccountRepository
	feed     interfaces.IKitchenFeed
	log      *slog.Logger
	now      func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	menus interfaces.IMenuRepository,
	fees interfaces.IFeeRepository,
	accounts interfaces.IAccountRepository,
	feed interfaces.IKitchenFeed,
	log *slog.Logger,
) *OrderUseCase {
	if log == nil {
		log = slog.Default()
	}
	return &OrderUseCase{
		orders:   orders,
		menus:    menus,
		fees:     fees,
		accounts: accounts,
		feed:     feed,
		log:      log,
		now:      time.Now,
	}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error) {
	if cmd.TableNumber < 1 {
		return entities.Order{}, ErrInvalidTableNumber
	}
	if cmd.CreatedBy < 1 {
		return entities.Order{}, ErrInvalidCreatedBy
	}
	if len(cmd.AdditionalComment) > maxCommentLength {
		return entities.Order{}, ErrCommentTooLong
	}

	account, err := u.accounts.GetByUserID(ctx, cmd.CreatedBy)
	if err != nil {
		return entities.Order{}, err
	}
	if account.UserID == 0 {
		return entities.Order{}, fmt.Errorf("%w: %d", ErrAccountNotFound, cmd.CreatedBy)
	}

	items, err := u.buildLineItems(ctx, cmd.Items)
	if err != nil {
		return entities.Order{}, err
	}

	orderTotal := totalOrderPrice(items)
	appliedFees, err := u.resolveFees(ctx, cmd.AppliedFeeIDs, orderTotal)
	if err != nil {
		return entities.Order{}, err
	}
	feesTotal := totalFeesValue(appliedFees)

	order := entities.Order{
		TableNumber:       cmd.TableNumber,
		Items:             items,
		AppliedFees:       appliedFees,
		AdditionalComment: cmd.AdditionalComment,
		TotalOrderPrice:   orderTotal,
		TotalFeesValue:    feesTotal,
		FinalTotalPrice:   orderTotal.Add(feesTotal),
		Status:            entities.StatusPending,
		OwnerID:           account.OwnerID,
	}

	saved, err := u.orders.Create(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}

	u.notifyKitchen(ctx, saved)
	return saved, nil
}

func (u *OrderUseCase) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (entities.Order, error) {
	target, err := entities.ParseOrderStatus(status)
	if err != nil {
		return entities.Order{}, err
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == 0 {
		return entities.Order{}, fmt.Errorf("%w: %d", ErrOrderNotFound, orderID)
	}

	changed, err := order.ApplyStatus(target, u.now())
	if err != nil {
		return entities.Order{}, err
	}
	if !changed {
		return order, nil
	}

	updated, err := u.orders.Update(ctx, order)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Order{}, ErrOrderConflict
		}
		return entities.Order{}, err
	}

	u.notifyKitchen(ctx, updated)
	return updated, nil
}

func (u *OrderUseCase) ListTodayOrders(ctx context.Context, ownerID int64) ([]entities.Order, error) {
	start, end := todayWindow(u.now())
	return u.orders.ListByOwnerAndCreatedBetween(ctx, ownerID, start, end)
}

func (u *OrderUseCase) AveragePreparationMinutes(ctx context.Context, ownerID int64) (float64, error) {
	start, end := todayWindow(u.now())
	seconds, ok, err := u.orders.AveragePreparationSeconds(ctx, ownerID, start, end)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0.0, nil
	}
	return seconds / 60.0, nil
}

func (u *OrderUseCase) buildLineItems(ctx context.Context, inputs []OrderItemInput) ([]entities.OrderLineItem, error) {
	items := make([]entities.OrderLineItem, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		menu, err := u.menus.GetByID(ctx, in.MenuID)
		if err != nil {
			return nil, err
		}
		if menu.ID == 0 {
			return nil, fmt.Errorf("%w: %d", ErrMenuNotFound, in.MenuID)
		}
		items = append(items, entities.OrderLineItem{
			MenuID:   menu.ID,
			MenuName: menu.Name,
			Quantity: in.Quantity,
			Price:    menu.Price,
		})
	}
	return items, nil
}

// resolveFees looks up the requested fee definitions and applies them against
// basePrice. Ids that resolve to nothing are dropped silently; that is the
// supported contract, not an oversight.
func (u *OrderUseCase) resolveFees(ctx context.Context, feeIDs []int64, basePrice decimal.Decimal) ([]entities.AppliedFee, error) {
	if len(feeIDs) == 0 {
		return []entities.AppliedFee{}, nil
	}
	defs, err := u.fees.ListByIDs(ctx, feeIDs)
	if err != nil {
		return nil, err
	}
	return applyFees(defs, basePrice), nil
}

// notifyKitchen is best-effort: the order is already committed, a feed outage
// must not fail the request.
func (u *OrderUseCase) notifyKitchen(ctx context.Context, order entities.Order) {
	if err := u.feed.PublishOrder(ctx, order); err != nil {
		u.log.Error("kitchen feed publish failed",
			slog.Int64("order_id", order.ID),
			slog.String("status", string(order.Status)),
			slog.String("error", err.Error()),
		)
	}
}

// todayWindow returns the server-local calendar day containing now, closed at
// both ends (23:59:59.999999999).
func todayWindow(now time.Time) (time.Time, time.Time) {
	year, month, day := now.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}
