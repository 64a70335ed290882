package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"
	mock_interfaces "comanda/internal/usecase/interfaces/mocks"
)

type orderUseCaseMocks struct {
	orders   *mock_interfaces.MockIOrderRepository
	menus    *mock_interfaces.MockIMenuRepository
	fees     *mock_interfaces.MockIFeeRepository
	accounts *mock_interfaces.MockIAccountRepository
	feed     *mock_interfaces.MockIKitchenFeed
}

func newOrderUseCase(t *testing.T) (*OrderUseCase, orderUseCaseMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := orderUseCaseMocks{
		orders:   mock_interfaces.NewMockIOrderRepository(ctrl),
		menus:    mock_interfaces.NewMockIMenuRepository(ctrl),
		fees:     mock_interfaces.NewMockIFeeRepository(ctrl),
		accounts: mock_interfaces.NewMockIAccountRepository(ctrl),
		feed:     mock_interfaces.NewMockIKitchenFeed(ctrl),
	}
	uc := NewOrderUseCase(m.orders, m.menus, m.fees, m.accounts, m.feed, nil)
	return uc, m
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	burger := entities.Menu{ID: 10, Name: "X-Burger", Price: decimal.RequireFromString("50.00"), OwnerID: 1}
	waiter := entities.Account{UserID: 7, OwnerID: 1, Role: entities.RoleEmployee}

	t.Run("prices items and fees and announces the order", func(t *testing.T) {
		uc, m := newOrderUseCase(t)

		m.accounts.EXPECT().GetByUserID(gomock.Any(), int64(7)).Return(waiter, nil)
		m.menus.EXPECT().GetByID(gomock.Any(), int64(10)).Return(burger, nil)
		servicePct := decimal.RequireFromString("10")
		m.fees.EXPECT().ListByIDs(gomock.Any(), []int64{1}).Return([]entities.Fee{
			{ID: 1, Name: "Serviço", Percentage: &servicePct},
		}, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.TotalOrderPrice.StringFixed(2) != "100.00" {
					t.Fatalf("unexpected order total: %s", o.TotalOrderPrice)
				}
				if o.TotalFeesValue.StringFixed(2) != "10.00" {
					t.Fatalf("unexpected fee total: %s", o.TotalFeesValue)
				}
				if o.FinalTotalPrice.StringFixed(2) != "110.00" {
					t.Fatalf("unexpected final total: %s", o.FinalTotalPrice)
				}
				if o.Status != entities.StatusPending {
					t.Fatalf("new orders must start PENDING, got %s", o.Status)
				}
				if o.OwnerID != 1 {
					t.Fatalf("owner must come from the creator's account, got %d", o.OwnerID)
				}
				if len(o.Items) != 1 || o.Items[0].MenuName != "X-Burger" {
					t.Fatalf("unexpected items: %+v", o.Items)
				}
				o.ID = 42
				return o, nil
			},
		)
		m.feed.EXPECT().PublishOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) error {
				if o.ID != 42 {
					t.Fatalf("feed must carry the persisted order, got id %d", o.ID)
				}
				return nil
			},
		)

		order, err := uc.CreateOrder(context.Background(), CreateOrderCommand{
			TableNumber:   5,
			Items:         []OrderItemInput{{MenuID: 10, Quantity: 2}},
			AppliedFeeIDs: []int64{1},
			CreatedBy:     7,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.ID != 42 {
			t.Fatalf("expected persisted id, got %d", order.ID)
		}
	})

	t.Run("empty order prices to zero", func(t *testing.T) {
		uc, m := newOrderUseCase(t)

		m.accounts.EXPECT().GetByUserID(gomock.Any(), int64(7)).Return(waiter, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if !o.TotalOrderPrice.IsZero() || !o.TotalFeesValue.IsZero() || !o.FinalTotalPrice.IsZero() {
					t.Fatalf("empty order must price to zero: %+v", o)
				}
				o.ID = 1
				return o, nil
			},
		)
		m.feed.EXPECT().PublishOrder(gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.CreateOrder(context.Background(), CreateOrderCommand{TableNumber: 3, CreatedBy: 7})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown fee ids are dropped silently", func(t *testing.T) {
		uc, m := newOrderUseCase(t)

		m.accounts.EXPECT().GetByUserID(gomock.Any(), int64(7)).Return(waiter, nil)
		m.menus.EXPECT().GetByID(gomock.Any(), int64(10)).Return(burger, nil)
		servicePct := decimal.RequireFromString("10")
		// Only one of the two requested fee ids exists.
		m.fees.EXPECT().ListByIDs(gomock.Any(), []int64{1, 999}).Return([]entities.Fee{
			{ID: 1, Name: "Serviço", Percentage: &servicePct},
		}, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if len(o.AppliedFees) != 1 {
					t.Fatalf("expected 1 applied fee, got %d", len(o.AppliedFees))
				}
				if o.FinalTotalPrice.StringFixed(2) != "55.00" {
					t.Fatalf("unexpected final total: %s", o.FinalTotalPrice)
				}
				o.ID = 2
				return o, nil
			},
		)
		m.feed.EXPECT().PublishOrder(gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.CreateOrder(context.Background(), CreateOrderCommand{
			TableNumber:   5,
			Items:         []OrderItemInput{{MenuID: 10, Quantity: 1}},
			AppliedFeeIDs: []int64{1, 999},
			CreatedBy:     7,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("feed outage does not fail the request", func(t *testing.T) {
		uc, m := newOrderUseCase(t)

		m.accounts.EXPECT().GetByUserID(gomock.Any(), int64(7)).Return(waiter, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				o.ID = 3
				return o, nil
			},
		)
		m.feed.EXPECT().PublishOrder(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		order, err := uc.CreateOrder(context.Background(), CreateOrderCommand{TableNumber: 1, CreatedBy: 7})
		if err != nil {
			t.Fatalf("publish failure must not surface: %v", err)
		}
		if order.ID != 3 {
			t.Fatalf("expected the committed order back, got %+v", order)
		}
	})

	t.Run("invalid table number", func(t *testing.T) {
		uc, _ := newOrderUseCase(t)
		_, err := uc.CreateOrder(context.Background(), CreateOrderCommand{TableNumber: 0, CreatedBy: 7})
		if !errors.Is(err, ErrInvalidTableNumber) {
			t.Fatalf("expected ErrInvalidTableNumber, got %v", err)
		}
	})

	t.Run("invalid creator", func(t *testing.T) {
		uc, _ := newOrderUseCase(t)
		_, err := uc.CreateOrder(context.Background(), CreateOrderCommand{TableNumber: 1})
		if !errors.Is(err, ErrInvalidCreatedBy) {
			t.Fatalf("expected ErrInvalidCreatedBy, got %v", err)
		}
	})

	t.Run("comment too long", func(t *testing.T) {
		uc, _ := newOrderUseCase(t)
		long := make([]byte, maxCommentLength+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err := uc.CreateOrder(context.Background(), CreateOrderCommand{
			TableNumber:       1,
			CreatedBy:         7,
			AdditionalComment: string(long),
		})
		if !errors.Is(err, ErrCommentTooLong) {
			t.Fatalf("expected ErrCommentTooLong, got %v", err)
		}
	})

	t.Run("creator account not found", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.accounts.EXPECT().GetByUserID(gomock.Any(), int64(99)).Return(entities.Account{}, nil)

		_, err := uc.CreateOrder(context.Background(), CreateOrderCommand{TableNumber: 1, CreatedBy: 99})
		if !errors.Is(err, ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("menu not found", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.accounts.EXPECT().GetByUserID(gomock.Any(), int64(7)).Return(waiter, nil)
		m.menus.EXPECT().GetByID(gomock.Any(), int64(404)).Return(entities.Menu{}, nil)

		_, err := uc.CreateOrder(context.Background(), CreateOrderCommand{
			TableNumber: 1,
			Items:       []OrderItemInput{{MenuID: 404, Quantity: 1}},
			CreatedBy:   7,
		})
		if !errors.Is(err, ErrMenuNotFound) {
			t.Fatalf("expected ErrMenuNotFound, got %v", err)
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.accounts.EXPECT().GetByUserID(gomock.Any(), int64(7)).Return(waiter, nil)

		_, err := uc.CreateOrder(context.Background(), CreateOrderCommand{
			TableNumber: 1,
			Items:       []OrderItemInput{{MenuID: 10, Quantity: 0}},
			CreatedBy:   7,
		})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}

func TestOrderUseCase_UpdateOrderStatus(t *testing.T) {
	startedClock := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	finishedClock := startedClock.Add(15 * time.Minute)

	t.Run("pending to doing stamps started_at and announces", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		uc.now = func() time.Time { return startedClock }

		m.orders.EXPECT().GetByID(gomock.Any(), int64(42)).Return(entities.Order{ID: 42, Status: entities.StatusPending, Version: 1}, nil)
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Status != entities.StatusDoing {
					t.Fatalf("expected DOING, got %s", o.Status)
				}
				if o.StartedAt == nil || !o.StartedAt.Equal(startedClock) {
					t.Fatalf("expected started_at = %v, got %v", startedClock, o.StartedAt)
				}
				return o, nil
			},
		)
		m.feed.EXPECT().PublishOrder(gomock.Any(), gomock.Any()).Return(nil)

		order, err := uc.UpdateOrderStatus(context.Background(), 42, "doing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != entities.StatusDoing {
			t.Fatalf("expected DOING, got %s", order.Status)
		}
	})

	t.Run("doing to done stamps finished_at after started_at", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		uc.now = func() time.Time { return finishedClock }

		started := startedClock
		m.orders.EXPECT().GetByID(gomock.Any(), int64(42)).Return(entities.Order{
			ID: 42, Status: entities.StatusDoing, StartedAt: &started, Version: 2,
		}, nil)
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.FinishedAt == nil || !o.FinishedAt.Equal(finishedClock) {
					t.Fatalf("expected finished_at = %v, got %v", finishedClock, o.FinishedAt)
				}
				if !o.StartedAt.Before(*o.FinishedAt) {
					t.Fatalf("started_at %v must precede finished_at %v", o.StartedAt, o.FinishedAt)
				}
				return o, nil
			},
		)
		m.feed.EXPECT().PublishOrder(gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.UpdateOrderStatus(context.Background(), 42, "DONE")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repeated done is a no-op with no write and no publish", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		finished := finishedClock
		m.orders.EXPECT().GetByID(gomock.Any(), int64(42)).Return(entities.Order{
			ID: 42, Status: entities.StatusDone, FinishedAt: &finished, Version: 3,
		}, nil)

		order, err := uc.UpdateOrderStatus(context.Background(), 42, "DONE")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !order.FinishedAt.Equal(finished) {
			t.Fatalf("finished_at must keep its first value, got %v", order.FinishedAt)
		}
	})

	t.Run("unknown status never reaches the store", func(t *testing.T) {
		uc, _ := newOrderUseCase(t)
		_, err := uc.UpdateOrderStatus(context.Background(), 42, "READY")
		if !errors.Is(err, entities.ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("moving backwards is rejected", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), int64(42)).Return(entities.Order{ID: 42, Status: entities.StatusDone, Version: 3}, nil)

		_, err := uc.UpdateOrderStatus(context.Background(), 42, "PENDING")
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), int64(404)).Return(entities.Order{}, nil)

		_, err := uc.UpdateOrderStatus(context.Background(), 404, "DOING")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("lost optimistic lock surfaces as conflict", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), int64(42)).Return(entities.Order{ID: 42, Status: entities.StatusPending, Version: 1}, nil)
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Order{}, interfaces.ErrVersionConflict)

		_, err := uc.UpdateOrderStatus(context.Background(), 42, "DOING")
		if !errors.Is(err, ErrOrderConflict) {
			t.Fatalf("expected ErrOrderConflict, got %v", err)
		}
	})

	t.Run("repo error passes through", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), int64(42)).Return(entities.Order{}, errors.New("db"))

		_, err := uc.UpdateOrderStatus(context.Background(), 42, "DOING")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestOrderUseCase_ListTodayOrders(t *testing.T) {
	uc, m := newOrderUseCase(t)
	clock := time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)
	uc.now = func() time.Time { return clock }

	want := []entities.Order{{ID: 1, OwnerID: 9}}
	m.orders.EXPECT().ListByOwnerAndCreatedBetween(gomock.Any(), int64(9), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, start, end time.Time) ([]entities.Order, error) {
			if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
				t.Fatalf("window must start at midnight, got %v", start)
			}
			if start.Day() != clock.Day() || end.Day() != clock.Day() {
				t.Fatalf("window must cover today: %v .. %v", start, end)
			}
			if !end.After(clock) {
				t.Fatalf("window end %v must cover the rest of the day", end)
			}
			return want, nil
		},
	)

	got, err := uc.ListTodayOrders(context.Background(), 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestOrderUseCase_AveragePreparationMinutes(t *testing.T) {
	t.Run("converts seconds to minutes", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().AveragePreparationSeconds(gomock.Any(), int64(9), gomock.Any(), gomock.Any()).Return(930.0, true, nil)

		minutes, err := uc.AveragePreparationMinutes(context.Background(), 9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if minutes != 15.5 {
			t.Fatalf("expected 15.5 minutes, got %v", minutes)
		}
	})

	t.Run("no finished orders yields zero", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().AveragePreparationSeconds(gomock.Any(), int64(9), gomock.Any(), gomock.Any()).Return(0.0, false, nil)

		minutes, err := uc.AveragePreparationMinutes(context.Background(), 9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if minutes != 0.0 {
			t.Fatalf("expected 0.0, got %v", minutes)
		}
	})

	t.Run("repo error passes through", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().AveragePreparationSeconds(gomock.Any(), int64(9), gomock.Any(), gomock.Any()).Return(0.0, false, errors.New("db"))

		_, err := uc.AveragePreparationMinutes(context.Background(), 9)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
