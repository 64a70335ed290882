package presenter

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"comanda/internal/domain/entities"
)

// isoLocalDateTime matches the wire format the dashboard expects for
// finished_at (ISO-8601 local date-time, no zone offset).
const isoLocalDateTime = "2006-01-02T15:04:05"

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// KitchenOrderView is the compact, display-ready projection pushed to the
// kitchen feed and served by the today's-orders endpoint. All formatting is
// done here; the pricing and lifecycle core never sees locale concerns.
type KitchenOrderView struct {
	ID         string   `json:"id"`
	OrderID    string   `json:"order_id"`
	Table      string   `json:"table"`
	Items      []string `json:"items"`
	Total      string   `json:"total"`
	Time       string   `json:"time"`
	Status     string   `json:"status"`
	FinishedAt *string  `json:"finished_at"`
}

// FromOrder projects an order into its kitchen view: zero-padded display id,
// "Mesa N" table label, "{qty}x {name}" item lines, pt-BR currency total,
// HH:mm creation time and ISO finished_at (null until DONE).
func FromOrder(o entities.Order) KitchenOrderView {
	items := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, fmt.Sprintf("%dx %s", it.Quantity, it.MenuName))
	}

	var finishedAt *string
	if o.FinishedAt != nil {
		v := o.FinishedAt.Format(isoLocalDateTime)
		finishedAt = &v
	}

	return KitchenOrderView{
		ID:         strconv.FormatInt(o.ID, 10),
		OrderID:    fmt.Sprintf("#%04d", o.ID),
		Table:      fmt.Sprintf("Mesa %d", o.TableNumber),
		Items:      items,
		Total:      FormatCurrencyBRL(o.FinalTotalPrice.InexactFloat64()),
		Time:       o.CreatedAt.Format("15:04"),
		Status:     string(o.Status),
		FinishedAt: finishedAt,
	}
}

// FromOrders projects a slice, preserving store order.
func FromOrders(orders []entities.Order) []KitchenOrderView {
	views := make([]KitchenOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, FromOrder(o))
	}
	return views
}

// FormatCurrencyBRL renders an amount the way a Brazilian till prints it:
// "R$ 1.234,56".
func FormatCurrencyBRL(amount float64) string {
	return ptBR.Sprintf("R$ %v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatClock is a small helper for feed consumers printing event times.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}
