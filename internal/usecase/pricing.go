package usecase

import (
	"github.com/shopspring/decimal"

	"comanda/internal/domain/entities"
)

var oneHundred = decimal.NewFromInt(100)

// ComputeFee derives the monetary amount of a single fee definition applied
// to basePrice. The amount is basePrice * percentage / 100 rounded to two
// decimal places with banker's rounding (round half to even); the rounding
// mode matters, it moves totals by a cent in tie cases. A definition with no
// percentage contributes zero.
func ComputeFee(basePrice decimal.Decimal, def entities.Fee) entities.AppliedFee {
	amount := decimal.Zero
	if def.Percentage != nil {
		amount = basePrice.Mul(*def.Percentage).Div(oneHundred).RoundBank(2)
	}
	return entities.AppliedFee{Name: def.Name, Amount: amount}
}

// totalOrderPrice is the exact decimal sum of price * quantity over the line
// items. An empty list prices to zero; draft orders are legal.
func totalOrderPrice(items []entities.OrderLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

func totalFeesValue(fees []entities.AppliedFee) decimal.Decimal {
	total := decimal.Zero
	for _, f := range fees {
		total = total.Add(f.Amount)
	}
	return total
}

// applyFees computes an AppliedFee per resolved definition against basePrice.
func applyFees(defs []entities.Fee, basePrice decimal.Decimal) []entities.AppliedFee {
	fees := make([]entities.AppliedFee, 0, len(defs))
	for _, def := range defs {
		fees = append(fees, ComputeFee(basePrice, def))
	}
	return fees
}
