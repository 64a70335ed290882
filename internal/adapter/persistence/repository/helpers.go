package repository

import (
	"os"
	"time"

	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Money and timestamps are stored as strings: decimal text keeps cents exact
// and the fixed-width UTC layout sorts lexicographically, which the
// created_at range key relies on. RFC3339Nano would drop trailing zeros and
// break that ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func moneyToString(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func moneyFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func timeToString(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func timeFromString(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func optionalTimeToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return timeToString(*t)
}

func optionalTimeFromString(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := timeFromString(s)
	return &t
}
