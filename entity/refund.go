package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	FullRefundNotice    = 7 * 24 * time.Hour
	PartialRefundNotice = 2 * 24 * time.Hour
)

// RefundPercentage returns the share of the ticket price refunded when a
// booking is cancelled at now for an event starting at startTime.
func RefundPercentage(startTime, now time.Time) (int, error) {
	untilStart := startTime.Sub(now)
	switch {
	case untilStart > FullRefundNotice:
		return 100, nil
	case untilStart > PartialRefundNotice:
		return 50, nil
	default:
		return 0, ErrCancellationWindowClosed
	}
}

func RefundAmount(price decimal.Decimal, percentage int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(percentage))).Div(decimal.NewFromInt(100)).Round(2)
}
