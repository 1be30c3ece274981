package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Nafiz37/Event-Ekhanei-sub000/entity"
)

var (
	bookings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickets",
			Name:      "bookings_total",
			Help:      "Booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	cancellations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickets",
			Name:      "cancellations_total",
			Help:      "Cancellation attempts by outcome",
		},
		[]string{"outcome"},
	)

	checkIns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickets",
			Name:      "check_ins_total",
			Help:      "Check-in attempts by outcome",
		},
		[]string{"outcome"},
	)

	refunds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tickets",
			Name:      "refund_amount",
			Help:      "Amount refunded per cancelled booking",
			Buckets:   prometheus.ExponentialBuckets(50, 2, 8),
		},
		[]string{"percentage"},
	)
)

// TrackBooking records the outcome of a booking attempt.
func TrackBooking(err error) {
	bookings.WithLabelValues(entity.ErrorKind(err)).Inc()
}

func TrackCancellation(cancellation entity.Cancellation, err error) {
	cancellations.WithLabelValues(entity.ErrorKind(err)).Inc()
	if err != nil {
		return
	}

	amount, _ := cancellation.RefundAmount.Float64()
	refunds.WithLabelValues(percentageLabel(cancellation.RefundPercentage)).Observe(amount)
}

func TrackCheckIn(err error) {
	checkIns.WithLabelValues(entity.ErrorKind(err)).Inc()
}

func percentageLabel(percentage int) string {
	switch percentage {
	case 100:
		return "100"
	case 50:
		return "50"
	default:
		return "other"
	}
}
