package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ThreeDotsLabs/go-event-driven/common/clients"
	"github.com/ThreeDotsLabs/go-event-driven/common/clients/payments"
	"github.com/shopspring/decimal"
)

// PaymentsClient talks to the mock payment provider. Bookings are paid for
// by reference to the booking id.
type PaymentsClient struct {
	client payments.ClientWithResponsesInterface
}

func NewPaymentsClient(c *clients.Clients) PaymentsClient {
	return PaymentsClient{
		client: c.Payments,
	}
}

func (c PaymentsClient) RefundPayment(ctx context.Context, idempotencyKey, bookingID string, amount decimal.Decimal) error {
	res, err := c.client.PutRefundsWithResponse(ctx, payments.PaymentRefundRequest{
		PaymentReference: bookingID,
		Reason:           fmt.Sprintf("booking cancelled, refund %s %s", amount.StringFixed(2), Currency),
		DeduplicationId:  &idempotencyKey,
	})
	if err != nil {
		return fmt.Errorf("put refund request: %w", err)
	}

	if res.StatusCode() != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", res.StatusCode())
	}

	return nil
}
