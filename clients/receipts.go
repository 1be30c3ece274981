package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ThreeDotsLabs/go-event-driven/common/clients"
	"github.com/ThreeDotsLabs/go-event-driven/common/clients/receipts"
	"github.com/shopspring/decimal"
)

// Currency is the currency every ticket is priced in.
const Currency = "BDT"

type ReceiptsClient struct {
	clients *clients.Clients
}

func NewReceiptsClient(clients *clients.Clients) ReceiptsClient {
	return ReceiptsClient{
		clients: clients,
	}
}

func (c ReceiptsClient) IssueReceipt(ctx context.Context, idempotencyKey, bookingID string, price decimal.Decimal) error {
	body := receipts.CreateReceipt{
		IdempotencyKey: &idempotencyKey,
		TicketId:       bookingID,
		Price: receipts.Money{
			MoneyAmount:   price.StringFixed(2),
			MoneyCurrency: Currency,
		},
	}

	res, err := c.clients.Receipts.PutReceiptsWithResponse(ctx, body)
	if err != nil {
		return fmt.Errorf("put receipt request: %w", err)
	}

	switch res.StatusCode() {
	case http.StatusOK, http.StatusCreated:
		return nil
	default:
		return fmt.Errorf("unexpected status code: %v", res.StatusCode())
	}
}

func (c ReceiptsClient) VoidReceipt(ctx context.Context, idempotencyKey, bookingID string) error {
	res, err := c.clients.Receipts.PutVoidReceiptWithResponse(ctx, receipts.VoidReceiptRequest{
		Reason:       "booking cancelled",
		IdempotentId: &idempotencyKey,
		TicketId:     bookingID,
	})
	if err != nil {
		return fmt.Errorf("put void receipt request: %w", err)
	}

	if res.StatusCode() != http.StatusOK {
		return fmt.Errorf("unexpected status code: %v", res.StatusCode())
	}

	return nil
}
