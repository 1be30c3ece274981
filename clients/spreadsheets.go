package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ThreeDotsLabs/go-event-driven/common/clients"
	"github.com/ThreeDotsLabs/go-event-driven/common/clients/spreadsheets"
)

// Tracker sheets kept for the back office.
const (
	RefundTrackerSheet  = "tickets-to-refund"
	CheckInTrackerSheet = "tickets-checked-in"
)

var trackerColumns = map[string][]string{
	RefundTrackerSheet:  {"booking_id", "user_id", "event_id", "refund_amount", "refund_percentage"},
	CheckInTrackerSheet: {"booking_id", "event_id", "attendee_id", "used_at"},
}

type SpreadsheetsClient struct {
	client spreadsheets.ClientWithResponsesInterface
}

func NewSpreadsheetsClient(c *clients.Clients) SpreadsheetsClient {
	return SpreadsheetsClient{
		client: c.Spreadsheets,
	}
}

// AppendRow adds a row to a tracker sheet. Rows for a known tracker must
// match its columns so the sheet never gets shifted values.
func (c SpreadsheetsClient) AppendRow(ctx context.Context, sheet string, row []string) error {
	if columns, ok := trackerColumns[sheet]; ok && len(row) != len(columns) {
		return fmt.Errorf("row for %s has %d values, want %d (%v)", sheet, len(row), len(columns), columns)
	}

	res, err := c.client.PostSheetsSheetRowsWithResponse(ctx, sheet, spreadsheets.PostSheetsSheetRowsJSONRequestBody{
		Columns: row,
	})
	if err != nil {
		return fmt.Errorf("appending row to %s: %w", sheet, err)
	}

	if res.StatusCode() != http.StatusOK {
		return fmt.Errorf("appending row to %s: unexpected status code: %d", sheet, res.StatusCode())
	}

	return nil
}
