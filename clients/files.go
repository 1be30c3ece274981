package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ThreeDotsLabs/go-event-driven/common/clients"
	"github.com/ThreeDotsLabs/go-event-driven/common/clients/files"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/shopspring/decimal"
)

const printTicketFileTemplate = `<html><body>
Booking ID: %s
Check-in code: %s
Price: %s %s
</body></html>`

type FilesClient struct {
	client files.ClientWithResponsesInterface
}

func NewFilesClient(c *clients.Clients) FilesClient {
	return FilesClient{
		client: c.Files,
	}
}

// GenerateTicket uploads a printable ticket carrying the check-in code and
// returns its file id.
func (c FilesClient) GenerateTicket(ctx context.Context, bookingID, code string, price decimal.Decimal) (string, error) {
	fileID := fmt.Sprintf("%s-ticket.html", bookingID)
	fileContent := fmt.Sprintf(printTicketFileTemplate, bookingID, code, price.StringFixed(2), Currency)

	res, err := c.client.PutFilesFileIdContentWithTextBodyWithResponse(ctx, fileID, fileContent)
	if err != nil {
		return "", fmt.Errorf("put file request: %w", err)
	}

	if res.StatusCode() == http.StatusConflict {
		log.FromContext(ctx).Infof("file %s already exists", fileID)
		return fileID, nil
	}

	if res.StatusCode() != http.StatusOK && res.StatusCode() != http.StatusCreated {
		return "", fmt.Errorf("unexpected status code: %d", res.StatusCode())
	}

	return fileID, nil
}
