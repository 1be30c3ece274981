package message

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

type mockReceiptsClient struct {
	lock     sync.Mutex
	Issued   []issueReceiptRequest
	Voided   []string
	IssueErr error
}

type issueReceiptRequest struct {
	idempotencyKey string
	bookingID      string
	price          decimal.Decimal
}

func (m *mockReceiptsClient) IssueReceipt(_ context.Context, idempotencyKey, bookingID string, price decimal.Decimal) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.IssueErr != nil {
		return m.IssueErr
	}
	m.Issued = append(m.Issued, issueReceiptRequest{idempotencyKey: idempotencyKey, bookingID: bookingID, price: price})
	return nil
}

func (m *mockReceiptsClient) VoidReceipt(_ context.Context, _, bookingID string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.Voided = append(m.Voided, bookingID)
	return nil
}

type mockSpreadsheetAppender struct {
	lock         sync.Mutex
	RowsAppended []appendRowRequest
}

type appendRowRequest struct {
	spreadsheetName string
	row             []string
}

func (m *mockSpreadsheetAppender) AppendRow(_ context.Context, spreadsheetName string, row []string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.RowsAppended = append(m.RowsAppended, appendRowRequest{spreadsheetName: spreadsheetName, row: row})
	return nil
}

type mockTicketGenerator struct {
	lock  sync.Mutex
	Codes map[string]string
}

func (m *mockTicketGenerator) GenerateTicket(_ context.Context, bookingID, code string, _ decimal.Decimal) (string, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.Codes == nil {
		m.Codes = map[string]string{}
	}
	m.Codes[bookingID] = code
	return bookingID + "-ticket.html", nil
}

type mockPaymentRefunder struct {
	lock     sync.Mutex
	Refunded map[string]decimal.Decimal
}

func (m *mockPaymentRefunder) RefundPayment(_ context.Context, _, bookingID string, amount decimal.Decimal) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.Refunded == nil {
		m.Refunded = map[string]decimal.Decimal{}
	}
	m.Refunded[bookingID] = amount
	return nil
}

type mockCommandSender struct {
	lock sync.Mutex
	Sent []any
}

func (m *mockCommandSender) Send(_ context.Context, cmd any) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.Sent = append(m.Sent, cmd)
	return nil
}
