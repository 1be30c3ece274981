package service_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

type MockReceiptsClient struct {
	lock           sync.Mutex
	IssuedReceipts map[string]decimal.Decimal
	VoidedReceipts map[string]bool
}

func (m *MockReceiptsClient) IssueReceipt(_ context.Context, _, bookingID string, price decimal.Decimal) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.IssuedReceipts == nil {
		m.IssuedReceipts = map[string]decimal.Decimal{}
	}
	m.IssuedReceipts[bookingID] = price
	return nil
}

func (m *MockReceiptsClient) VoidReceipt(_ context.Context, _, bookingID string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.VoidedReceipts == nil {
		m.VoidedReceipts = map[string]bool{}
	}
	m.VoidedReceipts[bookingID] = true
	return nil
}

func (m *MockReceiptsClient) Issued(bookingID string) (decimal.Decimal, bool) {
	m.lock.Lock()
	defer m.lock.Unlock()

	price, ok := m.IssuedReceipts[bookingID]
	return price, ok
}

func (m *MockReceiptsClient) Voided(bookingID string) bool {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.VoidedReceipts[bookingID]
}

type MockPaymentRefunder struct {
	lock     sync.Mutex
	Refunded map[string]decimal.Decimal
}

func (m *MockPaymentRefunder) RefundPayment(_ context.Context, _, bookingID string, amount decimal.Decimal) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.Refunded == nil {
		m.Refunded = map[string]decimal.Decimal{}
	}
	m.Refunded[bookingID] = amount
	return nil
}

func (m *MockPaymentRefunder) Refund(bookingID string) (decimal.Decimal, bool) {
	m.lock.Lock()
	defer m.lock.Unlock()

	amount, ok := m.Refunded[bookingID]
	return amount, ok
}

type MockTicketGenerator struct {
	lock  sync.Mutex
	Codes map[string]string
}

func (m *MockTicketGenerator) GenerateTicket(_ context.Context, bookingID, code string, _ decimal.Decimal) (string, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.Codes == nil {
		m.Codes = map[string]string{}
	}
	m.Codes[bookingID] = code
	return bookingID + "-ticket.html", nil
}

func (m *MockTicketGenerator) Code(bookingID string) string {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.Codes[bookingID]
}

type MockSpreadsheetAppender struct {
	lock         sync.Mutex
	RowsAppended []AppendRowRequest
}

type AppendRowRequest struct {
	spreadsheetName string
	row             []string
}

func (m *MockSpreadsheetAppender) AppendRow(_ context.Context, spreadsheetName string, row []string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.RowsAppended = append(m.RowsAppended, AppendRowRequest{spreadsheetName: spreadsheetName, row: row})
	return nil
}

func (m *MockSpreadsheetAppender) Row(spreadsheetName, bookingID string) ([]string, bool) {
	m.lock.Lock()
	defer m.lock.Unlock()

	for _, r := range m.RowsAppended {
		if r.spreadsheetName == spreadsheetName && len(r.row) > 0 && r.row[0] == bookingID {
			return r.row, true
		}
	}
	return nil, false
}
