package message

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/shopspring/decimal"

	"github.com/Nafiz37/Event-Ekhanei-sub000/clients"
	"github.com/Nafiz37/Event-Ekhanei-sub000/command"
	"github.com/Nafiz37/Event-Ekhanei-sub000/event"
)

type CommandSender interface {
	Send(ctx context.Context, cmd any) error
}

type ReceiptsClient interface {
	IssueReceipt(ctx context.Context, idempotencyKey, bookingID string, price decimal.Decimal) error
	VoidReceipt(ctx context.Context, idempotencyKey, bookingID string) error
}

type SpreadsheetAppender interface {
	AppendRow(ctx context.Context, spreadsheetName string, row []string) error
}

type TicketGenerator interface {
	GenerateTicket(ctx context.Context, bookingID, code string, price decimal.Decimal) (string, error)
}

type PaymentRefunder interface {
	RefundPayment(ctx context.Context, idempotencyKey, bookingID string, amount decimal.Decimal) error
}

func handleIssueReceipt(r ReceiptsClient) func(ctx context.Context, e *event.BookingCreated) error {
	return func(ctx context.Context, e *event.BookingCreated) error {
		if err := r.IssueReceipt(ctx, e.Header.IdempotencyKey, e.BookingID, e.Price); err != nil {
			return fmt.Errorf("issuing receipt: %w", err)
		}

		return nil
	}
}

func handlePrintTicket(g TicketGenerator) func(ctx context.Context, e *event.BookingCreated) error {
	return func(ctx context.Context, e *event.BookingCreated) error {
		fileID, err := g.GenerateTicket(ctx, e.BookingID, e.Code, e.Price)
		if err != nil {
			return fmt.Errorf("generating ticket: %w", err)
		}

		log.FromContext(ctx).WithField("file_id", fileID).Info("Ticket printed")

		return nil
	}
}

// handleRequestRefund asks for the money back only when the cancellation
// earned a refund.
func handleRequestRefund(s CommandSender) func(ctx context.Context, e *event.BookingCancelled) error {
	return func(ctx context.Context, e *event.BookingCancelled) error {
		if !e.RefundAmount.IsPositive() {
			return nil
		}

		cmd := command.NewRefundTicket(e.BookingID, e.RefundAmount, e.Header.IdempotencyKey)
		if err := s.Send(ctx, cmd); err != nil {
			return fmt.Errorf("sending refund ticket command: %w", err)
		}

		return nil
	}
}

func handleAppendToRefundTracker(s SpreadsheetAppender) func(ctx context.Context, e *event.BookingCancelled) error {
	return func(ctx context.Context, e *event.BookingCancelled) error {
		row := []string{
			e.BookingID,
			e.UserID,
			e.EventID,
			e.RefundAmount.StringFixed(2),
			strconv.Itoa(e.RefundPercentage),
		}
		if err := s.AppendRow(ctx, clients.RefundTrackerSheet, row); err != nil {
			return fmt.Errorf("failed to append row to tracker: %w", err)
		}

		return nil
	}
}

func handleAppendToCheckInTracker(s SpreadsheetAppender) func(ctx context.Context, e *event.TicketCheckedIn) error {
	return func(ctx context.Context, e *event.TicketCheckedIn) error {
		row := []string{e.BookingID, e.EventID, e.AttendeeID, e.UsedAt.Format(time.RFC3339)}
		if err := s.AppendRow(ctx, clients.CheckInTrackerSheet, row); err != nil {
			return fmt.Errorf("failed to append row to tracker: %w", err)
		}

		return nil
	}
}

func handleRefundTicket(p PaymentRefunder, r ReceiptsClient) func(ctx context.Context, cmd *command.RefundTicket) error {
	return func(ctx context.Context, cmd *command.RefundTicket) error {
		if err := p.RefundPayment(ctx, cmd.Header.IdempotencyKey, cmd.BookingID, cmd.Amount); err != nil {
			return fmt.Errorf("refunding payment: %w", err)
		}

		if err := r.VoidReceipt(ctx, cmd.Header.IdempotencyKey, cmd.BookingID); err != nil {
			return fmt.Errorf("voiding ticket receipt: %w", err)
		}

		return nil
	}
}
