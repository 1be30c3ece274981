package message

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"
)

type RouterDeps struct {
	CommandSender       CommandSender
	Logger              watermill.LoggerAdapter
	PaymentRefunder     PaymentRefunder
	ReceiptsClient      ReceiptsClient
	RedisClient         *redis.Client
	SpreadsheetAppender SpreadsheetAppender
	TicketGenerator     TicketGenerator
}

type Router struct {
	*message.Router
}

func NewRouter(deps RouterDeps) (*Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("creating router: %w", err)
	}

	addMiddlewares(router, deps.Logger)

	ep, err := cqrs.NewEventProcessorWithConfig(router, newEventProcessorConfig(deps.RedisClient, deps.Logger))
	if err != nil {
		return nil, fmt.Errorf("creating event processor: %w", err)
	}

	err = ep.AddHandlers(
		cqrs.NewEventHandler("issue-receipt", handleIssueReceipt(deps.ReceiptsClient)),
		cqrs.NewEventHandler("print-ticket", handlePrintTicket(deps.TicketGenerator)),
		cqrs.NewEventHandler("request-refund", handleRequestRefund(deps.CommandSender)),
		cqrs.NewEventHandler("append-to-refund-tracker", handleAppendToRefundTracker(deps.SpreadsheetAppender)),
		cqrs.NewEventHandler("append-to-check-in-tracker", handleAppendToCheckInTracker(deps.SpreadsheetAppender)),
	)
	if err != nil {
		return nil, fmt.Errorf("adding event handlers: %w", err)
	}

	cp, err := cqrs.NewCommandProcessorWithConfig(router, newCommandProcessorConfig(deps.RedisClient, deps.Logger))
	if err != nil {
		return nil, fmt.Errorf("creating command processor: %w", err)
	}

	err = cp.AddHandlers(
		cqrs.NewCommandHandler("refund-ticket", handleRefundTicket(deps.PaymentRefunder, deps.ReceiptsClient)),
	)
	if err != nil {
		return nil, fmt.Errorf("adding command handlers: %w", err)
	}

	return &Router{router}, nil
}
