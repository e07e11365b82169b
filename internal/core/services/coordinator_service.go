package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/pocket_money_app/internal/apperrors"
	"github.com/SscSPs/pocket_money_app/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_money_app/internal/core/ports/services"
)

type transactionKind string

const (
	kindGive  transactionKind = "give"
	kindSpend transactionKind = "spend"
)

// coordinatorService records transactions and broadcasts the persisted ones.
type coordinatorService struct {
	BaseService
	ledger   portssvc.LedgerSvcFacade
	notifier portssvc.NotificationSvcFacade
	events   portssvc.EventPublisher
}

// CoordinatorOption is a functional option for configuring the coordinator
type CoordinatorOption func(*coordinatorService)

// WithEventPublisher forwards every recorded transaction to an external publisher.
func WithEventPublisher(publisher portssvc.EventPublisher) CoordinatorOption {
	return func(s *coordinatorService) {
		s.events = publisher
	}
}

// NewCoordinatorService glues a ledger to a notification registry.
func NewCoordinatorService(ledger portssvc.LedgerSvcFacade, notifier portssvc.NotificationSvcFacade, options ...CoordinatorOption) portssvc.CoordinatorSvc {
	svc := &coordinatorService{
		ledger:   ledger,
		notifier: notifier,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CoordinatorSvc = (*coordinatorService)(nil)

func (s *coordinatorService) Give(ctx context.Context, childName string, amount domain.MoneyAmount, purpose string) (*domain.Transaction, error) {
	return s.record(ctx, kindGive, childName, amount, purpose)
}

func (s *coordinatorService) Spend(ctx context.Context, childName string, amount domain.MoneyAmount, purpose string) (*domain.Transaction, error) {
	return s.record(ctx, kindSpend, childName, amount, purpose)
}

func (s *coordinatorService) record(ctx context.Context, kind transactionKind, childName string, amount domain.MoneyAmount, purpose string) (*domain.Transaction, error) {
	s.LogInfo(ctx, "Recording transaction",
		slog.String("kind", string(kind)),
		slog.String("child_name", childName),
		slog.String("amount", amount.String()),
		slog.String("purpose", purpose))

	if !amount.IsPositiveNonZero() {
		return nil, apperrors.NewValidationError("Amount must be at least 0.01")
	}
	if purpose == "" {
		return nil, apperrors.NewValidationError("Must provide a purpose")
	}

	if kind == kindSpend {
		amount = amount.Negate()
	}

	tx, err := s.ledger.Record(ctx, childName, amount, purpose)
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(ctx, childName, *tx)

	if s.events != nil {
		if err := s.events.PublishTransaction(ctx, *tx); err != nil {
			s.LogWarn(ctx, err, "Failed to publish transaction event", slog.Uint64("transaction_id", tx.ID))
		}
	}

	return tx, nil
}

func (s *coordinatorService) ChildAccount(ctx context.Context, childName string) (*domain.AccountSnapshot, error) {
	return s.ledger.Snapshot(ctx, childName)
}

func (s *coordinatorService) Subscribe(ctx context.Context, childName string) (*domain.Subscription, error) {
	return s.notifier.Subscribe(ctx, childName)
}

func (s *coordinatorService) Unsubscribe(ctx context.Context, subscriptionID string) {
	s.notifier.Unsubscribe(ctx, subscriptionID)
}

func (s *coordinatorService) Stream(ctx context.Context, childName string, transport portssvc.NotificationTransport) error {
	return s.notifier.Stream(ctx, childName, transport)
}
