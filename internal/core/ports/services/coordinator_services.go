package services

import (
	"context"

	"github.com/SscSPs/pocket_money_app/internal/core/domain"
)

// CoordinatorSvc is the entry point the HTTP layer uses. It records transactions in
// the ledger and broadcasts the ones that were persisted.
type CoordinatorSvc interface {
	// Give credits amount to a child. amount must be positive.
	Give(ctx context.Context, childName string, amount domain.MoneyAmount, purpose string) (*domain.Transaction, error)

	// Spend debits amount from a child. amount must be positive; it is stored negated.
	Spend(ctx context.Context, childName string, amount domain.MoneyAmount, purpose string) (*domain.Transaction, error)

	// ChildAccount returns the balance and history of a child.
	ChildAccount(ctx context.Context, childName string) (*domain.AccountSnapshot, error)

	Subscribe(ctx context.Context, childName string) (*domain.Subscription, error)
	Unsubscribe(ctx context.Context, subscriptionID string)
	Stream(ctx context.Context, childName string, transport NotificationTransport) error
}
