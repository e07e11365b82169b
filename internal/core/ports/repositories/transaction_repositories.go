package repositories

import (
	"context"

	"github.com/SscSPs/pocket_money_app/internal/core/domain"
)

// TransactionReader defines read operations for recorded transactions.
type TransactionReader interface {
	// FindTransactionsByChild returns a child's transactions in insertion order.
	FindTransactionsByChild(ctx context.Context, childName string) ([]domain.Transaction, error)

	// FindBalanceByChild returns the sum of a child's transaction amounts.
	FindBalanceByChild(ctx context.Context, childName string) (domain.MoneyAmount, error)

	// LastTransactionID returns the highest identity stored so far, or 0 when empty.
	LastTransactionID(ctx context.Context) (uint64, error)
}

// TransactionWriter defines write operations for recorded transactions.
type TransactionWriter interface {
	// SaveTransaction appends a fully populated transaction. Callers serialize writes.
	SaveTransaction(ctx context.Context, tx domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
