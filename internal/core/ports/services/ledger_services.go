package services

import (
	"context"

	"github.com/SscSPs/pocket_money_app/internal/core/domain"
)

// LedgerReaderSvc defines read operations on the ledger.
type LedgerReaderSvc interface {
	// ListTransactions returns a child's transactions in insertion order.
	ListTransactions(ctx context.Context, childName string) ([]domain.Transaction, error)

	// Balance returns the current balance for a child; zero when nothing is recorded.
	Balance(ctx context.Context, childName string) (domain.MoneyAmount, error)

	// Snapshot returns balance and transactions observed under one lock acquisition.
	Snapshot(ctx context.Context, childName string) (*domain.AccountSnapshot, error)
}

// LedgerWriterSvc defines write operations on the ledger.
type LedgerWriterSvc interface {
	// Record appends a transaction, assigning its identity and timestamp. A record
	// that would take the account negative is rejected wholesale.
	Record(ctx context.Context, childName string, amount domain.MoneyAmount, purpose string) (*domain.Transaction, error)
}

// LedgerSvcFacade combines all ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
