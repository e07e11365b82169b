package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/pocket_money_app/internal/apperrors"
	"github.com/SscSPs/pocket_money_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_money_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_money_app/internal/core/ports/services"
)

// ledgerService guards the whole store with one mutex. Every read and write holds it
// for its full duration, so the balance check and the append in Record are atomic
// across all accounts.
type ledgerService struct {
	BaseService
	mu   sync.Mutex
	repo portsrepo.TransactionRepositoryFacade
	now  func() time.Time
}

// LedgerOption is a functional option for configuring the ledger service
type LedgerOption func(*ledgerService)

// WithClock overrides the time source used to stamp transactions.
func WithClock(now func() time.Time) LedgerOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a ledger on top of the given repository.
func NewLedgerService(repo portsrepo.TransactionRepositoryFacade, options ...LedgerOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		repo: repo,
		now:  time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) Record(ctx context.Context, childName string, amount domain.MoneyAmount, purpose string) (*domain.Transaction, error) {
	tx := domain.Transaction{
		ChildName: childName,
		Amount:    amount,
		Purpose:   purpose,
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	balance, err := s.repo.FindBalanceByChild(ctx, childName)
	if err != nil {
		return nil, s.internal(ctx, err, "Failed to read balance", childName)
	}

	newBalance, err := balance.Add(amount)
	if errors.Is(err, domain.ErrAmountOverflow) {
		return nil, apperrors.NewValidationError("Transaction would overflow account %s balance", childName)
	}
	if amount.IsNegative() && newBalance.IsNegative() {
		return nil, apperrors.NewValidationError("Transaction will take account %s negative", childName)
	}

	lastID, err := s.repo.LastTransactionID(ctx)
	if err != nil {
		return nil, s.internal(ctx, err, "Failed to read last transaction id", childName)
	}

	tx.ID = lastID + 1
	tx.Timestamp = s.now().UTC().Truncate(time.Millisecond)

	if err := s.repo.SaveTransaction(ctx, tx); err != nil {
		return nil, s.internal(ctx, err, "Failed to save transaction", childName)
	}

	s.LogDebug(ctx, "Transaction recorded",
		slog.Uint64("transaction_id", tx.ID),
		slog.String("child_name", childName),
		slog.String("amount", amount.String()),
		slog.Bool("credit", tx.IsCredit()),
		slog.String("balance", newBalance.String()))

	return &tx, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, childName string) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.repo.FindTransactionsByChild(ctx, childName)
	if err != nil {
		return nil, s.internal(ctx, err, "Failed to list transactions", childName)
	}
	return txs, nil
}

func (s *ledgerService) Balance(ctx context.Context, childName string) (domain.MoneyAmount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance, err := s.repo.FindBalanceByChild(ctx, childName)
	if err != nil {
		return domain.ZeroAmount, s.internal(ctx, err, "Failed to read balance", childName)
	}
	return balance, nil
}

func (s *ledgerService) Snapshot(ctx context.Context, childName string) (*domain.AccountSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.repo.FindTransactionsByChild(ctx, childName)
	if err != nil {
		return nil, s.internal(ctx, err, "Failed to list transactions", childName)
	}

	snapshot := &domain.AccountSnapshot{
		ChildName:    childName,
		Balance:      domain.ZeroAmount,
		Transactions: txs,
	}
	if len(txs) == 0 {
		return snapshot, nil
	}

	snapshot.Balance, err = s.repo.FindBalanceByChild(ctx, childName)
	if err != nil {
		return nil, s.internal(ctx, err, "Failed to read balance", childName)
	}
	return snapshot, nil
}

// internal logs the storage detail and returns an opaque ErrInternal.
func (s *ledgerService) internal(ctx context.Context, err error, msg, childName string) error {
	s.LogError(ctx, err, msg, slog.String("child_name", childName))
	return fmt.Errorf("%w: %s", apperrors.ErrInternal, msg)
}
