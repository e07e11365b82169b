package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/pocket_money_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_money_app/internal/core/ports/repositories"
)

// TransactionRepository keeps transactions in process memory. It is append-only and
// maintains a running balance per child so balance reads do not re-sum history.
type TransactionRepository struct {
	mu       sync.RWMutex
	lastID   uint64
	byChild  map[string][]domain.Transaction
	balances map[string]domain.MoneyAmount
}

// newTransactionRepository creates an empty in-memory transaction repository.
func newTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		byChild:  make(map[string][]domain.Transaction),
		balances: make(map[string]domain.MoneyAmount),
	}
}

// NewTransactionRepository creates an empty in-memory transaction repository.
func NewTransactionRepository() portsrepo.TransactionRepositoryFacade {
	return newTransactionRepository()
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) SaveTransaction(ctx context.Context, tx domain.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if tx.ID <= r.lastID {
		return fmt.Errorf("transaction id %d is not after last stored id %d", tx.ID, r.lastID)
	}

	balance, err := r.balances[tx.ChildName].Add(tx.Amount)
	if err != nil {
		return fmt.Errorf("updating balance for %s: %w", tx.ChildName, err)
	}

	r.byChild[tx.ChildName] = append(r.byChild[tx.ChildName], tx)
	r.balances[tx.ChildName] = balance
	r.lastID = tx.ID
	return nil
}

func (r *TransactionRepository) FindTransactionsByChild(ctx context.Context, childName string) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byChild[childName]
	out := make([]domain.Transaction, len(stored))
	copy(out, stored)
	return out, nil
}

func (r *TransactionRepository) FindBalanceByChild(ctx context.Context, childName string) (domain.MoneyAmount, error) {
	if err := ctx.Err(); err != nil {
		return domain.ZeroAmount, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balances[childName], nil
}

func (r *TransactionRepository) LastTransactionID(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastID, nil
}
