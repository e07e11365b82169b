package memory

import (
	portsrepo "github.com/SscSPs/pocket_money_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every in-memory repository the services need.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newTransactionRepository(),
	}
}
