package domain

import (
	"time"

	"github.com/SscSPs/pocket_money_app/internal/apperrors"
)

// Transaction is a single credit (positive amount) or debit (negative amount)
// recorded against one child's account.
type Transaction struct {
	ID        uint64      `json:"id"`         // Assigned by the ledger, starts at 1
	Timestamp time.Time   `json:"timestamp"`  // UTC, millisecond precision
	ChildName string      `json:"child_name"` // Account the transaction belongs to
	Amount    MoneyAmount `json:"amount"`
	Purpose   string      `json:"purpose"`
}

// IsCredit reports whether the transaction adds money to the account.
func (t Transaction) IsCredit() bool {
	return t.Amount.IsPositiveNonZero()
}

// Validate checks the fields a caller supplies before the ledger assigns identity.
// Failures are apperrors.ValidationError values carrying the public reason.
func (t Transaction) Validate() error {
	if t.ChildName == "" {
		return apperrors.NewValidationError("Must provide a child name")
	}
	if t.Purpose == "" {
		return apperrors.NewValidationError("Must provide a purpose")
	}
	if t.Amount.IsZero() {
		return apperrors.NewValidationError("Amount must not be zero")
	}
	return nil
}

// AccountSnapshot is a consistent view of one account at a single point in time.
type AccountSnapshot struct {
	ChildName    string
	Balance      MoneyAmount
	Transactions []Transaction
}
