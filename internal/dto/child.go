package dto

import (
	"github.com/SscSPs/pocket_money_app/internal/core/domain"
)

// RecordTransactionRequest is the body of both give and spend. Amount is always
// positive; spend stores it negated.
type RecordTransactionRequest struct {
	Amount  domain.MoneyAmount `json:"amount" swaggertype:"number" example:"5.99"`
	Purpose string             `json:"purpose" example:"pocket money"`
}

// TransactionResponse is the wire form of a recorded transaction.
type TransactionResponse = domain.Transaction

// ChildAccountResponse defines the data returned for a child's account.
type ChildAccountResponse struct {
	ChildName    string                `json:"child_name"`
	Balance      domain.MoneyAmount    `json:"balance" swaggertype:"number"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Reason string `json:"reason"`
}

// ToChildAccountResponse converts an account snapshot to its response DTO.
// Transactions is never nil so it always renders as an array.
func ToChildAccountResponse(snapshot *domain.AccountSnapshot) ChildAccountResponse {
	txs := snapshot.Transactions
	if txs == nil {
		txs = []domain.Transaction{}
	}
	return ChildAccountResponse{
		ChildName:    snapshot.ChildName,
		Balance:      snapshot.Balance,
		Transactions: txs,
	}
}
