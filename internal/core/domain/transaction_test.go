package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/pocket_money_app/internal/apperrors"
	"github.com/SscSPs/pocket_money_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tx      domain.Transaction
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid credit",
			tx: domain.Transaction{
				ChildName: "a",
				Amount:    domain.NewMoneyAmount(599),
				Purpose:   "pocket money 1",
			},
		},
		{
			name: "valid debit",
			tx: domain.Transaction{
				ChildName: "a",
				Amount:    domain.NewMoneyAmount(-300),
				Purpose:   "sweets",
			},
		},
		{
			name:    "missing child",
			tx:      domain.Transaction{Amount: domain.NewMoneyAmount(1), Purpose: "x"},
			wantErr: true,
			errMsg:  "Must provide a child name",
		},
		{
			name:    "missing purpose",
			tx:      domain.Transaction{ChildName: "a", Amount: domain.NewMoneyAmount(1)},
			wantErr: true,
			errMsg:  "Must provide a purpose",
		},
		{
			name:    "zero amount",
			tx:      domain.Transaction{ChildName: "a", Purpose: "x"},
			wantErr: true,
			errMsg:  "Amount must not be zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Equal(t, tt.errMsg, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_WireFormat(t *testing.T) {
	tx := domain.Transaction{
		ID:        1,
		Timestamp: time.Date(2024, 3, 1, 12, 30, 0, 123000000, time.UTC),
		ChildName: "a",
		Amount:    domain.NewMoneyAmount(-300),
		Purpose:   "permitted",
	}

	out, err := json.Marshal(tx)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1,
		"timestamp": "2024-03-01T12:30:00.123Z",
		"child_name": "a",
		"amount": -3.00,
		"purpose": "permitted"
	}`, string(out))

	var decoded domain.Transaction
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, tx, decoded)
	assert.False(t, decoded.IsCredit())
}
