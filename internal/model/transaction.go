package model

import (
	"fmt"
	"time"

	"github.com/AlexZinkM/mini-dapp/internal/common"
)

// TransactionType transaction type
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
)

// Transaction represents a deposit or withdraw submitted during the session
type Transaction struct {
	Type        TransactionType `json:"type"`
	TxID        string          `json:"txId"`
	From        string          `json:"from"`
	To          string          `json:"to"`
	Amount      string          `json:"amount"` // ETH
	GasUsed     uint64          `json:"gasUsed"`
	Timestamp   time.Time       `json:"timestamp"`
	BlockNumber int64           `json:"blockNumber"`
	Status      string          `json:"status"` // "success" or "failed"
}

// LogResponse represents response for GET /wallet/transactions
type LogResponse struct {
	Account        string        `json:"account"`
	TotalDeposited string        `json:"total_deposited_ETH"`
	TotalWithdrawn string        `json:"total_withdrawn_ETH"`
	Transactions   []Transaction `json:"transactions"`
}

// LogRequest represents request parameters for GET /wallet/transactions
type LogRequest struct {
	Type      *TransactionType `form:"type"`
	TxID      *string          `form:"txId"`
	From      *time.Time       `form:"from"`
	To        *time.Time       `form:"to"`
	MinAmount *string          `form:"minAmount"`
	MaxAmount *string          `form:"maxAmount"`
}

// Validate validates LogRequest filter parameters.
func (r *LogRequest) Validate() error {
	if r.Type != nil && *r.Type != TransactionTypeDeposit && *r.Type != TransactionTypeWithdraw {
		return fmt.Errorf("type must be DEPOSIT or WITHDRAW")
	}
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return fmt.Errorf("to date must be after or equal to from date")
	}
	for _, a := range []*string{r.MinAmount, r.MaxAmount} {
		if a == nil {
			continue
		}
		if _, err := common.EtherToWei(*a); err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
	}
	if r.MinAmount != nil && r.MaxAmount != nil {
		cmp, err := common.CompareEtherAmounts(*r.MinAmount, *r.MaxAmount)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		if cmp == 1 {
			return fmt.Errorf("minAmount must be less than or equal to maxAmount")
		}
	}
	return nil
}
