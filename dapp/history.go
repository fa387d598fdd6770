package dapp

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/AlexZinkM/mini-dapp/internal/common"
	"github.com/AlexZinkM/mini-dapp/internal/model"
)

// History lists the deposits and withdrawals submitted in this session, with filtering
func (c *Controller) History(req *model.LogRequest) (*model.LogResponse, error) {
	if req == nil {
		req = &model.LogRequest{}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	all := make([]model.Transaction, len(c.history))
	copy(all, c.history)
	account := ""
	if c.session.Account != nil {
		account = c.session.Account.Hex()
	}
	c.mu.RUnlock()

	result := make([]model.Transaction, 0, len(all))
	for _, tx := range all {
		if req.Type != nil && *req.Type != tx.Type {
			continue
		}
		if req.TxID != nil && *req.TxID != tx.TxID {
			continue
		}
		if req.From != nil && tx.Timestamp.Before(*req.From) {
			continue
		}
		if req.To != nil && tx.Timestamp.After(*req.To) {
			continue
		}

		// Filter by amount (integer comparison, no float)
		if req.MinAmount != nil {
			cmp, err := common.CompareEtherAmounts(tx.Amount, *req.MinAmount)
			if err != nil {
				return nil, fmt.Errorf("failed to compare min amount: %w", err)
			}
			if cmp < 0 {
				continue
			}
		}
		if req.MaxAmount != nil {
			cmp, err := common.CompareEtherAmounts(tx.Amount, *req.MaxAmount)
			if err != nil {
				return nil, fmt.Errorf("failed to compare max amount: %w", err)
			}
			if cmp > 0 {
				continue
			}
		}

		result = append(result, tx)
	}

	// Newest first
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})

	// Totals over successful transactions only
	deposited, withdrawn := new(big.Int), new(big.Int)
	for _, tx := range result {
		if tx.Status != "success" {
			continue
		}
		wei, err := common.EtherToWei(tx.Amount)
		if err != nil {
			continue
		}
		switch tx.Type {
		case model.TransactionTypeDeposit:
			deposited.Add(deposited, wei)
		case model.TransactionTypeWithdraw:
			withdrawn.Add(withdrawn, wei)
		}
	}

	return &model.LogResponse{
		Account:        account,
		TotalDeposited: common.WeiToEther(deposited),
		TotalWithdrawn: common.WeiToEther(withdrawn),
		Transactions:   result,
	}, nil
}
