package client

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:embed abi/vault.json
var vaultABIJSON []byte

// VaultABI is the parsed interface of the vault contract.
var VaultABI = mustParseABI(vaultABIJSON)

func mustParseABI(raw []byte) abi.ABI {
	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("invalid vault ABI: %v", err))
	}
	return parsed
}

// VaultBackend is what the vault binding needs from a node connection.
// *ethclient.Client satisfies it.
type VaultBackend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// VaultContract is a typed handle to the deployed vault contract, bound to one signer
type VaultContract struct {
	address  common.Address
	contract *bind.BoundContract
	backend  VaultBackend
	opts     *bind.TransactOpts
}

// NewVaultContract binds the vault at address for the account behind opts
func NewVaultContract(address common.Address, backend VaultBackend, opts *bind.TransactOpts) (*VaultContract, error) {
	if opts == nil {
		return nil, errors.New("signer is required")
	}
	return &VaultContract{
		address:  address,
		contract: bind.NewBoundContract(address, VaultABI, backend, backend, backend),
		backend:  backend,
		opts:     opts,
	}, nil
}

// Address returns the contract address
func (v *VaultContract) Address() common.Address {
	return v.address
}

// GetBalance calls getBalance() as the bound account and returns wei
func (v *VaultContract) GetBalance(ctx context.Context) (*big.Int, error) {
	var out []interface{}
	err := v.contract.Call(&bind.CallOpts{Context: ctx, From: v.opts.From}, &out, "getBalance")
	if err != nil {
		return nil, fmt.Errorf("getBalance: %w", err)
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("getBalance: unexpected %d outputs", len(out))
	}
	balance := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	return balance, nil
}

// Deposit sends value wei to the payable deposit()
func (v *VaultContract) Deposit(ctx context.Context, value *big.Int) (*PendingTransaction, error) {
	opts := v.transactOpts(ctx)
	opts.Value = value

	tx, err := v.contract.Transact(opts, "deposit")
	if err != nil {
		return nil, fmt.Errorf("deposit: %w", err)
	}
	return &PendingTransaction{tx: tx, backend: v.backend}, nil
}

// Withdraw calls withdraw(amount) without value transfer
func (v *VaultContract) Withdraw(ctx context.Context, amount *big.Int) (*PendingTransaction, error) {
	tx, err := v.contract.Transact(v.transactOpts(ctx), "withdraw", amount)
	if err != nil {
		return nil, fmt.Errorf("withdraw: %w", err)
	}
	return &PendingTransaction{tx: tx, backend: v.backend}, nil
}

// transactOpts copies the signer so per-call fields never leak between calls
func (v *VaultContract) transactOpts(ctx context.Context) *bind.TransactOpts {
	opts := *v.opts
	opts.Context = ctx
	opts.Value = nil
	return &opts
}

// PendingTransaction is a submitted transaction awaiting inclusion
type PendingTransaction struct {
	tx      *types.Transaction
	backend bind.DeployBackend
}

// Hash returns the transaction hash
func (p *PendingTransaction) Hash() common.Hash {
	return p.tx.Hash()
}

// Wait blocks until the transaction is mined or ctx is done
func (p *PendingTransaction) Wait(ctx context.Context) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, p.backend, p.tx)
	if err != nil {
		return nil, fmt.Errorf("wait for %s: %w", p.tx.Hash().Hex(), err)
	}
	return receipt, nil
}
