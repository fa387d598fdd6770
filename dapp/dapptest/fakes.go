// Package dapptest provides in-memory wallet and contract fakes for tests.
package dapptest

import (
	"context"
	"math/big"
	"sync"

	"github.com/AlexZinkM/mini-dapp/dapp"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	Account      = common.HexToAddress("0x1111111111111111111111111111111111111111")
	VaultAddress = common.HexToAddress("0xd9145CCE52D386f254917e481eB44e9943F39138")
)

// Provider is a scripted wallet provider
type Provider struct {
	Unavailable bool
	Accounts    []common.Address
	AccountsErr error
	SignerErr   error

	mu            sync.Mutex
	AccountsCalls int
	SignerCalls   int
}

// NewProvider returns an available provider exposing Account
func NewProvider() *Provider {
	return &Provider{Accounts: []common.Address{Account}}
}

func (p *Provider) Available() bool { return !p.Unavailable }

func (p *Provider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.AccountsCalls++
	if p.AccountsErr != nil {
		return nil, p.AccountsErr
	}
	return p.Accounts, nil
}

func (p *Provider) Signer(ctx context.Context) (*bind.TransactOpts, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.SignerCalls++
	if p.SignerErr != nil {
		return nil, p.SignerErr
	}
	from := Account
	if len(p.Accounts) > 0 {
		from = p.Accounts[0]
	}
	return &bind.TransactOpts{From: from}, nil
}

// Contract is an in-memory vault. Balances are whatever the test scripts,
// not a running sum, so callers can check the controller re-reads them.
type Contract struct {
	mu sync.Mutex

	// Balances are returned by successive GetBalance calls; the last one repeats.
	Balances   []*big.Int
	BalanceErr error
	SubmitErr  error
	WaitErr    error
	Reverted   bool
	// Block is called inside Wait before it returns, when set.
	Block func()

	BalanceCalls int
	Deposits     []*big.Int
	Withdrawals  []*big.Int
	nonce        uint64
}

// NewContract returns a contract whose balance is wei (decimal string)
func NewContract(wei ...string) *Contract {
	c := &Contract{}
	for _, w := range wei {
		c.Balances = append(c.Balances, Wei(w))
	}
	return c
}

// Wei parses a base-10 integer, panicking on bad input
func Wei(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("dapptest: bad integer " + s)
	}
	return n
}

// Binder returns a binder that always yields c
func (c *Contract) Binder() dapp.ContractBinder {
	return func(ctx context.Context, signer *bind.TransactOpts) (dapp.ContractProxy, error) {
		return c, nil
	}
}

func (c *Contract) Address() common.Address { return VaultAddress }

func (c *Contract) GetBalance(ctx context.Context) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.BalanceCalls++
	if c.BalanceErr != nil {
		return nil, c.BalanceErr
	}
	if len(c.Balances) == 0 {
		return new(big.Int), nil
	}
	i := c.BalanceCalls - 1
	if i >= len(c.Balances) {
		i = len(c.Balances) - 1
	}
	return new(big.Int).Set(c.Balances[i]), nil
}

func (c *Contract) Deposit(ctx context.Context, value *big.Int) (dapp.PendingTx, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Deposits = append(c.Deposits, new(big.Int).Set(value))
	return c.submit()
}

func (c *Contract) Withdraw(ctx context.Context, amount *big.Int) (dapp.PendingTx, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Withdrawals = append(c.Withdrawals, new(big.Int).Set(amount))
	return c.submit()
}

func (c *Contract) submit() (dapp.PendingTx, error) {
	if c.SubmitErr != nil {
		return nil, c.SubmitErr
	}
	c.nonce++
	status := types.ReceiptStatusSuccessful
	if c.Reverted {
		status = types.ReceiptStatusFailed
	}
	return &PendingTx{
		hash:  common.BigToHash(new(big.Int).SetUint64(c.nonce)),
		err:   c.WaitErr,
		block: c.Block,
		receipt: &types.Receipt{
			Status:      status,
			BlockNumber: new(big.Int).SetUint64(100 + c.nonce),
			GasUsed:     21000,
		},
	}, nil
}

// PendingTx resolves immediately with a scripted receipt
type PendingTx struct {
	hash    common.Hash
	receipt *types.Receipt
	err     error
	block   func()
}

func (p *PendingTx) Hash() common.Hash { return p.hash }

func (p *PendingTx) Wait(ctx context.Context) (*types.Receipt, error) {
	if p.block != nil {
		p.block()
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.receipt, nil
}

// Notifications records every notification it receives
type Notifications struct {
	mu    sync.Mutex
	items []dapp.Notification
}

func (n *Notifications) Notify(x dapp.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, x)
}

// All returns a copy of the recorded notifications
func (n *Notifications) All() []dapp.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]dapp.Notification(nil), n.items...)
}

// Count returns how many notifications had severity s
func (n *Notifications) Count(s dapp.Severity) int {
	count := 0
	for _, x := range n.All() {
		if x.Severity == s {
			count++
		}
	}
	return count
}

// Last returns the most recent notification
func (n *Notifications) Last() dapp.Notification {
	all := n.All()
	if len(all) == 0 {
		return dapp.Notification{}
	}
	return all[len(all)-1]
}
