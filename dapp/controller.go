package dapp

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/AlexZinkM/mini-dapp/internal/common"
	"github.com/AlexZinkM/mini-dapp/internal/model"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// WalletProvider authorizes account access and signing
type WalletProvider interface {
	Available() bool
	RequestAccounts(ctx context.Context) ([]ethcommon.Address, error)
	Signer(ctx context.Context) (*bind.TransactOpts, error)
}

// PendingTx is a submitted transaction
type PendingTx interface {
	Hash() ethcommon.Hash
	Wait(ctx context.Context) (*types.Receipt, error)
}

// ContractProxy is the vault contract as seen by the controller
type ContractProxy interface {
	Address() ethcommon.Address
	GetBalance(ctx context.Context) (*big.Int, error)
	Deposit(ctx context.Context, value *big.Int) (PendingTx, error)
	Withdraw(ctx context.Context, amount *big.Int) (PendingTx, error)
}

// ContractBinder builds the contract proxy for a signing handle
type ContractBinder func(ctx context.Context, signer *bind.TransactOpts) (ContractProxy, error)

// Recorder receives action metrics
type Recorder interface {
	ObserveAction(action, outcome string, d time.Duration)
	SetBalance(wei *big.Int)
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger (default: no-op)
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// WithRecorder sets the metrics recorder
func WithRecorder(r Recorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// WithCooldown sets the minimum delay between two deposit/withdraw submissions
func WithCooldown(d time.Duration) Option {
	return func(c *Controller) { c.cooldown = d }
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Controller owns the wallet session and forwards user actions to the
// wallet provider and the contract proxy. Every outcome becomes a notification.
type Controller struct {
	provider WalletProvider
	binder   ContractBinder
	notifier Notifier
	log      *zap.Logger
	recorder Recorder
	cooldown time.Duration
	now      func() time.Time

	// inflight allows one action at a time; mu guards the fields below it.
	inflight sync.Mutex
	mu       sync.RWMutex
	session  Session
	history  []model.Transaction

	// limiter holds one submission token refilled every cooldown; nil without cooldown.
	limiter *rate.Limiter
}

// New creates a controller with an empty session. provider may be nil when
// the host has no wallet.
func New(provider WalletProvider, binder ContractBinder, notifier Notifier, opts ...Option) *Controller {
	c := &Controller{
		provider: provider,
		binder:   binder,
		notifier: notifier,
		log:      zap.NewNop(),
		now:      time.Now,
		session:  newSession(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.notifier == nil {
		c.notifier = NotifierFunc(func(Notification) {})
	}
	if c.cooldown > 0 {
		c.limiter = rate.NewLimiter(rate.Every(c.cooldown), 1)
	}
	return c
}

// Session returns a snapshot of the session
func (c *Controller) Session() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// View renders the current session
func (c *Controller) View() View {
	return Render(c.Session())
}

// SetPendingAmount stores the amount the user is typing
func (c *Controller) SetPendingAmount(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.PendingAmount = text
}

// Connect requests the account, obtains the signer and binds the contract.
func (c *Controller) Connect(ctx context.Context) error {
	return c.run("connect", "Error connecting wallet", func() error {
		if s := c.Session(); s.Connected() {
			c.notify(SeverityInfo, fmt.Sprintf("Wallet already connected: %s", s.Account.Hex()))
			return nil
		}
		if c.provider == nil || !c.provider.Available() {
			return ErrProviderUnavailable
		}

		accounts, err := c.provider.RequestAccounts(ctx)
		if err != nil {
			return fail(ErrConnectionRejected, err)
		}
		if len(accounts) == 0 {
			return fail(ErrConnectionRejected, errors.New("provider returned no accounts"))
		}

		signer, err := c.provider.Signer(ctx)
		if err != nil {
			return fail(ErrConnectionRejected, err)
		}

		proxy, err := c.binder(ctx, signer)
		if err != nil {
			return fail(ErrConnectionRejected, err)
		}

		account := accounts[0]
		c.mu.Lock()
		c.session.Provider = c.provider
		c.session.Account = &account
		c.session.Contract = proxy
		c.mu.Unlock()

		c.log.Info("wallet connected", zap.String("account", account.Hex()), zap.String("contract", proxy.Address().Hex()))
		c.notify(SeveritySuccess, "Wallet connected successfully!")
		return nil
	})
}

// RefreshBalance reads the vault balance and stores it as an ETH string.
func (c *Controller) RefreshBalance(ctx context.Context) error {
	return c.run("refresh_balance", "Error fetching balance", func() error {
		_, err := c.refreshBalance(ctx)
		return err
	})
}

// Deposit sends amountText ETH to the vault and waits for confirmation.
// An empty amountText means the pending amount.
func (c *Controller) Deposit(ctx context.Context, amountText string) (*model.Transaction, error) {
	var tx *model.Transaction
	err := c.run("deposit", "Error during deposit", func() error {
		var err error
		tx, err = c.transact(ctx, model.TransactionTypeDeposit, amountText)
		return err
	})
	return tx, err
}

// Withdraw asks the vault to pay out amountText ETH and waits for confirmation.
func (c *Controller) Withdraw(ctx context.Context, amountText string) (*model.Transaction, error) {
	var tx *model.Transaction
	err := c.run("withdraw", "Error during withdrawal", func() error {
		var err error
		tx, err = c.transact(ctx, model.TransactionTypeWithdraw, amountText)
		return err
	})
	return tx, err
}

// run holds the in-flight guard for fn, records metrics and turns an error
// into one error notification prefixed with errPrefix.
func (c *Controller) run(action, errPrefix string, fn func() error) error {
	if !c.inflight.TryLock() {
		c.notify(SeverityError, fmt.Sprintf("%s: %v", errPrefix, ErrBusy))
		return ErrBusy
	}
	defer c.inflight.Unlock()

	start := c.now()
	err := fn()
	if c.recorder != nil {
		c.recorder.ObserveAction(action, ErrorCode(err), c.now().Sub(start))
	}
	if err != nil {
		c.log.Warn("action failed", zap.String("action", action), zap.Error(err))
		c.notify(SeverityError, fmt.Sprintf("%s: %v", errPrefix, err))
	}
	return err
}

func (c *Controller) refreshBalance(ctx context.Context) (string, error) {
	proxy := c.Session().Contract
	if proxy == nil {
		return "", ErrNotConnected
	}

	wei, err := proxy.GetBalance(ctx)
	if err != nil {
		return "", fail(ErrRemoteCallFailed, err)
	}

	balance := common.WeiToEther(wei)
	c.mu.Lock()
	c.session.Balance = balance
	c.mu.Unlock()

	if c.recorder != nil {
		c.recorder.SetBalance(wei)
	}
	c.notify(SeverityInfo, fmt.Sprintf("Balance: %s ETH", balance))
	return balance, nil
}

func (c *Controller) transact(ctx context.Context, kind model.TransactionType, amountText string) (*model.Transaction, error) {
	s := c.Session()
	if !s.Connected() {
		return nil, ErrNotConnected
	}
	if amountText == "" {
		amountText = s.PendingAmount
	}

	wei, err := parseAmount(amountText)
	if err != nil {
		return nil, err
	}

	reservation, err := c.reserveSubmit()
	if err != nil {
		return nil, err
	}

	var pending PendingTx
	if kind == model.TransactionTypeDeposit {
		pending, err = s.Contract.Deposit(ctx, wei)
	} else {
		pending, err = s.Contract.Withdraw(ctx, wei)
	}
	if err != nil {
		// nothing reached the chain, so the cooldown does not start
		if reservation != nil {
			reservation.CancelAt(c.now())
		}
		return nil, fail(ErrRemoteCallFailed, err)
	}

	amount := common.WeiToEther(wei)
	c.log.Info("transaction submitted",
		zap.String("type", string(kind)),
		zap.String("tx", pending.Hash().Hex()),
		zap.String("amount", amount))

	record := model.Transaction{
		Type:      kind,
		TxID:      pending.Hash().Hex(),
		From:      s.Account.Hex(),
		To:        s.Contract.Address().Hex(),
		Amount:    amount,
		Timestamp: c.now(),
		Status:    "failed",
	}

	receipt, err := pending.Wait(ctx)
	if err != nil {
		c.appendHistory(record)
		return nil, fail(ErrTransactionFailed, err)
	}
	if receipt.BlockNumber != nil {
		record.BlockNumber = receipt.BlockNumber.Int64()
	}
	record.GasUsed = receipt.GasUsed
	if receipt.Status != types.ReceiptStatusSuccessful {
		c.appendHistory(record)
		return nil, fail(ErrTransactionFailed, fmt.Errorf("reverted in block %d", record.BlockNumber))
	}
	record.Status = "success"
	c.appendHistory(record)

	c.mu.Lock()
	c.session.PendingAmount = ""
	c.mu.Unlock()

	// The action already succeeded; a failed re-read only gets its own notification.
	if _, err := c.refreshBalance(ctx); err != nil {
		c.log.Warn("balance refresh after transaction failed", zap.Error(err))
		c.notify(SeverityError, fmt.Sprintf("Error fetching balance: %v", err))
	}

	if kind == model.TransactionTypeDeposit {
		c.notify(SeveritySuccess, fmt.Sprintf("Successfully deposited %s ETH.", amount))
	} else {
		c.notify(SeveritySuccess, fmt.Sprintf("Successfully withdrew %s ETH.", amount))
	}
	return &record, nil
}

// reserveSubmit takes the submission token or reports how long to wait
func (c *Controller) reserveSubmit() (*rate.Reservation, error) {
	if c.limiter == nil {
		return nil, nil
	}
	now := c.now()
	r := c.limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return nil, fmt.Errorf("%w, please wait %v", ErrCooldown, delay.Round(time.Second))
	}
	return r, nil
}

func (c *Controller) appendHistory(tx model.Transaction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history, tx)
}

func (c *Controller) notify(severity Severity, message string) {
	c.notifier.Notify(Notification{Severity: severity, Message: message, Time: c.now()})
}

// parseAmount converts user input to a positive wei amount
func parseAmount(text string) (*big.Int, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fail(ErrInvalidAmount, errors.New("enter an amount"))
	}
	wei, err := common.EtherToWei(text)
	if err != nil {
		return nil, fail(ErrInvalidAmount, err)
	}
	if wei.Sign() <= 0 {
		return nil, fail(ErrInvalidAmount, errors.New("amount must be positive"))
	}
	return wei, nil
}
