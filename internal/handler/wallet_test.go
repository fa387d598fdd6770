package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlexZinkM/mini-dapp/dapp"
	"github.com/AlexZinkM/mini-dapp/dapp/dapptest"
	"github.com/AlexZinkM/mini-dapp/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPrice struct {
	rate string
	err  error
}

func (p fixedPrice) GetETHRate(currency string) (string, error) { return p.rate, p.err }

func newTestHandler(t *testing.T, contract *dapptest.Contract, price PriceSource) (*WalletHandler, *dapp.Feed) {
	t.Helper()
	feed := dapp.NewFeed(0, nil)
	controller := dapp.New(dapptest.NewProvider(), contract.Binder(), feed)
	h, err := NewWalletHandler(WalletHandlerConfig{
		Controller:    controller,
		Feed:          feed,
		Price:         price,
		PriceCurrency: "usd",
	})
	require.NoError(t, err)
	return h, feed
}

func do(h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestNewWalletHandler_Requires(t *testing.T) {
	_, err := NewWalletHandler(WalletHandlerConfig{})
	assert.Error(t, err)
}

func TestWalletFlow(t *testing.T) {
	h, _ := newTestHandler(t, dapptest.NewContract("1500000000000000000"), fixedPrice{rate: "2000.00"})

	rec := do(h.Session, http.MethodGet, "/wallet/session", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.SessionStateDisconnected, decode[model.SessionResponse](t, rec).State)

	rec = do(h.Connect, http.MethodPost, "/wallet/connect", "")
	require.Equal(t, http.StatusOK, rec.Code)
	session := decode[model.SessionResponse](t, rec)
	assert.Equal(t, model.SessionStateConnected, session.State)
	assert.Equal(t, dapptest.Account.Hex(), session.Account)

	rec = do(h.GetBalance, http.MethodGet, "/wallet/balance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	balance := decode[model.BalanceResponse](t, rec)
	assert.Equal(t, "1.5", balance.ETH)
	assert.Equal(t, "2000.00", balance.Rate)
	assert.Equal(t, "3000.00", balance.Fiat)

	rec = do(h.SetAmount, http.MethodPut, "/wallet/amount", `{"amount":"0.5"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0.5", decode[model.SessionResponse](t, rec).PendingAmount)

	// no body: falls back to the pending amount
	rec = do(h.Deposit, http.MethodPost, "/wallet/deposit", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	action := decode[model.ActionResponse](t, rec)
	assert.Equal(t, "0.5", action.Amount)
	assert.Equal(t, "1.5", action.Balance)
	assert.NotEmpty(t, action.TxID)

	rec = do(h.Withdraw, http.MethodPost, "/wallet/withdraw", `{"amount":"0.25"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "0.25", decode[model.ActionResponse](t, rec).Amount)

	rec = do(h.TransactionHistory, http.MethodGet, "/wallet/transactions?type=WITHDRAW", "")
	require.Equal(t, http.StatusOK, rec.Code)
	history := decode[model.LogResponse](t, rec)
	require.Len(t, history.Transactions, 1)
	assert.Equal(t, "0.25", history.TotalWithdrawn)
}

func TestGetBalance_PriceFailureIgnored(t *testing.T) {
	h, _ := newTestHandler(t, dapptest.NewContract("2000000000000000000"), fixedPrice{err: errors.New("rate limited")})
	require.Equal(t, http.StatusOK, do(h.Connect, http.MethodPost, "/wallet/connect", "").Code)

	rec := do(h.GetBalance, http.MethodGet, "/wallet/balance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	balance := decode[model.BalanceResponse](t, rec)
	assert.Equal(t, "2.0", balance.ETH)
	assert.Empty(t, balance.Fiat)
}

func TestGetBalance_MalformedRate(t *testing.T) {
	h, _ := newTestHandler(t, dapptest.NewContract("2000000000000000000"), fixedPrice{rate: "n/a"})
	require.Equal(t, http.StatusOK, do(h.Connect, http.MethodPost, "/wallet/connect", "").Code)

	rec := do(h.GetBalance, http.MethodGet, "/wallet/balance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	balance := decode[model.BalanceResponse](t, rec)
	assert.Equal(t, "2.0", balance.ETH)
	assert.Empty(t, balance.Rate)
	assert.Empty(t, balance.Fiat)
}

func TestDeposit_ChunkedEmptyBody(t *testing.T) {
	h, _ := newTestHandler(t, dapptest.NewContract("1"), nil)
	require.Equal(t, http.StatusOK, do(h.Connect, http.MethodPost, "/wallet/connect", "").Code)
	require.Equal(t, http.StatusOK, do(h.SetAmount, http.MethodPut, "/wallet/amount", `{"amount":"0.1"}`).Code)

	req := httptest.NewRequest(http.MethodPost, "/wallet/deposit", io.NopCloser(strings.NewReader("")))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	h.Deposit(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "0.1", decode[model.ActionResponse](t, rec).Amount)
}

func TestErrors(t *testing.T) {
	h, _ := newTestHandler(t, dapptest.NewContract(), nil)

	rec := do(h.Deposit, http.MethodPost, "/wallet/deposit", `{"amount":"1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "not_connected", decode[model.ErrorResponse](t, rec).Code)

	rec = do(h.GetBalance, http.MethodGet, "/wallet/balance", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	require.Equal(t, http.StatusOK, do(h.Connect, http.MethodPost, "/wallet/connect", "").Code)

	rec = do(h.Withdraw, http.MethodPost, "/wallet/withdraw", `{"amount":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_amount", decode[model.ErrorResponse](t, rec).Code)

	rec = do(h.Deposit, http.MethodPost, "/wallet/deposit", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h.TransactionHistory, http.MethodGet, "/wallet/transactions?from=01-02-2026", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h.TransactionHistory, http.MethodGet, "/wallet/transactions?minAmount=2&maxAmount=1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t, dapptest.NewContract(), nil)

	cases := map[string]http.HandlerFunc{
		http.MethodGet:    h.Connect,
		http.MethodDelete: h.Deposit,
		http.MethodPost:   h.Session,
		http.MethodPatch:  h.SetAmount,
	}
	for method, fn := range cases {
		rec := do(fn, method, "/", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
	}
}

func TestNotifications(t *testing.T) {
	h, _ := newTestHandler(t, dapptest.NewContract(), nil)
	require.Equal(t, http.StatusOK, do(h.Connect, http.MethodPost, "/wallet/connect", "").Code)

	rec := do(h.Notifications, http.MethodGet, "/wallet/notifications", "")
	require.Equal(t, http.StatusOK, rec.Code)
	notes := decode[[]model.NotificationResponse](t, rec)
	require.Len(t, notes, 1)
	assert.Equal(t, "success", notes[0].Severity)
	assert.Equal(t, "Wallet connected successfully!", notes[0].Message)

	rec = do(h.Notifications, http.MethodGet, "/wallet/notifications", "")
	assert.Empty(t, decode[[]model.NotificationResponse](t, rec))
}

func TestGenerate(t *testing.T) {
	h, _ := newTestHandler(t, dapptest.NewContract(), nil)

	rec := do(h.Generate, http.MethodPost, "/wallet/generate", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h.filePath = filepath.Join(t.TempDir(), "wallet.cwt")
	h.password = func() ([]byte, error) { return []byte("pw"), nil }

	rec = do(h.Generate, http.MethodPost, "/wallet/generate", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode[model.GenerateResponse](t, rec).Success)

	rec = do(h.Generate, http.MethodPost, "/wallet/generate", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestStatusFor(t *testing.T) {
	cases := map[error]int{
		dapp.ErrProviderUnavailable: http.StatusServiceUnavailable,
		dapp.ErrConnectionRejected:  http.StatusBadGateway,
		dapp.ErrNotConnected:        http.StatusConflict,
		dapp.ErrInvalidAmount:       http.StatusBadRequest,
		dapp.ErrRemoteCallFailed:    http.StatusBadGateway,
		dapp.ErrTransactionFailed:   http.StatusBadGateway,
		dapp.ErrBusy:                http.StatusTooManyRequests,
		dapp.ErrCooldown:            http.StatusTooManyRequests,
		errors.New("boom"):          http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, statusFor(fmt.Errorf("wrapped: %w", err)), err.Error())
	}
}
