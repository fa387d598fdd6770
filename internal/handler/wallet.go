package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/AlexZinkM/mini-dapp/dapp"
	"github.com/AlexZinkM/mini-dapp/internal/model"

	"go.uber.org/zap"
)

// PriceSource quotes ETH in a fiat currency
type PriceSource interface {
	GetETHRate(currency string) (string, error)
}

// WalletHandler serves the wallet session over HTTP
type WalletHandler struct {
	controller *dapp.Controller
	feed       *dapp.Feed
	price      PriceSource
	currency   string
	filePath   string
	password   func() ([]byte, error)
	log        *zap.Logger
}

// WalletHandlerConfig groups WalletHandler dependencies. Price and Password are optional.
type WalletHandlerConfig struct {
	Controller     *dapp.Controller
	Feed           *dapp.Feed
	Price          PriceSource
	PriceCurrency  string
	WalletFilePath string
	Password       func() ([]byte, error)
	Logger         *zap.Logger
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(cfg WalletHandlerConfig) (*WalletHandler, error) {
	if cfg.Controller == nil {
		return nil, errors.New("controller is required")
	}
	if cfg.Feed == nil {
		return nil, errors.New("notification feed is required")
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &WalletHandler{
		controller: cfg.Controller,
		feed:       cfg.Feed,
		price:      cfg.Price,
		currency:   cfg.PriceCurrency,
		filePath:   cfg.WalletFilePath,
		password:   cfg.Password,
		log:        log,
	}, nil
}

// Connect handles POST /wallet/connect
// @Summary      Connect wallet
// @Description  Reads the account from the wallet file, unlocks the signer and binds the vault contract
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.SessionResponse
// @Failure      502  {object}  model.ErrorResponse
// @Failure      503  {object}  model.ErrorResponse
// @Router       /wallet/connect [post]
func (h *WalletHandler) Connect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	if err := h.controller.Connect(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(h.controller.View()))
}

// Session handles GET /wallet/session
// @Summary      Current session
// @Description  Returns the disconnected or connected view of the session
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.SessionResponse
// @Router       /wallet/session [get]
func (h *WalletHandler) Session(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(h.controller.View()))
}

// GetBalance handles GET /wallet/balance
// @Summary      Refresh vault balance
// @Description  Reads getBalance() from the vault and, when available, the fiat value
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.BalanceResponse
// @Failure      409  {object}  model.ErrorResponse
// @Failure      502  {object}  model.ErrorResponse
// @Router       /wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	if err := h.controller.RefreshBalance(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	s := h.controller.Session()
	resp := model.BalanceResponse{ETH: s.Balance}
	if s.Account != nil {
		resp.Account = s.Account.Hex()
	}
	h.quote(&resp)

	writeJSON(w, http.StatusOK, resp)
}

// quote fills the fiat fields; a failed quote is logged, not returned
func (h *WalletHandler) quote(resp *model.BalanceResponse) {
	if h.price == nil || h.currency == "" {
		return
	}
	rate, err := h.price.GetETHRate(h.currency)
	if err != nil {
		h.log.Warn("price quote failed", zap.Error(err))
		return
	}

	// float only for display, not for critical operations
	eth, ok := new(big.Float).SetString(resp.ETH)
	if !ok {
		return
	}
	rateFloat, err := strconv.ParseFloat(rate, 64)
	if err != nil {
		h.log.Warn("invalid price quote", zap.String("rate", rate), zap.Error(err))
		return
	}
	fiat, _ := new(big.Float).Mul(eth, big.NewFloat(rateFloat)).Float64()

	resp.Rate = rate
	resp.Currency = h.currency
	resp.Fiat = strconv.FormatFloat(fiat, 'f', 2, 64)
}

// SetAmount handles PUT /wallet/amount
// @Summary      Set pending amount
// @Description  Stores the amount used by deposit/withdraw when their body has none
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.AmountRequest  true  "Amount in ETH"
// @Success      200      {object}  model.SessionResponse
// @Router       /wallet/amount [put]
func (h *WalletHandler) SetAmount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed. Should be PUT", http.StatusMethodNotAllowed)
		return
	}

	var req model.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}

	h.controller.SetPendingAmount(req.Amount)
	writeJSON(w, http.StatusOK, sessionResponse(h.controller.View()))
}

// Deposit handles POST /wallet/deposit
// @Summary      Deposit ETH
// @Description  Sends the amount to the vault and waits for confirmation
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.AmountRequest  false  "Amount in ETH (default: pending amount)"
// @Success      200      {object}  model.ActionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /wallet/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.transact(w, r, h.controller.Deposit)
}

// Withdraw handles POST /wallet/withdraw
// @Summary      Withdraw ETH
// @Description  Asks the vault to pay out the amount and waits for confirmation
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.AmountRequest  false  "Amount in ETH (default: pending amount)"
// @Success      200      {object}  model.ActionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.transact(w, r, h.controller.Withdraw)
}

func (h *WalletHandler) transact(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, amount string) (*model.Transaction, error)) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	// empty body or amount: the controller uses the pending amount
	var req model.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}

	tx, err := action(r.Context(), req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ActionResponse{
		TxID:    tx.TxID,
		Amount:  tx.Amount,
		Balance: h.controller.Session().Balance,
	})
}

// Notifications handles GET /wallet/notifications
// @Summary      Pending notifications
// @Description  Returns and dismisses the notifications emitted since the last call
// @Tags         wallet
// @Produce      json
// @Success      200  {array}  model.NotificationResponse
// @Router       /wallet/notifications [get]
func (h *WalletHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	items := h.feed.Drain()
	resp := make([]model.NotificationResponse, 0, len(items))
	for _, n := range items {
		resp = append(resp, model.NotificationResponse{Severity: string(n.Severity), Message: n.Message})
	}
	writeJSON(w, http.StatusOK, resp)
}

// TransactionHistory handles GET /wallet/transactions
// @Summary      Session transactions
// @Description  Lists deposits and withdrawals submitted in this session with filtering
// @Tags         wallet
// @Produce      json
// @Param        type       query     string   false  "Transaction type: DEPOSIT or WITHDRAW"
// @Param        txId       query     string   false  "Transaction hash"
// @Param        from       query     string   false  "Start date (YYYY-MM-DD)"
// @Param        to         query     string   false  "End date (YYYY-MM-DD)"
// @Param        minAmount  query     string   false  "Minimum amount (ETH)"
// @Param        maxAmount  query     string   false  "Maximum amount (ETH)"
// @Success      200  {object}  model.LogResponse
// @Failure      400  {object}  model.ErrorResponse
// @Router       /wallet/transactions [get]
func (h *WalletHandler) TransactionHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	var req model.LogRequest
	q := r.URL.Query()

	const dateLayout = "2006-01-02"
	if fromStr := q.Get("from"); fromStr != "" {
		t, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid from date: use YYYY-MM-DD (e.g. 2006-01-02)", Code: "bad_request"})
			return
		}
		req.From = &t
	}
	if toStr := q.Get("to"); toStr != "" {
		t, err := time.Parse(dateLayout, toStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid to date: use YYYY-MM-DD (e.g. 2006-01-02)", Code: "bad_request"})
			return
		}
		// End of day so filter is inclusive
		t = t.Add(24*time.Hour - time.Nanosecond)
		req.To = &t
	}
	if typeStr := q.Get("type"); typeStr != "" {
		txType := model.TransactionType(typeStr)
		req.Type = &txType
	}
	if txID := q.Get("txId"); txID != "" {
		req.TxID = &txID
	}
	if minAmount := q.Get("minAmount"); minAmount != "" {
		req.MinAmount = &minAmount
	}
	if maxAmount := q.Get("maxAmount"); maxAmount != "" {
		req.MaxAmount = &maxAmount
	}

	logResp, err := h.controller.History(&req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}
	writeJSON(w, http.StatusOK, logResp)
}

// Generate handles POST /wallet/generate
// @Summary      Generate new wallet
// @Description  Generates a new Ethereum key and saves it to the configured .cwt file
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /wallet/generate [post]
func (h *WalletHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. should be POST", http.StatusMethodNotAllowed)
		return
	}
	if h.filePath == "" || h.password == nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "WALLET_FILE_PATH not set", Code: "bad_request"})
		return
	}

	// Get password as []byte, use it, then zero it immediately
	passwordBytes, err := h.password()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}
	defer clear(passwordBytes)

	address, err := dapp.GenerateWallet(h.filePath, passwordBytes)
	if err != nil {
		if dapp.IsFileExistsError(err) {
			writeJSON(w, http.StatusConflict, model.ErrorResponse{Error: err.Error(), Code: "file_exists"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: err.Error(), Code: "internal"})
		return
	}

	h.log.Info("wallet generated", zap.String("address", address))
	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet generated successfully",
		Address: address,
	})
}

func sessionResponse(v dapp.View) model.SessionResponse {
	switch v := v.(type) {
	case dapp.Connected:
		return model.SessionResponse{
			State:         model.SessionStateConnected,
			Account:       v.Account.Hex(),
			Balance:       v.Balance,
			PendingAmount: v.PendingAmount,
		}
	default:
		return model.SessionResponse{State: model.SessionStateDisconnected}
	}
}

// statusFor maps controller errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, dapp.ErrProviderUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, dapp.ErrNotConnected):
		return http.StatusConflict
	case errors.Is(err, dapp.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, dapp.ErrBusy), errors.Is(err, dapp.ErrCooldown):
		return http.StatusTooManyRequests
	case errors.Is(err, dapp.ErrConnectionRejected),
		errors.Is(err, dapp.ErrRemoteCallFailed),
		errors.Is(err, dapp.ErrTransactionFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), model.ErrorResponse{Error: err.Error(), Code: dapp.ErrorCode(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
