package model

const (
	SessionStateDisconnected = "disconnected"
	SessionStateConnected    = "connected"
)

// SessionResponse represents response for GET /wallet/session and POST /wallet/connect
type SessionResponse struct {
	State         string `json:"state"`
	Account       string `json:"account,omitempty"`
	Balance       string `json:"balance,omitempty"`
	PendingAmount string `json:"pendingAmount,omitempty"`
}

// BalanceResponse represents response for GET /wallet/balance
type BalanceResponse struct {
	Account  string `json:"account"`
	ETH      string `json:"eth"`
	Rate     string `json:"rate,omitempty"`
	Currency string `json:"currency,omitempty"`
	Fiat     string `json:"fiat,omitempty"`
}
