package model

// AmountRequest represents request for PUT /wallet/amount and POST /wallet/{deposit,withdraw}.
// An empty Amount on deposit/withdraw means "use the pending amount".
type AmountRequest struct {
	Amount string `json:"amount"`
}

// ActionResponse represents response for POST /wallet/{deposit,withdraw}
type ActionResponse struct {
	TxID    string `json:"txId"`
	Amount  string `json:"amount"`
	Balance string `json:"balance"`
}

// NotificationResponse represents one entry of GET /wallet/notifications
type NotificationResponse struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}
