package dapp

import "github.com/ethereum/go-ethereum/common"

// Session is the local state of one wallet session.
// Contract is set iff Provider and Account are set.
type Session struct {
	Provider      WalletProvider
	Contract      ContractProxy
	Account       *common.Address
	Balance       string
	PendingAmount string
}

// Connected reports whether connect has succeeded
func (s Session) Connected() bool {
	return s.Contract != nil
}

func newSession() Session {
	return Session{Balance: "0"}
}

// View is what the UI renders for a session: Disconnected or Connected.
type View interface {
	isView()
}

// Disconnected is shown until connect succeeds
type Disconnected struct{}

// Connected is shown once the wallet is connected
type Connected struct {
	Account       common.Address
	Balance       string
	PendingAmount string
}

func (Disconnected) isView() {}
func (Connected) isView()    {}

// Render selects the view for s
func Render(s Session) View {
	if s.Account == nil || !s.Connected() {
		return Disconnected{}
	}
	return Connected{
		Account:       *s.Account,
		Balance:       s.Balance,
		PendingAmount: s.PendingAmount,
	}
}
