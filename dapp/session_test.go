package dapp

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	assert.Equal(t, Disconnected{}, Render(newSession()))

	account := common.HexToAddress("0x2222222222222222222222222222222222222222")
	// account alone does not make a connected session
	assert.Equal(t, Disconnected{}, Render(Session{Account: &account}))

	s := Session{
		Account:       &account,
		Contract:      vaultProxy{},
		Balance:       "3.25",
		PendingAmount: "1",
	}
	assert.Equal(t, Connected{Account: account, Balance: "3.25", PendingAmount: "1"}, Render(s))
}

func TestFeed(t *testing.T) {
	f := NewFeed(2, nil)
	for i := 0; i < 3; i++ {
		f.Notify(Notification{Severity: SeverityInfo, Message: fmt.Sprint(i)})
	}

	got := f.Drain()
	if assert.Len(t, got, 2) {
		assert.Equal(t, "1", got[0].Message)
		assert.Equal(t, "2", got[1].Message)
	}
	assert.Empty(t, f.Drain())
}

func TestParseAmount(t *testing.T) {
	wei, err := parseAmount("1.5")
	if assert.NoError(t, err) {
		assert.Equal(t, "1500000000000000000", wei.String())
	}

	for _, in := range []string{"", "0", "x", "-2"} {
		_, err := parseAmount(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, in)
	}
}
