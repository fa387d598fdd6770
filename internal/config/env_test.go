package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Defaults(t *testing.T) {
	t.Setenv("WALLET_FILE_PATH", "/tmp/wallet.cwt")

	require.NoError(t, Init())
	assert.Equal(t, "8080", GetPort())
	assert.Equal(t, "/tmp/wallet.cwt", GetWalletFilePath())
	assert.Equal(t, "http://127.0.0.1:8545", GetRPCURL())
	assert.Equal(t, time.Duration(0), GetActionCooldown())
	assert.Equal(t, "0xd9145CCE52D386f254917e481eB44e9943F39138", GetContractAddress().Hex())
}

func TestInit_RejectsBadContractAddress(t *testing.T) {
	t.Setenv("CONTRACT_ADDRESS", "0x1234")
	assert.Error(t, Init())
}

func TestInit_Cooldown(t *testing.T) {
	t.Setenv("ACTION_COOLDOWN", "90s")
	require.NoError(t, Init())
	assert.Equal(t, 90*time.Second, GetActionCooldown())
}

func TestPasswordBytes(t *testing.T) {
	passwordBytes = nil
	_, err := GetWalletPasswordBytes()
	assert.Error(t, err)

	SetPassword([]byte("secret"))
	got, err := GetWalletPasswordBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), got)

	// caller owns the copy
	clear(got)
	again, err := GetWalletPasswordBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), again)
}
