package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/AlexZinkM/mini-dapp/dapp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("WALLET_FILE_PATH", "")
	t.Setenv("LOG_LEVEL", "error")
	walletFile, rpcURL = "", ""

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestKeyfileCommands_NoWalletPath(t *testing.T) {
	for _, name := range []string{"generate", "rekey"} {
		_, err := run(t, name)
		assert.ErrorContains(t, err, "wallet file not set", name)
	}
}

func TestActionCommands_NoProvider(t *testing.T) {
	for _, name := range []string{"deposit", "withdraw"} {
		out, err := run(t, name, "1")
		assert.ErrorIs(t, err, dapp.ErrProviderUnavailable, name)
		assert.Contains(t, out, "[error] Error connecting wallet")
	}

	out, err := run(t, "balance")
	assert.ErrorIs(t, err, dapp.ErrProviderUnavailable)
	assert.Contains(t, out, "[error] Error connecting wallet")
}

func TestActionCommands_Args(t *testing.T) {
	_, err := run(t, "deposit")
	assert.Error(t, err)

	_, err = run(t, "withdraw", "1", "2")
	assert.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv("CONTRACT_ADDRESS", "0x123")
	_, err := run(t, "deposit", "1", "--wallet", filepath.Join(t.TempDir(), "w.cwt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONTRACT_ADDRESS")
}
