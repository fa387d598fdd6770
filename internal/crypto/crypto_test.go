package crypto

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlexZinkM/mini-dapp/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	keyParams.N = 1 << 10
	os.Exit(m.Run())
}

func testWallet() *model.WalletData {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i + 1)
	}
	return &model.WalletData{PrivateKey: key, CreatedAt: "2026-01-01T00:00:00Z"}
}

func TestEncryptDecrypt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	w := testWallet()

	require.NoError(t, EncryptWallet(path, "ethereum", "0xabc", "qr", w, []byte("pass")))

	cwt, got, err := DecryptWallet(path, []byte("pass"))
	require.NoError(t, err)
	assert.Equal(t, "ethereum", cwt.Network)
	assert.Equal(t, "0xabc", cwt.Address)
	assert.Equal(t, w.PrivateKey, got.PrivateKey)
	assert.Equal(t, w.CreatedAt, got.CreatedAt)

	addr, err := ReadWalletAddress(path)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", addr)
	assert.True(t, WalletExists(path))
}

func TestDecrypt_WrongPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	require.NoError(t, EncryptWallet(path, "ethereum", "0xabc", "", testWallet(), []byte("pass")))

	_, _, err := DecryptWallet(path, []byte("nope"))
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestEncrypt_Refusals(t *testing.T) {
	dir := t.TempDir()

	err := EncryptWallet(filepath.Join(dir, "wallet.json"), "ethereum", "0xabc", "", testWallet(), []byte("pass"))
	assert.Error(t, err)

	path := filepath.Join(dir, "wallet.cwt")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0600))
	err = EncryptWallet(path, "ethereum", "0xabc", "", testWallet(), []byte("pass"))
	assert.ErrorIs(t, err, ErrFileExists)
}

func TestReadWalletAddress_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.cwt")
	_, err := ReadWalletAddress(path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, WalletExists(path))
	assert.False(t, WalletExists(""))
}

func TestReencryptWallet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	w := testWallet()
	require.NoError(t, EncryptWallet(path, "ethereum", "0xabc", "qr", w, []byte("old")))

	require.NoError(t, ReencryptWallet(path, []byte("old"), []byte("new")))

	_, _, err := DecryptWallet(path, []byte("old"))
	assert.ErrorIs(t, err, ErrInvalidPassword)

	cwt, got, err := DecryptWallet(path, []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, testWallet().PrivateKey, got.PrivateKey)
	assert.Equal(t, "qr", cwt.QR)
	assert.Equal(t, "0xabc", cwt.Address)
}

func TestReencryptWallet_WrongPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	require.NoError(t, EncryptWallet(path, "ethereum", "0xabc", "", testWallet(), []byte("old")))

	assert.ErrorIs(t, ReencryptWallet(path, []byte("bad"), []byte("new")), ErrInvalidPassword)
}
