package dapp

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/AlexZinkM/mini-dapp/internal/client"
	"github.com/AlexZinkM/mini-dapp/internal/crypto"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// ChainSource resolves the chain the signer signs for
type ChainSource interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

// KeyfileProvider is a wallet backed by an encrypted .cwt key file
type KeyfileProvider struct {
	filePath string
	password func() ([]byte, error)
	chain    ChainSource
}

// NewKeyfileProvider creates a provider for filePath. password must return a
// fresh copy on each call; the provider zeroes it after use.
func NewKeyfileProvider(filePath string, password func() ([]byte, error), chain ChainSource) *KeyfileProvider {
	return &KeyfileProvider{
		filePath: filePath,
		password: password,
		chain:    chain,
	}
}

// Available reports whether the key file exists
func (p *KeyfileProvider) Available() bool {
	return crypto.WalletExists(p.filePath)
}

// RequestAccounts returns the key file address without decrypting it
func (p *KeyfileProvider) RequestAccounts(ctx context.Context) ([]ethcommon.Address, error) {
	address, err := crypto.ReadWalletAddress(p.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read wallet address: %w", err)
	}
	if !ethcommon.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid address in wallet file: %q", address)
	}
	return []ethcommon.Address{ethcommon.HexToAddress(address)}, nil
}

// Signer decrypts the key and returns a transactor for the node's chain
func (p *KeyfileProvider) Signer(ctx context.Context) (*bind.TransactOpts, error) {
	if p.password == nil {
		return nil, errors.New("password not set")
	}
	password, err := p.password()
	if err != nil {
		return nil, err
	}
	defer clear(password) // Always clear password from memory

	cwtFile, walletData, err := crypto.DecryptWallet(p.filePath, password)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt wallet: %w", err)
	}
	defer clear(walletData.PrivateKey) // Always clear private key from memory

	key, err := ethcrypto.ToECDSA(walletData.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	if !strings.EqualFold(ethcrypto.PubkeyToAddress(key.PublicKey).Hex(), cwtFile.Address) {
		return nil, errors.New("private key does not match address")
	}

	chainID, err := p.chain.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	return opts, nil
}

// NewVaultBinder binds the vault at address through connector. Binding fails
// when no contract code is deployed at address.
func NewVaultBinder(address ethcommon.Address, connector *client.Connector) ContractBinder {
	return func(ctx context.Context, signer *bind.TransactOpts) (ContractProxy, error) {
		eth, err := connector.Client(ctx)
		if err != nil {
			return nil, err
		}

		code, err := eth.Backend().CodeAt(ctx, address, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to read contract code: %w", err)
		}
		if len(code) == 0 {
			return nil, fmt.Errorf("no contract deployed at %s", address.Hex())
		}

		vault, err := client.NewVaultContract(address, eth.Backend(), signer)
		if err != nil {
			return nil, err
		}
		return vaultProxy{vault: vault}, nil
	}
}

// vaultProxy narrows *client.PendingTransaction to PendingTx
type vaultProxy struct {
	vault *client.VaultContract
}

func (v vaultProxy) Address() ethcommon.Address {
	return v.vault.Address()
}

func (v vaultProxy) GetBalance(ctx context.Context) (*big.Int, error) {
	return v.vault.GetBalance(ctx)
}

func (v vaultProxy) Deposit(ctx context.Context, value *big.Int) (PendingTx, error) {
	tx, err := v.vault.Deposit(ctx, value)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (v vaultProxy) Withdraw(ctx context.Context, amount *big.Int) (PendingTx, error) {
	tx, err := v.vault.Withdraw(ctx, amount)
	if err != nil {
		return nil, err
	}
	return tx, nil
}
