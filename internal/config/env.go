package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: Password is prompted at runtime and stored in memory - use GetWalletPasswordBytes()
type Config struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	ActionCooldown  time.Duration `envconfig:"ACTION_COOLDOWN" default:"0s"`
	WalletFilePath  string        `envconfig:"WALLET_FILE_PATH"`
	RPCURL          string        `envconfig:"ETH_RPC_URL" default:"http://127.0.0.1:8545"`
	ContractAddress string        `envconfig:"CONTRACT_ADDRESS" default:"0xd9145CCE52D386f254917e481eB44e9943F39138"`
	PriceCurrency   string        `envconfig:"PRICE_CURRENCY" default:"usd"`
	CoinGeckoURL    string        `envconfig:"COINGECKO_URL" default:"https://api.coingecko.com/api/v3"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if !common.IsHexAddress(c.ContractAddress) {
		return fmt.Errorf("CONTRACT_ADDRESS %q is not a valid hex address", c.ContractAddress)
	}
	if c.ActionCooldown < 0 {
		return errors.New("ACTION_COOLDOWN cannot be negative")
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetActionCooldown returns minimum delay between two deposit/withdraw submissions
func GetActionCooldown() time.Duration {
	return Get().ActionCooldown
}

// GetWalletFilePath returns path to .cwt file from configuration
func GetWalletFilePath() string {
	return Get().WalletFilePath
}

// GetRPCURL returns Ethereum JSON-RPC URL from configuration
func GetRPCURL() string {
	return Get().RPCURL
}

// GetContractAddress returns the vault contract address
func GetContractAddress() common.Address {
	return common.HexToAddress(Get().ContractAddress)
}

var passwordBytes []byte

// PromptForPassword prompts the user for the wallet password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
// Call this at startup before the server begins handling requests.
func PromptForPassword() error {
	raw, err := ReadPassword("Enter wallet password: ")
	if err != nil {
		return err
	}
	SetPassword(raw)
	clear(raw)
	return nil
}

// ReadPassword reads one hidden line from the terminal.
func ReadPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}
	return raw, nil
}

// SetPassword stores a copy of password in memory.
func SetPassword(password []byte) {
	clear(passwordBytes)
	passwordBytes = make([]byte, len(password))
	copy(passwordBytes, password)
}

// GetWalletPasswordBytes returns the password stored in memory (from PromptForPassword).
// Returns an error if the password was not set.
// Caller must zero the returned slice after use for security.
func GetWalletPasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
