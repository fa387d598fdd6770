package commands

import (
	"fmt"
	"os"

	"github.com/AlexZinkM/mini-dapp/dapp"
	"github.com/AlexZinkM/mini-dapp/internal/client"
	"github.com/AlexZinkM/mini-dapp/internal/config"
	"github.com/AlexZinkM/mini-dapp/internal/logger"
	"github.com/AlexZinkM/mini-dapp/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	walletFile string
	rpcURL     string

	log *zap.Logger
)

func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "minidapp",
		Short:         "Local wallet for the ETH vault contract",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(); err != nil {
				return err
			}
			cfg := config.Get()
			if walletFile != "" {
				cfg.WalletFilePath = walletFile
			}
			if rpcURL != "" {
				cfg.RPCURL = rpcURL
			}

			l, err := logger.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				_ = log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&walletFile, "wallet", "w", "", "path to .cwt wallet file (default $WALLET_FILE_PATH)")
	root.PersistentFlags().StringVar(&rpcURL, "rpc", "", "Ethereum JSON-RPC URL (default $ETH_RPC_URL)")

	root.AddCommand(serveCmd(), generateCmd(), rekeyCmd(), balanceCmd(), depositCmd(), withdrawCmd())
	return root
}

// wallet holds what every wallet-touching command needs
type wallet struct {
	controller *dapp.Controller
	connector  *client.Connector
}

func (w *wallet) Close() {
	w.connector.Close()
}

// newWallet wires the controller to the key file and the vault contract.
// The password is prompted once and kept in memory for the signer. Without a
// wallet file the provider is unavailable and Connect reports it.
func newWallet(notifier dapp.Notifier, reg prometheus.Registerer) (*wallet, error) {
	path := config.GetWalletFilePath()
	if path != "" {
		if err := config.PromptForPassword(); err != nil {
			return nil, err
		}
	}

	connector := client.NewConnector(config.GetRPCURL())
	provider := dapp.NewKeyfileProvider(path, config.GetWalletPasswordBytes, connector)
	binder := dapp.NewVaultBinder(config.GetContractAddress(), connector)

	opts := []dapp.Option{
		dapp.WithLogger(log),
		dapp.WithCooldown(config.GetActionCooldown()),
	}
	if reg != nil {
		opts = append(opts, dapp.WithRecorder(metrics.New(reg)))
	}

	return &wallet{
		controller: dapp.New(provider, binder, notifier, opts...),
		connector:  connector,
	}, nil
}
