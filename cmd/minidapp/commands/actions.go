package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/AlexZinkM/mini-dapp/dapp"
	"github.com/AlexZinkM/mini-dapp/internal/model"

	"github.com/spf13/cobra"
)

// printer shows notifications the way a toast would, one line each
func printer(w io.Writer) dapp.Notifier {
	return dapp.NotifierFunc(func(n dapp.Notification) {
		fmt.Fprintf(w, "[%s] %s\n", n.Severity, n.Message)
	})
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Connect and print the vault balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWallet(printer(cmd.OutOrStdout()), nil)
			if err != nil {
				return err
			}
			defer w.Close()

			if err := w.controller.Connect(cmd.Context()); err != nil {
				return err
			}
			return w.controller.RefreshBalance(cmd.Context())
		},
	}
}

func depositCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit AMOUNT",
		Short: "Deposit AMOUNT ETH into the vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, args[0], (*dapp.Controller).Deposit)
		},
	}
}

func withdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw AMOUNT",
		Short: "Withdraw AMOUNT ETH from the vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, args[0], (*dapp.Controller).Withdraw)
		},
	}
}

type action func(c *dapp.Controller, ctx context.Context, amount string) (*model.Transaction, error)

func runAction(cmd *cobra.Command, amount string, do action) error {
	out := cmd.OutOrStdout()
	w, err := newWallet(printer(out), nil)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.controller.Connect(cmd.Context()); err != nil {
		return err
	}
	tx, err := do(w.controller, cmd.Context(), amount)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "tx %s (block %d, gas %d)\n", tx.TxID, tx.BlockNumber, tx.GasUsed)
	return nil
}
