package commands

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/AlexZinkM/mini-dapp/dapp"
	"github.com/AlexZinkM/mini-dapp/internal/config"
	"github.com/AlexZinkM/mini-dapp/internal/crypto"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a new key and save it as an encrypted .cwt file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.GetWalletFilePath()
			if path == "" {
				return errors.New("wallet file not set: use --wallet or WALLET_FILE_PATH")
			}

			password, err := readNewPassword()
			if err != nil {
				return err
			}
			defer clear(password)

			address, err := dapp.GenerateWallet(path, password)
			if err != nil {
				return err
			}
			log.Info("wallet generated", zap.String("path", path), zap.String("address", address))
			fmt.Fprintf(cmd.OutOrStdout(), "Wallet created.\nAddress: %s\n", address)
			return nil
		},
	}
}

func rekeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rekey",
		Short: "Re-encrypt the .cwt file under a new password",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.GetWalletFilePath()
			if path == "" {
				return errors.New("wallet file not set: use --wallet or WALLET_FILE_PATH")
			}

			oldPassword, err := config.ReadPassword("Current password: ")
			if err != nil {
				return err
			}
			defer clear(oldPassword)

			newPassword, err := readNewPassword()
			if err != nil {
				return err
			}
			defer clear(newPassword)

			if err := crypto.ReencryptWallet(path, oldPassword, newPassword); err != nil {
				return err
			}
			log.Info("wallet re-encrypted", zap.String("path", path))
			fmt.Fprintln(cmd.OutOrStdout(), "Password changed.")
			return nil
		},
	}
}

func readNewPassword() ([]byte, error) {
	password, err := config.ReadPassword("New password: ")
	if err != nil {
		return nil, err
	}
	confirm, err := config.ReadPassword("Repeat password: ")
	if err != nil {
		clear(password)
		return nil, err
	}
	defer clear(confirm)

	if !bytes.Equal(password, confirm) {
		clear(password)
		return nil, errors.New("passwords do not match")
	}
	return password, nil
}
