package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func generateWalletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-wallet [chain] [new-wallet-id]",
		Short: "Generate a new wallet for a chain and add it to the config",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			chainName := args[0]
			newWalletID := args[1]

			net, err := cfg.ToNetwork(ctx, logger)
			if err != nil {
				return errors.Wrap(err, "failed to build network")
			}

			chain, err := net.GetChain(chainName)
			if err != nil {
				return errors.Wrapf(err, "failed to get chain %s", chainName)
			}

			if _, err := chain.GetWallet(newWalletID); err == nil {
				return errors.Errorf("wallet already exists: %s", newWalletID)
			}

			wallet, err := chain.GenerateWallet(newWalletID)
			if err != nil {
				return errors.Wrap(err, "failed to generate wallet")
			}

			if err := cfg.AddWallet(chainName, newWalletID, wallet.PrivateKeyHex()); err != nil {
				return err
			}
			if err := cfg.SaveConfig(configPath); err != nil {
				return errors.Wrap(err, "failed to save config")
			}

			logger.Info("Generated new wallet",
				zap.String("chain", chainName),
				zap.String("wallet_id", wallet.ID()),
				zap.String("address", wallet.Address()),
				zap.String("config_file", configPath))

			fmt.Println(wallet.Address())

			return nil
		},
	}

	return cmd
}
