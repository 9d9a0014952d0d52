package cmd

import (
	"fmt"

	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/gjermundgaraba/libbridge/route"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func balanceCmd() *cobra.Command {
	var walletID string

	cmd := &cobra.Command{
		Use:   "balance [chain] [token] [address]",
		Short: "Query balance for an address on a specific chain",
		Long: `Query the token balance for an address on a specific chain.
If address is not provided, it will use the address from the specified wallet.
The token can be a configured symbol, a token address or "native" for the chain's native currency.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			chainName := args[0]

			var address string
			if len(args) == 3 {
				address = args[2]
			} else if walletID == "" {
				return errors.New("either wallet-id flag or address argument must be provided")
			}

			net, err := cfg.ToNetwork(ctx, logger)
			if err != nil {
				return errors.Wrap(err, "failed to build network")
			}

			chain, err := net.GetChain(chainName)
			if err != nil {
				return errors.Wrapf(err, "failed to get chain %s", chainName)
			}

			token, err := chain.GetToken(network.NewTokenID(chainName, tokenAddress(chain, args[1])))
			if err != nil {
				return err
			}

			if address == "" {
				wallet, err := chain.GetWallet(walletID)
				if err != nil {
					return errors.Wrapf(err, "failed to get wallet %s", walletID)
				}
				address = wallet.Address()
			}

			balance, err := chain.GetBalance(ctx, address, token)
			if err != nil {
				return errors.Wrapf(err, "failed to get balance for address %s with token %s", address, token.Symbol)
			}

			logger.Info("Balance retrieved",
				zap.String("chain", chainName),
				zap.String("address", address),
				zap.String("token", token.ID.String()),
				zap.String("balance", balance.String()))

			// Print balance to stdout for easy consumption by scripts
			fmt.Printf("%s %s\n", route.FormatAmount(balance, token.Decimals), token.Symbol)

			return nil
		},
	}

	cmd.Flags().StringVar(&walletID, "wallet-id", "", "Optional wallet ID to query balance for")

	return cmd
}
