package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/gjermundgaraba/libbridge/cmd/bridge/tui"
	"github.com/gjermundgaraba/libbridge/route"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// transferFlags are shared by every command that quotes routes.
type transferFlags struct {
	destToken string
	sortOrder string
	slippage  string
	timeout   time.Duration
}

func (f *transferFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.destToken, "dest-token", "", "Destination token address or symbol, defaults to the first token the source token can reach")
	cmd.Flags().StringVar(&f.sortOrder, "sort", "none", "Sort routes by fee or speed (none, fee, speed)")
	cmd.Flags().StringVar(&f.slippage, "slippage", "", "Slippage tolerance in percent, defaults to the config value")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "How long the transfer may take before it is refunded, 0 uses the protocol default")
}

func (f *transferFlags) options() route.TransferOptions {
	slippage := f.slippage
	if slippage == "" {
		slippage = cfg.SlippageTolerancePercent
	}
	return route.TransferOptions{
		SlippageTolerancePercent: slippage,
		Timeout:                  f.timeout,
	}
}

func routesCmd() *cobra.Command {
	var flags transferFlags

	cmd := &cobra.Command{
		Use:   "routes [source-chain] [destination-chain] [token] [amount] [sender] [receiver]",
		Short: "List the quoted routes for a transfer",
		Long: `Resolve every route that can move the token from the source chain to the destination chain
and quote them for the given amount. The token can be given as an address, a denom or a configured symbol.
The amount is in whole tokens, e.g. 10.5.`,
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			order, err := route.ParseSortOrder(flags.sortOrder)
			if err != nil {
				return err
			}

			b, err := newBridge(ctx)
			if err != nil {
				return err
			}

			req, err := b.routeRequest(args[0], args[1], args[2], flags.destToken, args[4], args[5])
			if err != nil {
				return err
			}

			session, _, err := b.quote(ctx, req, args[3], flags.options())
			if err != nil {
				return err
			}
			session = session.SortedBy(order)

			request := session.Request()
			fmt.Printf("%s %s on %s -> %s on %s\n\n", args[3], request.SourceToken().Symbol, request.SourceChain().GetName(), request.DestinationToken().Symbol, request.DestinationChain().GetName())
			fmt.Println(tui.RouteTable(session.Options(), -1))
			for i, option := range session.Options() {
				fmt.Printf("%d. %s: %s\n", i, option.Name, option.Description)
			}

			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func (b *bridge) routeRequest(srcChain string, dstChain string, token string, destToken string, sender string, receiver string) (route.RouteRequest, error) {
	src, err := b.network.GetChain(srcChain)
	if err != nil {
		return route.RouteRequest{}, errors.Wrapf(err, "failed to get chain %s", srcChain)
	}
	dst, err := b.network.GetChain(dstChain)
	if err != nil {
		return route.RouteRequest{}, errors.Wrapf(err, "failed to get chain %s", dstChain)
	}

	req := route.RouteRequest{
		SourceChain:      srcChain,
		DestinationChain: dstChain,
		Token:            tokenAddress(src, token),
		Sender:           sender,
		Receiver:         receiver,
	}
	if destToken != "" {
		req.DestinationToken = tokenAddress(dst, destToken)
	}

	return req, nil
}

// tokenAddress maps a configured symbol to its token address, anything else is passed through.
func tokenAddress(chain network.Chain, arg string) string {
	for _, token := range chain.Tokens() {
		if strings.EqualFold(token.Symbol, arg) {
			return token.ID.Address
		}
	}
	return arg
}
