package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gjermundgaraba/libbridge/cmd/bridge/tui"
	"github.com/gjermundgaraba/libbridge/route"
	"github.com/gjermundgaraba/libbridge/signer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// progressReporter is what the transfer flow reports to, either the TUI or plain logs.
type progressReporter interface {
	UpdateMainStatus(status string)
	UpdateProgress(percent int)
}

type logReporter struct {
	logger *zap.Logger
}

func (r logReporter) UpdateMainStatus(status string) {
	r.logger.Info(status)
}

func (r logReporter) UpdateProgress(int) {}

func transferCmd() *cobra.Command {
	var (
		flags     transferFlags
		routeKind string
		index     int
		noTui     bool
	)

	cmd := &cobra.Command{
		Use:   "transfer [source-chain] [destination-chain] [token] [amount] [wallet-id] [receiver]",
		Short: "Quote and execute a cross-chain transfer from a configured wallet",
		Long: `Resolve and quote every route for the transfer, pick one and submit it from the wallet.
Without --route or --index the first route is used, after sorting with --sort.`,
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			order, err := route.ParseSortOrder(flags.sortOrder)
			if err != nil {
				return err
			}
			var kind route.RouteKind
			if routeKind != "" {
				if kind, err = route.ParseRouteKind(routeKind); err != nil {
					return err
				}
			}

			run := func(reporter progressReporter) (*route.TransferReceipt, error) {
				return executeTransfer(ctx, reporter, args, flags, order, kind, index)
			}

			if noTui {
				logWriter.AddExtraLogger(func(entry string) {
					fmt.Print(entry)
				})

				receipt, err := run(logReporter{logger: logger})
				if err != nil {
					return err
				}
				fmt.Println(formatReceipt(receipt))
				return nil
			}

			tuiInstance := tui.NewTui(logWriter, "Bridge Transfer", "", "Initializing")

			runErr := make(chan error, 1)
			go func() {
				receipt, err := run(tuiInstance)
				runErr <- err
				if err != nil {
					logger.Error("Transfer failed", zap.Error(err))
					tuiInstance.UpdateMainErrorStatus(fmt.Sprintf("Transfer failed: %s", err.Error()))
					tuiInstance.Done("Nothing more to do.")
					return
				}
				tuiInstance.UpdateProgress(100)
				tuiInstance.UpdateMainStatus("Transfer submitted")
				tuiInstance.Done(formatReceipt(receipt))
			}()

			if err := tuiInstance.Run(); err != nil {
				return errors.Wrap(err, "failed to run TUI")
			}

			// The user may quit before the transfer finished, its logs are still in the log file.
			select {
			case err := <-runErr:
				return err
			default:
				logger.Warn("Exited before the transfer finished", zap.String("log_file", logWriter.Path()))
				return nil
			}
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&routeKind, "route", "", "Route kind to use (automatic-fast, manual-fast, automatic-generic, manual-generic)")
	cmd.Flags().IntVar(&index, "index", -1, "Index of the route to use, as listed by the routes command with the same --sort")
	cmd.Flags().BoolVar(&noTui, "no-tui", false, "Print logs instead of starting the TUI")

	return cmd
}

func executeTransfer(ctx context.Context, reporter progressReporter, args []string, flags transferFlags, order route.SortOrder, kind route.RouteKind, index int) (*route.TransferReceipt, error) {
	srcChainName, dstChainName, token, amount, walletID, receiver := args[0], args[1], args[2], args[3], args[4], args[5]

	reporter.UpdateMainStatus("Resolving routes")
	reporter.UpdateProgress(10)

	b, err := newBridge(ctx)
	if err != nil {
		return nil, err
	}

	srcChain, err := b.network.GetChain(srcChainName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get chain %s", srcChainName)
	}
	wallet, err := srcChain.GetWallet(walletID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get wallet %s", walletID)
	}

	req, err := b.routeRequest(srcChainName, dstChainName, token, flags.destToken, wallet.Address(), receiver)
	if err != nil {
		return nil, err
	}

	reporter.UpdateMainStatus("Quoting routes")
	reporter.UpdateProgress(30)

	opts := flags.options()
	session, baseAmount, err := b.quote(ctx, req, amount, opts)
	if err != nil {
		return nil, err
	}
	session = session.SortedBy(order)

	switch {
	case kind != route.RouteKindUnspecified:
		session, err = session.SelectKind(kind)
	case index >= 0:
		session, err = session.Select(index)
	}
	if err != nil {
		return nil, err
	}

	option, _ := session.Selected()
	selectedRoute, _, ok := session.SelectedRoute()
	if !ok {
		return nil, errors.New("no route selected")
	}
	logger.Info("Selected route",
		zap.String("route", option.Name),
		zap.String("receive", option.Receive),
		zap.String("fee", option.Fee),
		zap.String("eta", option.ETA),
		zap.Bool("requires_claim", option.RequiresClaim()),
	)

	if session.Stale(time.Now(), b.validity) {
		logger.Info("Quote is stale, the route is quoted again before submission")
	}

	transferSigner, err := signer.CreateSigner(logger, wallet, srcChain)
	if err != nil {
		return nil, err
	}

	reporter.UpdateMainStatus(fmt.Sprintf("Submitting %s", option.Name))
	reporter.UpdateProgress(60)

	return b.executor.InitiateTransfer(ctx, route.TransferParams{
		Route:   selectedRoute,
		Request: session.Request(),
		Signer:  transferSigner,
		Amount:  baseAmount,
		Options: opts,
	})
}

func formatReceipt(receipt *route.TransferReceipt) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Transfer submitted on %s via %s\n", receipt.SourceChain, receipt.Route))
	sb.WriteString(fmt.Sprintf("Transaction: %s\n", receipt.TxID))
	if len(receipt.OriginTxs) > 1 {
		sb.WriteString(fmt.Sprintf("All transactions: %s\n", strings.Join(receipt.OriginTxs, ", ")))
	}
	if receipt.TrackingURL != "" {
		sb.WriteString(fmt.Sprintf("Track it at: %s\n", receipt.TrackingURL))
	}
	if !receipt.Route.IsAutomatic() {
		sb.WriteString(fmt.Sprintf("The tokens must be claimed on %s once the transfer arrives.\n", receipt.DestinationChain))
	}
	return strings.TrimRight(sb.String(), "\n")
}
