package signer

import (
	"context"
	"sync"

	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/gjermundgaraba/libbridge/route"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrSignOnlyUnsupported is returned by Sign. Wallets behind a Signer can only sign and broadcast in one step.
var ErrSignOnlyUnsupported = errors.New("signer cannot produce detached signatures, use SignAndSend")

var _ route.Signer = &Signer{}

// Signer adapts a send-and-wait wallet to the sign-and-send interface routes expect.
// A Signer must not be used by more than one transfer at a time.
type Signer struct {
	logger *zap.Logger
	wallet network.Wallet
	chain  network.Chain

	mu sync.Mutex
}

func CreateSigner(logger *zap.Logger, wallet network.Wallet, chain network.Chain) (*Signer, error) {
	if wallet == nil {
		return nil, errors.New("wallet is required")
	}
	if chain == nil {
		return nil, errors.New("chain is required")
	}
	if wallet.ChainID() != chain.GetChainID() {
		return nil, errors.Errorf("wallet %s is connected to chain %s, not %s (%s)", wallet.ID(), wallet.ChainID(), chain.GetName(), chain.GetChainID())
	}

	return &Signer{
		logger: logger.With(zap.String("chain", chain.GetName()), zap.String("address", wallet.Address())),
		wallet: wallet,
		chain:  chain,
	}, nil
}

// Chain implements route.Signer.
func (s *Signer) Chain() string {
	return s.chain.GetName()
}

// Address implements route.Signer.
func (s *Signer) Address() string {
	return s.wallet.Address()
}

// SignAndSend implements route.Signer.
// Each transaction is sent and acknowledged before the next one, since later transactions usually spend
// what earlier ones approved. The first failure stops the sequence and is reported as a *network.SubmissionError.
func (s *Signer) SignAndSend(ctx context.Context, txs []network.Tx) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txIDs := make([]string, 0, len(txs))
	for i, tx := range txs {
		if err := ctx.Err(); err != nil {
			return txIDs, s.submissionError(i, txs, txIDs, err)
		}
		if tx.ChainID() != s.chain.GetChainID() {
			return txIDs, s.submissionError(i, txs, txIDs, errors.Errorf("transaction is for chain %s", tx.ChainID()))
		}

		s.logger.Info("Sending transaction", zap.Int("index", i+1), zap.Int("total", len(txs)), zap.String("description", tx.Description()))

		txID, err := s.wallet.SendTransaction(ctx, tx)
		if err != nil {
			return txIDs, s.submissionError(i, txs, txIDs, err)
		}
		txIDs = append(txIDs, txID)

		s.logger.Info("Transaction acknowledged", zap.String("tx", txID), zap.String("description", tx.Description()))
	}

	return txIDs, nil
}

// Sign always fails. It exists so misuse of the signer shows up as an error instead of a silent fallback.
func (s *Signer) Sign(_ context.Context, _ []network.Tx) ([][]byte, error) {
	return nil, errors.WithStack(ErrSignOnlyUnsupported)
}

func (s *Signer) submissionError(index int, txs []network.Tx, completed []string, err error) error {
	s.logger.Warn("Transaction sequence aborted",
		zap.Int("failed-index", index+1),
		zap.Int("total", len(txs)),
		zap.Int("completed", len(completed)),
		zap.Error(err),
	)
	return errors.WithStack(&network.SubmissionError{
		Index:       index,
		Total:       len(txs),
		Completed:   append([]string(nil), completed...),
		Description: txs[index].Description(),
		Err:         err,
	})
}
