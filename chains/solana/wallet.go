package solana

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/gjermundgaraba/libbridge/utils"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// lamportsPerSignature is the base fee charged for every signature in a transaction.
const lamportsPerSignature = 5000

var _ network.Wallet = &Wallet{}

type Wallet struct {
	id         string
	privateKey solana.PrivateKey
	chain      *Solana
}

// AddWallet implements network.Chain. Solana keys are base58 encoded, like the solana cli exports them.
func (s *Solana) AddWallet(walletID string, privateKey string) error {
	key, err := solana.PrivateKeyFromBase58(privateKey)
	if err != nil {
		return errors.Wrap(err, "invalid solana private key")
	}
	if len(key) != 64 {
		return errors.Errorf("invalid solana private key length %d", len(key))
	}

	s.Wallets[walletID] = Wallet{
		id:         walletID,
		privateKey: key,
		chain:      s,
	}
	return nil
}

// GetWallet implements network.Chain.
func (s *Solana) GetWallet(walletID string) (network.Wallet, error) {
	wallet, ok := s.Wallets[walletID]
	if !ok {
		return nil, errors.Errorf("wallet not found: %s", walletID)
	}
	return &wallet, nil
}

// GenerateWallet implements network.Chain.
func (s *Solana) GenerateWallet(walletID string) (network.Wallet, error) {
	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate solana private key")
	}

	wallet := Wallet{
		id:         walletID,
		privateKey: key,
		chain:      s,
	}
	s.Wallets[walletID] = wallet

	return &wallet, nil
}

// GetWallets implements network.Chain.
func (s *Solana) GetWallets() []network.Wallet {
	wallets := make([]network.Wallet, 0, len(s.Wallets))
	for _, wallet := range s.Wallets {
		wallets = append(wallets, &wallet)
	}
	return wallets
}

// ID implements network.Wallet.
func (w *Wallet) ID() string {
	return w.id
}

// Address implements network.Wallet.
func (w *Wallet) Address() string {
	return w.privateKey.PublicKey().String()
}

// ChainID implements network.Wallet.
func (w *Wallet) ChainID() string {
	return w.chain.ChainID
}

// PrivateKeyHex implements network.Wallet. Solana keys are returned base58 encoded.
func (w *Wallet) PrivateKeyHex() string {
	return w.privateKey.String()
}

// SendTransaction implements network.Wallet.
// It signs for the wallet key only, sends the transaction and waits until it is confirmed.
func (w *Wallet) SendTransaction(ctx context.Context, tx network.Tx) (string, error) {
	solTx, ok := tx.(*Tx)
	if !ok {
		return "", errors.Errorf("invalid tx type for solana wallet: %T", tx)
	}
	if solTx.Chain != w.chain.ChainID {
		return "", errors.Errorf("tx for chain %s cannot be sent on chain %s", solTx.Chain, w.chain.ChainID)
	}

	transaction, err := decodeTransaction(solTx.Raw)
	if err != nil {
		return "", err
	}

	publicKey := w.privateKey.PublicKey()
	if _, err := transaction.PartialSign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(publicKey) {
			return &w.privateKey
		}
		return nil
	}); err != nil {
		return "", errors.Wrapf(err, "failed to sign %s", solTx.Desc)
	}

	sig, err := w.chain.client.SendTransactionWithOpts(ctx, transaction, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: w.chain.commitment,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to send %s", solTx.Desc)
	}

	if err := w.waitForConfirmation(ctx, sig); err != nil {
		return "", err
	}

	w.chain.logger.Info("Sent transaction", zap.String("signature", sig.String()), zap.String("from", w.Address()), zap.String("description", solTx.Desc))

	return sig.String(), nil
}

func (w *Wallet) waitForConfirmation(ctx context.Context, sig solana.Signature) error {
	var txErr interface{}
	err := utils.WaitForCondition(ctx, confirmationTimeout, time.Second, func() (bool, error) {
		statuses, err := w.chain.client.GetSignatureStatuses(ctx, true, sig)
		if err != nil {
			return false, nil
		}
		if statuses == nil || len(statuses.Value) == 0 || statuses.Value[0] == nil {
			return false, nil
		}

		status := statuses.Value[0]
		if status.Err != nil {
			txErr = status.Err
			return true, nil
		}
		return status.ConfirmationStatus == rpc.ConfirmationStatusConfirmed || status.ConfirmationStatus == rpc.ConfirmationStatusFinalized, nil
	})
	if err != nil {
		return errors.Wrapf(err, "transaction %s was not confirmed", sig)
	}
	if txErr != nil {
		return errors.Errorf("transaction %s failed: %v", sig, txErr)
	}
	return nil
}

// EstimateFees implements network.Wallet.
func (w *Wallet) EstimateFees(_ context.Context) (network.FeeData, error) {
	return network.FeeData{
		GasPrice: decimal.NewFromInt(lamportsPerSignature),
		Denom:    "lamports",
	}, nil
}
