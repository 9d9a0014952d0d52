package ethereum

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ network.Wallet = &Wallet{}

type Wallet struct {
	id         string
	address    ethcommon.Address
	privateKey *ecdsa.PrivateKey
	chain      *Ethereum
}

// AddWallet implements network.Chain.
func (e *Ethereum) AddWallet(walletID string, privateKeyHex string) error {
	privKeyHexTrimmed := strings.TrimPrefix(privateKeyHex, "0x")
	keyBytes, err := hex.DecodeString(privKeyHexTrimmed)
	if err != nil {
		return errors.Wrap(err, "private key failed to decode")
	}
	privKey, err := crypto.ToECDSA(keyBytes)
	if err != nil {
		return errors.Wrap(err, "private key failed to convert to ECDSA")
	}

	e.Wallets[walletID] = Wallet{
		id:         walletID,
		address:    crypto.PubkeyToAddress(privKey.PublicKey),
		privateKey: privKey,
		chain:      e,
	}

	return nil
}

// GetWallet implements network.Chain.
func (e *Ethereum) GetWallet(walletID string) (network.Wallet, error) {
	wallet, ok := e.Wallets[walletID]
	if !ok {
		return nil, errors.Errorf("wallet not found: %s", walletID)
	}
	return &wallet, nil
}

// GenerateWallet implements network.Chain.
func (e *Ethereum) GenerateWallet(walletID string) (network.Wallet, error) {
	privKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate Ethereum private key")
	}

	wallet := Wallet{
		id:         walletID,
		address:    crypto.PubkeyToAddress(privKey.PublicKey),
		privateKey: privKey,
		chain:      e,
	}
	e.Wallets[walletID] = wallet

	return &wallet, nil
}

// GetWallets implements network.Chain.
func (e *Ethereum) GetWallets() []network.Wallet {
	wallets := make([]network.Wallet, 0, len(e.Wallets))
	for _, wallet := range e.Wallets {
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
	return w.address.String()
}

// ChainID implements network.Wallet.
func (w *Wallet) ChainID() string {
	return w.chain.ChainID
}

// PrivateKeyHex implements network.Wallet.
func (w *Wallet) PrivateKeyHex() string {
	return hex.EncodeToString(crypto.FromECDSA(w.privateKey))
}

// SendTransaction implements network.Wallet.
func (w *Wallet) SendTransaction(ctx context.Context, tx network.Tx) (string, error) {
	ethTx, ok := tx.(*Tx)
	if !ok {
		return "", errors.Errorf("invalid tx type for ethereum wallet: %T", tx)
	}
	if ethTx.Chain != w.chain.ChainID {
		return "", errors.Errorf("tx for chain %s cannot be sent on chain %s", ethTx.Chain, w.chain.ChainID)
	}

	receipt, err := w.chain.Transact(ctx, w, ethTx)
	if err != nil {
		return "", errors.Wrapf(err, "failed to send %s", ethTx.Desc)
	}

	w.chain.logger.Info("Sent transaction", zap.String("tx_hash", receipt.TxHash.String()), zap.String("from", w.Address()), zap.String("to", ethTx.To.String()), zap.String("description", ethTx.Desc))

	return receipt.TxHash.String(), nil
}

// EstimateFees implements network.Wallet.
func (w *Wallet) EstimateFees(ctx context.Context) (network.FeeData, error) {
	ethClient, err := ethclient.Dial(w.chain.ethRPC)
	if err != nil {
		return network.FeeData{}, errors.Wrap(err, "failed to dial ethereum client")
	}
	defer ethClient.Close()

	gasPrice, err := ethClient.SuggestGasPrice(ctx)
	if err != nil {
		return network.FeeData{}, errors.Wrap(err, "failed to get suggested gas price")
	}

	tipCap, err := ethClient.SuggestGasTipCap(ctx)
	if err != nil {
		return network.FeeData{}, errors.Wrap(err, "failed to get suggested gas tip cap")
	}

	return network.FeeData{
		GasPrice:  decimal.NewFromBigInt(gasPrice, 0),
		GasTipCap: decimal.NewFromBigInt(tipCap, 0),
		Denom:     "wei",
	}, nil
}
