package cosmos

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ network.Wallet = &Wallet{}

type Wallet struct {
	id         string
	address    cryptotypes.Address
	privateKey *secp256k1.PrivKey
	chain      *Cosmos
}

// AddWallet implements network.Chain.
func (c *Cosmos) AddWallet(walletID string, privateKeyHex string) error {
	keyBytes, err := hex.DecodeString(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return errors.Wrap(err, "invalid key string")
	}
	if len(keyBytes) != secp256k1.PrivKeySize {
		return errors.Errorf("invalid key length %d", len(keyBytes))
	}
	privKey := &secp256k1.PrivKey{Key: keyBytes}

	c.Wallets[walletID] = Wallet{
		id:         walletID,
		address:    privKey.PubKey().Address(),
		privateKey: privKey,
		chain:      c,
	}

	return nil
}

// GetWallet implements network.Chain.
func (c *Cosmos) GetWallet(walletID string) (network.Wallet, error) {
	wallet, ok := c.Wallets[walletID]
	if !ok {
		return nil, errors.Errorf("wallet not found: %s", walletID)
	}
	return &wallet, nil
}

// GenerateWallet implements network.Chain.
func (c *Cosmos) GenerateWallet(walletID string) (network.Wallet, error) {
	privKey := secp256k1.GenPrivKey()

	wallet := Wallet{
		id:         walletID,
		address:    privKey.PubKey().Address(),
		privateKey: privKey,
		chain:      c,
	}
	c.Wallets[walletID] = wallet

	return &wallet, nil
}

// GetWallets implements network.Chain.
func (c *Cosmos) GetWallets() []network.Wallet {
	wallets := make([]network.Wallet, 0, len(c.Wallets))
	for _, wallet := range c.Wallets {
		wallets = append(wallets, &wallet)
	}
	return wallets
}

// Address implements network.Wallet.
func (w *Wallet) Address() string {
	address, err := bech32.ConvertAndEncode(w.chain.Bech32Prefix, w.address)
	if err != nil {
		panic(errors.Wrap(err, "failed to encode bech32 address"))
	}
	return address
}

// ID implements network.Wallet.
func (w *Wallet) ID() string {
	return w.id
}

// ChainID implements network.Wallet.
func (w *Wallet) ChainID() string {
	return w.chain.ChainID
}

// PrivateKeyHex implements network.Wallet.
func (w *Wallet) PrivateKeyHex() string {
	return hex.EncodeToString(w.privateKey.Key)
}

// SendTransaction implements network.Wallet.
// It returns once the transaction is included in a block.
func (w *Wallet) SendTransaction(ctx context.Context, tx network.Tx) (string, error) {
	cosmosTx, ok := tx.(*Tx)
	if !ok {
		return "", errors.Errorf("invalid tx type for cosmos wallet: %T", tx)
	}
	if cosmosTx.Chain != w.chain.ChainID {
		return "", errors.Errorf("tx for chain %s cannot be sent on chain %s", cosmosTx.Chain, w.chain.ChainID)
	}

	msgs, err := w.chain.decodeMsgs(cosmosTx.Msgs)
	if err != nil {
		return "", errors.Wrapf(err, "failed to decode %s", cosmosTx.Desc)
	}

	txHash, err := w.chain.submitTx(ctx, w, cosmosTx.Memo, msgs...)
	if err != nil {
		return "", errors.Wrapf(err, "failed to send %s", cosmosTx.Desc)
	}

	included, err := w.chain.waitForTx(ctx, txHash)
	if err != nil {
		return "", err
	}

	fields := []zap.Field{zap.String("tx_hash", txHash), zap.String("from", w.Address()), zap.String("description", cosmosTx.Desc)}
	if packets, err := ParseSentPackets(included.TxResponse.Events); err == nil && len(packets) > 0 {
		fields = append(fields, zap.String("source_channel", packets[0].SourceChannel), zap.Uint64("sequence", packets[0].Sequence))
	}
	w.chain.logger.Info("Sent transaction", fields...)

	return txHash, nil
}

// EstimateFees implements network.Wallet.
func (w *Wallet) EstimateFees(_ context.Context) (network.FeeData, error) {
	price, err := decimal.NewFromString(w.chain.gasPrice.String())
	if err != nil {
		return network.FeeData{}, errors.Wrap(err, "invalid gas price")
	}

	return network.FeeData{
		GasPrice: price,
		Denom:    w.chain.GasDenom,
	}, nil
}
