package cosmos

import (
	"context"
	"fmt"
	"strings"
	"time"

	sdkmath "cosmossdk.io/math"
	cmttypes "github.com/cometbft/cometbft/types"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	xauthsigning "github.com/cosmos/cosmos-sdk/x/auth/signing"
	authtx "github.com/cosmos/cosmos-sdk/x/auth/tx"
	accounttypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/gjermundgaraba/libbridge/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// gasAdjustment is applied to simulated gas usage.
	gasAdjustment = 1.4
	// fallbackGasLimit is used when simulation is not available.
	fallbackGasLimit = 500_000

	inclusionTimeout = 60 * time.Second
)

var _ network.Tx = &Tx{}

// RawMsg is a JSON encoded message as returned by routing APIs.
type RawMsg struct {
	TypeURL string
	JSON    string
}

// Tx is an unsigned cosmos transaction. Messages stay JSON encoded until the chain codec decodes them at submission.
type Tx struct {
	Chain string
	Msgs  []RawMsg
	Memo  string
	Desc  string
}

func NewTx(chainID string, msgs []RawMsg, description string) (*Tx, error) {
	if len(msgs) == 0 {
		return nil, errors.New("no messages in tx")
	}
	for _, msg := range msgs {
		if msg.TypeURL == "" {
			return nil, errors.New("message without type url")
		}
	}

	if description == "" {
		urls := make([]string, len(msgs))
		for i, msg := range msgs {
			urls[i] = msg.TypeURL
		}
		description = strings.Join(urls, ", ")
	}

	return &Tx{
		Chain: chainID,
		Msgs:  msgs,
		Desc:  description,
	}, nil
}

// ChainID implements network.Tx.
func (t *Tx) ChainID() string {
	return t.Chain
}

// Description implements network.Tx.
func (t *Tx) Description() string {
	return t.Desc
}

func (c *Cosmos) decodeMsgs(rawMsgs []RawMsg) ([]sdk.Msg, error) {
	msgs := make([]sdk.Msg, 0, len(rawMsgs))
	for _, raw := range rawMsgs {
		msg, err := DecodeMsg(c.codec, raw.TypeURL, raw.JSON)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

// submitTx signs msgs with the wallet key, broadcasts them in sync mode and returns the tx hash.
func (c *Cosmos) submitTx(ctx context.Context, wallet *Wallet, memo string, msgs ...sdk.Msg) (string, error) {
	grpcConn, err := utils.GetGRPC(c.grpcAddr)
	if err != nil {
		return "", errors.Wrap(err, "failed to get grpc connection")
	}

	address := wallet.Address()
	accountClient := accounttypes.NewQueryClient(grpcConn)
	accountRes, err := accountClient.AccountInfo(ctx, &accounttypes.QueryAccountInfoRequest{Address: address})
	if err != nil {
		return "", errors.Wrap(err, "failed to get account info")
	}

	txCfg := authtx.NewTxConfig(c.codec, authtx.DefaultSignModes)
	signMode := signing.SignMode(txCfg.SignModeHandler().DefaultMode())
	txBuilder := txCfg.NewTxBuilder()
	if err := txBuilder.SetMsgs(msgs...); err != nil {
		return "", errors.Wrap(err, "failed to set msgs")
	}
	txBuilder.SetMemo(memo)

	sigV2 := signing.SignatureV2{
		PubKey: wallet.privateKey.PubKey(),
		Data: &signing.SingleSignatureData{
			SignMode:  signMode,
			Signature: nil,
		},
		Sequence: accountRes.Info.Sequence,
	}
	if err := txBuilder.SetSignatures(sigV2); err != nil {
		return "", errors.Wrap(err, "failed to set initial signature")
	}

	txClient := txtypes.NewServiceClient(grpcConn)
	gasLimit := c.estimateGas(ctx, txClient, txCfg, txBuilder)
	txBuilder.SetGasLimit(gasLimit)
	txBuilder.SetFeeAmount(sdk.NewCoins(sdk.NewCoin(c.GasDenom, c.feeFor(gasLimit))))

	signerData := xauthsigning.SignerData{
		Address:       address,
		ChainID:       c.ChainID,
		AccountNumber: accountRes.Info.AccountNumber,
		Sequence:      accountRes.Info.Sequence,
		PubKey:        wallet.privateKey.PubKey(),
	}
	sigV2, err = tx.SignWithPrivKey(
		ctx,
		signMode,
		signerData,
		txBuilder,
		wallet.privateKey,
		txCfg,
		accountRes.Info.Sequence,
	)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign with private key")
	}
	if err := txBuilder.SetSignatures(sigV2); err != nil {
		return "", errors.Wrap(err, "failed to set final signature")
	}

	txBytes, err := txCfg.TxEncoder()(txBuilder.GetTx())
	if err != nil {
		return "", errors.Wrap(err, "failed to encode transaction")
	}
	expectedHash := fmt.Sprintf("%X", cmttypes.Tx(txBytes).Hash())

	grpcRes, err := txClient.BroadcastTx(
		ctx,
		&txtypes.BroadcastTxRequest{
			Mode:    txtypes.BroadcastMode_BROADCAST_MODE_SYNC,
			TxBytes: txBytes,
		},
	)
	if err != nil {
		return "", errors.Wrap(err, "failed to broadcast transaction")
	}
	if grpcRes.TxResponse.Code != 0 {
		return "", errors.Errorf("transaction failed with code %d: %s", grpcRes.TxResponse.Code, grpcRes.TxResponse.RawLog)
	}
	if !strings.EqualFold(grpcRes.TxResponse.TxHash, expectedHash) {
		c.logger.Warn("Broadcast returned unexpected tx hash", zap.String("expected", expectedHash), zap.String("got", grpcRes.TxResponse.TxHash))
	}

	return grpcRes.TxResponse.TxHash, nil
}

func (c *Cosmos) estimateGas(ctx context.Context, txClient txtypes.ServiceClient, txCfg client.TxConfig, txBuilder client.TxBuilder) uint64 {
	simBytes, err := txCfg.TxEncoder()(txBuilder.GetTx())
	if err != nil {
		c.logger.Debug("Could not encode tx for simulation, using fallback gas", zap.Error(err))
		return fallbackGasLimit
	}

	simRes, err := txClient.Simulate(ctx, &txtypes.SimulateRequest{TxBytes: simBytes})
	if err != nil || simRes.GasInfo == nil {
		c.logger.Debug("Simulation failed, using fallback gas", zap.Error(err))
		return fallbackGasLimit
	}

	return uint64(float64(simRes.GasInfo.GasUsed) * gasAdjustment)
}

func (c *Cosmos) feeFor(gasLimit uint64) sdkmath.Int {
	return c.gasPrice.MulInt64(int64(gasLimit)).Ceil().TruncateInt()
}

// waitForTx polls until the tx is included in a block and returns its events.
func (c *Cosmos) waitForTx(ctx context.Context, txHash string) (*txtypes.GetTxResponse, error) {
	var included *txtypes.GetTxResponse
	err := utils.WaitForCondition(ctx, inclusionTimeout, time.Second, func() (bool, error) {
		resp, err := c.QueryTx(ctx, txHash)
		if err != nil {
			// not found until it is in a block
			return false, nil
		}
		included = resp
		return true, nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "transaction %s was not included", txHash)
	}

	if included.TxResponse.Code != 0 {
		return nil, errors.Errorf("transaction %s failed with code %d: %s", txHash, included.TxResponse.Code, included.TxResponse.RawLog)
	}

	return included, nil
}
