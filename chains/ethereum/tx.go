package ethereum

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gjermundgaraba/libbridge/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// gasLimitBuffer is applied on top of the node's gas estimate, in percent.
const gasLimitBuffer = 20

// Transact signs tx with the wallet key, broadcasts it and waits for a successful receipt.
func (e *Ethereum) Transact(ctx context.Context, wallet *Wallet, tx *Tx) (*ethtypes.Receipt, error) {
	ethClient, err := ethclient.Dial(e.ethRPC)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial ethereum client")
	}
	defer ethClient.Close()

	txOpts, err := GetTransactOpts(ctx, ethClient, e.actualChainID, wallet.privateKey, e.extraGwei)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transact opts")
	}

	value := tx.Value
	if value == nil {
		value = new(big.Int)
	}

	gasLimit := tx.GasLimit
	if gasLimit == 0 {
		estimated, err := ethClient.EstimateGas(ctx, ethereum.CallMsg{
			From:  txOpts.From,
			To:    &tx.To,
			Value: value,
			Data:  tx.Data,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to estimate gas")
		}
		gasLimit = estimated * (100 + gasLimitBuffer) / 100
	}

	unsignedTx := ethtypes.NewTransaction(
		txOpts.Nonce.Uint64(),
		tx.To,
		value,
		gasLimit,
		txOpts.GasPrice,
		tx.Data,
	)

	signedTx, err := txOpts.Signer(txOpts.From, unsignedTx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign tx")
	}

	if err := ethClient.SendTransaction(ctx, signedTx); err != nil {
		return nil, errors.Wrap(err, "failed to submit tx")
	}

	e.logger.Debug("Submitted tx, waiting for receipt", zap.String("tx_hash", signedTx.Hash().String()), zap.String("description", tx.Desc))

	receipt, err := WaitForReceipt(ctx, ethClient, signedTx.Hash())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get receipt")
	}

	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		return nil, errors.Errorf("tx %s reverted", receipt.TxHash.String())
	}

	return receipt, nil
}

func GetTransactOpts(ctx context.Context, ethClient *ethclient.Client, chainID *big.Int, key *ecdsa.PrivateKey, extraGwei int64) (*bind.TransactOpts, error) {
	fromAddress := crypto.PubkeyToAddress(key.PublicKey)

	txOpts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create transactor")
	}

	suggestedGasPrice, err := ethClient.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get suggested gas price")
	}

	txOpts.GasPrice = new(big.Int).Add(suggestedGasPrice, big.NewInt(extraGwei*1000000000))

	nonce, err := ethClient.PendingNonceAt(ctx, fromAddress)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pending nonce")
	}
	txOpts.Nonce = new(big.Int).SetUint64(nonce)
	txOpts.Context = ctx

	return txOpts, nil
}

func WaitForReceipt(ctx context.Context, ethClient *ethclient.Client, hash ethcommon.Hash) (*ethtypes.Receipt, error) {
	var receipt *ethtypes.Receipt
	if err := utils.WaitForCondition(ctx, time.Second*120, time.Second, func() (bool, error) {
		var err error
		receipt, err = ethClient.TransactionReceipt(ctx, hash)
		if err != nil {
			return false, nil
		}

		return receipt != nil, nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to wait for transaction receipt")
	}

	return receipt, nil
}
