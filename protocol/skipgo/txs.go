package skipgo

import (
	"fmt"
	"math/big"

	skipapi "github.com/gjermundgaraba/libbridge/apis/skip-api"
	"github.com/gjermundgaraba/libbridge/chains/cosmos"
	"github.com/gjermundgaraba/libbridge/chains/ethereum"
	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/gjermundgaraba/libbridge/chains/solana"
	"github.com/gjermundgaraba/libbridge/route"
	"github.com/pkg/errors"
)

// convertTxs turns the msgs response into unsigned transactions for the source chain, approvals first.
func convertTxs(apiTxs []skipapi.Tx, sourceChainID string, kind route.RouteKind) ([]network.Tx, error) {
	if len(apiTxs) == 0 {
		return nil, errors.New("no transactions returned for route")
	}

	desc := fmt.Sprintf("%s transfer", kind)

	var txs []network.Tx
	for i, apiTx := range apiTxs {
		switch {
		case apiTx.EvmTx != nil:
			evmTx := apiTx.EvmTx
			for _, approval := range evmTx.RequiredErc20Approvals {
				amount, ok := new(big.Int).SetString(approval.Amount, 10)
				if !ok {
					return nil, errors.Errorf("invalid approval amount: %q", approval.Amount)
				}
				tx, err := ethereum.NewApprovalTx(evmTx.ChainID, approval.TokenContract, approval.Spender, amount)
				if err != nil {
					return nil, errors.Wrapf(err, "failed to build approval for tx %d", i)
				}
				txs = append(txs, tx)
			}

			tx, err := ethereum.NewTx(evmTx.ChainID, evmTx.To, evmTx.Value, evmTx.Data, desc)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to build evm tx %d", i)
			}
			txs = append(txs, tx)
		case apiTx.CosmosTx != nil:
			msgs := make([]cosmos.RawMsg, len(apiTx.CosmosTx.Msgs))
			for j, msg := range apiTx.CosmosTx.Msgs {
				msgs[j] = cosmos.RawMsg{TypeURL: msg.MsgTypeURL, JSON: msg.Msg}
			}
			tx, err := cosmos.NewTx(apiTx.CosmosTx.ChainID, msgs, desc)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to build cosmos tx %d", i)
			}
			txs = append(txs, tx)
		case apiTx.SvmTx != nil:
			tx, err := solana.NewTx(apiTx.SvmTx.ChainID, apiTx.SvmTx.Tx, desc)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to build svm tx %d", i)
			}
			txs = append(txs, tx)
		default:
			return nil, errors.Errorf("unsupported transaction type at index %d", i)
		}
	}

	for _, tx := range txs {
		if tx.ChainID() != sourceChainID {
			return nil, errors.Errorf("route requires a transaction on chain %s, only the source chain %s can be signed", tx.ChainID(), sourceChainID)
		}
	}

	return txs, nil
}
