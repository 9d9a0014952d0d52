package ethereum

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/pkg/errors"
)

const erc20ABIJSON = `[
	{"constant":false,"inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"name":"approve","outputs":[{"name":"","type":"bool"}],"type":"function"},
	{"constant":true,"inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"name":"allowance","outputs":[{"name":"","type":"uint256"}],"type":"function"},
	{"constant":true,"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"type":"function"}
]`

var erc20ABI = mustParseABI(erc20ABIJSON)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("invalid erc20 abi: %v", err))
	}
	return parsed
}

var _ network.Tx = &Tx{}

// Tx is an unsigned EVM call. Nonce and gas price are filled in by the wallet at submission.
type Tx struct {
	Chain    string
	To       ethcommon.Address
	Value    *big.Int
	Data     []byte
	GasLimit uint64
	Desc     string
}

// ChainID implements network.Tx.
func (tx *Tx) ChainID() string {
	return tx.Chain
}

// Description implements network.Tx.
func (tx *Tx) Description() string {
	return tx.Desc
}

// NewTx builds a transaction from the string encoded fields returned by routing APIs.
func NewTx(chainID string, to string, value string, data string, description string) (*Tx, error) {
	if !ethcommon.IsHexAddress(to) {
		return nil, errors.Errorf("invalid to address: %q", to)
	}

	amount := new(big.Int)
	if value != "" {
		if _, ok := amount.SetString(value, 0); !ok {
			return nil, errors.Errorf("invalid tx value: %q", value)
		}
	}

	var calldata []byte
	if data != "" {
		if !strings.HasPrefix(data, "0x") {
			data = "0x" + data
		}
		var err error
		calldata, err = hexutil.Decode(data)
		if err != nil {
			return nil, errors.Wrap(err, "invalid tx data")
		}
	}

	return &Tx{
		Chain: chainID,
		To:    ethcommon.HexToAddress(to),
		Value: amount,
		Data:  calldata,
		Desc:  description,
	}, nil
}

// NewApprovalTx builds the ERC-20 approve call that must be mined before the spender can pull amount.
func NewApprovalTx(chainID string, tokenContract string, spender string, amount *big.Int) (*Tx, error) {
	if !ethcommon.IsHexAddress(tokenContract) {
		return nil, errors.Errorf("invalid token contract: %q", tokenContract)
	}
	if !ethcommon.IsHexAddress(spender) {
		return nil, errors.Errorf("invalid spender: %q", spender)
	}

	calldata, err := erc20ABI.Pack("approve", ethcommon.HexToAddress(spender), amount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack approve call")
	}

	return &Tx{
		Chain: chainID,
		To:    ethcommon.HexToAddress(tokenContract),
		Value: new(big.Int),
		Data:  calldata,
		Desc:  fmt.Sprintf("approve %s for %s", amount.String(), spender),
	}, nil
}
