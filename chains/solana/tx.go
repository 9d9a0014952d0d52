package solana

import (
	"encoding/base64"
	"time"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/pkg/errors"
)

const confirmationTimeout = 90 * time.Second

var _ network.Tx = &Tx{}

// Tx is a serialized solana transaction built by a routing API. It carries its own recent blockhash,
// so it has to be signed and sent before that blockhash expires.
type Tx struct {
	Chain string
	Raw   []byte
	Desc  string
}

// NewTx decodes a base64 encoded transaction and checks that it parses.
func NewTx(chainID string, encoded string, description string) (*Tx, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base64 transaction")
	}
	if _, err := decodeTransaction(raw); err != nil {
		return nil, err
	}

	return &Tx{
		Chain: chainID,
		Raw:   raw,
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

func decodeTransaction(raw []byte) (*solana.Transaction, error) {
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode solana transaction")
	}
	return tx, nil
}
