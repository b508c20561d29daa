package safepool

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

// ErrTxNotFound is returned when a queried transaction has no proposer on
// record, meaning it was never proposed or has already been executed.
var ErrTxNotFound = errors.New("transaction not found or has already been executed")

// Transaction is the user-facing JSON shape of a pooled transaction.
// Addresses and byte payloads are lowercase 0x-prefixed hex; value and nonce
// are decimal strings.
type Transaction struct {
	Hash       string   `json:"hash"`
	Safe       string   `json:"safe"`
	To         string   `json:"to"`
	Value      string   `json:"value"`
	Data       string   `json:"data"`
	Operation  uint8    `json:"operation"`
	Proposer   string   `json:"proposer"`
	Nonce      string   `json:"nonce"`
	Signatures []string `json:"signatures"`
}

// Transaction fetches a single pooled transaction with its signatures.
func (c *Client) Transaction(ctx context.Context, txHash common.Hash) (*Transaction, error) {
	det, err := c.TxDetails(ctx, txHash)
	if err != nil {
		return nil, err
	}
	if det.Proposer == (common.Address{}) {
		return nil, ErrTxNotFound
	}
	sigs, err := c.Signatures(ctx, txHash)
	if err != nil {
		return nil, err
	}
	return render(txHash, det, sigs), nil
}

// Transactions fetches details for each hash, skipping entries that fail with
// a warning, and returns the result sorted ascending by nonce.
func (c *Client) Transactions(ctx context.Context, hashes []common.Hash) []*Transaction {
	txs := make([]*Transaction, 0, len(hashes))
	for _, h := range hashes {
		det, err := c.TxDetails(ctx, h)
		if err != nil {
			c.log.Warn("failed to fetch transaction details",
				zap.Stringer("hash", h), zap.Error(err))
			continue
		}
		sigs, err := c.Signatures(ctx, h)
		if err != nil {
			c.log.Debug("no signatures available",
				zap.Stringer("hash", h), zap.Error(err))
			sigs = nil
		}
		txs = append(txs, render(h, det, sigs))
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return nonceValue(txs[i].Nonce) < nonceValue(txs[j].Nonce)
	})
	return txs
}

func render(txHash common.Hash, det *TxDetails, sigs [][]byte) *Transaction {
	sigStrings := make([]string, 0, len(sigs))
	for _, sig := range sigs {
		sigStrings = append(sigStrings, hexutil.Encode(sig))
	}
	return &Transaction{
		Hash:       txHash.Hex(),
		Safe:       hexutil.Encode(det.Safe.Bytes()),
		To:         hexutil.Encode(det.To.Bytes()),
		Value:      det.Value.String(),
		Data:       hexutil.Encode(det.Data),
		Operation:  det.Operation,
		Proposer:   hexutil.Encode(det.Proposer.Bytes()),
		Nonce:      det.Nonce.String(),
		Signatures: sigStrings,
	}
}

func nonceValue(s string) uint64 {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
