// Package safepool is a read-only client for the SafeTxPool contract, which
// holds proposed Gnosis Safe transactions until they collect enough
// signatures to execute.
package safepool

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// TxDetails is the raw getTxDetails tuple.
type TxDetails struct {
	Safe      common.Address
	To        common.Address
	Value     *big.Int
	Data      []byte
	Operation uint8
	Proposer  common.Address
	Nonce     *big.Int
}

// Client queries a SafeTxPool contract instance.
type Client struct {
	addr     common.Address
	contract *bind.BoundContract
	log      *zap.Logger
}

// New binds a client to the pool contract at addr. The caller is typically an
// *ethclient.Client; tests substitute a fake.
func New(addr common.Address, caller bind.ContractCaller, log *zap.Logger) *Client {
	return &Client{
		addr:     addr,
		contract: bind.NewBoundContract(addr, poolABI, caller, nil, nil),
		log:      log,
	}
}

func (c *Client) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	c.log.Debug("contract call", zap.Stringer("pool", c.addr), zap.String("method", method))
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// TxDetails fetches the stored details of a proposed transaction. A zero
// proposer address means the transaction does not exist in the pool.
func (c *Client) TxDetails(ctx context.Context, txHash common.Hash) (*TxDetails, error) {
	out, err := c.call(ctx, "getTxDetails", txHash)
	if err != nil {
		return nil, fmt.Errorf("fetching transaction details: %w", err)
	}
	return &TxDetails{
		Safe:      *abi.ConvertType(out[0], new(common.Address)).(*common.Address),
		To:        *abi.ConvertType(out[1], new(common.Address)).(*common.Address),
		Value:     *abi.ConvertType(out[2], new(*big.Int)).(**big.Int),
		Data:      *abi.ConvertType(out[3], new([]byte)).(*[]byte),
		Operation: *abi.ConvertType(out[4], new(uint8)).(*uint8),
		Proposer:  *abi.ConvertType(out[5], new(common.Address)).(*common.Address),
		Nonce:     *abi.ConvertType(out[6], new(*big.Int)).(**big.Int),
	}, nil
}

// Signatures fetches the signatures collected so far for a transaction.
func (c *Client) Signatures(ctx context.Context, txHash common.Hash) ([][]byte, error) {
	out, err := c.call(ctx, "getSignatures", txHash)
	if err != nil {
		return nil, fmt.Errorf("fetching transaction signatures: %w", err)
	}
	return *abi.ConvertType(out[0], new([][]byte)).(*[][]byte), nil
}

// PendingTxHashes fetches the hashes of all pending transactions for a Safe.
// The contract does not paginate.
func (c *Client) PendingTxHashes(ctx context.Context, safe common.Address) ([]common.Hash, error) {
	out, err := c.call(ctx, "getPendingTxHashes", safe)
	if err != nil {
		return nil, fmt.Errorf("fetching pending transaction hashes: %w", err)
	}
	raw := *abi.ConvertType(out[0], new([][32]byte)).(*[][32]byte)
	hashes := make([]common.Hash, len(raw))
	for i, h := range raw {
		hashes[i] = common.Hash(h)
	}
	return hashes, nil
}

// HasSigned reports whether signer has already signed the transaction.
func (c *Client) HasSigned(ctx context.Context, txHash common.Hash, signer common.Address) (bool, error) {
	out, err := c.call(ctx, "hasSignedTx", txHash, signer)
	if err != nil {
		return false, fmt.Errorf("checking signer status: %w", err)
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}
