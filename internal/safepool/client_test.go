package safepool

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	testPool     = common.HexToAddress("0x6b8e1f0D2c34A0AeaD9A25B6966f7C0CAD653E5c")
	testSafe     = common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	testTo       = common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	testProposer = common.HexToAddress("0xcccccccccccccccccccccccccccccccccccccccc")
)

type rpcReply struct {
	out []byte
	err error
}

// fakeCaller satisfies bind.ContractCaller, replaying ABI-packed outputs per
// contract method in FIFO order.
type fakeCaller struct {
	t       *testing.T
	replies map[string][]rpcReply
	calls   []string
}

func (f *fakeCaller) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x01}, nil
}

func (f *fakeCaller) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	require.GreaterOrEqual(f.t, len(call.Data), 4, "call data missing method selector")
	method, err := poolABI.MethodById(call.Data[:4])
	require.NoError(f.t, err)
	f.calls = append(f.calls, method.Name)

	queue := f.replies[method.Name]
	require.NotEmpty(f.t, queue, "unexpected call to %s", method.Name)
	reply := queue[0]
	f.replies[method.Name] = queue[1:]
	return reply.out, reply.err
}

func newTestClient(t *testing.T, replies map[string][]rpcReply) (*Client, *fakeCaller) {
	t.Helper()
	caller := &fakeCaller{t: t, replies: replies}
	return New(testPool, caller, zap.NewNop()), caller
}

func packOutput(t *testing.T, method string, vals ...interface{}) []byte {
	t.Helper()
	out, err := poolABI.Methods[method].Outputs.Pack(vals...)
	require.NoError(t, err)
	return out
}

func packDetails(t *testing.T, value int64, data []byte, op uint8, proposer common.Address, nonce int64) []byte {
	t.Helper()
	return packOutput(t, "getTxDetails",
		testSafe, testTo, big.NewInt(value), data, op, proposer, big.NewInt(nonce))
}

func TestTxDetails(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef}
	client, _ := newTestClient(t, map[string][]rpcReply{
		"getTxDetails": {{out: packDetails(t, 1000, data, 1, testProposer, 42)}},
	})

	det, err := client.TxDetails(context.Background(), common.HexToHash("0x01"))
	require.NoError(t, err)
	require.Equal(t, testSafe, det.Safe)
	require.Equal(t, testTo, det.To)
	require.Equal(t, int64(1000), det.Value.Int64())
	require.Equal(t, data, det.Data)
	require.Equal(t, uint8(1), det.Operation)
	require.Equal(t, testProposer, det.Proposer)
	require.Equal(t, int64(42), det.Nonce.Int64())
}

func TestTransactionRendering(t *testing.T) {
	hash := common.HexToHash("0x1122")
	sig := []byte{0x01, 0x02, 0x03}
	client, _ := newTestClient(t, map[string][]rpcReply{
		"getTxDetails":  {{out: packDetails(t, 5, []byte{0xab}, 0, testProposer, 7)}},
		"getSignatures": {{out: packOutput(t, "getSignatures", [][]byte{sig})}},
	})

	tx, err := client.Transaction(context.Background(), hash)
	require.NoError(t, err)
	require.Equal(t, hash.Hex(), tx.Hash)
	require.Equal(t, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", tx.Safe)
	require.Equal(t, "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", tx.To)
	require.Equal(t, "5", tx.Value)
	require.Equal(t, "0xab", tx.Data)
	require.Equal(t, uint8(0), tx.Operation)
	require.Equal(t, "0xcccccccccccccccccccccccccccccccccccccccc", tx.Proposer)
	require.Equal(t, "7", tx.Nonce)
	require.Equal(t, []string{"0x010203"}, tx.Signatures)
}

func TestTransactionNotFound(t *testing.T) {
	client, _ := newTestClient(t, map[string][]rpcReply{
		"getTxDetails": {{out: packDetails(t, 0, nil, 0, common.Address{}, 0)}},
	})

	_, err := client.Transaction(context.Background(), common.HexToHash("0x01"))
	require.ErrorIs(t, err, ErrTxNotFound)
}

func TestPendingTxHashes(t *testing.T) {
	h1 := common.HexToHash("0x01")
	h2 := common.HexToHash("0x02")
	client, caller := newTestClient(t, map[string][]rpcReply{
		"getPendingTxHashes": {{out: packOutput(t, "getPendingTxHashes", [][32]byte{h1, h2})}},
	})

	hashes, err := client.PendingTxHashes(context.Background(), testSafe)
	require.NoError(t, err)
	require.Equal(t, []common.Hash{h1, h2}, hashes)
	require.Equal(t, []string{"getPendingTxHashes"}, caller.calls)
}

func TestPendingTxHashesEmpty(t *testing.T) {
	client, _ := newTestClient(t, map[string][]rpcReply{
		"getPendingTxHashes": {{out: packOutput(t, "getPendingTxHashes", [][32]byte{})}},
	})

	hashes, err := client.PendingTxHashes(context.Background(), testSafe)
	require.NoError(t, err)
	require.Empty(t, hashes)
}

func TestHasSigned(t *testing.T) {
	client, _ := newTestClient(t, map[string][]rpcReply{
		"hasSignedTx": {{out: packOutput(t, "hasSignedTx", true)}},
	})

	signed, err := client.HasSigned(context.Background(), common.HexToHash("0x01"), testProposer)
	require.NoError(t, err)
	require.True(t, signed)
}

func TestTransactionsSortsByNonce(t *testing.T) {
	h1 := common.HexToHash("0x01")
	h2 := common.HexToHash("0x02")
	client, _ := newTestClient(t, map[string][]rpcReply{
		"getTxDetails": {
			{out: packDetails(t, 1, nil, 0, testProposer, 9)},
			{out: packDetails(t, 2, nil, 0, testProposer, 3)},
		},
		"getSignatures": {
			{out: packOutput(t, "getSignatures", [][]byte{})},
			{out: packOutput(t, "getSignatures", [][]byte{})},
		},
	})

	txs := client.Transactions(context.Background(), []common.Hash{h1, h2})
	require.Len(t, txs, 2)
	require.Equal(t, "3", txs[0].Nonce)
	require.Equal(t, "9", txs[1].Nonce)
	require.Equal(t, h2.Hex(), txs[0].Hash)
}

func TestTransactionsSkipsFailures(t *testing.T) {
	h1 := common.HexToHash("0x01")
	h2 := common.HexToHash("0x02")
	client, _ := newTestClient(t, map[string][]rpcReply{
		"getTxDetails": {
			{err: errors.New("execution reverted")},
			{out: packDetails(t, 1, nil, 0, testProposer, 1)},
		},
		"getSignatures": {
			{out: packOutput(t, "getSignatures", [][]byte{})},
		},
	})

	txs := client.Transactions(context.Background(), []common.Hash{h1, h2})
	require.Len(t, txs, 1)
	require.Equal(t, h2.Hex(), txs[0].Hash)
}

func TestTransactionsToleratesSignatureFailure(t *testing.T) {
	h := common.HexToHash("0x01")
	client, _ := newTestClient(t, map[string][]rpcReply{
		"getTxDetails":  {{out: packDetails(t, 1, nil, 0, testProposer, 1)}},
		"getSignatures": {{err: errors.New("execution reverted")}},
	})

	txs := client.Transactions(context.Background(), []common.Hash{h})
	require.Len(t, txs, 1)
	require.Empty(t, txs[0].Signatures)
}
