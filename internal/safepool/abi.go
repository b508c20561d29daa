package safepool

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ABI fragment of the SafeTxPool contract at commit
// 3658aca34ee38cba8e5bb9ed90927c270df8584d. Only the read-only query surface
// is bound.
const poolABIJSON = `[
  {"type":"function","name":"getTxDetails","stateMutability":"view",
   "inputs":[{"name":"txHash","type":"bytes32"}],
   "outputs":[
     {"name":"safe","type":"address"},
     {"name":"to","type":"address"},
     {"name":"value","type":"uint256"},
     {"name":"data","type":"bytes"},
     {"name":"operation","type":"uint8"},
     {"name":"proposer","type":"address"},
     {"name":"nonce","type":"uint256"}]},
  {"type":"function","name":"getSignatures","stateMutability":"view",
   "inputs":[{"name":"txHash","type":"bytes32"}],
   "outputs":[{"name":"","type":"bytes[]"}]},
  {"type":"function","name":"getPendingTxHashes","stateMutability":"view",
   "inputs":[{"name":"safe","type":"address"}],
   "outputs":[{"name":"","type":"bytes32[]"}]},
  {"type":"function","name":"hasSignedTx","stateMutability":"view",
   "inputs":[{"name":"txHash","type":"bytes32"},{"name":"signer","type":"address"}],
   "outputs":[{"name":"","type":"bool"}]}
]`

var poolABI abi.ABI

func init() {
	parsed, err := abi.JSON(strings.NewReader(poolABIJSON))
	if err != nil {
		panic("safepool: invalid embedded ABI: " + err.Error())
	}
	poolABI = parsed
}
