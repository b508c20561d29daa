// Package chains holds the built-in registry of supported EVM networks and
// their SafeTxPool contract addresses.
package chains

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// Chain IDs of the supported networks.
const (
	Mainnet  uint64 = 1
	Goerli   uint64 = 5
	Sepolia  uint64 = 11155111
	Polygon  uint64 = 137
	Arbitrum uint64 = 42161
	Optimism uint64 = 10
	Base     uint64 = 8453
	Gnosis   uint64 = 100
)

// DefaultMainnetRPC is used when the caller provides no RPC endpoint.
// The demo key is rate-limited; users should configure their own.
const DefaultMainnetRPC = "https://eth-mainnet.g.alchemy.com/v2/demo"

// DefaultPoolAddress is the fallback when a chain id is not in the registry.
var DefaultPoolAddress = common.HexToAddress("0x6b8e1f0D2c34A0AeaD9A25B6966f7C0CAD653E5c")

var poolAddresses = map[uint64]common.Address{
	Mainnet:  common.HexToAddress("0x6b8e1f0D2c34A0AeaD9A25B6966f7C0CAD653E5c"),
	Goerli:   common.HexToAddress("0x3A4fA54b8AaB5E2E2DBD0a41f41f629e4e71e2E7"),
	Sepolia:  common.HexToAddress("0xa2ad21dc93B362570D0159b9E3A2fE5D8ecA0424"),
	Polygon:  common.HexToAddress("0xA3B9Ff95a78e04845a82ee5F75595E7bDaB8723D"),
	Arbitrum: common.HexToAddress("0x7c4A2Db70E5f39BA5Db11B8A942f02A8D3B3aA1B"),
	Optimism: common.HexToAddress("0x6E4d941A6fAD76B3d26E0c5447B4f5A7EfcA8ab8"),
	Base:     common.HexToAddress("0x2d340e22C5A33c1Ea01DAC41E331b7FE4c033C3b"),
	Gnosis:   common.HexToAddress("0x8d0C7BC9c4c588534dC1BF96d3ee9A4bCcBf28C7"),
}

var names = map[uint64]string{
	Mainnet:  "Ethereum Mainnet",
	Goerli:   "Goerli Testnet",
	Sepolia:  "Sepolia Testnet",
	Polygon:  "Polygon",
	Arbitrum: "Arbitrum",
	Optimism: "Optimism",
	Base:     "Base",
	Gnosis:   "Gnosis Chain",
}

// Name returns the display name for a chain id.
func Name(chainID uint64) string {
	if n, ok := names[chainID]; ok {
		return n
	}
	return "Unknown Network"
}

// PoolAddress returns the SafeTxPool contract address for a chain id, falling
// back to the mainnet pool for unknown chains.
func PoolAddress(chainID uint64) common.Address {
	if a, ok := poolAddresses[chainID]; ok {
		return a
	}
	return DefaultPoolAddress
}

// Known reports whether a chain id is in the registry.
func Known(chainID uint64) bool {
	_, ok := names[chainID]
	return ok
}

// All returns the registered chain ids in ascending order.
func All() []uint64 {
	ids := make([]uint64, 0, len(names))
	for id := range names {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
