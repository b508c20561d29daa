package chains

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestName(t *testing.T) {
	tests := []struct {
		chainID uint64
		want    string
	}{
		{Mainnet, "Ethereum Mainnet"},
		{Goerli, "Goerli Testnet"},
		{Sepolia, "Sepolia Testnet"},
		{Polygon, "Polygon"},
		{Arbitrum, "Arbitrum"},
		{Optimism, "Optimism"},
		{Base, "Base"},
		{Gnosis, "Gnosis Chain"},
		{424242, "Unknown Network"},
		{0, "Unknown Network"},
	}
	for _, tt := range tests {
		if got := Name(tt.chainID); got != tt.want {
			t.Errorf("Name(%d) = %q, want %q", tt.chainID, got, tt.want)
		}
	}
}

func TestPoolAddress(t *testing.T) {
	want := common.HexToAddress("0xA3B9Ff95a78e04845a82ee5F75595E7bDaB8723D")
	if got := PoolAddress(Polygon); got != want {
		t.Errorf("PoolAddress(Polygon) = %s, want %s", got, want)
	}
	if PoolAddress(424242) != DefaultPoolAddress {
		t.Error("unknown chain should fall back to the mainnet pool address")
	}
	if PoolAddress(Mainnet) != DefaultPoolAddress {
		t.Error("mainnet pool should equal the fallback address")
	}
}

func TestKnown(t *testing.T) {
	if !Known(Gnosis) {
		t.Error("Known(Gnosis) = false")
	}
	if Known(424242) {
		t.Error("Known(424242) = true")
	}
}

func TestAllSortedAndComplete(t *testing.T) {
	ids := All()
	if len(ids) != 8 {
		t.Fatalf("All() returned %d chains, want 8", len(ids))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("All() not ascending: %d before %d", ids[i-1], ids[i])
		}
	}
	if ids[0] != Mainnet {
		t.Errorf("All()[0] = %d, want mainnet", ids[0])
	}
}
