package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// parseAddress validates and parses a 0x-prefixed hex address.
func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%q is not a valid hex address", s)
	}
	return common.HexToAddress(s), nil
}

// parseHash validates and parses a 32-byte 0x-prefixed transaction hash.
func parseHash(s string) (common.Hash, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return common.Hash{}, err
	}
	if len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("hash must be %d bytes, got %d", common.HashLength, len(b))
	}
	return common.BytesToHash(b), nil
}

// hexAddr renders an address as lowercase 0x-prefixed hex, matching the wire
// format used in the JSON output.
func hexAddr(a common.Address) string {
	return hexutil.Encode(a.Bytes())
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
