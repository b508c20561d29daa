package cmd

import (
	"fmt"
	"os"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/hadv/vito-cli/internal/chains"
	"github.com/hadv/vito-cli/internal/config"
)

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List known networks and their Safe transaction pool addresses",
	RunE:  runNetworks,
}

var (
	networksMatch  string
	networksFormat string
)

func init() {
	networksCmd.Flags().StringVar(&networksMatch, "match", "", "Filter by network name (exact or glob)")
	networksCmd.Flags().StringVar(&networksFormat, "format", "text", "Output format: text or json")
	rootCmd.AddCommand(networksCmd)
}

type networkRow struct {
	ChainID    uint64 `json:"chain_id"`
	Name       string `json:"name"`
	TxPool     string `json:"tx_pool"`
	Overridden bool   `json:"overridden,omitempty"`
}

func runNetworks(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var matcher glob.Glob
	if networksMatch != "" {
		matcher, err = glob.Compile(networksMatch)
		if err != nil {
			return fmt.Errorf("invalid match pattern: %w", err)
		}
	}

	rows := networkRows(cfg, matcher)
	if len(rows) == 0 {
		fmt.Println("No matching networks found.")
		os.Exit(2)
	}

	if networksFormat == "json" {
		return printJSON(rows)
	}
	for _, r := range rows {
		fmt.Printf("%-10d %-18s %s", r.ChainID, r.Name, r.TxPool)
		if r.Overridden {
			fmt.Printf("  (from config)")
		}
		fmt.Println()
	}
	return nil
}

// networkRows builds the registry listing in ascending chain-id order,
// applying config overrides and the optional name filter.
func networkRows(cfg *config.Config, matcher glob.Glob) []networkRow {
	var rows []networkRow
	for _, id := range chains.All() {
		name := chains.Name(id)
		if matcher != nil && !matcher.Match(name) {
			continue
		}
		row := networkRow{ChainID: id, Name: name, TxPool: hexAddr(chains.PoolAddress(id))}
		if override, ok := cfg.PoolAddress(id); ok {
			row.TxPool = hexAddr(override)
			row.Overridden = true
		}
		rows = append(rows, row)
	}
	return rows
}
