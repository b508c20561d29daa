package cmd

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hadv/vito-cli/internal/chains"
	"github.com/hadv/vito-cli/internal/config"
	"github.com/hadv/vito-cli/internal/logging"
	"github.com/hadv/vito-cli/internal/safepool"
)

var txCmd = &cobra.Command{
	Use:   "tx <safe-address>",
	Short: "Inspect pending transactions in a Safe transaction pool",
	Long: `Queries the SafeTxPool contract for transactions proposed to a Safe wallet.
Without --hash, lists all pending transactions sorted by nonce; with --hash,
fetches a single transaction. Output is pretty-printed JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runTx,
}

var (
	txRPC  string
	txHash string
	txPool string
)

func init() {
	txCmd.Flags().StringVar(&txRPC, "rpc", "", "Ethereum JSON-RPC endpoint (default: built-in mainnet RPC)")
	txCmd.Flags().StringVar(&txHash, "hash", "", "Fetch a single transaction by hash")
	txCmd.Flags().StringVar(&txPool, "tx-pool", "", "Custom Safe transaction pool contract address")
	rootCmd.AddCommand(txCmd)
}

func runTx(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logging.New(verbose)
	defer log.Sync()

	safe, err := parseAddress(args[0])
	if err != nil {
		return fmt.Errorf("invalid Safe wallet address format: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	rpcURL := txRPC
	if rpcURL == "" {
		rpcURL = cfg.RPC
	}
	if rpcURL == "" {
		fmt.Println("No RPC URL provided, using default Ethereum mainnet RPC")
		rpcURL = chains.DefaultMainnetRPC
	}

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return fmt.Errorf("connecting to RPC provider: %w", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("getting chain ID from network: %w", err)
	}
	network := chainID.Uint64()
	networkName := chains.Name(network)
	fmt.Printf("Connected to %s (Chain ID: %d)\n", networkName, network)
	log.Debug("connected", zap.String("rpc", rpcURL), zap.Uint64("chain_id", network))
	if !chains.Known(network) {
		log.Warn("unrecognized chain id, pool address falls back to the mainnet deployment",
			zap.Uint64("chain_id", network))
	}

	code, err := client.CodeAt(ctx, safe, nil)
	if err != nil {
		return fmt.Errorf("querying the network: %w", err)
	}
	if len(code) == 0 {
		return fmt.Errorf("Safe wallet address not found on %s", networkName)
	}

	poolAddr, err := resolvePoolAddress(cfg, network, networkName)
	if err != nil {
		return err
	}

	poolCode, err := client.CodeAt(ctx, poolAddr, nil)
	if err != nil {
		return fmt.Errorf("querying the network for transaction pool contract: %w", err)
	}
	if len(poolCode) == 0 {
		return fmt.Errorf("transaction pool contract not found at %s; verify the contract address for %s is correct",
			hexAddr(poolAddr), networkName)
	}

	pool := safepool.New(poolAddr, client, log)

	if txHash != "" {
		hash, err := parseHash(txHash)
		if err != nil {
			return fmt.Errorf("invalid transaction hash format: %w", err)
		}
		fmt.Printf("Fetching transaction with hash %s for Safe %s\n", txHash, args[0])
		tx, err := pool.Transaction(ctx, hash)
		if err != nil {
			return err
		}
		return printJSON(tx)
	}

	fmt.Printf("Fetching all pending transactions for Safe %s\n", args[0])
	hashes, err := pool.PendingTxHashes(ctx, safe)
	if err != nil {
		return err
	}
	if len(hashes) == 0 {
		fmt.Printf("No pending transactions found for Safe %s\n", args[0])
		os.Exit(2)
	}
	fmt.Printf("Found %d pending transactions\n", len(hashes))

	txs := pool.Transactions(ctx, hashes)
	return printJSON(txs)
}

// resolvePoolAddress picks the pool contract address: the --tx-pool flag wins,
// then a config override for the chain, then the built-in registry.
func resolvePoolAddress(cfg *config.Config, chainID uint64, networkName string) (common.Address, error) {
	if txPool != "" {
		fmt.Printf("Using custom Safe transaction pool address: %s\n", txPool)
		addr, err := parseAddress(txPool)
		if err != nil {
			return common.Address{}, fmt.Errorf("invalid custom Safe transaction pool address: %w", err)
		}
		return addr, nil
	}
	if override, ok := cfg.PoolAddress(chainID); ok {
		fmt.Printf("Using configured Safe transaction pool at %s for %s\n", hexAddr(override), networkName)
		return override, nil
	}
	addr := chains.PoolAddress(chainID)
	fmt.Printf("Using Safe transaction pool at %s for %s\n", hexAddr(addr), networkName)
	return addr, nil
}
