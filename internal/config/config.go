// Package config loads the optional user configuration file. A missing file
// is not an error; everything in it is an override on top of the built-in
// defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// RPC overrides the default Ethereum JSON-RPC endpoint.
	RPC string `yaml:"rpc"`
	// Networks maps chain ids to per-network overrides.
	Networks map[uint64]Network `yaml:"networks"`
}

type Network struct {
	TxPool string `yaml:"tx_pool"`
}

// DefaultPath returns the config file location: $XDG_CONFIG_HOME/vito/config.yaml,
// falling back to ~/.config/vito/config.yaml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "vito", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".config", "vito", "config.yaml"), nil
}

// Load reads the config file from the default location.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads and validates a config file. A missing file yields an empty
// config.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for id, n := range c.Networks {
		if n.TxPool != "" && !common.IsHexAddress(n.TxPool) {
			return fmt.Errorf("config: invalid tx_pool address for chain %d: %q", id, n.TxPool)
		}
	}
	return nil
}

// PoolAddress returns the configured pool override for a chain, if any.
func (c *Config) PoolAddress(chainID uint64) (common.Address, bool) {
	n, ok := c.Networks[chainID]
	if !ok || n.TxPool == "" {
		return common.Address{}, false
	}
	return common.HexToAddress(n.TxPool), true
}
