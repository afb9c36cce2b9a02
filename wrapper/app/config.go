package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/env"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
)

const (
	// EnvCfgHost is the EnvConfig key to store the host the API is served on.
	EnvCfgHost env.ConfigKey = "host"
	// EnvCfgPort is the EnvConfig key to store the port to listen on.
	EnvCfgPort env.ConfigKey = "port"
)

// DefaultPort is the default port to listen on per environment.
var DefaultPort = map[env.Environment]int{
	env.QA:         2408,
	env.Production: 2407,
}

// GetHost retrieves the configured host from the context env.
func GetHost(
	ctx context.Context,
) string {
	return env.Get(ctx).Config[EnvCfgHost]
}

// GetPort retrieves the configured port from the context env.
func GetPort(
	ctx context.Context,
) string {
	return env.Get(ctx).Config[EnvCfgPort]
}

// Log is the logger configuration.
type Log struct {
	Level  string
	Path   string
	Pretty bool
}

// Config is the configuration of a wrapper node.
type Config struct {
	Env  string
	DSN  string
	Host string
	Port string

	// Contract is the account the wrapped token is deployed at.
	Contract string
	// NativeLedger is the account of the native token contract.
	NativeLedger string
	// NativeSymbol is the native currency symbol, `4,EOS`.
	NativeSymbol string
	// Market is the account of the system contract running the resource
	// markets.
	Market string
	// MaxSupply initializes the wrapped token when set and the contract is
	// not initialized yet.
	MaxSupply string

	// TLS serves the API over TLS, with a self signed certificate in QA and
	// TLSCert and TLSKey in production.
	TLS     bool
	TLSCert string
	TLSKey  string

	Log Log
}

// SetupFlags registers the configuration flags on cmd.
func SetupFlags(
	cfg *Config,
	cmd *cobra.Command,
) {
	cmd.PersistentFlags().StringVar(&cfg.Env, "env", "qa", "environment to run in (qa, production)")
	cmd.PersistentFlags().StringVar(&cfg.DSN, "db_dsn", "", "DSN of the database (default is sqlite3://~/.vaulta/wrapper-$env.db)")
	cmd.PersistentFlags().StringVar(&cfg.Host, "host", "127.0.0.1", "host the API is served on")
	cmd.PersistentFlags().StringVar(&cfg.Port, "port", "", "port to listen on (default is 2408 in qa, 2407 in production)")

	cmd.PersistentFlags().StringVar(&cfg.Contract, "contract", "core.vaulta", "account the wrapped token is deployed at")
	cmd.PersistentFlags().StringVar(&cfg.NativeLedger, "native_ledger", "eosio.token", "account of the native token contract")
	cmd.PersistentFlags().StringVar(&cfg.NativeSymbol, "native_symbol", "4,EOS", "symbol of the native currency")
	cmd.PersistentFlags().StringVar(&cfg.Market, "market", "eosio", "account of the system contract")
	cmd.PersistentFlags().StringVar(&cfg.MaxSupply, "max_supply", "", "maximum supply of the wrapped token, e.g. `2100000000.0000 XYZ`")

	cmd.PersistentFlags().BoolVar(&cfg.TLS, "tls", false, "serve the API over TLS")
	cmd.PersistentFlags().StringVar(&cfg.TLSCert, "tls_cert", "", "certificate file (production only)")
	cmd.PersistentFlags().StringVar(&cfg.TLSKey, "tls_key", "", "key file (production only)")

	cmd.PersistentFlags().StringVar(&cfg.Log.Level, "log.level", "info", "log level")
	cmd.PersistentFlags().BoolVar(&cfg.Log.Pretty, "log.pretty", false, "pretty logs")
	cmd.PersistentFlags().StringVar(&cfg.Log.Path, "log.path", "", "log path (default is stdout only)")
}

// Validate checks the account names and assets of the configuration.
func (cfg *Config) Validate() error {
	for _, n := range []string{cfg.Contract, cfg.NativeLedger, cfg.Market} {
		if _, err := chain.NewName(n); err != nil {
			return errors.Trace(err)
		}
	}
	if _, err := chain.ParseSymbol(cfg.NativeSymbol); err != nil {
		return errors.Trace(err)
	}
	if cfg.MaxSupply != "" {
		if _, err := chain.ParseAsset(cfg.MaxSupply); err != nil {
			return errors.Trace(err)
		}
	}
	if cfg.Contract == cfg.NativeLedger || cfg.Contract == cfg.Market {
		return errors.Trace(errors.Newf(
			"The contract account must differ from the native ledger and "+
				"market accounts: %s", cfg.Contract))
	}
	if cfg.Port != "" {
		var p int
		if _, err := fmt.Sscanf(cfg.Port, "%d", &p); err != nil || p <= 0 {
			return errors.Trace(errors.Newf("Invalid port: %s", cfg.Port))
		}
	}
	return nil
}
