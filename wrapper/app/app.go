package app

import (
	"context"
	"fmt"

	"goji.io"

	"github.com/VaultaFoundation/vaulta-system-contract/ledger"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/env"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/logging"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/recoverer"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/requestlogger"
	"github.com/VaultaFoundation/vaulta-system-contract/market/sim"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper/lib/authentication"

	// force initialization of schemas
	_ "github.com/VaultaFoundation/vaulta-system-contract/wrapper/model/schemas"
)

// BackgroundContextFromConfig initializes a background context fully loaded
// with everything that could be extracted from the configuration: env, DB
// (tables created) and contract.
func BackgroundContextFromConfig(
	cfg *Config,
) (context.Context, error) {
	ctx := context.Background()

	wrapperEnv := env.Env{
		Environment: env.Parse(cfg.Env),
		Config:      map[env.ConfigKey]string{},
	}
	wrapperEnv.Config[EnvCfgHost] = cfg.Host

	port := fmt.Sprintf("%d", DefaultPort[wrapperEnv.Environment])
	if cfg.Port != "" {
		port = cfg.Port
	}
	wrapperEnv.Config[EnvCfgPort] = port

	ctx = env.With(ctx, &wrapperEnv)

	wrapperDB, err := db.NewDBForDSN(ctx,
		cfg.DSN,
		fmt.Sprintf("sqlite3://~/.vaulta/wrapper-%s.db",
			env.Get(ctx).Environment))
	if err != nil {
		return nil, errors.Trace(err)
	}
	err = db.CreateDBTables(ctx, wrapperDB, "ledger", "sim", "wrapper")
	if err != nil {
		return nil, errors.Trace(err)
	}
	ctx = db.WithDB(ctx, wrapperDB)

	symbol, err := chain.ParseSymbol(cfg.NativeSymbol)
	if err != nil {
		return nil, errors.Trace(err)
	}
	native := ledger.New(chain.Name(cfg.NativeLedger))
	system := sim.New(chain.Name(cfg.Market), native, symbol)
	c := wrapper.New(chain.Name(cfg.Contract), native, symbol, system)
	ctx = wrapper.With(ctx, c)

	return ctx, nil
}

// Build initializes the app and its web stack.
func Build(
	ctx context.Context,
) (*goji.Mux, error) {
	if GetHost(ctx) == "" {
		return nil, errors.Trace(errors.Newf(
			"You must set the `--host` flag to the hostname clients use to " +
				"contact this node. You can use `--host=127.0.0.1` for " +
				"testing purposes.",
		))
	}

	mux := goji.NewMux()
	mux.Use(requestlogger.Middleware)
	mux.Use(recoverer.Middleware)
	mux.Use(db.Middleware(db.GetDB(ctx)))
	mux.Use(env.Middleware(env.Get(ctx)))
	mux.Use(wrapper.Middleware(wrapper.Get(ctx)))
	mux.Use(authentication.Middleware)

	logging.Logf(ctx, "Initializing: environment=%s host=%s port=%s contract=%s",
		env.Get(ctx).Environment, GetHost(ctx), GetPort(ctx),
		wrapper.Get(ctx).Self)

	(&Controller{}).Bind(mux)

	return mux, nil
}
