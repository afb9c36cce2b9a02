package main

import (
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/zenazn/goji/bind"
	"github.com/zenazn/goji/graceful"
	"goji.io"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/cert"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper/app"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Serves the contract API.",
	Long: `Builds the node from the configuration, creates the missing tables,
seeds the native currency and markets in QA, initializes the wrapped token
if max_supply is set, and serves the API until interrupted.`,
	RunE: run,
}

func init() {
	if fl := log.Flags(); fl&log.Ltime != 0 {
		log.SetFlags(fl | log.Lmicroseconds)
	}
	graceful.DoubleKickWindow(2 * time.Second)

	rootCmd.AddCommand(runCmd)
}

func run(cmd *cobra.Command, args []string) error {
	ctx, err := setup(cmd)
	if err != nil {
		return err
	}

	if err := app.Bootstrap(ctx, cfg.MaxSupply); err != nil {
		return errors.Newf("%s", errors.Details(err))
	}

	mux, err := app.Build(ctx)
	if err != nil {
		return errors.Newf("%s", errors.Details(err))
	}

	listener := bind.Socket(fmt.Sprintf(":%s", app.GetPort(ctx)))
	if cfg.TLS {
		config, err := cert.TLSConfig(ctx, app.GetHost(ctx), cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			return errors.Newf("%s", errors.Details(err))
		}
		listener = tls.NewListener(listener, config)
	}

	ServeListener(mux, listener)
	return nil
}

// ServeListener runs `mux` on top of an arbitrary net.Listener until
// signaled.
func ServeListener(mux *goji.Mux, listener net.Listener) {
	// Install our handler at the root of the standard net/http default mux.
	// This allows packages like expvar to continue working as expected.
	http.Handle("/", mux)

	log.Println("Starting Goji on", listener.Addr())

	graceful.HandleSignals()
	bind.Ready()
	graceful.PreHook(func() { log.Printf("Goji received signal, gracefully stopping") })
	graceful.PostHook(func() { log.Printf("Goji stopped") })

	err := graceful.Serve(listener, http.DefaultServeMux)

	if err != nil {
		log.Fatal(err)
	}

	graceful.Wait()
}
