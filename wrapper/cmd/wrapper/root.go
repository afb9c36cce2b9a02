package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/logging"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper/app"
)

var (
	cfgFile string // config file location to load
	cfg     = &app.Config{}
	rootCmd = &cobra.Command{
		Use:   "wrapper",
		Short: "A node serving the wrapped system token",
		Long: `Serves the wrapped system token contract: 1:1 wrapping of the native
currency and forwarding of resource market actions paid in wrapped tokens.`,
		SilenceUsage: true,
	}
	viperConf = viper.New()
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(getViperConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file location (default is <CWD>/config.toml)")
	app.SetupFlags(cfg, rootCmd)
}

func getViperConfig() {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("toml")
	} else {
		pwd, err := os.Getwd()
		if err != nil {
			log.Fatalf("Could not determine current working dir. Err: %v", err)
		}
		if _, err := os.Stat(fmt.Sprintf("%v/config.toml", pwd)); err == nil {
			cfgFile = pwd
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				log.Fatalf("Failed to find user home dir. Err: %v", err)
			}
			cfgFile = fmt.Sprintf("%s/.vaulta", home)
		}
		v.AddConfigPath(cfgFile)
		v.SetConfigType("toml")
		v.SetConfigName("config")
	}

	var noConfig bool
	err := v.ReadInConfig()
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "Config File \"config\" Not Found"):
			noConfig = true
		case strings.Contains(err.Error(), "incomplete number"):
			log.Fatalf("Failed to read config file %v. This usually means you forgot to wrap a string in quotes.", err)
		default:
			log.Fatalf("Failed to read config file. Err: %v", err)
		}
	}

	if !noConfig {
		log.Println("CFG successfully read from: ", cfgFile)
	}

	viperConf = v
}

// bindFlags sets flags from the config file when not specified on the
// command line.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		configName := f.Name

		if !f.Changed && v.IsSet(configName) {
			val := v.Get(configName)
			err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
			if err != nil {
				log.Fatalf("Failed to bind config file value %v. Err: %v", configName, err)
			}
		}
	})
}

// setup binds the config file, configures the logger and builds the
// background context.
func setup(
	cmd *cobra.Command,
) (context.Context, error) {
	bindFlags(cmd, viperConf)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := logging.Configure(cfg.Log.Level, cfg.Log.Path, cfg.Log.Pretty); err != nil {
		return nil, err
	}

	ctx, err := app.BackgroundContextFromConfig(cfg)
	if err != nil {
		return nil, errors.Newf("%s", errors.Details(err))
	}
	return ctx, nil
}
