package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iov-one/pswap"
	pswapapp "github.com/iov-one/pswap/app"
	"github.com/iov-one/pswap/cmd/pswapd/app"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/x/aswap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagHome     = "home"
	flagConfig   = "config"
	flagLogLevel = "log_level"
	flagChainID  = "chain_id"

	envPrefix = "PSWAPD"

	configFile  = "config.yaml"
	genesisFile = "genesis.json"
	dataDir     = "data"
)

// daemon holds the configuration shared by all commands.
type daemon struct {
	v      *viper.Viper
	logger log.Logger
}

// NewRootCmd returns the pswapd command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	d := &daemon{v: viper.New(), logger: log.NewNopLogger()}

	root := &cobra.Command{
		Use:           "pswapd",
		Short:         "Premium atomic swap daemon",
		Long:          "Runs batches of token and swap transactions against a local, persistent ledger.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return d.load(cmd)
		},
	}

	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".pswapd")
	flags := root.PersistentFlags()
	flags.String(flagHome, defaultHome, "directory to store files under")
	flags.String(flagConfig, "", "configuration file (default $HOME/.pswapd/config.yaml)")
	flags.String(flagLogLevel, "info", "log level: debug, info, error or none")
	for _, name := range []string{flagHome, flagLogLevel} {
		if err := d.v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		d.initCmd(),
		d.genesisCmd(),
		d.applyCmd(),
		d.queryCmd(),
		d.addressCmd(),
		d.hashCmd(),
		versionCmd(),
	)
	return root
}

// load reads the configuration file and environment, then configures the
// logger.
func (d *daemon) load(cmd *cobra.Command) error {
	d.v.SetEnvPrefix(envPrefix)
	d.v.AutomaticEnv()
	d.v.SetDefault(flagLogLevel, "info")

	path, _ := cmd.Flags().GetString(flagConfig)
	if path == "" {
		path = filepath.Join(d.home(), configFile)
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}
	if path != "" {
		d.v.SetConfigFile(path)
		if err := d.v.ReadInConfig(); err != nil {
			return errors.Wrapf(errors.ErrInput, "read config: %s", err)
		}
	}

	opt, err := log.AllowLevel(d.v.GetString(flagLogLevel))
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	logger := log.NewTMLogger(log.NewSyncWriter(cmd.ErrOrStderr()))
	d.logger = log.NewFilter(logger, opt)
	return nil
}

func (d *daemon) home() string {
	return d.v.GetString(flagHome)
}

func (d *daemon) path(name string) string {
	return filepath.Join(d.home(), name)
}

// open returns the application persisted in the home directory.
func (d *daemon) open(notifier aswap.Notifier) (*pswapapp.Application, error) {
	if notifier == nil {
		notifier = aswap.LogNotifier{}
	}
	dir := d.path(dataDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "create %s: %s", dir, err)
	}
	return app.Application(filepath.Join(dir, app.Name), notifier, d.logger)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the app version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), pswap.Version())
		},
	}
}
