package main

import (
	"encoding/json"
	"io/ioutil"
	"os"

	pswapapp "github.com/iov-one/pswap/app"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/x/aswap"
	"github.com/iov-one/pswap/x/token"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func (d *daemon) initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration and genesis files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chainID, _ := cmd.Flags().GetString(flagChainID)
			if !pswapapp.IsValidChainID(chainID) {
				return errors.Wrapf(errors.ErrInput, "invalid chain id %q", chainID)
			}
			if err := os.MkdirAll(d.home(), 0755); err != nil {
				return errors.Wrapf(errors.ErrInput, "create home: %s", err)
			}

			d.v.Set(flagChainID, chainID)
			switch err := d.v.SafeWriteConfigAs(d.path(configFile)); err.(type) {
			case nil:
				d.logger.Info("Generated config file", "path", d.path(configFile))
			case viper.ConfigFileAlreadyExistsError:
				d.logger.Info("Found config file", "path", d.path(configFile))
			default:
				return errors.Wrapf(errors.ErrInput, "write config: %s", err)
			}

			genFile := d.path(genesisFile)
			if fileExists(genFile) {
				d.logger.Info("Found genesis file", "path", genFile)
				return nil
			}
			if err := writeGenesis(genFile, chainID); err != nil {
				return err
			}
			d.logger.Info("Generated genesis file", "path", genFile)
			return nil
		},
	}
	cmd.Flags().String(flagChainID, "pswap-local", "chain id written to the genesis file")
	return cmd
}

// writeGenesis creates a genesis file with the default swap configuration
// and no token balances.
func writeGenesis(path, chainID string) error {
	conf, err := json.Marshal(aswap.DefaultConfiguration())
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	conf, err = json.Marshal(map[string]json.RawMessage{"aswap": conf})
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	accounts, err := json.Marshal([]token.GenesisAccount{})
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	gen := pswapapp.Genesis{
		ChainID: chainID,
		AppState: map[string]json.RawMessage{
			"conf":  conf,
			"token": accounts,
		},
	}
	raw, err := json.MarshalIndent(gen, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := ioutil.WriteFile(path, raw, 0644); err != nil {
		return errors.Wrapf(errors.ErrInput, "write genesis: %s", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
