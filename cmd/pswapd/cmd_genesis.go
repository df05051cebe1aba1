package main

import (
	"encoding/hex"
	"fmt"

	pswapapp "github.com/iov-one/pswap/app"
	"github.com/iov-one/pswap/cmd/pswapd/app"
	"github.com/iov-one/pswap/errors"
	"github.com/spf13/cobra"
)

func (d *daemon) genesisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genesis [file]",
		Short: "Load token balances and swap configuration into an empty store",
		Long: `Load the genesis file (default $HOME/.pswapd/genesis.json) into the store.
The chain can be initialized only once.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := d.path(genesisFile)
			if len(args) == 1 {
				path = args[0]
			}
			gen, err := pswapapp.LoadGenesis(path)
			if err != nil {
				return err
			}
			if want := d.v.GetString(flagChainID); want != "" && want != gen.ChainID {
				return errors.Wrapf(errors.ErrInput, "genesis is for %q, configured chain is %q", gen.ChainID, want)
			}

			a, err := d.open(nil)
			if err != nil {
				return err
			}
			defer a.Close()

			id, err := a.InitChain(gen, app.Initializers())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "initialized %s at version %d, hash %s\n",
				gen.ChainID, id.Version, hex.EncodeToString(id.Hash))
			return nil
		},
	}
}
