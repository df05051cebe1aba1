package main

import (
	"encoding/hex"
	"encoding/json"
	"io"
	"os"

	"github.com/iov-one/pswap/cmd/pswapd/app"
	"github.com/iov-one/pswap/errors"
	"github.com/spf13/cobra"
)

func (d *daemon) applyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <txs.json>",
		Short: "Process a batch of transactions as one block",
		Long: `Process a JSON array of transactions as one block and commit it. Use - to
read the batch from standard input.

Every transaction names its signer, its block time and exactly one message:

  [{"signer": "alice", "time": "2020-03-01T12:00:00Z",
    "fill_premium": {"key": "<base64>", "sender": "<address>", "duration": 3600}}]

Swap events and transaction results are written as JSON lines.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				fd, err := os.Open(args[0])
				if err != nil {
					return errors.Wrapf(errors.ErrInput, "open batch: %s", err)
				}
				defer fd.Close()
				in = fd
			}
			txs, err := app.ReadBatch(in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			a, err := d.open(app.NewJSONNotifier(out))
			if err != nil {
				return err
			}
			defer a.Close()
			if a.ChainID() == "" {
				return errors.Wrap(errors.ErrState, "chain not initialized, run genesis first")
			}

			results, id, err := app.DeliverBatch(a, txs)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(out)
			for _, res := range results {
				if err := enc.Encode(struct {
					Result app.TxResult `json:"result"`
				}{res}); err != nil {
					return errors.Wrap(errors.ErrHuman, err.Error())
				}
			}
			return enc.Encode(struct {
				Version int64  `json:"version"`
				Hash    string `json:"hash"`
			}{id.Version, hex.EncodeToString(id.Hash)})
		},
	}
}
