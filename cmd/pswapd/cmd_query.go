package main

import (
	"encoding/hex"
	"encoding/json"

	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/cmd/pswapd/app"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/x/aswap"
	"github.com/iov-one/pswap/x/token"
	"github.com/spf13/cobra"
)

func (d *daemon) queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Read the committed state",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "swap <hex key>",
			Short: "Show the terms and the three records of a swap",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				key, err := hex.DecodeString(args[0])
				if err != nil {
					return errors.Wrapf(errors.ErrInput, "swap key: %s", err)
				}
				if err := aswap.ValidateKey(key); err != nil {
					return err
				}
				a, err := d.open(nil)
				if err != nil {
					return err
				}
				defer a.Close()

				s, err := aswap.NewRegistry().Load(a.Store(), key)
				if err != nil {
					return err
				}
				return printJSON(cmd, swapView(s))
			},
		},
		&cobra.Command{
			Use:   "balance <address> <token>",
			Short: "Show the balance of an account",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				owner, err := pswap.ParseAddress(args[0])
				if err != nil {
					return err
				}
				if err := token.ValidateTicker(args[1]); err != nil {
					return err
				}
				a, err := d.open(nil)
				if err != nil {
					return err
				}
				defer a.Close()

				amount, err := app.TokenControl().BalanceOf(a.Store(), args[1], owner)
				if err != nil {
					return err
				}
				return printJSON(cmd, struct {
					Address pswap.Address `json:"address"`
					Token   string        `json:"token"`
					Amount  uint64        `json:"amount"`
				}{owner, args[1], amount})
			},
		},
	)
	return cmd
}

type recordView struct {
	Amount uint64 `json:"amount"`
	Expiry string `json:"expiry,omitempty"`
	State  string `json:"state"`
}

func newRecordView(r *aswap.AssetRecord) recordView {
	v := recordView{Amount: r.Amount, State: r.State.String()}
	if !r.Expiry.IsZero() {
		v.Expiry = r.Expiry.String()
	}
	return v
}

// swapView presents a swap with hex encoded binary fields.
func swapView(s *aswap.SwapState) interface{} {
	return struct {
		Key              string        `json:"key"`
		Secret           string        `json:"secret,omitempty"`
		Initiator        pswap.Address `json:"initiator"`
		Participant      pswap.Address `json:"participant"`
		TokenA           string        `json:"token_a"`
		TokenB           string        `json:"token_b"`
		InitiatorAsset   recordView    `json:"initiator_asset"`
		ParticipantAsset recordView    `json:"participant_asset"`
		Premium          recordView    `json:"premium"`
	}{
		Key:              hex.EncodeToString(s.Swap.Key),
		Secret:           hex.EncodeToString(s.Swap.Secret),
		Initiator:        s.Swap.Initiator,
		Participant:      s.Swap.Participant,
		TokenA:           s.Swap.TokenA,
		TokenB:           s.Swap.TokenB,
		InitiatorAsset:   newRecordView(s.InitiatorAsset),
		ParticipantAsset: newRecordView(s.ParticipantAsset),
		Premium:          newRecordView(s.Premium),
	}
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(errors.ErrHuman, err.Error())
	}
	return nil
}
