package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/iov-one/pswap/cmd/pswapd/app"
	"github.com/iov-one/pswap/x/aswap"
	"github.com/spf13/cobra"
)

func (d *daemon) addressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address <signer>",
		Short: "Print the address a batch signer name authenticates as",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := app.SignerCondition(args[0]).Address()
			b32, err := addr.Bech32()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "hex:    %s\nbech32: %s\n", addr, b32)
			return nil
		},
	}
}

func (d *daemon) hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <secret>",
		Short: "Print the swap key committing to a secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := []byte(args[0])
			key := aswap.HashBytes(secret)
			fmt.Fprintf(cmd.OutOrStdout(), "key:    %s\nbase64: %s\nsecret: %s\n",
				hex.EncodeToString(key),
				base64.StdEncoding.EncodeToString(key),
				base64.StdEncoding.EncodeToString(secret))
			return nil
		},
	}
}
