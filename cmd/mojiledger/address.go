// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/blinklabs-io/mojiledger/address"
	"github.com/spf13/cobra"
)

type addressFlags struct {
	namespace string
	bech32    string
}

func (f *addressFlags) scheme() (address.Scheme, error) {
	return address.NewScheme(f.namespace)
}

// print writes addr, or its bech32 form when --bech32 is set
func (f *addressFlags) print(cmd *cobra.Command, scheme address.Scheme, addr string) error {
	if f.bech32 != "" {
		encoded, err := scheme.Bech32(addr, f.bech32)
		if err != nil {
			return err
		}
		addr = encoded
	}
	fmt.Fprintln(cmd.OutOrStdout(), addr)
	return nil
}

func newAddressCmd() *cobra.Command {
	f := &addressFlags{}
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Derive and check namespaced addresses",
	}
	cmd.PersistentFlags().StringVar(&f.namespace, "namespace", address.DefaultNamespace, "address namespace (6 hex chars)")
	cmd.PersistentFlags().StringVar(&f.bech32, "bech32", "", "print the address in bech32 form with this human-readable part")

	derive := func(use, short string, args cobra.PositionalArgs, fn func(address.Scheme, []string) string) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  args,
			RunE: func(cmd *cobra.Command, args []string) error {
				scheme, err := f.scheme()
				if err != nil {
					return err
				}
				return f.print(cmd, scheme, fn(scheme, args))
			},
		}
	}
	cmd.AddCommand(
		derive(
			"collection <public-key>",
			"Derive the collection address of a public key",
			cobra.ExactArgs(1),
			func(s address.Scheme, args []string) string { return s.Collection(args[0]) },
		),
		derive(
			"item <owner-key> <datum>",
			"Derive the address of an item owned by a key",
			cobra.ExactArgs(2),
			func(s address.Scheme, args []string) string { return s.Item(args[0], args[1]) },
		),
		derive(
			"listing <owner-key>",
			"Derive the listing address of a key",
			cobra.ExactArgs(1),
			func(s address.Scheme, args []string) string { return s.Listing(args[0]) },
		),
		derive(
			"offer <owner-key> <item-address>...",
			"Derive the address of an offer over a set of items",
			cobra.MinimumNArgs(1),
			func(s address.Scheme, args []string) string { return s.Offer(args[0], args[1:]...) },
		),
		newAddressValidateCmd(f),
	)
	return cmd
}

func newAddressValidateCmd(f *addressFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <address>",
		Short: "Check an address and print its kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := f.scheme()
			if err != nil {
				return err
			}
			addr := args[0]
			if f.bech32 != "" {
				hrp, decoded, err := scheme.FromBech32(addr)
				if err != nil {
					return err
				}
				if hrp != f.bech32 {
					return fmt.Errorf("unexpected human-readable part: %s", hrp)
				}
				addr = decoded
			}
			kind, err := scheme.KindOf(addr)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), kind.String())
			return nil
		},
	}
}
