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
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/blinklabs-io/mojiledger/keys"
	"github.com/spf13/cobra"
)

var errInvalidSignature = errors.New("signature is not valid")

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Generate and inspect key pairs",
	}
	cmd.AddCommand(newKeysGenerateCmd(), newKeysPublicCmd())
	return cmd
}

func newKeysGenerateCmd() *cobra.Command {
	var privateKey string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a key pair, or derive one from --private-key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := keys.CreateKeys(privateKey)
			if err != nil {
				return fmt.Errorf("failed to create keys: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), kp)
		},
	}
	cmd.Flags().StringVar(&privateKey, "private-key", "", "hex private key to derive the pair from")
	return cmd
}

func newKeysPublicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "public <private-key>",
		Short: "Print the compressed public key for a private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			publicKey, err := keys.GetPublicKey(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), publicKey)
			return nil
		},
	}
}

func newSignCmd() *cobra.Command {
	var privateKey string
	cmd := &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signature, err := keys.Sign(privateKey, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signature)
			return nil
		},
	}
	cmd.Flags().StringVar(&privateKey, "private-key", "", "hex private key to sign with")
	_ = cmd.MarkFlagRequired("private-key")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <public-key> <message> <signature>",
		Short: "Verify a message signature",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !keys.Verify(args[0], args[1], args[2]) {
				return errInvalidSignature
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signature is valid")
			return nil
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
