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
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/mojiledger/ledger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTxCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Create and validate transactions",
	}
	cmd.AddCommand(newTxCreateCmd(v), newTxValidateCmd(v))
	return cmd
}

func newTxCreateCmd(v *viper.Viper) *cobra.Command {
	var (
		privateKey string
		recipient  string
		amount     int64
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a signed transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := messageEncoding(v)
			if err != nil {
				return err
			}
			tx, err := ledger.NewTransaction(privateKey, recipient, amount, enc)
			if err != nil {
				return fmt.Errorf("failed to create transaction: %w", err)
			}
			slog.Debug(
				"created transaction",
				"id", tx.Id().String(),
				"encoding", enc.String(),
			)
			return writeJSON(cmd.OutOrStdout(), tx)
		},
	}
	cmd.Flags().StringVar(&privateKey, "private-key", "", "hex private key of the source")
	cmd.Flags().StringVar(&recipient, "recipient", "", "recipient address")
	cmd.Flags().Int64Var(&amount, "amount", 0, "amount to transfer")
	_ = cmd.MarkFlagRequired("private-key")
	_ = cmd.MarkFlagRequired("recipient")
	return cmd
}

func newTxValidateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a JSON transaction (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			var tx ledger.Transaction
			if err := json.Unmarshal(data, &tx); err != nil {
				return fmt.Errorf("failed to decode transaction: %w", err)
			}
			validator, err := newValidator(v)
			if err != nil {
				return err
			}
			if err := validator.ValidateTransaction(&tx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "transaction is valid")
			return nil
		},
	}
}
