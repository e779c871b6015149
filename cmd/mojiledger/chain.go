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
	"io"
	"log/slog"
	"os"

	"github.com/blinklabs-io/mojiledger/cbor"
	"github.com/blinklabs-io/mojiledger/ledger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	formatJSON = "json"
	formatCBOR = "cbor"
)

func newChainCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Validate and convert chains",
	}
	cmd.AddCommand(
		newChainValidateCmd(v),
		newChainConvertCmd(),
		newChainInspectCmd(),
	)
	return cmd
}

func newChainValidateCmd(v *viper.Viper) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a chain file (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			chain, err := decodeChain(data, format)
			if err != nil {
				return err
			}
			validator, err := newValidator(v)
			if err != nil {
				return err
			}
			if err := validator.ValidateChain(chain); err != nil {
				return err
			}
			slog.Info(
				"chain validated",
				"blocks", len(chain.Blocks),
				"parallelism", validator.Config().Parallelism,
			)
			fmt.Fprintln(cmd.OutOrStdout(), "chain is valid")
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", formatJSON, "input format (json|cbor)")
	return cmd
}

func newChainConvertCmd() *cobra.Command {
	var (
		from   string
		to     string
		output string
	)
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a chain file between JSON and CBOR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			chain, err := decodeChain(data, from)
			if err != nil {
				return err
			}
			out, err := encodeChain(chain, to)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", formatJSON, "input format (json|cbor)")
	cmd.Flags().StringVar(&to, "to", formatCBOR, "output format (json|cbor)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func newChainInspectCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the CBOR structure of a chain file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			if format != formatCBOR {
				chain, err := decodeChain(data, format)
				if err != nil {
					return err
				}
				if data, err = chain.Encode(); err != nil {
					return err
				}
			}
			out, err := cbor.Dump(data)
			if err != nil {
				return fmt.Errorf("failed to decode chain: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", formatCBOR, "input format (json|cbor)")
	return cmd
}

func decodeChain(data []byte, format string) (*ledger.Chain, error) {
	switch format {
	case formatJSON:
		var chain ledger.Chain
		if err := json.Unmarshal(data, &chain); err != nil {
			return nil, fmt.Errorf("failed to decode chain: %w", err)
		}
		return &chain, nil
	case formatCBOR:
		chain, err := ledger.NewChainFromCbor(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode chain: %w", err)
		}
		return chain, nil
	default:
		return nil, fmt.Errorf("unknown chain format: %s", format)
	}
}

func encodeChain(chain *ledger.Chain, format string) ([]byte, error) {
	switch format {
	case formatJSON:
		out, err := json.MarshalIndent(chain, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case formatCBOR:
		return chain.Encode()
	default:
		return nil, fmt.Errorf("unknown chain format: %s", format)
	}
}

// readInput reads the named file, or stdin when name is "-"
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}
