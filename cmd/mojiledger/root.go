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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/blinklabs-io/mojiledger/ledger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagConfig          = "config"
	flagLogLevel        = "log-level"
	flagParallelism     = "parallelism"
	flagMessageEncoding = "message-encoding"
	flagRequireGenesis  = "require-genesis"
)

var (
	validLogLevels = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	validLogLevelsStr = strings.Join(
		slices.Sorted(maps.Keys(validLogLevels)),
		"|",
	)
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "mojiledger",
		Short: "Sign, address and validate ledger records",
		Long: `mojiledger manages secp256k1 keys, signs transactions, derives
namespaced addresses and validates blocks and chains.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := readConfig(v); err != nil {
				return err
			}
			if err := setLogLevel(cmd.ErrOrStderr(), v.GetString(flagLogLevel)); err != nil {
				return err
			}
			slog.Debug("Application started", "version", Version)
			return nil
		},
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	flags := cmd.PersistentFlags()
	flags.String(flagConfig, "", "config file (default: config.yaml in . or $HOME/.mojiledger)")
	flags.StringP(
		flagLogLevel,
		"l",
		"info",
		fmt.Sprintf("set log level (%s)", validLogLevelsStr),
	)
	flags.Int(flagParallelism, 1, "number of blocks validated concurrently")
	flags.String(
		flagMessageEncoding,
		ledger.MessageEncodingConcat.String(),
		"transaction signing message encoding (concat|length-prefixed)",
	)
	flags.Bool(flagRequireGenesis, false, "treat an empty chain as invalid")
	if err := v.BindPFlags(flags); err != nil {
		slog.Error("Failed to bind root flags", "error", err)
	}

	v.SetEnvPrefix("mojiledger")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.AddCommand(
		newKeysCmd(),
		newSignCmd(),
		newVerifyCmd(),
		newTxCmd(v),
		newAddressCmd(),
		newChainCmd(v),
		newVersionCmd(),
	)
	return cmd
}

// readConfig loads the config file named by --config, or config.yaml from the
// default search paths when it exists
func readConfig(v *viper.Viper) error {
	if configFile := v.GetString(flagConfig); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.mojiledger")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// setLogLevel installs a JSON logger at the given level as the default
func setLogLevel(w io.Writer, logLevel string) error {
	level, exists := validLogLevels[logLevel]
	if !exists {
		return fmt.Errorf(
			"invalid log level: %s. Valid log levels are: %s",
			logLevel,
			validLogLevelsStr,
		)
	}
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return nil
}

func messageEncoding(v *viper.Viper) (ledger.MessageEncoding, error) {
	return ledger.ParseMessageEncoding(v.GetString(flagMessageEncoding))
}

// newValidator builds a validator from the flags, environment and config file
func newValidator(v *viper.Viper) (*ledger.Validator, error) {
	enc, err := messageEncoding(v)
	if err != nil {
		return nil, err
	}
	parallelism := v.GetInt(flagParallelism)
	if parallelism < 1 {
		return nil, fmt.Errorf("invalid parallelism: %d", parallelism)
	}
	return ledger.NewValidator(
		ledger.WithLogger(slog.Default()),
		ledger.WithVerifyConfig(ledger.VerifyConfig{
			MessageEncoding: enc,
			Parallelism:     parallelism,
			RequireGenesis:  v.GetBool(flagRequireGenesis),
		}),
	), nil
}
