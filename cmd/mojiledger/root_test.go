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
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blinklabs-io/mojiledger/address"
	test_ledger "github.com/blinklabs-io/mojiledger/internal/test/ledger"
	"github.com/blinklabs-io/mojiledger/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPrivateKey = "0000000000000000000000000000000000000000000000000000000000000001"
	testPublicKey  = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
)

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	_, err := root.ExecuteC()
	return buf.String(), err
}

// lastLine returns the final non-empty output line, skipping any log output
func lastLine(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	return lines[len(lines)-1]
}

func writeChainFile(t *testing.T, chain *ledger.Chain) string {
	t.Helper()
	data, err := json.Marshal(chain)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "chain.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRootCmd(t *testing.T) {
	output, err := executeCommand()
	assert.NoError(t, err)
	assert.Contains(t, output, "mojiledger manages secp256k1 keys")

	_, err = executeCommand("version", "--log-level", "invalid")
	assert.ErrorContains(
		t,
		err,
		"invalid log level: invalid. Valid log levels are: debug|error|info|warn",
	)
}

func TestVersionCmd(t *testing.T) {
	output, err := executeCommand("version")
	require.NoError(t, err)
	assert.Equal(t, "mojiledger "+Version, lastLine(output))
}

func TestKeysCmd(t *testing.T) {
	output, err := executeCommand("keys", "generate", "--private-key", testPrivateKey)
	require.NoError(t, err)
	var kp struct {
		PrivateKey string `json:"privateKey"`
		PublicKey  string `json:"publicKey"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &kp))
	assert.Equal(t, testPrivateKey, kp.PrivateKey)
	assert.Equal(t, testPublicKey, kp.PublicKey)

	output, err = executeCommand("keys", "generate")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(output), &kp))
	assert.Len(t, kp.PrivateKey, 64)
	assert.Len(t, kp.PublicKey, 66)

	output, err = executeCommand("keys", "public", testPrivateKey)
	require.NoError(t, err)
	assert.Equal(t, testPublicKey, lastLine(output))

	_, err = executeCommand("keys", "public", "zz")
	assert.Error(t, err)
}

func TestSignVerifyCmd(t *testing.T) {
	output, err := executeCommand("sign", "--private-key", testPrivateKey, "hello")
	require.NoError(t, err)
	signature := lastLine(output)
	assert.Len(t, signature, 128)

	output, err = executeCommand("verify", testPublicKey, "hello", signature)
	require.NoError(t, err)
	assert.Equal(t, "signature is valid", lastLine(output))

	_, err = executeCommand("verify", testPublicKey, "hellO", signature)
	assert.ErrorIs(t, err, errInvalidSignature)

	_, err = executeCommand("sign", "hello")
	assert.Error(t, err)
}

func TestTxCmd(t *testing.T) {
	recipient := address.GetCollectionAddress(testPublicKey)
	output, err := executeCommand(
		"tx", "create",
		"--private-key", testPrivateKey,
		"--recipient", recipient,
		"--amount", "42",
	)
	require.NoError(t, err)
	var tx ledger.Transaction
	require.NoError(t, json.Unmarshal([]byte(output), &tx))
	assert.Equal(t, testPublicKey, tx.Source)
	assert.Equal(t, recipient, tx.Recipient)
	assert.Equal(t, int64(42), tx.Amount)
	assert.True(t, ledger.IsValidTransaction(&tx))

	path := filepath.Join(t.TempDir(), "tx.json")
	require.NoError(t, os.WriteFile(path, []byte(output), 0o644))
	output, err = executeCommand("tx", "validate", path)
	require.NoError(t, err)
	assert.Equal(t, "transaction is valid", lastLine(output))

	// The signature only verifies under the encoding it was made with
	_, err = executeCommand("tx", "validate", "--message-encoding", "length-prefixed", path)
	assert.ErrorIs(t, err, ledger.ErrInvalidTransaction)

	_, err = executeCommand("tx", "validate", "--message-encoding", "csv", path)
	assert.ErrorContains(t, err, "unknown message encoding: csv")
}

func TestAddressCmd(t *testing.T) {
	output, err := executeCommand("address", "collection", testPublicKey)
	require.NoError(t, err)
	collection := lastLine(output)
	assert.Equal(t, address.GetCollectionAddress(testPublicKey), collection)

	output, err = executeCommand("address", "item", testPublicKey, "datum")
	require.NoError(t, err)
	assert.Equal(t, address.GetItemAddress(testPublicKey, "datum"), lastLine(output))

	output, err = executeCommand("address", "listing", testPublicKey)
	require.NoError(t, err)
	assert.Equal(t, address.GetListingAddress(testPublicKey), lastLine(output))

	item := address.GetItemAddress(testPublicKey, "datum")
	output, err = executeCommand("address", "offer", testPublicKey, item, collection)
	require.NoError(t, err)
	assert.Equal(
		t,
		address.GetOfferAddress(testPublicKey, collection, item),
		lastLine(output),
	)

	output, err = executeCommand("address", "validate", collection)
	require.NoError(t, err)
	assert.Equal(t, "collection", lastLine(output))

	_, err = executeCommand("address", "validate", collection[:69])
	assert.ErrorIs(t, err, address.ErrInvalidAddress)

	_, err = executeCommand("address", "--namespace", "abc", "listing", testPublicKey)
	assert.Error(t, err)
}

func TestAddressCmdBech32(t *testing.T) {
	output, err := executeCommand("address", "--bech32", "moji", "listing", testPublicKey)
	require.NoError(t, err)
	encoded := lastLine(output)
	assert.True(t, strings.HasPrefix(encoded, "moji1"))

	output, err = executeCommand("address", "--bech32", "moji", "validate", encoded)
	require.NoError(t, err)
	assert.Equal(t, "listing", lastLine(output))

	_, err = executeCommand("address", "--bech32", "other", "validate", encoded)
	assert.ErrorContains(t, err, "unexpected human-readable part: moji")
}

func TestChainValidateCmd(t *testing.T) {
	chain := test_ledger.Chain(test_ledger.ChainOptions{Blocks: 4, TxsPerBlock: 2})
	path := writeChainFile(t, chain)

	output, err := executeCommand("chain", "validate", path)
	require.NoError(t, err)
	assert.Equal(t, "chain is valid", lastLine(output))

	output, err = executeCommand("chain", "validate", "--parallelism", "4", path)
	require.NoError(t, err)
	assert.Equal(t, "chain is valid", lastLine(output))

	_, err = executeCommand("chain", "validate", "--parallelism", "0", path)
	assert.ErrorContains(t, err, "invalid parallelism: 0")

	chain.Blocks[2].Nonce++
	_, err = executeCommand("chain", "validate", writeChainFile(t, chain))
	assert.ErrorIs(t, err, ledger.ErrInvalidChain)
	var blockErr ledger.InvalidBlockError
	require.True(t, errors.As(err, &blockErr))
	assert.Equal(t, 2, blockErr.Index)

	_, err = executeCommand("chain", "validate", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read input")
}

func TestChainValidateRequireGenesis(t *testing.T) {
	path := writeChainFile(t, &ledger.Chain{Blocks: []ledger.Block{}})
	_, err := executeCommand("chain", "validate", path)
	require.NoError(t, err)

	_, err = executeCommand("chain", "validate", "--require-genesis", path)
	assert.ErrorIs(t, err, ledger.ErrInvalidChain)

	t.Setenv("MOJILEDGER_REQUIRE_GENESIS", "true")
	_, err = executeCommand("chain", "validate", path)
	assert.ErrorIs(t, err, ledger.ErrInvalidChain)
}

func TestChainValidateConfigFile(t *testing.T) {
	path := writeChainFile(t, &ledger.Chain{Blocks: []ledger.Block{}})
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(
		configPath,
		[]byte("require-genesis: true\nparallelism: 2\n"),
		0o644,
	))
	_, err := executeCommand("chain", "validate", "--config", configPath, path)
	assert.ErrorIs(t, err, ledger.ErrInvalidChain)

	_, err = executeCommand(
		"chain", "validate",
		"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		path,
	)
	assert.ErrorContains(t, err, "failed to read config")
}

func TestChainConvertCmd(t *testing.T) {
	chain := test_ledger.Chain(test_ledger.ChainOptions{Blocks: 3, TxsPerBlock: 1})
	jsonPath := writeChainFile(t, chain)
	cborPath := filepath.Join(t.TempDir(), "chain.cbor")

	_, err := executeCommand("chain", "convert", jsonPath, "--output", cborPath)
	require.NoError(t, err)
	cborData, err := os.ReadFile(cborPath)
	require.NoError(t, err)
	expected, err := chain.Encode()
	require.NoError(t, err)
	assert.Equal(t, expected, cborData)

	output, err := executeCommand("chain", "validate", "--format", "cbor", cborPath)
	require.NoError(t, err)
	assert.Equal(t, "chain is valid", lastLine(output))

	output, err = executeCommand("chain", "convert", "--from", "cbor", "--to", "json", cborPath)
	require.NoError(t, err)
	var decoded ledger.Chain
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	require.Len(t, decoded.Blocks, len(chain.Blocks))
	assert.Equal(t, chain.Tip().Hash, decoded.Tip().Hash)

	_, err = executeCommand("chain", "convert", "--to", "yaml", jsonPath)
	assert.ErrorContains(t, err, "unknown chain format: yaml")
}

func TestChainInspectCmd(t *testing.T) {
	chain := test_ledger.Chain(test_ledger.ChainOptions{Blocks: 1, TxsPerBlock: 1})
	output, err := executeCommand("chain", "inspect", "--format", "json", writeChainFile(t, chain))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output, "[\n  [\n"))
	// Genesis has no previous hash
	assert.Contains(t, output, "null,")
	assert.Contains(t, output, "(text, length 128)")

	path := filepath.Join(t.TempDir(), "bad.cbor")
	require.NoError(t, os.WriteFile(path, []byte{0x82, 0x01}, 0o644))
	_, err = executeCommand("chain", "inspect", path)
	assert.ErrorContains(t, err, "failed to decode chain")
}
