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

// Package bench provides benchmark utilities and fixtures for measuring
// signing and validation cost.
package bench

import (
	"fmt"
	"strings"

	test_ledger "github.com/blinklabs-io/mojiledger/internal/test/ledger"
	"github.com/blinklabs-io/mojiledger/ledger"
)

// ChainFixture contains a pre-built chain for benchmarking
type ChainFixture struct {
	Name        string
	Blocks      int
	TxsPerBlock int
	Cbor        []byte
	Chain       *ledger.Chain
}

// chainShapes maps fixture names to the number of blocks after genesis and
// the number of transactions in each block
var chainShapes = map[string][2]int{
	"small":  {4, 2},
	"medium": {32, 8},
	"large":  {128, 16},
}

// ChainSizeNames returns the list of available chain fixture names, smallest
// first
func ChainSizeNames() []string {
	return []string{"small", "medium", "large"}
}

// LoadChainFixture builds a valid chain of the named size. Transactions are
// signed with enc.
func LoadChainFixture(
	name string,
	enc ledger.MessageEncoding,
) (*ChainFixture, error) {
	shape, ok := chainShapes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown chain size: %s", name)
	}
	chain := test_ledger.Chain(test_ledger.ChainOptions{
		Blocks:          shape[0],
		TxsPerBlock:     shape[1],
		MessageEncoding: enc,
	})
	cborData, err := chain.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode %s chain: %w", name, err)
	}
	return &ChainFixture{
		Name:        name,
		Blocks:      shape[0],
		TxsPerBlock: shape[1],
		Cbor:        cborData,
		Chain:       chain,
	}, nil
}

// MustLoadChainFixture builds a chain fixture and panics on error.
// Use this in benchmark setup code.
func MustLoadChainFixture(name string, enc ledger.MessageEncoding) *ChainFixture {
	fixture, err := LoadChainFixture(name, enc)
	if err != nil {
		panic(fmt.Sprintf("failed to load %s chain fixture: %v", name, err))
	}
	return fixture
}

// TxFixture contains a pre-built transaction for benchmarking
type TxFixture struct {
	Encoding ledger.MessageEncoding
	Cbor     []byte
	Tx       ledger.Transaction
}

// LoadTxFixture builds a signed transaction using enc
func LoadTxFixture(enc ledger.MessageEncoding) (*TxFixture, error) {
	tx := test_ledger.SignedTransaction(0, 1000, enc)
	cborData, err := tx.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode transaction: %w", err)
	}
	return &TxFixture{
		Encoding: enc,
		Cbor:     cborData,
		Tx:       tx,
	}, nil
}

// MustLoadTxFixture builds a transaction fixture and panics on error
func MustLoadTxFixture(enc ledger.MessageEncoding) *TxFixture {
	fixture, err := LoadTxFixture(enc)
	if err != nil {
		panic(fmt.Sprintf("failed to load %s tx fixture: %v", enc, err))
	}
	return fixture
}

// MessageEncodings returns the signing message encodings to benchmark
func MessageEncodings() []ledger.MessageEncoding {
	return []ledger.MessageEncoding{
		ledger.MessageEncodingConcat,
		ledger.MessageEncodingLengthPrefixed,
	}
}
