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

// Package test_ledger builds deterministic keys, transactions and chains for
// tests and benchmarks.
package test_ledger

import (
	"fmt"

	"github.com/blinklabs-io/mojiledger/address"
	"github.com/blinklabs-io/mojiledger/keys"
	"github.com/blinklabs-io/mojiledger/ledger"
)

// KeyPair returns a deterministic key pair for index. Private keys are the
// small scalars index+1, which are always valid.
func KeyPair(index int) keys.KeyPair {
	kp, err := keys.CreateKeys(fmt.Sprintf("%064x", index+1))
	if err != nil {
		panic(fmt.Sprintf("unexpected error creating test keys: %s", err))
	}
	return kp
}

// SignedTransaction returns a transaction of amount from the key pair at
// index to the collection address of the key pair at index+1
func SignedTransaction(
	index int,
	amount int64,
	enc ledger.MessageEncoding,
) ledger.Transaction {
	sender := KeyPair(index)
	recipient := address.GetCollectionAddress(KeyPair(index + 1).PublicKey)
	tx, err := ledger.NewTransaction(sender.PrivateKey, recipient, amount, enc)
	if err != nil {
		panic(fmt.Sprintf("unexpected error creating test transaction: %s", err))
	}
	return *tx
}

// ChainOptions controls the shape of a generated chain
type ChainOptions struct {
	// Blocks is the number of blocks after genesis
	Blocks int
	// TxsPerBlock is the number of transactions in each non-genesis block
	TxsPerBlock int
	// MessageEncoding is used to sign the transactions
	MessageEncoding ledger.MessageEncoding
}

// Chain returns a valid chain built from opts
func Chain(opts ChainOptions) *ledger.Chain {
	chain := ledger.NewChain()
	keyIndex := 0
	for i := range opts.Blocks {
		txs := make([]ledger.Transaction, 0, opts.TxsPerBlock)
		for range opts.TxsPerBlock {
			txs = append(
				txs,
				SignedTransaction(keyIndex, int64(100+keyIndex), opts.MessageEncoding),
			)
			keyIndex++
		}
		chain.AddBlock(txs, int64(i+1))
	}
	return chain
}
