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

package ledger

import (
	"fmt"

	"github.com/blinklabs-io/mojiledger/cbor"
)

// Chain is an ordered block history whose first block is the genesis block
type Chain struct {
	cbor.StructAsArray
	Blocks []Block `json:"blocks"`
}

// NewChain returns a chain holding only a genesis block
func NewChain() *Chain {
	return &Chain{
		Blocks: []Block{*NewGenesisBlock()},
	}
}

// NewChainFromCbor decodes a chain
func NewChainFromCbor(data []byte) (*Chain, error) {
	var c Chain
	if _, err := cbor.Decode(data, &c); err != nil {
		return nil, fmt.Errorf("decode chain CBOR: %w", err)
	}
	return &c, nil
}

// Encode returns the CBOR encoding of the chain
func (c *Chain) Encode() ([]byte, error) {
	return cbor.Encode(c)
}

// Genesis returns the first block, or nil for an empty chain
func (c *Chain) Genesis() *Block {
	if len(c.Blocks) == 0 {
		return nil
	}
	return &c.Blocks[0]
}

// Tip returns the last block, or nil for an empty chain
func (c *Chain) Tip() *Block {
	if len(c.Blocks) == 0 {
		return nil
	}
	return &c.Blocks[len(c.Blocks)-1]
}

// AddBlock appends a block over txs linked to the current tip and returns it.
// An empty chain gets a genesis block first.
func (c *Chain) AddBlock(txs []Transaction, nonce int64) *Block {
	if len(c.Blocks) == 0 {
		c.Blocks = append(c.Blocks, *NewGenesisBlock())
	}
	prevHash := c.Tip().Hash
	c.Blocks = append(c.Blocks, *NewBlock(txs, &prevHash, nonce))
	return c.Tip()
}
