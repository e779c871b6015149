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
	"strconv"
	"strings"

	"github.com/blinklabs-io/mojiledger/cbor"
	"github.com/blinklabs-io/mojiledger/digest"
)

// nullPreviousHash is what a missing previous hash contributes to the block
// hash pre-image. Existing chains were hashed this way.
const nullPreviousHash = "null"

// Block groups transactions under a hash that commits to them, the nonce and
// the previous block's hash. PreviousHash is nil only for a genesis block.
type Block struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	Transactions []Transaction `json:"transactions"`
	Nonce        int64         `json:"nonce"`
	Hash         string        `json:"hash"`
	PreviousHash *string       `json:"previousHash"`
}

// NewBlock builds a block over txs and computes its hash
func NewBlock(txs []Transaction, previousHash *string, nonce int64) *Block {
	if txs == nil {
		txs = []Transaction{}
	}
	b := &Block{
		Transactions: txs,
		Nonce:        nonce,
		PreviousHash: previousHash,
	}
	b.Hash = b.CalculateHash()
	return b
}

// NewGenesisBlock returns an empty block with no previous hash
func NewGenesisBlock() *Block {
	return NewBlock(nil, nil, 0)
}

// NewBlockFromCbor decodes a block and keeps its original CBOR
func NewBlockFromCbor(data []byte) (*Block, error) {
	var b Block
	if _, err := cbor.Decode(data, &b); err != nil {
		return nil, fmt.Errorf("decode block CBOR: %w", err)
	}
	return &b, nil
}

func (b *Block) UnmarshalCBOR(cborData []byte) error {
	return b.UnmarshalCbor(cborData, b)
}

// IsGenesis reports whether the block has no previous hash
func (b *Block) IsGenesis() bool {
	return b.PreviousHash == nil
}

// PrevHash returns the previous hash, or an empty string for a genesis block
func (b *Block) PrevHash() string {
	if b.PreviousHash == nil {
		return ""
	}
	return *b.PreviousHash
}

// CalculateHash recomputes the hash from the block's current contents
func (b *Block) CalculateHash() string {
	return CalculateBlockHash(b.PreviousHash, b.Transactions, b.Nonce)
}

// Encode returns the CBOR the block was decoded from, or a fresh encoding
// when it was built locally
func (b *Block) Encode() ([]byte, error) {
	if stored := b.Cbor(); len(stored) > 0 {
		return stored, nil
	}
	return cbor.Encode(b)
}

// Id returns the Blake2b-256 content identifier of the block's CBOR
func (b *Block) Id() digest.Blake2b256 {
	data, err := b.Encode()
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error encoding block to CBOR: %s", err),
		)
	}
	return digest.Blake2b256Hash(data)
}

// BlockSignatures concatenates the signatures of txs in order
func BlockSignatures(txs []Transaction) string {
	var sb strings.Builder
	for i := range txs {
		sb.WriteString(txs[i].Signature)
	}
	return sb.String()
}

// CalculateBlockHash returns the SHA-512 hex digest of
// previousHash || signatures || nonce
func CalculateBlockHash(
	previousHash *string,
	txs []Transaction,
	nonce int64,
) string {
	prev := nullPreviousHash
	if previousHash != nil {
		prev = *previousHash
	}
	return digest.Sha512Hex(
		prev + BlockSignatures(txs) + strconv.FormatInt(nonce, 10),
	)
}
