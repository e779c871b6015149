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
	"log/slog"
	"time"

	"github.com/blinklabs-io/mojiledger/keys"
	"golang.org/x/sync/errgroup"
)

// Validator decides whether transactions, blocks and chains are internally
// consistent. It holds no mutable state and is safe for concurrent use on
// records that are not being modified.
type Validator struct {
	logger  *slog.Logger
	config  VerifyConfig
	metrics *Metrics
}

// NewValidator returns a validator configured by the provided options
func NewValidator(opts ...ValidatorOptionFunc) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	if v.logger == nil {
		v.logger = slog.Default()
	}
	return v
}

// Config returns the validation config
func (v *Validator) Config() VerifyConfig {
	return v.config
}

// ValidateTransaction checks that the signature verifies for the source over
// the transaction's fields and that the amount is not negative
func (v *Validator) ValidateTransaction(tx *Transaction) error {
	start := time.Now()
	var err error
	if cause := v.validateTransaction(tx); cause != nil {
		details := map[string]any{}
		if tx != nil {
			details["source"] = tx.Source
			details["amount"] = tx.Amount
		}
		err = NewValidationError(
			ValidationErrorTypeTransaction,
			"transaction validation failed",
			details,
			cause,
		)
		v.logger.Debug(
			"transaction rejected",
			"component", "ledger",
			"error", cause,
		)
	}
	v.metrics.observe(ValidationErrorTypeTransaction, start, err)
	return err
}

// ValidateBlock checks every transaction of the block and that the block
// hash is reproducible from its contents
func (v *Validator) ValidateBlock(block *Block) error {
	start := time.Now()
	var err error
	if cause := v.validateBlock(block); cause != nil {
		details := map[string]any{}
		if block != nil {
			details["hash"] = block.Hash
		}
		if txErr, ok := cause.(InvalidTransactionError); ok {
			details["tx_index"] = txErr.Index
		}
		err = NewValidationError(
			ValidationErrorTypeBlock,
			"block validation failed",
			details,
			cause,
		)
		v.logger.Debug(
			"block rejected",
			"component", "ledger",
			"error", cause,
		)
	}
	v.metrics.observe(ValidationErrorTypeBlock, start, err)
	return err
}

// ValidateChain checks that the genesis block has no previous hash, that
// every later block links to the hash of the block before it, and that every
// later block is valid. The returned error identifies the first failing block.
func (v *Validator) ValidateChain(chain *Chain) error {
	start := time.Now()
	var err error
	if cause := v.validateChain(chain); cause != nil {
		details := map[string]any{}
		if chain != nil {
			details["blocks"] = len(chain.Blocks)
		}
		switch e := cause.(type) {
		case ChainLinkError:
			details["block_index"] = e.Index
		case InvalidBlockError:
			details["block_index"] = e.Index
			if txErr, ok := e.Err.(InvalidTransactionError); ok {
				details["tx_index"] = txErr.Index
			}
		case GenesisPreviousHashError:
			details["block_index"] = 0
		}
		err = NewValidationError(
			ValidationErrorTypeChain,
			"chain validation failed",
			details,
			cause,
		)
		v.logger.Debug(
			"chain rejected",
			"component", "ledger",
			"error", cause,
		)
	}
	v.metrics.observe(ValidationErrorTypeChain, start, err)
	return err
}

// IsValidTransaction reports whether ValidateTransaction succeeds
func (v *Validator) IsValidTransaction(tx *Transaction) bool {
	return v.ValidateTransaction(tx) == nil
}

// IsValidBlock reports whether ValidateBlock succeeds
func (v *Validator) IsValidBlock(block *Block) bool {
	return v.ValidateBlock(block) == nil
}

// IsValidChain reports whether ValidateChain succeeds
func (v *Validator) IsValidChain(chain *Chain) bool {
	return v.ValidateChain(chain) == nil
}

func (v *Validator) validateTransaction(tx *Transaction) error {
	if tx == nil {
		return MissingRecordError{Record: "transaction"}
	}
	if !keys.Verify(
		tx.Source,
		SigningMessage(tx, v.config.MessageEncoding),
		tx.Signature,
	) {
		return InvalidSignatureError{Source: tx.Source}
	}
	if tx.Amount < 0 {
		return NegativeAmountError{Amount: tx.Amount}
	}
	return nil
}

func (v *Validator) validateBlock(block *Block) error {
	if block == nil {
		return MissingRecordError{Record: "block"}
	}
	for i := range block.Transactions {
		if err := v.validateTransaction(&block.Transactions[i]); err != nil {
			return InvalidTransactionError{Index: i, Err: err}
		}
	}
	if expected := block.CalculateHash(); block.Hash != expected {
		return BlockHashMismatchError{
			Expected: expected,
			Actual:   block.Hash,
		}
	}
	return nil
}

func (v *Validator) validateChain(chain *Chain) error {
	if chain == nil {
		return MissingRecordError{Record: "chain"}
	}
	blocks := chain.Blocks
	if len(blocks) == 0 {
		if v.config.RequireGenesis {
			return EmptyChainError{}
		}
		return nil
	}
	genesis := &blocks[0]
	if !genesis.IsGenesis() {
		return GenesisPreviousHashError{PreviousHash: *genesis.PreviousHash}
	}
	rest := blocks[1:]
	var blockErrs []error
	if v.config.Parallelism > 1 && len(rest) > 1 {
		blockErrs = v.validateBlocksParallel(rest)
	}
	prev := genesis
	for i := range rest {
		block := &rest[i]
		if block.PreviousHash == nil || *block.PreviousHash != prev.Hash {
			return ChainLinkError{
				Index:    i + 1,
				Expected: prev.Hash,
				Actual:   block.PreviousHash,
			}
		}
		var err error
		if blockErrs != nil {
			err = blockErrs[i]
		} else {
			err = v.validateBlock(block)
		}
		if err != nil {
			return InvalidBlockError{Index: i + 1, Err: err}
		}
		prev = block
	}
	return nil
}

// validateBlocksParallel validates every block and returns the per-block
// results in order, so the caller reports the same first failure as a
// sequential walk would
func (v *Validator) validateBlocksParallel(blocks []Block) []error {
	errs := make([]error, len(blocks))
	var g errgroup.Group
	g.SetLimit(v.config.Parallelism)
	for i := range blocks {
		g.Go(func() error {
			errs[i] = v.validateBlock(&blocks[i])
			return nil
		})
	}
	// Per-block results are collected in errs
	_ = g.Wait()
	return errs
}

// defaultValidator is built per call so that it follows later changes to slog.Default()
func defaultValidator() *Validator {
	return NewValidator()
}

// IsValidTransaction reports whether tx is valid with the default validator
func IsValidTransaction(tx *Transaction) bool {
	return defaultValidator().IsValidTransaction(tx)
}

// IsValidBlock reports whether block is valid with the default validator
func IsValidBlock(block *Block) bool {
	return defaultValidator().IsValidBlock(block)
}

// IsValidChain reports whether chain is valid with the default validator
func IsValidChain(chain *Chain) bool {
	return defaultValidator().IsValidChain(chain)
}

// ValidateTransaction validates tx with the default validator
func ValidateTransaction(tx *Transaction) error {
	return defaultValidator().ValidateTransaction(tx)
}

// ValidateBlock validates block with the default validator
func ValidateBlock(block *Block) error {
	return defaultValidator().ValidateBlock(block)
}

// ValidateChain validates chain with the default validator
func ValidateChain(chain *Chain) error {
	return defaultValidator().ValidateChain(chain)
}
