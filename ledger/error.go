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
	"errors"
	"fmt"
)

// ValidationError represents a structured validation error with additional context
type ValidationError struct {
	Type    ValidationErrorType
	Message string
	Details map[string]any
	Cause   error
}

type ValidationErrorType string

const (
	ValidationErrorTypeTransaction ValidationErrorType = "transaction"
	ValidationErrorTypeBlock       ValidationErrorType = "block"
	ValidationErrorTypeChain       ValidationErrorType = "chain"
)

func (e ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e ValidationError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new structured validation error
func NewValidationError(
	errType ValidationErrorType,
	message string,
	details map[string]any,
	cause error,
) *ValidationError {
	return &ValidationError{
		Type:    errType,
		Message: message,
		Details: details,
		Cause:   cause,
	}
}

// Sentinel errors so callers can classify failures with errors.Is
var (
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidBlock       = errors.New("invalid block")
	ErrInvalidChain       = errors.New("invalid chain")
)

// MissingRecordError indicates a nil record was passed for validation
type MissingRecordError struct {
	Record string
}

func (e MissingRecordError) Error() string {
	return "missing " + e.Record
}

// InvalidSignatureError indicates a signature that does not verify against
// the source public key over the transaction's fields
type InvalidSignatureError struct {
	Source string
}

func (e InvalidSignatureError) Error() string {
	return fmt.Sprintf("signature does not verify for source %s", shortHex(e.Source))
}

func (InvalidSignatureError) Is(target error) bool {
	return target == ErrInvalidTransaction
}

// NegativeAmountError indicates a transaction with an amount below zero
type NegativeAmountError struct {
	Amount int64
}

func (e NegativeAmountError) Error() string {
	return fmt.Sprintf("negative amount: %d", e.Amount)
}

func (NegativeAmountError) Is(target error) bool {
	return target == ErrInvalidTransaction
}

// InvalidTransactionError indicates the transaction at Index of a block is invalid
type InvalidTransactionError struct {
	Index int
	Err   error
}

func (e InvalidTransactionError) Error() string {
	return fmt.Sprintf("transaction %d: %v", e.Index, e.Err)
}

func (e InvalidTransactionError) Unwrap() error { return e.Err }

func (InvalidTransactionError) Is(target error) bool {
	return target == ErrInvalidBlock
}

// BlockHashMismatchError indicates a claimed block hash that is not reproducible
// from the block's contents
type BlockHashMismatchError struct {
	Expected string
	Actual   string
}

func (e BlockHashMismatchError) Error() string {
	return fmt.Sprintf(
		"block hash mismatch: expected %s, got %s",
		shortHex(e.Expected),
		shortHex(e.Actual),
	)
}

func (BlockHashMismatchError) Is(target error) bool {
	return target == ErrInvalidBlock
}

// EmptyChainError indicates a chain with no genesis block where one is required
type EmptyChainError struct{}

func (EmptyChainError) Error() string {
	return "chain has no genesis block"
}

func (EmptyChainError) Is(target error) bool {
	return target == ErrInvalidChain
}

// GenesisPreviousHashError indicates a genesis block with a previous hash
type GenesisPreviousHashError struct {
	PreviousHash string
}

func (e GenesisPreviousHashError) Error() string {
	return fmt.Sprintf(
		"genesis block has previous hash %q",
		e.PreviousHash,
	)
}

func (GenesisPreviousHashError) Is(target error) bool {
	return target == ErrInvalidChain
}

// ChainLinkError indicates that the block at Index does not point at the hash
// of the block before it
type ChainLinkError struct {
	Index    int
	Expected string
	Actual   *string
}

func (e ChainLinkError) Error() string {
	actual := nullPreviousHash
	if e.Actual != nil {
		actual = shortHex(*e.Actual)
	}
	return fmt.Sprintf(
		"block %d previous hash mismatch: expected %s, got %s",
		e.Index,
		shortHex(e.Expected),
		actual,
	)
}

func (ChainLinkError) Is(target error) bool {
	return target == ErrInvalidChain
}

// InvalidBlockError indicates the block at Index of a chain is invalid
type InvalidBlockError struct {
	Index int
	Err   error
}

func (e InvalidBlockError) Error() string {
	return fmt.Sprintf("block %d: %v", e.Index, e.Err)
}

func (e InvalidBlockError) Unwrap() error { return e.Err }

func (InvalidBlockError) Is(target error) bool {
	return target == ErrInvalidChain
}

func shortHex(s string) string {
	if len(s) > 16 {
		return s[:16] + "..."
	}
	return s
}
