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
	"github.com/blinklabs-io/mojiledger/digest"
	"github.com/blinklabs-io/mojiledger/keys"
)

// Transaction moves amount from the holder of the source public key to
// recipient. The signature covers SigningMessage of the other three fields,
// so any later change to them is detected by validation.
type Transaction struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	Source    string `json:"source"`
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
	Signature string `json:"signature"`
}

// NewTransaction builds a transaction from the holder of privateKey and signs it
func NewTransaction(
	privateKey string,
	recipient string,
	amount int64,
	enc MessageEncoding,
) (*Transaction, error) {
	source, err := keys.GetPublicKey(privateKey)
	if err != nil {
		return nil, err
	}
	tx := &Transaction{
		Source:    source,
		Recipient: recipient,
		Amount:    amount,
	}
	if err := tx.Sign(privateKey, enc); err != nil {
		return nil, err
	}
	return tx, nil
}

// NewTransactionFromCbor decodes a transaction and keeps its original CBOR
func NewTransactionFromCbor(data []byte) (*Transaction, error) {
	var tx Transaction
	if _, err := cbor.Decode(data, &tx); err != nil {
		return nil, fmt.Errorf("decode transaction CBOR: %w", err)
	}
	return &tx, nil
}

func (t *Transaction) UnmarshalCBOR(cborData []byte) error {
	return t.UnmarshalCbor(cborData, t)
}

// Sign replaces the signature with one by privateKey over the current fields
func (t *Transaction) Sign(privateKey string, enc MessageEncoding) error {
	sig, err := keys.Sign(privateKey, SigningMessage(t, enc))
	if err != nil {
		return err
	}
	t.Signature = sig
	// Any stored encoding no longer matches the record
	t.SetCbor(nil)
	return nil
}

// Encode returns the CBOR the transaction was decoded from, or a fresh
// encoding when it was built locally
func (t *Transaction) Encode() ([]byte, error) {
	if stored := t.Cbor(); len(stored) > 0 {
		return stored, nil
	}
	return cbor.Encode(t)
}

// Id returns the Blake2b-256 content identifier of the transaction's CBOR
func (t *Transaction) Id() digest.Blake2b256 {
	data, err := t.Encode()
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error encoding transaction to CBOR: %s", err),
		)
	}
	return digest.Blake2b256Hash(data)
}
