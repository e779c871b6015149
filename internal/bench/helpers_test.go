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

package bench

import (
	"testing"

	"github.com/blinklabs-io/mojiledger/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadChainFixture(t *testing.T) {
	for _, name := range ChainSizeNames() {
		t.Run(name, func(t *testing.T) {
			fixture, err := LoadChainFixture(name, ledger.MessageEncodingConcat)
			require.NoError(t, err)
			assert.Len(t, fixture.Chain.Blocks, fixture.Blocks+1)
			assert.Len(t, fixture.Chain.Tip().Transactions, fixture.TxsPerBlock)
			assert.NotEmpty(t, fixture.Cbor)
			assert.True(t, ledger.IsValidChain(fixture.Chain))
		})
	}
}

func TestLoadChainFixtureCaseInsensitive(t *testing.T) {
	fixture, err := LoadChainFixture("Small", ledger.MessageEncodingConcat)
	require.NoError(t, err)
	assert.Equal(t, 4, fixture.Blocks)
}

func TestLoadChainFixtureUnknown(t *testing.T) {
	_, err := LoadChainFixture("huge", ledger.MessageEncodingConcat)
	assert.ErrorContains(t, err, "unknown chain size: huge")
	assert.Panics(t, func() {
		MustLoadChainFixture("huge", ledger.MessageEncodingConcat)
	})
}

func TestLoadTxFixture(t *testing.T) {
	for _, enc := range MessageEncodings() {
		t.Run(enc.String(), func(t *testing.T) {
			fixture := MustLoadTxFixture(enc)
			assert.Equal(t, enc, fixture.Encoding)
			assert.True(
				t,
				ledger.NewValidator(ledger.WithMessageEncoding(enc)).
					IsValidTransaction(&fixture.Tx),
			)
			decoded, err := ledger.NewTransactionFromCbor(fixture.Cbor)
			require.NoError(t, err)
			assert.Equal(t, fixture.Tx.Signature, decoded.Signature)
		})
	}
}
