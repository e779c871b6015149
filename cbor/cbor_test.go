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

package cbor_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/blinklabs-io/mojiledger/cbor"
	"github.com/blinklabs-io/mojiledger/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	Name  string
	Count int64
	Ref   *string
}

func (r *testRecord) UnmarshalCBOR(data []byte) error {
	return r.UnmarshalCbor(data, r)
}

func TestEncodeStructAsArray(t *testing.T) {
	ref := "ab"
	data, err := cbor.Encode(&testRecord{Name: "moji", Count: 7, Ref: &ref})
	require.NoError(t, err)
	// [ "moji", 7, "ab" ]
	assert.Equal(t, "83646d6f6a6907626162", hex.EncodeToString(data))
}

func TestEncodeNilPointerAsNull(t *testing.T) {
	data, err := cbor.Encode(&testRecord{Name: "", Count: 0})
	require.NoError(t, err)
	assert.Equal(t, "836000f6", hex.EncodeToString(data))
}

func TestEncodeMapKeysSorted(t *testing.T) {
	a, err := cbor.Encode(map[string]int{"b": 2, "a": 1, "ccc": 3})
	require.NoError(t, err)
	b, err := cbor.Encode(map[string]int{"ccc": 3, "a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, "a36161016162026363636303", hex.EncodeToString(a))
}

func TestDecodeStoreCborKeepsOriginalBytes(t *testing.T) {
	ref := "ab"
	data, err := cbor.Encode(&testRecord{Name: "moji", Count: 7, Ref: &ref})
	require.NoError(t, err)

	var record testRecord
	n, err := cbor.Decode(data, &record)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.Equal(t, "moji", record.Name)
	assert.Equal(t, int64(7), record.Count)
	require.NotNil(t, record.Ref)
	assert.Equal(t, "ab", *record.Ref)
	assert.Equal(t, data, record.Cbor())

	// The stored bytes are a copy
	data[1] = 0x00
	assert.NotEqual(t, data, record.Cbor())
}

func TestDecodeStoreCborSetCbor(t *testing.T) {
	var d cbor.DecodeStoreCbor
	assert.Nil(t, d.Cbor())
	d.SetCbor([]byte{0x80})
	assert.Equal(t, []byte{0x80}, d.Cbor())
	d.SetCbor(nil)
	assert.Nil(t, d.Cbor())
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	// Four elements for a three field record
	data := test.DecodeHexString("84646d6f6a6907f601")
	var record testRecord
	_, err := cbor.Decode(data, &record)
	assert.Error(t, err)
}

func TestDecodeGenericRequiresStructPointer(t *testing.T) {
	var s string
	assert.Error(t, cbor.DecodeGeneric([]byte{0x80}, &s))
	assert.Error(t, cbor.DecodeGeneric([]byte{0x80}, testRecord{}))
}

func TestListLength(t *testing.T) {
	testDefs := []struct {
		cborHex string
		length  int
	}{
		{cborHex: "80", length: 0},
		{cborHex: "83010203", length: 3},
		{
			// 24 elements need a length byte after the type
			cborHex: "9818" + strings.Repeat("01", 24),
			length:  24,
		},
	}
	for _, testDef := range testDefs {
		data := test.DecodeHexString(testDef.cborHex)
		length, err := cbor.ListLength(data)
		require.NoError(t, err)
		assert.Equal(t, testDef.length, length, "cbor %s", testDef.cborHex)
	}
	_, err := cbor.ListLength(nil)
	assert.Error(t, err)
	_, err = cbor.ListLength([]byte{0x01})
	assert.Error(t, err)
}

func TestDump(t *testing.T) {
	ref := "ab"
	data, err := cbor.Encode(&testRecord{Name: "moji", Count: 7, Ref: &ref})
	require.NoError(t, err)
	out, err := cbor.Dump(data)
	require.NoError(t, err)
	expected := "[\n" +
		"  \"moji\" (text, length 4),\n" +
		"  0x7 (7),\n" +
		"  \"ab\" (text, length 2),\n" +
		"],\n"
	assert.Equal(t, expected, out)

	out, err = cbor.Dump(test.DecodeHexString("a2616101616280"))
	require.NoError(t, err)
	assert.Equal(
		t,
		"{\n  \"a\" =>\n    0x1 (1),\n  \"b\" =>\n    [\n    ],\n},\n",
		out,
	)

	out, err = cbor.Dump(test.DecodeHexString("82f64201ff"))
	require.NoError(t, err)
	assert.Equal(t, "[\n  null,\n  <bytes> (length 2),\n],\n", out)

	_, err = cbor.Dump([]byte{0x82, 0x01})
	assert.Error(t, err)
}
