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

package digest

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/blinklabs-io/mojiledger/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaHexVectors(t *testing.T) {
	testDefs := []struct {
		input     string
		sha256Hex string
		sha512Hex string
	}{
		{
			input:     "abc",
			sha256Hex: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
			sha512Hex: "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
		},
		{
			input:     "",
			sha256Hex: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			sha512Hex: "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
		},
	}
	for _, testDef := range testDefs {
		assert.Equal(t, testDef.sha256Hex, Sha256Hex(testDef.input))
		assert.Equal(t, testDef.sha512Hex, Sha512Hex(testDef.input))
		assert.Equal(
			t,
			testDef.sha512Hex,
			Sha512HexBytes([]byte(testDef.input)),
		)
		sum := Sha512([]byte(testDef.input))
		assert.Equal(t, testDef.sha512Hex, hex.EncodeToString(sum[:]))
	}
}

func TestSha512HexLength(t *testing.T) {
	assert.Len(t, Sha512Hex("some public key"), Sha512HexLength)
}

func TestBlake2b256Hash(t *testing.T) {
	// Well-known Blake2b-256 digest of the empty input
	expected := "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"
	hash := Blake2b256Hash(nil)
	assert.Equal(t, expected, hash.String())
	assert.Len(t, hash.Bytes(), Blake2b256Size)
}

func TestBlake2b256Json(t *testing.T) {
	hash := Blake2b256Hash([]byte("block"))
	data, err := json.Marshal(hash)
	require.NoError(t, err)
	var decoded Blake2b256
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, hash, decoded)

	assert.Error(t, json.Unmarshal([]byte(`"abcd"`), &decoded))
}

func TestBlake2b256ZeroValueCbor(t *testing.T) {
	var hash Blake2b256
	data, err := hash.MarshalCBOR()
	require.NoError(t, err)
	var decoded []byte
	_, err = cbor.Decode(data, &decoded)
	require.NoError(t, err)
	assert.Len(t, decoded, Blake2b256Size)
}
