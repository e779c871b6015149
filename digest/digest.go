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

// Package digest wraps the hash functions used across the ledger core.
//
// SHA-512 hex digests are used for block hashes and address material, SHA-256
// is the pre-image step before signing, and Blake2b-256 provides the content
// identifiers handed to storage and transport collaborators.
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/mojiledger/cbor"
	"golang.org/x/crypto/blake2b"
)

const (
	Sha256Size     = sha256.Size
	Sha512Size     = sha512.Size
	Blake2b256Size = 32

	// Sha512HexLength is the length of a hex encoded SHA-512 digest
	Sha512HexLength = Sha512Size * 2
)

// Sha256 returns the SHA-256 digest of data
func Sha256(data []byte) [Sha256Size]byte {
	return sha256.Sum256(data)
}

// Sha512 returns the SHA-512 digest of data
func Sha512(data []byte) [Sha512Size]byte {
	return sha512.Sum512(data)
}

// Sha256HexBytes returns the lowercase hex SHA-256 digest of data
func Sha256HexBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Sha512HexBytes returns the lowercase hex SHA-512 digest of data
func Sha512HexBytes(data []byte) string {
	sum := sha512.Sum512(data)
	return hex.EncodeToString(sum[:])
}

// Sha256Hex returns the lowercase hex SHA-256 digest of the UTF-8 bytes of s
func Sha256Hex(s string) string {
	return Sha256HexBytes([]byte(s))
}

// Sha512Hex returns the lowercase hex SHA-512 digest of the UTF-8 bytes of s
func Sha512Hex(s string) string {
	return Sha512HexBytes([]byte(s))
}

type Blake2b256 [Blake2b256Size]byte

func NewBlake2b256(data []byte) Blake2b256 {
	b := Blake2b256{}
	copy(b[:], data)
	return b
}

func (b Blake2b256) String() string {
	return hex.EncodeToString(b[:])
}

func (b Blake2b256) Bytes() []byte {
	return b[:]
}

func (b Blake2b256) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *Blake2b256) UnmarshalJSON(data []byte) error {
	var tmp string
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	decoded, err := hex.DecodeString(tmp)
	if err != nil {
		return err
	}
	if len(decoded) != Blake2b256Size {
		return fmt.Errorf(
			"invalid Blake2b256 length: expected %d bytes, got %d",
			Blake2b256Size,
			len(decoded),
		)
	}
	copy(b[:], decoded)
	return nil
}

func (b Blake2b256) MarshalCBOR() ([]byte, error) {
	// Ensure we always encode a full-sized bytestring, even if the hash is zero-valued
	hashBytes := make([]byte, Blake2b256Size)
	copy(hashBytes, b[:])
	return cbor.Encode(hashBytes)
}

// Blake2b256Hash generates a Blake2b-256 hash from the provided data
func Blake2b256Hash(data []byte) Blake2b256 {
	return Blake2b256(blake2b.Sum256(data))
}
