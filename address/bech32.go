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

package address

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Bech32 renders a valid address in bech32 form with the given human-readable
// part. This is a display encoding only; the hex form remains canonical.
func (s Scheme) Bech32(addr string, hrp string) (string, error) {
	if !s.IsValid(addr) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}
	addrBytes, err := hex.DecodeString(addr)
	if err != nil {
		return "", err
	}
	// Convert data to base32 and encode as bech32
	convData, err := bech32.ConvertBits(addrBytes, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("convert address to base32: %w", err)
	}
	encoded, err := bech32.Encode(hrp, convData)
	if err != nil {
		return "", fmt.Errorf("encode address as bech32: %w", err)
	}
	return encoded, nil
}

// FromBech32 decodes a bech32 rendered address back to its lowercase hex
// form. The decoded address must be valid for the scheme.
func (s Scheme) FromBech32(encoded string) (string, string, error) {
	hrp, data, err := bech32.Decode(encoded)
	if err != nil {
		return "", "", fmt.Errorf("decode bech32 address: %w", err)
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", "", fmt.Errorf("convert address from base32: %w", err)
	}
	addr := strings.ToLower(hex.EncodeToString(decoded))
	if !s.IsValid(addr) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}
	return hrp, addr, nil
}
