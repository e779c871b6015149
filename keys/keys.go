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

// Package keys implements key generation, message signing and signature
// verification over secp256k1.
//
// Keys, messages and signatures cross this package boundary as hex strings,
// which is the canonical wire representation of the ledger. Messages are
// digested with SHA-256 before signing, and signatures use the 64-byte compact
// r || s encoding in canonical low-S form.
package keys

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/blinklabs-io/mojiledger/digest"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

const (
	// PrivateKeySize is the size of a private key scalar in bytes
	PrivateKeySize = 32

	// PublicKeySize is the size of a compressed public key in bytes
	PublicKeySize = secp256k1.PubKeyBytesLenCompressed

	// SignatureSize is the size of a compact r || s signature in bytes
	SignatureSize = 64

	// maxKeyDraws bounds the redraw loop for out-of-range random scalars. The
	// chance of a single draw being invalid is about 2^-128.
	maxKeyDraws = 16
)

// KeyPair holds a private key and the public key derived from it
type KeyPair struct {
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
}

// CreatePrivateKey generates a random secp256k1 private key, returned as 64
// hex characters
func CreatePrivateKey() (string, error) {
	return CreatePrivateKeyFromReader(rand.Reader)
}

// CreatePrivateKeyFromReader generates a private key using the provided
// randomness source. Draws that are not a valid curve scalar are discarded.
// Read failures are returned as-is.
func CreatePrivateKeyFromReader(r io.Reader) (string, error) {
	var keyBytes [PrivateKeySize]byte
	for range maxKeyDraws {
		if _, err := io.ReadFull(r, keyBytes[:]); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		if _, err := parseScalar(keyBytes[:]); err == nil {
			return hex.EncodeToString(keyBytes[:]), nil
		}
	}
	return "", fmt.Errorf(
		"no valid private key after %d draws from randomness source",
		maxKeyDraws,
	)
}

// GetPublicKey derives the compressed public key for a hex private key,
// returned as 66 hex characters
func GetPublicKey(privateKey string) (string, error) {
	privKey, err := parsePrivateKey(privateKey)
	if err != nil {
		return "", err
	}
	defer privKey.Zero()
	return hex.EncodeToString(privKey.PubKey().SerializeCompressed()), nil
}

// CreateKeys returns a key pair for the provided private key. An empty private
// key generates a new one.
func CreateKeys(privateKey string) (KeyPair, error) {
	if privateKey == "" {
		var err error
		privateKey, err = CreatePrivateKey()
		if err != nil {
			return KeyPair{}, err
		}
	}
	publicKey, err := GetPublicKey(privateKey)
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{
		PrivateKey: privateKey,
		PublicKey:  publicKey,
	}, nil
}

// Sign signs the SHA-256 digest of message with privateKey and returns the
// hex compact signature
func Sign(privateKey string, message string) (string, error) {
	return SignBytes(privateKey, []byte(message))
}

// SignBytes is Sign for a message that is already bytes
func SignBytes(privateKey string, message []byte) (string, error) {
	privKey, err := parsePrivateKey(privateKey)
	if err != nil {
		return "", err
	}
	defer privKey.Zero()
	msgHash := digest.Sha256(message)
	// RFC6979 nonces make the signature deterministic for a given key and message
	sig := ecdsa.Sign(privKey, msgHash[:])
	r := sig.R()
	s := sig.S()
	var ret [SignatureSize]byte
	r.PutBytesUnchecked(ret[:32])
	s.PutBytesUnchecked(ret[32:])
	return hex.EncodeToString(ret[:]), nil
}

// Verify reports whether signature is a valid signature of message by
// publicKey. Malformed keys or signatures yield false.
func Verify(publicKey string, message string, signature string) bool {
	return VerifyBytes(publicKey, []byte(message), signature)
}

// VerifyBytes is Verify for a message that is already bytes
func VerifyBytes(publicKey string, message []byte, signature string) bool {
	pubKeyBytes, err := hex.DecodeString(publicKey)
	if err != nil {
		return false
	}
	pubKey, err := secp256k1.ParsePubKey(pubKeyBytes)
	if err != nil {
		return false
	}
	sig, err := parseSignature(signature)
	if err != nil {
		return false
	}
	msgHash := digest.Sha256(message)
	return sig.Verify(msgHash[:], pubKey)
}

// IsValidPublicKey reports whether publicKey is a hex encoded point on the curve
func IsValidPublicKey(publicKey string) bool {
	pubKeyBytes, err := hex.DecodeString(publicKey)
	if err != nil {
		return false
	}
	_, err = secp256k1.ParsePubKey(pubKeyBytes)
	return err == nil
}

func parsePrivateKey(privateKey string) (*secp256k1.PrivateKey, error) {
	keyBytes, err := hex.DecodeString(privateKey)
	if err != nil {
		return nil, &InvalidKeyError{Reason: "private key is not valid hex", Err: err}
	}
	scalar, err := parseScalar(keyBytes)
	if err != nil {
		return nil, err
	}
	return secp256k1.NewPrivateKey(scalar), nil
}

func parseScalar(keyBytes []byte) (*secp256k1.ModNScalar, error) {
	if len(keyBytes) != PrivateKeySize {
		return nil, &InvalidKeyError{
			Reason: fmt.Sprintf(
				"private key must be %d bytes, got %d",
				PrivateKeySize,
				len(keyBytes),
			),
		}
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(keyBytes); overflow {
		return nil, &InvalidKeyError{Reason: "private key is not less than the curve order"}
	}
	if scalar.IsZero() {
		return nil, &InvalidKeyError{Reason: "private key is zero"}
	}
	return &scalar, nil
}

func parseSignature(signature string) (*ecdsa.Signature, error) {
	sigBytes, err := hex.DecodeString(signature)
	if err != nil {
		return nil, err
	}
	if len(sigBytes) != SignatureSize {
		return nil, fmt.Errorf(
			"signature must be %d bytes, got %d",
			SignatureSize,
			len(sigBytes),
		)
	}
	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sigBytes[:32]); overflow || r.IsZero() {
		return nil, fmt.Errorf("signature R is out of range")
	}
	if overflow := s.SetByteSlice(sigBytes[32:]); overflow || s.IsZero() {
		return nil, fmt.Errorf("signature S is out of range")
	}
	// Only the low-S form is accepted so that signatures are not malleable
	if s.IsOverHalfOrder() {
		return nil, fmt.Errorf("signature S is not in canonical low form")
	}
	return ecdsa.NewSignature(&r, &s), nil
}
