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

// Package address derives the fixed-length hex addresses used to locate
// ledger entities in state.
//
// Every address is 70 hex characters: a 6-character namespace shared by the
// whole application, a 2-character prefix for the entity kind, and 62
// characters of SHA-512 material whose layout depends on the kind.
package address

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/blinklabs-io/mojiledger/digest"
)

const (
	// DefaultNamespace is the namespace used by DefaultScheme
	DefaultNamespace = "5f4d76"

	// Length is the length of every address in hex characters
	Length = 70

	NamespaceLength = 6
	PrefixLength    = NamespaceLength + 2

	ownerHashLength = 8
	datumHashLength = 54
	fullHashLength  = Length - PrefixLength
)

// ErrInvalidAddress is returned when an address is not well formed for a scheme
var ErrInvalidAddress = errors.New("invalid address")

// Kind identifies the entity an address points to
type Kind uint8

const (
	KindCollection Kind = iota
	KindItem
	KindListing
	KindOffer
)

var kindNames = map[Kind]string{
	KindCollection: "collection",
	KindItem:       "item",
	KindListing:    "listing",
	KindOffer:      "offer",
}

// Kinds returns every address kind in prefix order
func Kinds() []Kind {
	return []Kind{KindCollection, KindItem, KindListing, KindOffer}
}

// Prefix returns the 2 hex character prefix of the kind
func (k Kind) Prefix() string {
	return fmt.Sprintf("%02x", uint8(k))
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the kind with the given name
func ParseKind(name string) (Kind, error) {
	for kind, kindName := range kindNames {
		if strings.EqualFold(name, kindName) {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown address kind: %s", name)
}

// Scheme is the namespace configuration shared by all address derivations.
// It is an immutable value and may be copied freely.
type Scheme struct {
	namespace string
}

// DefaultScheme returns the scheme using DefaultNamespace
func DefaultScheme() Scheme {
	return Scheme{namespace: DefaultNamespace}
}

// NewScheme returns a scheme for the provided 6 hex character namespace
func NewScheme(namespace string) (Scheme, error) {
	if len(namespace) != NamespaceLength || !isHex(namespace) {
		return Scheme{}, fmt.Errorf(
			"namespace must be %d hex characters: %q",
			NamespaceLength,
			namespace,
		)
	}
	return Scheme{namespace: strings.ToLower(namespace)}, nil
}

// Namespace returns the namespace of the scheme
func (s Scheme) Namespace() string {
	return s.namespace
}

// Prefix returns the namespace followed by the kind prefix. All addresses of
// the given kind start with it.
func (s Scheme) Prefix(kind Kind) string {
	return s.namespace + kind.Prefix()
}

// Collection returns the collection address of the owner public key
func (s Scheme) Collection(publicKey string) string {
	return s.Prefix(KindCollection) + digest.Sha512Hex(publicKey)[:fullHashLength]
}

// Item returns the address of an item identified by datum and owned by ownerKey
func (s Scheme) Item(ownerKey string, datum string) string {
	return s.Prefix(KindItem) +
		digest.Sha512Hex(ownerKey)[:ownerHashLength] +
		digest.Sha512Hex(datum)[:datumHashLength]
}

// Listing returns the listing address of the owner public key
func (s Scheme) Listing(ownerKey string) string {
	return s.Prefix(KindListing) + digest.Sha512Hex(ownerKey)[:fullHashLength]
}

// Offer returns the address of an offer by ownerKey over the given item
// addresses. The item addresses are sorted before hashing so the result does
// not depend on their order; the provided slice is left untouched.
func (s Scheme) Offer(ownerKey string, itemAddresses ...string) string {
	sorted := slices.Clone(itemAddresses)
	slices.Sort(sorted)
	return s.Prefix(KindOffer) +
		digest.Sha512Hex(ownerKey)[:ownerHashLength] +
		digest.Sha512Hex(strings.Join(sorted, ""))[:datumHashLength]
}

// IsValid reports whether candidate is 70 hex characters starting with the
// scheme namespace. Case is ignored.
func (s Scheme) IsValid(candidate string) bool {
	if len(candidate) != Length {
		return false
	}
	if !strings.EqualFold(candidate[:NamespaceLength], s.namespace) {
		return false
	}
	return isHex(candidate)
}

// KindOf returns the kind of a valid address
func (s Scheme) KindOf(addr string) (Kind, error) {
	if !s.IsValid(addr) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}
	for _, kind := range Kinds() {
		if strings.EqualFold(addr[NamespaceLength:PrefixLength], kind.Prefix()) {
			return kind, nil
		}
	}
	return 0, fmt.Errorf(
		"%w: unknown kind prefix %s",
		ErrInvalidAddress,
		addr[NamespaceLength:PrefixLength],
	)
}

// GetCollectionAddress returns the collection address of publicKey using the default scheme
func GetCollectionAddress(publicKey string) string {
	return DefaultScheme().Collection(publicKey)
}

// GetItemAddress returns the item address using the default scheme
func GetItemAddress(ownerKey string, datum string) string {
	return DefaultScheme().Item(ownerKey, datum)
}

// GetListingAddress returns the listing address using the default scheme
func GetListingAddress(ownerKey string) string {
	return DefaultScheme().Listing(ownerKey)
}

// GetOfferAddress returns the offer address using the default scheme
func GetOfferAddress(ownerKey string, itemAddresses ...string) string {
	return DefaultScheme().Offer(ownerKey, itemAddresses...)
}

// IsValidAddress reports whether candidate is a well-formed address in the
// default scheme. Values that are not strings are never valid.
func IsValidAddress(candidate any) bool {
	str, ok := candidate.(string)
	if !ok {
		return false
	}
	return DefaultScheme().IsValid(str)
}

func isHex(s string) bool {
	for i := range len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
