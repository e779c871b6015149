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
	"strconv"
	"strings"
)

// MessageEncoding selects how transaction fields are joined into the message
// that is signed and verified
type MessageEncoding int

const (
	// MessageEncodingConcat joins source, recipient and amount with no
	// delimiter. Different field values can produce the same message, so a
	// signature for one triple may verify for another. It is the default for
	// compatibility with existing signed records.
	MessageEncodingConcat MessageEncoding = iota

	// MessageEncodingLengthPrefixed writes each field as <len>:<field>, so
	// every distinct triple produces a distinct message
	MessageEncodingLengthPrefixed
)

var messageEncodingNames = map[MessageEncoding]string{
	MessageEncodingConcat:         "concat",
	MessageEncodingLengthPrefixed: "length-prefixed",
}

func (e MessageEncoding) String() string {
	if name, ok := messageEncodingNames[e]; ok {
		return name
	}
	return fmt.Sprintf("MessageEncoding(%d)", int(e))
}

// ParseMessageEncoding returns the encoding with the given name
func ParseMessageEncoding(name string) (MessageEncoding, error) {
	for enc, encName := range messageEncodingNames {
		if name == encName {
			return enc, nil
		}
	}
	return 0, fmt.Errorf("unknown message encoding: %s", name)
}

// SigningMessage returns the message a transaction's signature covers
func SigningMessage(tx *Transaction, enc MessageEncoding) string {
	amount := strconv.FormatInt(tx.Amount, 10)
	switch enc {
	case MessageEncodingLengthPrefixed:
		var sb strings.Builder
		for _, field := range []string{tx.Source, tx.Recipient, amount} {
			sb.WriteString(strconv.Itoa(len(field)))
			sb.WriteByte(':')
			sb.WriteString(field)
			sb.WriteByte(',')
		}
		return sb.String()
	default:
		return tx.Source + tx.Recipient + amount
	}
}
