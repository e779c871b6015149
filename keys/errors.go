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

package keys

import (
	"errors"
)

// ErrInvalidKey is matched by every InvalidKeyError via errors.Is
var ErrInvalidKey = errors.New("invalid key")

// InvalidKeyError indicates a private key that is not a usable curve scalar
type InvalidKeyError struct {
	Reason string
	Err    error
}

func (e *InvalidKeyError) Error() string {
	if e.Err != nil {
		return "invalid key: " + e.Reason + ": " + e.Err.Error()
	}
	return "invalid key: " + e.Reason
}

func (e *InvalidKeyError) Unwrap() error { return e.Err }

func (*InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey
}
