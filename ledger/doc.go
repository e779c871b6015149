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

// Package ledger defines the transaction, block and chain records and
// validates them.
//
// A transaction is valid when its signature verifies for its source over its
// signing message and its amount is not negative. A block is valid when all of
// its transactions are valid and its hash is the SHA-512 of the previous hash,
// the concatenated transaction signatures and the nonce. A chain is valid when
// its genesis block has no previous hash and every later block is valid and
// links to the hash of the block before it.
//
// Validation never panics on malformed records; failures are returned as a
// *ValidationError whose cause identifies the first failing transaction or
// block.
package ledger
