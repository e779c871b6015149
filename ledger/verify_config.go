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
	"log/slog"
)

// VerifyConfig holds the validation settings of a Validator.
// The zero value validates sequentially with the compatible message encoding.
type VerifyConfig struct {
	// MessageEncoding selects the message transaction signatures cover
	MessageEncoding MessageEncoding
	// Parallelism bounds how many blocks of a chain are validated at once.
	// Values below 2 validate sequentially.
	Parallelism int
	// RequireGenesis rejects chains with no blocks. When false, an empty
	// chain is trivially valid.
	RequireGenesis bool
}

// ValidatorOptionFunc is a type that represents functions that modify the Validator config
type ValidatorOptionFunc func(*Validator)

// WithLogger specifies the logger to use. If none is provided, slog.Default() is used
func WithLogger(logger *slog.Logger) ValidatorOptionFunc {
	return func(v *Validator) {
		v.logger = logger
	}
}

// WithVerifyConfig replaces the whole validation config
func WithVerifyConfig(cfg VerifyConfig) ValidatorOptionFunc {
	return func(v *Validator) {
		v.config = cfg
	}
}

// WithMessageEncoding specifies the message encoding transaction signatures are checked against
func WithMessageEncoding(enc MessageEncoding) ValidatorOptionFunc {
	return func(v *Validator) {
		v.config.MessageEncoding = enc
	}
}

// WithParallelism specifies how many blocks of a chain may be validated concurrently
func WithParallelism(parallelism int) ValidatorOptionFunc {
	return func(v *Validator) {
		v.config.Parallelism = parallelism
	}
}

// WithRequireGenesis specifies whether an empty chain is rejected
func WithRequireGenesis(requireGenesis bool) ValidatorOptionFunc {
	return func(v *Validator) {
		v.config.RequireGenesis = requireGenesis
	}
}

// WithMetrics specifies the metrics to record validation outcomes in. Metrics are disabled by default
func WithMetrics(metrics *Metrics) ValidatorOptionFunc {
	return func(v *Validator) {
		v.metrics = metrics
	}
}
