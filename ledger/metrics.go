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
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "mojiledger"

	metricsResultValid   = "valid"
	metricsResultInvalid = "invalid"
)

// Metrics records validation outcomes
type Metrics struct {
	Validations *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

// NewMetrics creates validation metrics and registers them with reg. A nil
// registerer leaves the metrics unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "validations_total",
				Help:      "Number of validations performed, by record kind and result.",
			},
			[]string{"kind", "result"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "validation_duration_seconds",
				Help:      "Time spent validating a record, by record kind.",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"kind"},
		),
	}
	if reg == nil {
		return m, nil
	}
	// Reuse collectors that an earlier validator already registered
	if err := reg.Register(m.Validations); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if !errors.As(err, &alreadyRegistered) {
			return nil, err
		}
		existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		m.Validations = existing
	}
	if err := reg.Register(m.Duration); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if !errors.As(err, &alreadyRegistered) {
			return nil, err
		}
		existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
		if !ok {
			return nil, err
		}
		m.Duration = existing
	}
	return m, nil
}

func (m *Metrics) observe(kind ValidationErrorType, start time.Time, err error) {
	if m == nil {
		return
	}
	result := metricsResultValid
	if err != nil {
		result = metricsResultInvalid
	}
	m.Validations.WithLabelValues(string(kind), result).Inc()
	m.Duration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
}
