// SPDX-License-Identifier: MIT
// Package: fhseg/edges
//
// metric.go - band aggregation strategies for multi-band weights.
//
// Contract:
//   • A Metric folds per-band differences into one non-negative weight:
//       acc = Accumulate(acc, a_k - b_k) for every band k, starting at 0,
//       weight = Finish(acc).
//   • Metrics are pure and stateless, so one value may be shared by
//     concurrent interior-sweep workers.
//   • NewMetric panics on nil functions; the table lookup (MetricByName)
//     returns ErrInvalidInput for unknown names.

package edges

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Metric aggregates per-band differences into a single dissimilarity.
type Metric struct {
	// Name identifies the metric in the strategy table and in logs.
	Name string
	// Accumulate folds one band difference into the running value.
	Accumulate func(acc, diff float64) float64
	// Finish maps the folded value to the final weight.
	Finish func(acc float64) float64
}

// NewMetric builds a Metric. Panics on nil functions or an empty name.
func NewMetric(name string, accumulate func(acc, diff float64) float64, finish func(acc float64) float64) Metric {
	if name == "" || accumulate == nil || finish == nil {
		panic("edges: NewMetric requires a name, Accumulate and Finish")
	}
	return Metric{Name: name, Accumulate: accumulate, Finish: finish}
}

// valid reports whether m can be used by a weigher.
func (m Metric) valid() bool {
	return m.Accumulate != nil && m.Finish != nil
}

// Euclidean is sqrt(Σ d²). Over Lab bands it is the CIE76 colour difference.
var Euclidean = NewMetric("euclidean",
	func(acc, d float64) float64 { return acc + d*d },
	math.Sqrt,
)

// Manhattan is Σ |d|.
var Manhattan = NewMetric("manhattan",
	func(acc, d float64) float64 { return acc + math.Abs(d) },
	identity,
)

// Chebyshev is max |d|.
var Chebyshev = NewMetric("chebyshev",
	func(acc, d float64) float64 { return math.Max(acc, math.Abs(d)) },
	identity,
)

func identity(v float64) float64 { return v }

// metrics is the strategy table consulted by MetricByName.
var metrics = map[string]Metric{
	Euclidean.Name: Euclidean,
	Manhattan.Name: Manhattan,
	Chebyshev.Name: Chebyshev,
}

// MetricByName resolves a metric from the built-in table (case-insensitive).
func MetricByName(name string) (Metric, error) {
	m, ok := metrics[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Metric{}, fmt.Errorf("%s(%q): known metrics are %v: %w", methodMetricName, name, MetricNames(), ErrInvalidInput)
	}
	return m, nil
}

// MetricNames lists the built-in metric names in sorted order.
func MetricNames() []string {
	names := make([]string, 0, len(metrics))
	for n := range metrics {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
