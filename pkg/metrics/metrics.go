// Package metrics wires the arithmetic core's algorithm dispatch and
// operation latency into Prometheus collectors, following the
// teacher's (go.firedancer.io/radiance) direct dependency on
// github.com/prometheus/client_golang. The core packages
// (internal/mag, internal/algomul, pkg/bigint, ...) stay pure per
// spec.md §5 and never import this package; instrumentation is
// applied at the cmd/bignumctl boundary by wrapping calls into the
// core with the recorders below.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MulAlgo labels which multiplication algorithm spec.md §4.3's
// length-threshold dispatch selected.
type MulAlgo string

const (
	MulSchoolbook MulAlgo = "schoolbook"
	MulKaratsuba  MulAlgo = "karatsuba"
	MulToomCook   MulAlgo = "toom_cook"
)

// DivAlgo labels which division algorithm spec.md §4.2's dispatch
// selected.
type DivAlgo string

const (
	DivKnuth           DivAlgo = "knuth"
	DivBurnikelZiegler DivAlgo = "burnikel_ziegler"
)

// Registry bundles the collectors bignumctl registers against a
// prometheus.Registerer and exposes via promhttp.Handler.
type Registry struct {
	MulDispatch   *prometheus.CounterVec
	DivDispatch   *prometheus.CounterVec
	OpLatency     *prometheus.HistogramVec
	PrimeRounds   prometheus.Histogram
	PrimeFound    prometheus.Counter
	PrimeRejected prometheus.Counter
}

// NewRegistry builds a Registry with all collectors unregistered; call
// Register to attach them to a prometheus.Registerer.
func NewRegistry() *Registry {
	return &Registry{
		MulDispatch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bignum",
			Name:      "mul_dispatch_total",
			Help:      "Count of big-integer multiplications by algorithm bucket.",
		}, []string{"algo"}),
		DivDispatch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bignum",
			Name:      "div_dispatch_total",
			Help:      "Count of big-integer divisions by algorithm bucket.",
		}, []string{"algo"}),
		OpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bignum",
			Name:      "op_latency_seconds",
			Help:      "Latency of bignum operations by operation name (e.g. modpow, probableprime).",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 16),
		}, []string{"op"}),
		PrimeRounds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bignum",
			Name:      "prime_miller_rabin_rounds",
			Help:      "Miller-Rabin rounds spent per probablePrime call.",
			Buckets:   prometheus.LinearBuckets(1, 4, 16),
		}),
		PrimeFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bignum",
			Name:      "prime_candidates_found_total",
			Help:      "Count of candidates that passed probablePrime.",
		}),
		PrimeRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bignum",
			Name:      "prime_candidates_rejected_total",
			Help:      "Count of candidates rejected by trial division or a compositeness test.",
		}),
	}
}

// Register attaches every collector in r to reg.
func (r *Registry) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		r.MulDispatch, r.DivDispatch, r.OpLatency, r.PrimeRounds, r.PrimeFound, r.PrimeRejected,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// MulThresholdAlgo maps the operand word lengths spec.md §4.3 dispatches
// on to the algorithm bucket label that was selected, so a caller that
// already knows the thresholds can record a sample without
// re-implementing the dispatch rule.
func MulThresholdAlgo(xLen, yLen int) MulAlgo {
	minLen, maxLen := xLen, yLen
	if minLen > maxLen {
		minLen, maxLen = maxLen, minLen
	}
	switch {
	case minLen < 80:
		return MulSchoolbook
	case maxLen < 240:
		return MulKaratsuba
	default:
		return MulToomCook
	}
}

// DivThresholdAlgo mirrors spec.md §4.2's division dispatch rule.
func DivThresholdAlgo(dividendLen, divisorLen int) DivAlgo {
	if divisorLen < 80 || dividendLen-divisorLen < 40 {
		return DivKnuth
	}
	return DivBurnikelZiegler
}

// ObserveMul records one multiplication sample under the algorithm
// bucket implied by the two operands' word lengths.
func (r *Registry) ObserveMul(xLen, yLen int) {
	r.MulDispatch.WithLabelValues(string(MulThresholdAlgo(xLen, yLen))).Inc()
}

// ObserveDiv records one division sample under the algorithm bucket
// implied by the operands' word lengths.
func (r *Registry) ObserveDiv(dividendLen, divisorLen int) {
	r.DivDispatch.WithLabelValues(string(DivThresholdAlgo(dividendLen, divisorLen))).Inc()
}

// Timer returns a function that, when called, records the elapsed
// time since Timer was called under the op latency histogram for op.
// Usage: defer reg.Timer("modpow")().
func (r *Registry) Timer(op string) func() {
	start := time.Now()
	return func() {
		r.OpLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}
