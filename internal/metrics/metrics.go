package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

const namespace = "shubhvivah"

var (
	rpcRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "grpc_requests_total",
		Help:      "Total number of gRPC requests handled",
	}, []string{"method", "code"})

	rpcLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "grpc_request_duration_seconds",
		Help:      "Duration of gRPC requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	rpcInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "grpc_in_flight_requests",
		Help:      "Current number of in-flight gRPC requests",
	})

	decisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "swipe_decisions_total",
		Help:      "Committed swipe decisions by kind",
	}, []string{"kind"})

	rewinds = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "swipe_rewinds_total",
		Help:      "Decisions undone by rewind",
	})

	gestures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "swipe_gestures_total",
		Help:      "Released drag gestures by outcome",
	}, []string{"outcome"})

	fetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_fetches_total",
		Help:      "Candidate fetches by result",
	}, []string{"result"})

	fetchLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "provider_fetch_duration_seconds",
		Help:      "Duration of candidate fetches in seconds",
		Buckets:   prometheus.DefBuckets,
	})

	sessions = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "open_sessions",
		Help:      "Open sessions by kind",
	}, []string{"kind"})
)

// Decision counts a committed decision of the given kind.
func Decision(kind string) { decisions.WithLabelValues(kind).Inc() }

// Rewind counts an undone decision.
func Rewind() { rewinds.Inc() }

// Gesture counts a released drag; outcome is the decision kind or "snap_back".
func Gesture(outcome string) { gestures.WithLabelValues(outcome).Inc() }

// Fetch records one provider call.
func Fetch(result string, took time.Duration) {
	fetches.WithLabelValues(result).Inc()
	fetchLatency.Observe(took.Seconds())
}

// SessionOpened and SessionClosed track live deck and wizard sessions.
func SessionOpened(kind string) { sessions.WithLabelValues(kind).Inc() }

func SessionClosed(kind string) { sessions.WithLabelValues(kind).Dec() }

// UnaryServerInterceptor records request count, latency and in-flight requests.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		rpcInFlight.Inc()
		defer rpcInFlight.Dec()

		resp, err := handler(ctx, req)

		rpcRequests.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		rpcLatency.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		return resp, err
	}
}

// Handler exposes the default Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
