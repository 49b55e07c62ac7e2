package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "gosec", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "gosec", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	UploadsStored = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "gosec", Name: "uploads_stored_total", Help: "Number of media files stored by resource type."},
		[]string{"resource"},
	)
	UploadsDeleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "gosec", Name: "uploads_deleted_total", Help: "Number of media files deleted by resource type."},
		[]string{"resource"},
	)
	CollectionsSeeded = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "gosec", Name: "collections_seeded_total", Help: "Number of times a collection was seeded with default data."},
		[]string{"collection"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(UploadsStored)
	reg.MustRegister(UploadsDeleted)
	reg.MustRegister(CollectionsSeeded)
}
