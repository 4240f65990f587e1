// Package metrics exposes Prometheus counters for the main business
// events. Everything registers on the default registry; serve exposes
// it on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RegistrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cruiseship_registrations_total",
		Help: "Total number of successful registrations by role",
	}, []string{"role"})

	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cruiseship_logins_total",
		Help: "Total number of successful logins by method",
	}, []string{"method"})

	BookingsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cruiseship_bookings_created_total",
		Help: "Total number of bookings created by type",
	}, []string{"type"})

	ContactMessagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cruiseship_contact_messages_total",
		Help: "Total number of contact messages received",
	})
)
