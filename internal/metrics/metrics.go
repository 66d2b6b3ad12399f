// Package metrics exposes the service's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ConfirmationsReceived counts accepted submissions by attendance answer.
	ConfirmationsReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rsvp_confirmations_received_total",
		Help: "RSVP submissions accepted, labeled by attendance answer.",
	}, []string{"attending"})

	// ConfirmationsDeleted counts admin deletions.
	ConfirmationsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rsvp_confirmations_deleted_total",
		Help: "RSVP records removed by an admin.",
	})
)
