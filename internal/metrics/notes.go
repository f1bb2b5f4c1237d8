package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTotalCreatedNotes   = "total_created_notes"
	NameTotalUpdatedNotes   = "total_updated_notes"
	NameTotalElidedUpdates  = "total_elided_updates"
	NameTotalDeletedNotes   = "total_deleted_notes"
	NameTotalSharedNotes    = "total_shared_notes"
	NameTotalSearchRequests = "total_search_requests"
)

var TotalCreatedNotes = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalCreatedNotes,
		Help:      "Total created notes",
		Namespace: Namespace,
	},
)

var TotalUpdatedNotes = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalUpdatedNotes,
		Help:      "Total note updates written to the store",
		Namespace: Namespace,
	},
)

var TotalElidedUpdates = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalElidedUpdates,
		Help:      "Total note updates elided as no-ops",
		Namespace: Namespace,
	},
)

var TotalDeletedNotes = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalDeletedNotes,
		Help:      "Total deleted notes",
		Namespace: Namespace,
	},
)

var TotalSharedNotes = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalSharedNotes,
		Help:      "Total note share operations",
		Namespace: Namespace,
	},
)

var TotalSearchRequests = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalSearchRequests,
		Help:      "Total search requests",
		Namespace: Namespace,
	},
)
