package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTotalSignUps = "total_sign_ups"
	NameTotalLogIns  = "total_log_ins"
	NameTotalLogOuts = "total_log_outs"
)

var TotalSignUps = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalSignUps,
		Help:      "Total user registrations",
		Namespace: Namespace,
	},
)

var TotalLogIns = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalLogIns,
		Help:      "Total successful logins",
		Namespace: Namespace,
	},
)

var TotalLogOuts = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalLogOuts,
		Help:      "Total token revocations",
		Namespace: Namespace,
	},
)
