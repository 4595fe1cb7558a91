// Package metrics defines and registers all custom Prometheus metrics for
// the task board API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskboard"

// EntityWritesTotal counts successful entity mutations.
// Labels:
//   - entity: "board", "column", "card", "tag", "activity", "user"
//   - op: "create", "update", "delete"
var EntityWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_writes_total",
		Help:      "Total number of successful entity writes, by entity and operation.",
	},
	[]string{"entity", "op"},
)

// ErrorResponsesTotal counts error responses emitted by the error handler.
// Labels:
//   - error_type: "validation", "persistence", "base"
//   - code: the error code of the first reported item
var ErrorResponsesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "error_responses_total",
		Help:      "Total number of error responses, by error type and code.",
	},
	[]string{"error_type", "code"},
)

// SessionsStartedTotal counts sessions opened by login or registration.
var SessionsStartedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_started_total",
		Help:      "Total number of sessions opened by login or registration.",
	},
)

// SessionsEndedTotal counts sessions closed by logout.
var SessionsEndedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_ended_total",
		Help:      "Total number of sessions closed by logout.",
	},
)
