// Package metrics defines the custom Prometheus metrics of the CMS API. HTTP
// request metrics come from the echoprometheus middleware; everything here is
// domain level.
//
// All metrics register on the default registry through promauto at package
// init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cms"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts register and login calls.
// Labels:
//   - action: "register" or "login"
//   - result: "success", "invalid", "duplicate" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of register and login attempts, by outcome.",
	},
	[]string{"action", "result"},
)

// TokenVerificationsTotal counts request-gate decisions.
// Label:
//   - result: "valid", "missing" or "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token checks on protected routes.",
	},
	[]string{"result"},
)

// AuthorizationDenialsTotal counts requests rejected by the role check.
// Labels:
//   - route: the route pattern, e.g. "/api/teams/:id"
//   - role: the caller's role
var AuthorizationDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denials_total",
		Help:      "Total number of authenticated requests denied for insufficient role.",
	},
	[]string{"route", "role"},
)

// ── Content metrics ───────────────────────────────────────────────────────────

// ContentMutationsTotal counts successful writes to the content collections.
// Labels:
//   - resource: "teams", "events", "staff", "leadership", "sponsors"
//   - op: "create", "update" or "delete"
var ContentMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_mutations_total",
		Help:      "Total number of content records created, updated or deleted.",
	},
	[]string{"resource", "op"},
)

// ApplicationsSubmittedTotal counts accepted hiring applications.
// Label:
//   - with_cv: "true" or "false"
var ApplicationsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of hiring applications stored.",
	},
	[]string{"with_cv"},
)

// UploadBytes observes the size of stored CV uploads.
var UploadBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upload_size_bytes",
		Help:      "Size of uploaded CV files.",
		Buckets:   prometheus.ExponentialBuckets(16<<10, 2, 9), // 16KiB .. 4MiB
	},
)

// ContactMessagesTotal counts contact form submissions that were stored.
var ContactMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact messages received.",
	},
)
