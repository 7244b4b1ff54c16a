package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
)

var (
	ticketsIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "partypass_tickets_issued_total",
			Help: "Total tickets issued per event",
		},
		[]string{"event_id"},
	)

	ticketsRedeemed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "partypass_tickets_redeemed_total",
			Help: "Total successful ticket redemptions per event",
		},
		[]string{"event_id"},
	)

	notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "partypass_notifications_total",
			Help: "Notification dispatch outcomes per channel",
		},
		[]string{"channel", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "partypass_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	rateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "partypass_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
)

func TrackTicketIssued(eventID string) {
	ticketsIssued.WithLabelValues(eventID).Inc()
}

func TrackTicketRedeemed(eventID string) {
	ticketsRedeemed.WithLabelValues(eventID).Inc()
}

// TrackNotification collapses failure reasons into a single "failed"
// label value to keep cardinality bounded.
func TrackNotification(channel string, outcome domain.Outcome) {
	tag := string(outcome)
	if outcome != domain.OutcomeSent &&
		outcome != domain.OutcomeNotConfigured &&
		outcome != domain.OutcomeMissingContact &&
		outcome != domain.OutcomeSkipped {
		tag = "failed"
	}
	notifications.WithLabelValues(channel, tag).Inc()
}

func TrackRequest(method, route, status string, elapsed time.Duration) {
	requestDuration.WithLabelValues(method, route, status).Observe(elapsed.Seconds())
}

func TrackRateLimited() {
	rateLimited.Inc()
}
