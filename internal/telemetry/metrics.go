package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	clicks         *prometheus.CounterVec
	ordersFinished *prometheus.CounterVec
	eventsResolved *prometheus.CounterVec
	questsFinished prometheus.Counter
	prestigeResets prometheus.Counter
	rateLimited    prometheus.Counter
	moneyEarned    *prometheus.CounterVec
	activePlayers  prometheus.Gauge
}

var (
	metricsOnce sync.Once
	metricsInst *metrics
)

// Metrics returns the process-wide engine metrics, registering them on first
// use.
func Metrics() *metrics {
	metricsOnce.Do(func() {
		metricsInst = &metrics{
			clicks: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "clickstudio",
				Name:      "clicks_total",
				Help:      "Clicks processed, partitioned by outcome.",
			}, []string{"outcome"}),
			ordersFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "clickstudio",
				Name:      "orders_finished_total",
				Help:      "Orders completed, partitioned by template.",
			}, []string{"template"}),
			eventsResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "clickstudio",
				Name:      "events_resolved_total",
				Help:      "Random events applied, partitioned by kind.",
			}, []string{"kind"}),
			questsFinished: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "clickstudio",
				Name:      "quests_finished_total",
				Help:      "Quests brought to their finale.",
			}),
			prestigeResets: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "clickstudio",
				Name:      "prestige_resets_total",
				Help:      "Prestige resets performed.",
			}),
			rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "clickstudio",
				Name:      "clicks_rate_limited_total",
				Help:      "Clicks rejected by the sliding-window limiter.",
			}),
			moneyEarned: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "clickstudio",
				Name:      "money_earned_total",
				Help:      "Currency credited to players, partitioned by source.",
			}, []string{"source"}),
			activePlayers: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: "clickstudio",
				Name:      "active_players",
				Help:      "Players stored in the repository.",
			}),
		}
		prometheus.MustRegister(
			metricsInst.clicks,
			metricsInst.ordersFinished,
			metricsInst.eventsResolved,
			metricsInst.questsFinished,
			metricsInst.prestigeResets,
			metricsInst.rateLimited,
			metricsInst.moneyEarned,
			metricsInst.activePlayers,
		)
	})
	return metricsInst
}

func (m *metrics) ObserveClick(outcome string) {
	if m == nil {
		return
	}
	m.clicks.WithLabelValues(outcome).Inc()
}

func (m *metrics) ObserveOrderFinished(template string) {
	if m == nil {
		return
	}
	m.ordersFinished.WithLabelValues(template).Inc()
}

func (m *metrics) ObserveEvent(kind string) {
	if m == nil {
		return
	}
	m.eventsResolved.WithLabelValues(kind).Inc()
}

func (m *metrics) ObserveQuestFinished() {
	if m == nil {
		return
	}
	m.questsFinished.Inc()
}

func (m *metrics) ObservePrestigeReset() {
	if m == nil {
		return
	}
	m.prestigeResets.Inc()
}

func (m *metrics) ObserveRateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}

func (m *metrics) ObserveMoneyEarned(source string, amount int64) {
	if m == nil || amount <= 0 {
		return
	}
	m.moneyEarned.WithLabelValues(source).Add(float64(amount))
}

func (m *metrics) SetActivePlayers(n int) {
	if m == nil {
		return
	}
	m.activePlayers.Set(float64(n))
}
