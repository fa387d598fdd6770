package metrics

import (
	"math/big"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records wallet action outcomes and the last known vault balance
type Metrics struct {
	actions  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	balance  prometheus.Gauge
}

// New creates the collectors and registers them on reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "minidapp",
			Name:      "actions_total",
			Help:      "Wallet actions by name and outcome",
		}, []string{"action", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "minidapp",
			Name:      "action_duration_seconds",
			Help:      "Time spent in a wallet action, including confirmation wait",
			Buckets:   []float64{0.05, 0.25, 1, 5, 15, 30, 60, 120},
		}, []string{"action"}),
		balance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "minidapp",
			Name:      "vault_balance_eth",
			Help:      "Last vault balance read from the contract, in ETH",
		}),
	}
	reg.MustRegister(m.actions, m.duration, m.balance)
	return m
}

// ObserveAction counts one action with its outcome ("ok" or an error code)
func (m *Metrics) ObserveAction(action, outcome string, d time.Duration) {
	m.actions.WithLabelValues(action, outcome).Inc()
	m.duration.WithLabelValues(action).Observe(d.Seconds())
}

// SetBalance sets the balance gauge; float is fine for display only
func (m *Metrics) SetBalance(wei *big.Int) {
	if wei == nil {
		return
	}
	eth, _ := new(big.Float).Quo(new(big.Float).SetInt(wei), big.NewFloat(1e18)).Float64()
	m.balance.Set(eth)
}
