package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess    = "success"
	OutcomeNoDeposits = "no_deposits"
	OutcomeCooldown   = "cooldown"
	OutcomeLocked     = "locked"
	OutcomeSettings   = "settings"
	OutcomeError      = "error"
)

var (
	Claims = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dailymine",
			Name:      "mining_claims_total",
			Help:      "Daily profit claims by outcome",
		},
		[]string{"outcome"},
	)
	ProfitAmount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "dailymine",
			Name:      "mining_profit_amount",
			Help:      "Profit paid per successful claim",
			Buckets:   prometheus.ExponentialBuckets(0.01, 10, 8),
		},
	)
	DepositSync = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dailymine",
			Name:      "deposit_sync_total",
			Help:      "Deposits resolved against the gateway by resulting status",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(Claims)
	prometheus.MustRegister(ProfitAmount)
	prometheus.MustRegister(DepositSync)
}
