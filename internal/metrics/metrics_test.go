package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestClaimsCounter(t *testing.T) {
	before := testutil.ToFloat64(Claims.WithLabelValues(OutcomeCooldown))

	Claims.WithLabelValues(OutcomeCooldown).Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(Claims.WithLabelValues(OutcomeCooldown)))
}

func TestCollectorsRegistered(t *testing.T) {
	for _, c := range []prometheus.Collector{Claims, ProfitAmount, DepositSync} {
		err := prometheus.Register(c)
		var already prometheus.AlreadyRegisteredError
		assert.ErrorAs(t, err, &already)
	}
}
