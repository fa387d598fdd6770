package metrics

import (
	"math/big"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveAction("deposit", "ok", time.Second)
	m.ObserveAction("deposit", "ok", time.Second)
	m.ObserveAction("withdraw", "invalid_amount", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.actions.WithLabelValues("deposit", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.actions.WithLabelValues("withdraw", "invalid_amount")))

	wei, _ := new(big.Int).SetString("1500000000000000000", 10)
	m.SetBalance(wei)
	assert.InDelta(t, 1.5, testutil.ToFloat64(m.balance), 1e-9)

	m.SetBalance(nil)
	assert.InDelta(t, 1.5, testutil.ToFloat64(m.balance), 1e-9)
}
