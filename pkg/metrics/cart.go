package metrics

import "github.com/prometheus/client_golang/prometheus"

// CartMetrics counts aggregate mutations by operation.
type CartMetrics struct {
	mutations *prometheus.CounterVec
}

// NewCartMetrics registers cart metrics on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations by operation.",
	}, []string{"op"})
	reg.MustRegister(mutations)
	return &CartMetrics{mutations: mutations}
}

// IncMutation counts one cart mutation.
func (c *CartMetrics) IncMutation(op string) {
	if c == nil || c.mutations == nil {
		return
	}
	c.mutations.WithLabelValues(normalizeLabel(op)).Inc()
}
