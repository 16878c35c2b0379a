package statusHandler

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const stringMetricLabel = "value"

// PrometheusStatusHandler will define the handler which will update prometheus metrics
type PrometheusStatusHandler struct {
	registry      *prometheus.Registry
	mutMetrics    sync.Mutex
	gauges        map[string]prometheus.Gauge
	stringMetrics map[string]*prometheus.GaugeVec
}

// NewPrometheusStatusHandler will return an instance of a PrometheusStatusHandler using its own registry
func NewPrometheusStatusHandler() *PrometheusStatusHandler {
	return &PrometheusStatusHandler{
		registry:      prometheus.NewRegistry(),
		gauges:        make(map[string]prometheus.Gauge),
		stringMetrics: make(map[string]*prometheus.GaugeVec),
	}
}

func (psh *PrometheusStatusHandler) gauge(key string) prometheus.Gauge {
	psh.mutMetrics.Lock()
	defer psh.mutMetrics.Unlock()

	g, ok := psh.gauges[key]
	if ok {
		return g
	}

	g = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: key,
		Help: key,
	})
	err := psh.registry.Register(g)
	if err != nil {
		log.Warn("cannot register prometheus metric", "metric", key, "error", err.Error())
	}
	psh.gauges[key] = g

	return g
}

// AddUint64 will add the value to the gauge of the provided key
func (psh *PrometheusStatusHandler) AddUint64(key string, value uint64) {
	psh.gauge(key).Add(float64(value))
}

// Increment will be used for incrementing the value for a key
func (psh *PrometheusStatusHandler) Increment(key string) {
	psh.gauge(key).Inc()
}

// Decrement will be used for decrementing the value for a key
func (psh *PrometheusStatusHandler) Decrement(key string) {
	psh.gauge(key).Dec()
}

// SetInt64Value method - will update the value for a key
func (psh *PrometheusStatusHandler) SetInt64Value(key string, value int64) {
	psh.gauge(key).Set(float64(value))
}

// SetUInt64Value method - will update the value for a key
func (psh *PrometheusStatusHandler) SetUInt64Value(key string, value uint64) {
	psh.gauge(key).Set(float64(value))
}

// SetStringValue exposes the string as the label of an info style metric
func (psh *PrometheusStatusHandler) SetStringValue(key string, value string) {
	psh.mutMetrics.Lock()
	defer psh.mutMetrics.Unlock()

	vec, ok := psh.stringMetrics[key]
	if !ok {
		vec = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: key,
			Help: key,
		}, []string{stringMetricLabel})
		err := psh.registry.Register(vec)
		if err != nil {
			log.Warn("cannot register prometheus metric", "metric", key, "error", err.Error())
		}
		psh.stringMetrics[key] = vec
	}

	vec.Reset()
	vec.WithLabelValues(value).Set(1)
}

// GetGauge returns the gauge registered for the provided key
func (psh *PrometheusStatusHandler) GetGauge(key string) (prometheus.Gauge, error) {
	psh.mutMetrics.Lock()
	defer psh.mutMetrics.Unlock()

	g, ok := psh.gauges[key]
	if !ok {
		return nil, ErrMetricNotFound
	}

	return g, nil
}

// Handler returns the http handler that serves the registered metrics
func (psh *PrometheusStatusHandler) Handler() http.Handler {
	return promhttp.HandlerFor(psh.registry, promhttp.HandlerOpts{})
}

// Close will unregister all the metrics
func (psh *PrometheusStatusHandler) Close() {
	psh.mutMetrics.Lock()
	defer psh.mutMetrics.Unlock()

	for key, g := range psh.gauges {
		psh.registry.Unregister(g)
		delete(psh.gauges, key)
	}
	for key, vec := range psh.stringMetrics {
		psh.registry.Unregister(vec)
		delete(psh.stringMetrics, key)
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (psh *PrometheusStatusHandler) IsInterfaceNil() bool {
	return psh == nil
}
