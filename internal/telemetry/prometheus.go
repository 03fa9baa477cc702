package telemetry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

var (
	mu               sync.Mutex
	counterMetricMap = map[string]prometheus.Counter{}
	gaugeMetricMap   = map[string]prometheus.Gauge{}
)

func getKey(metric string, labels map[string]string) string {
	eventMetricKey := metric
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		eventMetricKey += "/" + key + ":" + labels[key]
	}
	return eventMetricKey
}

// NewCounter returns the counter registered for metric and labels, registering it on first use
func NewCounter(metric string, labels map[string]string) prometheus.Counter {
	mu.Lock()
	defer mu.Unlock()

	metricKey := getKey(metric, labels)
	if _, ok := counterMetricMap[metricKey]; !ok {
		counterMetricMap[metricKey] = promauto.NewCounter(prometheus.CounterOpts{Name: metric, ConstLabels: labels})
	}
	return counterMetricMap[metricKey]
}

func NewGauge(metric string, labels map[string]string) prometheus.Gauge {
	mu.Lock()
	defer mu.Unlock()

	metricKey := getKey(metric, labels)
	if _, ok := gaugeMetricMap[metricKey]; !ok {
		gaugeMetricMap[metricKey] = promauto.NewGauge(prometheus.GaugeOpts{Name: metric, ConstLabels: labels})
	}
	return gaugeMetricMap[metricKey]
}

// Push sends every registered shelflife metric to the push gateway under job
func Push(gatewayURL, job string) error {
	mu.Lock()
	pusher := push.New(gatewayURL, job)
	for _, counter := range counterMetricMap {
		pusher = pusher.Collector(counter)
	}
	for _, gauge := range gaugeMetricMap {
		pusher = pusher.Collector(gauge)
	}
	mu.Unlock()

	if err := pusher.Add(); err != nil {
		return fmt.Errorf("error pushing metrics to [%s]: %w", gatewayURL, err)
	}
	return nil
}
