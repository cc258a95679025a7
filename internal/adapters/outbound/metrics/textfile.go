package metrics

import (
	"fmt"
	"strconv"

	"github.com/layercheck/layercheck/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the gauges describing one check run. Each Collector owns
// its registry so runs never share state.
type Collector struct {
	registry   *prometheus.Registry
	edges      prometheus.Gauge
	targets    *prometheus.GaugeVec
	violations *prometheus.GaugeVec
	duration   prometheus.Gauge
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "layercheck_edges",
			Help: "Resolved dependency edges in the checked graph",
		}),
		targets: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "layercheck_targets",
				Help: "Targets in the checked graph by governance",
			},
			[]string{"governed"},
		),
		violations: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "layercheck_violations",
				Help: "Violations found per rule",
			},
			[]string{"rule"},
		),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "layercheck_duration_seconds",
			Help: "Wall time of the check run",
		}),
	}
	c.registry.MustRegister(c.edges, c.targets, c.violations, c.duration)
	return c
}

// Observe sets every gauge from result. Rules without violations report 0.
func (c *Collector) Observe(result *domain.CheckResult) {
	c.edges.Set(float64(result.Edges))
	c.targets.WithLabelValues(strconv.FormatBool(true)).Set(float64(result.Governed))
	c.targets.WithLabelValues(strconv.FormatBool(false)).Set(float64(result.Targets - result.Governed))

	for _, id := range result.Rules {
		c.violations.WithLabelValues(string(id)).Set(0)
	}
	for _, v := range result.Violations {
		c.violations.WithLabelValues(string(v.Rule)).Inc()
	}

	c.duration.Set(result.Duration.Seconds())
}

// Registry exposes the underlying registry for gathering.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// WriteTextfile writes result in the Prometheus text exposition format,
// suitable for the node_exporter textfile collector.
func WriteTextfile(path string, result *domain.CheckResult) error {
	c := NewCollector()
	c.Observe(result)
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
