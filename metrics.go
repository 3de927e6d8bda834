package tracemem

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes the sample log and the current memory reading as
// Prometheus metrics.
type Collector struct {
	samples *prometheus.Desc
	last    *prometheus.Desc
	current *prometheus.Desc
}

// Verify interface compliance.
var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a Collector reading from the process-wide sample log.
func NewCollector() *Collector {
	return &Collector{
		samples: prometheus.NewDesc(
			"tracemem_log_samples",
			"Number of samples stored in the log.",
			nil, nil),
		last: prometheus.NewDesc(
			"tracemem_last_sample_bytes",
			"Memory reading of the most recent sample.",
			[]string{"label"}, nil),
		current: prometheus.NewDesc(
			"tracemem_resident_bytes",
			"Current memory reading of the process.",
			nil, nil),
	}
}

// Describe sends the metric descriptors to ch.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.samples
	ch <- c.last
	ch <- c.current
}

// Collect reads the sample log and the measurement source. Collecting never
// appends to the log.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	l := Logs()
	ch <- prometheus.MustNewConstMetric(c.samples, prometheus.GaugeValue, float64(l.Len()))
	if s, err := l.Get(-1); err == nil {
		ch <- prometheus.MustNewConstMetric(c.last, prometheus.GaugeValue, float64(s.Memory), s.Label)
	}
	ch <- prometheus.MustNewConstMetric(c.current, prometheus.GaugeValue, float64(Memory()))
}
