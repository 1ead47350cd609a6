package metrics

// Config defines settings for metrics sinks.
type Config struct {
	// PrometheusEnabled turns the Prometheus sink and /metrics server on.
	PrometheusEnabled bool `json:"prometheus_enabled"`
	// PrometheusPort is the listen address of the metrics server, e.g.
	// ":9090".
	PrometheusPort string `json:"prometheus_port"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusPort == "" {
		c.PrometheusPort = ":9090"
	}
}
