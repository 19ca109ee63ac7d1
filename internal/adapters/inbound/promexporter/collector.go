package promexporter

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/skillcoder/deploytime-exporter/internal/logic/deploytime"
)

const (
	deployTimestampName = "deploy_timestamp"
	deployTimestampHelp = "Deployment timestamp"
)

type snapshotter interface {
	Snapshot() []deploytime.DeployTimeMetric
}

type seriesKey struct {
	namespace string
	app       string
	imageSHA  string
}

// Collector exposes the last generation pass as the deploy_timestamp gauge,
// one series per namespace, app and image digest, valued in unix seconds.
type Collector struct {
	source snapshotter
	desc   *prometheus.Desc
}

// NewCollector creates a collector reading records from source on every scrape.
func NewCollector(source snapshotter) *Collector {
	return &Collector{
		source: source,
		desc: prometheus.NewDesc(
			deployTimestampName,
			deployTimestampHelp,
			[]string{"namespace", "app", "image_sha"},
			nil,
		),
	}
}

var _ prometheus.Collector = (*Collector)(nil)

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect emits one sample per label set. Records sharing a label set (two
// controllers of one app running the same image) keep the earliest deploy time.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	records := c.source.Snapshot()
	order := make([]seriesKey, 0, len(records))
	earliest := make(map[seriesKey]deploytime.DeployTimeMetric, len(records))

	for _, record := range records {
		key := seriesKey{namespace: record.Namespace, app: record.Name, imageSHA: record.ImageSHA}

		seen, ok := earliest[key]
		if !ok {
			order = append(order, key)
			earliest[key] = record

			continue
		}

		if record.DeployTime.Before(seen.DeployTime) {
			earliest[key] = record
		}
	}

	for _, key := range order {
		ch <- prometheus.MustNewConstMetric(
			c.desc,
			prometheus.GaugeValue,
			float64(earliest[key].DeployTime.Unix()),
			key.namespace,
			key.app,
			key.imageSHA,
		)
	}
}
