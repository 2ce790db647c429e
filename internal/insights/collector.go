package insights

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/foodloop/foodloop/internal/collections"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Collector exports marketplace gauges: the entity count of every registered
// collection and the current value of each impact metric.
type Collector struct {
	db      *badger.DB
	metrics *collections.Store[*collections.ImpactMetric]

	logger *zap.Logger

	entities *prometheus.Desc
	impact   *prometheus.Desc
}

func NewCollector(db *badger.DB, metrics *collections.Store[*collections.ImpactMetric], logger *zap.Logger) *Collector {
	return &Collector{
		db:      db,
		metrics: metrics,
		logger:  logger,
		entities: prometheus.NewDesc(
			"foodloop_collection_entities",
			"Number of entities currently stored in a collection.",
			[]string{"collection"},
			nil,
		),
		impact: prometheus.NewDesc(
			"foodloop_impact_metric_value",
			"Current value of an impact dashboard metric.",
			[]string{"metric", "unit"},
			nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entities
	ch <- c.impact
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, name := range collections.Names() {
		count, err := c.countPrefix(name + ":id:")
		if err != nil {
			c.logger.Warn("failed to count collection", zap.String("collection", name), zap.Error(err))
			continue
		}

		ch <- prometheus.MustNewConstMetric(c.entities, prometheus.GaugeValue, float64(count), name)
	}

	items, err := c.metrics.List(context.Background())
	if err != nil {
		c.logger.Warn("failed to list impact metrics", zap.Error(err))
		return
	}

	for _, metric := range items {
		if metric.MetricName == "" {
			continue
		}

		ch <- prometheus.MustNewConstMetric(
			c.impact,
			prometheus.GaugeValue,
			metric.MetricValue,
			metric.MetricName,
			metric.UnitOfMeasure,
		)
	}
}

func (c *Collector) countPrefix(prefix string) (int, error) {
	count := 0
	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			count++
		}

		return nil
	})

	return count, err
}

var _ prometheus.Collector = (*Collector)(nil)
