package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dynamic data source store metrics
var (
	DynamicDataSourceLoads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dynamic_data_source_loads_total",
		Help: "The total number of dynamic data source load operations",
	})

	DynamicDataSourceLoadErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dynamic_data_source_load_errors_total",
		Help: "The number of dynamic data source loads that failed with a storage or query error",
	})

	DynamicDataSourceConstraintViolations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dynamic_data_source_constraint_violations_total",
		Help: "The number of dynamic data source loads aborted because persisted data violated an invariant",
	})

	LastLoadedDynamicDataSources = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dynamic_data_source_last_loaded_count",
		Help: "The number of dynamic data sources returned by the most recent successful load",
	})
)
