package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// RouteDecisionsTotal counts planner decisions by funding source.
	RouteDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "file_wallet_route_decisions_total",
			Help: "Number of route decisions, labeled by funding source.",
		},
		[]string{"source"},
	)

	// AssetTranslationsTotal counts raw records translated into assets.
	AssetTranslationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "file_wallet_asset_translations_total",
			Help: "Number of asset translations, labeled by token standard and asset type.",
		},
		[]string{"standard", "type"},
	)

	// ContainerParseFailuresTotal counts rejected container documents.
	ContainerParseFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "file_wallet_container_parse_failures_total",
			Help: "Number of container documents rejected during import.",
		},
	)
)

// MustRegisterMetrics registers all collectors with the default registry.
// Call once from the composition root.
func MustRegisterMetrics() {
	prometheus.MustRegister(
		RouteDecisionsTotal,
		AssetTranslationsTotal,
		ContainerParseFailuresTotal,
	)
}
