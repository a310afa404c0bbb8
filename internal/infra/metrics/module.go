package metrics

import (
	"cleanrecord/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Module provides one registry, exposed for registration and for scraping, and
// the Collector as service.MetricsRecorder. Both binaries install it.
//
//nolint:gochecknoglobals
var Module = fx.Provide(
	fx.Annotate(
		NewRegistry,
		fx.As(new(prometheus.Registerer)),
		fx.As(new(prometheus.Gatherer)),
	),
	fx.Annotate(
		NewCollector,
		fx.As(new(service.MetricsRecorder)),
	),
)
