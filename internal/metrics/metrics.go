// Package metrics регистрирует счётчики Prometheus для HTTP API
// и живого канала консоли.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal — количество обработанных HTTP-запросов.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hosting_http_requests_total",
		Help: "Total number of handled HTTP requests.",
	}, []string{"method", "path"})

	// ConsoleConnectionsActive — количество открытых соединений живого канала.
	ConsoleConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hosting_console_connections_active",
		Help: "Number of currently open console channel connections.",
	})

	// ConsoleEventsTotal — количество событий console-log, отправленных клиентам.
	ConsoleEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hosting_console_events_total",
		Help: "Total number of console-log events emitted.",
	})
)
