// Package telemetry concentra os coletores Prometheus expostos em /metrics.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Uploads conta cargas por conjunto de dados e formato de origem.
	Uploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "painel_uploads_total",
		Help: "Cargas de arquivo recebidas, por dataset e formato.",
	}, []string{"dataset", "formato"})

	// RowsParsed conta registros aceitos por carga.
	RowsParsed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "painel_rows_parsed_total",
		Help: "Registros tipados produzidos pelo parse, por dataset.",
	}, []string{"dataset"})

	// FetchFailures conta falhas de busca remota de planilhas.
	FetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "painel_sheet_fetch_failures_total",
		Help: "Falhas ao buscar exports remotos de planilha.",
	})

	// RequestDuration mede a latência por rota.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "painel_http_request_duration_seconds",
		Help:    "Duração das requisições HTTP.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)
