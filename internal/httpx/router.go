package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rafaelqg/painel-vendas/internal/analytics"
	"github.com/rafaelqg/painel-vendas/internal/ingest"
	"github.com/rafaelqg/painel-vendas/internal/parser"
	"github.com/rafaelqg/painel-vendas/internal/store"
	"github.com/rafaelqg/painel-vendas/internal/telemetry"
	"github.com/rafaelqg/painel-vendas/internal/utils"
)

const maxUploadSize = 64 << 20 // 64 MiB por arquivo

// NewRouter monta todas as rotas: uploads que substituem o conjunto carregado,
// relatórios recalculados a cada chamada e instrumentação.
func NewRouter(log *slog.Logger, st *store.MemoryStore, fetcher *ingest.Fetcher) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Handle("/metrics", promhttp.Handler())

	// Uploads. CSV no corpo; workbooks .xlsx são detectados pela assinatura.
	mux.Post("/upload/vendas", func(w http.ResponseWriter, r *http.Request) {
		rows, formato, ok := readUpload(w, r)
		if !ok {
			return
		}
		recs := parser.ParseSalesRows(rows)
		info := st.ReplaceSales(recs)
		telemetry.Uploads.WithLabelValues("vendas", formato).Inc()
		telemetry.RowsParsed.WithLabelValues("vendas").Add(float64(len(recs)))
		writeJSON(w, info)
	})

	mux.Post("/upload/meta-ads", func(w http.ResponseWriter, r *http.Request) {
		rows, formato, ok := readUpload(w, r)
		if !ok {
			return
		}
		recs := parser.ParseMetaAdsRows(rows)
		info := st.ReplaceAds(recs)
		telemetry.Uploads.WithLabelValues("meta-ads", formato).Inc()
		telemetry.RowsParsed.WithLabelValues("meta-ads").Add(float64(len(recs)))
		writeJSON(w, info)
	})

	mux.Post("/upload/parceria", func(w http.ResponseWriter, r *http.Request) {
		rows, formato, ok := readUpload(w, r)
		if !ok {
			return
		}
		recs := parser.ParsePartnershipRows(rows)
		info := st.ReplacePartnership(recs)
		telemetry.Uploads.WithLabelValues("parceria", formato).Inc()
		telemetry.RowsParsed.WithLabelValues("parceria").Add(float64(len(recs)))
		writeJSON(w, info)
	})

	// Recarga da parceria direto de uma URL de planilha publicada.
	mux.Post("/ingest/parceria", func(w http.ResponseWriter, r *http.Request) {
		sheetURL := r.URL.Query().Get("url")
		if sheetURL == "" {
			http.Error(w, "url obrigatória", 400)
			return
		}
		csv, err := fetcher.FetchSheet(r.Context(), sheetURL)
		if err != nil {
			telemetry.FetchFailures.Inc()
			http.Error(w, err.Error(), 502)
			return
		}
		recs := parser.ParsePartnership(csv)
		info := st.ReplacePartnership(recs)
		telemetry.Uploads.WithLabelValues("parceria", "sheet").Inc()
		telemetry.RowsParsed.WithLabelValues("parceria").Add(float64(len(recs)))
		writeJSON(w, info)
	})

	// Relatórios de vendas.
	mux.Get("/report/vendas", func(w http.ResponseWriter, r *http.Request) {
		data, _ := st.Sales()
		writeJSON(w, analytics.CalculateMetrics(data))
	})
	mux.Get("/report/vendas/serie", func(w http.ResponseWriter, r *http.Request) {
		data, _ := st.Sales()
		writeJSON(w, analytics.RevenueOverTime(data))
	})
	mux.Get("/report/produtos", func(w http.ResponseWriter, r *http.Request) {
		data, _ := st.Sales()
		writeJSON(w, analytics.ProductPerformance(data))
	})
	mux.Get("/report/afiliados", func(w http.ResponseWriter, r *http.Request) {
		data, _ := st.Sales()
		writeJSON(w, analytics.AffiliatePerformance(data))
	})
	mux.Get("/report/coprodutores", func(w http.ResponseWriter, r *http.Request) {
		data, _ := st.Sales()
		writeJSON(w, analytics.CoproducerPerformance(data))
	})
	mux.Get("/report/compradores", func(w http.ResponseWriter, r *http.Request) {
		data, _ := st.Sales()
		writeJSON(w, analytics.BuyerPerformance(data))
	})
	mux.Get("/report/status", func(w http.ResponseWriter, r *http.Request) {
		data, _ := st.Sales()
		writeJSON(w, analytics.StatusDistribution(data))
	})
	mux.Get("/report/pagamentos", func(w http.ResponseWriter, r *http.Request) {
		data, _ := st.Sales()
		writeJSON(w, analytics.PaymentMethodDistribution(data))
	})
	mux.Get("/report/tempo", func(w http.ResponseWriter, r *http.Request) {
		kind := analytics.ByDayOfWeek
		if r.URL.Query().Get("por") == "hora" {
			kind = analytics.ByHour
		}
		data, _ := st.Sales()
		writeJSON(w, analytics.TimeAnalysis(data, kind))
	})
	mux.Get("/report/fontes", func(w http.ResponseWriter, r *http.Request) {
		data, _ := st.Sales()
		writeJSON(w, analytics.TrafficSourceAnalysis(data))
	})
	mux.Get("/report/insights", func(w http.ResponseWriter, r *http.Request) {
		data, _ := st.Sales()
		writeJSON(w, analytics.GenerateInsights(data, analytics.CalculateMetrics(data)))
	})

	// Relatórios do Meta Ads.
	mux.Get("/report/meta-ads", func(w http.ResponseWriter, r *http.Request) {
		data, _ := st.Ads()
		writeJSON(w, analytics.CalculateMetaAdsMetrics(data))
	})
	mux.Get("/report/meta-ads/grupos", func(w http.ResponseWriter, r *http.Request) {
		keyFn, ok := analytics.GroupField(r.URL.Query().Get("campo"))
		if !ok {
			http.Error(w, "campo inválido (campanha|conjunto|anuncio|idade|genero)", 400)
			return
		}
		data, _ := st.Ads()
		writeJSON(w, analytics.MetaAdsByGroup(data, keyFn))
	})

	// Relatórios da parceria.
	mux.Get("/report/parceria", func(w http.ResponseWriter, r *http.Request) {
		data, _ := st.Partnership()
		writeJSON(w, analytics.CalculatePartnershipMetrics(data))
	})
	mux.Get("/report/parceria/serie", func(w http.ResponseWriter, r *http.Request) {
		data, _ := st.Partnership()
		writeJSON(w, analytics.PartnershipTimeSeries(data))
	})
	mux.Get("/report/parceria/comparativo", func(w http.ResponseWriter, r *http.Request) {
		data, _ := st.Partnership()
		writeJSON(w, map[string]any{
			"faturamento": analytics.PartnerComparison(data),
			"lucro":       analytics.ProfitComparison(data),
		})
	})
	mux.Get("/report/parceria/roi", func(w http.ResponseWriter, r *http.Request) {
		data, _ := st.Partnership()
		writeJSON(w, analytics.ROITimeSeries(data))
	})

	return mux
}

// readUpload lê o corpo e o tokeniza em linhas de células, aceitando CSV em
// texto ou workbook .xlsx (detectado pela assinatura do arquivo).
func readUpload(w http.ResponseWriter, r *http.Request) (rows [][]string, formato string, ok bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadSize))
	if err != nil {
		http.Error(w, "falha ao ler corpo", 400)
		return nil, "", false
	}
	if len(body) == 0 {
		http.Error(w, "corpo vazio", 400)
		return nil, "", false
	}
	if parser.IsXLSX(body) {
		rows, err = parser.RowsFromXLSX(bytes.NewReader(body))
		if err != nil {
			http.Error(w, err.Error(), 400)
			return nil, "", false
		}
		return rows, "xlsx", true
	}
	return parser.TextRows(string(body)), "csv", true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
