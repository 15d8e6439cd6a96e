package parser

import (
	"log/slog"
	"strings"

	"github.com/rafaelqg/painel-vendas/internal/models"
)

// Marcadores estruturais da planilha de parceria: repetições de cabeçalho,
// rótulos de seção e linhas de rodapé agregado.
func structuralMarker(first string) bool {
	return first == "" ||
		first == "DATA" ||
		first == "RESULTADO" ||
		first == "I" ||
		strings.Contains(first, "TOTAL")
}

// ParsePartnership converte o export CSV da planilha de parceria (layout fixo
// de 9 colunas). A decisão por linha sai como log de nível debug; com
// LOG_LEVEL=info o parse é silencioso.
func ParsePartnership(text string) []models.PartnershipDayRecord {
	return ParsePartnershipRows(TextRows(text))
}

// ParsePartnershipRows é a variante sobre linhas já tokenizadas (uploads
// XLSX). A primeira linha (cabeçalho) é descartada.
func ParsePartnershipRows(rows [][]string) []models.PartnershipDayRecord {
	if len(rows) < 2 {
		return nil
	}

	out := make([]models.PartnershipDayRecord, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		if len(cells) < 9 {
			slog.Debug("parceria: linha curta ignorada", slog.Int("linha", i+1), slog.Int("celulas", len(cells)))
			continue
		}
		if structuralMarker(cells[0]) {
			slog.Debug("parceria: marcador estrutural ignorado", slog.Int("linha", i+1), slog.String("celula", cells[0]))
			continue
		}

		rec := models.PartnershipDayRecord{
			Data:              ParseLongDatePT(cells[0]),
			FatParceiroA:      ParseCurrency(cells[1]),
			FatParceiroB:      ParseCurrency(cells[2]),
			FatTotal:          ParseCurrency(cells[3]),
			GastoTrafego:      ParseCurrency(cells[4]),
			LucroLiqParceiroA: ParseCurrency(cells[5]),
			LucroLiqParceiroB: ParseCurrency(cells[6]),
			LucroLiquidoTotal: ParseCurrency(cells[7]),
			RetornoPercentual: ParsePercentage(cells[8]),
		}

		// Faturamento total zerado ou imparseável é o sinal de que a linha
		// não é dado diário de verdade.
		if rec.FatTotal == 0 {
			slog.Debug("parceria: linha sem faturamento ignorada", slog.Int("linha", i+1))
			continue
		}

		slog.Debug("parceria: linha aceita", slog.Int("linha", i+1), slog.Float64("fatTotal", rec.FatTotal))
		out = append(out, rec)
	}
	return out
}
