package analytics

import (
	"github.com/rafaelqg/painel-vendas/internal/models"
)

// CalculatePartnershipMetrics consolida os dias da parceria. O retorno médio
// é média aritmética simples sobre os dias, não ponderada por faturamento.
// Dia com lucro exatamente zero não conta como positivo nem negativo.
// Empate de melhor/pior dia: vence a data mais antiga.
func CalculatePartnershipMetrics(data []models.PartnershipDayRecord) models.PartnershipMetrics {
	var m models.PartnershipMetrics
	if len(data) == 0 {
		return m
	}

	var somaRetorno float64
	for _, d := range data {
		m.FatTotalGeral += d.FatTotal
		m.FatParceiroATotal += d.FatParceiroA
		m.FatParceiroBTotal += d.FatParceiroB
		m.GastoTrafegoTotal += d.GastoTrafego
		m.LucroLiquidoTotal += d.LucroLiquidoTotal
		m.LucroParceiroATotal += d.LucroLiqParceiroA
		m.LucroParceiroBTotal += d.LucroLiqParceiroB
		somaRetorno += d.RetornoPercentual

		switch {
		case d.LucroLiquidoTotal > 0:
			m.DiasPositivos++
		case d.LucroLiquidoTotal < 0:
			m.DiasNegativos++
		}
	}
	m.RetornoMedio = somaRetorno / float64(len(data))

	melhor, pior := data[0], data[0]
	for _, d := range data[1:] {
		if d.LucroLiquidoTotal > melhor.LucroLiquidoTotal ||
			(d.LucroLiquidoTotal == melhor.LucroLiquidoTotal && d.Data.Before(melhor.Data)) {
			melhor = d
		}
		if d.LucroLiquidoTotal < pior.LucroLiquidoTotal ||
			(d.LucroLiquidoTotal == pior.LucroLiquidoTotal && d.Data.Before(pior.Data)) {
			pior = d
		}
	}
	m.MelhorDia = models.DayValue{Data: melhor.Data, Valor: melhor.LucroLiquidoTotal}
	m.PiorDia = models.DayValue{Data: pior.Data, Valor: pior.LucroLiquidoTotal}
	return m
}

// PartnershipTimeSeries devolve a série diária para os gráficos, com a data
// formatada como dia/mês.
func PartnershipTimeSeries(data []models.PartnershipDayRecord) []models.PartnershipPoint {
	out := make([]models.PartnershipPoint, 0, len(data))
	for _, d := range data {
		out = append(out, models.PartnershipPoint{
			Date:         d.Data.Format("02/01"),
			FatTotal:     d.FatTotal,
			LucroLiquido: d.LucroLiquidoTotal,
			GastoTrafego: d.GastoTrafego,
		})
	}
	return out
}

// PartnerComparison compara o faturamento acumulado dos dois parceiros.
func PartnerComparison(data []models.PartnershipDayRecord) []models.NamedValue {
	var a, b float64
	for _, d := range data {
		a += d.FatParceiroA
		b += d.FatParceiroB
	}
	return []models.NamedValue{
		{Name: "Faturamento Parceiro A", Value: a},
		{Name: "Faturamento Parceiro B", Value: b},
	}
}

// ProfitComparison compara o lucro líquido acumulado dos dois parceiros.
func ProfitComparison(data []models.PartnershipDayRecord) []models.NamedValue {
	var a, b float64
	for _, d := range data {
		a += d.LucroLiqParceiroA
		b += d.LucroLiqParceiroB
	}
	return []models.NamedValue{
		{Name: "Lucro Parceiro A", Value: a},
		{Name: "Lucro Parceiro B", Value: b},
	}
}

// ROITimeSeries devolve o retorno percentual por dia.
func ROITimeSeries(data []models.PartnershipDayRecord) []models.ROIPoint {
	out := make([]models.ROIPoint, 0, len(data))
	for _, d := range data {
		out = append(out, models.ROIPoint{
			Date:    d.Data.Format("02/01"),
			Retorno: d.RetornoPercentual,
		})
	}
	return out
}
