package analytics

import (
	"github.com/rafaelqg/painel-vendas/internal/models"
)

// CalculateMetaAdsMetrics consolida um conjunto de linhas do Meta Ads. Toda
// métrica derivada usa divisão protegida: denominador zero devolve 0.
func CalculateMetaAdsMetrics(data []models.AdMetricRecord) models.MetaAdsMetrics {
	var m models.MetaAdsMetrics
	for _, r := range data {
		m.TotalInvestido += r.ValorUsado
		m.TotalCompras += r.Compras
		m.TotalReceita += r.ValorConversaoCompra
		m.TotalAlcance += r.Alcance
		m.TotalImpressoes += r.Impressoes
		m.TotalCliques += r.CliquesTodos
	}

	if m.TotalInvestido > 0 {
		m.ROAS = m.TotalReceita / m.TotalInvestido
	}
	if m.TotalCompras > 0 {
		m.CustoMedioCompra = m.TotalInvestido / float64(m.TotalCompras)
	}
	if m.TotalAlcance > 0 {
		m.FrequenciaMedia = float64(m.TotalImpressoes) / float64(m.TotalAlcance)
	}
	if m.TotalCliques > 0 {
		m.CPCMedio = m.TotalInvestido / float64(m.TotalCliques)
		m.TaxaConversao = float64(m.TotalCompras) / float64(m.TotalCliques) * 100
	}
	if m.TotalImpressoes > 0 {
		m.CPMMedio = m.TotalInvestido / float64(m.TotalImpressoes) * 1000
		m.CTRMedio = float64(m.TotalCliques) / float64(m.TotalImpressoes) * 100
	}
	return m
}

// MetaAdsByGroup calcula as métricas consolidadas por valor distinto do campo
// extraído por keyFn (campanha, conjunto, idade, gênero...). A ordem de saída
// é a primeira ocorrência de cada valor.
func MetaAdsByGroup(data []models.AdMetricRecord, keyFn func(models.AdMetricRecord) string) []models.GroupMetrics {
	grouped := map[string][]models.AdMetricRecord{}
	var order []string
	for _, r := range data {
		key := keyFn(r)
		if _, ok := grouped[key]; !ok {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], r)
	}

	out := make([]models.GroupMetrics, 0, len(order))
	for _, k := range order {
		out = append(out, models.GroupMetrics{Nome: k, Metrics: CalculateMetaAdsMetrics(grouped[k])})
	}
	return out
}

// GroupField mapeia o nome de campo usado pela API para o seletor
// correspondente.
func GroupField(name string) (func(models.AdMetricRecord) string, bool) {
	switch name {
	case "campanha":
		return func(r models.AdMetricRecord) string { return r.NomeCampanha }, true
	case "conjunto":
		return func(r models.AdMetricRecord) string { return r.NomeConjuntoAnuncios }, true
	case "anuncio":
		return func(r models.AdMetricRecord) string { return r.NomeAnuncio }, true
	case "idade":
		return func(r models.AdMetricRecord) string { return r.Idade }, true
	case "genero":
		return func(r models.AdMetricRecord) string { return r.Genero }, true
	default:
		return nil, false
	}
}
