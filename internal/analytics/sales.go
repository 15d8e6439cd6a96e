// Package analytics é o motor de agregação: funções puras sobre os registros
// já parseados. Nada aqui muta a entrada nem guarda estado entre chamadas;
// cada agregação refaz o fold do zero sobre o slice recebido.
package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rafaelqg/painel-vendas/internal/models"
	"github.com/rafaelqg/painel-vendas/internal/parser"
)

func paidOnly(data []models.SalesRecord) []models.SalesRecord {
	out := make([]models.SalesRecord, 0, len(data))
	for _, s := range data {
		if s.Status == models.StatusPaid {
			out = append(out, s)
		}
	}
	return out
}

// SplitCommissions quebra a lista de comissões separada por ponto e vírgula;
// valor imparseável degrada para 0.
func SplitCommissions(raw string) []float64 {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ";")
	out := make([]float64, len(parts))
	for i, p := range parts {
		out[i] = parser.ParseCurrency(p)
	}
	return out
}

func sumCommissions(raw string) float64 {
	var sum float64
	for _, c := range SplitCommissions(raw) {
		sum += c
	}
	return sum
}

// CoproducerPairs zipa as listas de nomes e comissões em pares explícitos.
// Comissão ausente para o N-ésimo nome vira 0; comissões além dos nomes são
// descartadas.
func CoproducerPairs(names, commissions string) []models.Coproducer {
	if names == "" {
		return nil
	}
	values := SplitCommissions(commissions)

	var out []models.Coproducer
	idx := 0
	for _, n := range strings.Split(names, ";") {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		c := 0.0
		if idx < len(values) {
			c = values[idx]
		}
		out = append(out, models.Coproducer{Nome: n, Comissao: c})
		idx++
	}
	return out
}

// CalculateMetrics consolida o conjunto inteiro de vendas. O total de taxas é
// uma reconciliação (bruta menos tudo que saiu de casa), não a soma da coluna
// de taxas do arquivo, que pode vir incompleta.
func CalculateMetrics(data []models.SalesRecord) models.SalesMetrics {
	var (
		m         models.SalesMetrics
		paidCount int
	)
	m.TotalPedidos = len(data)

	for _, s := range data {
		switch {
		case s.Status == models.StatusPaid:
			paidCount++
			m.ReceitaBruta += s.TotalComAcrescimo
			m.ReceitaLiquida += s.ValorLiquido
			m.TotalComissoes += s.ComissaoAfiliado
			m.TotalComissoesCoprodutores += sumCommissions(s.ComissoesCoprodutores)
		case s.Status.Refundable():
			m.TotalReembolsosQtd++
			m.TotalReembolsos += s.TotalComAcrescimo
		}
	}

	m.TotalVendas = paidCount
	m.ReceitaLiquidaTotal = m.ReceitaLiquida + m.TotalComissoesCoprodutores
	m.TotalTaxas = m.ReceitaBruta - m.ReceitaLiquidaTotal

	if paidCount > 0 {
		m.TicketMedio = m.ReceitaBruta / float64(paidCount)
	}
	if len(data) > 0 {
		m.PercentualReembolsos = float64(m.TotalReembolsosQtd) / float64(len(data)) * 100
		m.TaxaConversao = float64(paidCount) / float64(len(data)) * 100
	}
	return m
}

// RevenueOverTime agrupa as vendas pagas por dia-calendário (porção UTC da
// data de criação) e devolve a série em ordem cronológica.
func RevenueOverTime(data []models.SalesRecord) []models.RevenuePoint {
	grouped := map[string]float64{}
	for _, s := range paidOnly(data) {
		day := s.DataCriacao.UTC().Format("2006-01-02")
		grouped[day] += s.TotalComAcrescimo
	}

	out := make([]models.RevenuePoint, 0, len(grouped))
	for day, v := range grouped {
		out = append(out, models.RevenuePoint{Date: day, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// ProductPerformance agrupa vendas pagas por produto. Reembolsos são contados
// por varredura separada dos cancelados; produto que só tem reembolso e
// nenhuma venda paga não aparece.
func ProductPerformance(data []models.SalesRecord) []models.ProductPerformance {
	type acc struct {
		vendas    int
		receita   float64
		liquida   float64
		coprod    float64
		reembolso int
	}
	grouped := map[string]*acc{}
	var order []string

	for _, s := range paidOnly(data) {
		a, ok := grouped[s.Produto]
		if !ok {
			a = &acc{}
			grouped[s.Produto] = a
			order = append(order, s.Produto)
		}
		a.vendas++
		a.receita += s.TotalComAcrescimo
		a.liquida += s.ValorLiquido
		a.coprod += sumCommissions(s.ComissoesCoprodutores)
	}

	for _, s := range data {
		if s.Status.Refundable() {
			if a, ok := grouped[s.Produto]; ok {
				a.reembolso++
			}
		}
	}

	out := make([]models.ProductPerformance, 0, len(order))
	for _, produto := range order {
		a := grouped[produto]
		p := models.ProductPerformance{
			Produto:             produto,
			Vendas:              a.vendas,
			Receita:             a.receita,
			ReceitaLiquidaMinha: a.liquida,
			ReceitaLiquidaTotal: a.liquida + a.coprod,
			Reembolsos:          a.reembolso,
		}
		if a.vendas > 0 {
			p.TicketMedio = a.receita / float64(a.vendas)
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Receita > out[j].Receita })
	return out
}

// AffiliatePerformance agrupa vendas pagas com afiliado. Os três primeiros da
// ordenação por receita são os "top performers" do consumidor.
func AffiliatePerformance(data []models.SalesRecord) []models.AffiliatePerformance {
	grouped := map[string]*models.AffiliatePerformance{}
	var order []string

	for _, s := range paidOnly(data) {
		if s.NomeAfiliado == "" {
			continue
		}
		a, ok := grouped[s.NomeAfiliado]
		if !ok {
			a = &models.AffiliatePerformance{Nome: s.NomeAfiliado}
			grouped[s.NomeAfiliado] = a
			order = append(order, s.NomeAfiliado)
		}
		a.Vendas++
		a.Comissao += s.ComissaoAfiliado
		a.Receita += s.TotalComAcrescimo
	}

	out := make([]models.AffiliatePerformance, 0, len(order))
	for _, nome := range order {
		out = append(out, *grouped[nome])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Receita > out[j].Receita })
	return out
}

// CoproducerPerformance atribui, por índice posicional, cada comissão ao
// coprodutor de mesmo índice. Uma venda com três coprodutores soma 1 venda e a
// comissão própria em cada um dos três grupos; nada é dividido.
func CoproducerPerformance(data []models.SalesRecord) []models.CoproducerPerformance {
	var withCoprod []models.SalesRecord
	for _, s := range paidOnly(data) {
		if s.NomesCoprodutores != "" {
			withCoprod = append(withCoprod, s)
		}
	}

	var totalReceita float64
	for _, s := range withCoprod {
		totalReceita += s.TotalComAcrescimo
	}

	grouped := map[string]*models.CoproducerPerformance{}
	var order []string
	for _, s := range withCoprod {
		for _, p := range CoproducerPairs(s.NomesCoprodutores, s.ComissoesCoprodutores) {
			c, ok := grouped[p.Nome]
			if !ok {
				c = &models.CoproducerPerformance{Nome: p.Nome}
				grouped[p.Nome] = c
				order = append(order, p.Nome)
			}
			c.Vendas++
			c.Comissao += p.Comissao
		}
	}

	out := make([]models.CoproducerPerformance, 0, len(order))
	for _, nome := range order {
		c := *grouped[nome]
		if totalReceita > 0 {
			c.Participacao = c.Comissao / totalReceita * 100
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Comissao > out[j].Comissao })
	return out
}

// StatusDistribution conta todos os registros por status bruto.
func StatusDistribution(data []models.SalesRecord) []models.DistributionSlice {
	grouped := map[string]int{}
	var order []string
	for _, s := range data {
		key := string(s.Status)
		if key == "" {
			key = "unknown"
		}
		if _, ok := grouped[key]; !ok {
			order = append(order, key)
		}
		grouped[key]++
	}

	out := make([]models.DistributionSlice, 0, len(order))
	for _, k := range order {
		out = append(out, models.DistributionSlice{Name: k, Value: grouped[k]})
	}
	return out
}

// PaymentMethodDistribution conta as vendas pagas por forma de pagamento.
func PaymentMethodDistribution(data []models.SalesRecord) []models.DistributionSlice {
	grouped := map[string]int{}
	var order []string
	for _, s := range paidOnly(data) {
		key := s.Pagamento
		if key == "" {
			key = "Não informado"
		}
		if _, ok := grouped[key]; !ok {
			order = append(order, key)
		}
		grouped[key]++
	}

	out := make([]models.DistributionSlice, 0, len(order))
	for _, k := range order {
		out = append(out, models.DistributionSlice{Name: k, Value: grouped[k]})
	}
	return out
}

// BuyerPerformance agrupa vendas pagas por comprador (email, ou nome quando o
// email falta). Produtos são deduplicados preservando a primeira ocorrência;
// a última compra é o maior timestamp de criação visto.
func BuyerPerformance(data []models.SalesRecord) []models.BuyerPerformance {
	type acc struct {
		perf    models.BuyerPerformance
		liquida float64
		coprod  float64
		seen    map[string]struct{}
	}
	grouped := map[string]*acc{}
	var order []string

	for _, s := range paidOnly(data) {
		key := s.Email
		if key == "" {
			key = s.Cliente
		}
		a, ok := grouped[key]
		if !ok {
			first, last := splitName(s.Cliente)
			a = &acc{
				perf: models.BuyerPerformance{
					Nome:         s.Cliente,
					PrimeiroNome: first,
					Sobrenome:    last,
					Email:        s.Email,
					Telefone:     s.Telefone,
					UltimaCompra: s.DataCriacao,
				},
				seen: map[string]struct{}{},
			}
			grouped[key] = a
			order = append(order, key)
		}
		a.perf.TotalCompras++
		if _, dup := a.seen[s.Produto]; !dup {
			a.seen[s.Produto] = struct{}{}
			a.perf.Produtos = append(a.perf.Produtos, s.Produto)
		}
		a.perf.ReceitaTotal += s.TotalComAcrescimo
		a.liquida += s.ValorLiquido
		a.coprod += sumCommissions(s.ComissoesCoprodutores)
		if s.DataCriacao.After(a.perf.UltimaCompra) {
			a.perf.UltimaCompra = s.DataCriacao
		}
	}

	out := make([]models.BuyerPerformance, 0, len(order))
	for _, k := range order {
		a := grouped[k]
		a.perf.ReceitaLiquidaTotal = a.liquida + a.coprod
		out = append(out, a.perf)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ReceitaTotal > out[j].ReceitaTotal })
	return out
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// TimeBucketKind seleciona o eixo da análise temporal.
type TimeBucketKind string

const (
	ByDayOfWeek TimeBucketKind = "dayOfWeek"
	ByHour      TimeBucketKind = "hour"
)

// Domingo primeiro, como o dashboard exibe.
var diasSemana = [7]string{"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado"}

// TimeAnalysis agrupa vendas pagas por dia da semana ou por hora do dia.
// Dias saem na ordem canônica da semana; horas em ordem numérica.
func TimeAnalysis(data []models.SalesRecord, kind TimeBucketKind) []models.TimeBucket {
	grouped := map[string]*models.TimeBucket{}
	var order []string

	for _, s := range paidOnly(data) {
		var key string
		if kind == ByDayOfWeek {
			key = diasSemana[int(s.DataCriacao.UTC().Weekday())]
		} else {
			key = fmt.Sprintf("%dh", s.DataCriacao.UTC().Hour())
		}
		b, ok := grouped[key]
		if !ok {
			b = &models.TimeBucket{Periodo: key}
			grouped[key] = b
			order = append(order, key)
		}
		b.Vendas++
		b.Receita += s.TotalComAcrescimo
	}

	out := make([]models.TimeBucket, 0, len(order))
	for _, k := range order {
		out = append(out, *grouped[k])
	}

	if kind == ByDayOfWeek {
		pos := map[string]int{}
		for i, d := range diasSemana {
			pos[d] = i
		}
		sort.Slice(out, func(i, j int) bool { return pos[out[i].Periodo] < pos[out[j].Periodo] })
	} else {
		sort.Slice(out, func(i, j int) bool { return hourOf(out[i].Periodo) < hourOf(out[j].Periodo) })
	}
	return out
}

func hourOf(period string) int {
	n, _ := strconv.Atoi(strings.TrimSuffix(period, "h"))
	return n
}

// TrafficSourceAnalysis agrupa vendas pagas com utm_source preenchido.
func TrafficSourceAnalysis(data []models.SalesRecord) []models.TrafficSource {
	grouped := map[string]*models.TrafficSource{}
	var order []string

	for _, s := range paidOnly(data) {
		if s.TrackingSource == "" {
			continue
		}
		t, ok := grouped[s.TrackingSource]
		if !ok {
			t = &models.TrafficSource{Fonte: s.TrackingSource}
			grouped[s.TrackingSource] = t
			order = append(order, s.TrackingSource)
		}
		t.Vendas++
		t.Receita += s.TotalComAcrescimo
	}

	out := make([]models.TrafficSource, 0, len(order))
	for _, k := range order {
		out = append(out, *grouped[k])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Receita > out[j].Receita })
	return out
}
