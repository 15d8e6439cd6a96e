package analytics

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/rafaelqg/painel-vendas/internal/models"
)

func venda(produto string, liquido, total float64, status models.SaleStatus) models.SalesRecord {
	return models.SalesRecord{
		Status:            status,
		Produto:           produto,
		ValorLiquido:      liquido,
		TotalComAcrescimo: total,
		DataCriacao:       time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestCalculateMetrics(t *testing.T) {
	data := []models.SalesRecord{
		venda("Curso X", 89.90, 97.00, models.StatusPaid),
		venda("Curso X", 89.90, 97.00, models.StatusPaid),
		venda("Curso X", 89.90, 97.00, models.StatusRefunded),
		venda("Curso X", 0, 0, models.StatusWaitingPayment),
	}
	m := CalculateMetrics(data)

	if m.TotalPedidos != 4 || m.TotalVendas != 2 {
		t.Fatalf("pedidos/vendas = %d/%d", m.TotalPedidos, m.TotalVendas)
	}
	if m.ReceitaBruta != 194.00 {
		t.Errorf("receitaBruta = %v", m.ReceitaBruta)
	}
	if m.ReceitaLiquida != 179.80 {
		t.Errorf("receitaLiquida = %v", m.ReceitaLiquida)
	}
	if m.TicketMedio != 97.00 {
		t.Errorf("ticketMedio = %v", m.TicketMedio)
	}
	if m.TotalReembolsosQtd != 1 || m.TotalReembolsos != 97.00 {
		t.Errorf("reembolsos = %d / %v", m.TotalReembolsosQtd, m.TotalReembolsos)
	}
	if m.PercentualReembolsos != 25 {
		t.Errorf("percentualReembolsos = %v", m.PercentualReembolsos)
	}
	if m.TaxaConversao != 50 {
		t.Errorf("taxaConversao = %v", m.TaxaConversao)
	}
}

// O total de taxas é reconciliação: bruta menos líquida menos comissões de
// coprodutores, sempre.
func TestCalculateMetricsFeeIdentity(t *testing.T) {
	data := []models.SalesRecord{
		{Status: models.StatusPaid, Produto: "A", ValorLiquido: 70, TotalComAcrescimo: 100,
			NomesCoprodutores: "Ana", ComissoesCoprodutores: "15,00"},
		{Status: models.StatusPaid, Produto: "B", ValorLiquido: 50, TotalComAcrescimo: 60},
	}
	m := CalculateMetrics(data)

	want := m.ReceitaBruta - (m.ReceitaLiquida + m.TotalComissoesCoprodutores)
	if math.Abs(m.TotalTaxas-want) > 1e-9 {
		t.Fatalf("totalTaxas = %v, want %v", m.TotalTaxas, want)
	}
	if m.TotalTaxas != 25 {
		t.Fatalf("totalTaxas = %v, want 25", m.TotalTaxas)
	}
	if m.ReceitaLiquidaTotal != 135 {
		t.Fatalf("receitaLiquidaTotal = %v", m.ReceitaLiquidaTotal)
	}
}

func TestCalculateMetricsEmpty(t *testing.T) {
	m := CalculateMetrics(nil)
	if m != (models.SalesMetrics{}) {
		t.Fatalf("métricas de conjunto vazio deveriam ser zero: %+v", m)
	}
}

func TestCoproducerPairs(t *testing.T) {
	got := CoproducerPairs("Ana;Beto", "10,00;5,00")
	want := []models.Coproducer{{Nome: "Ana", Comissao: 10}, {Nome: "Beto", Comissao: 5}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("pares = %#v, want %#v", got, want)
	}
}

func TestCoproducerPairsMismatchedLengths(t *testing.T) {
	// Comissão ausente vira 0; comissão sobrando é descartada.
	got := CoproducerPairs("Ana;Beto;Caio", "10,00")
	want := []models.Coproducer{
		{Nome: "Ana", Comissao: 10},
		{Nome: "Beto", Comissao: 0},
		{Nome: "Caio", Comissao: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("pares = %#v, want %#v", got, want)
	}

	if got := CoproducerPairs("", "10,00;5,00"); got != nil {
		t.Fatalf("sem nomes deveria devolver nil, veio %#v", got)
	}
}

func TestCoproducerPerformance(t *testing.T) {
	data := []models.SalesRecord{
		{Status: models.StatusPaid, Produto: "A", TotalComAcrescimo: 100,
			NomesCoprodutores: "Ana;Beto", ComissoesCoprodutores: "10,00;5,00"},
	}
	got := CoproducerPerformance(data)
	if len(got) != 2 {
		t.Fatalf("esperava 2 coprodutores, veio %d", len(got))
	}
	if got[0].Nome != "Ana" || got[0].Comissao != 10 || got[0].Vendas != 1 {
		t.Errorf("ana = %+v", got[0])
	}
	if got[1].Nome != "Beto" || got[1].Comissao != 5 || got[1].Vendas != 1 {
		t.Errorf("beto = %+v", got[1])
	}
	if got[0].Participacao != 10 || got[1].Participacao != 5 {
		t.Errorf("participação = %v / %v", got[0].Participacao, got[1].Participacao)
	}
}

func TestProductPerformance(t *testing.T) {
	data := []models.SalesRecord{
		venda("Curso X", 80, 100, models.StatusPaid),
		venda("Curso X", 80, 100, models.StatusPaid),
		venda("Ebook", 10, 12, models.StatusPaid),
		venda("Curso X", 80, 100, models.StatusCanceled),
		venda("Mentoria", 500, 600, models.StatusRefunded),
	}
	got := ProductPerformance(data)

	// Mentoria só tem reembolso; não aparece.
	if len(got) != 2 {
		t.Fatalf("esperava 2 produtos, veio %d: %+v", len(got), got)
	}
	if got[0].Produto != "Curso X" || got[0].Vendas != 2 || got[0].Receita != 200 {
		t.Errorf("curso = %+v", got[0])
	}
	if got[0].Reembolsos != 1 {
		t.Errorf("reembolsos do curso = %d", got[0].Reembolsos)
	}
	if got[0].TicketMedio != 100 {
		t.Errorf("ticket do curso = %v", got[0].TicketMedio)
	}
	if got[1].Produto != "Ebook" {
		t.Errorf("ordenação por receita errada: %+v", got)
	}
}

func TestBuyerPerformance(t *testing.T) {
	d1 := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC)
	data := []models.SalesRecord{
		{Status: models.StatusPaid, Produto: "A", Cliente: "João Silva", Email: "j@x.com",
			ValorLiquido: 80, TotalComAcrescimo: 100, DataCriacao: d2},
		{Status: models.StatusPaid, Produto: "A", Cliente: "João Silva", Email: "j@x.com",
			ValorLiquido: 80, TotalComAcrescimo: 100, DataCriacao: d1},
		{Status: models.StatusPaid, Produto: "B", Cliente: "João Silva", Email: "j@x.com",
			ValorLiquido: 10, TotalComAcrescimo: 12, DataCriacao: d1},
	}
	got := BuyerPerformance(data)
	if len(got) != 1 {
		t.Fatalf("esperava 1 comprador, veio %d", len(got))
	}
	b := got[0]
	if b.PrimeiroNome != "João" || b.Sobrenome != "Silva" {
		t.Errorf("nome = %q / %q", b.PrimeiroNome, b.Sobrenome)
	}
	if b.TotalCompras != 3 || b.ReceitaTotal != 212 {
		t.Errorf("compras/receita = %d / %v", b.TotalCompras, b.ReceitaTotal)
	}
	if !reflect.DeepEqual(b.Produtos, []string{"A", "B"}) {
		t.Errorf("produtos = %#v", b.Produtos)
	}
	if !b.UltimaCompra.Equal(d2) {
		t.Errorf("ultimaCompra = %v", b.UltimaCompra)
	}
}

func TestRevenueOverTime(t *testing.T) {
	data := []models.SalesRecord{
		{Status: models.StatusPaid, TotalComAcrescimo: 100,
			DataCriacao: time.Date(2024, time.March, 2, 23, 0, 0, 0, time.UTC)},
		{Status: models.StatusPaid, TotalComAcrescimo: 50,
			DataCriacao: time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)},
		{Status: models.StatusPaid, TotalComAcrescimo: 25,
			DataCriacao: time.Date(2024, time.March, 1, 20, 0, 0, 0, time.UTC)},
	}
	got := RevenueOverTime(data)
	want := []models.RevenuePoint{
		{Date: "2024-03-01", Value: 75},
		{Date: "2024-03-02", Value: 100},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("série = %#v, want %#v", got, want)
	}
}

func TestTimeAnalysis(t *testing.T) {
	// 2024-03-03 é domingo; 2024-03-04 é segunda.
	data := []models.SalesRecord{
		{Status: models.StatusPaid, TotalComAcrescimo: 10,
			DataCriacao: time.Date(2024, time.March, 4, 15, 0, 0, 0, time.UTC)},
		{Status: models.StatusPaid, TotalComAcrescimo: 20,
			DataCriacao: time.Date(2024, time.March, 3, 9, 0, 0, 0, time.UTC)},
	}

	dias := TimeAnalysis(data, ByDayOfWeek)
	if len(dias) != 2 || dias[0].Periodo != "Domingo" || dias[1].Periodo != "Segunda" {
		t.Fatalf("dias = %+v", dias)
	}

	horas := TimeAnalysis(data, ByHour)
	if len(horas) != 2 || horas[0].Periodo != "9h" || horas[1].Periodo != "15h" {
		t.Fatalf("horas = %+v", horas)
	}
}

func TestTrafficSourceAnalysis(t *testing.T) {
	data := []models.SalesRecord{
		{Status: models.StatusPaid, TotalComAcrescimo: 100, TrackingSource: "facebook"},
		{Status: models.StatusPaid, TotalComAcrescimo: 50, TrackingSource: ""},
		{Status: models.StatusPaid, TotalComAcrescimo: 30, TrackingSource: "facebook"},
	}
	got := TrafficSourceAnalysis(data)
	if len(got) != 1 {
		t.Fatalf("venda sem utm_source deveria ser filtrada, veio %+v", got)
	}
	if got[0].Fonte != "facebook" || got[0].Vendas != 2 || got[0].Receita != 130 {
		t.Fatalf("fonte = %+v", got[0])
	}
}

func TestStatusDistribution(t *testing.T) {
	data := []models.SalesRecord{
		{Status: models.StatusPaid},
		{Status: models.StatusPaid},
		{Status: ""},
	}
	got := StatusDistribution(data)
	want := []models.DistributionSlice{{Name: "paid", Value: 2}, {Name: "unknown", Value: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("distribuição = %#v, want %#v", got, want)
	}
}

// As agregações são funções puras: duas execuções sobre a mesma entrada
// produzem resultados estruturalmente iguais.
func TestAggregationsAreDeterministic(t *testing.T) {
	data := []models.SalesRecord{
		venda("Curso X", 80, 100, models.StatusPaid),
		venda("Ebook", 10, 12, models.StatusPaid),
		venda("Curso X", 80, 100, models.StatusRefunded),
	}
	if !reflect.DeepEqual(CalculateMetrics(data), CalculateMetrics(data)) {
		t.Error("CalculateMetrics não é determinística")
	}
	if !reflect.DeepEqual(ProductPerformance(data), ProductPerformance(data)) {
		t.Error("ProductPerformance não é determinística")
	}
	if !reflect.DeepEqual(RevenueOverTime(data), RevenueOverTime(data)) {
		t.Error("RevenueOverTime não é determinística")
	}
}
