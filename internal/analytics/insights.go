package analytics

import (
	"fmt"

	"github.com/rafaelqg/painel-vendas/internal/models"
)

// Limiares fixos das regras de insight. Os dois limiares de reembolso não são
// complementares: entre 5% e 10% nenhuma mensagem é emitida.
const (
	reembolsoAlto     = 10.0
	reembolsoBaixo    = 5.0
	ticketAlto        = 100.0
	vendasTopAfiliado = 10
	recompraAlta      = 20.0
	recompraBaixa     = 10.0
)

// GenerateInsights avalia a lista fixa de regras sobre as métricas já
// consolidadas. Conjunto vazio devolve lista vazia em vez de elogios
// calculados sobre zeros.
func GenerateInsights(data []models.SalesRecord, m models.SalesMetrics) []string {
	if len(data) == 0 {
		return nil
	}

	var insights []string

	if m.PercentualReembolsos > reembolsoAlto {
		insights = append(insights, fmt.Sprintf(
			"⚠️ Taxa de reembolso elevada (%.1f%%). Considere revisar a qualidade do produto ou as expectativas dos clientes.",
			m.PercentualReembolsos))
	} else if m.PercentualReembolsos < reembolsoBaixo {
		insights = append(insights, fmt.Sprintf(
			"✅ Excelente taxa de reembolso (%.1f%%). Os clientes estão satisfeitos com o produto.",
			m.PercentualReembolsos))
	}

	if m.TicketMedio > ticketAlto {
		insights = append(insights, fmt.Sprintf(
			"💰 Ticket médio alto (R$ %.2f). Oportunidade para estratégias de upsell.", m.TicketMedio))
	}

	if products := ProductPerformance(data); len(products) > 0 {
		insights = append(insights, fmt.Sprintf(
			"🏆 Produto mais lucrativo: %s (R$ %.2f)", products[0].Produto, products[0].Receita))
	}

	if affiliates := AffiliatePerformance(data); len(affiliates) > 0 && affiliates[0].Vendas > vendasTopAfiliado {
		insights = append(insights, fmt.Sprintf(
			"🎯 Top afiliado: %s com %d vendas", affiliates[0].Nome, affiliates[0].Vendas))
	}

	if coproducers := CoproducerPerformance(data); len(coproducers) > 0 && m.ReceitaBruta > 0 {
		var total float64
		for _, c := range coproducers {
			total += c.Comissao
		}
		insights = append(insights, fmt.Sprintf(
			"🤝 Coprodução representa %.1f%% da receita total", total/m.ReceitaBruta*100))
	}

	buyers := BuyerPerformance(data)
	if len(buyers) > 0 {
		var compras int
		for _, b := range buyers {
			compras += b.TotalCompras
		}
		recompra := float64(compras-len(buyers)) / float64(len(buyers)) * 100
		if recompra > recompraAlta {
			insights = append(insights, fmt.Sprintf(
				"🔄 Alta taxa de recompra (%.1f%%). Seus clientes estão voltando!", recompra))
		} else if recompra < recompraBaixa {
			insights = append(insights, fmt.Sprintf(
				"📈 Taxa de recompra baixa (%.1f%%). Considere estratégias de fidelização.", recompra))
		}
	}

	return insights
}
