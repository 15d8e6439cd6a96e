// relatorio parseia exports locais (vendas, Meta Ads, parceria) e imprime o
// relatório consolidado no terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/rafaelqg/painel-vendas/internal/analytics"
	"github.com/rafaelqg/painel-vendas/internal/models"
	"github.com/rafaelqg/painel-vendas/internal/parser"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	vendasPath := flag.String("vendas", "", "CSV de vendas")
	adsPath := flag.String("meta-ads", "", "CSV do Meta Ads")
	parceriaPath := flag.String("parceria", "", "CSV da planilha de parceria")
	flag.Parse()

	if *vendasPath == "" && *adsPath == "" && *parceriaPath == "" {
		log.Fatalf("Usage: relatorio --vendas vendas.csv [--meta-ads ads.csv] [--parceria parceria.csv]")
	}

	var (
		vendas   []models.SalesRecord
		ads      []models.AdMetricRecord
		parceria []models.PartnershipDayRecord
	)

	files := 0
	for _, p := range []*string{vendasPath, adsPath, parceriaPath} {
		if *p != "" {
			files++
		}
	}
	bar := progressbar.Default(int64(files))

	if *vendasPath != "" {
		vendas = parser.ParseSales(mustRead(*vendasPath))
		_ = bar.Add(1)
	}
	if *adsPath != "" {
		ads = parser.ParseMetaAds(mustRead(*adsPath))
		_ = bar.Add(1)
	}
	if *parceriaPath != "" {
		parceria = parser.ParsePartnership(mustRead(*parceriaPath))
		_ = bar.Add(1)
	}

	if vendas != nil {
		printVendas(vendas)
	}
	if ads != nil {
		printMetaAds(ads)
	}
	if parceria != nil {
		printParceria(parceria)
	}
}

func mustRead(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("ler %s: %v", path, err)
	}
	return string(b)
}

func printVendas(data []models.SalesRecord) {
	m := analytics.CalculateMetrics(data)
	fmt.Printf("\n== Vendas ==\n")
	fmt.Printf("pedidos=%d vendas=%d conversão=%.1f%%\n", m.TotalPedidos, m.TotalVendas, m.TaxaConversao)
	fmt.Printf("receita bruta=R$ %.2f líquida=R$ %.2f taxas=R$ %.2f\n", m.ReceitaBruta, m.ReceitaLiquida, m.TotalTaxas)
	fmt.Printf("ticket médio=R$ %.2f reembolsos=%d (%.1f%%)\n", m.TicketMedio, m.TotalReembolsosQtd, m.PercentualReembolsos)

	for _, p := range analytics.ProductPerformance(data) {
		fmt.Printf("  produto %-30s vendas=%-4d receita=R$ %.2f\n", p.Produto, p.Vendas, p.Receita)
	}
	for _, in := range analytics.GenerateInsights(data, m) {
		fmt.Println(in)
	}
}

func printMetaAds(data []models.AdMetricRecord) {
	m := analytics.CalculateMetaAdsMetrics(data)
	fmt.Printf("\n== Meta Ads ==\n")
	fmt.Printf("investido=R$ %.2f receita=R$ %.2f ROAS=%.2f\n", m.TotalInvestido, m.TotalReceita, m.ROAS)
	fmt.Printf("compras=%d custo/compra=R$ %.2f CPC=R$ %.2f CPM=R$ %.2f CTR=%.2f%%\n",
		m.TotalCompras, m.CustoMedioCompra, m.CPCMedio, m.CPMMedio, m.CTRMedio)
}

func printParceria(data []models.PartnershipDayRecord) {
	m := analytics.CalculatePartnershipMetrics(data)
	fmt.Printf("\n== Parceria ==\n")
	fmt.Printf("dias=%d faturamento=R$ %.2f lucro=R$ %.2f retorno médio=%.1f%%\n",
		len(data), m.FatTotalGeral, m.LucroLiquidoTotal, m.RetornoMedio)
	fmt.Printf("dias positivos=%d negativos=%d\n", m.DiasPositivos, m.DiasNegativos)
	fmt.Printf("melhor dia=%s (R$ %.2f) pior dia=%s (R$ %.2f)\n",
		m.MelhorDia.Data.Format("02/01/2006"), m.MelhorDia.Valor,
		m.PiorDia.Data.Format("02/01/2006"), m.PiorDia.Valor)
}
