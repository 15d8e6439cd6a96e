package parser

import (
	"github.com/rafaelqg/painel-vendas/internal/models"
)

// ParseMetaAds converte o relatório CSV exportado do Meta Ads. Linhas de
// subtotal/total geral do export compartilham as colunas mas deixam os quatro
// campos identificadores em branco; essas são descartadas.
func ParseMetaAds(text string) []models.AdMetricRecord {
	return ParseMetaAdsRows(TextRows(text))
}

// ParseMetaAdsRows é a variante sobre linhas já tokenizadas (uploads XLSX).
func ParseMetaAdsRows(rows [][]string) []models.AdMetricRecord {
	if len(rows) == 0 {
		return nil
	}
	m := newRowMapper(rows[0])

	out := make([]models.AdMetricRecord, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		if blankRow(cells) {
			continue
		}
		if summaryRow(cells) {
			continue
		}
		out = append(out, adRecord(m, cells))
	}
	return out
}

// summaryRow detecta linhas de resumo: conta, campanha, conjunto e anúncio
// todos vazios.
func summaryRow(cells []string) bool {
	for i := 0; i < 4; i++ {
		if i < len(cells) && cells[i] != "" {
			return false
		}
	}
	return true
}

func adRecord(m *rowMapper, cells []string) models.AdMetricRecord {
	return models.AdMetricRecord{
		NomeConta:            m.field(cells, "Nome da conta"),
		NomeCampanha:         m.field(cells, "Nome da campanha"),
		NomeConjuntoAnuncios: m.field(cells, "Nome do conjunto de anúncios", "Nome do conjunto de anuncios"),
		NomeAnuncio:          m.field(cells, "Nome do anúncio", "Nome do anuncio"),
		Anuncios:             m.field(cells, "Anúncios", "Anuncios"),
		Idade:                m.field(cells, "Idade"),
		Genero:               m.field(cells, "Gênero", "Genero"),
		Dia:                  ParseDateISO(m.field(cells, "Dia")),
		IDConta:              m.field(cells, "Identificação da conta", "Identificacao da conta"),
		IDCampanha:           m.field(cells, "Identificação da campanha", "Identificacao da campanha"),
		IDConjuntoAnuncios: m.field(cells,
			"Identificação do conjunto de anúncios", "Identificacao do conjunto de anuncios"),
		IDAnuncio:            m.field(cells, "Identificação do anúncio", "Identificacao do anuncio"),
		Alcance:              ParseCount(m.field(cells, "Alcance")),
		Impressoes:           ParseCount(m.field(cells, "Impressões", "Impressoes")),
		Frequencia:           ParseNumber(m.field(cells, "Frequência", "Frequencia")),
		Moeda:                moeda(m.field(cells, "Moeda")),
		ValorUsado:           ParseNumber(m.field(cells, "Valor usado (BRL)")),
		Compras:              ParseCount(m.field(cells, "Compras")),
		CustoPorCompra:       ParseNumber(m.field(cells, "Custo por compra")),
		ValorConversaoCompra: ParseNumber(m.field(cells, "Valor de conversão da compra", "Valor de conversao da compra")),
		CliquesLink:          ParseCount(m.field(cells, "Cliques no link")),
		CPCLink:              ParseNumber(m.field(cells, "CPC (custo por clique no link)")),
		CliquesTodos:         ParseCount(m.field(cells, "Cliques (todos)")),
		CPCTodos:             ParseNumber(m.field(cells, "CPC (todos)")),
		CPM: ParseNumber(m.field(cells,
			"CPM (custo por 1.000 impressões)", "CPM (custo por 1.000 impressoes)")),
		CTRTodos:      ParseNumber(m.field(cells, "CTR (todos)")),
		Visualizacoes: ParseCount(m.field(cells, "Visualizações", "Visualizacoes")),
		TaxaComprasPorVisualizacoes: ParseNumber(m.field(cells,
			"Taxa de compras por visualizações da página de destino",
			"Taxa de compras por visualizacoes da pagina de destino")),
		CustoPor1000Contas: ParseNumber(m.field(cells,
			"Custo por 1.000 contas da Central de Contas alcançadas",
			"Custo por 1.000 contas da Central de Contas alcancadas")),
		VeiculacaoAnuncio: m.field(cells, "Veiculação do anúncio", "Veiculacao do anuncio"),
		VeiculacaoConjuntoAnuncios: m.field(cells,
			"Veiculação do conjunto de anúncios", "Veiculacao do conjunto de anuncios"),
		VeiculacaoCampanha: m.field(cells, "Veiculação da campanha", "Veiculacao da campanha"),
		InicioRelatorios:   ParseDateISO(m.field(cells, "Início dos relatórios", "Inicio dos relatorios")),
		TerminoRelatorios:  ParseDateISO(m.field(cells, "Término dos relatórios", "Termino dos relatorios")),
	}
}

func moeda(s string) string {
	if s == "" {
		return "BRL"
	}
	return s
}
