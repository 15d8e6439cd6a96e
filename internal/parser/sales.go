package parser

import (
	"github.com/rafaelqg/painel-vendas/internal/models"
)

// ParseSales converte o CSV de vendas (export da plataforma, cabeçalho em
// português) em registros tipados. Nenhuma linha é rejeitada: campo numérico
// ou data malformada degrada para 0 / sentinela, nunca para erro.
func ParseSales(text string) []models.SalesRecord {
	return ParseSalesRows(TextRows(text))
}

// ParseSalesRows é a variante sobre linhas já tokenizadas (uploads XLSX).
// A primeira linha é o cabeçalho.
func ParseSalesRows(rows [][]string) []models.SalesRecord {
	if len(rows) == 0 {
		return nil
	}
	m := newRowMapper(rows[0])

	out := make([]models.SalesRecord, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		if blankRow(cells) {
			continue
		}
		out = append(out, salesRecord(m, cells))
	}
	return out
}

func salesRecord(m *rowMapper, cells []string) models.SalesRecord {
	parcelas := 1
	if v := m.field(cells, "Parcelas"); v != "" {
		parcelas = ParseCount(v)
	}

	return models.SalesRecord{
		ID:      m.field(cells, "ID da venda", "id"),
		Status:  models.SaleStatus(m.field(cells, "Status", "status")),
		Produto: m.field(cells, "Produto", "produto"),
		Cliente: m.field(cells, "Cliente", "cliente"),
		Email:   m.field(cells, "Email", "email"),
		Telefone: m.field(cells,
			"Celular", "Telefone", "telefone", "Telefone do Cliente", "Phone", "phone"),
		ValorLiquido:      ParseCurrency(m.field(cells, "Valor líquido", "Valor liquido")),
		PrecoBase:         ParseCurrency(m.field(cells, "Preço base do produto", "Preco base do produto")),
		TotalComAcrescimo: ParseCurrency(m.field(cells, "Total com acréscimo", "Total com acrescimo")),
		Taxas:             ParseCurrency(m.field(cells, "Taxas")),
		DataCriacao:       ParseDateBR(m.field(cells, "Data de Criação", "Data de Criacao", "data")),
		DataAtualizacao:   ParseDateBR(m.field(cells, "Data de Atualização", "Data de Atualizacao")),
		NomeAfiliado:      m.field(cells, "Nome do afiliado"),
		ComissaoAfiliado:  ParseCurrency(m.field(cells, "Comissão do afiliado", "Comissao do afiliado")),
		NomesCoprodutores: m.field(cells, "Nomes dos coprodutores"),
		ComissoesCoprodutores: m.field(cells,
			"Comissões dos coprodutores", "Comissoes dos coprodutores"),
		Pagamento:        m.field(cells, "Pagamento", "pagamento"),
		Parcelas:         parcelas,
		TrackingSource:   m.field(cells, "Tracking utm_source"),
		TrackingMedium:   m.field(cells, "Tracking utm_medium"),
		TrackingCampaign: m.field(cells, "Tracking utm_campaign"),
	}
}
