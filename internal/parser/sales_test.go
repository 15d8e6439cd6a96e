package parser

import (
	"testing"
	"time"

	"github.com/rafaelqg/painel-vendas/internal/models"
)

const vendasCSV = `Status,Produto,Cliente,Email,Valor líquido,Total com acréscimo,Data de Criação
paid,Curso X,João Silva,joao@x.com,"89,90","97,00",01/03/2024 10:00:00
refunded,Curso X,Maria Souza,maria@x.com,"89,90","97,00",02/03/2024 15:30:00
`

func TestParseSales(t *testing.T) {
	got := ParseSales(vendasCSV)
	if len(got) != 2 {
		t.Fatalf("esperava 2 registros, veio %d", len(got))
	}

	r := got[0]
	if r.Status != models.StatusPaid {
		t.Errorf("status = %q", r.Status)
	}
	if r.Produto != "Curso X" || r.Cliente != "João Silva" || r.Email != "joao@x.com" {
		t.Errorf("identificação errada: %+v", r)
	}
	if r.ValorLiquido != 89.90 {
		t.Errorf("valorLiquido = %v", r.ValorLiquido)
	}
	if r.TotalComAcrescimo != 97.00 {
		t.Errorf("totalComAcrescimo = %v", r.TotalComAcrescimo)
	}
	want := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	if !r.DataCriacao.Equal(want) {
		t.Errorf("dataCriacao = %v, want %v", r.DataCriacao, want)
	}
	if r.Parcelas != 1 {
		t.Errorf("parcelas sem coluna deveria ser 1, veio %d", r.Parcelas)
	}
	if got[1].Status != models.StatusRefunded {
		t.Errorf("status[1] = %q", got[1].Status)
	}
}

func TestParseSalesHeaderVariants(t *testing.T) {
	// Planilhas antigas usam cabeçalhos sem acento e "Celular" no lugar de
	// "Telefone"; o mapeador aceita ambas as grafias.
	text := "status,produto,Celular,Valor liquido,Total com acrescimo,Data de Criacao\n" +
		"paid,Ebook,11 99999-0000,\"10,00\",\"12,00\",05/01/2024\n"
	got := ParseSales(text)
	if len(got) != 1 {
		t.Fatalf("esperava 1 registro, veio %d", len(got))
	}
	r := got[0]
	if r.Telefone != "11 99999-0000" {
		t.Errorf("telefone = %q", r.Telefone)
	}
	if r.ValorLiquido != 10 || r.TotalComAcrescimo != 12 {
		t.Errorf("valores = %v / %v", r.ValorLiquido, r.TotalComAcrescimo)
	}
	if r.DataCriacao.Day() != 5 || r.DataCriacao.Month() != time.January {
		t.Errorf("dataCriacao = %v", r.DataCriacao)
	}
}

func TestParseSalesMalformedNumbers(t *testing.T) {
	text := "Status,Produto,Valor líquido,Total com acréscimo,Parcelas\n" +
		"paid,Curso,abc,-,xyz\n"
	got := ParseSales(text)
	if len(got) != 1 {
		t.Fatalf("esperava 1 registro, veio %d", len(got))
	}
	r := got[0]
	if r.ValorLiquido != 0 || r.TotalComAcrescimo != 0 {
		t.Errorf("numérico inválido deveria degradar para 0: %+v", r)
	}
	if r.Parcelas != 0 {
		t.Errorf("parcelas inválidas = %d", r.Parcelas)
	}
}

func TestParseSalesEmptyInput(t *testing.T) {
	if got := ParseSales(""); got != nil {
		t.Fatalf("entrada vazia deveria devolver nil, veio %#v", got)
	}
	if got := ParseSales("Status,Produto\n"); len(got) != 0 {
		t.Fatalf("só cabeçalho deveria devolver zero registros, veio %#v", got)
	}
}
