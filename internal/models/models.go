package models

import "time"

// SaleStatus é o status bruto exportado pela plataforma de vendas.
type SaleStatus string

const (
	StatusPaid           SaleStatus = "paid"
	StatusWaitingPayment SaleStatus = "waiting_payment"
	StatusRefused        SaleStatus = "refused"
	StatusRefunded       SaleStatus = "refunded"
	StatusChargedback    SaleStatus = "chargedback"
	StatusCanceled       SaleStatus = "canceled"
	StatusWaiting        SaleStatus = "waiting"
	StatusPending        SaleStatus = "pending"
)

// Refundable diz se o status conta como reembolso/cancelamento nas agregações.
func (s SaleStatus) Refundable() bool {
	return s == StatusRefunded || s == StatusCanceled
}

type SalesRecord struct {
	ID                    string     `json:"id"`
	Status                SaleStatus `json:"status"`
	Produto               string     `json:"produto"`
	Cliente               string     `json:"cliente"`
	Email                 string     `json:"email"`
	Telefone              string     `json:"telefone,omitempty"`
	ValorLiquido          float64    `json:"valorLiquido"`
	PrecoBase             float64    `json:"precoBase"`
	TotalComAcrescimo     float64    `json:"totalComAcrescimo"`
	Taxas                 float64    `json:"taxas"`
	DataCriacao           time.Time  `json:"dataCriacao"`
	DataAtualizacao       time.Time  `json:"dataAtualizacao"`
	NomeAfiliado          string     `json:"nomeAfiliado,omitempty"`
	ComissaoAfiliado      float64    `json:"comissaoAfiliado,omitempty"`
	NomesCoprodutores     string     `json:"nomesCoprodutores,omitempty"`
	ComissoesCoprodutores string     `json:"comissoesCoprodutores,omitempty"`
	Pagamento             string     `json:"pagamento,omitempty"`
	Parcelas              int        `json:"parcelas,omitempty"`
	TrackingSource        string     `json:"tracking_source,omitempty"`
	TrackingMedium        string     `json:"tracking_medium,omitempty"`
	TrackingCampaign      string     `json:"tracking_campaign,omitempty"`
}

// Coproducer é um par (nome, comissão) extraído das listas separadas por
// ponto e vírgula do export. A correspondência é posicional.
type Coproducer struct {
	Nome     string  `json:"nome"`
	Comissao float64 `json:"comissao"`
}

// AdMetricRecord é uma linha do relatório exportado do Meta Ads.
type AdMetricRecord struct {
	NomeConta                   string    `json:"nomeConta"`
	NomeCampanha                string    `json:"nomeCampanha"`
	NomeConjuntoAnuncios        string    `json:"nomeConjuntoAnuncios"`
	NomeAnuncio                 string    `json:"nomeAnuncio"`
	Anuncios                    string    `json:"anuncios"`
	Idade                       string    `json:"idade"`
	Genero                      string    `json:"genero"`
	Dia                         time.Time `json:"dia"`
	IDConta                     string    `json:"idConta"`
	IDCampanha                  string    `json:"idCampanha"`
	IDConjuntoAnuncios          string    `json:"idConjuntoAnuncios"`
	IDAnuncio                   string    `json:"idAnuncio"`
	Alcance                     int       `json:"alcance"`
	Impressoes                  int       `json:"impressoes"`
	Frequencia                  float64   `json:"frequencia"`
	Moeda                       string    `json:"moeda"`
	ValorUsado                  float64   `json:"valorUsado"`
	Compras                     int       `json:"compras"`
	CustoPorCompra              float64   `json:"custoPorCompra"`
	ValorConversaoCompra        float64   `json:"valorConversaoCompra"`
	CliquesLink                 int       `json:"cliquesLink"`
	CPCLink                     float64   `json:"cpcLink"`
	CliquesTodos                int       `json:"cliquesTodos"`
	CPCTodos                    float64   `json:"cpcTodos"`
	CPM                         float64   `json:"cpm"`
	CTRTodos                    float64   `json:"ctrTodos"`
	Visualizacoes               int       `json:"visualizacoes"`
	TaxaComprasPorVisualizacoes float64   `json:"taxaComprasPorVisualizacoes"`
	CustoPor1000Contas          float64   `json:"custoPor1000Contas"`
	VeiculacaoAnuncio           string    `json:"veiculacaoAnuncio"`
	VeiculacaoConjuntoAnuncios  string    `json:"veiculacaoConjuntoAnuncios"`
	VeiculacaoCampanha          string    `json:"veiculacaoCampanha"`
	InicioRelatorios            time.Time `json:"inicioRelatorios"`
	TerminoRelatorios           time.Time `json:"terminoRelatorios"`
}

// PartnershipDayRecord é um dia da planilha de parceria (layout fixo de 9
// colunas). Os totais vêm das colunas da própria planilha, não são
// recalculados a partir das partes.
type PartnershipDayRecord struct {
	Data              time.Time `json:"data"`
	FatParceiroA      float64   `json:"fatParceiroA"`
	FatParceiroB      float64   `json:"fatParceiroB"`
	FatTotal          float64   `json:"fatTotal"`
	GastoTrafego      float64   `json:"gastoTrafego"`
	LucroLiqParceiroA float64   `json:"lucroLiqParceiroA"`
	LucroLiqParceiroB float64   `json:"lucroLiqParceiroB"`
	LucroLiquidoTotal float64   `json:"lucroLiquidoTotal"`
	RetornoPercentual float64   `json:"retornoPercentual"`
}

// SalesMetrics é a visão consolidada de um conjunto de vendas. Recalculada a
// cada chamada, nunca persistida.
type SalesMetrics struct {
	TotalVendas                int     `json:"totalVendas"`
	TotalPedidos               int     `json:"totalPedidos"`
	ReceitaBruta               float64 `json:"receitaBruta"`
	ReceitaLiquida             float64 `json:"receitaLiquida"`
	ReceitaLiquidaTotal        float64 `json:"receitaLiquidaTotal"`
	TotalComissoesCoprodutores float64 `json:"totalComissoesCoprodutores"`
	TicketMedio                float64 `json:"ticketMedio"`
	TotalTaxas                 float64 `json:"totalTaxas"`
	TotalComissoes             float64 `json:"totalComissoes"`
	TotalReembolsos            float64 `json:"totalReembolsos"`
	TotalReembolsosQtd         int     `json:"totalReembolsosQtd"`
	PercentualReembolsos       float64 `json:"percentualReembolsos"`
	TaxaConversao              float64 `json:"taxaConversao"`
}

type RevenuePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type ProductPerformance struct {
	Produto             string  `json:"produto"`
	Vendas              int     `json:"vendas"`
	Receita             float64 `json:"receita"`
	ReceitaLiquidaMinha float64 `json:"receitaLiquidaMinha"`
	ReceitaLiquidaTotal float64 `json:"receitaLiquidaTotal"`
	TicketMedio         float64 `json:"ticketMedio"`
	Reembolsos          int     `json:"reembolsos"`
}

type AffiliatePerformance struct {
	Nome     string  `json:"nome"`
	Vendas   int     `json:"vendas"`
	Comissao float64 `json:"comissao"`
	Receita  float64 `json:"receita"`
}

type CoproducerPerformance struct {
	Nome         string  `json:"nome"`
	Vendas       int     `json:"vendas"`
	Comissao     float64 `json:"comissao"`
	Participacao float64 `json:"participacao"`
}

type BuyerPerformance struct {
	Nome                string    `json:"nome"`
	PrimeiroNome        string    `json:"primeiroNome"`
	Sobrenome           string    `json:"sobrenome"`
	Email               string    `json:"email"`
	Telefone            string    `json:"telefone,omitempty"`
	TotalCompras        int       `json:"totalCompras"`
	Produtos            []string  `json:"produtos"`
	ReceitaTotal        float64   `json:"receitaTotal"`
	ReceitaLiquidaTotal float64   `json:"receitaLiquidaTotal"`
	UltimaCompra        time.Time `json:"ultimaCompra"`
}

// DistributionSlice é uma fatia de histograma (status, forma de pagamento).
type DistributionSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type TimeBucket struct {
	Periodo string  `json:"period"`
	Vendas  int     `json:"vendas"`
	Receita float64 `json:"receita"`
}

type TrafficSource struct {
	Fonte   string  `json:"fonte"`
	Vendas  int     `json:"vendas"`
	Receita float64 `json:"receita"`
}

type MetaAdsMetrics struct {
	TotalInvestido   float64 `json:"totalInvestido"`
	TotalCompras     int     `json:"totalCompras"`
	TotalReceita     float64 `json:"totalReceita"`
	ROAS             float64 `json:"roas"`
	CustoMedioCompra float64 `json:"custoMedioCompra"`
	TotalAlcance     int     `json:"totalAlcance"`
	TotalImpressoes  int     `json:"totalImpressoes"`
	FrequenciaMedia  float64 `json:"frequenciaMedia"`
	CPCMedio         float64 `json:"cpcMedio"`
	CPMMedio         float64 `json:"cpmMedio"`
	CTRMedio         float64 `json:"ctrMedio"`
	TaxaConversao    float64 `json:"taxaConversao"`
	TotalCliques     int     `json:"totalCliques"`
}

// GroupMetrics é o resultado de calcular MetaAdsMetrics por valor distinto de
// um campo (campanha, conjunto, idade, gênero).
type GroupMetrics struct {
	Nome    string         `json:"name"`
	Metrics MetaAdsMetrics `json:"metrics"`
}

type DayValue struct {
	Data  time.Time `json:"data"`
	Valor float64   `json:"valor"`
}

type PartnershipMetrics struct {
	FatTotalGeral       float64  `json:"fatTotalGeral"`
	FatParceiroATotal   float64  `json:"fatParceiroATotal"`
	FatParceiroBTotal   float64  `json:"fatParceiroBTotal"`
	GastoTrafegoTotal   float64  `json:"gastoTrafegoTotal"`
	LucroLiquidoTotal   float64  `json:"lucroLiquidoTotal"`
	LucroParceiroATotal float64  `json:"lucroParceiroATotal"`
	LucroParceiroBTotal float64  `json:"lucroParceiroBTotal"`
	RetornoMedio        float64  `json:"retornoMedio"`
	DiasPositivos       int      `json:"diasPositivos"`
	DiasNegativos       int      `json:"diasNegativos"`
	MelhorDia           DayValue `json:"melhorDia"`
	PiorDia             DayValue `json:"piorDia"`
}

// PartnershipPoint alimenta os gráficos diários da aba de parceria.
type PartnershipPoint struct {
	Date         string  `json:"date"`
	FatTotal     float64 `json:"fatTotal"`
	LucroLiquido float64 `json:"lucroLiquido"`
	GastoTrafego float64 `json:"gastoTrafego"`
}

type ROIPoint struct {
	Date    string  `json:"date"`
	Retorno float64 `json:"retorno"`
}

type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
