package domain

import (
	goaffprodomain "github.com/vfg2006/affiliate-insights-api/infrastructure/integrator/goaffpro/domain"
)

// ReportFilters carrega os cursores "since" repassados verbatim à API do
// GoAffPro. Vazio significa coleção completa.
type ReportFilters struct {
	OrdersSince     string
	AffiliatesSince string
}

// AccumulationPolicy define como os totais de um cliente com múltiplos
// pedidos são acumulados.
type AccumulationPolicy string

const (
	// AccumulationFirstOrderOnly congela totalSale/revenue no primeiro pedido
	// visto; pedidos seguintes só atualizam contagem e intervalo de datas.
	AccumulationFirstOrderOnly AccumulationPolicy = "first-order-only"
	// AccumulationSumAllOrders soma os totais de todos os pedidos do cliente.
	AccumulationSumAllOrders AccumulationPolicy = "sum-all-orders"
)

// SheetWritePolicy define a política de idempotência da escrita na planilha.
type SheetWritePolicy string

const (
	// SheetWriteAppend anexa sem deduplicar.
	SheetWriteAppend SheetWritePolicy = "append"
	// SheetWriteUpsert atualiza linhas existentes pela coluna de ID e anexa
	// apenas as novas.
	SheetWriteUpsert SheetWritePolicy = "upsert"
)

type AffiliateSummary struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	LastSale     *string `json:"lastSale"`
	FirstSale    *string `json:"firstSale"`
	Revenue      float64 `json:"revenue"`
	ReferralCode string  `json:"referralCode"`
	SalesCount   int     `json:"salesCount"`
}

// CustomerSummary agrega os pedidos de um mesmo cliente. OrderCount é de uso
// interno e fica fora da resposta.
type CustomerSummary struct {
	ID             *int64  `json:"id"`
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	OrderCount     int     `json:"-"`
	FirstOrderDate *string `json:"firstOrderDate"`
	LastOrderDate  *string `json:"lastOrderDate"`
	TotalSale      float64 `json:"totalSale"`
	Revenue        float64 `json:"revenue"`
}

// Tracker marca a última atividade vista em cada coleção, em data (sem hora),
// ou nil quando a coleção veio vazia.
type Tracker struct {
	Orders     *string `json:"orders"`
	Affiliates *string `json:"affiliates"`
}

// AffiliateReport é a resposta completa da agregação. Partners carrega os
// registros de afiliados crus, como retornados pela API.
type AffiliateReport struct {
	Affiliates []AffiliateSummary         `json:"affiliates"`
	Customers  []CustomerSummary          `json:"customers"`
	Partners   []goaffprodomain.Affiliate `json:"partners"`
	Tracker    Tracker                    `json:"tracker"`
}
