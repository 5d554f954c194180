package domain

import "time"

// Segmentos de cliente (regras avaliadas em ordem, primeira que casar vence)
const (
	CustomerSegmentVIP     = "VIP"
	CustomerSegmentRegular = "Regular"
	CustomerSegmentNew     = "New"
)

// Faixas etárias do relatório de clientes
const (
	AgeGroupUnder20    = "Under 20"
	AgeGroup20To29     = "20-29"
	AgeGroup30To39     = "30-39"
	AgeGroup40To49     = "40-49"
	AgeGroup50AndAbove = "50 and above"
	AgeGroupUnknown    = "Unknown"
)

// CustomerReport é o perfil consolidado de um cliente: uma linha por
// customer_key com ao menos uma transação qualificada
type CustomerReport struct {
	CustomerKey     int       `json:"customer_key"`
	CustomerNumber  *string   `json:"customer_number"`
	CustomerName    *string   `json:"customer_name"`
	Age             *int      `json:"age"`
	AgeGroup        string    `json:"age_group"`
	TotalOrders     int       `json:"total_orders"`
	TotalSales      float64   `json:"total_sales"`
	TotalQuantity   int       `json:"total_quantity"`
	TotalProducts   int       `json:"total_products"`
	LastOrderDate   time.Time `json:"last_order_date"`
	LifespanMonths  int       `json:"lifespan_months"`
	RecencyMonths   int       `json:"recency_months"`
	AvgOrderValue   float64   `json:"average_order_value"`
	AvgMonthlySpend float64   `json:"average_monthly_spend"`
	Segment         string    `json:"customer_segment"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CustomerReportFilters são os filtros aceitos pelos consumidores de BI
type CustomerReportFilters struct {
	Segment  string
	AgeGroup string
	OrderBy  string
}
