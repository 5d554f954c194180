package domain

import "time"

// Segmentos de produto. A ordem das regras e os rótulos reproduzem
// fielmente a regra de negócio original: "Low-Performers" cobre a faixa
// intermediária de receita e "Mid-Range" a faixa mais baixa. Provável
// defeito de nomenclatura herdado, mantido por compatibilidade com os
// consumidores existentes.
const (
	ProductSegmentHighPerformers = "High-Performers"
	ProductSegmentMidRange       = "Mid-Range"
	ProductSegmentLowPerformers  = "Low-Performers"
)

// ProductReport é o perfil consolidado de um produto: uma linha por
// product_key com ao menos uma transação qualificada
type ProductReport struct {
	ProductKey        int       `json:"product_key"`
	ProductName       *string   `json:"product_name"`
	Category          *string   `json:"category"`
	Subcategory       *string   `json:"subcategory"`
	Cost              *float64  `json:"cost"`
	TotalOrders       int       `json:"total_orders"`
	TotalSales        float64   `json:"total_sales"`
	TotalQuantity     int       `json:"total_quantity"`
	TotalCustomers    int       `json:"total_customers"`
	LastSaleDate      time.Time `json:"last_sale_date"`
	LifespanMonths    int       `json:"lifespan_months"`
	RecencyMonths     int       `json:"recency_months"`
	AvgSellingPrice   float64   `json:"avg_selling_price"`
	AvgOrderRevenue   float64   `json:"average_order_revenue"`
	AvgMonthlyRevenue float64   `json:"average_monthly_revenue"`
	Segment           string    `json:"product_segment"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ProductReportFilters são os filtros aceitos pelos consumidores de BI
type ProductReportFilters struct {
	Segment  string
	Category string
	OrderBy  string
}
