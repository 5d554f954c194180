package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestClassifyCustomer(t *testing.T) {
	tests := []struct {
		name           string
		lifespanMonths int
		totalSales     float64
		expected       string
	}{
		{
			name:           "Doze meses ou mais e vendas acima de 5000 - VIP",
			lifespanMonths: 14,
			totalSales:     6000,
			expected:       domain.CustomerSegmentVIP,
		},
		{
			name:           "Exatamente 5000 não é VIP - Regular",
			lifespanMonths: 14,
			totalSales:     5000,
			expected:       domain.CustomerSegmentRegular,
		},
		{
			name:           "Limite inferior de vida útil com vendas altas - VIP",
			lifespanMonths: 12,
			totalSales:     5000.01,
			expected:       domain.CustomerSegmentVIP,
		},
		{
			name:           "Menos de doze meses mesmo com vendas altas - New",
			lifespanMonths: 11,
			totalSales:     99999,
			expected:       domain.CustomerSegmentNew,
		},
		{
			name:           "Cliente de pedido único - New",
			lifespanMonths: 0,
			totalSales:     150,
			expected:       domain.CustomerSegmentNew,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyCustomer(tt.lifespanMonths, tt.totalSales))
		})
	}
}

func TestClassifyProduct(t *testing.T) {
	tests := []struct {
		name       string
		totalSales float64
		expected   string
	}{
		{
			name:       "Acima de 50000 - High-Performers",
			totalSales: 55000,
			expected:   domain.ProductSegmentHighPerformers,
		},
		{
			name:       "Exatamente 50000 não passa do limiar superior",
			totalSales: 50000,
			expected:   domain.ProductSegmentLowPerformers,
		},
		{
			name:       "Faixa intermediária - Low-Performers",
			totalSales: 25000,
			expected:   domain.ProductSegmentLowPerformers,
		},
		{
			name:       "Abaixo de 10000 - Mid-Range",
			totalSales: 8000,
			expected:   domain.ProductSegmentMidRange,
		},
		{
			name:       "Exatamente 10000 - Mid-Range",
			totalSales: 10000,
			expected:   domain.ProductSegmentMidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyProduct(tt.totalSales))
		})
	}
}

func TestAgeGroupFor(t *testing.T) {
	tests := []struct {
		name     string
		age      *int
		expected string
	}{
		{name: "Idade desconhecida", age: nil, expected: domain.AgeGroupUnknown},
		{name: "Dezenove anos", age: intPtr(19), expected: domain.AgeGroupUnder20},
		{name: "Vinte anos", age: intPtr(20), expected: domain.AgeGroup20To29},
		{name: "Vinte e nove anos", age: intPtr(29), expected: domain.AgeGroup20To29},
		{name: "Trinta anos", age: intPtr(30), expected: domain.AgeGroup30To39},
		{name: "Quarenta e nove anos", age: intPtr(49), expected: domain.AgeGroup40To49},
		{name: "Cinquenta anos", age: intPtr(50), expected: domain.AgeGroup50AndAbove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ageGroupFor(tt.age))
		})
	}
}

func TestAggregateCustomerSales(t *testing.T) {
	t.Run("Contagens distintas de pedidos e produtos", func(t *testing.T) {
		lines := []*domain.CustomerSalesLine{
			{OrderNumber: "SO-1", CustomerKey: 7, ProductKey: 100, OrderDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), SalesAmount: 100, Quantity: 1},
			{OrderNumber: "SO-1", CustomerKey: 7, ProductKey: 200, OrderDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), SalesAmount: 50, Quantity: 2},
			{OrderNumber: "SO-2", CustomerKey: 7, ProductKey: 100, OrderDate: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), SalesAmount: 80, Quantity: 1},
		}

		aggregators := aggregateCustomerSales(lines)

		assert.Len(t, aggregators, 1)
		agg := aggregators[0]
		assert.Equal(t, 7, agg.customerKey)
		assert.Len(t, agg.orders, 2)
		assert.Len(t, agg.products, 2)
		assert.Equal(t, 230.0, agg.totalSales)
		assert.Equal(t, 4, agg.totalQuantity)
		assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), agg.firstOrderDate)
		assert.Equal(t, time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), agg.lastOrderDate)
	})

	t.Run("Resultado ordenado pela chave do cliente", func(t *testing.T) {
		lines := []*domain.CustomerSalesLine{
			{OrderNumber: "SO-9", CustomerKey: 30, OrderDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			{OrderNumber: "SO-8", CustomerKey: 10, OrderDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			{OrderNumber: "SO-7", CustomerKey: 20, OrderDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		}

		aggregators := aggregateCustomerSales(lines)

		assert.Len(t, aggregators, 3)
		assert.Equal(t, 10, aggregators[0].customerKey)
		assert.Equal(t, 20, aggregators[1].customerKey)
		assert.Equal(t, 30, aggregators[2].customerKey)
	})

	t.Run("Atributos da dimensão preservados do primeiro valor não nulo", func(t *testing.T) {
		birthdate := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
		lines := []*domain.CustomerSalesLine{
			{OrderNumber: "SO-1", CustomerKey: 1, OrderDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			{
				OrderNumber: "SO-2", CustomerKey: 1, OrderDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				CustomerNumber: stringPtr("C-001"), FirstName: stringPtr("Maria"), LastName: stringPtr("Silva"), Birthdate: timePtr(birthdate),
			},
		}

		aggregators := aggregateCustomerSales(lines)

		assert.Len(t, aggregators, 1)
		agg := aggregators[0]
		assert.Equal(t, "C-001", *agg.customerNumber)
		assert.Equal(t, "Maria", *agg.firstName)
		assert.Equal(t, "Silva", *agg.lastName)
		assert.Equal(t, birthdate, *agg.birthdate)
	})
}

func TestAggregateProductSales(t *testing.T) {
	t.Run("Quantidade zero fica fora da média de preço unitário", func(t *testing.T) {
		lines := []*domain.ProductSalesLine{
			{OrderNumber: "SO-1", CustomerKey: 1, ProductKey: 5, OrderDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), SalesAmount: 100, Quantity: 2},
			{OrderNumber: "SO-2", CustomerKey: 2, ProductKey: 5, OrderDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), SalesAmount: 999, Quantity: 0},
			{OrderNumber: "SO-3", CustomerKey: 1, ProductKey: 5, OrderDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), SalesAmount: 60, Quantity: 1},
		}

		aggregators := aggregateProductSales(lines)

		assert.Len(t, aggregators, 1)
		agg := aggregators[0]
		// Linhas válidas: 100/2 = 50 e 60/1 = 60
		assert.Equal(t, 110.0, agg.unitPriceSum)
		assert.Equal(t, 2, agg.unitPriceCount)
		// A linha com quantidade zero ainda entra nos totais
		assert.Equal(t, 1159.0, agg.totalSales)
		assert.Len(t, agg.customers, 2)
		assert.Len(t, agg.orders, 3)
	})

	t.Run("Resultado ordenado pela chave do produto", func(t *testing.T) {
		lines := []*domain.ProductSalesLine{
			{OrderNumber: "SO-1", ProductKey: 300, OrderDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			{OrderNumber: "SO-2", ProductKey: 100, OrderDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		}

		aggregators := aggregateProductSales(lines)

		assert.Len(t, aggregators, 2)
		assert.Equal(t, 100, aggregators[0].productKey)
		assert.Equal(t, 300, aggregators[1].productKey)
	})
}

func TestBuildCustomerReport(t *testing.T) {
	evaluationDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Cliente VIP com dois pedidos em quatorze meses", func(t *testing.T) {
		agg := &customerAggregator{
			customerKey:    7,
			firstName:      stringPtr("Maria"),
			lastName:       stringPtr("Silva"),
			orders:         map[string]struct{}{"SO-1": {}, "SO-2": {}},
			products:       map[int]struct{}{100: {}, 200: {}, 300: {}},
			totalSales:     6000,
			totalQuantity:  10,
			firstOrderDate: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			lastOrderDate:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		}

		report := buildCustomerReport(agg, evaluationDate)

		assert.Equal(t, 7, report.CustomerKey)
		assert.Equal(t, "Maria Silva", *report.CustomerName)
		assert.Equal(t, 2, report.TotalOrders)
		assert.Equal(t, 6000.0, report.TotalSales)
		assert.Equal(t, 3, report.TotalProducts)
		assert.Equal(t, 14, report.LifespanMonths)
		assert.Equal(t, 3, report.RecencyMonths)
		assert.Equal(t, 3000.0, report.AvgOrderValue)
		assert.InDelta(t, 428.57, report.AvgMonthlySpend, 0.001)
		assert.Equal(t, domain.CustomerSegmentVIP, report.Segment)
		assert.Equal(t, domain.AgeGroupUnknown, report.AgeGroup)
		assert.Nil(t, report.Age)
	})

	t.Run("Cliente de pedido único fica com o gasto mensal igual ao total", func(t *testing.T) {
		orderDate := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
		agg := &customerAggregator{
			customerKey:    9,
			orders:         map[string]struct{}{"SO-9": {}},
			products:       map[int]struct{}{100: {}},
			totalSales:     150,
			totalQuantity:  1,
			firstOrderDate: orderDate,
			lastOrderDate:  orderDate,
		}

		report := buildCustomerReport(agg, evaluationDate)

		assert.Equal(t, 0, report.LifespanMonths)
		assert.Equal(t, 150.0, report.AvgMonthlySpend)
		assert.Equal(t, 150.0, report.AvgOrderValue)
		assert.Equal(t, domain.CustomerSegmentNew, report.Segment)
		assert.Nil(t, report.CustomerName)
	})

	t.Run("Idade e faixa etária derivadas da data de nascimento", func(t *testing.T) {
		agg := &customerAggregator{
			customerKey:    3,
			birthdate:      timePtr(time.Date(1991, 8, 1, 0, 0, 0, 0, time.UTC)),
			orders:         map[string]struct{}{"SO-1": {}},
			products:       map[int]struct{}{1: {}},
			totalSales:     100,
			firstOrderDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			lastOrderDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}

		report := buildCustomerReport(agg, evaluationDate)

		// Em 2024-06-01 o aniversário de agosto ainda não ocorreu
		assert.Equal(t, 32, *report.Age)
		assert.Equal(t, domain.AgeGroup30To39, report.AgeGroup)
	})
}

func TestBuildProductReport(t *testing.T) {
	evaluationDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Métricas derivadas e segmento de alto desempenho", func(t *testing.T) {
		agg := &productAggregator{
			productKey:     42,
			productName:    stringPtr("Mountain Bike"),
			category:       stringPtr("Bikes"),
			orders:         map[string]struct{}{"SO-1": {}, "SO-2": {}, "SO-3": {}, "SO-4": {}},
			customers:      map[int]struct{}{1: {}, 2: {}},
			totalSales:     55000,
			totalQuantity:  20,
			firstSaleDate:  time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			lastSaleDate:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			unitPriceSum:   8249.95,
			unitPriceCount: 3,
		}

		report := buildProductReport(agg, evaluationDate)

		assert.Equal(t, 42, report.ProductKey)
		assert.Equal(t, domain.ProductSegmentHighPerformers, report.Segment)
		assert.Equal(t, 4, report.TotalOrders)
		assert.Equal(t, 2, report.TotalCustomers)
		assert.Equal(t, 10, report.LifespanMonths)
		assert.Equal(t, 2, report.RecencyMonths)
		// 8249.95 / 3 = 2749.9833... arredondado para uma casa
		assert.InDelta(t, 2750.0, report.AvgSellingPrice, 0.001)
		assert.Equal(t, 13750.0, report.AvgOrderRevenue)
		assert.Equal(t, 5500.0, report.AvgMonthlyRevenue)
	})

	t.Run("Produto sem linhas com quantidade válida tem preço médio zero", func(t *testing.T) {
		saleDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		agg := &productAggregator{
			productKey:    9,
			orders:        map[string]struct{}{"SO-1": {}},
			customers:     map[int]struct{}{1: {}},
			totalSales:    8000,
			firstSaleDate: saleDate,
			lastSaleDate:  saleDate,
		}

		report := buildProductReport(agg, evaluationDate)

		assert.Equal(t, 0.0, report.AvgSellingPrice)
		assert.Equal(t, domain.ProductSegmentMidRange, report.Segment)
		// Vida útil zero: receita mensal cai para o total
		assert.Equal(t, 8000.0, report.AvgMonthlyRevenue)
	})
}

func TestCustomerDisplayName(t *testing.T) {
	tests := []struct {
		name      string
		firstName *string
		lastName  *string
		expected  *string
	}{
		{name: "Nome completo", firstName: stringPtr("Maria"), lastName: stringPtr("Silva"), expected: stringPtr("Maria Silva")},
		{name: "Apenas primeiro nome", firstName: stringPtr("Maria"), lastName: nil, expected: stringPtr("Maria")},
		{name: "Apenas sobrenome", firstName: nil, lastName: stringPtr("Silva"), expected: stringPtr("Silva")},
		{name: "Sem nome", firstName: nil, lastName: nil, expected: nil},
		{name: "Strings vazias tratadas como ausentes", firstName: stringPtr(""), lastName: stringPtr(""), expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := customerDisplayName(tt.firstName, tt.lastName)
			if tt.expected == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, *tt.expected, *result)
			}
		})
	}
}
