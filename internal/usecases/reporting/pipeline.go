package reporting

import (
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

// Limiares de segmentação (regras avaliadas em ordem, primeira que casar vence)
const (
	vipMinLifespanMonths  = 12
	vipMinTotalSales      = 5000.0
	highPerformerMinSales = 50000.0
	midRangeMaxSales      = 10000.0
)

// Acumulador por cliente para a fase de agregação. Os conjuntos garantem
// contagem DISTINCT de pedidos e produtos mesmo com linhas duplicadas.
type customerAggregator struct {
	customerKey    int
	customerNumber *string
	firstName      *string
	lastName       *string
	birthdate      *time.Time

	orders         map[string]struct{}
	products       map[int]struct{}
	totalSales     float64
	totalQuantity  int
	firstOrderDate time.Time
	lastOrderDate  time.Time
}

// Acumulador por produto para a fase de agregação
type productAggregator struct {
	productKey  int
	productName *string
	category    *string
	subcategory *string
	cost        *float64

	orders        map[string]struct{}
	customers     map[int]struct{}
	totalSales    float64
	totalQuantity int
	firstSaleDate time.Time
	lastSaleDate  time.Time

	// Soma e contagem dos preços unitários por linha (sales_amount/quantity);
	// linhas com quantity = 0 ficam de fora das duas variáveis
	unitPriceSum   float64
	unitPriceCount int
}

// aggregateCustomerSales agrupa as linhas filtradas por customer_key e
// acumula os agregados de cada grupo. O resultado sai ordenado pela chave
// para manter o pipeline determinístico.
func aggregateCustomerSales(lines []*domain.CustomerSalesLine) []*customerAggregator {
	byKey := make(map[int]*customerAggregator)

	for _, line := range lines {
		agg, exists := byKey[line.CustomerKey]
		if !exists {
			agg = &customerAggregator{
				customerKey:    line.CustomerKey,
				orders:         make(map[string]struct{}),
				products:       make(map[int]struct{}),
				firstOrderDate: line.OrderDate,
				lastOrderDate:  line.OrderDate,
			}
			byKey[line.CustomerKey] = agg
		}

		// Atributos da dimensão: assumidos de valor único por chave
		if agg.customerNumber == nil {
			agg.customerNumber = line.CustomerNumber
		}
		if agg.firstName == nil {
			agg.firstName = line.FirstName
		}
		if agg.lastName == nil {
			agg.lastName = line.LastName
		}
		if agg.birthdate == nil {
			agg.birthdate = line.Birthdate
		}

		agg.orders[line.OrderNumber] = struct{}{}
		agg.products[line.ProductKey] = struct{}{}
		agg.totalSales += line.SalesAmount
		agg.totalQuantity += line.Quantity

		if line.OrderDate.Before(agg.firstOrderDate) {
			agg.firstOrderDate = line.OrderDate
		}
		if line.OrderDate.After(agg.lastOrderDate) {
			agg.lastOrderDate = line.OrderDate
		}
	}

	aggregators := make([]*customerAggregator, 0, len(byKey))
	for _, agg := range byKey {
		aggregators = append(aggregators, agg)
	}

	sort.Slice(aggregators, func(i, j int) bool {
		return aggregators[i].customerKey < aggregators[j].customerKey
	})

	return aggregators
}

// aggregateProductSales agrupa as linhas filtradas por product_key
func aggregateProductSales(lines []*domain.ProductSalesLine) []*productAggregator {
	byKey := make(map[int]*productAggregator)

	for _, line := range lines {
		agg, exists := byKey[line.ProductKey]
		if !exists {
			agg = &productAggregator{
				productKey:    line.ProductKey,
				orders:        make(map[string]struct{}),
				customers:     make(map[int]struct{}),
				firstSaleDate: line.OrderDate,
				lastSaleDate:  line.OrderDate,
			}
			byKey[line.ProductKey] = agg
		}

		if agg.productName == nil {
			agg.productName = line.ProductName
		}
		if agg.category == nil {
			agg.category = line.Category
		}
		if agg.subcategory == nil {
			agg.subcategory = line.Subcategory
		}
		if agg.cost == nil {
			agg.cost = line.Cost
		}

		agg.orders[line.OrderNumber] = struct{}{}
		agg.customers[line.CustomerKey] = struct{}{}
		agg.totalSales += line.SalesAmount
		agg.totalQuantity += line.Quantity

		// Preço unitário da linha; quantity = 0 não entra na média
		if line.Quantity != 0 {
			agg.unitPriceSum += line.SalesAmount / float64(line.Quantity)
			agg.unitPriceCount++
		}

		if line.OrderDate.Before(agg.firstSaleDate) {
			agg.firstSaleDate = line.OrderDate
		}
		if line.OrderDate.After(agg.lastSaleDate) {
			agg.lastSaleDate = line.OrderDate
		}
	}

	aggregators := make([]*productAggregator, 0, len(byKey))
	for _, agg := range byKey {
		aggregators = append(aggregators, agg)
	}

	sort.Slice(aggregators, func(i, j int) bool {
		return aggregators[i].productKey < aggregators[j].productKey
	})

	return aggregators
}

// buildCustomerReport deriva as métricas secundárias e o segmento a partir
// dos agregados de um cliente
func buildCustomerReport(agg *customerAggregator, evaluationDate time.Time) *domain.CustomerReport {
	totalOrders := len(agg.orders)
	totalSales := utils.RoundWithTwoDecimalPlace(agg.totalSales)
	lifespanMonths := utils.MonthsBetween(agg.firstOrderDate, agg.lastOrderDate)
	recencyMonths := utils.MonthsBetween(agg.lastOrderDate, evaluationDate)

	var age *int
	if agg.birthdate != nil {
		years := utils.AgeAt(*agg.birthdate, evaluationDate)
		age = &years
	}

	avgOrderValue := 0.0
	if totalOrders > 0 {
		avgOrderValue = utils.RoundWithTwoDecimalPlace(totalSales / float64(totalOrders))
	}

	// Clientes de vida curta (um único mês) ficam com o total bruto
	avgMonthlySpend := totalSales
	if lifespanMonths > 0 {
		avgMonthlySpend = utils.RoundWithTwoDecimalPlace(totalSales / float64(lifespanMonths))
	}

	return &domain.CustomerReport{
		CustomerKey:     agg.customerKey,
		CustomerNumber:  agg.customerNumber,
		CustomerName:    customerDisplayName(agg.firstName, agg.lastName),
		Age:             age,
		AgeGroup:        ageGroupFor(age),
		TotalOrders:     totalOrders,
		TotalSales:      totalSales,
		TotalQuantity:   agg.totalQuantity,
		TotalProducts:   len(agg.products),
		LastOrderDate:   agg.lastOrderDate,
		LifespanMonths:  lifespanMonths,
		RecencyMonths:   recencyMonths,
		AvgOrderValue:   avgOrderValue,
		AvgMonthlySpend: avgMonthlySpend,
		Segment:         classifyCustomer(lifespanMonths, totalSales),
		UpdatedAt:       evaluationDate,
	}
}

// buildProductReport deriva as métricas secundárias e o segmento a partir
// dos agregados de um produto
func buildProductReport(agg *productAggregator, evaluationDate time.Time) *domain.ProductReport {
	totalOrders := len(agg.orders)
	totalSales := utils.RoundWithTwoDecimalPlace(agg.totalSales)
	lifespanMonths := utils.MonthsBetween(agg.firstSaleDate, agg.lastSaleDate)
	recencyMonths := utils.MonthsBetween(agg.lastSaleDate, evaluationDate)

	avgSellingPrice := 0.0
	if agg.unitPriceCount > 0 {
		avgSellingPrice = utils.RoundWithOneDecimalPlace(agg.unitPriceSum / float64(agg.unitPriceCount))
	}

	avgOrderRevenue := 0.0
	if totalOrders > 0 {
		avgOrderRevenue = utils.RoundWithTwoDecimalPlace(totalSales / float64(totalOrders))
	}

	avgMonthlyRevenue := totalSales
	if lifespanMonths > 0 {
		avgMonthlyRevenue = utils.RoundWithTwoDecimalPlace(totalSales / float64(lifespanMonths))
	}

	return &domain.ProductReport{
		ProductKey:        agg.productKey,
		ProductName:       agg.productName,
		Category:          agg.category,
		Subcategory:       agg.subcategory,
		Cost:              agg.cost,
		TotalOrders:       totalOrders,
		TotalSales:        totalSales,
		TotalQuantity:     agg.totalQuantity,
		TotalCustomers:    len(agg.customers),
		LastSaleDate:      agg.lastSaleDate,
		LifespanMonths:    lifespanMonths,
		RecencyMonths:     recencyMonths,
		AvgSellingPrice:   avgSellingPrice,
		AvgOrderRevenue:   avgOrderRevenue,
		AvgMonthlyRevenue: avgMonthlyRevenue,
		Segment:           classifyProduct(totalSales),
		UpdatedAt:         evaluationDate,
	}
}

// classifyCustomer aplica as regras de segmento na ordem do negócio
func classifyCustomer(lifespanMonths int, totalSales float64) string {
	if lifespanMonths >= vipMinLifespanMonths && totalSales > vipMinTotalSales {
		return domain.CustomerSegmentVIP
	}

	if lifespanMonths >= vipMinLifespanMonths {
		return domain.CustomerSegmentRegular
	}

	return domain.CustomerSegmentNew
}

// classifyProduct aplica as regras de segmento na ordem do negócio.
// A ordem e os rótulos reproduzem a regra original: "Mid-Range" cobre a
// faixa inferior e "Low-Performers" a intermediária (ver domain.ProductReport)
func classifyProduct(totalSales float64) string {
	if totalSales > highPerformerMinSales {
		return domain.ProductSegmentHighPerformers
	}

	if totalSales <= midRangeMaxSales {
		return domain.ProductSegmentMidRange
	}

	return domain.ProductSegmentLowPerformers
}

// ageGroupFor classifica a idade nas faixas do relatório, avaliadas em
// ordem. Idade desconhecida (birthdate nulo no left join) cai em Unknown.
func ageGroupFor(age *int) string {
	if age == nil {
		return domain.AgeGroupUnknown
	}

	switch {
	case *age < 20:
		return domain.AgeGroupUnder20
	case *age < 30:
		return domain.AgeGroup20To29
	case *age < 40:
		return domain.AgeGroup30To39
	case *age < 50:
		return domain.AgeGroup40To49
	default:
		return domain.AgeGroup50AndAbove
	}
}

func customerDisplayName(firstName, lastName *string) *string {
	parts := make([]string, 0, 2)
	if firstName != nil && *firstName != "" {
		parts = append(parts, *firstName)
	}
	if lastName != nil && *lastName != "" {
		parts = append(parts, *lastName)
	}

	if len(parts) == 0 {
		return nil
	}

	name := strings.Join(parts, " ")
	return &name
}
