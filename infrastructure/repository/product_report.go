package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

const (
	productReportTable = "product_report pr"
)

// Colunas de ordenação permitidas para os consumidores de BI
var productReportOrderColumns = map[string]string{
	"total_sales":             "pr.total_sales DESC",
	"total_orders":            "pr.total_orders DESC",
	"total_quantity":          "pr.total_quantity DESC",
	"total_customers":         "pr.total_customers DESC",
	"recency_months":          "pr.recency_months ASC",
	"lifespan_months":         "pr.lifespan_months DESC",
	"avg_selling_price":       "pr.avg_selling_price DESC",
	"average_order_revenue":   "pr.average_order_revenue DESC",
	"average_monthly_revenue": "pr.average_monthly_revenue DESC",
}

type ProductReportRepository interface {
	SaveOrUpdate(tx *sql.Tx, reports []*domain.ProductReport) error
	List(filters *domain.ProductReportFilters) ([]*domain.ProductReport, error)
	GetByKey(productKey int) (*domain.ProductReport, error)
}

type productReportRepository struct {
	conn postgres.Conn
}

func NewProductReportRepository(conn postgres.Conn) ProductReportRepository {
	return &productReportRepository{
		conn: conn,
	}
}

// SaveOrUpdate insere o perfil dentro da transação recebida; o commit fica
// a cargo do chamador, que agrupa os dois perfis na mesma transação
func (r *productReportRepository) SaveOrUpdate(tx *sql.Tx, reports []*domain.ProductReport) error {
	if len(reports) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("product_report").
		Columns(
			"product_key",
			"product_name",
			"category",
			"subcategory",
			"cost",
			"total_orders",
			"total_sales",
			"total_quantity",
			"total_customers",
			"last_sale_date",
			"lifespan_months",
			"recency_months",
			"avg_selling_price",
			"average_order_revenue",
			"average_monthly_revenue",
			"product_segment",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, report := range reports {
		query = query.Values(
			report.ProductKey,
			report.ProductName,
			report.Category,
			report.Subcategory,
			report.Cost,
			report.TotalOrders,
			report.TotalSales,
			report.TotalQuantity,
			report.TotalCustomers,
			report.LastSaleDate,
			report.LifespanMonths,
			report.RecencyMonths,
			report.AvgSellingPrice,
			report.AvgOrderRevenue,
			report.AvgMonthlyRevenue,
			report.Segment,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (product_key) DO UPDATE SET
			product_name = EXCLUDED.product_name,
			category = EXCLUDED.category,
			subcategory = EXCLUDED.subcategory,
			cost = EXCLUDED.cost,
			total_orders = EXCLUDED.total_orders,
			total_sales = EXCLUDED.total_sales,
			total_quantity = EXCLUDED.total_quantity,
			total_customers = EXCLUDED.total_customers,
			last_sale_date = EXCLUDED.last_sale_date,
			lifespan_months = EXCLUDED.lifespan_months,
			recency_months = EXCLUDED.recency_months,
			avg_selling_price = EXCLUDED.avg_selling_price,
			average_order_revenue = EXCLUDED.average_order_revenue,
			average_monthly_revenue = EXCLUDED.average_monthly_revenue,
			product_segment = EXCLUDED.product_segment,
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = tx.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *productReportRepository) List(filters *domain.ProductReportFilters) ([]*domain.ProductReport, error) {
	queryBuilder := squirrel.
		Select(productReportColumns()...).
		From(productReportTable).
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.Segment != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"pr.product_segment": filters.Segment})
		}

		if filters.Category != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"pr.category": filters.Category})
		}

		if orderBy, ok := productReportOrderColumns[filters.OrderBy]; ok {
			queryBuilder = queryBuilder.OrderBy(orderBy)
		}
	}

	// Desempate estável por chave para manter o resultado determinístico
	queryBuilder = queryBuilder.OrderBy("pr.product_key ASC")

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.ProductReport, 0)
	for rows.Next() {
		report, err := r.scanProductReport(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear product report: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *productReportRepository) GetByKey(productKey int) (*domain.ProductReport, error) {
	query, args, err := squirrel.
		Select(productReportColumns()...).
		From(productReportTable).
		Where(squirrel.Eq{"pr.product_key": productKey}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	report, err := r.scanProductReportRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear product report: %w", err)
	}

	return report, nil
}

func productReportColumns() []string {
	return []string{
		"pr.product_key",
		"pr.product_name",
		"pr.category",
		"pr.subcategory",
		"pr.cost",
		"pr.total_orders",
		"pr.total_sales",
		"pr.total_quantity",
		"pr.total_customers",
		"pr.last_sale_date",
		"pr.lifespan_months",
		"pr.recency_months",
		"pr.avg_selling_price",
		"pr.average_order_revenue",
		"pr.average_monthly_revenue",
		"pr.product_segment",
		"pr.updated_at",
	}
}

func (r *productReportRepository) scanProductReport(rows *sql.Rows) (*domain.ProductReport, error) {
	report := &domain.ProductReport{}

	err := rows.Scan(
		&report.ProductKey,
		&report.ProductName,
		&report.Category,
		&report.Subcategory,
		&report.Cost,
		&report.TotalOrders,
		&report.TotalSales,
		&report.TotalQuantity,
		&report.TotalCustomers,
		&report.LastSaleDate,
		&report.LifespanMonths,
		&report.RecencyMonths,
		&report.AvgSellingPrice,
		&report.AvgOrderRevenue,
		&report.AvgMonthlyRevenue,
		&report.Segment,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (r *productReportRepository) scanProductReportRow(row *sql.Row) (*domain.ProductReport, error) {
	report := &domain.ProductReport{}

	err := row.Scan(
		&report.ProductKey,
		&report.ProductName,
		&report.Category,
		&report.Subcategory,
		&report.Cost,
		&report.TotalOrders,
		&report.TotalSales,
		&report.TotalQuantity,
		&report.TotalCustomers,
		&report.LastSaleDate,
		&report.LifespanMonths,
		&report.RecencyMonths,
		&report.AvgSellingPrice,
		&report.AvgOrderRevenue,
		&report.AvgMonthlyRevenue,
		&report.Segment,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return report, nil
}
