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
	customerReportTable = "customer_report cr"
)

// Colunas de ordenação permitidas para os consumidores de BI
var customerReportOrderColumns = map[string]string{
	"total_sales":           "cr.total_sales DESC",
	"total_orders":          "cr.total_orders DESC",
	"total_quantity":        "cr.total_quantity DESC",
	"recency_months":        "cr.recency_months ASC",
	"lifespan_months":       "cr.lifespan_months DESC",
	"average_order_value":   "cr.average_order_value DESC",
	"average_monthly_spend": "cr.average_monthly_spend DESC",
}

type CustomerReportRepository interface {
	SaveOrUpdate(tx *sql.Tx, reports []*domain.CustomerReport) error
	List(filters *domain.CustomerReportFilters) ([]*domain.CustomerReport, error)
	GetByKey(customerKey int) (*domain.CustomerReport, error)
}

type customerReportRepository struct {
	conn postgres.Conn
}

func NewCustomerReportRepository(conn postgres.Conn) CustomerReportRepository {
	return &customerReportRepository{
		conn: conn,
	}
}

// SaveOrUpdate insere o perfil dentro da transação recebida; o commit fica
// a cargo do chamador, que agrupa os dois perfis na mesma transação
func (r *customerReportRepository) SaveOrUpdate(tx *sql.Tx, reports []*domain.CustomerReport) error {
	if len(reports) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("customer_report").
		Columns(
			"customer_key",
			"customer_number",
			"customer_name",
			"age",
			"age_group",
			"total_orders",
			"total_sales",
			"total_quantity",
			"total_products",
			"last_order_date",
			"lifespan_months",
			"recency_months",
			"average_order_value",
			"average_monthly_spend",
			"customer_segment",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, report := range reports {
		query = query.Values(
			report.CustomerKey,
			report.CustomerNumber,
			report.CustomerName,
			report.Age,
			report.AgeGroup,
			report.TotalOrders,
			report.TotalSales,
			report.TotalQuantity,
			report.TotalProducts,
			report.LastOrderDate,
			report.LifespanMonths,
			report.RecencyMonths,
			report.AvgOrderValue,
			report.AvgMonthlySpend,
			report.Segment,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (customer_key) DO UPDATE SET
			customer_number = EXCLUDED.customer_number,
			customer_name = EXCLUDED.customer_name,
			age = EXCLUDED.age,
			age_group = EXCLUDED.age_group,
			total_orders = EXCLUDED.total_orders,
			total_sales = EXCLUDED.total_sales,
			total_quantity = EXCLUDED.total_quantity,
			total_products = EXCLUDED.total_products,
			last_order_date = EXCLUDED.last_order_date,
			lifespan_months = EXCLUDED.lifespan_months,
			recency_months = EXCLUDED.recency_months,
			average_order_value = EXCLUDED.average_order_value,
			average_monthly_spend = EXCLUDED.average_monthly_spend,
			customer_segment = EXCLUDED.customer_segment,
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

func (r *customerReportRepository) List(filters *domain.CustomerReportFilters) ([]*domain.CustomerReport, error) {
	queryBuilder := squirrel.
		Select(customerReportColumns()...).
		From(customerReportTable).
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.Segment != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"cr.customer_segment": filters.Segment})
		}

		if filters.AgeGroup != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"cr.age_group": filters.AgeGroup})
		}

		if orderBy, ok := customerReportOrderColumns[filters.OrderBy]; ok {
			queryBuilder = queryBuilder.OrderBy(orderBy)
		}
	}

	// Desempate estável por chave para manter o resultado determinístico
	queryBuilder = queryBuilder.OrderBy("cr.customer_key ASC")

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.CustomerReport, 0)
	for rows.Next() {
		report, err := r.scanCustomerReport(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear customer report: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *customerReportRepository) GetByKey(customerKey int) (*domain.CustomerReport, error) {
	query, args, err := squirrel.
		Select(customerReportColumns()...).
		From(customerReportTable).
		Where(squirrel.Eq{"cr.customer_key": customerKey}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	report, err := r.scanCustomerReportRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear customer report: %w", err)
	}

	return report, nil
}

func customerReportColumns() []string {
	return []string{
		"cr.customer_key",
		"cr.customer_number",
		"cr.customer_name",
		"cr.age",
		"cr.age_group",
		"cr.total_orders",
		"cr.total_sales",
		"cr.total_quantity",
		"cr.total_products",
		"cr.last_order_date",
		"cr.lifespan_months",
		"cr.recency_months",
		"cr.average_order_value",
		"cr.average_monthly_spend",
		"cr.customer_segment",
		"cr.updated_at",
	}
}

func (r *customerReportRepository) scanCustomerReport(rows *sql.Rows) (*domain.CustomerReport, error) {
	report := &domain.CustomerReport{}

	err := rows.Scan(
		&report.CustomerKey,
		&report.CustomerNumber,
		&report.CustomerName,
		&report.Age,
		&report.AgeGroup,
		&report.TotalOrders,
		&report.TotalSales,
		&report.TotalQuantity,
		&report.TotalProducts,
		&report.LastOrderDate,
		&report.LifespanMonths,
		&report.RecencyMonths,
		&report.AvgOrderValue,
		&report.AvgMonthlySpend,
		&report.Segment,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (r *customerReportRepository) scanCustomerReportRow(row *sql.Row) (*domain.CustomerReport, error) {
	report := &domain.CustomerReport{}

	err := row.Scan(
		&report.CustomerKey,
		&report.CustomerNumber,
		&report.CustomerName,
		&report.Age,
		&report.AgeGroup,
		&report.TotalOrders,
		&report.TotalSales,
		&report.TotalQuantity,
		&report.TotalProducts,
		&report.LastOrderDate,
		&report.LifespanMonths,
		&report.RecencyMonths,
		&report.AvgOrderValue,
		&report.AvgMonthlySpend,
		&report.Segment,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return report, nil
}
