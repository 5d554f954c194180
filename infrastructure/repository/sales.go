// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

const (
	factSalesTable    = "fact_sales fs"
	dimCustomersTable = "dim_customers"
	dimProductsTable  = "dim_products"
)

// SalesRepository é o lado de leitura da camada fato/dimensão. As linhas
// retornadas já vêm com o join e o filtro de data aplicados: left join com
// a dimensão e somente transações com order_date preenchido.
type SalesRepository interface {
	ListCustomerSales() ([]*domain.CustomerSalesLine, error)
	ListProductSales() ([]*domain.ProductSalesLine, error)
	DuplicateCustomerKeys() ([]int, error)
	DuplicateProductKeys() ([]int, error)
}

type salesRepository struct {
	conn postgres.Conn
}

func NewSalesRepository(conn postgres.Conn) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

func (r *salesRepository) ListCustomerSales() ([]*domain.CustomerSalesLine, error) {
	query, args, err := squirrel.
		Select(
			"fs.order_number",
			"fs.customer_key",
			"fs.product_key",
			"fs.order_date",
			"fs.sales_amount",
			"fs.quantity",
			"dc.customer_number",
			"dc.first_name",
			"dc.last_name",
			"dc.birthdate",
		).
		From(factSalesTable).
		LeftJoin("dim_customers dc ON dc.customer_key = fs.customer_key").
		Where("fs.order_date IS NOT NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	lines := make([]*domain.CustomerSalesLine, 0)
	for rows.Next() {
		line := &domain.CustomerSalesLine{}
		err := rows.Scan(
			&line.OrderNumber,
			&line.CustomerKey,
			&line.ProductKey,
			&line.OrderDate,
			&line.SalesAmount,
			&line.Quantity,
			&line.CustomerNumber,
			&line.FirstName,
			&line.LastName,
			&line.Birthdate,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de vendas: %w", err)
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return lines, nil
}

func (r *salesRepository) ListProductSales() ([]*domain.ProductSalesLine, error) {
	query, args, err := squirrel.
		Select(
			"fs.order_number",
			"fs.customer_key",
			"fs.product_key",
			"fs.order_date",
			"fs.sales_amount",
			"fs.quantity",
			"dp.product_name",
			"dp.category",
			"dp.subcategory",
			"dp.cost",
		).
		From(factSalesTable).
		LeftJoin("dim_products dp ON dp.product_key = fs.product_key").
		Where("fs.order_date IS NOT NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	lines := make([]*domain.ProductSalesLine, 0)
	for rows.Next() {
		line := &domain.ProductSalesLine{}
		err := rows.Scan(
			&line.OrderNumber,
			&line.CustomerKey,
			&line.ProductKey,
			&line.OrderDate,
			&line.SalesAmount,
			&line.Quantity,
			&line.ProductName,
			&line.Category,
			&line.Subcategory,
			&line.Cost,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de vendas: %w", err)
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return lines, nil
}

// DuplicateCustomerKeys retorna as chaves duplicadas na dimensão de
// clientes. A agregação assume dimensão com chave única; o serviço usa
// este método como pré-condição e aborta o cálculo quando há duplicatas.
func (r *salesRepository) DuplicateCustomerKeys() ([]int, error) {
	return r.duplicateKeys(dimCustomersTable, "customer_key")
}

// DuplicateProductKeys retorna as chaves duplicadas na dimensão de produtos
func (r *salesRepository) DuplicateProductKeys() ([]int, error) {
	return r.duplicateKeys(dimProductsTable, "product_key")
}

func (r *salesRepository) duplicateKeys(table, keyColumn string) ([]int, error) {
	query, args, err := squirrel.
		Select(keyColumn).
		From(table).
		GroupBy(keyColumn).
		Having("COUNT(*) > 1").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	keys := make([]int, 0)
	for rows.Next() {
		var key int
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("erro ao escanear chave duplicada: %w", err)
		}
		keys = append(keys, key)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return keys, nil
}
