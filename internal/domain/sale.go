// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// CustomerSalesLine é uma linha da fact_sales com os atributos da dimensão
// de clientes já juntados. O join é left-outer: linhas sem cliente
// correspondente chegam com os atributos da dimensão nulos.
type CustomerSalesLine struct {
	OrderNumber string
	CustomerKey int
	ProductKey  int
	OrderDate   time.Time
	SalesAmount float64
	Quantity    int

	CustomerNumber *string
	FirstName      *string
	LastName       *string
	Birthdate      *time.Time
}

// ProductSalesLine é uma linha da fact_sales com os atributos da dimensão
// de produtos já juntados (mesma semântica left-outer)
type ProductSalesLine struct {
	OrderNumber string
	CustomerKey int
	ProductKey  int
	OrderDate   time.Time
	SalesAmount float64
	Quantity    int

	ProductName *string
	Category    *string
	Subcategory *string
	Cost        *float64
}
