package reporting

import (
	"context"
	"database/sql"
	"time"

	"github.com/vfg2006/sales-report-api/internal/domain"
)

// Reporter expõe os perfis consolidados para os consumidores de BI
type Reporter interface {
	BuildCustomerReport(evaluationDate time.Time) ([]*domain.CustomerReport, error)
	BuildProductReport(evaluationDate time.Time) ([]*domain.ProductReport, error)
	GetCustomerReports(filters *domain.CustomerReportFilters) ([]*domain.CustomerReport, error)
	GetCustomerReportByKey(customerKey int) (*domain.CustomerReport, error)
	GetProductReports(filters *domain.ProductReportFilters) ([]*domain.ProductReport, error)
	GetProductReportByKey(productKey int) (*domain.ProductReport, error)
}

// ReportRefresher recalcula os dois perfis e persiste nas tabelas de cache
type ReportRefresher interface {
	RefreshReports(evaluationDate time.Time) (*RefreshSummary, error)
}

// TransactionRunner agrupa os upserts dos dois perfis em uma única
// transação; satisfeita pela conexão Postgres
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

// CombinedReporter combina as duas interfaces implementadas pelo Service
type CombinedReporter interface {
	Reporter
	ReportRefresher
}
