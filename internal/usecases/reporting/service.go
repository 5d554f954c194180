package reporting

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

// RefreshSummary resume uma recomputação completa dos dois perfis
type RefreshSummary struct {
	EvaluationDate time.Time     `json:"evaluation_date"`
	Customers      int           `json:"customers"`
	Products       int           `json:"products"`
	Duration       time.Duration `json:"duration_ns"`
}

// Service implementa as interfaces Reporter e ReportRefresher
type Service struct {
	salesRepo          repository.SalesRepository
	db                 TransactionRunner
	customerReportRepo repository.CustomerReportRepository
	productReportRepo  repository.ProductReportRepository
	useCache           bool
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(salesRepo repository.SalesRepository) CombinedReporter {
	return &Service{
		salesRepo: salesRepo,
		useCache:  false, // Inicialmente não usa cache
	}
}

// WithCache habilita o uso das tabelas de cache dos relatórios
func (s *Service) WithCache(
	db TransactionRunner,
	customerReportRepo repository.CustomerReportRepository,
	productReportRepo repository.ProductReportRepository,
) *Service {
	s.db = db
	s.customerReportRepo = customerReportRepo
	s.productReportRepo = productReportRepo
	s.useCache = (s.db != nil && s.customerReportRepo != nil && s.productReportRepo != nil)
	return s
}

// BuildCustomerReport executa o pipeline completo do perfil de clientes:
// filtro/join → agregação → métricas derivadas → segmentação. A data de
// avaliação é um parâmetro explícito para manter o cálculo puro e testável.
func (s *Service) BuildCustomerReport(evaluationDate time.Time) ([]*domain.CustomerReport, error) {
	// Pré-condição: a dimensão precisa ter chave única
	duplicates, err := s.salesRepo.DuplicateCustomerKeys()
	if err != nil {
		return nil, fmt.Errorf("erro ao validar unicidade da dimensão de clientes: %w", err)
	}
	if len(duplicates) > 0 {
		return nil, fmt.Errorf("dimensão de clientes com chaves duplicadas: %v", duplicates)
	}

	lines, err := s.salesRepo.ListCustomerSales()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar linhas de vendas por cliente: %w", err)
	}

	aggregators := aggregateCustomerSales(lines)

	reports := make([]*domain.CustomerReport, 0, len(aggregators))
	for _, agg := range aggregators {
		reports = append(reports, buildCustomerReport(agg, evaluationDate))
	}

	logrus.WithFields(logrus.Fields{
		"sales_lines":     len(lines),
		"customers":       len(reports),
		"evaluation_date": evaluationDate.Format(time.DateOnly),
	}).Info("Perfil de clientes calculado")

	return reports, nil
}

// BuildProductReport executa o pipeline completo do perfil de produtos
func (s *Service) BuildProductReport(evaluationDate time.Time) ([]*domain.ProductReport, error) {
	duplicates, err := s.salesRepo.DuplicateProductKeys()
	if err != nil {
		return nil, fmt.Errorf("erro ao validar unicidade da dimensão de produtos: %w", err)
	}
	if len(duplicates) > 0 {
		return nil, fmt.Errorf("dimensão de produtos com chaves duplicadas: %v", duplicates)
	}

	lines, err := s.salesRepo.ListProductSales()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar linhas de vendas por produto: %w", err)
	}

	aggregators := aggregateProductSales(lines)

	reports := make([]*domain.ProductReport, 0, len(aggregators))
	for _, agg := range aggregators {
		reports = append(reports, buildProductReport(agg, evaluationDate))
	}

	logrus.WithFields(logrus.Fields{
		"sales_lines":     len(lines),
		"products":        len(reports),
		"evaluation_date": evaluationDate.Format(time.DateOnly),
	}).Info("Perfil de produtos calculado")

	return reports, nil
}

// RefreshReports recalcula os dois perfis e persiste nas tabelas de cache.
// Os dois pipelines leem o mesmo snapshot e escrevem saídas disjuntas,
// então rodam em paralelo sem lock.
func (s *Service) RefreshReports(evaluationDate time.Time) (*RefreshSummary, error) {
	if !s.useCache {
		return nil, fmt.Errorf("tabelas de cache dos relatórios não estão configuradas")
	}

	startedAt := time.Now()

	var (
		customerReports []*domain.CustomerReport
		productReports  []*domain.ProductReport
		customerErr     error
		productErr      error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		customerReports, customerErr = s.BuildCustomerReport(evaluationDate)
	}()

	go func() {
		defer wg.Done()
		productReports, productErr = s.BuildProductReport(evaluationDate)
	}()

	wg.Wait()

	// Qualquer falha aborta a recomputação inteira: nada de perfis parciais
	if customerErr != nil {
		return nil, fmt.Errorf("erro ao calcular perfil de clientes: %w", customerErr)
	}
	if productErr != nil {
		return nil, fmt.Errorf("erro ao calcular perfil de produtos: %w", productErr)
	}

	// Os dois upserts compartilham a mesma transação: ou o conjunto
	// completo de perfis é publicado, ou nada é
	err := s.db.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if err := s.customerReportRepo.SaveOrUpdate(tx, customerReports); err != nil {
			return fmt.Errorf("erro ao salvar perfil de clientes: %w", err)
		}

		if err := s.productReportRepo.SaveOrUpdate(tx, productReports); err != nil {
			return fmt.Errorf("erro ao salvar perfil de produtos: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RefreshSummary{
		EvaluationDate: evaluationDate,
		Customers:      len(customerReports),
		Products:       len(productReports),
		Duration:       time.Since(startedAt),
	}, nil
}

// GetCustomerReports retorna o perfil de clientes para os consumidores de
// BI. Com cache habilitado lê a tabela customer_report; sem cache calcula
// sob demanda com a data atual como data de avaliação.
func (s *Service) GetCustomerReports(filters *domain.CustomerReportFilters) ([]*domain.CustomerReport, error) {
	if s.useCache {
		return s.customerReportRepo.List(filters)
	}

	reports, err := s.BuildCustomerReport(time.Now())
	if err != nil {
		return nil, err
	}

	return filterCustomerReports(reports, filters), nil
}

func (s *Service) GetCustomerReportByKey(customerKey int) (*domain.CustomerReport, error) {
	if s.useCache {
		return s.customerReportRepo.GetByKey(customerKey)
	}

	reports, err := s.BuildCustomerReport(time.Now())
	if err != nil {
		return nil, err
	}

	for _, report := range reports {
		if report.CustomerKey == customerKey {
			return report, nil
		}
	}

	return nil, nil
}

// GetProductReports retorna o perfil de produtos para os consumidores de BI
func (s *Service) GetProductReports(filters *domain.ProductReportFilters) ([]*domain.ProductReport, error) {
	if s.useCache {
		return s.productReportRepo.List(filters)
	}

	reports, err := s.BuildProductReport(time.Now())
	if err != nil {
		return nil, err
	}

	return filterProductReports(reports, filters), nil
}

func (s *Service) GetProductReportByKey(productKey int) (*domain.ProductReport, error) {
	if s.useCache {
		return s.productReportRepo.GetByKey(productKey)
	}

	reports, err := s.BuildProductReport(time.Now())
	if err != nil {
		return nil, err
	}

	for _, report := range reports {
		if report.ProductKey == productKey {
			return report, nil
		}
	}

	return nil, nil
}

// filterCustomerReports aplica os filtros em memória no caminho sem cache.
// A ordenação customizada (order_by) só existe no caminho com cache.
func filterCustomerReports(reports []*domain.CustomerReport, filters *domain.CustomerReportFilters) []*domain.CustomerReport {
	if filters == nil || (filters.Segment == "" && filters.AgeGroup == "") {
		return reports
	}

	filtered := make([]*domain.CustomerReport, 0, len(reports))
	for _, report := range reports {
		if filters.Segment != "" && report.Segment != filters.Segment {
			continue
		}
		if filters.AgeGroup != "" && report.AgeGroup != filters.AgeGroup {
			continue
		}
		filtered = append(filtered, report)
	}

	return filtered
}

func filterProductReports(reports []*domain.ProductReport, filters *domain.ProductReportFilters) []*domain.ProductReport {
	if filters == nil || (filters.Segment == "" && filters.Category == "") {
		return reports
	}

	filtered := make([]*domain.ProductReport, 0, len(reports))
	for _, report := range reports {
		if filters.Segment != "" && report.Segment != filters.Segment {
			continue
		}
		if filters.Category != "" && (report.Category == nil || *report.Category != filters.Category) {
			continue
		}
		filtered = append(filtered, report)
	}

	return filtered
}
