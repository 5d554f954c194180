package reporting

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// fakeTxRunner implementa TransactionRunner: executa a função diretamente e
// registra se ela falhou (o equivalente a um rollback)
type fakeTxRunner struct {
	calls      int
	rolledBack bool
}

func (f *fakeTxRunner) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	f.calls++
	if err := fn(nil); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

func TestService_BuildCustomerReport(t *testing.T) {
	evaluationDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Pipeline completo com cliente VIP", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
		service := &Service{salesRepo: mockSalesRepo}

		mockSalesRepo.EXPECT().DuplicateCustomerKeys().Return(nil, nil)
		mockSalesRepo.EXPECT().ListCustomerSales().Return([]*domain.CustomerSalesLine{
			{
				OrderNumber: "SO-1", CustomerKey: 7, ProductKey: 100,
				OrderDate: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), SalesAmount: 2500, Quantity: 2,
				FirstName: stringPtr("Maria"), LastName: stringPtr("Silva"),
			},
			{
				OrderNumber: "SO-1", CustomerKey: 7, ProductKey: 200,
				OrderDate: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), SalesAmount: 500, Quantity: 1,
			},
			{
				OrderNumber: "SO-2", CustomerKey: 7, ProductKey: 100,
				OrderDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), SalesAmount: 3000, Quantity: 3,
			},
		}, nil)

		reports, err := service.BuildCustomerReport(evaluationDate)

		assert.NoError(t, err)
		assert.Len(t, reports, 1)

		report := reports[0]
		assert.Equal(t, 7, report.CustomerKey)
		assert.Equal(t, "Maria Silva", *report.CustomerName)
		assert.Equal(t, 2, report.TotalOrders)
		assert.Equal(t, 6000.0, report.TotalSales)
		assert.Equal(t, 6, report.TotalQuantity)
		assert.Equal(t, 2, report.TotalProducts)
		assert.Equal(t, 14, report.LifespanMonths)
		assert.Equal(t, 3, report.RecencyMonths)
		assert.Equal(t, 3000.0, report.AvgOrderValue)
		assert.InDelta(t, 428.57, report.AvgMonthlySpend, 0.001)
		assert.Equal(t, domain.CustomerSegmentVIP, report.Segment)
	})

	t.Run("Dimensão com chaves duplicadas aborta o pipeline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
		service := &Service{salesRepo: mockSalesRepo}

		mockSalesRepo.EXPECT().DuplicateCustomerKeys().Return([]int{42, 99}, nil)

		reports, err := service.BuildCustomerReport(evaluationDate)

		assert.Error(t, err)
		assert.Nil(t, reports)
		assert.Contains(t, err.Error(), "chaves duplicadas")
	})

	t.Run("Linhas sem atributos da dimensão caem em Unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
		service := &Service{salesRepo: mockSalesRepo}

		orderDate := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
		mockSalesRepo.EXPECT().DuplicateCustomerKeys().Return(nil, nil)
		mockSalesRepo.EXPECT().ListCustomerSales().Return([]*domain.CustomerSalesLine{
			{OrderNumber: "SO-9", CustomerKey: 9, ProductKey: 1, OrderDate: orderDate, SalesAmount: 150, Quantity: 1},
		}, nil)

		reports, err := service.BuildCustomerReport(evaluationDate)

		assert.NoError(t, err)
		assert.Len(t, reports, 1)
		assert.Nil(t, reports[0].Age)
		assert.Equal(t, domain.AgeGroupUnknown, reports[0].AgeGroup)
		assert.Nil(t, reports[0].CustomerName)
		assert.Equal(t, 150.0, reports[0].AvgMonthlySpend)
		assert.Equal(t, domain.CustomerSegmentNew, reports[0].Segment)
	})
}

func TestService_BuildProductReport(t *testing.T) {
	evaluationDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Segmentos de produto pelos limiares de receita", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
		service := &Service{salesRepo: mockSalesRepo}

		saleDate := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
		mockSalesRepo.EXPECT().DuplicateProductKeys().Return(nil, nil)
		mockSalesRepo.EXPECT().ListProductSales().Return([]*domain.ProductSalesLine{
			{OrderNumber: "SO-1", CustomerKey: 1, ProductKey: 1, OrderDate: saleDate, SalesAmount: 55000, Quantity: 10},
			{OrderNumber: "SO-2", CustomerKey: 2, ProductKey: 2, OrderDate: saleDate, SalesAmount: 8000, Quantity: 4},
			{OrderNumber: "SO-3", CustomerKey: 3, ProductKey: 3, OrderDate: saleDate, SalesAmount: 25000, Quantity: 5},
		}, nil)

		reports, err := service.BuildProductReport(evaluationDate)

		assert.NoError(t, err)
		assert.Len(t, reports, 3)

		assert.Equal(t, domain.ProductSegmentHighPerformers, reports[0].Segment)
		assert.Equal(t, domain.ProductSegmentMidRange, reports[1].Segment)
		assert.Equal(t, domain.ProductSegmentLowPerformers, reports[2].Segment)
	})

	t.Run("Dimensão de produtos com chaves duplicadas aborta o pipeline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
		service := &Service{salesRepo: mockSalesRepo}

		mockSalesRepo.EXPECT().DuplicateProductKeys().Return([]int{5}, nil)

		reports, err := service.BuildProductReport(evaluationDate)

		assert.Error(t, err)
		assert.Nil(t, reports)
	})
}

func TestService_RefreshReports(t *testing.T) {
	evaluationDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	orderDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	customerLines := []*domain.CustomerSalesLine{
		{OrderNumber: "SO-1", CustomerKey: 1, ProductKey: 1, OrderDate: orderDate, SalesAmount: 100, Quantity: 1},
	}
	productLines := []*domain.ProductSalesLine{
		{OrderNumber: "SO-1", CustomerKey: 1, ProductKey: 1, OrderDate: orderDate, SalesAmount: 100, Quantity: 1},
	}

	t.Run("Recomputa e persiste os dois perfis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
		mockCustomerRepo := mocks.NewMockCustomerReportRepository(ctrl)
		mockProductRepo := mocks.NewMockProductReportRepository(ctrl)
		txRunner := &fakeTxRunner{}

		service := &Service{
			salesRepo:          mockSalesRepo,
			db:                 txRunner,
			customerReportRepo: mockCustomerRepo,
			productReportRepo:  mockProductRepo,
			useCache:           true,
		}

		mockSalesRepo.EXPECT().DuplicateCustomerKeys().Return(nil, nil)
		mockSalesRepo.EXPECT().ListCustomerSales().Return(customerLines, nil)
		mockSalesRepo.EXPECT().DuplicateProductKeys().Return(nil, nil)
		mockSalesRepo.EXPECT().ListProductSales().Return(productLines, nil)

		mockCustomerRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Len(1)).Return(nil)
		mockProductRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Len(1)).Return(nil)

		summary, err := service.RefreshReports(evaluationDate)

		assert.NoError(t, err)
		assert.Equal(t, 1, summary.Customers)
		assert.Equal(t, 1, summary.Products)
		assert.Equal(t, evaluationDate, summary.EvaluationDate)
		assert.Equal(t, 1, txRunner.calls)
	})

	t.Run("Falha ao persistir produtos descarta a transação inteira", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
		mockCustomerRepo := mocks.NewMockCustomerReportRepository(ctrl)
		mockProductRepo := mocks.NewMockProductReportRepository(ctrl)
		txRunner := &fakeTxRunner{}

		service := &Service{
			salesRepo:          mockSalesRepo,
			db:                 txRunner,
			customerReportRepo: mockCustomerRepo,
			productReportRepo:  mockProductRepo,
			useCache:           true,
		}

		mockSalesRepo.EXPECT().DuplicateCustomerKeys().Return(nil, nil)
		mockSalesRepo.EXPECT().ListCustomerSales().Return(customerLines, nil)
		mockSalesRepo.EXPECT().DuplicateProductKeys().Return(nil, nil)
		mockSalesRepo.EXPECT().ListProductSales().Return(productLines, nil)

		// O upsert de clientes roda primeiro na mesma transação; a falha no
		// de produtos precisa desfazer os dois
		mockCustomerRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Len(1)).Return(nil)
		mockProductRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Len(1)).Return(errors.New("disco cheio"))

		summary, err := service.RefreshReports(evaluationDate)

		assert.Error(t, err)
		assert.Nil(t, summary)
		assert.Contains(t, err.Error(), "erro ao salvar perfil de produtos")
		assert.True(t, txRunner.rolledBack)
	})

	t.Run("Falha em um dos pipelines aborta sem persistir nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
		mockCustomerRepo := mocks.NewMockCustomerReportRepository(ctrl)
		mockProductRepo := mocks.NewMockProductReportRepository(ctrl)

		service := &Service{
			salesRepo:          mockSalesRepo,
			customerReportRepo: mockCustomerRepo,
			productReportRepo:  mockProductRepo,
			useCache:           true,
		}

		mockSalesRepo.EXPECT().DuplicateCustomerKeys().Return(nil, errors.New("conexão perdida"))
		mockSalesRepo.EXPECT().DuplicateProductKeys().Return(nil, nil)
		mockSalesRepo.EXPECT().ListProductSales().Return(productLines, nil)

		// Nenhum SaveOrUpdate deve ser chamado
		summary, err := service.RefreshReports(evaluationDate)

		assert.Error(t, err)
		assert.Nil(t, summary)
	})

	t.Run("Sem tabelas de cache configuradas retorna erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
		service := &Service{salesRepo: mockSalesRepo}

		summary, err := service.RefreshReports(evaluationDate)

		assert.Error(t, err)
		assert.Nil(t, summary)
	})
}

func TestService_GetCustomerReports(t *testing.T) {
	t.Run("Com cache habilitado lê da tabela de relatório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
		mockCustomerRepo := mocks.NewMockCustomerReportRepository(ctrl)
		mockProductRepo := mocks.NewMockProductReportRepository(ctrl)

		service := NewService(mockSalesRepo).(*Service).WithCache(&fakeTxRunner{}, mockCustomerRepo, mockProductRepo)

		filters := &domain.CustomerReportFilters{Segment: domain.CustomerSegmentVIP}
		expected := []*domain.CustomerReport{{CustomerKey: 7, Segment: domain.CustomerSegmentVIP}}

		mockCustomerRepo.EXPECT().List(filters).Return(expected, nil)

		reports, err := service.GetCustomerReports(filters)

		assert.NoError(t, err)
		assert.Equal(t, expected, reports)
	})

	t.Run("Sem cache calcula sob demanda e filtra em memória", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
		service := &Service{salesRepo: mockSalesRepo}

		longAgo := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
		recent := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

		mockSalesRepo.EXPECT().DuplicateCustomerKeys().Return(nil, nil)
		mockSalesRepo.EXPECT().ListCustomerSales().Return([]*domain.CustomerSalesLine{
			{OrderNumber: "SO-1", CustomerKey: 1, ProductKey: 1, OrderDate: longAgo, SalesAmount: 9000, Quantity: 1},
			{OrderNumber: "SO-2", CustomerKey: 1, ProductKey: 1, OrderDate: recent, SalesAmount: 1000, Quantity: 1},
			{OrderNumber: "SO-3", CustomerKey: 2, ProductKey: 1, OrderDate: recent, SalesAmount: 50, Quantity: 1},
		}, nil)

		filters := &domain.CustomerReportFilters{Segment: domain.CustomerSegmentVIP}
		reports, err := service.GetCustomerReports(filters)

		assert.NoError(t, err)
		assert.Len(t, reports, 1)
		assert.Equal(t, 1, reports[0].CustomerKey)
		assert.Equal(t, domain.CustomerSegmentVIP, reports[0].Segment)
	})
}

func TestService_GetProductReportByKey(t *testing.T) {
	t.Run("Com cache habilitado busca pela chave", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
		mockCustomerRepo := mocks.NewMockCustomerReportRepository(ctrl)
		mockProductRepo := mocks.NewMockProductReportRepository(ctrl)

		service := NewService(mockSalesRepo).(*Service).WithCache(&fakeTxRunner{}, mockCustomerRepo, mockProductRepo)

		expected := &domain.ProductReport{ProductKey: 42}
		mockProductRepo.EXPECT().GetByKey(42).Return(expected, nil)

		report, err := service.GetProductReportByKey(42)

		assert.NoError(t, err)
		assert.Equal(t, expected, report)
	})

	t.Run("Sem cache retorna nil para chave inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
		service := &Service{salesRepo: mockSalesRepo}

		mockSalesRepo.EXPECT().DuplicateProductKeys().Return(nil, nil)
		mockSalesRepo.EXPECT().ListProductSales().Return([]*domain.ProductSalesLine{}, nil)

		report, err := service.GetProductReportByKey(42)

		assert.NoError(t, err)
		assert.Nil(t, report)
	})
}
