package handler

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
)

// productReportFiltersFromRequest extrai os filtros da query string
func productReportFiltersFromRequest(r *http.Request) *domain.ProductReportFilters {
	query := r.URL.Query()
	return &domain.ProductReportFilters{
		Segment:  query.Get("segment"),
		Category: query.Get("category"),
		OrderBy:  query.Get("order_by"),
	}
}

// ListProductReports retorna o perfil consolidado de produtos
func ListProductReports(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := productReportFiltersFromRequest(r)

		reports, err := service.GetProductReports(filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao obter perfil de produtos")
			apiErrors.WriteError(w, apiErrors.ErrReportComputation, "Erro ao obter perfil de produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"total":   len(reports),
			"results": reports,
		})
	}
}

// GetProductReport retorna o perfil de um único produto pela chave
func GetProductReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyStr := httprouter.ParamsFromContext(r.Context()).ByName("key")
		key, err := strconv.Atoi(keyStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Chave de produto inválida", nil)
			return
		}

		report, err := service.GetProductReportByKey(key)
		if err != nil {
			logrus.WithError(err).Error("Erro ao obter perfil do produto")
			apiErrors.WriteError(w, apiErrors.ErrReportComputation, "Erro ao obter perfil do produto", nil)
			return
		}

		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Produto não encontrado no relatório", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}

// ExportProductReports exporta o perfil de produtos em CSV
func ExportProductReports(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := productReportFiltersFromRequest(r)

		reports, err := service.GetProductReports(filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao exportar perfil de produtos")
			apiErrors.WriteError(w, apiErrors.ErrReportComputation, "Erro ao exportar perfil de produtos", nil)
			return
		}

		filename := fmt.Sprintf("product_report_%s.csv", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		writer := csv.NewWriter(w)
		defer writer.Flush()

		header := []string{
			"product_key", "product_name", "category", "subcategory", "cost",
			"total_orders", "total_sales", "total_quantity", "total_customers",
			"last_sale_date", "lifespan_months", "recency_months",
			"avg_selling_price", "average_order_revenue", "average_monthly_revenue",
			"product_segment",
		}
		if err := writer.Write(header); err != nil {
			logrus.WithError(err).Error("Erro ao escrever cabeçalho do CSV")
			return
		}

		for _, report := range reports {
			record := []string{
				strconv.Itoa(report.ProductKey),
				stringOrEmpty(report.ProductName),
				stringOrEmpty(report.Category),
				stringOrEmpty(report.Subcategory),
				floatOrEmpty(report.Cost),
				strconv.Itoa(report.TotalOrders),
				formatFloat(report.TotalSales),
				strconv.Itoa(report.TotalQuantity),
				strconv.Itoa(report.TotalCustomers),
				report.LastSaleDate.Format(time.DateOnly),
				strconv.Itoa(report.LifespanMonths),
				strconv.Itoa(report.RecencyMonths),
				formatFloat(report.AvgSellingPrice),
				formatFloat(report.AvgOrderRevenue),
				formatFloat(report.AvgMonthlyRevenue),
				report.Segment,
			}
			if err := writer.Write(record); err != nil {
				logrus.WithError(err).Error("Erro ao escrever linha do CSV")
				return
			}
		}
	}
}
