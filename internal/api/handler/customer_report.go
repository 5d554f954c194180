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

// customerReportFiltersFromRequest extrai os filtros da query string
func customerReportFiltersFromRequest(r *http.Request) *domain.CustomerReportFilters {
	query := r.URL.Query()
	return &domain.CustomerReportFilters{
		Segment:  query.Get("segment"),
		AgeGroup: query.Get("age_group"),
		OrderBy:  query.Get("order_by"),
	}
}

// ListCustomerReports retorna o perfil consolidado de clientes
func ListCustomerReports(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := customerReportFiltersFromRequest(r)

		reports, err := service.GetCustomerReports(filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao obter perfil de clientes")
			apiErrors.WriteError(w, apiErrors.ErrReportComputation, "Erro ao obter perfil de clientes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"total":   len(reports),
			"results": reports,
		})
	}
}

// GetCustomerReport retorna o perfil de um único cliente pela chave
func GetCustomerReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyStr := httprouter.ParamsFromContext(r.Context()).ByName("key")
		key, err := strconv.Atoi(keyStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Chave de cliente inválida", nil)
			return
		}

		report, err := service.GetCustomerReportByKey(key)
		if err != nil {
			logrus.WithError(err).Error("Erro ao obter perfil do cliente")
			apiErrors.WriteError(w, apiErrors.ErrReportComputation, "Erro ao obter perfil do cliente", nil)
			return
		}

		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Cliente não encontrado no relatório", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}

// ExportCustomerReports exporta o perfil de clientes em CSV
func ExportCustomerReports(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := customerReportFiltersFromRequest(r)

		reports, err := service.GetCustomerReports(filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao exportar perfil de clientes")
			apiErrors.WriteError(w, apiErrors.ErrReportComputation, "Erro ao exportar perfil de clientes", nil)
			return
		}

		filename := fmt.Sprintf("customer_report_%s.csv", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		writer := csv.NewWriter(w)
		defer writer.Flush()

		header := []string{
			"customer_key", "customer_number", "customer_name", "age", "age_group",
			"total_orders", "total_sales", "total_quantity", "total_products",
			"last_order_date", "lifespan_months", "recency_months",
			"average_order_value", "average_monthly_spend", "customer_segment",
		}
		if err := writer.Write(header); err != nil {
			logrus.WithError(err).Error("Erro ao escrever cabeçalho do CSV")
			return
		}

		for _, report := range reports {
			record := []string{
				strconv.Itoa(report.CustomerKey),
				stringOrEmpty(report.CustomerNumber),
				stringOrEmpty(report.CustomerName),
				intOrEmpty(report.Age),
				report.AgeGroup,
				strconv.Itoa(report.TotalOrders),
				formatFloat(report.TotalSales),
				strconv.Itoa(report.TotalQuantity),
				strconv.Itoa(report.TotalProducts),
				report.LastOrderDate.Format(time.DateOnly),
				strconv.Itoa(report.LifespanMonths),
				strconv.Itoa(report.RecencyMonths),
				formatFloat(report.AvgOrderValue),
				formatFloat(report.AvgMonthlySpend),
				report.Segment,
			}
			if err := writer.Write(record); err != nil {
				logrus.WithError(err).Error("Erro ao escrever linha do CSV")
				return
			}
		}
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrEmpty(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

func floatOrEmpty(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
