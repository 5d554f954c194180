package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
)

// ReportSyncStatuser é o contrato do agendador exposto pelas rotas
// administrativas dos relatórios
type ReportSyncStatuser interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// RefreshReports dispara manualmente a recomputação dos perfis
func RefreshReports(syncService ReportSyncStatuser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recomputação não disponível", nil)
			return
		}

		logrus.Info("Recomputação manual dos relatórios solicitada")
		syncService.TriggerManualSync()

		// A recomputação roda em background; o status fica em /v1/reports/status
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Recomputação dos relatórios iniciada",
		})
	}
}

// GetReportSyncStatus retorna o status da recomputação dos perfis
func GetReportSyncStatus(syncService ReportSyncStatuser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recomputação não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(syncService.GetStatus())
	}
}
