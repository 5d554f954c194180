package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

// ReportSyncConfig representa a configuração do agendador de relatórios
type ReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ReportSyncService gerencia o agendamento da recomputação dos perfis de
// clientes e produtos
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSyncConfig
	refresher           reporting.ReportRefresher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewReportSyncService cria uma nova instância do serviço de recomputação
func NewReportSyncService(
	refresher reporting.ReportRefresher,
	appConfig *config.Config,
) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: appConfig.ReportSync.CronSchedule,
		SyncEnabled:  appConfig.ReportSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		refresher:   refresher,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recomputação agendada de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recomputação de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recomputação de relatórios: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recomputação de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncReports recalcula os dois perfis e persiste nas tabelas de cache
func (s *ReportSyncService) syncReports() {
	startTime := time.Now()

	// Os campos de status são lidos por GetStatus em outra goroutine;
	// toda escrita acontece sob o mesmo mutex
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recomputação de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando recomputação dos perfis de clientes e produtos")

	// A data de avaliação é o instante da execução; os campos de recência
	// dos dois perfis são relativos a ela
	summary, err := s.refresher.RefreshReports(startTime)
	if err != nil {
		s.syncMutex.Lock()
		s.lastSyncError = err.Error()
		s.syncMutex.Unlock()

		logrus.WithError(err).Error("Erro ao recomputar os relatórios")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncError = ""
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"customers": summary.Customers,
		"products":  summary.Products,
	}).Info("Recomputação de relatórios concluída")

	logrus.Debugf("Resumo da recomputação: %s", utils.PrettyJson(summary))
}

// TriggerManualSync inicia manualmente uma recomputação dos relatórios
func (s *ReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recomputação de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recomputação manual dos relatórios")
	go s.syncReports()
}

// GetStatus retorna o status atual da recomputação
func (s *ReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
