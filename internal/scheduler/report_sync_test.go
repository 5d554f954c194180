package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
)

// fakeRefresher implementa reporting.ReportRefresher para os testes
type fakeRefresher struct {
	summary *reporting.RefreshSummary
	err     error
	delay   time.Duration
	calls   int
}

func (f *fakeRefresher) RefreshReports(evaluationDate time.Time) (*reporting.RefreshSummary, error) {
	f.calls++
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return nil, f.err
	}

	summary := *f.summary
	summary.EvaluationDate = evaluationDate
	return &summary, nil
}

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		ReportSync: config.ReportSync{
			CronSchedule: "0 3 * * *",
			Enabled:      enabled,
		},
	}
}

func TestReportSyncService_syncReports(t *testing.T) {
	t.Run("Recomputação bem sucedida atualiza o status", func(t *testing.T) {
		refresher := &fakeRefresher{
			summary: &reporting.RefreshSummary{Customers: 10, Products: 5},
		}

		service := NewReportSyncService(refresher, newTestConfig(true))
		service.syncReports()

		assert.Equal(t, 1, refresher.calls)

		status := service.GetStatus()
		assert.Equal(t, false, status["sync_running"])
		assert.Equal(t, "", status["last_sync_error"])
		assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
		assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
	})

	t.Run("Status pode ser consultado durante uma recomputação em andamento", func(t *testing.T) {
		refresher := &fakeRefresher{
			summary: &reporting.RefreshSummary{Customers: 3, Products: 2},
			delay:   20 * time.Millisecond,
		}

		service := NewReportSyncService(refresher, newTestConfig(true))

		done := make(chan struct{})
		go func() {
			defer close(done)
			service.syncReports()
		}()

		// Leituras concorrentes enquanto a recomputação roda em background
		for {
			select {
			case <-done:
				status := service.GetStatus()
				assert.Equal(t, false, status["sync_running"])
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
				return
			default:
				service.GetStatus()
			}
		}
	})

	t.Run("Falha na recomputação registra o erro no status", func(t *testing.T) {
		refresher := &fakeRefresher{
			err: errors.New("dimensão de clientes com chaves duplicadas"),
		}

		service := NewReportSyncService(refresher, newTestConfig(true))
		service.syncReports()

		status := service.GetStatus()
		assert.Equal(t, false, status["sync_running"])
		assert.Contains(t, status["last_sync_error"], "chaves duplicadas")
		assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
	})
}

func TestReportSyncService_Start(t *testing.T) {
	t.Run("Desabilitado por configuração não agenda nada", func(t *testing.T) {
		refresher := &fakeRefresher{
			summary: &reporting.RefreshSummary{},
		}

		service := NewReportSyncService(refresher, newTestConfig(false))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		err := service.Start(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 0, refresher.calls)
	})
}

func TestReportSyncService_GetStatus(t *testing.T) {
	refresher := &fakeRefresher{summary: &reporting.RefreshSummary{}}
	service := NewReportSyncService(refresher, newTestConfig(true))

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
}
