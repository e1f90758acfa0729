// Package scheduler contém o agendamento da sincronização do relatório
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/affiliate-insights-api/internal/config"
	"github.com/vfg2006/affiliate-insights-api/internal/domain"
	"github.com/vfg2006/affiliate-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/affiliate-insights-api/pkg/utils"
)

type ReportSyncConfig struct {
	CronSchedule string
	LookbackDays int
	Enabled      bool
}

type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	reporter            reporting.Reporter
	config              ReportSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastSyncError       string
}

func NewReportSyncService(reporter reporting.Reporter, cfg *config.Config) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: cfg.ReportSync.CronSchedule,
		LookbackDays: cfg.ReportSync.LookbackDays,
		Enabled:      cfg.ReportSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
	}).Info("Configuração do agendador do relatório de afiliados carregada")

	return &ReportSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		reporter:  reporter,
		config:    syncConfig,
	}
}

func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de sincronização do relatório de afiliados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de sincronização do relatório de afiliados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncNow(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na sincronização do relatório de afiliados")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do relatório de afiliados: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do relatório de afiliados")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncNow executa uma sincronização imediata. A janela "since" é derivada do
// lookback configurado, em data sem hora.
func (s *ReportSyncService) SyncNow(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização do relatório de afiliados já está em execução")
		return nil
	}

	runID, err := utils.NewRunID()
	if err != nil {
		runID = "unknown"
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.lastRunID = runID
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	since := time.Now().AddDate(0, 0, -s.config.LookbackDays).Format(time.DateOnly)
	filters := &domain.ReportFilters{
		OrdersSince:     since,
		AffiliatesSince: since,
	}

	logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"since":  since,
	}).Info("Iniciando sincronização do relatório de afiliados")

	report, err := s.reporter.SyncReport(ctx, filters)
	if err != nil {
		s.syncMutex.Lock()
		s.lastSyncError = err.Error()
		s.syncMutex.Unlock()

		logrus.WithError(err).WithField("run_id", runID).Error("Erro ao sincronizar o relatório de afiliados")
		return err
	}

	s.syncMutex.Lock()
	s.lastSyncError = ""
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"run_id":     runID,
		"affiliates": len(report.Affiliates),
		"customers":  len(report.Customers),
	}).Info("Sincronização do relatório de afiliados concluída")

	return nil
}

// TriggerManualSync dispara uma sincronização em background
func (s *ReportSyncService) TriggerManualSync() {
	go func() {
		if err := s.SyncNow(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual do relatório de afiliados")
		}
	}()
}

// GetStatus retorna o estado atual do agendador
func (s *ReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron_schedule":          s.config.CronSchedule,
		"lookback_days":          s.config.LookbackDays,
		"sync_running":           s.syncRunning,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   timeOrNil(s.lastSyncStartedAt),
		"last_sync_completed_at": timeOrNil(s.lastSyncCompletedAt),
		"last_sync_error":        s.lastSyncError,
	}
}

func timeOrNil(t time.Time) any {
	if t.IsZero() {
		return nil
	}

	return t.Format(time.RFC3339)
}
