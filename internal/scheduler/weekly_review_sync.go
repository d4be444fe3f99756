package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/internal/config"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/reviewing"
)

// WeeklyReviewSyncConfig representa a configuração do agendador da revisão semanal
type WeeklyReviewSyncConfig struct {
	CronSchedule string
	DryRun       bool
	SyncEnabled  bool
}

// WeeklyReviewSyncService gerencia o agendamento e execução da revisão semanal
// de assets e orçamento das campanhas
type WeeklyReviewSyncService struct {
	scheduler           *gocron.Scheduler
	config              WeeklyReviewSyncConfig
	appConfig           *config.Config
	reviewService       *reviewing.Service
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *reviewing.Result
}

// NewWeeklyReviewSyncService cria uma nova instância do serviço de revisão semanal
func NewWeeklyReviewSyncService(
	reviewService *reviewing.Service,
	appConfig *config.Config,
) *WeeklyReviewSyncService {
	reviewConfig := WeeklyReviewSyncConfig{
		CronSchedule: appConfig.WeeklyReviewSync.CronSchedule,
		DryRun:       appConfig.WeeklyReviewSync.DryRun,
		SyncEnabled:  appConfig.WeeklyReviewSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reviewConfig.CronSchedule,
		"dry_run":       reviewConfig.DryRun,
		"sync_enabled":  reviewConfig.SyncEnabled,
	}).Info("Configuração do agendador da revisão semanal carregada")

	return &WeeklyReviewSyncService{
		scheduler:     scheduler,
		config:        reviewConfig,
		appConfig:     appConfig,
		reviewService: reviewService,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *WeeklyReviewSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Revisão semanal desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da revisão semanal")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runWeeklyReview()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar revisão semanal: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da revisão semanal")
		s.scheduler.Stop()
	}()

	return nil
}

// runWeeklyReview executa a revisão semanal completa, garantindo uma
// execução por vez
func (s *WeeklyReviewSyncService) runWeeklyReview() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Revisão semanal já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithField("dry_run", s.config.DryRun).Info("Iniciando revisão semanal de campanhas")

	result, err := s.reviewService.Run(context.Background(), s.config.DryRun)
	if err != nil {
		logrus.WithError(err).Error("Erro durante a revisão semanal")
		return
	}

	s.lastResult = result

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":     duration.String(),
		"campaigns":    result.CampaignsProcessed,
		"flagged":      result.AssetsFlagged,
		"replacements": result.ReplacementsGenerated,
		"alerts":       result.EmergencyAlerts,
	}).Info("Revisão semanal concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma revisão semanal
func (s *WeeklyReviewSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Revisão semanal já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando revisão semanal manual")
	go s.runWeeklyReview()
}

// GetStatus retorna o status atual do agendador
func (s *WeeklyReviewSyncService) GetStatus() map[string]any {
	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"dry_run":                s.config.DryRun,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastResult != nil {
		status["last_season"] = s.lastResult.Season
		status["last_campaigns_processed"] = s.lastResult.CampaignsProcessed
		status["last_assets_flagged"] = s.lastResult.AssetsFlagged
		status["last_emergency_alerts"] = s.lastResult.EmergencyAlerts
	}

	return status
}
