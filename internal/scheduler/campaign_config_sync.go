package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/internal/config"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/campaigns"
)

// CampaignConfigSyncConfig representa a configuração do agendador de sync das
// configurações de campanha
type CampaignConfigSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CampaignConfigSyncService gerencia o sync diário das configurações das
// campanhas com o Google Ads
type CampaignConfigSyncService struct {
	scheduler           *gocron.Scheduler
	config              CampaignConfigSyncConfig
	appConfig           *config.Config
	campaignService     *campaigns.Service
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewCampaignConfigSyncService cria uma nova instância do serviço de sync de
// configurações de campanha
func NewCampaignConfigSyncService(
	campaignService *campaigns.Service,
	appConfig *config.Config,
) *CampaignConfigSyncService {
	syncConfig := CampaignConfigSyncConfig{
		CronSchedule: appConfig.CampaignConfigSync.CronSchedule,
		SyncEnabled:  appConfig.CampaignConfigSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sync de campanhas carregada")

	return &CampaignConfigSyncService{
		scheduler:       scheduler,
		config:          syncConfig,
		appConfig:       appConfig,
		campaignService: campaignService,
		syncRunning:     false,
	}
}

// Start inicia o agendador
func (s *CampaignConfigSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sync de configurações de campanha desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sync de configurações de campanha")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllCampaignConfigs()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sync de configurações de campanha: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sync de configurações de campanha")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllCampaignConfigs sobrescreve a seção de configurações da plataforma de
// todas as campanhas com os valores atuais do Google Ads
func (s *CampaignConfigSyncService) syncAllCampaignConfigs() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sync de configurações de campanha já em andamento, ignorando")
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

	logrus.Info("Iniciando sync das configurações de campanha com o Google Ads")

	if err := s.campaignService.SyncPlatformSettings(); err != nil {
		logrus.WithError(err).Error("Erro durante o sync de configurações de campanha")
		return
	}

	duration := time.Since(startTime)
	logrus.WithField("duration", duration.String()).Info("Sync de configurações de campanha concluído")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente um sync de configurações
func (s *CampaignConfigSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sync de configurações de campanha já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sync manual de configurações de campanha")
	go s.syncAllCampaignConfigs()
}

// GetStatus retorna o status atual do agendador
func (s *CampaignConfigSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
