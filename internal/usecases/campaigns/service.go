package campaigns

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/infrastructure/repository"
	"github.com/risingfishing/pmax-optimizer-api/internal/config"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
	"github.com/risingfishing/pmax-optimizer-api/pkg/timeutil"
)

// StaleThresholdHours define quando as configurações da plataforma precisam
// de um novo sync
const StaleThresholdHours = 24

// SettingsSyncer busca as configurações atuais de uma campanha no Google Ads
type SettingsSyncer interface {
	GetCampaignSettings(campaignID string) (*domain.PlatformSettings, error)
}

// Service combina a estratégia manual do operador, as configurações
// sincronizadas do Google Ads e o perfil de imagens de cada campanha
type Service struct {
	cfg        *config.Config
	configRepo repository.CampaignConfigRepository
	syncer     SettingsSyncer
}

func NewService(
	cfg *config.Config,
	configRepo repository.CampaignConfigRepository,
	syncer SettingsSyncer,
) *Service {
	return &Service{
		cfg:        cfg,
		configRepo: configRepo,
		syncer:     syncer,
	}
}

// LoadCampaigns carrega todas as campanhas, sincronizando antes as que estão
// com configurações de plataforma defasadas
func (s *Service) LoadCampaigns() ([]*domain.CampaignConfig, error) {
	configs, err := s.configRepo.GetAll()
	if err != nil {
		return nil, err
	}

	if s.syncer == nil {
		return configs, nil
	}

	synced := false
	for _, config := range configs {
		if !IsStale(config) {
			continue
		}

		logrus.WithField("campaign", config.CampaignName).
			Infof("Configurações defasadas (>%dh), sincronizando com o Google Ads", StaleThresholdHours)

		if err := s.syncCampaign(config); err == nil {
			synced = true
		}
	}

	if !synced {
		return configs, nil
	}

	return s.configRepo.GetAll()
}

// SyncPlatformSettings força o sync de todas as campanhas, defasadas ou não.
// Só a seção de configurações da plataforma é sobrescrita; a estratégia
// manual e o perfil de imagens ficam intactos.
func (s *Service) SyncPlatformSettings() error {
	configs, err := s.configRepo.GetAll()
	if err != nil {
		return err
	}

	for _, config := range configs {
		if err := s.syncCampaign(config); err != nil {
			continue
		}
	}

	return nil
}

func (s *Service) syncCampaign(config *domain.CampaignConfig) error {
	if config.CampaignID == "" {
		logrus.WithField("campaign", config.CampaignName).
			Warn("Campanha sem campaign_id, sync ignorado")
		return nil
	}

	settings, err := s.syncer.GetCampaignSettings(config.CampaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign": config.CampaignName,
			"error":    err.Error(),
		}).Error("Falha ao sincronizar configurações da campanha")
		return err
	}

	if err := s.configRepo.UpdatePlatformSettings(config.CampaignName, *settings); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign": config.CampaignName,
			"error":    err.Error(),
		}).Error("Falha ao gravar configurações sincronizadas")
		return err
	}

	logrus.WithField("campaign", config.CampaignName).
		Info("Configurações do Google Ads sincronizadas")

	return nil
}

// GetByName retorna a configuração de uma campanha pelo nome
func (s *Service) GetByName(campaignName string) (*domain.CampaignConfig, error) {
	return s.configRepo.GetByName(campaignName)
}

// GetBySlug retorna a configuração de uma campanha pelo slug
func (s *Service) GetBySlug(slug string) (*domain.CampaignConfig, error) {
	return s.configRepo.GetBySlug(slug)
}

// UpdateManualStrategy grava a estratégia manual, carimbando autor e horário
func (s *Service) UpdateManualStrategy(
	campaignName string,
	manual domain.ManualStrategy,
	updatedBy string,
) error {
	now := timeutil.Now()
	manual.UpdatedAt = &now
	manual.UpdatedBy = updatedBy

	return s.configRepo.UpdateManualStrategy(campaignName, manual)
}

// IsStale indica se as configurações da plataforma precisam de um novo sync
func IsStale(config *domain.CampaignConfig) bool {
	if config.PlatformSettings.SyncedAt == nil {
		return true
	}

	return time.Since(*config.PlatformSettings.SyncedAt) > StaleThresholdHours*time.Hour
}
