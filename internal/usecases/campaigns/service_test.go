package campaigns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/risingfishing/pmax-optimizer-api/infrastructure/repository/mocks"
	"github.com/risingfishing/pmax-optimizer-api/internal/config"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/campaigns/mocks"
	"github.com/risingfishing/pmax-optimizer-api/pkg/timeutil"
)

func freshConfig(name, id string) *domain.CampaignConfig {
	syncedAt := timeutil.Now().Add(-1 * time.Hour)
	return &domain.CampaignConfig{
		CampaignName: name,
		CampaignID:   id,
		PlatformSettings: domain.PlatformSettings{
			CampaignStatus: "ENABLED",
			SyncedAt:       &syncedAt,
		},
	}
}

func staleConfig(name, id string) *domain.CampaignConfig {
	syncedAt := timeutil.Now().Add(-30 * time.Hour)
	return &domain.CampaignConfig{
		CampaignName: name,
		CampaignID:   id,
		PlatformSettings: domain.PlatformSettings{
			CampaignStatus: "ENABLED",
			SyncedAt:       &syncedAt,
		},
	}
}

func TestIsStale(t *testing.T) {
	assert.False(t, IsStale(freshConfig("Core Brand", "1")))
	assert.True(t, IsStale(staleConfig("Core Brand", "1")))

	// Sem sync nenhum ainda
	assert.True(t, IsStale(&domain.CampaignConfig{CampaignName: "Core Brand"}))
}

func TestLoadCampaigns_SincronizaSomenteAsDefasadas(t *testing.T) {
	ctrl := gomock.NewController(t)
	configRepo := repomocks.NewMockCampaignConfigRepository(ctrl)
	syncer := mocks.NewMockSettingsSyncer(ctrl)

	fresh := freshConfig("Core Brand", "22483972722")
	stale := staleConfig("Replacement Nets", "22494027316")

	first := configRepo.EXPECT().
		GetAll().
		Return([]*domain.CampaignConfig{fresh, stale}, nil)

	syncedAt := timeutil.Now()
	newSettings := &domain.PlatformSettings{
		CampaignStatus:      "ENABLED",
		BiddingStrategyType: "MAXIMIZE_CONVERSION_VALUE",
		DailyBudget:         75,
		SyncedAt:            &syncedAt,
	}

	syncer.EXPECT().
		GetCampaignSettings("22494027316").
		Return(newSettings, nil)

	configRepo.EXPECT().
		UpdatePlatformSettings("Replacement Nets", *newSettings).
		Return(nil)

	// Releitura depois do sync
	refreshed := staleConfig("Replacement Nets", "22494027316")
	refreshed.PlatformSettings = *newSettings
	configRepo.EXPECT().
		GetAll().
		Return([]*domain.CampaignConfig{fresh, refreshed}, nil).
		After(first)

	service := NewService(&config.Config{}, configRepo, syncer)

	configs, err := service.LoadCampaigns()
	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, 75.0, configs[1].PlatformSettings.DailyBudget)
}

func TestLoadCampaigns_TodasFrescasNaoSincroniza(t *testing.T) {
	ctrl := gomock.NewController(t)
	configRepo := repomocks.NewMockCampaignConfigRepository(ctrl)
	syncer := mocks.NewMockSettingsSyncer(ctrl)

	configRepo.EXPECT().
		GetAll().
		Return([]*domain.CampaignConfig{freshConfig("Core Brand", "22483972722")}, nil)

	service := NewService(&config.Config{}, configRepo, syncer)

	configs, err := service.LoadCampaigns()
	require.NoError(t, err)
	assert.Len(t, configs, 1)
}

func TestSyncPlatformSettings_FalhaDeUmaCampanhaNaoInterrompe(t *testing.T) {
	ctrl := gomock.NewController(t)
	configRepo := repomocks.NewMockCampaignConfigRepository(ctrl)
	syncer := mocks.NewMockSettingsSyncer(ctrl)

	configRepo.EXPECT().
		GetAll().
		Return([]*domain.CampaignConfig{
			staleConfig("Core Brand", "22483972722"),
			staleConfig("Replacement Nets", "22494027316"),
		}, nil)

	syncer.EXPECT().
		GetCampaignSettings("22483972722").
		Return(nil, assert.AnError)

	syncedAt := timeutil.Now()
	settings := &domain.PlatformSettings{CampaignStatus: "ENABLED", SyncedAt: &syncedAt}
	syncer.EXPECT().
		GetCampaignSettings("22494027316").
		Return(settings, nil)

	configRepo.EXPECT().
		UpdatePlatformSettings("Replacement Nets", *settings).
		Return(nil)

	service := NewService(&config.Config{}, configRepo, syncer)

	err := service.SyncPlatformSettings()
	assert.NoError(t, err)
}

func TestSyncPlatformSettings_CampanhaSemIDEIgnorada(t *testing.T) {
	ctrl := gomock.NewController(t)
	configRepo := repomocks.NewMockCampaignConfigRepository(ctrl)
	syncer := mocks.NewMockSettingsSyncer(ctrl)

	configRepo.EXPECT().
		GetAll().
		Return([]*domain.CampaignConfig{{CampaignName: "Sem ID"}}, nil)

	service := NewService(&config.Config{}, configRepo, syncer)

	err := service.SyncPlatformSettings()
	assert.NoError(t, err)
}

func TestSeed_CadastraSomenteAsFaltantes(t *testing.T) {
	ctrl := gomock.NewController(t)
	configRepo := repomocks.NewMockCampaignConfigRepository(ctrl)

	configRepo.EXPECT().
		GetAll().
		Return([]*domain.CampaignConfig{{CampaignName: "Core Brand"}}, nil)

	configRepo.EXPECT().
		Upsert(gomock.AssignableToTypeOf(&domain.CampaignConfig{})).
		DoAndReturn(func(config *domain.CampaignConfig) error {
			assert.Equal(t, "Replacement Nets", config.CampaignName)
			assert.Equal(t, "22494027316", config.CampaignID)
			assert.Equal(t, "replacement_nets", config.Slug)
			assert.Equal(t, []string{"replacement nets"}, config.Manual.KeyProducts)
			assert.Equal(t, "scott", config.Manual.UpdatedBy)
			require.NotNil(t, config.Manual.UpdatedAt)
			assert.InDelta(t, 0.30, config.ImageProfile["product_detail"], 0.001)
			return nil
		})

	service := NewService(&config.Config{}, configRepo, nil)

	err := service.Seed()
	assert.NoError(t, err)
}

func TestUpdateManualStrategy_CarimbaAutorEHorario(t *testing.T) {
	ctrl := gomock.NewController(t)
	configRepo := repomocks.NewMockCampaignConfigRepository(ctrl)

	configRepo.EXPECT().
		UpdateManualStrategy("Core Brand", gomock.AssignableToTypeOf(domain.ManualStrategy{})).
		DoAndReturn(func(_ string, manual domain.ManualStrategy) error {
			assert.Equal(t, "scott", manual.UpdatedBy)
			require.NotNil(t, manual.UpdatedAt)
			return nil
		})

	service := NewService(&config.Config{}, configRepo, nil)

	err := service.UpdateManualStrategy("Core Brand", domain.ManualStrategy{Goal: "grow"}, "scott")
	assert.NoError(t, err)
}
