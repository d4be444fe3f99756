package googleads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	adsdomain "github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/googleads/domain"
	"github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/googleads/googleadsclient/mocks"
	"github.com/risingfishing/pmax-optimizer-api/internal/config"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

func TestCollectForCampaign_AgregaPorTextoDoAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	// O mesmo asset aparece em duas datas; as métricas devem ser somadas
	client.EXPECT().
		GetAssetPerformance("21984367251", "2025-06-01", "2025-06-30").
		Return([]adsdomain.AssetRow{
			{
				AssetText:   "Handmade Landing Nets",
				FieldType:   "HEADLINE",
				Date:        "2025-06-10",
				Impressions: 300,
				Clicks:      12,
				Conversions: 1.0,
				Cost:        8.50,
			},
			{
				AssetText:   "Handmade Landing Nets",
				FieldType:   "HEADLINE",
				Date:        "2025-06-05",
				Impressions: 200,
				Clicks:      8,
				Conversions: 1.0,
				Cost:        6.50,
			},
			{
				AssetText:   "Built for real rivers",
				FieldType:   "DESCRIPTION",
				Date:        "2025-06-12",
				Impressions: 100,
				Clicks:      1,
				Cost:        2.00,
			},
		}, nil)

	integrator := New(&config.Config{}, client)

	records, err := integrator.CollectForCampaign("Core Brand", "21984367251", "2025-06-01", "2025-06-30")
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Ordenação determinística por texto
	first := records[0]
	assert.Equal(t, "Built for real rivers", first.AssetText)
	assert.Equal(t, domain.AssetTypeDescription, first.AssetType)

	second := records[1]
	assert.Equal(t, "Handmade Landing Nets", second.AssetText)
	assert.Equal(t, domain.AssetTypeHeadline, second.AssetType)
	assert.Equal(t, "Core Brand", second.CampaignName)
	assert.Equal(t, 500, second.Impressions)
	assert.Equal(t, 20, second.Clicks)
	assert.Equal(t, 4.0, second.CTR)
	assert.Equal(t, 2.0, second.Conversions)
	assert.Equal(t, 15.0, second.Cost)
	assert.Equal(t, 7.5, second.CPA)
	assert.Equal(t, "2025-06-05", second.DateAdded)
	assert.Equal(t, domain.AssetStatusActive, second.Status)
	assert.Equal(t, domain.GenerateAssetID("Handmade Landing Nets", "Core Brand"), second.AssetID)
}

func TestCollectForCampaign_SemConversoesNaoCalculaCPA(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		GetAssetPerformance(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]adsdomain.AssetRow{
			{
				AssetText:   "Nets that last",
				FieldType:   "LONG_HEADLINE",
				Date:        "2025-06-01",
				Impressions: 50,
				Clicks:      0,
				Cost:        1.25,
			},
		}, nil)

	integrator := New(&config.Config{}, client)

	records, err := integrator.CollectForCampaign("Core Brand", "21984367251", "2025-06-01", "2025-06-30")
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, 0.0, records[0].CTR)
	assert.Equal(t, 0.0, records[0].CPA)
}

func TestCollectForCampaign_ErroDoClienteEPropagado(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		GetAssetPerformance(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	integrator := New(&config.Config{}, client)

	records, err := integrator.CollectForCampaign("Core Brand", "21984367251", "2025-06-01", "2025-06-30")
	assert.Error(t, err)
	assert.Nil(t, records)
}

func TestGetCampaignSettings_CarimbaHorarioDoSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	targetROAS := 2.0
	client.EXPECT().
		GetCampaignSettings("21984367251").
		Return(&adsdomain.CampaignSettings{
			CampaignStatus:      "ENABLED",
			BiddingStrategyType: "MAXIMIZE_CONVERSION_VALUE",
			TargetROAS:          &targetROAS,
			DailyBudget:         150.0,
			GeoTargets:          []string{"2840"},
		}, nil)

	integrator := New(&config.Config{}, client)

	settings, err := integrator.GetCampaignSettings("21984367251")
	require.NoError(t, err)

	assert.Equal(t, "ENABLED", settings.CampaignStatus)
	assert.Equal(t, "MAXIMIZE_CONVERSION_VALUE", settings.BiddingStrategyType)
	require.NotNil(t, settings.TargetROAS)
	assert.Equal(t, 2.0, *settings.TargetROAS)
	assert.Equal(t, 150.0, settings.DailyBudget)
	assert.Equal(t, []string{"2840"}, settings.GeoTargets)
	require.NotNil(t, settings.SyncedAt)
	assert.False(t, settings.IsEmpty())
}
