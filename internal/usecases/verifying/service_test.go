package verifying

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/risingfishing/pmax-optimizer-api/infrastructure/repository/mocks"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/verifying/mocks"
	"github.com/risingfishing/pmax-optimizer-api/pkg/timeutil"
)

type verifierMocks struct {
	loader    *mocks.MockCampaignLoader
	ads       *mocks.MockAdsCollector
	notifier  *mocks.MockVerificationNotifier
	assetRepo *repomocks.MockAssetPerformanceRepository
}

func newVerifier(t *testing.T) (*Service, *verifierMocks) {
	ctrl := gomock.NewController(t)

	m := &verifierMocks{
		loader:    mocks.NewMockCampaignLoader(ctrl),
		ads:       mocks.NewMockAdsCollector(ctrl),
		notifier:  mocks.NewMockVerificationNotifier(ctrl),
		assetRepo: repomocks.NewMockAssetPerformanceRepository(ctrl),
	}

	return NewService(m.loader, m.ads, m.notifier, m.assetRepo), m
}

func killedRecord(id, text, replacedBy string) *domain.AssetRecord {
	return &domain.AssetRecord{
		AssetID:      id,
		ReportDate:   "2026-08-24",
		AssetText:    text,
		AssetType:    domain.AssetTypeHeadline,
		CampaignName: "Core Brand",
		Status:       domain.AssetStatusKilled,
		KillReason:   "CTR 1.00% below peak_season threshold 4.0% for HEADLINE (1000 impressions)",
		ReplacedBy:   replacedBy,
	}
}

func liveAsset(text string) *domain.AssetRecord {
	return &domain.AssetRecord{
		AssetID:   domain.GenerateAssetID(text, "Core Brand"),
		AssetText: text,
		Status:    domain.AssetStatusActive,
	}
}

func TestRun_VerificaPausasAdicoesEEdicoesManuais(t *testing.T) {
	service, m := newVerifier(t)

	campaign := &domain.CampaignConfig{CampaignName: "Core Brand", CampaignID: "22483972722"}
	noID := &domain.CampaignConfig{CampaignName: "Sem ID"}
	m.loader.EXPECT().LoadCampaigns().Return([]*domain.CampaignConfig{campaign, noID}, nil)

	// Registros da última revisão: dois mortos com substituta, um morto sem,
	// e um ativo que não entra na verificação
	m.assetRepo.EXPECT().
		GetLatestByCampaign("Core Brand").
		Return([]*domain.AssetRecord{
			killedRecord("a1", "Buy our nets", "Landing nets that last"),
			killedRecord("b1", "Old text", ""),
			killedRecord("c1", "Cheap nets today", "Handmade river nets"),
			{AssetID: "d1", AssetText: "Strong headline", Status: domain.AssetStatusActive},
		}, nil)

	// Plataforma 7 dias depois: "Old text" continua vivo (pausa falhou),
	// a substituta de c1 subiu exata e a de a1 subiu editada à mão
	m.ads.EXPECT().
		CollectForCampaign("Core Brand", "22483972722", timeutil.LookbackDate(7), timeutil.Today()).
		Return([]*domain.AssetRecord{
			liveAsset("Old text"),
			liveAsset("Handmade river nets"),
			liveAsset("Landing nets built to last"),
			liveAsset("Strong headline"),
		}, nil)

	// Só as pausas confirmadas viram status paused
	m.assetRepo.EXPECT().
		UpdateStatus("a1", "2026-08-24", domain.AssetStatusPaused, "").
		Return(nil)
	m.assetRepo.EXPECT().
		UpdateStatus("c1", "2026-08-24", domain.AssetStatusPaused, "").
		Return(nil)

	m.notifier.EXPECT().
		SendVerification(gomock.Any()).
		DoAndReturn(func(report string) error {
			assert.Contains(t, report, "📋 *Upload Verification Report*")
			assert.Contains(t, report, "Total recommendations: 3")
			assert.Contains(t, report, "Paused successfully: 2")
			assert.Contains(t, report, "Added successfully: 2")
			assert.Contains(t, report, "⚠️ *Not paused (still active):*")
			assert.Contains(t, report, "  - Old text")
			assert.Contains(t, report, "✏️ *Manual edits detected:*")
			assert.Contains(t, report, `Expected: "Landing nets that last"`)
			assert.Contains(t, report, `Found: "Landing nets built to last"`)
			assert.Contains(t, report, "⚠️ Some changes were not applied.")
			assert.NotContains(t, report, "✅ All changes applied successfully!")
			return nil
		})

	result, err := service.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, result.CampaignsVerified)

	require.Len(t, result.Reports, 1)
	report := result.Reports[0]
	assert.Equal(t, 3, report.TotalRecommendations)
	assert.Equal(t, 2, report.PausedSuccessfully)
	assert.Equal(t, 2, report.AddedSuccessfully)
	assert.Equal(t, []string{"Old text"}, report.PausedFailed)
	assert.Empty(t, report.AddedFailed)
	require.Len(t, report.ManualEdits, 1)
	assert.Equal(t, "Landing nets that last", report.ManualEdits[0].Expected)
	assert.Equal(t, "Landing nets built to last", report.ManualEdits[0].Found)
}

func TestRun_SubstitutaAusenteViraAddedFailed(t *testing.T) {
	service, m := newVerifier(t)

	campaign := &domain.CampaignConfig{CampaignName: "Core Brand", CampaignID: "22483972722"}
	m.loader.EXPECT().LoadCampaigns().Return([]*domain.CampaignConfig{campaign}, nil)

	m.assetRepo.EXPECT().
		GetLatestByCampaign("Core Brand").
		Return([]*domain.AssetRecord{
			killedRecord("a1", "Buy our nets", "Landing nets that last"),
		}, nil)

	// Pausa aplicada mas a substituta nunca subiu, nem parecida
	m.ads.EXPECT().
		CollectForCampaign("Core Brand", "22483972722", gomock.Any(), gomock.Any()).
		Return([]*domain.AssetRecord{liveAsset("Completely different copy")}, nil)

	m.assetRepo.EXPECT().
		UpdateStatus("a1", "2026-08-24", domain.AssetStatusPaused, "").
		Return(nil)

	m.notifier.EXPECT().
		SendVerification(gomock.Any()).
		DoAndReturn(func(report string) error {
			assert.Contains(t, report, "⚠️ *Not added:*")
			assert.Contains(t, report, "  - Landing nets that last")
			return nil
		})

	result, err := service.Run()
	require.NoError(t, err)

	report := result.Reports[0]
	assert.Equal(t, 1, report.PausedSuccessfully)
	assert.Zero(t, report.AddedSuccessfully)
	assert.Equal(t, []string{"Landing nets that last"}, report.AddedFailed)
}

func TestRun_SemPendenciasNotificaMensagemPadrao(t *testing.T) {
	service, m := newVerifier(t)

	campaign := &domain.CampaignConfig{CampaignName: "Core Brand", CampaignID: "22483972722"}
	m.loader.EXPECT().LoadCampaigns().Return([]*domain.CampaignConfig{campaign}, nil)

	// Último relatório só tem assets ativos: nada a verificar
	m.assetRepo.EXPECT().
		GetLatestByCampaign("Core Brand").
		Return([]*domain.AssetRecord{
			{AssetID: "d1", AssetText: "Strong headline", Status: domain.AssetStatusActive},
		}, nil)

	m.notifier.EXPECT().
		SendVerification("📋 *Upload Verification*\n\nNo pending verifications this week.").
		Return(nil)

	result, err := service.Run()
	require.NoError(t, err)
	assert.Zero(t, result.CampaignsVerified)
}

func TestRun_FalhaAoCarregarCampanhasNotificaErro(t *testing.T) {
	service, m := newVerifier(t)

	m.loader.EXPECT().LoadCampaigns().Return(nil, assert.AnError)
	m.notifier.EXPECT().SendError(assert.AnError.Error(), "").Return(nil)

	_, err := service.Run()
	assert.Error(t, err)
}

func TestFindSimilarAsset_LimiarDeSobreposicao(t *testing.T) {
	live := map[string]*domain.AssetRecord{
		"Landing nets built to last": liveAsset("Landing nets built to last"),
	}

	// 3 de 4 palavras presentes: 0.75 >= 0.6
	assert.Equal(t, "Landing nets built to last", findSimilarAsset("Landing nets that last", live))

	// 1 de 4 palavras: abaixo do limiar
	assert.Empty(t, findSimilarAsset("Buy cheap gear now", live))

	assert.Empty(t, findSimilarAsset("", live))
}
