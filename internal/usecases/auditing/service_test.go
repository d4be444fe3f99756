package auditing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/risingfishing/pmax-optimizer-api/infrastructure/repository/mocks"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

type auditorMocks struct {
	configRepo    *mocks.MockCampaignConfigRepository
	budgetRepo    *mocks.MockBudgetPerformanceRepository
	assetRepo     *mocks.MockAssetPerformanceRepository
	graveyardRepo *mocks.MockGraveyardRepository
	imageRepo     *mocks.MockImageRegistryRepository
}

func newTestAuditor(t *testing.T, month int) (*Auditor, *auditorMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &auditorMocks{
		configRepo:    mocks.NewMockCampaignConfigRepository(ctrl),
		budgetRepo:    mocks.NewMockBudgetPerformanceRepository(ctrl),
		assetRepo:     mocks.NewMockAssetPerformanceRepository(ctrl),
		graveyardRepo: mocks.NewMockGraveyardRepository(ctrl),
		imageRepo:     mocks.NewMockImageRegistryRepository(ctrl),
	}

	auditor, err := NewAuditor(month, m.configRepo, m.budgetRepo, m.assetRepo, m.graveyardRepo, m.imageRepo, nil)
	require.NoError(t, err)

	return auditor, m
}

func floatPtr(v float64) *float64 { return &v }

// Campanha com tudo em ordem para junho (peak_season)
func healthyConfig() *domain.CampaignConfig {
	syncedAt := time.Now().Add(-2 * time.Hour)
	return &domain.CampaignConfig{
		CampaignName: "Core Brand",
		CampaignID:   "21984367251",
		Slug:         "core-brand",
		Manual: domain.ManualStrategy{
			Description:    "Handmade fly fishing nets",
			Goal:           "Grow direct sales",
			TargetAudience: "Fly anglers in the US",
			KeyProducts:    []string{"landing nets"},
			ToneNotes:      "Calm and direct",
		},
		PlatformSettings: domain.PlatformSettings{
			CampaignStatus:      "ENABLED",
			BiddingStrategyType: "MAXIMIZE_CONVERSION_VALUE",
			TargetROAS:          floatPtr(2.0),
			DailyBudget:         150,
			GeoTargets:          []string{"US"},
			SyncedAt:            &syncedAt,
		},
		ImageProfile: map[string]float64{
			"product_hero":           0.2,
			"product_detail":         0.2,
			"product_in_use":         0.2,
			"lifestyle_with_product": 0.2,
			"lifestyle_no_product":   0.2,
		},
	}
}

func healthyHistory() []*domain.BudgetSnapshot {
	// Mais recente primeiro, ROAS estável e utilização saudável
	return []*domain.BudgetSnapshot{
		{ROASPercent: 220, TargetROASPercent: 200, BudgetUtilizationPercent: 95, TotalSpend: 1000},
		{ROASPercent: 210, TargetROASPercent: 200, BudgetUtilizationPercent: 92, TotalSpend: 980},
		{ROASPercent: 215, TargetROASPercent: 200, BudgetUtilizationPercent: 94, TotalSpend: 1020},
		{ROASPercent: 205, TargetROASPercent: 200, BudgetUtilizationPercent: 90, TotalSpend: 990},
	}
}

func healthyAssets() []*domain.AssetRecord {
	recent := time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	assets := make([]*domain.AssetRecord, 0, 6)

	for i := 0; i < 3; i++ {
		assets = append(assets, &domain.AssetRecord{
			AssetText: fmt.Sprintf("Headline %d", i), AssetType: domain.AssetTypeHeadline,
			Status: domain.AssetStatusActive, DateAdded: recent,
		})
	}
	for i := 0; i < 2; i++ {
		assets = append(assets, &domain.AssetRecord{
			AssetText: fmt.Sprintf("Description %d", i), AssetType: domain.AssetTypeDescription,
			Status: domain.AssetStatusActive, DateAdded: recent,
		})
	}
	assets = append(assets, &domain.AssetRecord{
		AssetText: "Long headline", AssetType: domain.AssetTypeLongHeadline,
		Status: domain.AssetStatusActive, DateAdded: recent,
	})

	return assets
}

func healthyImages() []*domain.ImageRecord {
	formats := []domain.AssetType{
		domain.AssetTypeMarketingImage,
		domain.AssetTypeSquareMarketingImage,
		domain.AssetTypePortraitMarketingImage,
	}

	images := make([]*domain.ImageRecord, 0, 10)
	for i := 0; i < 10; i++ {
		images = append(images, &domain.ImageRecord{
			ImageID:         fmt.Sprintf("img-%02d", i),
			ImageHash:       fmt.Sprintf("hash-%02d", i),
			ContentCategory: domain.ContentCategories[i%5],
			Links: []domain.ImageLink{{
				CampaignName: "Core Brand",
				FieldType:    formats[i%3],
			}},
		})
	}
	return images
}

func expectHealthyData(m *auditorMocks) {
	m.budgetRepo.EXPECT().GetHistory("Core Brand", 8).Return(healthyHistory(), nil)
	m.assetRepo.EXPECT().GetLatestByCampaign("Core Brand").Return(healthyAssets(), nil)
	m.imageRepo.EXPECT().ListByCampaign("Core Brand").Return(healthyImages(), nil).AnyTimes()
	m.graveyardRepo.EXPECT().ListKilledSince("Core Brand", gomock.Any()).Return(nil, nil)
}

func TestAuditCampaign_Healthy(t *testing.T) {
	auditor, m := newTestAuditor(t, 6)
	expectHealthyData(m)

	result := auditor.AuditCampaign(healthyConfig())

	assert.Equal(t, 100, result.HealthScore)
	assert.Equal(t, "A", result.Grade)
	assert.Len(t, result.Findings, 20)

	for _, finding := range result.Findings {
		assert.Equal(t, domain.FindingPass, finding.Severity, "check %s", finding.Check)
	}
}

func TestAuditCampaign_MissingHeadlines(t *testing.T) {
	auditor, m := newTestAuditor(t, 6)

	assets := healthyAssets()[3:] // remove as três headlines
	m.budgetRepo.EXPECT().GetHistory("Core Brand", 8).Return(healthyHistory(), nil)
	m.assetRepo.EXPECT().GetLatestByCampaign("Core Brand").Return(assets, nil)
	m.imageRepo.EXPECT().ListByCampaign("Core Brand").Return(healthyImages(), nil).AnyTimes()
	m.graveyardRepo.EXPECT().ListKilledSince("Core Brand", gomock.Any()).Return(nil, nil)

	result := auditor.AuditCampaign(healthyConfig())

	assert.Equal(t, 85, result.HealthScore)
	assert.Equal(t, "B", result.Grade)

	var minimums *domain.Finding
	for i := range result.Findings {
		if result.Findings[i].Check == "text_asset_minimums" {
			minimums = &result.Findings[i]
		}
	}
	require.NotNil(t, minimums)
	assert.Equal(t, domain.FindingCritical, minimums.Severity)
	assert.Contains(t, minimums.Message, "headlines (0/3)")
}

func TestAuditCampaign_CampaignIDInvalid(t *testing.T) {
	auditor, m := newTestAuditor(t, 6)
	expectHealthyData(m)

	config := healthyConfig()
	config.CampaignID = "not-a-number"

	result := auditor.AuditCampaign(config)

	var finding *domain.Finding
	for i := range result.Findings {
		if result.Findings[i].Check == "campaign_id" {
			finding = &result.Findings[i]
		}
	}
	require.NotNil(t, finding)
	assert.Equal(t, domain.FindingCritical, finding.Severity)
}

func TestAuditCampaign_NeverSynced(t *testing.T) {
	auditor, m := newTestAuditor(t, 6)

	config := healthyConfig()
	config.PlatformSettings = domain.PlatformSettings{}

	m.budgetRepo.EXPECT().GetHistory("Core Brand", 8).Return(healthyHistory(), nil)
	m.assetRepo.EXPECT().GetLatestByCampaign("Core Brand").Return(healthyAssets(), nil)
	m.imageRepo.EXPECT().ListByCampaign("Core Brand").Return(healthyImages(), nil).AnyTimes()
	m.graveyardRepo.EXPECT().ListKilledSince("Core Brand", gomock.Any()).Return(nil, nil)

	result := auditor.AuditCampaign(config)

	checks := make(map[string]domain.FindingSeverity)
	for _, finding := range result.Findings {
		checks[finding.Check] = finding.Severity
	}

	// Sem sync, a categoria de alinhamento colapsa em um único warning
	assert.Equal(t, domain.FindingWarning, checks["google_ads_sync"])
	assert.Equal(t, domain.FindingWarning, checks["google_ads_settings_missing"])
	assert.NotContains(t, checks, "campaign_status")
}

func TestAuditCampaign_ROASDeclining(t *testing.T) {
	auditor, m := newTestAuditor(t, 6)

	history := []*domain.BudgetSnapshot{
		{ROASPercent: 150, TargetROASPercent: 200, BudgetUtilizationPercent: 95, TotalSpend: 1000},
		{ROASPercent: 170, TargetROASPercent: 200, BudgetUtilizationPercent: 92, TotalSpend: 1010},
		{ROASPercent: 190, TargetROASPercent: 200, BudgetUtilizationPercent: 94, TotalSpend: 1000},
		{ROASPercent: 210, TargetROASPercent: 200, BudgetUtilizationPercent: 90, TotalSpend: 990},
	}

	m.budgetRepo.EXPECT().GetHistory("Core Brand", 8).Return(history, nil)
	m.assetRepo.EXPECT().GetLatestByCampaign("Core Brand").Return(healthyAssets(), nil)
	m.imageRepo.EXPECT().ListByCampaign("Core Brand").Return(healthyImages(), nil).AnyTimes()
	m.graveyardRepo.EXPECT().ListKilledSince("Core Brand", gomock.Any()).Return(nil, nil)

	result := auditor.AuditCampaign(healthyConfig())

	var trend *domain.Finding
	for i := range result.Findings {
		if result.Findings[i].Check == "roas_trend" {
			trend = &result.Findings[i]
		}
	}
	require.NotNil(t, trend)
	assert.Equal(t, domain.FindingWarning, trend.Severity)
	assert.Contains(t, trend.Message, "declining 3 consecutive weeks")
	assert.Contains(t, trend.Message, "210% -> 190% -> 170% -> 150%")
}

func TestAuditCampaign_TargetROASRatioNormalization(t *testing.T) {
	auditor, m := newTestAuditor(t, 6)
	expectHealthyData(m)

	// A API retorna razão; 2.0 deve virar 200%
	result := auditor.AuditCampaign(healthyConfig())

	var finding *domain.Finding
	for i := range result.Findings {
		if result.Findings[i].Check == "target_roas" {
			finding = &result.Findings[i]
		}
	}
	require.NotNil(t, finding)
	assert.Equal(t, domain.FindingPass, finding.Severity)
	assert.Contains(t, finding.Message, "200%")
}

func TestAuditCampaign_EmptyHistory(t *testing.T) {
	auditor, m := newTestAuditor(t, 6)

	m.budgetRepo.EXPECT().GetHistory("Core Brand", 8).Return(nil, nil)
	m.assetRepo.EXPECT().GetLatestByCampaign("Core Brand").Return(healthyAssets(), nil)
	m.imageRepo.EXPECT().ListByCampaign("Core Brand").Return(healthyImages(), nil).AnyTimes()
	m.graveyardRepo.EXPECT().ListKilledSince("Core Brand", gomock.Any()).Return(nil, nil)

	result := auditor.AuditCampaign(healthyConfig())

	checks := make(map[string]domain.FindingSeverity)
	for _, finding := range result.Findings {
		checks[finding.Check] = finding.Severity
	}
	assert.Equal(t, domain.FindingInfo, checks["budget_history_empty"])
	assert.NotContains(t, checks, "roas_vs_target")
}

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		name          string
		findings      []domain.Finding
		expectedScore int
		expectedGrade string
	}{
		{
			name:          "Sem findings negativos",
			findings:      []domain.Finding{{Severity: domain.FindingPass}, {Severity: domain.FindingInfo}},
			expectedScore: 100,
			expectedGrade: "A",
		},
		{
			name:          "Um critical",
			findings:      []domain.Finding{{Severity: domain.FindingCritical}},
			expectedScore: 85,
			expectedGrade: "B",
		},
		{
			name: "Dois criticals e dois warnings",
			findings: []domain.Finding{
				{Severity: domain.FindingCritical},
				{Severity: domain.FindingCritical},
				{Severity: domain.FindingWarning},
				{Severity: domain.FindingWarning},
			},
			expectedScore: 60,
			expectedGrade: "C",
		},
		{
			name: "Score não fica negativo",
			findings: []domain.Finding{
				{Severity: domain.FindingCritical}, {Severity: domain.FindingCritical},
				{Severity: domain.FindingCritical}, {Severity: domain.FindingCritical},
				{Severity: domain.FindingCritical}, {Severity: domain.FindingCritical},
				{Severity: domain.FindingCritical}, {Severity: domain.FindingCritical},
			},
			expectedScore: 0,
			expectedGrade: "F",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, grade := calculateScore(tt.findings)
			assert.Equal(t, tt.expectedScore, score)
			assert.Equal(t, tt.expectedGrade, grade)
		})
	}
}

func TestAuditAll_FallbackSummary(t *testing.T) {
	auditor, m := newTestAuditor(t, 6)

	m.configRepo.EXPECT().GetAll().Return([]*domain.CampaignConfig{healthyConfig()}, nil)
	expectHealthyData(m)

	report, err := auditor.AuditAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "peak_season", report.Season)
	assert.Equal(t, 6, report.Month)
	require.Contains(t, report.Campaigns, "Core Brand")
	assert.Contains(t, report.Summary, "Core Brand: 100/100 (A)")
	assert.Empty(t, report.Recommendations)
}

func TestFallbackSummary_CountsAndRecommendations(t *testing.T) {
	campaigns := map[string]*domain.CampaignAudit{
		"Core Brand": {
			CampaignName: "Core Brand",
			HealthScore:  70,
			Grade:        "C",
			Findings: []domain.Finding{
				{Severity: domain.FindingCritical, Message: "Campaign status is PAUSED - not serving ads"},
				{Severity: domain.FindingWarning, Message: "No geo targeting configured - campaign may serve globally"},
			},
		},
	}

	summary, recommendations := fallbackSummary(campaigns)

	assert.Contains(t, summary, "Core Brand: 70/100 (C)")
	assert.Contains(t, summary, "1 critical issue(s) need immediate attention.")
	assert.Contains(t, summary, "1 warning(s) to review.")

	require.Len(t, recommendations, 2)
	assert.Equal(t, "[CRITICAL] Campaign status is PAUSED - not serving ads", recommendations[0])
	assert.Equal(t, "[WARNING] No geo targeting configured - campaign may serve globally", recommendations[1])
}
