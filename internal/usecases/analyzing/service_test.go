package analyzing

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
	"github.com/risingfishing/pmax-optimizer-api/internal/season"
)

// Data antiga o suficiente para estar fora de qualquer período de paciência
const oldDate = "2025-05-06"

func newTestAnalyzer(t *testing.T, month int) *Analyzer {
	t.Helper()
	analyzer, err := NewAnalyzer(month)
	require.NoError(t, err)
	return analyzer
}

func asset(text string, assetType domain.AssetType, impressions int, ctr float64) *domain.AssetRecord {
	return &domain.AssetRecord{
		AssetID:      domain.GenerateAssetID(text, "Core Brand"),
		AssetText:    text,
		AssetType:    assetType,
		CampaignName: "Core Brand",
		Impressions:  impressions,
		CTR:          ctr,
		Status:       domain.AssetStatusActive,
		DateAdded:    oldDate,
	}
}

func TestNewAnalyzer_SeasonDetection(t *testing.T) {
	analyzer := newTestAnalyzer(t, 11)
	assert.Equal(t, season.LowSeason, analyzer.Season)

	analyzer = newTestAnalyzer(t, 1)
	assert.Equal(t, season.DeepWinter, analyzer.Season)
}

func TestNewAnalyzer_InvalidMonth(t *testing.T) {
	_, err := NewAnalyzer(13)
	require.Error(t, err)
	assert.ErrorIs(t, err, season.ErrNoSeason)
}

func TestIsNewAsset(t *testing.T) {
	analyzer := newTestAnalyzer(t, 11)
	recent := time.Now().AddDate(0, 0, -10).Format("2006-01-02")

	tests := []struct {
		name     string
		asset    *domain.AssetRecord
		expected bool
	}{
		{
			name:     "Recente com poucas impressões é novo",
			asset:    &domain.AssetRecord{DateAdded: recent, Impressions: 100},
			expected: true,
		},
		{
			name:     "Recente mas com muitas impressões não é novo",
			asset:    &domain.AssetRecord{DateAdded: recent, Impressions: 800},
			expected: false,
		},
		{
			name:     "Antigo não é novo mesmo com poucas impressões",
			asset:    &domain.AssetRecord{DateAdded: oldDate, Impressions: 50},
			expected: false,
		},
		{
			name:     "Sem date_added nunca é novo",
			asset:    &domain.AssetRecord{Impressions: 10},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, analyzer.IsNewAsset(tt.asset))
		})
	}
}

func TestShouldKill_InsufficientData(t *testing.T) {
	analyzer := newTestAnalyzer(t, 11) // min_impressions = 150

	// Abaixo do mínimo de impressões nunca mata, independente do CTR
	reason := analyzer.ShouldKill(asset("Fly Fishing Nets", domain.AssetTypeHeadline, 100, 0.01))
	assert.Empty(t, reason)
}

func TestShouldKill_BelowThreshold(t *testing.T) {
	analyzer := newTestAnalyzer(t, 11)

	reason := analyzer.ShouldKill(asset("Experience Unmatched Quality", domain.AssetTypeLongHeadline, 600, 0.8))
	require.NotEmpty(t, reason)
	assert.Contains(t, reason, "below low_season threshold 1.0%")
	assert.Contains(t, reason, "600 impressions")
	assert.Contains(t, reason, "LONG_HEADLINE")
}

func TestShouldKill_AboveThreshold(t *testing.T) {
	analyzer := newTestAnalyzer(t, 11)

	// Headline com CTR 2.38% acima do piso 2.0% não é morta (CTR-only)
	reason := analyzer.ShouldKill(asset("Nets That Land Monsters", domain.AssetTypeHeadline, 500, 2.38))
	assert.Empty(t, reason)
}

func TestShouldKill_TypeWithoutFloor(t *testing.T) {
	analyzer := newTestAnalyzer(t, 11)

	// Tipos sem piso configurado nunca são mortos
	reason := analyzer.ShouldKill(asset("hero.jpg", domain.AssetTypeMarketingImage, 5000, 0.01))
	assert.Empty(t, reason)
}

func TestFlagUnderperformers(t *testing.T) {
	analyzer := newTestAnalyzer(t, 11)

	assets := []*domain.AssetRecord{
		asset("Rising Fishing", domain.AssetTypeHeadline, 9000, 4.2),
		asset("Experience Unmatched Quality and Innovation", domain.AssetTypeLongHeadline, 600, 0.8),
		asset("Top-of-the-Line Fly Fishing Gear and Accessories", domain.AssetTypeLongHeadline, 700, 0.5),
		asset("USA Made Fly Fishing Nets", domain.AssetTypeHeadline, 3000, 3.1),
	}

	flagged := analyzer.FlagUnderperformers(assets, nil)
	require.Len(t, flagged, 2)

	texts := make([]string, 0, len(flagged))
	for _, f := range flagged {
		texts = append(texts, f.AssetText)
		assert.NotEmpty(t, f.KillReason, "kill_reason ausente para '%s'", f.AssetText)
		assert.NotEmpty(t, f.Diagnosis, "diagnosis ausente para '%s'", f.AssetText)
	}

	assert.Contains(t, texts, "Experience Unmatched Quality and Innovation")
	assert.Contains(t, texts, "Top-of-the-Line Fly Fishing Gear and Accessories")
	assert.NotContains(t, texts, "Rising Fishing")
	assert.NotContains(t, texts, "USA Made Fly Fishing Nets")
}

func TestFlagUnderperformers_SkipsKilledAndPaused(t *testing.T) {
	analyzer := newTestAnalyzer(t, 11)

	killed := asset("Dead Asset Headline", domain.AssetTypeHeadline, 600, 0.1)
	killed.Status = domain.AssetStatusKilled
	paused := asset("Paused Asset Headline", domain.AssetTypeHeadline, 600, 0.1)
	paused.Status = domain.AssetStatusPaused

	flagged := analyzer.FlagUnderperformers([]*domain.AssetRecord{killed, paused}, nil)
	assert.Empty(t, flagged)
}

func TestFlagUnderperformers_SkipsNewAssets(t *testing.T) {
	analyzer := newTestAnalyzer(t, 11)

	fresh := asset("Brand New Headline", domain.AssetTypeHeadline, 200, 0.1)
	fresh.DateAdded = time.Now().AddDate(0, 0, -5).Format("2006-01-02")

	flagged := analyzer.FlagUnderperformers([]*domain.AssetRecord{fresh}, nil)
	assert.Empty(t, flagged)
}

func TestFlagUnderperformers_DoesNotMutateInput(t *testing.T) {
	analyzer := newTestAnalyzer(t, 11)

	input := asset("Experience Unmatched Quality", domain.AssetTypeLongHeadline, 600, 0.8)
	flagged := analyzer.FlagUnderperformers([]*domain.AssetRecord{input}, nil)

	require.Len(t, flagged, 1)
	assert.NotEmpty(t, flagged[0].KillReason)

	// A entrada permanece intocada; os registros retornados são os autoritativos
	assert.Empty(t, input.KillReason)
	assert.Empty(t, input.Diagnosis)
}

func TestFlagUnderperformers_Deterministic(t *testing.T) {
	analyzer := newTestAnalyzer(t, 11)

	assets := []*domain.AssetRecord{
		asset("Experience Unmatched Quality", domain.AssetTypeLongHeadline, 600, 0.8),
		asset("Premier Fly Shop", domain.AssetTypeHeadline, 600, 0.4),
	}

	first := analyzer.FlagUnderperformers(assets, nil)
	second := analyzer.FlagUnderperformers(assets, nil)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].KillReason, second[i].KillReason)
		assert.Equal(t, first[i].Diagnosis, second[i].Diagnosis)
	}
}

func TestDiagnose_HypeLanguage(t *testing.T) {
	analyzer := newTestAnalyzer(t, 11)

	diagnosis := analyzer.Diagnose(asset("Innovative Premium Fishing Nets", domain.AssetTypeHeadline, 600, 0.5), nil)
	assert.True(t, strings.HasPrefix(diagnosis, "voice:"))
	assert.Contains(t, diagnosis, "innovative")
}

func TestDiagnose_FirstPatternWins(t *testing.T) {
	analyzer := newTestAnalyzer(t, 11)

	// "innovative" vem antes de "premier" na lista
	diagnosis := analyzer.Diagnose(asset("Premier Innovative Gear", domain.AssetTypeHeadline, 600, 0.5), nil)
	assert.Contains(t, diagnosis, "'innovative'")
}

func TestDiagnose_ImageAlwaysVisualFatigue(t *testing.T) {
	analyzer := newTestAnalyzer(t, 11)

	for _, imageType := range []domain.AssetType{
		domain.AssetTypeMarketingImage,
		domain.AssetTypeSquareMarketingImage,
		domain.AssetTypePortraitMarketingImage,
	} {
		// Mesmo com texto que casaria com padrões de hype
		diagnosis := analyzer.Diagnose(asset("innovative_premier.jpg", imageType, 600, 0.5), nil)
		assert.True(t, strings.HasPrefix(diagnosis, "visual_fatigue:"), "tipo %s", imageType)
	}
}

func TestDiagnose_ShortLongHeadline(t *testing.T) {
	analyzer := newTestAnalyzer(t, 11)

	diagnosis := analyzer.Diagnose(asset("Quality Nets", domain.AssetTypeLongHeadline, 600, 0.5), nil)
	assert.True(t, strings.HasPrefix(diagnosis, "specificity:"))

	// Headline curta não dispara a regra de vagueza
	diagnosis = analyzer.Diagnose(asset("Quality Nets", domain.AssetTypeHeadline, 600, 0.5), nil)
	assert.False(t, strings.HasPrefix(diagnosis, "specificity:"))
}

func TestDiagnose_GatekeepingLanguage(t *testing.T) {
	analyzer := newTestAnalyzer(t, 11)

	diagnosis := analyzer.Diagnose(asset("Nets for the Expert Angler", domain.AssetTypeHeadline, 600, 0.5), nil)
	assert.True(t, strings.HasPrefix(diagnosis, "voice:"))
	assert.Contains(t, diagnosis, "'expert'")
}

func TestDiagnose_GraveyardSimilarity(t *testing.T) {
	analyzer := newTestAnalyzer(t, 11)

	graveyard := []*domain.GraveyardRecord{
		{AssetText: "Strong Aluminum Landing Nets"},
	}

	// 3 de 4 palavras em comum com a entrada do graveyard (overlap 0.75)
	diagnosis := analyzer.Diagnose(asset("Strong Aluminum Fishing Nets", domain.AssetTypeHeadline, 600, 0.5), graveyard)
	assert.True(t, strings.HasPrefix(diagnosis, "angle: Similar"))
	assert.Contains(t, diagnosis, "Strong Aluminum Landing Nets")
}

func TestDiagnose_GraveyardFirstMatchWins(t *testing.T) {
	analyzer := newTestAnalyzer(t, 11)

	// Ambas cruzam o threshold; a primeira na ordem dada vence
	graveyard := []*domain.GraveyardRecord{
		{AssetText: "Strong Aluminum Fishing Nets Here"},
		{AssetText: "Strong Aluminum Fishing Nets"},
	}

	diagnosis := analyzer.Diagnose(asset("Strong Aluminum Fishing Nets", domain.AssetTypeHeadline, 600, 0.5), graveyard)
	assert.Contains(t, diagnosis, "Strong Aluminum Fishing Nets Here")
}

func TestDiagnose_Default(t *testing.T) {
	analyzer := newTestAnalyzer(t, 11)

	diagnosis := analyzer.Diagnose(asset("Handmade Landing Nets From Utah", domain.AssetTypeHeadline, 600, 0.5), nil)
	assert.Equal(t, "angle: Low engagement. Try a more direct, product-focused approach.", diagnosis)
}
