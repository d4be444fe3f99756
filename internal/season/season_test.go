package season

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

func TestSeasonFor_CoversAllMonths(t *testing.T) {
	// Todo mês 1..12 deve pertencer a exatamente uma estação
	seen := map[int]Name{}

	for month := 1; month <= 12; month++ {
		name, err := SeasonFor(month)
		require.NoError(t, err, "mês %d sem estação", month)
		seen[month] = name
	}

	assert.Len(t, seen, 12)

	// Partição disjunta: a união dos meses das estações é {1..12} sem sobreposição
	counts := map[int]int{}
	for _, policy := range policies {
		for _, m := range policy.Months {
			counts[m]++
		}
	}
	for month := 1; month <= 12; month++ {
		assert.Equal(t, 1, counts[month], "mês %d mapeado %d vezes", month, counts[month])
	}
}

func TestSeasonFor_InvalidMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		_, err := SeasonFor(month)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoSeason)
	}
}

func TestSeasonFor_KnownMonths(t *testing.T) {
	tests := []struct {
		month    int
		expected Name
	}{
		{1, DeepWinter},
		{2, DeepWinter},
		{3, ShoulderSeason},
		{6, PeakSeason},
		{10, ShoulderSeason},
		{11, LowSeason},
		{12, LowSeason},
	}

	for _, tt := range tests {
		name, err := SeasonFor(tt.month)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, name, "mês %d", tt.month)
	}
}

func TestThresholdsFor(t *testing.T) {
	policy, err := ThresholdsFor(11)
	require.NoError(t, err)

	assert.Equal(t, 150, policy.MinImpressions)
	assert.Equal(t, 60, policy.LookbackDays)

	minCTR, ok := policy.MinCTRFor(domain.AssetTypeLongHeadline)
	require.True(t, ok)
	assert.Equal(t, 1.0, minCTR)

	// Imagens usam o mesmo piso de 1.0% em todas as estações
	for _, imageType := range []domain.AssetType{
		domain.AssetTypeMarketingImage,
		domain.AssetTypeSquareMarketingImage,
		domain.AssetTypePortraitMarketingImage,
	} {
		minCTR, ok := policy.MinCTRFor(imageType)
		require.True(t, ok)
		assert.Equal(t, 1.0, minCTR)
	}

	// Tipo desconhecido não tem piso e nunca é morto
	_, ok = policy.MinCTRFor(domain.AssetType("YOUTUBE_VIDEO"))
	assert.False(t, ok)
}

func TestBudgetFor(t *testing.T) {
	budget, err := BudgetFor(1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, budget.RecommendedDaily)
	assert.Equal(t, 150.0, budget.TargetROAS)

	budget, err = BudgetFor(7)
	require.NoError(t, err)
	assert.Equal(t, 900.0, budget.MaxDaily)
	assert.Equal(t, 200.0, budget.TargetROAS)
}

func TestDemandPctFor(t *testing.T) {
	assert.Equal(t, 13.0, DemandPctFor(6))
	assert.Equal(t, 2.0, DemandPctFor(1))
	assert.Equal(t, 0.0, DemandPctFor(0))

	// A curva anual soma 100%
	total := 0.0
	for month := 1; month <= 12; month++ {
		total += DemandPctFor(month)
	}
	assert.InDelta(t, 100.0, total, 0.01)
}

func TestAssetChangesEnabled_PorEstacao(t *testing.T) {
	tests := []struct {
		month   int
		enabled bool
	}{
		{1, false},
		{12, false},
		{3, true},
		{6, true},
	}

	for _, tt := range tests {
		policy, err := ThresholdsFor(tt.month)
		require.NoError(t, err)
		assert.Equal(t, tt.enabled, policy.AssetChangesEnabled, "mês %d", tt.month)
	}
}
