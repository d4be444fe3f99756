package budgeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
	"github.com/risingfishing/pmax-optimizer-api/internal/season"
)

func newTestEngine(t *testing.T, month int) *Engine {
	t.Helper()
	engine, err := NewEngine(month)
	require.NoError(t, err)
	return engine
}

func TestNewEngine_InvalidMonth(t *testing.T) {
	_, err := NewEngine(-3)
	require.Error(t, err)
	assert.ErrorIs(t, err, season.ErrNoSeason)
}

func TestRecommend_NoBudget(t *testing.T) {
	engine := newTestEngine(t, 6)

	rec := engine.Recommend(0, 0, 0, 200)
	assert.Equal(t, domain.BudgetActionHold, rec.Action)
	assert.Equal(t, 10.0, rec.RecommendedBudget)
	assert.Contains(t, rec.Reason, "No budget set")
	assert.False(t, rec.MarketCeilingDetected)
}

func TestRecommend_MarketCeiling(t *testing.T) {
	engine := newTestEngine(t, 6)

	// 200/300 = 66% de utilização com orçamento acima de $100
	rec := engine.Recommend(300, 200, 250, 200)
	assert.Equal(t, domain.BudgetActionHold, rec.Action)
	assert.Equal(t, 300.0, rec.RecommendedBudget)
	assert.True(t, rec.MarketCeilingDetected)
	assert.Contains(t, rec.Reason, "Market ceiling detected")
}

func TestRecommend_MarketCeilingRequiresHighBudget(t *testing.T) {
	engine := newTestEngine(t, 6)

	// Utilização baixa mas orçamento <= $100 segue o fluxo normal de ROAS
	rec := engine.Recommend(100, 50, 240, 200)
	assert.Equal(t, domain.BudgetActionIncrease, rec.Action)
	assert.False(t, rec.MarketCeilingDetected)
}

func TestRecommend_Increase(t *testing.T) {
	engine := newTestEngine(t, 6)

	rec := engine.Recommend(100, 95, 240, 200)
	assert.Equal(t, domain.BudgetActionIncrease, rec.Action)
	assert.Equal(t, 120.0, rec.RecommendedBudget)
	assert.Contains(t, rec.Reason, "exceeds target")
}

func TestRecommend_Hold(t *testing.T) {
	engine := newTestEngine(t, 6)

	rec := engine.Recommend(100, 95, 195, 200)
	assert.Equal(t, domain.BudgetActionHold, rec.Action)
	assert.Equal(t, 100.0, rec.RecommendedBudget)
	assert.Contains(t, rec.Reason, "on target")
}

func TestRecommend_Decrease(t *testing.T) {
	engine := newTestEngine(t, 6)

	// perf = 160/200 - 1 = -0.20
	rec := engine.Recommend(100, 95, 160, 200)
	assert.Equal(t, domain.BudgetActionDecrease, rec.Action)
	assert.Equal(t, 80.0, rec.RecommendedBudget)
}

func TestRecommend_DecreaseFloor(t *testing.T) {
	engine := newTestEngine(t, 1)

	// -20% de $11 daria $8.80; o piso de $10 vale
	rec := engine.Recommend(11, 10, 160, 200)
	assert.Equal(t, domain.BudgetActionDecrease, rec.Action)
	assert.Equal(t, 10.0, rec.RecommendedBudget)
}

func TestRecommend_Pause(t *testing.T) {
	engine := newTestEngine(t, 6)

	// perf = 100/200 - 1 = -0.50
	rec := engine.Recommend(100, 95, 100, 200)
	assert.Equal(t, domain.BudgetActionPause, rec.Action)
	assert.Equal(t, 10.0, rec.RecommendedBudget)
	assert.Contains(t, rec.Reason, "critically low")
}

func TestRecommend_DefaultTargetROAS(t *testing.T) {
	engine := newTestEngine(t, 6)

	// Sem target informado assume 200%; ROAS 240% dispara increase
	rec := engine.Recommend(100, 95, 240, 0)
	assert.Equal(t, domain.BudgetActionIncrease, rec.Action)
}

func TestRecommend_MonotonicInROAS(t *testing.T) {
	engine := newTestEngine(t, 6)

	// Ordem das ações do pior para o melhor ROAS
	rank := map[domain.BudgetAction]int{
		domain.BudgetActionPause:    0,
		domain.BudgetActionDecrease: 1,
		domain.BudgetActionHold:     2,
		domain.BudgetActionIncrease: 3,
	}

	previous := -1
	for roas := 0.0; roas <= 400.0; roas += 5.0 {
		rec := engine.Recommend(100, 95, roas, 200)
		current := rank[rec.Action]
		assert.GreaterOrEqual(t, current, previous, "ação regrediu em roas=%.0f", roas)
		previous = current
	}
}

func TestRecommendForSnapshot_DoesNotMutateInput(t *testing.T) {
	engine := newTestEngine(t, 6)

	snapshot := &domain.BudgetSnapshot{
		CampaignName:        "Core Brand",
		DailyBudgetTarget:   100,
		ActualDailySpendAvg: 95,
		ROASPercent:         240,
		TargetROASPercent:   200,
	}

	enriched := engine.RecommendForSnapshot(snapshot)

	assert.Equal(t, domain.BudgetActionIncrease, enriched.Recommendation)
	assert.Equal(t, 120.0, enriched.RecommendedDailyBudget)
	assert.Empty(t, snapshot.Recommendation)
	assert.Zero(t, snapshot.RecommendedDailyBudget)
}

func TestRecommendForSnapshot_SeasonTargetFallback(t *testing.T) {
	engine := newTestEngine(t, 1) // deep_winter, target 150%

	snapshot := &domain.BudgetSnapshot{
		CampaignName:        "Core Brand",
		DailyBudgetTarget:   20,
		ActualDailySpendAvg: 19,
		ROASPercent:         170,
	}

	// 170/150 - 1 = 0.13 com o target sazonal
	enriched := engine.RecommendForSnapshot(snapshot)
	assert.Equal(t, domain.BudgetActionIncrease, enriched.Recommendation)
}
