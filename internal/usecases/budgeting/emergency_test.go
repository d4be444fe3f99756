package budgeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

func snapshotWithCTR(ctr float64) *domain.BudgetSnapshot {
	return &domain.BudgetSnapshot{CampaignName: "Core Brand", CampaignCTR: ctr}
}

func TestCheckEmergencies_NoHistoryNoAlerts(t *testing.T) {
	engine := newTestEngine(t, 6)

	current := &domain.BudgetSnapshot{
		CampaignName:             "Core Brand",
		CampaignCTR:              1.0,
		DailyBudgetTarget:        100,
		ActualDailySpendAvg:      95,
		ROASPercent:              220,
		TargetROASPercent:        200,
		BudgetUtilizationPercent: 95,
	}

	alerts := engine.CheckEmergencies(current, nil)
	assert.Empty(t, alerts)
}

func TestCheckEmergencies_CTRCollapse(t *testing.T) {
	engine := newTestEngine(t, 6)

	current := snapshotWithCTR(1.0)
	current.BudgetUtilizationPercent = 95
	history := []*domain.BudgetSnapshot{
		snapshotWithCTR(2.4),
		snapshotWithCTR(2.6),
		snapshotWithCTR(2.2),
	}

	alerts := engine.CheckEmergencies(current, history)
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.AlertSeverityHigh, alerts[0].Severity)
	assert.Equal(t, "CTR Dropped 50%+ Week-Over-Week", alerts[0].Title)
	assert.Contains(t, alerts[0].Message, "2.40%")
	assert.Contains(t, alerts[0].Message, "1.00%")
}

func TestCheckEmergencies_CTRCollapseRequiresTwoWeeks(t *testing.T) {
	engine := newTestEngine(t, 6)

	current := snapshotWithCTR(0.5)
	current.BudgetUtilizationPercent = 95
	history := []*domain.BudgetSnapshot{snapshotWithCTR(3.0)}

	alerts := engine.CheckEmergencies(current, history)
	assert.Empty(t, alerts)
}

func TestCheckEmergencies_CTRCollapseIgnoresZeroHistory(t *testing.T) {
	engine := newTestEngine(t, 6)

	// Semanas sem CTR registrado não entram na média
	current := snapshotWithCTR(1.0)
	current.BudgetUtilizationPercent = 95
	history := []*domain.BudgetSnapshot{
		snapshotWithCTR(0),
		snapshotWithCTR(2.4),
		snapshotWithCTR(2.6),
	}

	alerts := engine.CheckEmergencies(current, history)
	require.Len(t, alerts, 1)
	assert.Contains(t, alerts[0].Message, "2.50%")
}

func TestCheckEmergencies_BudgetRunaway(t *testing.T) {
	engine := newTestEngine(t, 6)

	current := &domain.BudgetSnapshot{
		CampaignName:             "Core Brand",
		DailyBudgetTarget:        100,
		ActualDailySpendAvg:      250,
		ROASPercent:              120,
		TargetROASPercent:        200,
		BudgetUtilizationPercent: 250,
	}

	alerts := engine.CheckEmergencies(current, nil)
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.AlertSeverityHigh, alerts[0].Severity)
	assert.Equal(t, "Spending 2x Budget with Low ROAS", alerts[0].Title)
	assert.Equal(t, "Set daily budget to $100.00", alerts[0].AutoAction)
}

func TestCheckEmergencies_RunawayNeedsLowROAS(t *testing.T) {
	engine := newTestEngine(t, 6)

	// Gasto alto mas ROAS acima do alvo não é emergência
	current := &domain.BudgetSnapshot{
		CampaignName:             "Core Brand",
		DailyBudgetTarget:        100,
		ActualDailySpendAvg:      250,
		ROASPercent:              300,
		TargetROASPercent:        200,
		BudgetUtilizationPercent: 250,
	}

	alerts := engine.CheckEmergencies(current, nil)
	assert.Empty(t, alerts)
}

func TestCheckEmergencies_MarketCeiling(t *testing.T) {
	engine := newTestEngine(t, 6)

	current := &domain.BudgetSnapshot{
		CampaignName:             "Core Brand",
		DailyBudgetTarget:        300,
		ActualDailySpendAvg:      180,
		ROASPercent:              220,
		TargetROASPercent:        200,
		BudgetUtilizationPercent: 60,
	}

	alerts := engine.CheckEmergencies(current, nil)
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.AlertSeverityInfo, alerts[0].Severity)
	assert.Equal(t, "Market Ceiling Detected", alerts[0].Title)
	assert.Contains(t, alerts[0].Message, "60% utilization")
}

func TestCheckEmergencies_MultipleAlerts(t *testing.T) {
	engine := newTestEngine(t, 6)

	// Campos forçados para disparar os três checks na mesma execução
	current := &domain.BudgetSnapshot{
		CampaignName:             "Core Brand",
		CampaignCTR:              0.8,
		DailyBudgetTarget:        150,
		ActualDailySpendAvg:      320,
		ROASPercent:              120,
		TargetROASPercent:        200,
		BudgetUtilizationPercent: 60,
	}
	history := []*domain.BudgetSnapshot{
		snapshotWithCTR(2.4),
		snapshotWithCTR(2.6),
	}

	alerts := engine.CheckEmergencies(current, history)
	require.Len(t, alerts, 3)

	titles := make([]string, 0, len(alerts))
	for _, a := range alerts {
		titles = append(titles, a.Title)
	}
	assert.Contains(t, titles, "CTR Dropped 50%+ Week-Over-Week")
	assert.Contains(t, titles, "Spending 2x Budget with Low ROAS")
	assert.Contains(t, titles, "Market Ceiling Detected")
}
