package auditing

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

// Categoria 3: tendências de performance (checks 11-14)
func (a *Auditor) checkPerformanceTrends(campaignName string) []domain.Finding {
	findings := make([]domain.Finding, 0, 4)

	history, err := a.budgetRepo.GetHistory(campaignName, 8)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign": campaignName,
			"error":    err,
		}).Warn("Não foi possível carregar o histórico de orçamento")

		findings = append(findings, domain.Finding{
			Check:    "budget_history_unavailable",
			Category: "performance_trends",
			Severity: domain.FindingWarning,
			Message:  fmt.Sprintf("Could not load budget history: %v", err),
			Expected: "Budget history available",
		})
		return findings
	}

	if len(history) == 0 {
		findings = append(findings, domain.Finding{
			Check:    "budget_history_empty",
			Category: "performance_trends",
			Severity: domain.FindingInfo,
			Message:  "No budget history data available yet",
			Value:    0,
			Expected: ">= 1 week of data",
		})
		return findings
	}

	// Check 11: ROAS contra o alvo sazonal
	latest := history[0]
	roas := latest.ROASPercent
	targetROAS := latest.TargetROASPercent
	seasonalTarget := a.seasonalBudget.TargetROAS

	// Usa o maior entre o alvo da campanha e o sazonal
	effectiveTarget := seasonalTarget
	if targetROAS > 0 {
		effectiveTarget = math.Max(targetROAS, seasonalTarget)
	}

	if effectiveTarget > 0 && roas > 0 {
		gapPct := ((effectiveTarget - roas) / effectiveTarget) * 100

		switch {
		case gapPct > 30:
			findings = append(findings, domain.Finding{
				Check:    "roas_vs_target",
				Category: "performance_trends",
				Severity: domain.FindingCritical,
				Message:  fmt.Sprintf("ROAS %.0f%% is %.0f%% below target %.0f%%", roas, gapPct, effectiveTarget),
				Value:    roas,
				Expected: fmt.Sprintf(">= %.0f%%", effectiveTarget),
			})
		case gapPct > 10:
			findings = append(findings, domain.Finding{
				Check:    "roas_vs_target",
				Category: "performance_trends",
				Severity: domain.FindingWarning,
				Message:  fmt.Sprintf("ROAS %.0f%% is %.0f%% below target %.0f%%", roas, gapPct, effectiveTarget),
				Value:    roas,
				Expected: fmt.Sprintf(">= %.0f%%", effectiveTarget),
			})
		default:
			findings = append(findings, domain.Finding{
				Check:    "roas_vs_target",
				Category: "performance_trends",
				Severity: domain.FindingPass,
				Message:  fmt.Sprintf("ROAS %.0f%% is on target (%.0f%%)", roas, effectiveTarget),
				Value:    roas,
				Expected: fmt.Sprintf(">= %.0f%%", effectiveTarget),
			})
		}
	} else {
		findings = append(findings, domain.Finding{
			Check:    "roas_vs_target",
			Category: "performance_trends",
			Severity: domain.FindingInfo,
			Message:  "Insufficient ROAS data for comparison",
			Value:    roas,
			Expected: "ROAS and target data available",
		})
	}

	// Check 12: direção da tendência de ROAS (3+ semanas consecutivas em queda)
	if len(history) >= 4 {
		// histórico ordenado do mais novo para o mais antigo
		last4 := make([]float64, 4)
		for i := 0; i < 4; i++ {
			last4[i] = history[i].ROASPercent
		}

		decliningCount := 0
		for i := 0; i < len(last4)-1; i++ {
			if last4[i] < last4[i+1] {
				decliningCount++
			} else {
				break
			}
		}

		// Exibe do mais antigo para o mais novo para facilitar a leitura
		parts := make([]string, 0, len(last4))
		for i := len(last4) - 1; i >= 0; i-- {
			parts = append(parts, fmt.Sprintf("%.0f%%", last4[i]))
		}
		trendDisplay := strings.Join(parts, " -> ")

		if decliningCount >= 3 {
			findings = append(findings, domain.Finding{
				Check:    "roas_trend",
				Category: "performance_trends",
				Severity: domain.FindingWarning,
				Message:  fmt.Sprintf("ROAS declining %d consecutive weeks: %s", decliningCount, trendDisplay),
				Value:    last4,
				Expected: "Stable or improving trend",
			})
		} else {
			findings = append(findings, domain.Finding{
				Check:    "roas_trend",
				Category: "performance_trends",
				Severity: domain.FindingPass,
				Message:  fmt.Sprintf("ROAS trend stable: %s", trendDisplay),
				Value:    last4,
				Expected: "Stable or improving trend",
			})
		}
	} else {
		findings = append(findings, domain.Finding{
			Check:    "roas_trend",
			Category: "performance_trends",
			Severity: domain.FindingInfo,
			Message:  fmt.Sprintf("Only %d week(s) of data - need 4 for trend analysis", len(history)),
			Value:    len(history),
			Expected: ">= 4 weeks of data",
		})
	}

	// Check 13: utilização de orçamento saudável (não <50% por 2+ semanas)
	lowUtilWeeks := 0
	for i, week := range history {
		if i == 4 {
			break
		}
		if week.BudgetUtilizationPercent < 50 {
			lowUtilWeeks++
		} else {
			break
		}
	}

	latestUtil := history[0].BudgetUtilizationPercent

	if lowUtilWeeks >= 2 {
		findings = append(findings, domain.Finding{
			Check:    "budget_utilization",
			Category: "performance_trends",
			Severity: domain.FindingWarning,
			Message: fmt.Sprintf(
				"Budget utilization below 50%% for %d consecutive weeks (latest: %.0f%%)",
				lowUtilWeeks, latestUtil,
			),
			Value:    latestUtil,
			Expected: ">= 50% utilization",
		})
	} else {
		findings = append(findings, domain.Finding{
			Check:    "budget_utilization",
			Category: "performance_trends",
			Severity: domain.FindingPass,
			Message:  fmt.Sprintf("Budget utilization healthy at %.0f%%", latestUtil),
			Value:    latestUtil,
			Expected: ">= 50% utilization",
		})
	}

	// Check 14: volatilidade de gasto (>40% de variação semana a semana)
	if len(history) >= 2 {
		limit := len(history)
		if limit > 4 {
			limit = 4
		}
		spends := make([]float64, limit)
		for i := 0; i < limit; i++ {
			spends[i] = history[i].TotalSpend
		}

		maxSwing := 0.0
		for i := 0; i < len(spends)-1; i++ {
			if spends[i+1] > 0 {
				swing := math.Abs(spends[i]-spends[i+1]) / spends[i+1] * 100
				maxSwing = math.Max(maxSwing, swing)
			}
		}

		if maxSwing > 40 {
			findings = append(findings, domain.Finding{
				Check:    "spend_volatility",
				Category: "performance_trends",
				Severity: domain.FindingInfo,
				Message:  fmt.Sprintf("Spend volatility %.0f%% - large week-to-week swings suggest instability", maxSwing),
				Value:    maxSwing,
				Expected: "<= 40% swing",
			})
		} else {
			findings = append(findings, domain.Finding{
				Check:    "spend_volatility",
				Category: "performance_trends",
				Severity: domain.FindingPass,
				Message:  fmt.Sprintf("Spend volatility %.0f%% within normal range", maxSwing),
				Value:    maxSwing,
				Expected: "<= 40% swing",
			})
		}
	} else {
		findings = append(findings, domain.Finding{
			Check:    "spend_volatility",
			Category: "performance_trends",
			Severity: domain.FindingInfo,
			Message:  "Not enough data for volatility analysis",
			Expected: ">= 2 weeks of data",
		})
	}

	return findings
}
