package budgeting

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

// CheckEmergencies roda os checks de emergência de uma campanha sobre o
// snapshot corrente e o histórico (mais recente primeiro). Alertas são
// efêmeros: vão para a notificação da semana e nunca são persistidos.
func (e *Engine) CheckEmergencies(
	current *domain.BudgetSnapshot,
	history []*domain.BudgetSnapshot,
) []domain.EmergencyAlert {
	alerts := make([]domain.EmergencyAlert, 0)
	dailySpend := current.ActualDailySpendAvg

	// Colapso de CTR: queda de 50%+ frente à média das últimas semanas
	if len(history) >= 2 {
		currentCTR := current.CampaignCTR

		recentCTRs := make([]float64, 0, 4)
		for _, h := range history {
			if len(recentCTRs) == 4 {
				break
			}
			if h.CampaignCTR > 0 {
				recentCTRs = append(recentCTRs, h.CampaignCTR)
			}
		}

		if len(recentCTRs) > 0 {
			sum := 0.0
			for _, ctr := range recentCTRs {
				sum += ctr
			}
			avgRecentCTR := sum / float64(len(recentCTRs))

			if avgRecentCTR > 0 && currentCTR < avgRecentCTR*0.5 {
				alerts = append(alerts, domain.EmergencyAlert{
					Severity: domain.AlertSeverityHigh,
					Title:    "CTR Dropped 50%+ Week-Over-Week",
					Message: fmt.Sprintf(
						"Average CTR fell from %.2f%% to %.2f%%",
						avgRecentCTR, currentCTR,
					),
					Actions: []string{
						"Check if Google changed ad policies",
						"Review competitive landscape",
						"Verify landing page is loading",
						"Consider emergency asset refresh",
					},
				})
			}
		}
	}

	// Orçamento descontrolado: gastando 2x o alvo com ROAS abaixo do alvo
	targetBudget := current.DailyBudgetTarget
	roas := current.ROASPercent
	targetROAS := current.TargetROASPercent
	if targetROAS <= 0 {
		targetROAS = 200.0
	}

	if targetBudget > 0 && dailySpend > targetBudget*2 && roas < targetROAS {
		alerts = append(alerts, domain.EmergencyAlert{
			Severity: domain.AlertSeverityHigh,
			Title:    "Spending 2x Budget with Low ROAS",
			Message: fmt.Sprintf(
				"Spending $%.2f/day (target $%.2f) at %.0f%% ROAS (target %.0f%%)",
				dailySpend, targetBudget, roas, targetROAS,
			),
			Actions: []string{
				"Reduce daily budget cap immediately",
				"Review audience expansion settings",
				"Check placement performance",
				"Tighten targeting if possible",
			},
			AutoAction: fmt.Sprintf("Set daily budget to $%.2f", targetBudget),
		})
	}

	// Teto de mercado: informativo, sinaliza que escalar não adianta
	utilization := current.BudgetUtilizationPercent
	if utilization < 80 && targetBudget > 100 {
		alerts = append(alerts, domain.EmergencyAlert{
			Severity: domain.AlertSeverityInfo,
			Title:    "Market Ceiling Detected",
			Message: fmt.Sprintf(
				"Only spending $%.2f of $%.2f budget (%.0f%% utilization)",
				dailySpend, targetBudget, utilization,
			),
			Actions: []string{
				"Stop increasing budget - market cannot absorb more",
				"Consider expanding to new campaigns (geo-targeting, different products)",
				"Diversify to Meta, Klaviyo, or other channels",
				"This is your efficient spend ceiling",
			},
		})
	}

	if len(alerts) > 0 {
		logrus.WithFields(logrus.Fields{
			"campaign": current.CampaignName,
			"alerts":   len(alerts),
		}).Warn("Condições de emergência detectadas")
	}

	return alerts
}
