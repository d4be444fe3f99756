// Package budgeting implementa o motor de recomendação de orçamento e o
// checker de condições de emergência das campanhas.
package budgeting

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
	"github.com/risingfishing/pmax-optimizer-api/internal/season"
	"github.com/risingfishing/pmax-optimizer-api/pkg/timeutil"
)

// Engine produz recomendações de orçamento baseadas em ROAS para a estação
// corrente. Assim como o Analyzer, deriva a política na construção e é puro
// dali em diante.
type Engine struct {
	Month  int
	Season season.Name
	budget season.Budget
}

// NewEngine cria um engine para o mês informado; month=0 usa o mês corrente
// em Mountain Time
func NewEngine(month int) (*Engine, error) {
	if month == 0 {
		month = timeutil.CurrentMonth()
	}

	name, err := season.SeasonFor(month)
	if err != nil {
		return nil, err
	}

	budget, err := season.BudgetFor(month)
	if err != nil {
		return nil, err
	}

	return &Engine{
		Month:  month,
		Season: name,
		budget: budget,
	}, nil
}

// SeasonBudget expõe a política de orçamento da estação corrente
func (e *Engine) SeasonBudget() season.Budget {
	return e.budget
}

// Recommend calcula a recomendação de orçamento a partir da performance
// de ROAS. A função de decisão é em degraus, na ordem:
// sem orçamento → teto de mercado → increase/hold/decrease/pause.
func (e *Engine) Recommend(
	currentDailyBudget float64,
	actualDailySpendAvg float64,
	currentROAS float64,
	targetROAS float64,
) domain.BudgetRecommendation {
	if currentDailyBudget <= 0 {
		return domain.BudgetRecommendation{
			Action:            domain.BudgetActionHold,
			RecommendedBudget: 10.0,
			Reason:            "No budget set. Start with $10/day.",
		}
	}

	utilization := (actualDailySpendAvg / currentDailyBudget) * 100

	// Teto de mercado: orçamento alto e gasto bem abaixo dele.
	// Nesse cenário a performance de ROAS é irrelevante, escalar não adianta.
	if utilization < 80 && currentDailyBudget > 100 {
		return domain.BudgetRecommendation{
			Action:            domain.BudgetActionHold,
			RecommendedBudget: currentDailyBudget,
			Reason: fmt.Sprintf(
				"Market ceiling detected. Only spending $%.0f/day of $%.0f budget. Cannot efficiently scale further.",
				actualDailySpendAvg, currentDailyBudget,
			),
			MarketCeilingDetected: true,
		}
	}

	if targetROAS <= 0 {
		targetROAS = 200.0
	}

	roasPerformance := (currentROAS / targetROAS) - 1

	if roasPerformance >= 0.10 {
		increase := currentDailyBudget * 0.20
		return domain.BudgetRecommendation{
			Action:            domain.BudgetActionIncrease,
			RecommendedBudget: round2(currentDailyBudget + increase),
			Reason: fmt.Sprintf(
				"ROAS %.0f%% exceeds target %.0f%% by %.0f%%. Recommend +20%% budget increase.",
				currentROAS, targetROAS, roasPerformance*100,
			),
		}
	}

	if roasPerformance >= -0.10 {
		return domain.BudgetRecommendation{
			Action:            domain.BudgetActionHold,
			RecommendedBudget: currentDailyBudget,
			Reason: fmt.Sprintf(
				"ROAS %.0f%% on target (%.0f%%). Hold budget steady.",
				currentROAS, targetROAS,
			),
		}
	}

	if roasPerformance >= -0.30 {
		decrease := currentDailyBudget * 0.20
		return domain.BudgetRecommendation{
			Action:            domain.BudgetActionDecrease,
			RecommendedBudget: math.Max(round2(currentDailyBudget-decrease), 10.0),
			Reason: fmt.Sprintf(
				"ROAS %.0f%% is %.0f%% below target %.0f%%. Recommend -20%% budget decrease.",
				currentROAS, math.Abs(roasPerformance)*100, targetROAS,
			),
		}
	}

	// ROAS mais de 30% abaixo do alvo: modo manutenção
	return domain.BudgetRecommendation{
		Action:            domain.BudgetActionPause,
		RecommendedBudget: 10.0,
		Reason: fmt.Sprintf(
			"ROAS %.0f%% critically low (target %.0f%%). Recommend reducing to maintenance mode ($10/day) until performance recovers.",
			currentROAS, targetROAS,
		),
	}
}

// RecommendForSnapshot é o açúcar usado pelo pipeline semanal: aplica
// Recommend sobre um snapshot e retorna uma cópia enriquecida com a
// recomendação, sem alterar o snapshot de entrada.
func (e *Engine) RecommendForSnapshot(snapshot *domain.BudgetSnapshot) *domain.BudgetSnapshot {
	targetROAS := snapshot.TargetROASPercent
	if targetROAS <= 0 {
		targetROAS = e.budget.TargetROAS
	}

	rec := e.Recommend(
		snapshot.DailyBudgetTarget,
		snapshot.ActualDailySpendAvg,
		snapshot.ROASPercent,
		targetROAS,
	)

	enriched := *snapshot
	enriched.Recommendation = rec.Action
	enriched.RecommendedDailyBudget = rec.RecommendedBudget
	enriched.RecommendationReason = rec.Reason
	enriched.MarketCeilingDetected = rec.MarketCeilingDetected

	logrus.WithFields(logrus.Fields{
		"campaign":           snapshot.CampaignName,
		"action":             rec.Action,
		"recommended_budget": rec.RecommendedBudget,
	}).Info("Recomendação de orçamento calculada")

	return &enriched
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
