package domain

import "time"

// BudgetAction é a ação recomendada para o orçamento diário de uma campanha
type BudgetAction string

const (
	BudgetActionIncrease BudgetAction = "increase"
	BudgetActionHold     BudgetAction = "hold"
	BudgetActionDecrease BudgetAction = "decrease"
	BudgetActionPause    BudgetAction = "pause"
)

// BudgetRecommendation é o resultado do motor de recomendação de orçamento
type BudgetRecommendation struct {
	Action                BudgetAction `json:"action"`
	RecommendedBudget     float64      `json:"recommended_budget"`
	Reason                string       `json:"reason"`
	MarketCeilingDetected bool         `json:"market_ceiling_detected"`
}

// BudgetSnapshot é o registro semanal de performance de orçamento de uma campanha.
// Imutável depois de gravado; um registro por campanha por período.
type BudgetSnapshot struct {
	CampaignName             string       `json:"campaign_name"`
	WeekEnding               string       `json:"week_ending"`
	WeekStarting             string       `json:"week_starting,omitempty"`
	Season                   string       `json:"season,omitempty"`
	LookbackDays             int          `json:"lookback_days,omitempty"`
	DailyBudgetTarget        float64      `json:"daily_budget_target"`
	ActualDailySpendAvg      float64      `json:"actual_daily_spend_avg"`
	TotalSpend               float64      `json:"total_spend"`
	TotalRevenue             float64      `json:"total_revenue"`
	Orders                   int          `json:"orders,omitempty"`
	Conversions              float64      `json:"conversions,omitempty"`
	CampaignCTR              float64      `json:"campaign_ctr,omitempty"`
	CampaignClicks           int          `json:"campaign_clicks,omitempty"`
	CampaignImpressions      int          `json:"campaign_impressions,omitempty"`
	ROASPercent              float64      `json:"roas_percent"`
	ROAS7dPercent            float64      `json:"roas_7d_percent,omitempty"`
	ROAS14dPercent           float64      `json:"roas_14d_percent,omitempty"`
	TargetROASPercent        float64      `json:"target_roas_percent"`
	BudgetUtilizationPercent float64      `json:"budget_utilization_percent"`
	Recommendation           BudgetAction `json:"recommendation,omitempty"`
	RecommendedDailyBudget   float64      `json:"recommended_daily_budget,omitempty"`
	RecommendationReason     string       `json:"recommendation_reason,omitempty"`
	MarketCeilingDetected    bool         `json:"market_ceiling_detected"`
	CreatedAt                time.Time    `json:"created_at"`
}
