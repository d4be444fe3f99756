package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/risingfishing/pmax-optimizer-api/infrastructure/database/postgres"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

const (
	budgetPerformanceTable = "budget_performance bp"
)

type BudgetPerformanceRepository interface {
	SaveSnapshot(snapshot *domain.BudgetSnapshot) error
	GetHistory(campaignName string, weeks int) ([]*domain.BudgetSnapshot, error)
	GetLatest(campaignName string) (*domain.BudgetSnapshot, error)
}

type budgetPerformanceRepository struct {
	conn *postgres.Connection
}

func NewBudgetPerformanceRepository(conn *postgres.Connection) BudgetPerformanceRepository {
	return &budgetPerformanceRepository{
		conn: conn,
	}
}

const budgetColumns = "bp.campaign_name, bp.week_ending, COALESCE(bp.week_starting, ''), COALESCE(bp.season, ''), " +
	"bp.lookback_days, bp.daily_budget_target, bp.actual_daily_spend_avg, bp.total_spend, bp.total_revenue, " +
	"bp.orders, bp.conversions, bp.campaign_ctr, bp.campaign_clicks, bp.campaign_impressions, " +
	"bp.roas_percent, bp.roas_7d_percent, bp.roas_14d_percent, bp.target_roas_percent, " +
	"bp.budget_utilization_percent, COALESCE(bp.recommendation, ''), bp.recommended_daily_budget, " +
	"COALESCE(bp.recommendation_reason, ''), bp.market_ceiling_detected, bp.created_at"

// SaveSnapshot grava o snapshot semanal da campanha. Um registro por campanha
// por week_ending; reprocessar a semana sobrescreve o snapshot.
func (r *budgetPerformanceRepository) SaveSnapshot(snapshot *domain.BudgetSnapshot) error {
	query := squirrel.StatementBuilder.
		Insert("budget_performance").
		Columns(
			"campaign_name", "week_ending", "week_starting", "season", "lookback_days",
			"daily_budget_target", "actual_daily_spend_avg", "total_spend", "total_revenue",
			"orders", "conversions", "campaign_ctr", "campaign_clicks", "campaign_impressions",
			"roas_percent", "roas_7d_percent", "roas_14d_percent", "target_roas_percent",
			"budget_utilization_percent", "recommendation", "recommended_daily_budget",
			"recommendation_reason", "market_ceiling_detected",
		).
		Values(
			snapshot.CampaignName,
			snapshot.WeekEnding,
			nullIfEmpty(snapshot.WeekStarting),
			nullIfEmpty(snapshot.Season),
			snapshot.LookbackDays,
			snapshot.DailyBudgetTarget,
			snapshot.ActualDailySpendAvg,
			snapshot.TotalSpend,
			snapshot.TotalRevenue,
			snapshot.Orders,
			snapshot.Conversions,
			snapshot.CampaignCTR,
			snapshot.CampaignClicks,
			snapshot.CampaignImpressions,
			snapshot.ROASPercent,
			snapshot.ROAS7dPercent,
			snapshot.ROAS14dPercent,
			snapshot.TargetROASPercent,
			snapshot.BudgetUtilizationPercent,
			nullIfEmpty(string(snapshot.Recommendation)),
			snapshot.RecommendedDailyBudget,
			nullIfEmpty(snapshot.RecommendationReason),
			snapshot.MarketCeilingDetected,
		).
		Suffix(`
			ON CONFLICT (campaign_name, week_ending) DO UPDATE SET
				week_starting = EXCLUDED.week_starting,
				season = EXCLUDED.season,
				lookback_days = EXCLUDED.lookback_days,
				daily_budget_target = EXCLUDED.daily_budget_target,
				actual_daily_spend_avg = EXCLUDED.actual_daily_spend_avg,
				total_spend = EXCLUDED.total_spend,
				total_revenue = EXCLUDED.total_revenue,
				orders = EXCLUDED.orders,
				conversions = EXCLUDED.conversions,
				campaign_ctr = EXCLUDED.campaign_ctr,
				campaign_clicks = EXCLUDED.campaign_clicks,
				campaign_impressions = EXCLUDED.campaign_impressions,
				roas_percent = EXCLUDED.roas_percent,
				roas_7d_percent = EXCLUDED.roas_7d_percent,
				roas_14d_percent = EXCLUDED.roas_14d_percent,
				target_roas_percent = EXCLUDED.target_roas_percent,
				budget_utilization_percent = EXCLUDED.budget_utilization_percent,
				recommendation = EXCLUDED.recommendation,
				recommended_daily_budget = EXCLUDED.recommended_daily_budget,
				recommendation_reason = EXCLUDED.recommendation_reason,
				market_ceiling_detected = EXCLUDED.market_ceiling_detected
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.conn.Exec(sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetHistory retorna os snapshots mais recentes da campanha, do mais novo
// para o mais antigo
func (r *budgetPerformanceRepository) GetHistory(campaignName string, weeks int) ([]*domain.BudgetSnapshot, error) {
	query, args, err := squirrel.
		Select(budgetColumns).
		From(budgetPerformanceTable).
		Where(squirrel.Eq{"bp.campaign_name": campaignName}).
		OrderBy("bp.week_ending DESC").
		Limit(uint64(weeks)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.BudgetSnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *budgetPerformanceRepository) GetLatest(campaignName string) (*domain.BudgetSnapshot, error) {
	snapshots, err := r.GetHistory(campaignName, 1)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, nil
	}
	return snapshots[0], nil
}

func (r *budgetPerformanceRepository) scanSnapshot(rows *sql.Rows) (*domain.BudgetSnapshot, error) {
	snapshot := &domain.BudgetSnapshot{}
	var recommendation string

	err := rows.Scan(
		&snapshot.CampaignName,
		&snapshot.WeekEnding,
		&snapshot.WeekStarting,
		&snapshot.Season,
		&snapshot.LookbackDays,
		&snapshot.DailyBudgetTarget,
		&snapshot.ActualDailySpendAvg,
		&snapshot.TotalSpend,
		&snapshot.TotalRevenue,
		&snapshot.Orders,
		&snapshot.Conversions,
		&snapshot.CampaignCTR,
		&snapshot.CampaignClicks,
		&snapshot.CampaignImpressions,
		&snapshot.ROASPercent,
		&snapshot.ROAS7dPercent,
		&snapshot.ROAS14dPercent,
		&snapshot.TargetROASPercent,
		&snapshot.BudgetUtilizationPercent,
		&recommendation,
		&snapshot.RecommendedDailyBudget,
		&snapshot.RecommendationReason,
		&snapshot.MarketCeilingDetected,
		&snapshot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	snapshot.Recommendation = domain.BudgetAction(recommendation)
	return snapshot, nil
}
