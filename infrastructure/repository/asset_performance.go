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
	assetPerformanceTable = "asset_performance ap"
)

type AssetPerformanceRepository interface {
	SaveRecords(records []*domain.AssetRecord) error
	GetLatestByCampaign(campaignName string) ([]*domain.AssetRecord, error)
	GetByReportDate(campaignName, reportDate string) ([]*domain.AssetRecord, error)
	MarkKilled(assetID, reportDate, dateKilled, killReason, diagnosis, replacedBy string) error
	UpdateStatus(assetID, reportDate string, status domain.AssetStatus, replacedBy string) error
	DeleteOlderThan(days int) (int64, error)
}

type assetPerformanceRepository struct {
	conn *postgres.Connection
}

func NewAssetPerformanceRepository(conn *postgres.Connection) AssetPerformanceRepository {
	return &assetPerformanceRepository{
		conn: conn,
	}
}

const assetColumns = "ap.asset_id, ap.report_date, ap.asset_text, ap.asset_type, ap.campaign_name, " +
	"ap.impressions, ap.clicks, ap.ctr, ap.conversions, ap.cost, ap.cpa, ap.status, " +
	"COALESCE(ap.date_added, ''), COALESCE(ap.date_killed, ''), COALESCE(ap.kill_reason, ''), " +
	"COALESCE(ap.diagnosis, ''), COALESCE(ap.replaced_by, ''), COALESCE(ap.replacement_reason, ''), " +
	"ap.created_at, ap.updated_at"

// SaveRecords grava o relatório semanal de assets. Um registro por asset por
// report_date; reprocessar a mesma semana sobrescreve as métricas.
func (r *assetPerformanceRepository) SaveRecords(records []*domain.AssetRecord) error {
	for _, record := range records {
		query := squirrel.StatementBuilder.
			Insert("asset_performance").
			Columns(
				"asset_id", "report_date", "asset_text", "asset_type", "campaign_name",
				"impressions", "clicks", "ctr", "conversions", "cost", "cpa",
				"status", "date_added", "date_killed", "kill_reason", "diagnosis",
				"replaced_by", "replacement_reason",
			).
			Values(
				record.AssetID,
				record.ReportDate,
				record.AssetText,
				record.AssetType,
				record.CampaignName,
				record.Impressions,
				record.Clicks,
				record.CTR,
				record.Conversions,
				record.Cost,
				record.CPA,
				record.Status,
				nullIfEmpty(record.DateAdded),
				nullIfEmpty(record.DateKilled),
				nullIfEmpty(record.KillReason),
				nullIfEmpty(record.Diagnosis),
				nullIfEmpty(record.ReplacedBy),
				nullIfEmpty(record.ReplacementReason),
			).
			Suffix(`
				ON CONFLICT (asset_id, report_date) DO UPDATE SET
					asset_text = EXCLUDED.asset_text,
					asset_type = EXCLUDED.asset_type,
					campaign_name = EXCLUDED.campaign_name,
					impressions = EXCLUDED.impressions,
					clicks = EXCLUDED.clicks,
					ctr = EXCLUDED.ctr,
					conversions = EXCLUDED.conversions,
					cost = EXCLUDED.cost,
					cpa = EXCLUDED.cpa,
					status = EXCLUDED.status,
					date_added = EXCLUDED.date_added,
					date_killed = EXCLUDED.date_killed,
					kill_reason = EXCLUDED.kill_reason,
					diagnosis = EXCLUDED.diagnosis,
					replaced_by = EXCLUDED.replaced_by,
					replacement_reason = EXCLUDED.replacement_reason,
					updated_at = NOW()
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
	}

	return nil
}

// GetLatestByCampaign retorna os registros do report_date mais recente da campanha
func (r *assetPerformanceRepository) GetLatestByCampaign(campaignName string) ([]*domain.AssetRecord, error) {
	query, args, err := squirrel.
		Select(assetColumns).
		From(assetPerformanceTable).
		Where(squirrel.Eq{"ap.campaign_name": campaignName}).
		Where("ap.report_date = (SELECT MAX(report_date) FROM asset_performance WHERE campaign_name = ap.campaign_name)").
		OrderBy("ap.asset_type ASC, ap.impressions DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRecords(query, args...)
}

func (r *assetPerformanceRepository) GetByReportDate(campaignName, reportDate string) ([]*domain.AssetRecord, error) {
	query, args, err := squirrel.
		Select(assetColumns).
		From(assetPerformanceTable).
		Where(squirrel.Eq{"ap.campaign_name": campaignName, "ap.report_date": reportDate}).
		OrderBy("ap.asset_type ASC, ap.impressions DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRecords(query, args...)
}

// MarkKilled atualiza o status do asset para killed com motivo e diagnóstico.
// Quando uma substituta já foi gerada, o texto dela fica em replaced_by para
// que a verificação posterior saiba o que procurar na plataforma.
func (r *assetPerformanceRepository) MarkKilled(assetID, reportDate, dateKilled, killReason, diagnosis, replacedBy string) error {
	builder := squirrel.
		Update("asset_performance").
		Set("status", domain.AssetStatusKilled).
		Set("date_killed", dateKilled).
		Set("kill_reason", killReason).
		Set("diagnosis", diagnosis).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"asset_id": assetID, "report_date": reportDate}).
		PlaceholderFormat(squirrel.Dollar)

	if replacedBy != "" {
		builder = builder.Set("replaced_by", replacedBy)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// UpdateStatus atualiza o status de um registro após a verificação de upload
func (r *assetPerformanceRepository) UpdateStatus(assetID, reportDate string, status domain.AssetStatus, replacedBy string) error {
	builder := squirrel.
		Update("asset_performance").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"asset_id": assetID, "report_date": reportDate}).
		PlaceholderFormat(squirrel.Dollar)

	if replacedBy != "" {
		builder = builder.Set("replaced_by", replacedBy)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *assetPerformanceRepository) DeleteOlderThan(days int) (int64, error) {
	query, args, err := squirrel.
		Delete("asset_performance").
		Where(squirrel.Expr("report_date < (NOW() - make_interval(days => ?))::date::text", days)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *assetPerformanceRepository) queryRecords(query string, args ...any) ([]*domain.AssetRecord, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.AssetRecord, 0)
	for rows.Next() {
		record := &domain.AssetRecord{}
		err := rows.Scan(
			&record.AssetID,
			&record.ReportDate,
			&record.AssetText,
			&record.AssetType,
			&record.CampaignName,
			&record.Impressions,
			&record.Clicks,
			&record.CTR,
			&record.Conversions,
			&record.Cost,
			&record.CPA,
			&record.Status,
			&record.DateAdded,
			&record.DateKilled,
			&record.KillReason,
			&record.Diagnosis,
			&record.ReplacedBy,
			&record.ReplacementReason,
			&record.CreatedAt,
			&record.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear asset: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
