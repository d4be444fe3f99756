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
	graveyardTable = "asset_graveyard ag"
)

type GraveyardRepository interface {
	Save(record *domain.GraveyardRecord) error
	ListByCampaign(campaignName string) ([]*domain.GraveyardRecord, error)
	ListKilledSince(campaignName, cutoffDate string) ([]*domain.GraveyardRecord, error)
}

type graveyardRepository struct {
	conn *postgres.Connection
}

func NewGraveyardRepository(conn *postgres.Connection) GraveyardRepository {
	return &graveyardRepository{
		conn: conn,
	}
}

const graveyardColumns = "ag.campaign_name, ag.date_killed, ag.asset_id, ag.asset_text, ag.asset_type, " +
	"ag.impressions, ag.clicks, ag.ctr, ag.conversions, ag.cost, ag.kill_reason, ag.created_at"

// Save grava um asset morto no graveyard. O graveyard é append-only: a mesma
// morte reprocessada não duplica a entrada.
func (r *graveyardRepository) Save(record *domain.GraveyardRecord) error {
	query := squirrel.StatementBuilder.
		Insert("asset_graveyard").
		Columns(
			"campaign_name", "date_killed", "asset_id", "asset_text", "asset_type",
			"impressions", "clicks", "ctr", "conversions", "cost", "kill_reason",
		).
		Values(
			record.CampaignName,
			record.DateKilled,
			record.AssetID,
			record.AssetText,
			record.AssetType,
			record.Impressions,
			record.Clicks,
			record.CTR,
			record.Conversions,
			record.Cost,
			record.KillReason,
		).
		Suffix("ON CONFLICT (asset_id, date_killed) DO NOTHING").
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

func (r *graveyardRepository) ListByCampaign(campaignName string) ([]*domain.GraveyardRecord, error) {
	query, args, err := squirrel.
		Select(graveyardColumns).
		From(graveyardTable).
		Where(squirrel.Eq{"ag.campaign_name": campaignName}).
		OrderBy("ag.date_killed DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRecords(query, args...)
}

func (r *graveyardRepository) ListKilledSince(campaignName, cutoffDate string) ([]*domain.GraveyardRecord, error) {
	query, args, err := squirrel.
		Select(graveyardColumns).
		From(graveyardTable).
		Where(squirrel.Eq{"ag.campaign_name": campaignName}).
		Where(squirrel.GtOrEq{"ag.date_killed": cutoffDate}).
		OrderBy("ag.date_killed DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRecords(query, args...)
}

func (r *graveyardRepository) queryRecords(query string, args ...any) ([]*domain.GraveyardRecord, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.GraveyardRecord, 0)
	for rows.Next() {
		record := &domain.GraveyardRecord{}
		err := rows.Scan(
			&record.CampaignName,
			&record.DateKilled,
			&record.AssetID,
			&record.AssetText,
			&record.AssetType,
			&record.Impressions,
			&record.Clicks,
			&record.CTR,
			&record.Conversions,
			&record.Cost,
			&record.KillReason,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro do graveyard: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
