package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/risingfishing/pmax-optimizer-api/infrastructure/database/postgres"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

const (
	campaignConfigTable = "campaign_configs cc"
)

type CampaignConfigRepository interface {
	GetAll() ([]*domain.CampaignConfig, error)
	GetByName(campaignName string) (*domain.CampaignConfig, error)
	GetBySlug(slug string) (*domain.CampaignConfig, error)
	Upsert(config *domain.CampaignConfig) error
	UpdateManualStrategy(campaignName string, manual domain.ManualStrategy) error
	UpdatePlatformSettings(campaignName string, settings domain.PlatformSettings) error
}

type campaignConfigRepository struct {
	conn *postgres.Connection
}

func NewCampaignConfigRepository(conn *postgres.Connection) CampaignConfigRepository {
	return &campaignConfigRepository{
		conn: conn,
	}
}

const campaignConfigColumns = "cc.campaign_name, cc.campaign_id, COALESCE(cc.asset_group, ''), cc.slug, " +
	"cc.manual, cc.platform_settings, cc.image_profile, cc.updated_at"

func (r *campaignConfigRepository) GetAll() ([]*domain.CampaignConfig, error) {
	query, args, err := squirrel.
		Select(campaignConfigColumns).
		From(campaignConfigTable).
		OrderBy("cc.campaign_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryConfigs(query, args...)
}

func (r *campaignConfigRepository) GetByName(campaignName string) (*domain.CampaignConfig, error) {
	query, args, err := squirrel.
		Select(campaignConfigColumns).
		From(campaignConfigTable).
		Where(squirrel.Eq{"cc.campaign_name": campaignName}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryConfig(query, args...)
}

func (r *campaignConfigRepository) GetBySlug(slug string) (*domain.CampaignConfig, error) {
	query, args, err := squirrel.
		Select(campaignConfigColumns).
		From(campaignConfigTable).
		Where(squirrel.Eq{"cc.slug": slug}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryConfig(query, args...)
}

func (r *campaignConfigRepository) Upsert(config *domain.CampaignConfig) error {
	manualJSON, err := json.Marshal(config.Manual)
	if err != nil {
		return fmt.Errorf("erro ao serializar estratégia manual: %w", err)
	}

	settingsJSON, err := json.Marshal(config.PlatformSettings)
	if err != nil {
		return fmt.Errorf("erro ao serializar configurações da plataforma: %w", err)
	}

	profileJSON, err := json.Marshal(config.ImageProfile)
	if err != nil {
		return fmt.Errorf("erro ao serializar perfil de imagens: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("campaign_configs").
		Columns("campaign_name", "campaign_id", "asset_group", "slug", "manual", "platform_settings", "image_profile").
		Values(
			config.CampaignName,
			config.CampaignID,
			nullIfEmpty(config.AssetGroup),
			config.Slug,
			manualJSON,
			settingsJSON,
			profileJSON,
		).
		Suffix(`
			ON CONFLICT (campaign_name) DO UPDATE SET
				campaign_id = EXCLUDED.campaign_id,
				asset_group = EXCLUDED.asset_group,
				slug = EXCLUDED.slug,
				manual = EXCLUDED.manual,
				platform_settings = EXCLUDED.platform_settings,
				image_profile = EXCLUDED.image_profile,
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

	return nil
}

// UpdateManualStrategy sobrescreve somente a estratégia manual da campanha
func (r *campaignConfigRepository) UpdateManualStrategy(campaignName string, manual domain.ManualStrategy) error {
	manualJSON, err := json.Marshal(manual)
	if err != nil {
		return fmt.Errorf("erro ao serializar estratégia manual: %w", err)
	}

	return r.updateColumn(campaignName, "manual", manualJSON)
}

// UpdatePlatformSettings sobrescreve as configurações sincronizadas do Google Ads
func (r *campaignConfigRepository) UpdatePlatformSettings(campaignName string, settings domain.PlatformSettings) error {
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("erro ao serializar configurações da plataforma: %w", err)
	}

	return r.updateColumn(campaignName, "platform_settings", settingsJSON)
}

func (r *campaignConfigRepository) updateColumn(campaignName, column string, value []byte) error {
	query, args, err := squirrel.
		Update("campaign_configs").
		Set(column, value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"campaign_name": campaignName}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("campanha não encontrada: %s", campaignName)
	}

	return nil
}

func (r *campaignConfigRepository) queryConfig(query string, args ...any) (*domain.CampaignConfig, error) {
	configs, err := r.queryConfigs(query, args...)
	if err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return nil, nil
	}
	return configs[0], nil
}

func (r *campaignConfigRepository) queryConfigs(query string, args ...any) ([]*domain.CampaignConfig, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	configs := make([]*domain.CampaignConfig, 0)
	for rows.Next() {
		config := &domain.CampaignConfig{}
		var manualJSON, settingsJSON, profileJSON []byte

		err := rows.Scan(
			&config.CampaignName,
			&config.CampaignID,
			&config.AssetGroup,
			&config.Slug,
			&manualJSON,
			&settingsJSON,
			&profileJSON,
			&config.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear configuração de campanha: %w", err)
		}

		if manualJSON != nil {
			if err := json.Unmarshal(manualJSON, &config.Manual); err != nil {
				return nil, fmt.Errorf("erro ao deserializar estratégia manual: %w", err)
			}
		}
		if settingsJSON != nil {
			if err := json.Unmarshal(settingsJSON, &config.PlatformSettings); err != nil {
				return nil, fmt.Errorf("erro ao deserializar configurações da plataforma: %w", err)
			}
		}
		if profileJSON != nil {
			if err := json.Unmarshal(profileJSON, &config.ImageProfile); err != nil {
				return nil, fmt.Errorf("erro ao deserializar perfil de imagens: %w", err)
			}
		}

		configs = append(configs, config)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return configs, nil
}
