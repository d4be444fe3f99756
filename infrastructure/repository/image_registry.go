package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/risingfishing/pmax-optimizer-api/infrastructure/database/postgres"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

const (
	imageRegistryTable = "image_registry ir"
)

type ImageRegistryRepository interface {
	Upsert(image *domain.ImageRecord) error
	GetByID(imageID string) (*domain.ImageRecord, error)
	ListAll() ([]*domain.ImageRecord, error)
	ListByCampaign(campaignName string) ([]*domain.ImageRecord, error)
	Link(imageID string, link domain.ImageLink) error
	Unlink(imageID, campaignName string) error
}

type imageRegistryRepository struct {
	conn *postgres.Connection
}

func NewImageRegistryRepository(conn *postgres.Connection) ImageRegistryRepository {
	return &imageRegistryRepository{
		conn: conn,
	}
}

const imageColumns = "ir.image_id, ir.image_hash, ir.filename, ir.content_category, ir.aspect_ratio, " +
	"ir.width, ir.height, ir.status, ir.source, COALESCE(ir.description, ''), ir.links, ir.created_at, ir.updated_at"

// Upsert grava uma imagem no registro. Os vínculos com campanhas são mantidos
// como JSONB, seguindo o formato do registro da conta.
func (r *imageRegistryRepository) Upsert(image *domain.ImageRecord) error {
	linksJSON, err := json.Marshal(image.Links)
	if err != nil {
		return fmt.Errorf("erro ao serializar vínculos para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("image_registry").
		Columns(
			"image_id", "image_hash", "filename", "content_category", "aspect_ratio",
			"width", "height", "status", "source", "description", "links",
		).
		Values(
			image.ImageID,
			image.ImageHash,
			image.Filename,
			image.ContentCategory,
			image.AspectRatio,
			image.Width,
			image.Height,
			image.Status,
			image.Source,
			nullIfEmpty(image.Description),
			linksJSON,
		).
		Suffix(`
			ON CONFLICT (image_id) DO UPDATE SET
				image_hash = EXCLUDED.image_hash,
				filename = EXCLUDED.filename,
				content_category = EXCLUDED.content_category,
				aspect_ratio = EXCLUDED.aspect_ratio,
				width = EXCLUDED.width,
				height = EXCLUDED.height,
				status = EXCLUDED.status,
				source = EXCLUDED.source,
				description = EXCLUDED.description,
				links = EXCLUDED.links,
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

func (r *imageRegistryRepository) GetByID(imageID string) (*domain.ImageRecord, error) {
	query, args, err := squirrel.
		Select(imageColumns).
		From(imageRegistryTable).
		Where(squirrel.Eq{"ir.image_id": imageID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	images, err := r.queryImages(query, args...)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, nil
	}
	return images[0], nil
}

func (r *imageRegistryRepository) ListAll() ([]*domain.ImageRecord, error) {
	query, args, err := squirrel.
		Select(imageColumns).
		From(imageRegistryTable).
		OrderBy("ir.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryImages(query, args...)
}

// ListByCampaign retorna as imagens com vínculo ativo com a campanha.
// O filtro de vínculo ativo é feito em memória por estar dentro do JSONB.
func (r *imageRegistryRepository) ListByCampaign(campaignName string) ([]*domain.ImageRecord, error) {
	all, err := r.ListAll()
	if err != nil {
		return nil, err
	}

	images := make([]*domain.ImageRecord, 0)
	for _, image := range all {
		if image.LinkedTo(campaignName) {
			images = append(images, image)
		}
	}

	return images, nil
}

// Link adiciona um vínculo ativo da imagem com uma campanha
func (r *imageRegistryRepository) Link(imageID string, link domain.ImageLink) error {
	image, err := r.GetByID(imageID)
	if err != nil {
		return err
	}
	if image == nil {
		return fmt.Errorf("imagem não encontrada: %s", imageID)
	}

	image.Links = append(image.Links, link)
	return r.Upsert(image)
}

// Unlink marca como desfeitos todos os vínculos ativos da imagem com a campanha
func (r *imageRegistryRepository) Unlink(imageID, campaignName string) error {
	image, err := r.GetByID(imageID)
	if err != nil {
		return err
	}
	if image == nil {
		return fmt.Errorf("imagem não encontrada: %s", imageID)
	}

	now := time.Now().UTC()
	for i := range image.Links {
		if image.Links[i].CampaignName == campaignName && image.Links[i].Linked() {
			image.Links[i].DateUnlinked = &now
		}
	}

	return r.Upsert(image)
}

func (r *imageRegistryRepository) queryImages(query string, args ...any) ([]*domain.ImageRecord, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	images := make([]*domain.ImageRecord, 0)
	for rows.Next() {
		image := &domain.ImageRecord{}
		var linksJSON []byte

		err := rows.Scan(
			&image.ImageID,
			&image.ImageHash,
			&image.Filename,
			&image.ContentCategory,
			&image.AspectRatio,
			&image.Width,
			&image.Height,
			&image.Status,
			&image.Source,
			&image.Description,
			&linksJSON,
			&image.CreatedAt,
			&image.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear imagem: %w", err)
		}

		if linksJSON != nil {
			if err := json.Unmarshal(linksJSON, &image.Links); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de vínculos: %w", err)
			}
		}

		images = append(images, image)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return images, nil
}
