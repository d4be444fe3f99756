package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/infrastructure/export"
	"github.com/risingfishing/pmax-optimizer-api/infrastructure/repository"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/campaigns"
	"github.com/risingfishing/pmax-optimizer-api/pkg/apiErrors"
)

// GetCampaignAssets retorna os registros de performance do relatório mais
// recente da campanha. Com ?status=killed|paused|flagged|active filtra pelo
// status atual.
func GetCampaignAssets(campaignService *campaigns.Service, assetRepo repository.AssetPerformanceRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config, ok := campaignFromSlug(w, r, campaignService)
		if !ok {
			return
		}

		records, err := assetRepo.GetLatestByCampaign(config.CampaignName)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar registros de assets", nil)
			return
		}

		if status := r.URL.Query().Get("status"); status != "" {
			filtered := make([]*domain.AssetRecord, 0, len(records))
			for _, record := range records {
				if record.Status == domain.AssetStatus(status) {
					filtered = append(filtered, record)
				}
			}
			records = filtered
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetBudgetHistory retorna os snapshots semanais de orçamento da campanha,
// mais recente primeiro. ?weeks=N limita a janela (padrão 12).
func GetBudgetHistory(campaignService *campaigns.Service, budgetRepo repository.BudgetPerformanceRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config, ok := campaignFromSlug(w, r, campaignService)
		if !ok {
			return
		}

		weeks := 12
		if weeksParam := r.URL.Query().Get("weeks"); weeksParam != "" {
			parsed, err := strconv.Atoi(weeksParam)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Número de semanas inválido", nil)
				return
			}
			weeks = parsed
		}

		history, err := budgetRepo.GetHistory(config.CampaignName, weeks)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar histórico de orçamento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(history); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ExportReplacementsCSV remonta o CSV de substituição da última revisão a
// partir dos registros mortos e devolve para download. Só assets de texto
// entram no arquivo; troca de imagem é manual.
func ExportReplacementsCSV(campaignService *campaigns.Service, assetRepo repository.AssetPerformanceRepository) http.HandlerFunc {
	builder := export.NewCSVBuilder()

	return func(w http.ResponseWriter, r *http.Request) {
		config, ok := campaignFromSlug(w, r, campaignService)
		if !ok {
			return
		}

		records, err := assetRepo.GetLatestByCampaign(config.CampaignName)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar registros de assets", nil)
			return
		}

		flagged := make([]*domain.AssetRecord, 0)
		replacements := make(map[string]*domain.Replacement)
		for _, record := range records {
			if record.Status != domain.AssetStatusKilled || record.KillReason == "" {
				continue
			}
			if record.AssetType.IsImage() {
				continue
			}

			flagged = append(flagged, record)
			if record.ReplacedBy != "" {
				replacements[record.AssetID] = &domain.Replacement{
					AssetID: record.AssetID,
					Text:    record.ReplacedBy,
				}
			}
		}

		if len(flagged) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Nenhum asset morto na última revisão desta campanha", nil)
			return
		}

		rows := builder.BuildGoogleAdsCSV(flagged, replacements, config.CampaignName, config.AssetGroup)
		content, err := builder.RowsToString(rows)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar o CSV", nil)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s_replacements.csv", config.Slug))
		if _, err := w.Write([]byte(content)); err != nil {
			logrus.Error(err)
		}
	}
}
