// Package analyzing implementa o motor de análise de assets: decide quais
// criativos estão abaixo dos thresholds sazonais e por quê.
package analyzing

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
	"github.com/risingfishing/pmax-optimizer-api/internal/season"
	"github.com/risingfishing/pmax-optimizer-api/pkg/timeutil"
)

// Analyzer avalia performance de assets contra os thresholds da estação.
// Deriva estação/thresholds/demanda uma vez na construção; depois disso é
// puro e sem estado entre chamadas.
type Analyzer struct {
	Month      int
	Season     season.Name
	thresholds season.Policy
	demand     float64
}

// NewAnalyzer cria um analyzer para o mês informado; com month=0 usa o mês
// corrente em Mountain Time. Mês sem estação mapeada é erro fatal de config.
func NewAnalyzer(month int) (*Analyzer, error) {
	if month == 0 {
		month = timeutil.CurrentMonth()
	}

	name, err := season.SeasonFor(month)
	if err != nil {
		return nil, err
	}

	thresholds, err := season.ThresholdsFor(month)
	if err != nil {
		return nil, err
	}

	analyzer := &Analyzer{
		Month:      month,
		Season:     name,
		thresholds: thresholds,
		demand:     season.DemandPctFor(month),
	}

	logrus.WithFields(logrus.Fields{
		"season":     name,
		"month":      month,
		"demand_pct": analyzer.demand,
	}).Info("Analyzer inicializado")

	return analyzer, nil
}

// Thresholds expõe a política sazonal derivada na construção
func (a *Analyzer) Thresholds() season.Policy {
	return a.thresholds
}

// IsNewAsset indica se o asset é novo demais para julgar.
// Novo = idade < patience_days E impressões < patience_impressions.
// Asset sem date_added nunca é considerado novo: proveniência ausente
// significa "velho o suficiente para julgar".
func (a *Analyzer) IsNewAsset(asset *domain.AssetRecord) bool {
	if asset.DateAdded == "" {
		return false
	}

	ageDays := timeutil.DaysSince(asset.DateAdded)
	isNew := ageDays < a.thresholds.NewAssetPatienceDays &&
		asset.Impressions < a.thresholds.NewAssetPatienceImpressions

	if isNew {
		logrus.WithFields(logrus.Fields{
			"asset_text":  asset.AssetText,
			"age_days":    ageDays,
			"impressions": asset.Impressions,
		}).Debug("Asset ainda no período de paciência")
	}

	return isNew
}

// ShouldKill aplica o critério de kill e retorna o motivo, ou "" para manter.
// O flagging é somente por CTR: atribuição de conversão no nível de asset é
// pouco confiável em campanhas PMax, então CTR é o único sinal usado.
func (a *Analyzer) ShouldKill(asset *domain.AssetRecord) string {
	// Dados insuficientes para julgar
	if asset.Impressions < a.thresholds.MinImpressions {
		return ""
	}

	minCTR, ok := a.thresholds.MinCTRFor(asset.AssetType)
	if !ok {
		// Tipo sem piso configurado nunca é morto
		return ""
	}

	if asset.CTR < minCTR {
		return fmt.Sprintf(
			"CTR %.2f%% below %s threshold %.1f%% for %s (%d impressions)",
			asset.CTR, a.Season, minCTR, asset.AssetType, asset.Impressions,
		)
	}

	return ""
}

// FlagUnderperformers flaga TODOS os assets que atendem o critério de kill
// (sem quotas). Retorna cópias enriquecidas com kill_reason e diagnosis;
// os registros retornados são a versão autoritativa, a entrada não é alterada.
func (a *Analyzer) FlagUnderperformers(
	assets []*domain.AssetRecord,
	graveyard []*domain.GraveyardRecord,
) []*domain.AssetRecord {
	flagged := make([]*domain.AssetRecord, 0)

	for _, asset := range assets {
		// Pula assets no período de paciência
		if a.IsNewAsset(asset) {
			continue
		}

		// Pula assets já mortos/pausados
		if asset.Status == domain.AssetStatusKilled || asset.Status == domain.AssetStatusPaused {
			continue
		}

		killReason := a.ShouldKill(asset)
		if killReason == "" {
			continue
		}

		enriched := *asset
		enriched.KillReason = killReason
		enriched.Diagnosis = a.Diagnose(&enriched, graveyard)
		flagged = append(flagged, &enriched)

		logrus.WithFields(logrus.Fields{
			"asset_text":  asset.AssetText,
			"kill_reason": killReason,
		}).Info("Asset flagado para substituição")
	}

	logrus.WithFields(logrus.Fields{
		"flagged": len(flagged),
		"total":   len(assets),
	}).Info("Análise de assets concluída")

	return flagged
}
