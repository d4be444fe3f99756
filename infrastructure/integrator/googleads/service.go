package googleads

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	adsdomain "github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/googleads/domain"
	"github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/risingfishing/pmax-optimizer-api/internal/config"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
	"github.com/risingfishing/pmax-optimizer-api/pkg/timeutil"
)

type GoogleAdsIntegrator struct {
	cfg    *config.Config
	Client googleadsclient.Client
}

func New(cfg *config.Config, client googleadsclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// CollectForCampaign coleta a performance diária dos assets de texto e agrega
// por texto do asset. O ID é derivado do texto e do nome da campanha, então
// coletas repetidas convergem para os mesmos registros.
func (s *GoogleAdsIntegrator) CollectForCampaign(
	campaignName string,
	campaignID string,
	startDate string,
	endDate string,
) ([]*domain.AssetRecord, error) {
	rawRows, err := s.Client.GetAssetPerformance(campaignID, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign":    campaignName,
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("collector: failed to get asset performance from API")
		return nil, err
	}

	type aggregate struct {
		record    *domain.AssetRecord
		datesSeen []string
	}

	aggregated := make(map[string]*aggregate)

	for _, row := range rawRows {
		agg, ok := aggregated[row.AssetText]
		if !ok {
			agg = &aggregate{
				record: &domain.AssetRecord{
					AssetID:      domain.GenerateAssetID(row.AssetText, campaignName),
					AssetText:    row.AssetText,
					AssetType:    domain.NormalizeAssetType(row.FieldType),
					CampaignName: campaignName,
					Status:       domain.AssetStatusActive,
				},
			}
			aggregated[row.AssetText] = agg
		}

		agg.record.Impressions += row.Impressions
		agg.record.Clicks += row.Clicks
		agg.record.Conversions += row.Conversions
		agg.record.Cost += row.Cost
		if row.Date != "" {
			agg.datesSeen = append(agg.datesSeen, row.Date)
		}
	}

	records := make([]*domain.AssetRecord, 0, len(aggregated))
	for _, agg := range aggregated {
		record := agg.record

		if record.Impressions > 0 {
			record.CTR = round2(float64(record.Clicks) / float64(record.Impressions) * 100)
		}
		if record.Conversions > 0 {
			record.CPA = round2(record.Cost / record.Conversions)
		}

		// A data de adição é a data mais antiga em que o asset apareceu
		sort.Strings(agg.datesSeen)
		if len(agg.datesSeen) > 0 {
			record.DateAdded = agg.datesSeen[0]
		}

		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].AssetText < records[j].AssetText
	})

	logrus.WithFields(logrus.Fields{
		"campaign": campaignName,
		"assets":   len(records),
	}).Info("collector: aggregated unique assets for campaign")

	return records, nil
}

// CollectImagesForCampaign coleta a performance dos assets de imagem, agregada
// pelo resource name do asset na plataforma. Imagens não têm texto; o campo
// AssetText carrega o nome legível do asset para relatórios.
func (s *GoogleAdsIntegrator) CollectImagesForCampaign(
	campaignName string,
	campaignID string,
	startDate string,
	endDate string,
) ([]*domain.AssetRecord, error) {
	rawRows, err := s.Client.GetImagePerformance(campaignID, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign":    campaignName,
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("collector: failed to get image performance from API")
		return nil, err
	}

	type aggregate struct {
		record    *domain.AssetRecord
		datesSeen []string
	}

	aggregated := make(map[string]*aggregate)

	for _, row := range rawRows {
		agg, ok := aggregated[row.AssetResource]
		if !ok {
			label := row.AssetName
			if label == "" {
				label = row.AssetResource
			}

			agg = &aggregate{
				record: &domain.AssetRecord{
					AssetID:      domain.GenerateAssetID(row.AssetResource, campaignName),
					AssetText:    label,
					AssetType:    domain.NormalizeAssetType(row.FieldType),
					CampaignName: campaignName,
					Status:       domain.AssetStatusActive,
				},
			}
			aggregated[row.AssetResource] = agg
		}

		agg.record.Impressions += row.Impressions
		agg.record.Clicks += row.Clicks
		agg.record.Conversions += row.Conversions
		agg.record.Cost += row.Cost
		if row.Date != "" {
			agg.datesSeen = append(agg.datesSeen, row.Date)
		}
	}

	records := make([]*domain.AssetRecord, 0, len(aggregated))
	for _, agg := range aggregated {
		record := agg.record

		if record.Impressions > 0 {
			record.CTR = round2(float64(record.Clicks) / float64(record.Impressions) * 100)
		}
		if record.Conversions > 0 {
			record.CPA = round2(record.Cost / record.Conversions)
		}

		sort.Strings(agg.datesSeen)
		if len(agg.datesSeen) > 0 {
			record.DateAdded = agg.datesSeen[0]
		}

		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].AssetID < records[j].AssetID
	})

	logrus.WithFields(logrus.Fields{
		"campaign": campaignName,
		"images":   len(records),
	}).Info("collector: aggregated unique image assets for campaign")

	return records, nil
}

// GetCampaignMetrics retorna spend, cliques, impressões e CTR totais do período
func (s *GoogleAdsIntegrator) GetCampaignMetrics(campaignID, startDate, endDate string) (*adsdomain.CampaignMetrics, error) {
	return s.Client.GetCampaignMetrics(campaignID, startDate, endDate)
}

// GetCampaignBudget retorna o orçamento diário configurado na plataforma
func (s *GoogleAdsIntegrator) GetCampaignBudget(campaignID string) (float64, error) {
	return s.Client.GetCampaignBudget(campaignID)
}

// GetCampaignSettings lê as configurações da campanha e converte para o
// formato interno, carimbando o horário do sync
func (s *GoogleAdsIntegrator) GetCampaignSettings(campaignID string) (*domain.PlatformSettings, error) {
	settings, err := s.Client.GetCampaignSettings(campaignID)
	if err != nil {
		return nil, err
	}

	syncedAt := timeutil.Now()

	return &domain.PlatformSettings{
		CampaignStatus:      settings.CampaignStatus,
		BiddingStrategyType: settings.BiddingStrategyType,
		TargetROAS:          settings.TargetROAS,
		DailyBudget:         settings.DailyBudget,
		GeoTargets:          settings.GeoTargets,
		SyncedAt:            &syncedAt,
	}, nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
