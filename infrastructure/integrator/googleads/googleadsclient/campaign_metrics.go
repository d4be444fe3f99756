package googleadsclient

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	adsdomain "github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/googleads/domain"
)

const campaignCostQueryTemplate = `
SELECT
  campaign.id,
  segments.date,
  metrics.cost_micros,
  metrics.clicks,
  metrics.impressions
FROM campaign
WHERE
  campaign.id = %s
  AND segments.date >= '%s'
  AND segments.date <= '%s'
`

// GetCampaignMetrics totaliza spend, cliques, impressões e CTR da campanha no período
func (c *GoogleAdsClient) GetCampaignMetrics(campaignID, startDate, endDate string) (*adsdomain.CampaignMetrics, error) {
	query := fmt.Sprintf(campaignCostQueryTemplate, campaignID, startDate, endDate)

	results, err := c.search(query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("Erro ao consultar métricas da campanha")
		return nil, err
	}

	var totalCostMicros int64
	var totalClicks, totalImpressions int

	for _, result := range results {
		if result.Metrics == nil {
			continue
		}
		totalCostMicros += parseInt64(result.Metrics.CostMicros)
		totalClicks += parseInt(result.Metrics.Clicks)
		totalImpressions += parseInt(result.Metrics.Impressions)
	}

	totalCost := float64(totalCostMicros) / 1_000_000

	ctr := 0.0
	if totalImpressions > 0 {
		ctr = math.Round(float64(totalClicks)/float64(totalImpressions)*100*100) / 100
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"total_spend": totalCost,
		"clicks":      totalClicks,
		"impressions": totalImpressions,
		"ctr":         ctr,
		"start_date":  startDate,
		"end_date":    endDate,
	}).Info("Métricas da campanha coletadas")

	return &adsdomain.CampaignMetrics{
		TotalSpend:  totalCost,
		Clicks:      totalClicks,
		Impressions: totalImpressions,
		CTR:         ctr,
	}, nil
}
