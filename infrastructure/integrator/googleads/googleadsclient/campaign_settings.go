package googleadsclient

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	adsdomain "github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/googleads/domain"
)

const campaignSettingsQueryTemplate = `
SELECT
  campaign.id,
  campaign.status,
  campaign.bidding_strategy_type,
  campaign.maximize_conversion_value.target_roas,
  campaign_budget.amount_micros
FROM campaign
WHERE campaign.id = %s
`

const campaignGeoQueryTemplate = `
SELECT
  campaign_criterion.location.geo_target_constant,
  campaign_criterion.negative
FROM campaign_criterion
WHERE
  campaign.id = %s
  AND campaign_criterion.type = 'LOCATION'
`

// GetCampaignSettings lê status, estratégia de lance, target ROAS, orçamento e
// segmentação geográfica da campanha. Usado pelo sync diário de configurações.
func (c *GoogleAdsClient) GetCampaignSettings(campaignID string) (*adsdomain.CampaignSettings, error) {
	query := fmt.Sprintf(campaignSettingsQueryTemplate, campaignID)

	results, err := c.search(query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("Erro ao consultar configurações da campanha")
		return nil, err
	}

	if len(results) == 0 || results[0].Campaign == nil {
		return nil, fmt.Errorf("campanha %s não encontrada no Google Ads", campaignID)
	}

	campaign := results[0].Campaign

	settings := &adsdomain.CampaignSettings{
		CampaignStatus:      campaign.Status,
		BiddingStrategyType: campaign.BiddingStrategyType,
	}

	if campaign.MaximizeConversionValue != nil && campaign.MaximizeConversionValue.TargetRoas > 0 {
		targetROAS := campaign.MaximizeConversionValue.TargetRoas
		settings.TargetROAS = &targetROAS
	}

	if results[0].CampaignBudget != nil {
		settings.DailyBudget = float64(parseInt64(results[0].CampaignBudget.AmountMicros)) / 1_000_000
	}

	geoTargets, err := c.getGeoTargets(campaignID)
	if err != nil {
		// Segmentação geográfica é complementar; o sync segue sem ela
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Warn("Erro ao consultar segmentação geográfica da campanha")
	} else {
		settings.GeoTargets = geoTargets
	}

	return settings, nil
}

func (c *GoogleAdsClient) getGeoTargets(campaignID string) ([]string, error) {
	query := fmt.Sprintf(campaignGeoQueryTemplate, campaignID)

	results, err := c.search(query)
	if err != nil {
		return nil, err
	}

	geoTargets := make([]string, 0, len(results))
	for _, result := range results {
		criterion := result.CampaignCriteria
		if criterion == nil || criterion.Location == nil || criterion.Negative {
			continue
		}

		// O recurso vem como geoTargetConstants/2840; guardamos só o ID
		resource := criterion.Location.GeoTargetConstant
		if idx := strings.LastIndex(resource, "/"); idx >= 0 {
			resource = resource[idx+1:]
		}
		if resource != "" {
			geoTargets = append(geoTargets, resource)
		}
	}

	return geoTargets, nil
}
