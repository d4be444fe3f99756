package googleadsclient

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const campaignBudgetQueryTemplate = `
SELECT
  campaign.id,
  campaign_budget.amount_micros
FROM campaign
WHERE campaign.id = %s
`

// GetCampaignBudget retorna o orçamento diário real da campanha em dólares
func (c *GoogleAdsClient) GetCampaignBudget(campaignID string) (float64, error) {
	query := fmt.Sprintf(campaignBudgetQueryTemplate, campaignID)

	results, err := c.search(query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("Erro ao consultar orçamento da campanha")
		return 0, err
	}

	if len(results) == 0 || results[0].CampaignBudget == nil {
		return 0, nil
	}

	dailyBudget := float64(parseInt64(results[0].CampaignBudget.AmountMicros)) / 1_000_000

	logrus.WithFields(logrus.Fields{
		"campaign_id":  campaignID,
		"daily_budget": dailyBudget,
	}).Info("Orçamento diário da campanha")

	return dailyBudget, nil
}
