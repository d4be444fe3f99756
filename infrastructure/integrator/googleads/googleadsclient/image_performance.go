package googleadsclient

import (
	"fmt"

	"github.com/sirupsen/logrus"

	adsdomain "github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/googleads/domain"
)

const imageQueryTemplate = `
SELECT
  asset_group_asset.asset,
  asset_group_asset.field_type,
  asset_group_asset.status,
  asset.name,
  segments.date,
  metrics.impressions,
  metrics.clicks,
  metrics.conversions,
  metrics.conversions_value,
  metrics.cost_micros
FROM asset_group_asset
WHERE
  campaign.id = %s
  AND segments.date >= '%s'
  AND segments.date <= '%s'
  AND asset_group_asset.field_type IN ('MARKETING_IMAGE', 'SQUARE_MARKETING_IMAGE', 'PORTRAIT_MARKETING_IMAGE')
`

// GetImagePerformance consulta a performance diária dos assets de imagem de
// uma campanha. Imagens não têm texto; a chave é o resource name do asset.
func (c *GoogleAdsClient) GetImagePerformance(campaignID, startDate, endDate string) ([]adsdomain.AssetRow, error) {
	query := fmt.Sprintf(imageQueryTemplate, campaignID, startDate, endDate)

	results, err := c.search(query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("Erro ao consultar performance de imagens")
		return nil, err
	}

	rows := make([]adsdomain.AssetRow, 0, len(results))
	for _, result := range results {
		row, ok := parseImageRow(result)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"rows":        len(rows),
	}).Info("Linhas de performance de imagens coletadas")

	return rows, nil
}

func parseImageRow(result adsdomain.SearchRow) (adsdomain.AssetRow, bool) {
	if result.AssetGroupAsset == nil || result.AssetGroupAsset.Asset == "" {
		return adsdomain.AssetRow{}, false
	}

	row := adsdomain.AssetRow{
		AssetResource: result.AssetGroupAsset.Asset,
		FieldType:     result.AssetGroupAsset.FieldType,
		AssetStatus:   result.AssetGroupAsset.Status,
	}

	if result.Asset != nil {
		row.AssetName = result.Asset.Name
	}

	if result.Segments != nil {
		row.Date = result.Segments.Date
	}

	if result.Metrics != nil {
		row.Impressions = parseInt(result.Metrics.Impressions)
		row.Clicks = parseInt(result.Metrics.Clicks)
		row.Conversions = result.Metrics.Conversions
		row.ConversionsValue = result.Metrics.ConversionsValue
		row.Cost = float64(parseInt64(result.Metrics.CostMicros)) / 1_000_000
	}

	return row, true
}
