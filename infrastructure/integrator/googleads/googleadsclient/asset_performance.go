package googleadsclient

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	adsdomain "github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/googleads/domain"
)

const assetQueryTemplate = `
SELECT
  asset_group_asset.asset,
  asset_group_asset.field_type,
  asset_group_asset.status,
  asset.text_asset.text,
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
  AND asset_group_asset.field_type IN ('HEADLINE', 'DESCRIPTION', 'LONG_HEADLINE')
`

// GetAssetPerformance consulta a performance diária dos assets de texto de uma
// campanha no período informado
func (c *GoogleAdsClient) GetAssetPerformance(campaignID, startDate, endDate string) ([]adsdomain.AssetRow, error) {
	query := fmt.Sprintf(assetQueryTemplate, campaignID, startDate, endDate)

	results, err := c.search(query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("Erro ao consultar performance de assets")
		return nil, err
	}

	rows := make([]adsdomain.AssetRow, 0, len(results))
	for _, result := range results {
		row, ok := parseAssetRow(result)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"rows":        len(rows),
	}).Info("Linhas de performance de assets coletadas")

	return rows, nil
}

// parseAssetRow normaliza uma linha da resposta. Linhas sem texto de asset
// (tipos não textuais) são descartadas.
func parseAssetRow(result adsdomain.SearchRow) (adsdomain.AssetRow, bool) {
	if result.AssetGroupAsset == nil || result.Asset == nil {
		return adsdomain.AssetRow{}, false
	}

	if result.Asset.TextAsset == nil || result.Asset.TextAsset.Text == "" {
		return adsdomain.AssetRow{}, false
	}

	row := adsdomain.AssetRow{
		AssetResource: result.AssetGroupAsset.Asset,
		FieldType:     result.AssetGroupAsset.FieldType,
		AssetStatus:   result.AssetGroupAsset.Status,
		AssetText:     result.Asset.TextAsset.Text,
		AssetName:     result.Asset.Name,
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

func parseInt(value string) int {
	return int(parseInt64(value))
}

func parseInt64(value string) int64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithField("value", value).Warn("Valor numérico inválido na resposta da API")
		return 0
	}

	return parsed
}
