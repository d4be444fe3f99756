package auditing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
	"github.com/risingfishing/pmax-optimizer-api/pkg/timeutil"
)

// Categoria 4: saúde dos assets (checks 15-18)
func (a *Auditor) checkAssetHealth(campaignName string) []domain.Finding {
	findings := make([]domain.Finding, 0, 4)

	assets, err := a.assetRepo.GetLatestByCampaign(campaignName)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign": campaignName,
			"error":    err,
		}).Warn("Não foi possível carregar os assets")

		return []domain.Finding{{
			Check:    "asset_data_unavailable",
			Category: "asset_health",
			Severity: domain.FindingWarning,
			Message:  fmt.Sprintf("Could not load asset data: %v", err),
			Expected: "Asset data available",
		}}
	}

	activeAssets := make([]*domain.AssetRecord, 0, len(assets))
	for _, asset := range assets {
		if asset.Status == domain.AssetStatusActive {
			activeAssets = append(activeAssets, asset)
		}
	}

	// Check 15: mínimos de assets de texto do PMax
	// (>= 3 headlines, >= 2 descriptions, >= 1 long headline)
	counts := map[domain.AssetType]int{}
	for _, asset := range activeAssets {
		counts[asset.AssetType]++
	}

	headlines := counts[domain.AssetTypeHeadline]
	longHeadlines := counts[domain.AssetTypeLongHeadline]
	descriptions := counts[domain.AssetTypeDescription]

	missing := make([]string, 0)
	if headlines < 3 {
		missing = append(missing, fmt.Sprintf("headlines (%d/3)", headlines))
	}
	if descriptions < 2 {
		missing = append(missing, fmt.Sprintf("descriptions (%d/2)", descriptions))
	}
	if longHeadlines < 1 {
		missing = append(missing, fmt.Sprintf("long headlines (%d/1)", longHeadlines))
	}

	countsValue := map[string]int{
		"headlines":      headlines,
		"descriptions":   descriptions,
		"long_headlines": longHeadlines,
	}
	countsExpected := map[string]string{
		"headlines":      ">= 3",
		"descriptions":   ">= 2",
		"long_headlines": ">= 1",
	}

	if len(missing) > 0 {
		findings = append(findings, domain.Finding{
			Check:    "text_asset_minimums",
			Category: "asset_health",
			Severity: domain.FindingCritical,
			Message:  fmt.Sprintf("Below PMax minimums: %s", strings.Join(missing, ", ")),
			Value:    countsValue,
			Expected: countsExpected,
		})
	} else {
		findings = append(findings, domain.Finding{
			Check:    "text_asset_minimums",
			Category: "asset_health",
			Severity: domain.FindingPass,
			Message: fmt.Sprintf(
				"Text asset minimums met: %d headlines, %d descriptions, %d long headlines",
				headlines, descriptions, longHeadlines,
			),
			Value:    countsValue,
			Expected: countsExpected,
		})
	}

	// Check 16: cobertura de formatos de imagem (landscape, square, portrait)
	images, err := a.imageRepo.ListByCampaign(campaignName)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign": campaignName,
			"error":    err,
		}).Warn("Não foi possível carregar as imagens")
		images = nil
	}

	formatsPresent := make(map[domain.AssetType]bool)
	for _, image := range images {
		for _, link := range image.Links {
			if link.CampaignName == campaignName && link.Linked() && link.FieldType != "" {
				formatsPresent[link.FieldType] = true
			}
		}
	}

	requiredFormats := []domain.AssetType{
		domain.AssetTypeMarketingImage,
		domain.AssetTypePortraitMarketingImage,
		domain.AssetTypeSquareMarketingImage,
	}

	missingFormats := make([]string, 0)
	presentSorted := make([]string, 0, len(formatsPresent))
	for format := range formatsPresent {
		presentSorted = append(presentSorted, string(format))
	}
	sort.Strings(presentSorted)

	for _, format := range requiredFormats {
		if !formatsPresent[format] {
			friendly := strings.ToLower(strings.ReplaceAll(string(format), "_", " "))
			missingFormats = append(missingFormats, friendly)
		}
	}

	if len(missingFormats) > 0 {
		findings = append(findings, domain.Finding{
			Check:    "image_format_coverage",
			Category: "asset_health",
			Severity: domain.FindingCritical,
			Message: fmt.Sprintf(
				"Missing image formats: %s - PMax cannot optimize all placements",
				strings.Join(missingFormats, ", "),
			),
			Value:    presentSorted,
			Expected: []string{"MARKETING_IMAGE", "PORTRAIT_MARKETING_IMAGE", "SQUARE_MARKETING_IMAGE"},
		})
	} else {
		findings = append(findings, domain.Finding{
			Check:    "image_format_coverage",
			Category: "asset_health",
			Severity: domain.FindingPass,
			Message:  "All image formats present (landscape, square, portrait)",
			Value:    presentSorted,
			Expected: []string{"MARKETING_IMAGE", "PORTRAIT_MARKETING_IMAGE", "SQUARE_MARKETING_IMAGE"},
		})
	}

	// Check 17: frescor dos assets (mais antigo ativo >180 dias)
	oldestDays := 0
	var oldestAssetType domain.AssetType
	for _, asset := range activeAssets {
		dateAdded := asset.DateAdded
		if dateAdded == "" && !asset.CreatedAt.IsZero() {
			dateAdded = asset.CreatedAt.Format("2006-01-02")
		}
		if dateAdded == "" {
			continue
		}

		ageDays := timeutil.DaysSince(dateAdded)
		if ageDays > oldestDays {
			oldestDays = ageDays
			oldestAssetType = asset.AssetType
		}
	}

	if oldestDays > 180 {
		typeName := "asset"
		if oldestAssetType != "" {
			typeName = strings.ToLower(string(oldestAssetType))
		}
		findings = append(findings, domain.Finding{
			Check:    "asset_freshness",
			Category: "asset_health",
			Severity: domain.FindingWarning,
			Message:  fmt.Sprintf("Oldest active %s is %d days old - consider refreshing", typeName, oldestDays),
			Value:    oldestDays,
			Expected: "<= 180 days",
		})
	} else {
		findings = append(findings, domain.Finding{
			Check:    "asset_freshness",
			Category: "asset_health",
			Severity: domain.FindingPass,
			Message:  fmt.Sprintf("All assets under 180 days old (oldest: %d days)", oldestDays),
			Value:    oldestDays,
			Expected: "<= 180 days",
		})
	}

	// Check 18: taxa de kills não excessiva (>40% nos últimos 60 dias)
	cutoff := timeutil.LookbackDate(60)
	recentKills, err := a.graveyardRepo.ListKilledSince(campaignName, cutoff)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign": campaignName,
			"error":    err,
		}).Warn("Não foi possível carregar o graveyard")
		recentKills = nil
	}

	totalPool := len(activeAssets) + len(recentKills)

	if totalPool > 0 {
		killRate := float64(len(recentKills)) / float64(totalPool) * 100
		if killRate > 40 {
			findings = append(findings, domain.Finding{
				Check:    "kill_rate",
				Category: "asset_health",
				Severity: domain.FindingWarning,
				Message: fmt.Sprintf(
					"Kill rate %.0f%% in last 60 days (%d killed of %d total) - systemic issue possible",
					killRate, len(recentKills), totalPool,
				),
				Value:    killRate,
				Expected: "<= 40%",
			})
		} else {
			findings = append(findings, domain.Finding{
				Check:    "kill_rate",
				Category: "asset_health",
				Severity: domain.FindingPass,
				Message: fmt.Sprintf(
					"Kill rate %.0f%% in last 60 days (%d killed of %d total)",
					killRate, len(recentKills), totalPool,
				),
				Value:    killRate,
				Expected: "<= 40%",
			})
		}
	} else {
		findings = append(findings, domain.Finding{
			Check:    "kill_rate",
			Category: "asset_health",
			Severity: domain.FindingPass,
			Message:  "No asset turnover data available",
			Value:    0,
			Expected: "<= 40%",
		})
	}

	return findings
}
