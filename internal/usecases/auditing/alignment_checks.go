package auditing

import (
	"fmt"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

// Categoria 2: alinhamento com o Google Ads (checks 5-10)
func (a *Auditor) checkPlatformAlignment(config *domain.CampaignConfig) []domain.Finding {
	findings := make([]domain.Finding, 0, 6)
	settings := config.PlatformSettings

	if settings.IsEmpty() {
		findings = append(findings, domain.Finding{
			Check:    "google_ads_settings_missing",
			Category: "google_ads_alignment",
			Severity: domain.FindingWarning,
			Message:  "No Google Ads settings available - run sync_config first",
			Expected: "Synced Google Ads settings",
		})
		return findings
	}

	// Check 5: campanha ativa
	if settings.CampaignStatus == "ENABLED" {
		findings = append(findings, domain.Finding{
			Check:    "campaign_status",
			Category: "google_ads_alignment",
			Severity: domain.FindingPass,
			Message:  "Campaign status is ENABLED",
			Value:    settings.CampaignStatus,
			Expected: "ENABLED",
		})
	} else {
		findings = append(findings, domain.Finding{
			Check:    "campaign_status",
			Category: "google_ads_alignment",
			Severity: domain.FindingCritical,
			Message:  fmt.Sprintf("Campaign status is %s - not serving ads", settings.CampaignStatus),
			Value:    settings.CampaignStatus,
			Expected: "ENABLED",
		})
	}

	// Check 6: estratégia de lance
	if settings.BiddingStrategyType == "MAXIMIZE_CONVERSION_VALUE" {
		findings = append(findings, domain.Finding{
			Check:    "bidding_strategy",
			Category: "google_ads_alignment",
			Severity: domain.FindingPass,
			Message:  "Bidding strategy is MAXIMIZE_CONVERSION_VALUE",
			Value:    settings.BiddingStrategyType,
			Expected: "MAXIMIZE_CONVERSION_VALUE",
		})
	} else {
		findings = append(findings, domain.Finding{
			Check:    "bidding_strategy",
			Category: "google_ads_alignment",
			Severity: domain.FindingWarning,
			Message: fmt.Sprintf(
				"Bidding strategy is %s - expected MAXIMIZE_CONVERSION_VALUE for PMax with ROAS targets",
				settings.BiddingStrategyType,
			),
			Value:    settings.BiddingStrategyType,
			Expected: "MAXIMIZE_CONVERSION_VALUE",
		})
	}

	// Check 7: target ROAS definido e dentro da faixa razoável (100%-500%)
	if settings.TargetROAS == nil {
		findings = append(findings, domain.Finding{
			Check:    "target_roas",
			Category: "google_ads_alignment",
			Severity: domain.FindingWarning,
			Message:  "Target ROAS is not set",
			Expected: "100% - 500%",
		})
	} else {
		// A API do Google Ads retorna target_roas como razão (2.0 = 200%)
		raw := *settings.TargetROAS
		targetROASPct := raw
		if raw < 10 {
			targetROASPct = raw * 100
		}

		if targetROASPct >= 100 && targetROASPct <= 500 {
			findings = append(findings, domain.Finding{
				Check:    "target_roas",
				Category: "google_ads_alignment",
				Severity: domain.FindingPass,
				Message:  fmt.Sprintf("Target ROAS is %.0f%%", targetROASPct),
				Value:    targetROASPct,
				Expected: "100% - 500%",
			})
		} else {
			findings = append(findings, domain.Finding{
				Check:    "target_roas",
				Category: "google_ads_alignment",
				Severity: domain.FindingWarning,
				Message:  fmt.Sprintf("Target ROAS %.0f%% is outside reasonable range (100%%-500%%)", targetROASPct),
				Value:    targetROASPct,
				Expected: "100% - 500%",
			})
		}
	}

	// Check 8: orçamento atinge o mínimo sazonal
	dailyBudget := settings.DailyBudget
	recommended := a.seasonalBudget.RecommendedDaily

	if dailyBudget >= recommended {
		findings = append(findings, domain.Finding{
			Check:    "budget_minimum",
			Category: "google_ads_alignment",
			Severity: domain.FindingPass,
			Message:  fmt.Sprintf("Daily budget $%.0f meets %s minimum $%.0f", dailyBudget, a.Season, recommended),
			Value:    dailyBudget,
			Expected: fmt.Sprintf(">= $%.0f", recommended),
		})
	} else {
		findings = append(findings, domain.Finding{
			Check:    "budget_minimum",
			Category: "google_ads_alignment",
			Severity: domain.FindingWarning,
			Message:  fmt.Sprintf("Daily budget $%.0f is below %s recommended $%.0f", dailyBudget, a.Season, recommended),
			Value:    dailyBudget,
			Expected: fmt.Sprintf(">= $%.0f", recommended),
		})
	}

	// Check 9: orçamento não excede o máximo sazonal
	maxDaily := a.seasonalBudget.MaxDaily

	if dailyBudget <= maxDaily {
		findings = append(findings, domain.Finding{
			Check:    "budget_maximum",
			Category: "google_ads_alignment",
			Severity: domain.FindingPass,
			Message:  fmt.Sprintf("Daily budget $%.0f within %s max $%.0f", dailyBudget, a.Season, maxDaily),
			Value:    dailyBudget,
			Expected: fmt.Sprintf("<= $%.0f", maxDaily),
		})
	} else {
		findings = append(findings, domain.Finding{
			Check:    "budget_maximum",
			Category: "google_ads_alignment",
			Severity: domain.FindingInfo,
			Message:  fmt.Sprintf("Daily budget $%.0f exceeds %s max $%.0f", dailyBudget, a.Season, maxDaily),
			Value:    dailyBudget,
			Expected: fmt.Sprintf("<= $%.0f", maxDaily),
		})
	}

	// Check 10: segmentação geográfica configurada
	if len(settings.GeoTargets) > 0 {
		findings = append(findings, domain.Finding{
			Check:    "geo_targeting",
			Category: "google_ads_alignment",
			Severity: domain.FindingPass,
			Message:  fmt.Sprintf("Geo targeting configured (%d target(s))", len(settings.GeoTargets)),
			Value:    len(settings.GeoTargets),
			Expected: ">= 1 target",
		})
	} else {
		findings = append(findings, domain.Finding{
			Check:    "geo_targeting",
			Category: "google_ads_alignment",
			Severity: domain.FindingWarning,
			Message:  "No geo targeting configured - campaign may serve globally",
			Value:    0,
			Expected: ">= 1 target",
		})
	}

	return findings
}
