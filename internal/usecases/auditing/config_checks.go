package auditing

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

var campaignIDPattern = regexp.MustCompile(`^\d+$`)

// Campos obrigatórios da estratégia manual
var requiredManualFields = []string{"description", "goal", "target_audience", "key_products", "tone_notes"}

// Categoria 1: completude de configuração (checks 1-4)
func (a *Auditor) checkConfigCompleteness(config *domain.CampaignConfig) []domain.Finding {
	findings := make([]domain.Finding, 0, 4)
	manual := config.Manual

	// Check 1: campos da estratégia manual preenchidos
	present := make(map[string]bool, len(requiredManualFields))
	present["description"] = manual.Description != ""
	present["goal"] = manual.Goal != ""
	present["target_audience"] = manual.TargetAudience != ""
	present["key_products"] = len(manual.KeyProducts) > 0
	present["tone_notes"] = manual.ToneNotes != ""

	missing := make([]string, 0)
	populated := make([]string, 0)
	for _, field := range requiredManualFields {
		if present[field] {
			populated = append(populated, field)
		} else {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		findings = append(findings, domain.Finding{
			Check:    "manual_strategy_fields",
			Category: "config_completeness",
			Severity: domain.FindingWarning,
			Message:  fmt.Sprintf("Missing manual strategy fields: %s", strings.Join(missing, ", ")),
			Value:    populated,
			Expected: requiredManualFields,
		})
	} else {
		findings = append(findings, domain.Finding{
			Check:    "manual_strategy_fields",
			Category: "config_completeness",
			Severity: domain.FindingPass,
			Message:  "All manual strategy fields populated",
			Value:    requiredManualFields,
			Expected: requiredManualFields,
		})
	}

	// Check 2: configurações do Google Ads sincronizadas recentemente
	settings := config.PlatformSettings
	if settings.SyncedAt == nil {
		findings = append(findings, domain.Finding{
			Check:    "google_ads_sync",
			Category: "config_completeness",
			Severity: domain.FindingWarning,
			Message:  "Google Ads settings have never been synced",
			Expected: "Synced within 48 hours",
		})
	} else {
		hoursAgo := time.Since(*settings.SyncedAt).Hours()
		if hoursAgo > 48 {
			findings = append(findings, domain.Finding{
				Check:    "google_ads_sync",
				Category: "config_completeness",
				Severity: domain.FindingWarning,
				Message:  fmt.Sprintf("Google Ads settings last synced %.0f hours ago", hoursAgo),
				Value:    fmt.Sprintf("%.0f hours", hoursAgo),
				Expected: "Within 48 hours",
			})
		} else {
			findings = append(findings, domain.Finding{
				Check:    "google_ads_sync",
				Category: "config_completeness",
				Severity: domain.FindingPass,
				Message:  fmt.Sprintf("Google Ads settings synced %.0f hours ago", hoursAgo),
				Value:    fmt.Sprintf("%.0f hours", hoursAgo),
				Expected: "Within 48 hours",
			})
		}
	}

	// Check 3: perfil de imagens definido e somando ~1.0
	if len(config.ImageProfile) == 0 {
		findings = append(findings, domain.Finding{
			Check:    "image_profile",
			Category: "config_completeness",
			Severity: domain.FindingWarning,
			Message:  "No image profile defined",
			Expected: "Image profile with values summing to ~1.0",
		})
	} else {
		profileSum := 0.0
		for _, v := range config.ImageProfile {
			profileSum += v
		}

		if profileSum >= 0.95 && profileSum <= 1.05 {
			findings = append(findings, domain.Finding{
				Check:    "image_profile",
				Category: "config_completeness",
				Severity: domain.FindingPass,
				Message:  fmt.Sprintf("Image profile defined, sums to %.2f", profileSum),
				Value:    profileSum,
				Expected: "0.95 - 1.05",
			})
		} else {
			findings = append(findings, domain.Finding{
				Check:    "image_profile",
				Category: "config_completeness",
				Severity: domain.FindingWarning,
				Message:  fmt.Sprintf("Image profile sums to %.2f (should be ~1.0)", profileSum),
				Value:    profileSum,
				Expected: "0.95 - 1.05",
			})
		}
	}

	// Check 4: campaign ID presente e em formato válido
	if !campaignIDPattern.MatchString(config.CampaignID) {
		findings = append(findings, domain.Finding{
			Check:    "campaign_id",
			Category: "config_completeness",
			Severity: domain.FindingCritical,
			Message:  fmt.Sprintf("Campaign ID missing or invalid: '%s'", config.CampaignID),
			Value:    config.CampaignID,
			Expected: "Non-empty string of digits",
		})
	} else {
		findings = append(findings, domain.Finding{
			Check:    "campaign_id",
			Category: "config_completeness",
			Severity: domain.FindingPass,
			Message:  fmt.Sprintf("Campaign ID valid: %s", config.CampaignID),
			Value:    config.CampaignID,
			Expected: "Non-empty string of digits",
		})
	}

	return findings
}
