package slack

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/slack/slackclient"
	"github.com/risingfishing/pmax-optimizer-api/internal/config"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
	"github.com/risingfishing/pmax-optimizer-api/internal/season"
	"github.com/risingfishing/pmax-optimizer-api/pkg/timeutil"
)

var divider = strings.Repeat("━", 35)

// SlackIntegrator formata e entrega a revisão semanal, o relatório de
// auditoria e os alertas de emergência
type SlackIntegrator struct {
	cfg    *config.Config
	Client slackclient.Client
}

func New(cfg *config.Config, client slackclient.Client) *SlackIntegrator {
	return &SlackIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// SendReview entrega a revisão semanal completa como uma única mensagem
func (s *SlackIntegrator) SendReview(
	month int,
	flaggedAssets []*domain.AssetRecord,
	replacements map[string]*domain.Replacement,
	budgets map[string]*domain.BudgetSnapshot,
	alerts []domain.EmergencyAlert,
	assetChangesEnabled bool,
	previewMode bool,
) error {
	message := FormatReviewMessage(
		month, flaggedAssets, replacements, budgets, alerts,
		assetChangesEnabled, previewMode,
	)

	if err := s.Client.PostMessage(message); err != nil {
		logrus.WithError(err).Error("slack: failed to send weekly review")
		return err
	}

	logrus.Info("slack: weekly review sent successfully")
	return nil
}

// SendAuditReport entrega o relatório de saúde das campanhas
func (s *SlackIntegrator) SendAuditReport(report *domain.AuditReport) error {
	if err := s.Client.PostMessage(FormatAuditReport(report)); err != nil {
		logrus.WithError(err).Error("slack: failed to send audit report")
		return err
	}

	logrus.Info("slack: audit report sent")
	return nil
}

// SendEmergencyAlerts entrega cada alerta como uma mensagem separada
func (s *SlackIntegrator) SendEmergencyAlerts(alerts []domain.EmergencyAlert) error {
	for _, alert := range alerts {
		if err := s.Client.PostMessage(formatEmergencyAlert(alert)); err != nil {
			logrus.WithError(err).Error("slack: failed to send emergency alert")
			return err
		}
	}

	return nil
}

// SendVerification entrega o relatório de verificação de upload
func (s *SlackIntegrator) SendVerification(report string) error {
	if err := s.Client.PostMessage(report); err != nil {
		logrus.WithError(err).Error("slack: failed to send verification report")
		return err
	}

	logrus.Info("slack: verification report sent")
	return nil
}

// SendError notifica uma falha na revisão semanal
func (s *SlackIntegrator) SendError(errorMessage, stackTrace string) error {
	text := fmt.Sprintf(
		"*ERROR - Weekly Review Failed*\n\nTimestamp: %s\nError: %s\n",
		timeutil.Today(), errorMessage,
	)

	if stackTrace != "" {
		if len(stackTrace) > 2000 {
			stackTrace = stackTrace[:2000]
		}
		text += fmt.Sprintf("```\n%s\n```\n", stackTrace)
	}

	text += "\nAction required: Manual investigation"

	return s.Client.PostMessage(text)
}

// FormatReviewMessage monta a mensagem completa da revisão semanal
func FormatReviewMessage(
	month int,
	flaggedAssets []*domain.AssetRecord,
	replacements map[string]*domain.Replacement,
	budgets map[string]*domain.BudgetSnapshot,
	alerts []domain.EmergencyAlert,
	assetChangesEnabled bool,
	previewMode bool,
) string {
	today := timeutil.FormatHuman(timeutil.Today())
	seasonName, _ := season.SeasonFor(month)
	demand := season.DemandPctFor(month)

	var title string
	switch {
	case previewMode:
		title = fmt.Sprintf("🔍 *PREVIEW - Weekly Asset Review - %s*", today)
	case assetChangesEnabled:
		title = fmt.Sprintf("📊 *Weekly Asset Review - %s*", today)
	default:
		title = fmt.Sprintf("📊 *Weekly Monitoring Report - %s*", today)
	}

	lines := []string{
		title,
		"",
		fmt.Sprintf("Season: %s (%.0f%% annual demand)", seasonTitle(string(seasonName)), demand),
	}

	if previewMode && !assetChangesEnabled {
		lines = append(lines, "Mode: PREVIEW (off-season - showing what *would* be flagged)")
	} else if !assetChangesEnabled {
		lines = append(lines, "Mode: Monitor Only (no asset changes in off-season)")
	}

	// Seções de orçamento por campanha, em ordem estável
	budgetNames := make([]string, 0, len(budgets))
	for name := range budgets {
		budgetNames = append(budgetNames, name)
	}
	sort.Strings(budgetNames)
	for _, name := range budgetNames {
		lines = append(lines, formatBudgetSection(budgets[name], name)...)
	}

	if len(alerts) > 0 {
		lines = append(lines, "", divider, "🚨 *EMERGENCY ALERTS*", divider)
		for _, alert := range alerts {
			lines = append(lines, fmt.Sprintf("*%s*: %s", alert.Title, alert.Message))
		}
	}

	textFlagged := make([]*domain.AssetRecord, 0, len(flaggedAssets))
	imageFlagged := make([]*domain.AssetRecord, 0)
	for _, asset := range flaggedAssets {
		if asset.AssetType.IsImage() {
			imageFlagged = append(imageFlagged, asset)
		} else {
			textFlagged = append(textFlagged, asset)
		}
	}

	showFlags := assetChangesEnabled || previewMode

	if !showFlags {
		lines = append(lines,
			"", divider, "📋 *ASSET STATUS*", divider, "",
			"Asset changes paused for off-season.",
			"Budget and ROAS monitoring continues.",
			"Asset optimization resumes in shoulder season (March).",
			"",
			"Image monitoring active. No flags in off-season.",
		)
		return strings.Join(lines, "\n")
	}

	previewTag := ""
	if previewMode {
		previewTag = "PREVIEW "
	}

	if len(textFlagged) == 0 {
		lines = append(lines,
			"", divider,
			fmt.Sprintf("🎯 *%sASSET PERFORMANCE*", previewTag),
			divider, "",
			"No assets flagged for replacement this week.",
		)
	} else {
		campaignNames, byCampaign := groupByCampaign(textFlagged)

		for _, campaignName := range campaignNames {
			campaignAssets := byCampaign[campaignName]

			lines = append(lines,
				"", divider,
				fmt.Sprintf("🎯 *%sASSET PERFORMANCE - %s*", previewTag, campaignName),
				divider,
			)
			if previewMode {
				lines = append(lines, "_No action taken - preview only_")
			}
			lines = append(lines, "")

			var totalCost float64
			for _, asset := range campaignAssets {
				totalCost += asset.Cost
			}

			if previewMode {
				lines = append(lines, fmt.Sprintf("*%d assets would be flagged for replacement*", len(campaignAssets)))
			} else {
				lines = append(lines, fmt.Sprintf("*%d assets flagged for replacement*", len(campaignAssets)))
			}
			lines = append(lines, fmt.Sprintf("Total cost on flagged assets: $%.2f", totalCost), "")

			for i, asset := range campaignAssets {
				lines = append(lines,
					fmt.Sprintf("❌ *ASSET %d:* %s", i+1, asset.AssetText),
					fmt.Sprintf("Type: %s", asset.AssetType),
					fmt.Sprintf("Stats: %d impr | %v%% CTR | $%.2f spent", asset.Impressions, asset.CTR, asset.Cost),
					fmt.Sprintf("Kill reason: %s", asset.KillReason),
				)

				replacement := replacements[asset.AssetID]
				switch {
				case previewMode:
					lines = append(lines, "ℹ️ Preview - no replacement generated")
				case replacement != nil:
					lines = append(lines,
						fmt.Sprintf("✅ *REPLACEMENT:* %s", replacement.Text),
						fmt.Sprintf("Strategy: %s", replacement.Strategy),
					)
				default:
					lines = append(lines, "⚠️ No replacement generated (Claude API issue)")
				}

				lines = append(lines, "")
			}
		}

		if !previewMode {
			lines = append(lines,
				divider, "",
				"📎 CSV file(s) available via the replacements export endpoint.",
				"Import into Google Ads Editor to apply changes.",
				"Review within 3 days for tracking.",
			)
		}
	}

	if len(imageFlagged) > 0 {
		campaignNames, byCampaign := groupByCampaign(imageFlagged)

		for _, campaignName := range campaignNames {
			campaignImages := byCampaign[campaignName]

			lines = append(lines,
				"", divider,
				fmt.Sprintf("🖼️ *%sIMAGE PERFORMANCE - %s*", previewTag, campaignName),
				divider,
			)
			if previewMode {
				lines = append(lines, "_No action taken - preview only_")
			}
			lines = append(lines, "", fmt.Sprintf("%d images below CTR threshold", len(campaignImages)), "")

			for i, asset := range campaignImages {
				lines = append(lines,
					fmt.Sprintf("❌ *IMAGE %d:* %s", i+1, asset.AssetText),
					fmt.Sprintf("   Type: %s", asset.AssetType),
					fmt.Sprintf("   Stats: %d impr | %v%% CTR | $%.2f spent", asset.Impressions, asset.CTR, asset.Cost),
					"   Action: Replace in Google Ads > Assets",
					"",
				)
			}
		}
	}

	return strings.Join(lines, "\n")
}

// FormatAuditReport monta o relatório de auditoria para o Slack
func FormatAuditReport(report *domain.AuditReport) string {
	lines := []string{
		"📋 *Campaign Health Audit*",
		"",
		strings.Repeat("━", 27),
	}

	names := make([]string, 0, len(report.Campaigns))
	for name := range report.Campaigns {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		result := report.Campaigns[name]

		var passed, warnings, criticals, infos []domain.Finding
		for _, finding := range result.Findings {
			switch finding.Severity {
			case domain.FindingPass:
				passed = append(passed, finding)
			case domain.FindingWarning:
				warnings = append(warnings, finding)
			case domain.FindingCritical:
				criticals = append(criticals, finding)
			case domain.FindingInfo:
				infos = append(infos, finding)
			}
		}

		lines = append(lines,
			"",
			fmt.Sprintf("🏥 *%s - Score: %d/100 (%s)*", name, result.HealthScore, result.Grade),
			"",
			fmt.Sprintf("✅ %d checks passed", len(passed)),
		)

		if len(warnings) > 0 {
			lines = append(lines, fmt.Sprintf("⚠️ %d warning(s)", len(warnings)))
			for _, warning := range warnings {
				lines = append(lines, fmt.Sprintf("  • %s", warning.Message))
			}
		} else {
			lines = append(lines, "⚠️ 0 warnings")
		}

		if len(criticals) > 0 {
			lines = append(lines, fmt.Sprintf("🚨 %d critical issue(s)", len(criticals)))
			for _, critical := range criticals {
				lines = append(lines, fmt.Sprintf("  • %s", critical.Message))
			}
		} else {
			lines = append(lines, "🚨 0 critical issues")
		}

		if len(infos) > 0 {
			lines = append(lines, fmt.Sprintf("📊 %d info note(s)", len(infos)))
		}
	}

	lines = append(lines, "", strings.Repeat("━", 27))

	if report.Summary != "" {
		lines = append(lines, "", "*Executive Summary:*", report.Summary)
	}

	if len(report.Recommendations) > 0 {
		lines = append(lines, "", "*Priority Actions:*")
		for i, recommendation := range report.Recommendations {
			lines = append(lines, fmt.Sprintf("  %d. %s", i+1, recommendation))
		}
	}

	return strings.Join(lines, "\n")
}

func formatEmergencyAlert(alert domain.EmergencyAlert) string {
	emoji := "❗"
	switch alert.Severity {
	case domain.AlertSeverityCritical:
		emoji = "🚨"
	case domain.AlertSeverityHigh:
		emoji = "⚠️"
	case domain.AlertSeverityInfo:
		emoji = "📊"
	}

	text := fmt.Sprintf("%s *%s*\n\n%s\n\n*Recommended actions:*\n", emoji, alert.Title, alert.Message)
	for _, action := range alert.Actions {
		text += fmt.Sprintf("  - %s\n", action)
	}

	if alert.AutoAction != "" {
		text += fmt.Sprintf("\n*Auto-action:* %s\n", alert.AutoAction)
	}

	return text
}

func formatBudgetSection(snapshot *domain.BudgetSnapshot, campaignName string) []string {
	header := "💰 *BUDGET PERFORMANCE*"
	if campaignName != "" {
		header = fmt.Sprintf("💰 *BUDGET - %s*", campaignName)
	}

	lines := []string{
		"",
		divider,
		header,
		divider,
		"",
		fmt.Sprintf("Period: %s to %s (%d days)", snapshot.WeekStarting, snapshot.WeekEnding, snapshot.LookbackDays),
		"",
		fmt.Sprintf("Current budget: $%.0f/day", snapshot.DailyBudgetTarget),
		fmt.Sprintf("Actual spend: $%.2f/day (%.1f%% utilization)", snapshot.ActualDailySpendAvg, snapshot.BudgetUtilizationPercent),
		fmt.Sprintf("Total spend: $%.2f", snapshot.TotalSpend),
		fmt.Sprintf("Campaign CTR: %.2f%% (%d clicks / %d impr)", snapshot.CampaignCTR, snapshot.CampaignClicks, snapshot.CampaignImpressions),
		fmt.Sprintf("Revenue (Shopify): $%.2f", snapshot.TotalRevenue),
		fmt.Sprintf("Shopify orders (Google-attributed): %d", snapshot.Orders),
		fmt.Sprintf("ROAS (Shopify): %.0f%%", snapshot.ROASPercent),
		fmt.Sprintf("  7-day ROAS: %.0f%%  |  14-day ROAS: %.0f%%", snapshot.ROAS7dPercent, snapshot.ROAS14dPercent),
		"",
		fmt.Sprintf("Target ROAS: %.0f%%", snapshot.TargetROASPercent),
		"",
		fmt.Sprintf("📈 *RECOMMENDATION: %s*", strings.ToUpper(string(snapshot.Recommendation))),
		snapshot.RecommendationReason,
	}

	if snapshot.RecommendedDailyBudget > 0 && snapshot.Recommendation != domain.BudgetActionHold {
		lines = append(lines, fmt.Sprintf("Recommended budget: $%.0f/day", snapshot.RecommendedDailyBudget))
	}

	return lines
}

// groupByCampaign preserva a ordem de chegada das campanhas
func groupByCampaign(assets []*domain.AssetRecord) ([]string, map[string][]*domain.AssetRecord) {
	names := make([]string, 0)
	grouped := make(map[string][]*domain.AssetRecord)

	for _, asset := range assets {
		name := asset.CampaignName
		if name == "" {
			name = "Unknown"
		}
		if _, ok := grouped[name]; !ok {
			names = append(names, name)
		}
		grouped[name] = append(grouped[name], asset)
	}

	return names, grouped
}

func seasonTitle(name string) string {
	parts := strings.Split(name, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
