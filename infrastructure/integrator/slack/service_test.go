package slack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/slack/slackclient/mocks"
	"github.com/risingfishing/pmax-optimizer-api/internal/config"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

func reviewBudget() map[string]*domain.BudgetSnapshot {
	return map[string]*domain.BudgetSnapshot{
		"Core Brand": {
			CampaignName:             "Core Brand",
			WeekStarting:             "2025-06-01",
			WeekEnding:               "2025-06-30",
			LookbackDays:             30,
			DailyBudgetTarget:        150,
			ActualDailySpendAvg:      142.50,
			TotalSpend:               4275,
			TotalRevenue:             10500,
			Orders:                   42,
			CampaignCTR:              3.85,
			CampaignClicks:           1540,
			CampaignImpressions:      40000,
			ROASPercent:              245.6,
			ROAS7dPercent:            250,
			ROAS14dPercent:           240,
			TargetROASPercent:        200,
			BudgetUtilizationPercent: 95.0,
			Recommendation:           domain.BudgetActionIncrease,
			RecommendedDailyBudget:   180,
			RecommendationReason:     "ROAS 246% exceeds target 200% by 23%. Recommend +20% budget increase.",
		},
	}
}

func TestFormatReviewMessage_ComFlagsEReplacement(t *testing.T) {
	flagged := []*domain.AssetRecord{
		{
			AssetID:      "abc123",
			AssetText:    "Innovative Fishing Nets",
			AssetType:    domain.AssetTypeHeadline,
			CampaignName: "Core Brand",
			Impressions:  800,
			CTR:          0.75,
			Cost:         12.40,
			KillReason:   "CTR 0.75% below peak_season threshold 4.0% for HEADLINE (800 impressions)",
		},
	}
	replacements := map[string]*domain.Replacement{
		"abc123": {AssetID: "abc123", Text: "USA Made Fly Fishing Nets", Strategy: "voice"},
	}

	message := FormatReviewMessage(6, flagged, replacements, reviewBudget(), nil, true, false)

	assert.Contains(t, message, "*Weekly Asset Review -")
	assert.Contains(t, message, "Season: Peak Season (13% annual demand)")
	assert.Contains(t, message, "💰 *BUDGET - Core Brand*")
	assert.Contains(t, message, "Current budget: $150/day")
	assert.Contains(t, message, "Actual spend: $142.50/day (95.0% utilization)")
	assert.Contains(t, message, "ROAS (Shopify): 246%")
	assert.Contains(t, message, "📈 *RECOMMENDATION: INCREASE*")
	assert.Contains(t, message, "Recommended budget: $180/day")
	assert.Contains(t, message, "🎯 *ASSET PERFORMANCE - Core Brand*")
	assert.Contains(t, message, "*1 assets flagged for replacement*")
	assert.Contains(t, message, "❌ *ASSET 1:* Innovative Fishing Nets")
	assert.Contains(t, message, "✅ *REPLACEMENT:* USA Made Fly Fishing Nets")
	assert.Contains(t, message, "Import into Google Ads Editor to apply changes.")
}

func TestFormatReviewMessage_OffSeasonMonitorOnly(t *testing.T) {
	flagged := []*domain.AssetRecord{
		{AssetText: "Some asset", AssetType: domain.AssetTypeHeadline, CampaignName: "Core Brand"},
	}

	message := FormatReviewMessage(1, flagged, nil, nil, nil, false, false)

	assert.Contains(t, message, "*Weekly Monitoring Report -")
	assert.Contains(t, message, "Mode: Monitor Only (no asset changes in off-season)")
	assert.Contains(t, message, "Asset changes paused for off-season.")
	assert.Contains(t, message, "Asset optimization resumes in shoulder season (March).")
	// Em monitor-only os flags não aparecem
	assert.NotContains(t, message, "Some asset")
}

func TestFormatReviewMessage_PreviewMode(t *testing.T) {
	flagged := []*domain.AssetRecord{
		{AssetText: "Some asset", AssetType: domain.AssetTypeHeadline, CampaignName: "Core Brand"},
	}

	message := FormatReviewMessage(12, flagged, nil, nil, nil, false, true)

	assert.Contains(t, message, "🔍 *PREVIEW - Weekly Asset Review -")
	assert.Contains(t, message, "Mode: PREVIEW (off-season - showing what *would* be flagged)")
	assert.Contains(t, message, "🎯 *PREVIEW ASSET PERFORMANCE - Core Brand*")
	assert.Contains(t, message, "*1 assets would be flagged for replacement*")
	assert.Contains(t, message, "ℹ️ Preview - no replacement generated")
	assert.NotContains(t, message, "Import into Google Ads Editor")
}

func TestFormatReviewMessage_ImagensSeparadasDosTextos(t *testing.T) {
	flagged := []*domain.AssetRecord{
		{AssetText: "Net photo on river", AssetType: domain.AssetTypeMarketingImage, CampaignName: "Core Brand", Impressions: 1200, CTR: 0.4, Cost: 8.0},
	}

	message := FormatReviewMessage(6, flagged, nil, nil, nil, true, false)

	assert.Contains(t, message, "No assets flagged for replacement this week.")
	assert.Contains(t, message, "🖼️ *IMAGE PERFORMANCE - Core Brand*")
	assert.Contains(t, message, "❌ *IMAGE 1:* Net photo on river")
	assert.Contains(t, message, "Action: Replace in Google Ads > Assets")
}

func TestFormatReviewMessage_AlertasDeEmergencia(t *testing.T) {
	alerts := []domain.EmergencyAlert{
		{Severity: domain.AlertSeverityHigh, Title: "CTR Dropped 50%+ Week-Over-Week", Message: "CTR collapsed"},
	}

	message := FormatReviewMessage(6, nil, nil, nil, alerts, true, false)

	assert.Contains(t, message, "🚨 *EMERGENCY ALERTS*")
	assert.Contains(t, message, "*CTR Dropped 50%+ Week-Over-Week*: CTR collapsed")
}

func TestFormatAuditReport(t *testing.T) {
	report := &domain.AuditReport{
		Campaigns: map[string]*domain.CampaignAudit{
			"Core Brand": {
				CampaignName: "Core Brand",
				HealthScore:  85,
				Grade:        "B",
				Findings: []domain.Finding{
					{Severity: domain.FindingPass, Message: "ok"},
					{Severity: domain.FindingCritical, Message: "Insufficient headlines (0/3)"},
					{Severity: domain.FindingWarning, Message: "Budget below seasonal minimum"},
					{Severity: domain.FindingInfo, Message: "note"},
				},
			},
		},
		Summary:         "One campaign needs attention.",
		Recommendations: []string{"Add headlines to Core Brand"},
	}

	text := FormatAuditReport(report)

	assert.Contains(t, text, "📋 *Campaign Health Audit*")
	assert.Contains(t, text, "🏥 *Core Brand - Score: 85/100 (B)*")
	assert.Contains(t, text, "✅ 1 checks passed")
	assert.Contains(t, text, "⚠️ 1 warning(s)")
	assert.Contains(t, text, "  • Budget below seasonal minimum")
	assert.Contains(t, text, "🚨 1 critical issue(s)")
	assert.Contains(t, text, "  • Insufficient headlines (0/3)")
	assert.Contains(t, text, "📊 1 info note(s)")
	assert.Contains(t, text, "*Executive Summary:*\nOne campaign needs attention.")
	assert.Contains(t, text, "  1. Add headlines to Core Brand")
}

func TestSendEmergencyAlerts_UmaMensagemPorAlerta(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	var sent []string
	client.EXPECT().
		PostMessage(gomock.AssignableToTypeOf("")).
		DoAndReturn(func(text string) error {
			sent = append(sent, text)
			return nil
		}).
		Times(2)

	integrator := New(&config.Config{}, client)

	alerts := []domain.EmergencyAlert{
		{
			Severity:   domain.AlertSeverityHigh,
			Title:      "Spending 2x Budget with Low ROAS",
			Message:    "spend is runaway",
			Actions:    []string{"Reduce budget"},
			AutoAction: "Set daily budget to $100.00",
		},
		{
			Severity: domain.AlertSeverityInfo,
			Title:    "Market Ceiling Detected",
			Message:  "utilization low",
		},
	}

	err := integrator.SendEmergencyAlerts(alerts)
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(sent[0], "⚠️ *Spending 2x Budget with Low ROAS*"))
	assert.Contains(t, sent[0], "  - Reduce budget")
	assert.Contains(t, sent[0], "*Auto-action:* Set daily budget to $100.00")
	assert.True(t, strings.HasPrefix(sent[1], "📊 *Market Ceiling Detected*"))
}
