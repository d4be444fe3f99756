package anthropic

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/anthropic/anthropicclient/mocks"
	"github.com/risingfishing/pmax-optimizer-api/internal/config"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

func flaggedAsset() *domain.AssetRecord {
	return &domain.AssetRecord{
		AssetID:      domain.GenerateAssetID("Innovative Fishing Nets", "Core Brand"),
		AssetText:    "Innovative Fishing Nets",
		AssetType:    domain.AssetTypeHeadline,
		CampaignName: "Core Brand",
		Impressions:  800,
		Clicks:       6,
		CTR:          0.75,
		Cost:         12.40,
		KillReason:   "CTR 0.75% below peak_season threshold 4.0% for HEADLINE (800 impressions)",
		Diagnosis:    "voice: 'innovative' is hype language. Rising voice is honest and direct.",
	}
}

func TestGenerateReplacement_RemoveAspasERetornaEstrategia(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		CreateMessage(gomock.Any(), gomock.Any(), replacementMaxTokens).
		Return("\"USA Made Fly Fishing Nets\"", nil)

	integrator := New(&config.Config{}, client)
	asset := flaggedAsset()

	replacement, err := integrator.GenerateReplacement(
		context.Background(), asset, asset.KillReason, asset.Diagnosis, nil,
	)
	require.NoError(t, err)

	assert.Equal(t, "USA Made Fly Fishing Nets", replacement.Text)
	assert.Equal(t, asset.AssetID, replacement.AssetID)
	assert.Equal(t, asset.Diagnosis, replacement.Strategy)
}

func TestGenerateReplacement_RespostaLongaGanhaLembreteDeTamanho(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	tooLong := strings.Repeat("a", 40) // acima dos 30 chars de headline

	first := client.EXPECT().
		CreateMessage(gomock.Any(), gomock.Any(), replacementMaxTokens).
		Return(tooLong, nil)

	client.EXPECT().
		CreateMessage(gomock.Any(), gomock.AssignableToTypeOf(""), replacementMaxTokens).
		DoAndReturn(func(_ context.Context, prompt string, _ int) (string, error) {
			assert.Contains(t, prompt, "Your previous response was 40 characters. Maximum is 30.")
			return "Aluminum Landing Nets", nil
		}).
		After(first)

	integrator := New(&config.Config{}, client)
	asset := flaggedAsset()

	replacement, err := integrator.GenerateReplacement(
		context.Background(), asset, asset.KillReason, asset.Diagnosis, nil,
	)
	require.NoError(t, err)
	assert.Equal(t, "Aluminum Landing Nets", replacement.Text)
}

func TestGenerateReplacement_TresFalhasRetornaErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		CreateMessage(gomock.Any(), gomock.Any(), replacementMaxTokens).
		Return("", assert.AnError).
		Times(3)

	integrator := New(&config.Config{}, client)
	asset := flaggedAsset()

	replacement, err := integrator.GenerateReplacement(
		context.Background(), asset, asset.KillReason, asset.Diagnosis, nil,
	)
	assert.Error(t, err)
	assert.Nil(t, replacement)
}

func TestBuildReplacementPrompt_IncluiGraveyardELimites(t *testing.T) {
	asset := flaggedAsset()
	graveyard := []*domain.GraveyardRecord{
		{
			AssetText:  "Premier Fishing Experience",
			AssetType:  domain.AssetTypeHeadline,
			KillReason: "low CTR",
		},
	}

	prompt := BuildReplacementPrompt(asset, asset.KillReason, asset.Diagnosis, graveyard)

	assert.Contains(t, prompt, `"Premier Fishing Experience" (HEADLINE) - Killed: low CTR`)
	assert.Contains(t, prompt, "Maximum length: 30 characters")
	assert.Contains(t, prompt, "Type: HEADLINE")
	assert.Contains(t, prompt, asset.Diagnosis)
}

func TestBuildReplacementPrompt_GraveyardVazio(t *testing.T) {
	asset := flaggedAsset()

	prompt := BuildReplacementPrompt(asset, asset.KillReason, asset.Diagnosis, nil)

	assert.Contains(t, prompt, "None yet")
}

func TestSummarizeAudit_DecodificaJSONComCercado(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		CreateMessage(gomock.Any(), gomock.AssignableToTypeOf(""), 1024).
		DoAndReturn(func(_ context.Context, prompt string, _ int) (string, error) {
			// Findings PASS ficam de fora do prompt
			assert.NotContains(t, prompt, "all good")
			assert.Contains(t, prompt, "budget too low")
			return "```json\n{\"summary\": \"Campaigns healthy overall.\", \"recommendations\": [\"Raise Core Brand budget\"]}\n```", nil
		})

	integrator := New(&config.Config{}, client)

	campaigns := map[string]*domain.CampaignAudit{
		"Core Brand": {
			CampaignName: "Core Brand",
			HealthScore:  95,
			Grade:        "A",
			Findings: []domain.Finding{
				{Check: "budget_minimum", Severity: domain.FindingWarning, Message: "budget too low"},
				{Check: "campaign_status", Severity: domain.FindingPass, Message: "all good"},
			},
		},
	}

	summary, recommendations, err := integrator.SummarizeAudit(context.Background(), campaigns)
	require.NoError(t, err)

	assert.Equal(t, "Campaigns healthy overall.", summary)
	assert.Equal(t, []string{"Raise Core Brand budget"}, recommendations)
}
