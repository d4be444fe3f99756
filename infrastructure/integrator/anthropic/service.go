package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/anthropic/anthropicclient"
	"github.com/risingfishing/pmax-optimizer-api/internal/config"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

const replacementMaxTokens = 200

const risingVoiceGuidelines = `Write in the Rising Fishing voice. The tone should be calm, honest, and human. No hype, no sales talk, and no cleverness for the sake of being clever. Avoid em dashes. Sound like a small crew of anglers who build their own gear and spend real time on the water. Use simple, clear sentences with a lived-in feel. Everything should read like a conversation at a tailgate or in the shop at the end of a day on the river.

Rising messages should be grounded in real experience. Focus on what matters on the water. Give readers one true idea at a time. Never preach and never lecture. If the message is product focused, connect the gear to real moments on the river. If the message is story focused, give one honest moment that feels familiar to anyone who fishes. If the message is educational, explain things in plain language and with care.

Keep CTAs soft. Respect the reader's attention. Speak with patience, craft, and purpose. Rising is about tools built to last, stories worth telling, and the people who fish. Everything written should feel steady, trustworthy, and from a crew that does things the right way.`

const auditSummaryPrompt = `You are a Google Ads Performance Max campaign health advisor. Given these audit findings for a fly fishing brand, write: (1) a 2-3 sentence executive summary of overall campaign health, and (2) a prioritized list of 3-5 specific actions to take. Be direct and specific. Return JSON: {"summary": "...", "recommendations": ["...", "..."]}

Audit findings:
%s`

// AnthropicIntegrator gera copy substituta na voz da marca e resumos
// executivos de auditoria via Messages API
type AnthropicIntegrator struct {
	cfg    *config.Config
	Client anthropicclient.Client
}

func New(cfg *config.Config, client anthropicclient.Client) *AnthropicIntegrator {
	return &AnthropicIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// BuildReplacementPrompt monta o prompt de geração de copy. O graveyard entra
// como lista do que já falhou para o modelo não repetir os mesmos padrões.
func BuildReplacementPrompt(
	asset *domain.AssetRecord,
	killReason string,
	diagnosis string,
	graveyard []*domain.GraveyardRecord,
) string {
	maxLength := domain.CharacterLimit(asset.AssetType)

	// Só os últimos 20 assets mortos
	recent := graveyard
	if len(recent) > 20 {
		recent = recent[len(recent)-20:]
	}

	graveyardSection := "None yet"
	if len(recent) > 0 {
		lines := make([]string, 0, len(recent))
		for _, grave := range recent {
			reason := grave.KillReason
			if reason == "" {
				reason = "unknown"
			}
			lines = append(lines, fmt.Sprintf("- %q (%s) - Killed: %s", grave.AssetText, grave.AssetType, reason))
		}
		graveyardSection = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`You are a copywriter for Rising Fishing, a fly fishing gear company. Your task is to generate replacement copy for underperforming Google Ads assets.

RISING VOICE GUIDELINES:
%s

WHAT WORKS:
- Direct product focus: "Fly Fishing Nets"
- Origin/credibility: "USA Made Fly Fishing Nets"
- Material specificity: "Aluminum Nets"
- Real conditions: "Built for Rivers and Big Fish"

WHAT FAILS:
- Hype language: "Innovative", "Premier", "Top-of-the-Line", "Unmatched"
- Vague benefits: "Experience", "Destination"
- Gatekeeping: "For Serious Anglers"
- Hyperbole: "Nets That Land Monsters"

GRAVEYARD (what has failed before):
%s

ASSET TO REPLACE:
Type: %s
Text: %s
Performance: %d impressions, %v%% CTR, %v conversions, $%.2f spent
Kill reason: %s
Diagnosis: %s

TASK:
Generate ONE replacement %s that:
1. Follows Rising voice (no hype, direct, specific)
2. Avoids patterns that failed in the graveyard
3. Addresses why the original failed

Respond with ONLY the replacement text (no explanation, no quotes, no formatting).
Maximum length: %d characters

Replacement text:`,
		risingVoiceGuidelines,
		graveyardSection,
		asset.AssetType,
		asset.AssetText,
		asset.Impressions,
		asset.CTR,
		asset.Conversions,
		asset.Cost,
		killReason,
		diagnosis,
		asset.AssetType,
		maxLength,
	)
}

// GenerateReplacement gera uma copy substituta para um asset morto. Faz até
// três tentativas; respostas acima do limite de caracteres ganham um lembrete
// de tamanho no prompt antes da próxima tentativa.
func (s *AnthropicIntegrator) GenerateReplacement(
	ctx context.Context,
	asset *domain.AssetRecord,
	killReason string,
	diagnosis string,
	graveyard []*domain.GraveyardRecord,
) (*domain.Replacement, error) {
	maxLength := domain.CharacterLimit(asset.AssetType)
	prompt := BuildReplacementPrompt(asset, killReason, diagnosis, graveyard)

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		text, err := s.Client.CreateMessage(ctx, prompt, replacementMaxTokens)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"attempt": attempt,
				"error":   err.Error(),
			}).Error("copy_generator: claude api error")
			lastErr = err
			continue
		}

		replacementText := strings.TrimSpace(text)
		replacementText = strings.Trim(replacementText, `"'`)

		if len(replacementText) > maxLength {
			logrus.WithFields(logrus.Fields{
				"replacement": replacementText,
				"max_length":  maxLength,
				"length":      len(replacementText),
			}).Warn("copy_generator: replacement exceeds max length, retrying")

			prompt += fmt.Sprintf(
				"\n\nIMPORTANT: Your previous response was %d characters. Maximum is %d. Try again, shorter:",
				len(replacementText), maxLength,
			)
			lastErr = fmt.Errorf("replacement excedeu %d caracteres", maxLength)
			continue
		}

		if replacementText == "" {
			logrus.WithField("attempt", attempt).Warn("copy_generator: empty replacement")
			lastErr = fmt.Errorf("replacement vazio")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"asset":       asset.AssetText,
			"replacement": replacementText,
		}).Info("copy_generator: generated replacement")

		return &domain.Replacement{
			AssetID:  asset.AssetID,
			Text:     replacementText,
			Strategy: diagnosis,
		}, nil
	}

	return nil, lastErr
}

// GenerateReplacements gera substitutas para todos os assets flagados.
// Falhas individuais não interrompem o lote.
func (s *AnthropicIntegrator) GenerateReplacements(
	ctx context.Context,
	flaggedAssets []*domain.AssetRecord,
	graveyard []*domain.GraveyardRecord,
) map[string]*domain.Replacement {
	replacements := make(map[string]*domain.Replacement, len(flaggedAssets))

	for _, asset := range flaggedAssets {
		replacement, err := s.GenerateReplacement(ctx, asset, asset.KillReason, asset.Diagnosis, graveyard)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"asset": asset.AssetText,
				"error": err.Error(),
			}).Error("copy_generator: failed to generate replacement")
			continue
		}

		replacements[asset.AssetID] = replacement
	}

	logrus.WithFields(logrus.Fields{
		"generated": len(replacements),
		"flagged":   len(flaggedAssets),
	}).Info("copy_generator: batch finished")

	return replacements
}

type auditCampaignPayload struct {
	Campaign string                `json:"campaign"`
	Score    int                   `json:"score"`
	Grade    string                `json:"grade"`
	Findings []auditFindingPayload `json:"findings"`
}

type auditFindingPayload struct {
	Check    string `json:"check"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type auditSummaryResult struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

// SummarizeAudit gera o resumo executivo da auditoria via LLM. Os findings
// PASS ficam de fora do prompt para não estourar o contexto.
func (s *AnthropicIntegrator) SummarizeAudit(
	ctx context.Context,
	campaigns map[string]*domain.CampaignAudit,
) (string, []string, error) {
	names := make([]string, 0, len(campaigns))
	for name := range campaigns {
		names = append(names, name)
	}
	sort.Strings(names)

	payload := make([]auditCampaignPayload, 0, len(names))
	for _, name := range names {
		result := campaigns[name]

		findings := make([]auditFindingPayload, 0, len(result.Findings))
		for _, finding := range result.Findings {
			if finding.Severity == domain.FindingPass {
				continue
			}
			findings = append(findings, auditFindingPayload{
				Check:    finding.Check,
				Severity: string(finding.Severity),
				Message:  finding.Message,
			})
		}

		payload = append(payload, auditCampaignPayload{
			Campaign: name,
			Score:    result.HealthScore,
			Grade:    result.Grade,
			Findings: findings,
		})
	}

	findingsJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("erro ao serializar os findings: %w", err)
	}

	prompt := fmt.Sprintf(auditSummaryPrompt, string(findingsJSON))

	text, err := s.Client.CreateMessage(ctx, prompt, 1024)
	if err != nil {
		return "", nil, err
	}

	text = stripCodeFences(strings.TrimSpace(text))

	var result auditSummaryResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return "", nil, fmt.Errorf("erro ao decodificar o resumo do LLM: %w", err)
	}

	return result.Summary, result.Recommendations, nil
}

// stripCodeFences remove o cercado ``` que o modelo às vezes coloca em volta do JSON
func stripCodeFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	if idx := strings.Index(text, "\n"); idx >= 0 {
		text = text[idx+1:]
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}

	return strings.TrimSpace(text)
}
