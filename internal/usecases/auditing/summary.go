package auditing

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

// generateSummary produz o resumo executivo da auditoria. Usa o LLM quando
// configurado; qualquer falha cai no resumo determinístico.
func (a *Auditor) generateSummary(
	ctx context.Context,
	campaigns map[string]*domain.CampaignAudit,
) (string, []string) {
	if a.summarizer != nil {
		summary, recommendations, err := a.summarizer.SummarizeAudit(ctx, campaigns)
		if err == nil {
			return summary, recommendations
		}

		logrus.WithField("error", err).Warn("Falha ao gerar resumo executivo via LLM, usando fallback")
	}

	return fallbackSummary(campaigns)
}

// fallbackSummary monta o resumo básico a partir das contagens de severidade
func fallbackSummary(campaigns map[string]*domain.CampaignAudit) (string, []string) {
	names := make([]string, 0, len(campaigns))
	for name := range campaigns {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	criticals := make([]domain.Finding, 0)
	warnings := make([]domain.Finding, 0)

	for _, name := range names {
		result := campaigns[name]
		parts = append(parts, fmt.Sprintf("%s: %d/100 (%s)", name, result.HealthScore, result.Grade))

		for _, finding := range result.Findings {
			switch finding.Severity {
			case domain.FindingCritical:
				criticals = append(criticals, finding)
			case domain.FindingWarning:
				warnings = append(warnings, finding)
			}
		}
	}

	summary := fmt.Sprintf("Audit complete. %s.", strings.Join(parts, ", "))
	if len(criticals) > 0 {
		summary += fmt.Sprintf(" %d critical issue(s) need immediate attention.", len(criticals))
	}
	if len(warnings) > 0 {
		summary += fmt.Sprintf(" %d warning(s) to review.", len(warnings))
	}

	recommendations := make([]string, 0, len(criticals)+5)
	for _, finding := range criticals {
		recommendations = append(recommendations, fmt.Sprintf("[CRITICAL] %s", finding.Message))
	}
	for i, finding := range warnings {
		if i == 5 {
			break
		}
		recommendations = append(recommendations, fmt.Sprintf("[WARNING] %s", finding.Message))
	}

	return summary, recommendations
}
