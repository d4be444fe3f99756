// Package images implementa a análise de composição do registro de imagens:
// compara o que está vinculado a cada campanha contra o perfil alvo de
// categorias e aponta o que falta subir.
package images

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/infrastructure/repository"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

const (
	gapStatusOver     = "over"
	gapStatusUnder    = "under"
	gapStatusOnTarget = "on_target"
)

// Candidate é uma imagem disponível no registro capaz de preencher um gap
type Candidate struct {
	ImageID     string `json:"image_id"`
	Description string `json:"description"`
}

// GapAnalysis é o resultado da análise de composição de uma campanha
type GapAnalysis struct {
	CampaignName    string                         `json:"campaign_name"`
	TotalImages     int                            `json:"total_images"`
	Composition     map[string]*domain.CategoryGap `json:"composition"`
	Priority        []*domain.CategoryGap          `json:"priority"`
	Recommendations []string                       `json:"recommendations"`
	Candidates      map[string][]Candidate         `json:"candidates"`
}

type Service struct {
	registry repository.ImageRegistryRepository
}

func NewService(registry repository.ImageRegistryRepository) *Service {
	return &Service{
		registry: registry,
	}
}

// Analyze calcula o desvio por categoria entre a composição atual da campanha
// e o perfil alvo. Desvio além de ±5 pontos percentuais vira gap.
func (s *Service) Analyze(campaign *domain.CampaignConfig) (*GapAnalysis, error) {
	if len(campaign.ImageProfile) == 0 {
		return nil, errors.Errorf("campanha sem perfil de imagem: %s", campaign.CampaignName)
	}

	images, err := s.registry.ListByCampaign(campaign.CampaignName)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar imagens da campanha")
	}

	total := len(images)

	counts := make(map[string]int, len(domain.ContentCategories))
	for _, category := range domain.ContentCategories {
		counts[category] = 0
	}
	for _, image := range images {
		if _, ok := counts[image.ContentCategory]; ok {
			counts[image.ContentCategory]++
		}
	}

	composition := make(map[string]*domain.CategoryGap, len(domain.ContentCategories))
	priority := make([]*domain.CategoryGap, 0, len(domain.ContentCategories))

	for _, category := range domain.ContentCategories {
		actualPct := 0.0
		if total > 0 {
			actualPct = float64(counts[category]) / float64(total) * 100
		}
		targetPct := campaign.ImageProfile[category] * 100
		delta := targetPct - actualPct

		status := gapStatusOnTarget
		switch {
		case delta < -5:
			status = gapStatusOver
		case delta > 5:
			status = gapStatusUnder
		}

		gap := &domain.CategoryGap{
			Category:  category,
			Count:     counts[category],
			ActualPct: round1(actualPct),
			TargetPct: round1(targetPct),
			Delta:     round1(delta),
			Status:    status,
		}
		composition[category] = gap
		priority = append(priority, gap)
	}

	// Maior delta positivo primeiro: categoria mais sub-representada no topo
	sort.SliceStable(priority, func(i, j int) bool {
		return priority[i].Delta > priority[j].Delta
	})

	recommendations := make([]string, 0)
	for _, gap := range priority {
		if gap.Status != gapStatusUnder {
			continue
		}
		base := total
		if base < 5 {
			base = 5
		}
		suggested := int(math.Round(gap.Delta / 100 * float64(base)))
		if suggested < 1 {
			suggested = 1
		}
		recommendations = append(recommendations, fmt.Sprintf(
			"Upload %d %s image(s)", suggested, strings.ReplaceAll(gap.Category, "_", " "),
		))
	}

	candidates, err := s.findCandidates(campaign.CampaignName, priority)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign": campaign.CampaignName,
			"error":    err.Error(),
		}).Warn("gap_analysis: failed to list candidate images, continuing without them")
		candidates = map[string][]Candidate{}
	}

	logrus.WithFields(logrus.Fields{
		"campaign":        campaign.CampaignName,
		"images":          total,
		"recommendations": len(recommendations),
	}).Info("gap_analysis: completed")

	return &GapAnalysis{
		CampaignName:    campaign.CampaignName,
		TotalImages:     total,
		Composition:     composition,
		Priority:        priority,
		Recommendations: recommendations,
		Candidates:      candidates,
	}, nil
}

// findCandidates procura no registro imagens disponíveis, ainda sem vínculo
// com a campanha, para cada categoria sub-representada. Até 3 por categoria.
func (s *Service) findCandidates(campaignName string, priority []*domain.CategoryGap) (map[string][]Candidate, error) {
	all, err := s.registry.ListAll()
	if err != nil {
		return nil, err
	}

	candidates := make(map[string][]Candidate)
	for _, gap := range priority {
		if gap.Status != gapStatusUnder {
			continue
		}

		matches := make([]Candidate, 0, 3)
		for _, image := range all {
			if image.ContentCategory != gap.Category {
				continue
			}
			if image.Status != "available" {
				continue
			}
			if image.LinkedTo(campaignName) {
				continue
			}
			matches = append(matches, Candidate{
				ImageID:     image.ImageID,
				Description: image.Description,
			})
			if len(matches) == 3 {
				break
			}
		}

		if len(matches) > 0 {
			candidates[gap.Category] = matches
		}
	}

	return candidates, nil
}

// Format monta o relatório legível da análise para Slack ou CLI
func Format(analysis *GapAnalysis) string {
	lines := []string{
		fmt.Sprintf("*Image Composition Analysis — %s*", analysis.CampaignName),
		fmt.Sprintf("%d images in asset group", analysis.TotalImages),
		"",
		fmt.Sprintf("%-28s %7s %7s %7s  Status", "Category", "Actual", "Target", "Gap"),
		strings.Repeat("─", 65),
	}

	for _, gap := range analysis.Priority {
		category := strings.ReplaceAll(gap.Category, "_", " ")
		actual := fmt.Sprintf("%.0f%%", gap.ActualPct)
		target := fmt.Sprintf("%.0f%%", gap.TargetPct)

		var status string
		switch gap.Status {
		case gapStatusUnder:
			status = fmt.Sprintf("▼ UNDER (%+.0f%%)", gap.Delta)
		case gapStatusOver:
			status = fmt.Sprintf("▲ OVER (%+.0f%%)", gap.Delta)
		default:
			status = "✓ ON TARGET"
		}

		lines = append(lines, fmt.Sprintf(
			"%-28s %7s %7s %+7.0f%%  %s", category, actual, target, gap.Delta, status,
		))
	}

	if len(analysis.Recommendations) > 0 {
		lines = append(lines, "", "*Recommendations:*")
		for _, rec := range analysis.Recommendations {
			lines = append(lines, fmt.Sprintf("  • %s", rec))
		}
	}

	if len(analysis.Candidates) > 0 {
		lines = append(lines, "", "*Available in repo:*")
		for _, category := range domain.ContentCategories {
			for _, candidate := range analysis.Candidates[category] {
				lines = append(lines, fmt.Sprintf(
					"  • [%s] %s: %s", category, candidate.ImageID, candidate.Description,
				))
			}
		}
	}

	return strings.Join(lines, "\n")
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
