package auditing

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

// Categoria 5: composição de imagens (checks 19-20)
func (a *Auditor) checkImageComposition(config *domain.CampaignConfig) []domain.Finding {
	findings := make([]domain.Finding, 0, 2)
	campaignName := config.CampaignName

	if len(config.ImageProfile) == 0 {
		findings = append(findings, domain.Finding{
			Check:    "image_composition",
			Category: "image_composition",
			Severity: domain.FindingInfo,
			Message:  "No image profile defined - skipping composition checks",
			Expected: "Image profile defined",
		})
		return findings
	}

	allImages, err := a.imageRepo.ListByCampaign(campaignName)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign": campaignName,
			"error":    err,
		}).Warn("Não foi possível carregar as imagens")

		return []domain.Finding{{
			Check:    "image_data_unavailable",
			Category: "image_composition",
			Severity: domain.FindingWarning,
			Message:  fmt.Sprintf("Could not load image data: %v", err),
			Expected: "Image data available",
		}}
	}

	images := dedupeByHash(allImages)
	total := len(images)

	// Check 20: quantidade total de imagens adequada (10+ para variedade no PMax)
	if total < 10 {
		findings = append(findings, domain.Finding{
			Check:    "image_count",
			Category: "image_composition",
			Severity: domain.FindingWarning,
			Message:  fmt.Sprintf("Only %d images - PMax needs visual variety (recommend 10+)", total),
			Value:    total,
			Expected: ">= 10",
		})
	} else {
		findings = append(findings, domain.Finding{
			Check:    "image_count",
			Category: "image_composition",
			Severity: domain.FindingPass,
			Message:  fmt.Sprintf("%d images in asset group", total),
			Value:    total,
			Expected: ">= 10",
		})
	}

	// Check 19: nenhuma categoria >15% sub-representada frente ao perfil
	if total > 0 {
		categoryCounts := make(map[string]int, len(domain.ContentCategories))
		for _, category := range domain.ContentCategories {
			categoryCounts[category] = 0
		}
		for _, image := range images {
			if _, ok := categoryCounts[image.ContentCategory]; ok {
				categoryCounts[image.ContentCategory]++
			}
		}

		underrepresented := make([]domain.CategoryGap, 0)
		for _, category := range domain.ContentCategories {
			actualPct := float64(categoryCounts[category]) / float64(total) * 100
			targetPct := config.ImageProfile[category] * 100
			delta := targetPct - actualPct

			if delta > 15 {
				underrepresented = append(underrepresented, domain.CategoryGap{
					Category:  category,
					Count:     categoryCounts[category],
					ActualPct: actualPct,
					TargetPct: targetPct,
					Delta:     delta,
				})
			}
		}

		if len(underrepresented) > 0 {
			for _, gap := range underrepresented {
				catName := strings.ReplaceAll(gap.Category, "_", " ")
				findings = append(findings, domain.Finding{
					Check:    "image_category_gap",
					Category: "image_composition",
					Severity: domain.FindingWarning,
					Message: fmt.Sprintf(
						"%s is %.0f%% underrepresented (%.0f%% actual vs %.0f%% target)",
						catName, gap.Delta, gap.ActualPct, gap.TargetPct,
					),
					Value:    gap.ActualPct,
					Expected: fmt.Sprintf("%.0f%% (+/- 15%%)", gap.TargetPct),
				})
			}
		} else {
			findings = append(findings, domain.Finding{
				Check:    "image_category_gap",
				Category: "image_composition",
				Severity: domain.FindingPass,
				Message:  "Image composition within targets (no category >15% underrepresented)",
				Value:    categoryCounts,
				Expected: "All categories within 15% of target",
			})
		}
	} else {
		findings = append(findings, domain.Finding{
			Check:    "image_category_gap",
			Category: "image_composition",
			Severity: domain.FindingInfo,
			Message:  "No images to analyze composition",
			Value:    0,
			Expected: "Images available for composition analysis",
		})
	}

	return findings
}

// dedupeByHash remove duplicatas do registro pelo hash da imagem, mantendo a
// primeira ocorrência. A mesma imagem pode aparecer vinculada mais de uma vez
// após re-uploads na plataforma.
func dedupeByHash(images []*domain.ImageRecord) []*domain.ImageRecord {
	seen := make(map[string]bool, len(images))
	deduped := make([]*domain.ImageRecord, 0, len(images))

	for _, image := range images {
		key := image.ImageHash
		if key == "" {
			key = image.ImageID
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, image)
	}

	return deduped
}
