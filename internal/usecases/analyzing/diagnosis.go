package analyzing

import (
	"fmt"
	"strings"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

// Padrões que historicamente falharam nas campanhas da Rising.
// As listas e a ordem são decisão de marca. Fixtures de teste dependem
// das frases literais.
var knownFailurePatterns = []string{
	"innovative",
	"premier",
	"top-of-the-line",
	"unmatched",
	"experience",
	"destination",
	"serious anglers",
	"monsters",
}

var gatekeepingWords = []string{
	"serious",
	"elite",
	"professional",
	"expert",
	"advanced",
}

// Diagnose determina por que um asset falhou, para orientar a geração de
// copy substituta. Cadeia de prioridade determinística, primeira regra vence:
// imagem → hype → vagueza → gatekeeping → similaridade com graveyard → default.
// Violações de voz são diagnosticáveis com mais confiança que falhas de
// ângulo por similaridade, por isso vêm primeiro.
func (a *Analyzer) Diagnose(asset *domain.AssetRecord, graveyard []*domain.GraveyardRecord) string {
	// Imagens: sem análise de texto
	if asset.AssetType.IsImage() {
		return "visual_fatigue: Image underperforming. Consider replacing with fresh creative."
	}

	text := strings.ToLower(asset.AssetText)

	// Violação de voz: linguagem de hype
	for _, pattern := range knownFailurePatterns {
		if strings.Contains(text, pattern) {
			return fmt.Sprintf("voice: Contains hype language ('%s'). Rising voice is calm and direct.", pattern)
		}
	}

	// Vagueza em long headlines
	words := strings.Fields(text)
	if len(words) <= 2 && asset.AssetType == domain.AssetTypeLongHeadline {
		return "specificity: Too short/vague for a long headline. Needs concrete detail."
	}

	// Linguagem de gatekeeping ou exclusão
	for _, word := range gatekeepingWords {
		if strings.Contains(text, word) {
			return fmt.Sprintf("voice: Gatekeeping language ('%s'). Rising is inclusive.", word)
		}
	}

	// Padrão parecido já morto no graveyard?
	// Similaridade assimétrica: |interseção| / |palavras do asset atual|,
	// primeira entrada acima de 0.5 vence (sem busca de melhor match).
	assetWords := wordSet(words)
	if len(assetWords) > 0 {
		for _, grave := range graveyard {
			graveWords := wordSet(strings.Fields(strings.ToLower(grave.AssetText)))
			if len(graveWords) == 0 {
				continue
			}

			intersection := 0
			for word := range assetWords {
				if graveWords[word] {
					intersection++
				}
			}

			overlap := float64(intersection) / float64(len(assetWords))
			if overlap > 0.5 {
				return fmt.Sprintf(
					"angle: Similar to previously killed asset '%s'. Try a different approach.",
					grave.AssetText,
				)
			}
		}
	}

	// Default: CTR baixo significa que a copy não está conectando
	return "angle: Low engagement. Try a more direct, product-focused approach."
}

func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
