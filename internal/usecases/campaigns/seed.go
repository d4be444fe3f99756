package campaigns

import (
	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
	"github.com/risingfishing/pmax-optimizer-api/pkg/timeutil"
)

// Campanhas iniciais com a estratégia manual preenchida pelo operador.
// Servem de bootstrap quando a tabela de configurações está vazia.
var seedConfigs = []domain.CampaignConfig{
	{
		CampaignName: "Core Brand",
		CampaignID:   "22483972722",
		AssetGroup:   "Core Brand",
		Slug:         "core_brand",
		Manual: domain.ManualStrategy{
			Description: "Core Brand is Rising's primary paid performance driver. The campaign " +
				"promotes landing nets, tools, and hats to a broad fly fishing audience " +
				"through Performance Max. The strategic goal is to profitably expand " +
				"Rising's reach — growing awareness and sales while maintaining strong " +
				"ROAS. Product mix and campaign structure are under active evaluation.",
			Goal:           "Profitably expand reach — grow sales while maintaining target ROAS",
			TargetAudience: "Broad fly fishing audience — anglers of all experience levels",
			KeyProducts:    []string{"landing nets", "tools", "hats"},
			ToneNotes:      "Calm, honest, grounded. No hype. Speak like a crew around a tailgate or campfire.",
			UpdatedBy:      "scott",
		},
		ImageProfile: map[string]float64{
			"product_hero":           0.20,
			"product_in_use":         0.30,
			"lifestyle_with_product": 0.30,
			"lifestyle_no_product":   0.10,
			"product_detail":         0.10,
		},
	},
	{
		CampaignName: "Replacement Nets",
		CampaignID:   "22494027316",
		AssetGroup:   "Replacement Nets",
		Slug:         "replacement_nets",
		Manual: domain.ManualStrategy{
			Description: "Replacement Nets is a high-margin campaign that fills revenue gaps " +
				"during low and shoulder seasons when Core Brand spend scales back. " +
				"Replacement nets are a strong-selling product with consistent demand. " +
				"The campaign runs through Performance Max targeting the same broad fly " +
				"fishing audience, focused on maintaining profitable ROAS year-round.",
			Goal:           "Maintain profitable revenue during low and shoulder seasons",
			TargetAudience: "Broad fly fishing audience — anglers of all experience levels",
			KeyProducts:    []string{"replacement nets"},
			ToneNotes:      "Calm, honest, grounded. No hype. Speak like a crew around a tailgate or campfire.",
			UpdatedBy:      "scott",
		},
		ImageProfile: map[string]float64{
			"product_hero":           0.25,
			"product_detail":         0.30,
			"product_in_use":         0.25,
			"lifestyle_with_product": 0.15,
			"lifestyle_no_product":   0.05,
		},
	},
}

// Seed grava as campanhas iniciais que ainda não existem na base.
// Campanhas já cadastradas não são tocadas.
func (s *Service) Seed() error {
	existing, err := s.configRepo.GetAll()
	if err != nil {
		return err
	}

	known := make(map[string]bool, len(existing))
	for _, config := range existing {
		known[config.CampaignName] = true
	}

	now := timeutil.Now()

	for _, seed := range seedConfigs {
		if known[seed.CampaignName] {
			continue
		}

		config := seed
		config.Manual.UpdatedAt = &now
		config.UpdatedAt = now

		if err := s.configRepo.Upsert(&config); err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign": config.CampaignName,
				"error":    err.Error(),
			}).Error("Falha ao gravar campanha inicial")
			return err
		}

		logrus.WithField("campaign", config.CampaignName).Info("Campanha inicial cadastrada")
	}

	return nil
}
