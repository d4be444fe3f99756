package images

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/risingfishing/pmax-optimizer-api/infrastructure/repository/mocks"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

func coreBrandProfile() *domain.CampaignConfig {
	return &domain.CampaignConfig{
		CampaignName: "Core Brand",
		CampaignID:   "22483972722",
		ImageProfile: map[string]float64{
			"product_hero":           0.30,
			"product_detail":         0.20,
			"product_in_use":         0.20,
			"lifestyle_with_product": 0.20,
			"lifestyle_no_product":   0.10,
		},
	}
}

func linkedImage(id, category string) *domain.ImageRecord {
	return &domain.ImageRecord{
		ImageID:         id,
		ContentCategory: category,
		Status:          "in_use",
		Links: []domain.ImageLink{
			{CampaignName: "Core Brand", AssetResource: "customers/1/assets/" + id},
		},
	}
}

func TestAnalyze_DetectaCategoriasSobreESubRepresentadas(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := repomocks.NewMockImageRegistryRepository(ctrl)

	// 10 imagens: hero saturada (60% vs 30%), product_in_use e
	// lifestyle_no_product ausentes
	linked := []*domain.ImageRecord{
		linkedImage("img1", "product_hero"),
		linkedImage("img2", "product_hero"),
		linkedImage("img3", "product_hero"),
		linkedImage("img4", "product_hero"),
		linkedImage("img5", "product_hero"),
		linkedImage("img6", "product_hero"),
		linkedImage("img7", "product_detail"),
		linkedImage("img8", "product_detail"),
		linkedImage("img9", "lifestyle_with_product"),
		linkedImage("img10", "lifestyle_with_product"),
	}

	available := &domain.ImageRecord{
		ImageID:         "imgAA",
		ContentCategory: "product_in_use",
		Status:          "available",
		Description:     "Angler netting a brown trout at golden hour",
	}
	alreadyLinked := linkedImage("imgBB", "product_in_use")
	wrongStatus := &domain.ImageRecord{
		ImageID:         "imgCC",
		ContentCategory: "product_in_use",
		Status:          "retired",
	}

	registry.EXPECT().ListByCampaign("Core Brand").Return(linked, nil)
	registry.EXPECT().ListAll().Return(append(linked, available, alreadyLinked, wrongStatus), nil)

	analysis, err := NewService(registry).Analyze(coreBrandProfile())
	require.NoError(t, err)

	assert.Equal(t, "Core Brand", analysis.CampaignName)
	assert.Equal(t, 10, analysis.TotalImages)

	hero := analysis.Composition["product_hero"]
	require.NotNil(t, hero)
	assert.Equal(t, 6, hero.Count)
	assert.Equal(t, 60.0, hero.ActualPct)
	assert.Equal(t, 30.0, hero.TargetPct)
	assert.Equal(t, -30.0, hero.Delta)
	assert.Equal(t, "over", hero.Status)

	inUse := analysis.Composition["product_in_use"]
	require.NotNil(t, inUse)
	assert.Equal(t, 20.0, inUse.Delta)
	assert.Equal(t, "under", inUse.Status)

	assert.Equal(t, "on_target", analysis.Composition["product_detail"].Status)
	assert.Equal(t, "under", analysis.Composition["lifestyle_no_product"].Status)

	// Prioridade ordenada por delta decrescente: mais sub-representada no topo
	require.Len(t, analysis.Priority, 5)
	assert.Equal(t, "product_in_use", analysis.Priority[0].Category)
	assert.Equal(t, "lifestyle_no_product", analysis.Priority[1].Category)
	assert.Equal(t, "product_hero", analysis.Priority[4].Category)

	require.Len(t, analysis.Recommendations, 2)
	assert.Equal(t, "Upload 2 product in use image(s)", analysis.Recommendations[0])
	assert.Equal(t, "Upload 1 lifestyle no product image(s)", analysis.Recommendations[1])

	// Candidatas: só a disponível e ainda não vinculada à campanha
	require.Contains(t, analysis.Candidates, "product_in_use")
	require.Len(t, analysis.Candidates["product_in_use"], 1)
	assert.Equal(t, "imgAA", analysis.Candidates["product_in_use"][0].ImageID)
	assert.NotContains(t, analysis.Candidates, "lifestyle_no_product")
}

func TestAnalyze_RegistroVazioSugerePeloMenosUmaImagem(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := repomocks.NewMockImageRegistryRepository(ctrl)

	registry.EXPECT().ListByCampaign("Core Brand").Return(nil, nil)
	registry.EXPECT().ListAll().Return(nil, nil)

	analysis, err := NewService(registry).Analyze(coreBrandProfile())
	require.NoError(t, err)

	assert.Zero(t, analysis.TotalImages)

	// Sem imagens, toda categoria com alvo >5% vira gap; a base mínima de
	// cálculo é 5 imagens
	require.Len(t, analysis.Recommendations, 5)
	assert.Equal(t, "Upload 2 product hero image(s)", analysis.Recommendations[0])
	assert.Equal(t, "Upload 1 lifestyle no product image(s)", analysis.Recommendations[4])
}

func TestAnalyze_CampanhaSemPerfilDeImagem(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := repomocks.NewMockImageRegistryRepository(ctrl)

	_, err := NewService(registry).Analyze(&domain.CampaignConfig{CampaignName: "Sem Perfil"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sem Perfil")
}

func TestFormat_TabelaEStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := repomocks.NewMockImageRegistryRepository(ctrl)

	linked := []*domain.ImageRecord{
		linkedImage("img1", "product_hero"),
		linkedImage("img2", "product_hero"),
		linkedImage("img3", "product_hero"),
		linkedImage("img4", "product_detail"),
		linkedImage("img5", "lifestyle_with_product"),
	}

	registry.EXPECT().ListByCampaign("Core Brand").Return(linked, nil)
	registry.EXPECT().ListAll().Return(linked, nil)

	analysis, err := NewService(registry).Analyze(coreBrandProfile())
	require.NoError(t, err)

	report := Format(analysis)

	assert.Contains(t, report, "*Image Composition Analysis — Core Brand*")
	assert.Contains(t, report, "5 images in asset group")
	assert.Contains(t, report, strings.Repeat("─", 65))
	assert.Contains(t, report, "▼ UNDER")
	assert.Contains(t, report, "▲ OVER")
	assert.Contains(t, report, "✓ ON TARGET")
	assert.Contains(t, report, "*Recommendations:*")
	assert.Contains(t, report, "  • Upload 1 product in use image(s)")
}
