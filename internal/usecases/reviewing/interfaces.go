package reviewing

import (
	"context"

	adsdomain "github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/googleads/domain"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

// AdsCollector define a interface de coleta de performance no Google Ads
type AdsCollector interface {
	// CollectForCampaign coleta e agrega a performance dos assets de texto
	CollectForCampaign(campaignName, campaignID, startDate, endDate string) ([]*domain.AssetRecord, error)

	// CollectImagesForCampaign coleta a performance dos assets de imagem
	CollectImagesForCampaign(campaignName, campaignID, startDate, endDate string) ([]*domain.AssetRecord, error)

	// GetCampaignMetrics totaliza spend, cliques, impressões e CTR do período
	GetCampaignMetrics(campaignID, startDate, endDate string) (*adsdomain.CampaignMetrics, error)

	// GetCampaignBudget retorna o orçamento diário configurado na plataforma
	GetCampaignBudget(campaignID string) (float64, error)

	// GetCampaignSettings lê as configurações atuais da campanha
	GetCampaignSettings(campaignID string) (*domain.PlatformSettings, error)
}

// RevenueCollector define a interface de receita atribuída do Shopify
type RevenueCollector interface {
	// GetGoogleAttributedRevenue calcula a receita líquida atribuída ao Google
	GetGoogleAttributedRevenue(startDate, endDate, campaignName string) (*domain.AttributedRevenue, error)
}

// ReplacementGenerator define a interface de geração de copy substituta
type ReplacementGenerator interface {
	// GenerateReplacements gera substitutas para os assets flagados
	GenerateReplacements(ctx context.Context, flaggedAssets []*domain.AssetRecord, graveyard []*domain.GraveyardRecord) map[string]*domain.Replacement
}

// ReviewNotifier define a interface de entrega da revisão semanal
type ReviewNotifier interface {
	SendReview(
		month int,
		flaggedAssets []*domain.AssetRecord,
		replacements map[string]*domain.Replacement,
		budgets map[string]*domain.BudgetSnapshot,
		alerts []domain.EmergencyAlert,
		assetChangesEnabled bool,
		previewMode bool,
	) error
	SendEmergencyAlerts(alerts []domain.EmergencyAlert) error
	SendError(errorMessage, stackTrace string) error
}

// CampaignLoader carrega as configurações de campanha, sincronizando as defasadas
type CampaignLoader interface {
	LoadCampaigns() ([]*domain.CampaignConfig, error)
}
