package verifying

import (
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

// AdsCollector define a coleta de assets vivos no Google Ads
type AdsCollector interface {
	// CollectForCampaign coleta e agrega a performance dos assets de texto
	CollectForCampaign(campaignName, campaignID, startDate, endDate string) ([]*domain.AssetRecord, error)
}

// CampaignLoader carrega as configurações de campanha
type CampaignLoader interface {
	LoadCampaigns() ([]*domain.CampaignConfig, error)
}

// VerificationNotifier entrega o relatório de verificação
type VerificationNotifier interface {
	SendVerification(report string) error
	SendError(errorMessage, stackTrace string) error
}
