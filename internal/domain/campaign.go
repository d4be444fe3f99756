package domain

import "time"

// ManualStrategy são os campos de estratégia preenchidos manualmente pelo operador
type ManualStrategy struct {
	Description    string     `json:"description"`
	Goal           string     `json:"goal"`
	TargetAudience string     `json:"target_audience"`
	KeyProducts    []string   `json:"key_products"`
	ToneNotes      string     `json:"tone_notes"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
	UpdatedBy      string     `json:"updated_by,omitempty"`
}

// PlatformSettings são as configurações sincronizadas do Google Ads.
// Somente leitura do ponto de vista do operador; sobrescritas a cada sync.
type PlatformSettings struct {
	CampaignStatus      string     `json:"campaign_status,omitempty"`
	BiddingStrategyType string     `json:"bidding_strategy_type,omitempty"`
	TargetROAS          *float64   `json:"target_roas,omitempty"`
	DailyBudget         float64    `json:"daily_budget,omitempty"`
	GeoTargets          []string   `json:"geo_targets,omitempty"`
	SyncedAt            *time.Time `json:"synced_at,omitempty"`
}

// IsEmpty indica se nenhum sync foi feito ainda
func (s *PlatformSettings) IsEmpty() bool {
	return s == nil || s.SyncedAt == nil
}

// CampaignConfig combina estratégia manual, configurações sincronizadas da
// plataforma e o perfil de composição de imagens de uma campanha
type CampaignConfig struct {
	CampaignName     string             `json:"campaign_name"`
	CampaignID       string             `json:"campaign_id"`
	AssetGroup       string             `json:"asset_group"`
	Slug             string             `json:"slug"`
	Manual           ManualStrategy     `json:"manual"`
	PlatformSettings PlatformSettings   `json:"google_ads_settings"`
	ImageProfile     map[string]float64 `json:"image_profile"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// ASSET_CHARACTER_LIMITS do Google Ads para tipos de texto
var AssetCharacterLimits = map[AssetType]int{
	AssetTypeHeadline:     30,
	AssetTypeLongHeadline: 90,
	AssetTypeDescription:  90,
}

// CharacterLimit retorna o limite de caracteres do tipo, com fallback de headline
func CharacterLimit(t AssetType) int {
	if limit, ok := AssetCharacterLimits[t]; ok {
		return limit
	}
	return AssetCharacterLimits[AssetTypeHeadline]
}
