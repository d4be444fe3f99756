package domain

// Tipos de resposta do endpoint googleAds:searchStream. A API REST devolve
// uma lista de chunks, cada um com um bloco de results.

type SearchStreamChunk struct {
	Results []SearchRow `json:"results"`
}

type SearchRow struct {
	AssetGroupAsset  *AssetGroupAsset  `json:"assetGroupAsset,omitempty"`
	Asset            *Asset            `json:"asset,omitempty"`
	Campaign         *Campaign         `json:"campaign,omitempty"`
	CampaignBudget   *CampaignBudget   `json:"campaignBudget,omitempty"`
	CampaignCriteria *CampaignCriteria `json:"campaignCriterion,omitempty"`
	Metrics          *Metrics          `json:"metrics,omitempty"`
	Segments         *Segments         `json:"segments,omitempty"`
}

type AssetGroupAsset struct {
	Asset     string `json:"asset"`
	FieldType string `json:"fieldType"`
	Status    string `json:"status"`
}

type Asset struct {
	Name      string     `json:"name"`
	TextAsset *TextAsset `json:"textAsset,omitempty"`
}

type TextAsset struct {
	Text string `json:"text"`
}

type Campaign struct {
	ID                      string                   `json:"id"`
	Status                  string                   `json:"status"`
	BiddingStrategyType     string                   `json:"biddingStrategyType"`
	MaximizeConversionValue *MaximizeConversionValue `json:"maximizeConversionValue,omitempty"`
}

type MaximizeConversionValue struct {
	TargetRoas float64 `json:"targetRoas"`
}

type CampaignBudget struct {
	AmountMicros string `json:"amountMicros"`
}

type CampaignCriteria struct {
	Location *Location `json:"location,omitempty"`
	Negative bool      `json:"negative"`
}

type Location struct {
	GeoTargetConstant string `json:"geoTargetConstant"`
}

// Metrics usa string nos campos inteiros porque a API REST serializa int64
// como string JSON
type Metrics struct {
	Impressions      string  `json:"impressions"`
	Clicks           string  `json:"clicks"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversionsValue"`
	CostMicros       string  `json:"costMicros"`
}

type Segments struct {
	Date string `json:"date"`
}

// AssetRow é a linha normalizada de performance de um asset em uma data
type AssetRow struct {
	AssetResource    string
	FieldType        string
	AssetStatus      string
	AssetText        string
	AssetName        string
	Date             string
	Impressions      int
	Clicks           int
	Conversions      float64
	ConversionsValue float64
	Cost             float64
}

// CampaignMetrics agrega spend, cliques e impressões da campanha no período
type CampaignMetrics struct {
	TotalSpend  float64 `json:"total_spend"`
	Clicks      int     `json:"clicks"`
	Impressions int     `json:"impressions"`
	CTR         float64 `json:"ctr"`
}

// CampaignSettings são as configurações da campanha lidas da plataforma
type CampaignSettings struct {
	CampaignStatus      string
	BiddingStrategyType string
	TargetROAS          *float64
	DailyBudget         float64
	GeoTargets          []string
}
