package domain

// Replacement é a copy substituta gerada para um asset flagado
type Replacement struct {
	AssetID  string `json:"asset_id"`
	Text     string `json:"text"`
	Strategy string `json:"strategy"`
}
