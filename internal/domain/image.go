package domain

import "time"

// Categorias de conteúdo usadas no perfil de composição de imagens
var ContentCategories = []string{
	"product_hero",
	"product_detail",
	"product_in_use",
	"lifestyle_with_product",
	"lifestyle_no_product",
}

// ImageLink vincula uma imagem do registro a um asset de campanha no Google Ads
type ImageLink struct {
	CampaignName  string     `json:"campaign_name"`
	AssetResource string     `json:"asset_resource"`
	FieldType     AssetType  `json:"field_type"`
	DateLinked    time.Time  `json:"date_linked"`
	DateUnlinked  *time.Time `json:"date_unlinked,omitempty"`
}

// Linked indica se o vínculo ainda está ativo na plataforma
func (l ImageLink) Linked() bool {
	return l.DateUnlinked == nil
}

// ImageRecord é uma entrada do registro de imagens da conta
type ImageRecord struct {
	ImageID         string      `json:"image_id"`
	ImageHash       string      `json:"image_hash"`
	Filename        string      `json:"filename"`
	ContentCategory string      `json:"content_category"`
	AspectRatio     string      `json:"aspect_ratio"`
	Width           int         `json:"width"`
	Height          int         `json:"height"`
	Status          string      `json:"status"`
	Source          string      `json:"source"`
	Description     string      `json:"description,omitempty"`
	Links           []ImageLink `json:"google_ads_assets"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// LinkedTo indica se a imagem tem vínculo ativo com a campanha
func (i *ImageRecord) LinkedTo(campaignName string) bool {
	for _, link := range i.Links {
		if link.CampaignName == campaignName && link.Linked() {
			return true
		}
	}
	return false
}

// CategoryGap descreve o desvio de uma categoria em relação ao perfil alvo
type CategoryGap struct {
	Category  string  `json:"category"`
	Count     int     `json:"count"`
	ActualPct float64 `json:"actual_pct"`
	TargetPct float64 `json:"target_pct"`
	Delta     float64 `json:"delta"`
	Status    string  `json:"status"`
}

// ClassifyAspectRatio classifica a proporção como landscape, square ou portrait
func ClassifyAspectRatio(width, height int) string {
	if width == 0 || height == 0 {
		return "unknown"
	}

	ratio := float64(width) / float64(height)
	switch {
	case ratio > 1.2:
		return "landscape"
	case ratio < 0.85:
		return "portrait"
	}
	return "square"
}
