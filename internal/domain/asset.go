package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// AssetType identifica o tipo de criativo dentro de um asset group do PMax
type AssetType string

const (
	AssetTypeHeadline               AssetType = "HEADLINE"
	AssetTypeLongHeadline           AssetType = "LONG_HEADLINE"
	AssetTypeDescription            AssetType = "DESCRIPTION"
	AssetTypeMarketingImage         AssetType = "MARKETING_IMAGE"
	AssetTypeSquareMarketingImage   AssetType = "SQUARE_MARKETING_IMAGE"
	AssetTypePortraitMarketingImage AssetType = "PORTRAIT_MARKETING_IMAGE"
)

// IsImage indica se o tipo corresponde a um criativo de imagem
func (t AssetType) IsImage() bool {
	switch t {
	case AssetTypeMarketingImage, AssetTypeSquareMarketingImage, AssetTypePortraitMarketingImage:
		return true
	}
	return false
}

type AssetStatus string

const (
	AssetStatusActive  AssetStatus = "active"
	AssetStatusKilled  AssetStatus = "killed"
	AssetStatusPaused  AssetStatus = "paused"
	AssetStatusFlagged AssetStatus = "flagged"
)

// AssetRecord representa a performance agregada de um criativo em uma janela de lookback
type AssetRecord struct {
	AssetID           string      `json:"asset_id"`
	ReportDate        string      `json:"report_date"`
	AssetText         string      `json:"asset_text"`
	AssetType         AssetType   `json:"asset_type"`
	CampaignName      string      `json:"campaign_name"`
	Impressions       int         `json:"impressions"`
	Clicks            int         `json:"clicks"`
	CTR               float64     `json:"ctr"`
	Conversions       float64     `json:"conversions"`
	Cost              float64     `json:"cost"`
	CPA               float64     `json:"cpa"`
	Status            AssetStatus `json:"status"`
	DateAdded         string      `json:"date_added,omitempty"`
	DateKilled        string      `json:"date_killed,omitempty"`
	KillReason        string      `json:"kill_reason,omitempty"`
	Diagnosis         string      `json:"diagnosis,omitempty"`
	ReplacedBy        string      `json:"replaced_by,omitempty"`
	ReplacementReason string      `json:"replacement_reason,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// GraveyardRecord é o registro imutável de um asset morto, usado para aprendizado
type GraveyardRecord struct {
	CampaignName string    `json:"campaign_name"`
	DateKilled   string    `json:"date_killed"`
	AssetID      string    `json:"asset_id"`
	AssetText    string    `json:"asset_text"`
	AssetType    AssetType `json:"asset_type"`
	Impressions  int       `json:"impressions"`
	Clicks       int       `json:"clicks"`
	CTR          float64   `json:"ctr"`
	Conversions  float64   `json:"conversions"`
	Cost         float64   `json:"cost"`
	KillReason   string    `json:"kill_reason"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToGraveyard converte um asset flagado em registro de graveyard
func (a *AssetRecord) ToGraveyard(dateKilled string) *GraveyardRecord {
	reason := a.KillReason
	if reason == "" {
		reason = "unknown"
	}

	return &GraveyardRecord{
		CampaignName: a.CampaignName,
		DateKilled:   dateKilled,
		AssetID:      a.AssetID,
		AssetText:    a.AssetText,
		AssetType:    a.AssetType,
		Impressions:  a.Impressions,
		Clicks:       a.Clicks,
		CTR:          a.CTR,
		Conversions:  a.Conversions,
		Cost:         a.Cost,
		KillReason:   reason,
	}
}

// GenerateAssetID gera um ID determinístico a partir do texto e da campanha.
// Execuções repetidas convergem sempre para o mesmo ID.
func GenerateAssetID(assetText, campaignName string) string {
	raw := fmt.Sprintf("%s|%s", assetText, campaignName)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])[:16]
}

// NormalizeAssetType converte o field_type da API para o enum interno
func NormalizeAssetType(fieldType string) AssetType {
	return AssetType(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(fieldType), " ", "_")))
}
