// Package export gera arquivos CSV compatíveis com o Google Ads Editor.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
	"github.com/risingfishing/pmax-optimizer-api/pkg/timeutil"
)

var csvHeaders = []string{
	"Action",
	"Campaign",
	"Ad Group",
	"Asset Group",
	"Asset Type",
	"Asset Text",
	"Status",
	"Labels",
}

// Tipos internos no formato do Google Ads Editor
var editorTypeMap = map[domain.AssetType]string{
	domain.AssetTypeHeadline:     "Headline",
	domain.AssetTypeLongHeadline: "Long headline",
	domain.AssetTypeDescription:  "Description",
}

type CSVBuilder struct{}

func NewCSVBuilder() *CSVBuilder {
	return &CSVBuilder{}
}

// BuildGoogleAdsCSV gera as linhas do CSV de substituição: para cada asset
// flagado, uma linha PAUSE para o atual e uma linha ADD para a substituta
// quando ela existir. A primeira linha é o cabeçalho.
func (b *CSVBuilder) BuildGoogleAdsCSV(
	flaggedAssets []*domain.AssetRecord,
	replacements map[string]*domain.Replacement,
	campaignName string,
	assetGroup string,
) [][]string {
	today := strings.ReplaceAll(timeutil.Today(), "-", "_")

	rows := [][]string{csvHeaders}

	for _, asset := range flaggedAssets {
		assetType, ok := editorTypeMap[asset.AssetType]
		if !ok {
			assetType = "Headline"
		}

		rows = append(rows, formatRow(
			"PAUSE", campaignName, assetGroup, assetType,
			asset.AssetText, "PAUSED", fmt.Sprintf("killed_%s", today),
		))

		if replacement := replacements[asset.AssetID]; replacement != nil {
			rows = append(rows, formatRow(
				"ADD", campaignName, assetGroup, assetType,
				replacement.Text, "ENABLED", fmt.Sprintf("added_%s", today),
			))
		}
	}

	logrus.WithFields(logrus.Fields{
		"campaign": campaignName,
		"rows":     len(rows) - 1,
	}).Info("csv_builder: built rows for campaign")

	return rows
}

// Ad Group fica vazio no Performance Max
func formatRow(action, campaign, assetGroup, assetType, text, status, label string) []string {
	return []string{action, campaign, "", assetGroup, assetType, text, status, label}
}

// SaveCSV grava as linhas em {campaignSlug}_replacements_{YYYY_MM_DD}.csv e
// retorna o caminho do arquivo
func (b *CSVBuilder) SaveCSV(rows [][]string, campaignSlug, outputDir string) (string, error) {
	today := strings.ReplaceAll(timeutil.Today(), "-", "_")
	filename := fmt.Sprintf("%s_replacements_%s.csv", campaignSlug, today)
	filepath := filepath.Join(outputDir, filename)

	file, err := os.Create(filepath)
	if err != nil {
		return "", fmt.Errorf("erro ao criar o arquivo CSV: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return "", fmt.Errorf("erro ao gravar o CSV: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"path": filepath,
		"rows": len(rows) - 1,
	}).Info("csv_builder: saved CSV")

	return filepath, nil
}

// RowsToString serializa as linhas como string CSV
func (b *CSVBuilder) RowsToString(rows [][]string) (string, error) {
	var buffer bytes.Buffer

	writer := csv.NewWriter(&buffer)
	if err := writer.WriteAll(rows); err != nil {
		return "", fmt.Errorf("erro ao serializar o CSV: %w", err)
	}

	return buffer.String(), nil
}
