package export

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
	"github.com/risingfishing/pmax-optimizer-api/pkg/timeutil"
)

func TestBuildGoogleAdsCSV_PauseEAdd(t *testing.T) {
	builder := NewCSVBuilder()

	flagged := []*domain.AssetRecord{
		{
			AssetID:   "abc123",
			AssetText: "Innovative Fishing Nets",
			AssetType: domain.AssetTypeHeadline,
		},
		{
			AssetID:   "def456",
			AssetText: "Premier fly fishing destination gear",
			AssetType: domain.AssetTypeLongHeadline,
		},
	}
	replacements := map[string]*domain.Replacement{
		"abc123": {AssetID: "abc123", Text: "USA Made Fly Fishing Nets"},
	}

	rows := builder.BuildGoogleAdsCSV(flagged, replacements, "Core Brand", "Core Brand")

	// Cabeçalho + PAUSE/ADD do primeiro + só PAUSE do segundo
	require.Len(t, rows, 4)
	assert.Equal(t, csvHeaders, rows[0])

	today := strings.ReplaceAll(timeutil.Today(), "-", "_")

	assert.Equal(t, []string{
		"PAUSE", "Core Brand", "", "Core Brand", "Headline",
		"Innovative Fishing Nets", "PAUSED", fmt.Sprintf("killed_%s", today),
	}, rows[1])

	assert.Equal(t, []string{
		"ADD", "Core Brand", "", "Core Brand", "Headline",
		"USA Made Fly Fishing Nets", "ENABLED", fmt.Sprintf("added_%s", today),
	}, rows[2])

	assert.Equal(t, "PAUSE", rows[3][0])
	assert.Equal(t, "Long headline", rows[3][4])
}

func TestSaveCSV_NomeDoArquivo(t *testing.T) {
	builder := NewCSVBuilder()
	rows := [][]string{csvHeaders}

	path, err := builder.SaveCSV(rows, "core_brand", t.TempDir())
	require.NoError(t, err)

	today := strings.ReplaceAll(timeutil.Today(), "-", "_")
	assert.True(t, strings.HasSuffix(path, fmt.Sprintf("core_brand_replacements_%s.csv", today)))
}

func TestRowsToString(t *testing.T) {
	builder := NewCSVBuilder()

	out, err := builder.RowsToString([][]string{
		{"Action", "Campaign"},
		{"PAUSE", "Core Brand"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Action,Campaign\nPAUSE,Core Brand\n", out)
}
