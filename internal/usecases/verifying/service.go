// Package verifying confere se as recomendações da última revisão semanal
// foram de fato aplicadas no Google Ads: pausas executadas, substitutas
// adicionadas e edições manuais detectadas por similaridade.
package verifying

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/infrastructure/repository"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
	"github.com/risingfishing/pmax-optimizer-api/pkg/timeutil"
)

// Janela curta: só interessa o que está vivo agora, não a performance
const liveLookbackDays = 7

// A partir deste overlap de palavras uma substituta editada à mão ainda
// conta como adicionada
const manualEditSimilarity = 0.6

const noPendingMessage = "📋 *Upload Verification*\n\nNo pending verifications this week."

// ManualEdit registra uma substituta que subiu com texto editado
type ManualEdit struct {
	Expected string `json:"expected"`
	Found    string `json:"found"`
}

// Report é o resultado da verificação de uma campanha
type Report struct {
	CampaignName         string       `json:"campaign_name"`
	TotalRecommendations int          `json:"total_recommendations"`
	PausedSuccessfully   int          `json:"paused_successfully"`
	AddedSuccessfully    int          `json:"added_successfully"`
	PausedFailed         []string     `json:"paused_failed"`
	AddedFailed          []string     `json:"added_failed"`
	ManualEdits          []ManualEdit `json:"manual_edits_detected"`
}

// Result resume uma execução completa da verificação
type Result struct {
	CampaignsVerified int       `json:"campaigns_verified"`
	Reports           []*Report `json:"reports"`
}

type Service struct {
	campaigns CampaignLoader
	ads       AdsCollector
	notifier  VerificationNotifier
	assetRepo repository.AssetPerformanceRepository
}

func NewService(
	campaigns CampaignLoader,
	ads AdsCollector,
	notifier VerificationNotifier,
	assetRepo repository.AssetPerformanceRepository,
) *Service {
	return &Service{
		campaigns: campaigns,
		ads:       ads,
		notifier:  notifier,
		assetRepo: assetRepo,
	}
}

// Run verifica todas as campanhas configuradas e entrega o relatório.
// Campanhas sem nada pendente são puladas; sem pendência nenhuma, a
// notificação diz isso explicitamente.
func (s *Service) Run() (*Result, error) {
	logrus.Info("verification: started")

	configs, err := s.campaigns.LoadCampaigns()
	if err != nil {
		s.notifyError(err)
		return nil, err
	}

	result := &Result{Reports: make([]*Report, 0)}
	formatted := make([]string, 0)

	for _, campaign := range configs {
		if campaign.CampaignID == "" {
			logrus.WithField("campaign", campaign.CampaignName).
				Warn("verification: no campaign_id, skipping")
			continue
		}

		report, err := s.VerifyCampaign(campaign)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign": campaign.CampaignName,
				"error":    err.Error(),
			}).Error("verification: campaign failed, skipping")
			continue
		}
		if report == nil {
			continue
		}

		result.Reports = append(result.Reports, report)
		result.CampaignsVerified++
		formatted = append(formatted, FormatReport(report))

		logrus.WithFields(logrus.Fields{
			"campaign": campaign.CampaignName,
			"paused":   report.PausedSuccessfully,
			"added":    report.AddedSuccessfully,
			"failed":   len(report.PausedFailed) + len(report.AddedFailed),
		}).Info("verification: campaign verified")
	}

	message := noPendingMessage
	if len(formatted) > 0 {
		message = strings.Join(formatted, "\n\n")
	}

	if err := s.notifier.SendVerification(message); err != nil {
		logrus.WithError(err).Error("verification: failed to send report")
	}

	logrus.WithField("campaigns", result.CampaignsVerified).Info("verification: finished")
	return result, nil
}

// VerifyCampaign compara os registros flagados da última revisão com o que
// está vivo na plataforma. Retorna nil quando não há nada a verificar.
func (s *Service) VerifyCampaign(campaign *domain.CampaignConfig) (*Report, error) {
	records, err := s.assetRepo.GetLatestByCampaign(campaign.CampaignName)
	if err != nil {
		return nil, err
	}

	flagged := make([]*domain.AssetRecord, 0)
	for _, record := range records {
		switch record.Status {
		case domain.AssetStatusKilled, domain.AssetStatusPaused, domain.AssetStatusFlagged:
			if record.KillReason != "" {
				flagged = append(flagged, record)
			}
		}
	}

	if len(flagged) == 0 {
		logrus.WithField("campaign", campaign.CampaignName).
			Info("verification: no flagged assets to verify")
		return nil, nil
	}

	replacements := make(map[string]*domain.Replacement)
	for _, record := range flagged {
		if record.ReplacedBy != "" {
			replacements[record.AssetID] = &domain.Replacement{
				AssetID:  record.AssetID,
				Text:     record.ReplacedBy,
				Strategy: record.ReplacementReason,
			}
		}
	}

	live, err := s.liveAssets(campaign)
	if err != nil {
		return nil, err
	}

	report := s.compare(campaign.CampaignName, live, flagged, replacements)
	s.persistResults(report, flagged)

	return report, nil
}

// liveAssets coleta os assets vivos dos últimos 7 dias, indexados por texto
func (s *Service) liveAssets(campaign *domain.CampaignConfig) (map[string]*domain.AssetRecord, error) {
	assets, err := s.ads.CollectForCampaign(
		campaign.CampaignName,
		campaign.CampaignID,
		timeutil.LookbackDate(liveLookbackDays),
		timeutil.Today(),
	)
	if err != nil {
		return nil, err
	}

	live := make(map[string]*domain.AssetRecord, len(assets))
	for _, asset := range assets {
		live[asset.AssetText] = asset
	}
	return live, nil
}

func (s *Service) compare(
	campaignName string,
	live map[string]*domain.AssetRecord,
	flagged []*domain.AssetRecord,
	replacements map[string]*domain.Replacement,
) *Report {
	report := &Report{
		CampaignName:         campaignName,
		TotalRecommendations: len(flagged),
		PausedFailed:         make([]string, 0),
		AddedFailed:          make([]string, 0),
		ManualEdits:          make([]ManualEdit, 0),
	}

	for _, asset := range flagged {
		// Texto ainda vivo significa que a pausa não foi aplicada
		if _, stillLive := live[asset.AssetText]; stillLive {
			report.PausedFailed = append(report.PausedFailed, asset.AssetText)
		} else {
			report.PausedSuccessfully++
		}

		replacement := replacements[asset.AssetID]
		if replacement == nil {
			continue
		}

		if _, added := live[replacement.Text]; added {
			report.AddedSuccessfully++
			continue
		}

		if found := findSimilarAsset(replacement.Text, live); found != "" {
			report.ManualEdits = append(report.ManualEdits, ManualEdit{
				Expected: replacement.Text,
				Found:    found,
			})
			report.AddedSuccessfully++
			continue
		}

		report.AddedFailed = append(report.AddedFailed, replacement.Text)
	}

	return report
}

// persistResults marca como paused os assets cuja pausa foi confirmada
func (s *Service) persistResults(report *Report, flagged []*domain.AssetRecord) {
	failed := make(map[string]bool, len(report.PausedFailed))
	for _, text := range report.PausedFailed {
		failed[text] = true
	}

	for _, asset := range flagged {
		if failed[asset.AssetText] {
			continue
		}

		err := s.assetRepo.UpdateStatus(asset.AssetID, asset.ReportDate, domain.AssetStatusPaused, "")
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"asset": asset.AssetText,
				"error": err.Error(),
			}).Error("verification: failed to update asset status")
		}
	}

	logrus.WithFields(logrus.Fields{
		"paused":       report.PausedSuccessfully,
		"added":        report.AddedSuccessfully,
		"manual_edits": len(report.ManualEdits),
	}).Info("verification: database updated")
}

// FormatReport monta o relatório legível de uma campanha
func FormatReport(report *Report) string {
	lines := []string{
		"📋 *Upload Verification Report*",
		"",
		fmt.Sprintf("Total recommendations: %d", report.TotalRecommendations),
		fmt.Sprintf("Paused successfully: %d", report.PausedSuccessfully),
		fmt.Sprintf("Added successfully: %d", report.AddedSuccessfully),
	}

	if len(report.PausedFailed) > 0 {
		lines = append(lines, "", "⚠️ *Not paused (still active):*")
		for _, text := range report.PausedFailed {
			lines = append(lines, fmt.Sprintf("  - %s", text))
		}
	}

	if len(report.AddedFailed) > 0 {
		lines = append(lines, "", "⚠️ *Not added:*")
		for _, text := range report.AddedFailed {
			lines = append(lines, fmt.Sprintf("  - %s", text))
		}
	}

	if len(report.ManualEdits) > 0 {
		lines = append(lines, "", "✏️ *Manual edits detected:*")
		for _, edit := range report.ManualEdits {
			lines = append(lines,
				fmt.Sprintf("  - Expected: %q", edit.Expected),
				fmt.Sprintf("    Found: %q", edit.Found),
			)
		}
	}

	if len(report.PausedFailed) == 0 && len(report.AddedFailed) == 0 {
		lines = append(lines, "", "✅ All changes applied successfully!")
	} else {
		lines = append(lines, "", "⚠️ Some changes were not applied. Please review and upload manually.")
	}

	return strings.Join(lines, "\n")
}

// findSimilarAsset procura um asset vivo parecido com o texto esperado.
// Overlap simples de palavras detecta substitutas editadas antes do upload.
func findSimilarAsset(expected string, live map[string]*domain.AssetRecord) string {
	expectedWords := wordSet(expected)
	if len(expectedWords) == 0 {
		return ""
	}

	for liveText := range live {
		liveWords := wordSet(liveText)
		if len(liveWords) == 0 {
			continue
		}

		overlap := 0
		for word := range expectedWords {
			if liveWords[word] {
				overlap++
			}
		}

		if float64(overlap)/float64(len(expectedWords)) >= manualEditSimilarity {
			return liveText
		}
	}

	return ""
}

func wordSet(text string) map[string]bool {
	words := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		words[word] = true
	}
	return words
}

func (s *Service) notifyError(err error) {
	if s.notifier == nil {
		return
	}
	if sendErr := s.notifier.SendError(err.Error(), ""); sendErr != nil {
		logrus.WithError(sendErr).Error("verification: failed to notify error")
	}
}
