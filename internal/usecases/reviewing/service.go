package reviewing

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/infrastructure/export"
	"github.com/risingfishing/pmax-optimizer-api/infrastructure/repository"
	"github.com/risingfishing/pmax-optimizer-api/internal/config"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/analyzing"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/budgeting"
	"github.com/risingfishing/pmax-optimizer-api/pkg/timeutil"
)

// Result resume uma execução da revisão semanal
type Result struct {
	Season                string                         `json:"season"`
	Month                 int                            `json:"month"`
	PreviewMode           bool                           `json:"preview_mode"`
	CampaignsProcessed    int                            `json:"campaigns_processed"`
	AssetsFlagged         int                            `json:"assets_flagged"`
	ReplacementsGenerated int                            `json:"replacements_generated"`
	CSVFiles              []string                       `json:"csv_files"`
	EmergencyAlerts       int                            `json:"emergency_alerts"`
	BudgetRecommendations map[string]domain.BudgetAction `json:"budget_recommendations"`
}

// Service orquestra a revisão semanal: coleta, persistência, flagging,
// geração de substitutas, orçamento, emergências, CSV e notificação
type Service struct {
	cfg        *config.Config
	campaigns  CampaignLoader
	ads        AdsCollector
	revenue    RevenueCollector
	generator  ReplacementGenerator
	notifier   ReviewNotifier
	csvBuilder *export.CSVBuilder
	csvDir     string

	assetRepo     repository.AssetPerformanceRepository
	graveyardRepo repository.GraveyardRepository
	budgetRepo    repository.BudgetPerformanceRepository
}

func NewService(
	cfg *config.Config,
	campaigns CampaignLoader,
	ads AdsCollector,
	revenue RevenueCollector,
	generator ReplacementGenerator,
	notifier ReviewNotifier,
	assetRepo repository.AssetPerformanceRepository,
	graveyardRepo repository.GraveyardRepository,
	budgetRepo repository.BudgetPerformanceRepository,
) *Service {
	return &Service{
		cfg:           cfg,
		campaigns:     campaigns,
		ads:           ads,
		revenue:       revenue,
		generator:     generator,
		notifier:      notifier,
		csvBuilder:    export.NewCSVBuilder(),
		csvDir:        "/tmp",
		assetRepo:     assetRepo,
		graveyardRepo: graveyardRepo,
		budgetRepo:    budgetRepo,
	}
}

// Run executa a revisão semanal completa para o mês corrente. Em previewMode
// a análise roda normalmente mas nada é morto, gerado ou exportado.
func (s *Service) Run(ctx context.Context, previewMode bool) (*Result, error) {
	return s.RunForMonth(ctx, 0, previewMode)
}

// RunForMonth executa a revisão para um mês específico; month=0 usa o mês
// corrente em Mountain Time
func (s *Service) RunForMonth(ctx context.Context, month int, previewMode bool) (*Result, error) {
	if month == 0 {
		month = timeutil.CurrentMonth()
	}

	analyzer, err := analyzing.NewAnalyzer(month)
	if err != nil {
		return nil, err
	}

	engine, err := budgeting.NewEngine(month)
	if err != nil {
		return nil, err
	}

	thresholds := analyzer.Thresholds()
	assetChangesEnabled := thresholds.AssetChangesEnabled

	logrus.WithFields(logrus.Fields{
		"season":        analyzer.Season,
		"month":         month,
		"asset_changes": assetChangesEnabled,
		"preview":       previewMode,
	}).Info("weekly_review: started")

	configs, err := s.campaigns.LoadCampaigns()
	if err != nil {
		s.notifyError(err)
		return nil, err
	}

	today := timeutil.Today()
	lookbackStart := timeutil.LookbackDate(thresholds.LookbackDays)

	result := &Result{
		Season:                string(analyzer.Season),
		Month:                 month,
		PreviewMode:           previewMode,
		CSVFiles:              make([]string, 0),
		BudgetRecommendations: make(map[string]domain.BudgetAction),
	}

	allFlagged := make([]*domain.AssetRecord, 0)
	allReplacements := make(map[string]*domain.Replacement)
	allBudgets := make(map[string]*domain.BudgetSnapshot)
	allAlerts := make([]domain.EmergencyAlert, 0)

	for _, campaign := range configs {
		if campaign.CampaignID == "" {
			logrus.WithField("campaign", campaign.CampaignName).
				Warn("weekly_review: no campaign_id, skipping")
			continue
		}

		settings, err := s.ads.GetCampaignSettings(campaign.CampaignID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign": campaign.CampaignName,
				"error":    err.Error(),
			}).Error("weekly_review: failed to get campaign settings, skipping")
			continue
		}

		if settings.CampaignStatus == "PAUSED" {
			logrus.WithField("campaign", campaign.CampaignName).
				Info("weekly_review: campaign is PAUSED, skipping")
			continue
		}

		logrus.WithField("campaign", campaign.CampaignName).Info("weekly_review: processing campaign")

		assets, err := s.ads.CollectForCampaign(
			campaign.CampaignName, campaign.CampaignID, lookbackStart, today,
		)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign": campaign.CampaignName,
				"error":    err.Error(),
			}).Error("weekly_review: collection failed, skipping campaign")
			continue
		}

		images, err := s.ads.CollectImagesForCampaign(
			campaign.CampaignName, campaign.CampaignID, lookbackStart, today,
		)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign": campaign.CampaignName,
				"error":    err.Error(),
			}).Warn("weekly_review: image collection failed, continuing without images")
			images = nil
		}

		for _, asset := range assets {
			asset.ReportDate = today
		}
		for _, image := range images {
			image.ReportDate = today
		}

		if err := s.assetRepo.SaveRecords(assets); err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign": campaign.CampaignName,
				"error":    err.Error(),
			}).Error("weekly_review: failed to save asset records")
		}

		if len(images) > 0 {
			if err := s.assetRepo.SaveRecords(images); err != nil {
				logrus.WithFields(logrus.Fields{
					"campaign": campaign.CampaignName,
					"error":    err.Error(),
				}).Error("weekly_review: failed to save image records")
			}
		}

		// Flagging roda nas estações ativas, ou em qualquer estação no preview.
		// Imagens são flagadas com a mesma análise, mas nunca ganham substituta.
		var flaggedText []*domain.AssetRecord
		var flaggedImages []*domain.AssetRecord
		var replacements map[string]*domain.Replacement
		var graveyard []*domain.GraveyardRecord

		if assetChangesEnabled || previewMode {
			graveyard, err = s.graveyardRepo.ListByCampaign(campaign.CampaignName)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"campaign": campaign.CampaignName,
					"error":    err.Error(),
				}).Warn("weekly_review: failed to load graveyard, continuing without it")
				graveyard = nil
			}

			flaggedText = analyzer.FlagUnderperformers(assets, graveyard)
			flaggedImages = analyzer.FlagUnderperformers(images, graveyard)
			allFlagged = append(allFlagged, flaggedText...)
			allFlagged = append(allFlagged, flaggedImages...)

			logrus.WithFields(logrus.Fields{
				"campaign": campaign.CampaignName,
				"flagged":  len(flaggedText),
				"images":   len(flaggedImages),
			}).Info("weekly_review: flagged assets")

			if assetChangesEnabled && !previewMode && len(flaggedText) > 0 && s.generator != nil {
				replacements = s.generator.GenerateReplacements(ctx, flaggedText, graveyard)
				for id, replacement := range replacements {
					allReplacements[id] = replacement
				}
			}
		}

		snapshot, alerts := s.reviewBudget(campaign, engine, lookbackStart, today, thresholds.LookbackDays)
		if snapshot != nil {
			allBudgets[campaign.CampaignName] = snapshot
			result.BudgetRecommendations[campaign.CampaignName] = snapshot.Recommendation
		}
		allAlerts = append(allAlerts, alerts...)

		// Efeitos permanentes só fora do preview
		if assetChangesEnabled && !previewMode {
			s.buryFlagged(flaggedText, replacements, today)
			s.buryFlagged(flaggedImages, nil, today)

			// O CSV de upload só carrega texto; troca de imagem é manual
			if len(flaggedText) > 0 {
				rows := s.csvBuilder.BuildGoogleAdsCSV(
					flaggedText, replacements, campaign.CampaignName, campaign.AssetGroup,
				)
				path, err := s.csvBuilder.SaveCSV(rows, campaign.Slug, s.csvDir)
				if err != nil {
					logrus.WithError(err).Error("weekly_review: failed to save CSV")
				} else {
					result.CSVFiles = append(result.CSVFiles, path)
				}
			}
		}

		result.CampaignsProcessed++
	}

	if len(allAlerts) > 0 {
		if err := s.notifier.SendEmergencyAlerts(allAlerts); err != nil {
			logrus.WithError(err).Error("weekly_review: failed to send emergency alerts")
		}
	}

	if err := s.notifier.SendReview(
		month, allFlagged, allReplacements, allBudgets, allAlerts,
		assetChangesEnabled, previewMode,
	); err != nil {
		logrus.WithError(err).Error("weekly_review: failed to send review")
	}

	result.AssetsFlagged = len(allFlagged)
	result.ReplacementsGenerated = len(allReplacements)
	result.EmergencyAlerts = len(allAlerts)

	logrus.WithFields(logrus.Fields{
		"campaigns":    result.CampaignsProcessed,
		"flagged":      result.AssetsFlagged,
		"replacements": result.ReplacementsGenerated,
		"alerts":       result.EmergencyAlerts,
	}).Info("weekly_review: finished")

	return result, nil
}

// reviewBudget monta o snapshot semanal de orçamento da campanha com receita
// real do Shopify, grava e roda os checks de emergência
func (s *Service) reviewBudget(
	campaign *domain.CampaignConfig,
	engine *budgeting.Engine,
	lookbackStart string,
	today string,
	lookbackDays int,
) (*domain.BudgetSnapshot, []domain.EmergencyAlert) {
	metrics, err := s.ads.GetCampaignMetrics(campaign.CampaignID, lookbackStart, today)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign": campaign.CampaignName,
			"error":    err.Error(),
		}).Error("weekly_review: failed to get campaign metrics")
		return nil, nil
	}

	actualDailyAvg := 0.0
	if lookbackDays > 0 {
		actualDailyAvg = metrics.TotalSpend / float64(lookbackDays)
	}

	dailyBudgetTarget, err := s.ads.GetCampaignBudget(campaign.CampaignID)
	if err != nil || dailyBudgetTarget <= 0 {
		dailyBudgetTarget = engine.SeasonBudget().RecommendedDaily
		logrus.WithFields(logrus.Fields{
			"campaign": campaign.CampaignName,
			"fallback": dailyBudgetTarget,
		}).Warn("weekly_review: using seasonal budget fallback")
	}

	targetROAS := engine.SeasonBudget().TargetROAS

	utilization := 0.0
	if dailyBudgetTarget > 0 {
		utilization = actualDailyAvg / dailyBudgetTarget * 100
	}

	revenue, err := s.revenue.GetGoogleAttributedRevenue(lookbackStart, today, campaign.CampaignName)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign": campaign.CampaignName,
			"error":    err.Error(),
		}).Error("weekly_review: failed to get shopify revenue")
		return nil, nil
	}

	roas := 0.0
	if metrics.TotalSpend > 0 {
		roas = revenue.TotalRevenue / metrics.TotalSpend * 100
	}

	roas7d := s.windowROAS(campaign, 7, today)
	roas14d := s.windowROAS(campaign, 14, today)

	recommendation := engine.Recommend(dailyBudgetTarget, actualDailyAvg, roas, targetROAS)

	snapshot := &domain.BudgetSnapshot{
		CampaignName:             campaign.CampaignName,
		WeekEnding:               today,
		WeekStarting:             lookbackStart,
		Season:                   string(engine.Season),
		LookbackDays:             lookbackDays,
		DailyBudgetTarget:        dailyBudgetTarget,
		ActualDailySpendAvg:      round2(actualDailyAvg),
		TotalSpend:               round2(metrics.TotalSpend),
		TotalRevenue:             round2(revenue.TotalRevenue),
		Orders:                   revenue.OrderCount,
		CampaignCTR:              metrics.CTR,
		CampaignClicks:           metrics.Clicks,
		CampaignImpressions:      metrics.Impressions,
		ROASPercent:              round1(roas),
		ROAS7dPercent:            round1(roas7d),
		ROAS14dPercent:           round1(roas14d),
		TargetROASPercent:        targetROAS,
		BudgetUtilizationPercent: round1(utilization),
		Recommendation:           recommendation.Action,
		RecommendedDailyBudget:   recommendation.RecommendedBudget,
		RecommendationReason:     recommendation.Reason,
		MarketCeilingDetected:    recommendation.MarketCeilingDetected,
	}

	if err := s.budgetRepo.SaveSnapshot(snapshot); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign": campaign.CampaignName,
			"error":    err.Error(),
		}).Error("weekly_review: failed to save budget snapshot")
	}

	history, err := s.budgetRepo.GetHistory(campaign.CampaignName, 4)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign": campaign.CampaignName,
			"error":    err.Error(),
		}).Warn("weekly_review: failed to load budget history")
		history = nil
	}

	return snapshot, engine.CheckEmergencies(snapshot, history)
}

// windowROAS calcula o ROAS de uma janela curta (7 ou 14 dias)
func (s *Service) windowROAS(campaign *domain.CampaignConfig, days int, today string) float64 {
	start := timeutil.LookbackDate(days)

	metrics, err := s.ads.GetCampaignMetrics(campaign.CampaignID, start, today)
	if err != nil || metrics.TotalSpend <= 0 {
		return 0
	}

	revenue, err := s.revenue.GetGoogleAttributedRevenue(start, today, campaign.CampaignName)
	if err != nil {
		return 0
	}

	return revenue.TotalRevenue / metrics.TotalSpend * 100
}

// buryFlagged move os assets flagados para o graveyard e marca os registros
// de performance como mortos, anotando a substituta quando houver
func (s *Service) buryFlagged(flagged []*domain.AssetRecord, replacements map[string]*domain.Replacement, today string) {
	for _, asset := range flagged {
		if err := s.graveyardRepo.Save(asset.ToGraveyard(today)); err != nil {
			logrus.WithFields(logrus.Fields{
				"asset": asset.AssetText,
				"error": err.Error(),
			}).Error("weekly_review: failed to save to graveyard")
			continue
		}

		replacedBy := ""
		if replacement, ok := replacements[asset.AssetID]; ok && replacement != nil {
			replacedBy = replacement.Text
		}

		if err := s.assetRepo.MarkKilled(asset.AssetID, asset.ReportDate, today, asset.KillReason, asset.Diagnosis, replacedBy); err != nil {
			logrus.WithFields(logrus.Fields{
				"asset": asset.AssetText,
				"error": err.Error(),
			}).Error("weekly_review: failed to mark asset as killed")
		}
	}
}

func (s *Service) notifyError(err error) {
	if s.notifier == nil {
		return
	}
	if sendErr := s.notifier.SendError(err.Error(), ""); sendErr != nil {
		logrus.WithError(sendErr).Error("weekly_review: failed to notify error")
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
