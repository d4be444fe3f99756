// Package auditing implementa a auditoria de saúde das campanhas PMax:
// vinte checks em cinco categorias, score 0-100 e nota por campanha.
package auditing

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/infrastructure/repository"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
	"github.com/risingfishing/pmax-optimizer-api/internal/season"
	"github.com/risingfishing/pmax-optimizer-api/pkg/timeutil"
)

// SummaryGenerator define a interface para gerar o resumo executivo da
// auditoria via LLM. Pode ser nil; nesse caso o fallback determinístico é usado.
type SummaryGenerator interface {
	SummarizeAudit(ctx context.Context, campaigns map[string]*domain.CampaignAudit) (string, []string, error)
}

// Dedução de score por severidade
var severityDeductions = map[domain.FindingSeverity]int{
	domain.FindingCritical: 15,
	domain.FindingWarning:  5,
	domain.FindingInfo:     0,
	domain.FindingPass:     0,
}

// Faixas de nota, verificadas em ordem, primeira que couber vence
var gradeScale = []struct {
	threshold int
	letter    string
}{
	{90, "A"},
	{75, "B"},
	{60, "C"},
	{40, "D"},
	{0, "F"},
}

// Auditor roda os checks de saúde das campanhas e consolida o relatório
type Auditor struct {
	Month          int
	Season         season.Name
	seasonalBudget season.Budget

	campaignConfigRepo repository.CampaignConfigRepository
	budgetRepo         repository.BudgetPerformanceRepository
	assetRepo          repository.AssetPerformanceRepository
	graveyardRepo      repository.GraveyardRepository
	imageRepo          repository.ImageRegistryRepository
	summarizer         SummaryGenerator
}

// NewAuditor cria um auditor para o mês informado; month=0 usa o mês corrente
// em Mountain Time
func NewAuditor(
	month int,
	campaignConfigRepo repository.CampaignConfigRepository,
	budgetRepo repository.BudgetPerformanceRepository,
	assetRepo repository.AssetPerformanceRepository,
	graveyardRepo repository.GraveyardRepository,
	imageRepo repository.ImageRegistryRepository,
	summarizer SummaryGenerator,
) (*Auditor, error) {
	if month == 0 {
		month = timeutil.CurrentMonth()
	}

	name, err := season.SeasonFor(month)
	if err != nil {
		return nil, err
	}

	budget, err := season.BudgetFor(month)
	if err != nil {
		return nil, err
	}

	return &Auditor{
		Month:              month,
		Season:             name,
		seasonalBudget:     budget,
		campaignConfigRepo: campaignConfigRepo,
		budgetRepo:         budgetRepo,
		assetRepo:          assetRepo,
		graveyardRepo:      graveyardRepo,
		imageRepo:          imageRepo,
		summarizer:         summarizer,
	}, nil
}

// AuditAll roda a auditoria de todas as campanhas configuradas e gera o
// resumo executivo consolidado
func (a *Auditor) AuditAll(ctx context.Context) (*domain.AuditReport, error) {
	configs, err := a.campaignConfigRepo.GetAll()
	if err != nil {
		return nil, err
	}

	campaigns := make(map[string]*domain.CampaignAudit, len(configs))
	for _, config := range configs {
		campaigns[config.CampaignName] = a.AuditCampaign(config)
	}

	summary, recommendations := a.generateSummary(ctx, campaigns)

	return &domain.AuditReport{
		Campaigns:       campaigns,
		Summary:         summary,
		Recommendations: recommendations,
		Season:          string(a.Season),
		Month:           a.Month,
	}, nil
}

// AuditCampaign roda os vinte checks de uma campanha
func (a *Auditor) AuditCampaign(config *domain.CampaignConfig) *domain.CampaignAudit {
	findings := make([]domain.Finding, 0, 20)
	findings = append(findings, a.checkConfigCompleteness(config)...)
	findings = append(findings, a.checkPlatformAlignment(config)...)
	findings = append(findings, a.checkPerformanceTrends(config.CampaignName)...)
	findings = append(findings, a.checkAssetHealth(config.CampaignName)...)
	findings = append(findings, a.checkImageComposition(config)...)

	score, grade := calculateScore(findings)

	logrus.WithFields(logrus.Fields{
		"campaign": config.CampaignName,
		"score":    score,
		"grade":    grade,
		"findings": len(findings),
	}).Info("Auditoria de campanha concluída")

	return &domain.CampaignAudit{
		CampaignName: config.CampaignName,
		HealthScore:  score,
		Grade:        grade,
		Findings:     findings,
	}
}

// calculateScore converte findings em score (0-100) e nota
func calculateScore(findings []domain.Finding) (int, string) {
	score := 100
	for _, finding := range findings {
		score -= severityDeductions[finding.Severity]
	}

	if score < 0 {
		score = 0
	}

	grade := "F"
	for _, scale := range gradeScale {
		if score >= scale.threshold {
			grade = scale.letter
			break
		}
	}

	return score, grade
}
