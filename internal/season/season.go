// Package season define a tabela de políticas sazonais do otimizador.
// A tabela é estática e imutável: cada mês do ano pertence a exatamente
// uma estação, e cada estação carrega seus thresholds e orçamentos.
package season

import (
	"github.com/pkg/errors"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

type Name string

const (
	DeepWinter     Name = "deep_winter"
	LowSeason      Name = "low_season"
	ShoulderSeason Name = "shoulder_season"
	PeakSeason     Name = "peak_season"
)

// ErrNoSeason indica um mês sem estação mapeada. É um erro de configuração
// fatal (bug na tabela), nunca um erro recuperável em runtime.
var ErrNoSeason = errors.New("nenhuma estação definida para o mês")

// Policy agrupa os thresholds de flagging de uma estação
type Policy struct {
	Months                      []int
	MinImpressions              int
	MinCTRByType                map[domain.AssetType]float64
	LookbackDays                int
	NewAssetPatienceDays        int
	NewAssetPatienceImpressions int
	AssetChangesEnabled         bool
}

// MinCTRFor retorna o piso de CTR do tipo. Tipos sem piso configurado
// nunca são mortos.
func (p Policy) MinCTRFor(t domain.AssetType) (float64, bool) {
	minCTR, ok := p.MinCTRByType[t]
	return minCTR, ok
}

// Budget agrupa a política de orçamento de uma estação.
// TargetROAS é percentual: 200.0 significa 200%.
type Budget struct {
	RecommendedDaily float64
	MaxDaily         float64
	TargetROAS       float64
	Notes            string
}

var policies = map[Name]Policy{
	// Off-season: flagging roda em modo preview, sem mudanças de asset
	DeepWinter: {
		Months:         []int{1, 2},
		MinImpressions: 150,
		MinCTRByType: map[domain.AssetType]float64{
			domain.AssetTypeHeadline:               2.0,
			domain.AssetTypeLongHeadline:           1.0,
			domain.AssetTypeDescription:            3.0,
			domain.AssetTypeMarketingImage:         1.0,
			domain.AssetTypeSquareMarketingImage:   1.0,
			domain.AssetTypePortraitMarketingImage: 1.0,
		},
		LookbackDays:                60,
		NewAssetPatienceDays:        60,
		NewAssetPatienceImpressions: 500,
		AssetChangesEnabled:         false,
	},
	LowSeason: {
		Months:         []int{11, 12},
		MinImpressions: 150,
		MinCTRByType: map[domain.AssetType]float64{
			domain.AssetTypeHeadline:               2.0,
			domain.AssetTypeLongHeadline:           1.0,
			domain.AssetTypeDescription:            3.0,
			domain.AssetTypeMarketingImage:         1.0,
			domain.AssetTypeSquareMarketingImage:   1.0,
			domain.AssetTypePortraitMarketingImage: 1.0,
		},
		LookbackDays:                60,
		NewAssetPatienceDays:        60,
		NewAssetPatienceImpressions: 500,
		AssetChangesEnabled:         false,
	},
	ShoulderSeason: {
		Months:         []int{3, 4, 9, 10},
		MinImpressions: 300,
		MinCTRByType: map[domain.AssetType]float64{
			domain.AssetTypeHeadline:               3.0,
			domain.AssetTypeLongHeadline:           2.0,
			domain.AssetTypeDescription:            4.0,
			domain.AssetTypeMarketingImage:         1.0,
			domain.AssetTypeSquareMarketingImage:   1.0,
			domain.AssetTypePortraitMarketingImage: 1.0,
		},
		LookbackDays:                30,
		NewAssetPatienceDays:        60,
		NewAssetPatienceImpressions: 500,
		AssetChangesEnabled:         true,
	},
	PeakSeason: {
		Months:         []int{5, 6, 7, 8},
		MinImpressions: 500,
		MinCTRByType: map[domain.AssetType]float64{
			domain.AssetTypeHeadline:               4.0,
			domain.AssetTypeLongHeadline:           2.5,
			domain.AssetTypeDescription:            5.0,
			domain.AssetTypeMarketingImage:         1.0,
			domain.AssetTypeSquareMarketingImage:   1.0,
			domain.AssetTypePortraitMarketingImage: 1.0,
		},
		LookbackDays:                30,
		NewAssetPatienceDays:        60,
		NewAssetPatienceImpressions: 500,
		AssetChangesEnabled:         true,
	},
}

var budgets = map[Name]Budget{
	DeepWinter: {
		RecommendedDaily: 10.0,
		MaxDaily:         30.0,
		TargetROAS:       150.0,
		Notes:            "Maintenance mode. Expect near-zero conversions. Focus on brand awareness.",
	},
	LowSeason: {
		RecommendedDaily: 30.0,
		MaxDaily:         75.0,
		TargetROAS:       200.0,
		Notes:            "Limited activity. Good time to test new assets with low stakes.",
	},
	ShoulderSeason: {
		RecommendedDaily: 100.0,
		MaxDaily:         300.0,
		TargetROAS:       200.0,
		Notes:            "Demand building. Scale aggressively if hitting targets.",
	},
	PeakSeason: {
		RecommendedDaily: 150.0,
		MaxDaily:         900.0,
		TargetROAS:       200.0,
		Notes:            "Prime time. Scale to market ceiling based on ROAS performance.",
	},
}

// Demanda mensal como % da demanda anual
var seasonalityCurve = map[int]float64{
	1:  2.0,
	2:  3.0,
	3:  7.0,
	4:  10.0,
	5:  13.0,
	6:  13.0,
	7:  12.0,
	8:  10.0,
	9:  9.0,
	10: 8.0,
	11: 7.0,
	12: 6.0,
}

// SeasonFor retorna o nome da estação do mês informado
func SeasonFor(month int) (Name, error) {
	for name, policy := range policies {
		for _, m := range policy.Months {
			if m == month {
				return name, nil
			}
		}
	}
	return "", errors.Wrapf(ErrNoSeason, "mês %d", month)
}

// ThresholdsFor retorna os thresholds da estação do mês informado
func ThresholdsFor(month int) (Policy, error) {
	name, err := SeasonFor(month)
	if err != nil {
		return Policy{}, err
	}
	return policies[name], nil
}

// BudgetFor retorna a política de orçamento da estação do mês informado
func BudgetFor(month int) (Budget, error) {
	name, err := SeasonFor(month)
	if err != nil {
		return Budget{}, err
	}
	return budgets[name], nil
}

// DemandPctFor retorna o % da demanda anual do mês; 0 para meses inválidos
func DemandPctFor(month int) float64 {
	return seasonalityCurve[month]
}
