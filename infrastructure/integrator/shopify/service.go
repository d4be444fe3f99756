package shopify

import (
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	shopdomain "github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/shopify/domain"
	"github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/risingfishing/pmax-optimizer-api/internal/config"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

// ShopifyIntegrator calcula a receita líquida atribuída ao Google usando a
// metodologia last non-direct click, a mesma do relatório de Marketing
// Attribution do Shopify. Receita líquida = subtotal corrente - reembolsos.
type ShopifyIntegrator struct {
	cfg    *config.Config
	Client shopifyclient.Client
}

func New(cfg *config.Config, client shopifyclient.Client) *ShopifyIntegrator {
	return &ShopifyIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetGoogleAttributedRevenue calcula a receita dos pedidos atribuídos ao
// Google no período. Quando campaignName é informado, tenta casar a campanha
// pelos parâmetros UTM; sem nenhum match, recua para a atribuição all-Google.
func (s *ShopifyIntegrator) GetGoogleAttributedRevenue(
	startDate string,
	endDate string,
	campaignName string,
) (*domain.AttributedRevenue, error) {
	allOrders, err := s.Client.GetOrdersWithAttribution(startDate, endDate)
	if err != nil {
		logrus.WithError(err).Error("shopify: failed to get orders with attribution")
		return nil, err
	}

	// Pedidos anulados ficam de fora; reembolsados entram porque o valor
	// reembolsado já é descontado da receita líquida
	validOrders := make([]shopdomain.Order, 0, len(allOrders))
	for _, order := range allOrders {
		if order.DisplayFinancialStatus == "VOIDED" {
			continue
		}
		validOrders = append(validOrders, order)
	}

	var googleAllRevenue, googleCampaignRevenue float64
	var googleAllCount, googleCampaignCount int
	noJourney, notGoogle, noCampaignMatch := 0, 0, 0

	for _, order := range validOrders {
		journey := order.CustomerJourneySummary
		if journey == nil {
			noJourney++
			continue
		}

		lastNDC := lastNonDirectVisit(journey)
		if !isGoogleVisit(lastNDC) {
			notGoogle++
			continue
		}

		net := netSales(order)
		googleAllRevenue += net
		googleAllCount++

		if campaignName != "" {
			if matchesCampaign(lastNDC, campaignName) {
				googleCampaignRevenue += net
				googleCampaignCount++
			} else {
				noCampaignMatch++
			}
		}
	}

	totalRevenue := googleAllRevenue
	orderCount := googleAllCount
	method := domain.AttributionAllGoogle

	if campaignName != "" && googleCampaignCount > 0 {
		totalRevenue = googleCampaignRevenue
		orderCount = googleCampaignCount
		method = domain.AttributionCampaignMatch
	} else if campaignName != "" {
		logrus.WithFields(logrus.Fields{
			"campaign":          campaignName,
			"google_orders":     googleAllCount,
			"no_journey":        noJourney,
			"not_google":        notGoogle,
			"no_campaign_match": noCampaignMatch,
		}).Warn("shopify: no orders matched campaign via UTM, using all-Google attribution")
	}

	avgOrderValue := 0.0
	if orderCount > 0 {
		avgOrderValue = totalRevenue / float64(orderCount)
	}

	var totalAllRevenue float64
	for _, order := range validOrders {
		totalAllRevenue += netSales(order)
	}

	googleShare := 0.0
	if totalAllRevenue > 0 {
		googleShare = totalRevenue / totalAllRevenue * 100
	}

	result := &domain.AttributedRevenue{
		TotalRevenue:          round2(totalRevenue),
		OrderCount:            orderCount,
		AvgOrderValue:         round2(avgOrderValue),
		TotalOrdersAllSources: len(validOrders),
		GoogleSharePct:        round1(googleShare),
		AttributionMethod:     method,
	}

	logrus.WithFields(logrus.Fields{
		"method":       method,
		"revenue":      result.TotalRevenue,
		"orders":       result.OrderCount,
		"google_share": result.GoogleSharePct,
	}).Info("shopify: google-attributed revenue calculated")

	return result, nil
}

// lastNonDirectVisit percorre os momentos da jornada do mais recente para o
// mais antigo e retorna a primeira visita que não seja direta. Recua para o
// lastVisit quando os momentos não ajudam.
func lastNonDirectVisit(journey *shopdomain.JourneySummary) *shopdomain.Visit {
	if journey == nil {
		return nil
	}

	// Atribuição ainda não processada; o lastVisit é a melhor estimativa
	if !journey.Ready {
		return nonDirectOrNil(journey.LastVisit)
	}

	if journey.Moments != nil {
		edges := journey.Moments.Edges
		for i := len(edges) - 1; i >= 0; i-- {
			visit := edges[i].Node
			source := strings.ToLower(visit.Source)
			if source != "" && source != "direct" {
				return &edges[i].Node
			}
		}
	}

	return nonDirectOrNil(journey.LastVisit)
}

func nonDirectOrNil(visit *shopdomain.Visit) *shopdomain.Visit {
	if visit == nil {
		return nil
	}

	source := strings.ToLower(visit.Source)
	if source == "" || source == "direct" {
		return nil
	}

	return visit
}

// isGoogleVisit verifica se a visita veio de qualquer origem Google
func isGoogleVisit(visit *shopdomain.Visit) bool {
	if visit == nil {
		return false
	}

	source := strings.ToLower(visit.Source)
	referrer := strings.ToLower(visit.ReferrerURL)

	utmSource := ""
	if visit.UtmParameters != nil {
		utmSource = strings.ToLower(visit.UtmParameters.Source)
	}

	return strings.Contains(source, "google") ||
		strings.Contains(utmSource, "google") ||
		strings.Contains(referrer, "www.google.")
}

// matchesCampaign casa a campanha da visita com a campanha alvo via UTM.
// Aceita match exato ou por substring porque o PMax pode anexar sufixos.
func matchesCampaign(visit *shopdomain.Visit, campaignName string) bool {
	if visit == nil || visit.UtmParameters == nil {
		return false
	}

	utmCampaign := strings.ToLower(visit.UtmParameters.Campaign)
	if utmCampaign == "" {
		return false
	}

	target := strings.ToLower(campaignName)

	return strings.Contains(utmCampaign, target) || strings.Contains(target, utmCampaign)
}

// netSales calcula a receita líquida do pedido: subtotal menos reembolsos
func netSales(order shopdomain.Order) float64 {
	subtotal := 0.0
	if order.CurrentSubtotalPriceSet != nil {
		subtotal = parseAmount(order.CurrentSubtotalPriceSet.ShopMoney.Amount)
	}

	var refunds float64
	for _, refund := range order.Refunds {
		if refund.TotalRefundedSet != nil {
			refunds += parseAmount(refund.TotalRefundedSet.ShopMoney.Amount)
		}
	}

	return subtotal - refunds
}

func parseAmount(amount string) float64 {
	if amount == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		logrus.WithField("amount", amount).Warn("Valor monetário inválido na resposta do Shopify")
		return 0
	}

	return parsed
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
