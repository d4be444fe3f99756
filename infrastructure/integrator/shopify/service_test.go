package shopify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	shopdomain "github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/shopify/domain"
	"github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/shopify/shopifyclient/mocks"
	"github.com/risingfishing/pmax-optimizer-api/internal/config"
	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
)

func money(amount string) *shopdomain.MoneySet {
	return &shopdomain.MoneySet{ShopMoney: shopdomain.Money{Amount: amount, CurrencyCode: "USD"}}
}

func googleOrder(name, amount, utmCampaign string) shopdomain.Order {
	return shopdomain.Order{
		Name:                    name,
		CurrentSubtotalPriceSet: money(amount),
		DisplayFinancialStatus:  "PAID",
		CustomerJourneySummary: &shopdomain.JourneySummary{
			Ready: true,
			Moments: &shopdomain.MomentsPage{
				Edges: []shopdomain.MomentEdge{
					{Node: shopdomain.Visit{
						Source: "google",
						UtmParameters: &shopdomain.UtmParameters{
							Source:   "google",
							Medium:   "cpc",
							Campaign: utmCampaign,
						},
					}},
				},
			},
		},
	}
}

func directOrder(name, amount string) shopdomain.Order {
	return shopdomain.Order{
		Name:                    name,
		CurrentSubtotalPriceSet: money(amount),
		DisplayFinancialStatus:  "PAID",
		CustomerJourneySummary: &shopdomain.JourneySummary{
			Ready: true,
			Moments: &shopdomain.MomentsPage{
				Edges: []shopdomain.MomentEdge{
					{Node: shopdomain.Visit{Source: "Direct"}},
				},
			},
		},
	}
}

func TestGetGoogleAttributedRevenue_CasaCampanhaViaUTM(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		GetOrdersWithAttribution("2025-06-01", "2025-06-07").
		Return([]shopdomain.Order{
			googleOrder("#1001", "120.00", "core_brand_pmax"),
			googleOrder("#1002", "80.00", "brand_search"),
			directOrder("#1003", "50.00"),
		}, nil)

	integrator := New(&config.Config{}, client)

	result, err := integrator.GetGoogleAttributedRevenue("2025-06-01", "2025-06-07", "core_brand")
	require.NoError(t, err)

	assert.Equal(t, domain.AttributionCampaignMatch, result.AttributionMethod)
	assert.Equal(t, 120.0, result.TotalRevenue)
	assert.Equal(t, 1, result.OrderCount)
	assert.Equal(t, 120.0, result.AvgOrderValue)
	assert.Equal(t, 3, result.TotalOrdersAllSources)
	assert.Equal(t, 48.0, result.GoogleSharePct)
}

func TestGetGoogleAttributedRevenue_SemMatchRecuaParaAllGoogle(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		GetOrdersWithAttribution(gomock.Any(), gomock.Any()).
		Return([]shopdomain.Order{
			googleOrder("#1001", "100.00", "brand_search"),
			googleOrder("#1002", "60.00", ""),
		}, nil)

	integrator := New(&config.Config{}, client)

	result, err := integrator.GetGoogleAttributedRevenue("2025-06-01", "2025-06-07", "replacement_nets")
	require.NoError(t, err)

	assert.Equal(t, domain.AttributionAllGoogle, result.AttributionMethod)
	assert.Equal(t, 160.0, result.TotalRevenue)
	assert.Equal(t, 2, result.OrderCount)
}

func TestGetGoogleAttributedRevenue_DescontaReembolsosEIgnoraAnulados(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	refunded := googleOrder("#1001", "200.00", "core_brand")
	refunded.Refunds = []shopdomain.Refund{{TotalRefundedSet: money("50.00")}}

	voided := googleOrder("#1002", "500.00", "core_brand")
	voided.DisplayFinancialStatus = "VOIDED"

	client.EXPECT().
		GetOrdersWithAttribution(gomock.Any(), gomock.Any()).
		Return([]shopdomain.Order{refunded, voided}, nil)

	integrator := New(&config.Config{}, client)

	result, err := integrator.GetGoogleAttributedRevenue("2025-06-01", "2025-06-07", "core_brand")
	require.NoError(t, err)

	assert.Equal(t, 150.0, result.TotalRevenue)
	assert.Equal(t, 1, result.OrderCount)
	assert.Equal(t, 1, result.TotalOrdersAllSources)
}

func TestLastNonDirectVisit(t *testing.T) {
	tests := []struct {
		name     string
		journey  *shopdomain.JourneySummary
		expected string
	}{
		{
			name: "percorre os momentos do mais recente para o mais antigo",
			journey: &shopdomain.JourneySummary{
				Ready: true,
				Moments: &shopdomain.MomentsPage{
					Edges: []shopdomain.MomentEdge{
						{Node: shopdomain.Visit{Source: "google"}},
						{Node: shopdomain.Visit{Source: "facebook"}},
						{Node: shopdomain.Visit{Source: "Direct"}},
					},
				},
			},
			expected: "facebook",
		},
		{
			name: "jornada não processada usa o lastVisit",
			journey: &shopdomain.JourneySummary{
				Ready:     false,
				LastVisit: &shopdomain.Visit{Source: "google"},
			},
			expected: "google",
		},
		{
			name: "jornada não processada com lastVisit direto não atribui",
			journey: &shopdomain.JourneySummary{
				Ready:     false,
				LastVisit: &shopdomain.Visit{Source: "Direct"},
			},
			expected: "",
		},
		{
			name: "só visitas diretas recua para o lastVisit",
			journey: &shopdomain.JourneySummary{
				Ready: true,
				Moments: &shopdomain.MomentsPage{
					Edges: []shopdomain.MomentEdge{
						{Node: shopdomain.Visit{Source: "Direct"}},
					},
				},
				LastVisit: &shopdomain.Visit{Source: "bing"},
			},
			expected: "bing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visit := lastNonDirectVisit(tt.journey)
			if tt.expected == "" {
				assert.Nil(t, visit)
				return
			}
			require.NotNil(t, visit)
			assert.Equal(t, tt.expected, visit.Source)
		})
	}
}

func TestIsGoogleVisit(t *testing.T) {
	assert.True(t, isGoogleVisit(&shopdomain.Visit{Source: "Google Ads"}))
	assert.True(t, isGoogleVisit(&shopdomain.Visit{UtmParameters: &shopdomain.UtmParameters{Source: "google"}}))
	assert.True(t, isGoogleVisit(&shopdomain.Visit{ReferrerURL: "https://www.google.com/search"}))
	assert.False(t, isGoogleVisit(&shopdomain.Visit{Source: "facebook"}))
	assert.False(t, isGoogleVisit(nil))
}
