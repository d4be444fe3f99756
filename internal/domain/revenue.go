package domain

// AttributionMethod indica como os pedidos foram atribuídos ao Google
type AttributionMethod string

const (
	// AttributionCampaignMatch casa a campanha via parâmetros UTM
	AttributionCampaignMatch AttributionMethod = "campaign_match"
	// AttributionAllGoogle usa todos os pedidos atribuídos ao Google
	AttributionAllGoogle AttributionMethod = "all_google"
)

// AttributedRevenue é a receita líquida atribuída ao Google no período,
// calculada por last non-direct click sobre a jornada do cliente
type AttributedRevenue struct {
	TotalRevenue          float64           `json:"total_revenue"`
	OrderCount            int               `json:"order_count"`
	AvgOrderValue         float64           `json:"avg_order_value"`
	TotalOrdersAllSources int               `json:"total_orders_all_channels"`
	GoogleSharePct        float64           `json:"google_share_pct"`
	AttributionMethod     AttributionMethod `json:"attribution_method"`
}
