package domain

// Tipos de resposta da Admin API GraphQL do Shopify para a consulta de pedidos
// com atribuição de jornada do cliente.

type OrdersResponse struct {
	Orders OrdersConnection `json:"orders"`
}

type OrdersConnection struct {
	Edges    []OrderEdge `json:"edges"`
	PageInfo PageInfo    `json:"pageInfo"`
}

type OrderEdge struct {
	Cursor string `json:"cursor"`
	Node   Order  `json:"node"`
}

type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type Order struct {
	ID                      string           `json:"id"`
	Name                    string           `json:"name"`
	CreatedAt               string           `json:"createdAt"`
	CurrentSubtotalPriceSet *MoneySet        `json:"currentSubtotalPriceSet,omitempty"`
	Refunds                 []Refund         `json:"refunds"`
	DisplayFinancialStatus  string           `json:"displayFinancialStatus"`
	CustomerJourneySummary  *JourneySummary  `json:"customerJourneySummary,omitempty"`
}

type Refund struct {
	TotalRefundedSet *MoneySet `json:"totalRefundedSet,omitempty"`
}

type MoneySet struct {
	ShopMoney Money `json:"shopMoney"`
}

// Money traz o valor como string, do jeito que a API serializa decimais
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type JourneySummary struct {
	Ready      bool         `json:"ready"`
	FirstVisit *Visit       `json:"firstVisit,omitempty"`
	LastVisit  *Visit       `json:"lastVisit,omitempty"`
	Moments    *MomentsPage `json:"moments,omitempty"`
}

type MomentsPage struct {
	Edges []MomentEdge `json:"edges"`
}

type MomentEdge struct {
	Node Visit `json:"node"`
}

type Visit struct {
	OccurredAt    string         `json:"occurredAt,omitempty"`
	Source        string         `json:"source"`
	SourceType    string         `json:"sourceType"`
	UtmParameters *UtmParameters `json:"utmParameters,omitempty"`
	ReferrerURL   string         `json:"referrerUrl"`
}

type UtmParameters struct {
	Source   string `json:"source"`
	Medium   string `json:"medium"`
	Campaign string `json:"campaign"`
}
