package shopifyclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	shopdomain "github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/shopify/domain"
	"github.com/risingfishing/pmax-optimizer-api/internal/config"
)

const ordersQuery = `
query OrdersWithAttribution($cursor: String, $query: String!) {
  orders(first: 100, after: $cursor, query: $query) {
    edges {
      cursor
      node {
        id
        name
        createdAt
        currentSubtotalPriceSet {
          shopMoney {
            amount
            currencyCode
          }
        }
        refunds(first: 10) {
          totalRefundedSet {
            shopMoney {
              amount
              currencyCode
            }
          }
        }
        displayFinancialStatus
        customerJourneySummary {
          ready
          firstVisit {
            source
            sourceType
            utmParameters {
              source
              medium
              campaign
            }
            referrerUrl
          }
          lastVisit {
            source
            sourceType
            utmParameters {
              source
              medium
              campaign
            }
            referrerUrl
          }
          moments(first: 20) {
            edges {
              node {
                occurredAt
                ... on CustomerVisit {
                  source
                  sourceType
                  utmParameters {
                    source
                    medium
                    campaign
                  }
                  referrerUrl
                }
              }
            }
          }
        }
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}
`

type Client interface {
	GetOrdersWithAttribution(startDate, endDate string) ([]shopdomain.Order, error)
}

type ShopifyClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
	graphqlURL string
}

func NewClient(cfg *config.Config) Client {
	client := &ShopifyClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
		graphqlURL: fmt.Sprintf(
			"https://%s/admin/api/%s/graphql.json",
			cfg.Shopify.StoreDomain,
			cfg.Shopify.APIVersion,
		),
	}
	return client
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage  `json:"data"`
	Errors []map[string]any `json:"errors,omitempty"`
}

// graphql executa uma consulta na Admin API e devolve o bloco data bruto
func (c *ShopifyClient) graphql(query string, variables map[string]any) (json.RawMessage, error) {
	payload, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a consulta: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.graphqlURL, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("X-Shopify-Access-Token", c.Cfg.Shopify.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shopify api %d: %s", resp.StatusCode, string(body))
	}

	var response graphqlResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do Shopify")
		return nil, err
	}

	if len(response.Errors) > 0 {
		return nil, fmt.Errorf("shopify graphql errors: %v", response.Errors)
	}

	return response.Data, nil
}

// GetOrdersWithAttribution busca todos os pedidos do período com a jornada do
// cliente, paginando por cursor. Pedidos de dealer são excluídos pela tag.
func (c *ShopifyClient) GetOrdersWithAttribution(startDate, endDate string) ([]shopdomain.Order, error) {
	searchQuery := fmt.Sprintf(
		`created_at:>=%s created_at:<=%sT23:59:59Z NOT tag:"channel:dealer"`,
		startDate, endDate,
	)

	allOrders := make([]shopdomain.Order, 0)
	var cursor *string

	for {
		variables := map[string]any{"query": searchQuery, "cursor": cursor}

		data, err := c.graphql(ordersQuery, variables)
		if err != nil {
			return nil, err
		}

		var response shopdomain.OrdersResponse
		if err := json.Unmarshal(data, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar pedidos do Shopify")
			return nil, err
		}

		for _, edge := range response.Orders.Edges {
			allOrders = append(allOrders, edge.Node)
		}

		pageInfo := response.Orders.PageInfo
		if !pageInfo.HasNextPage || pageInfo.EndCursor == "" {
			break
		}
		cursor = &pageInfo.EndCursor
	}

	logrus.WithFields(logrus.Fields{
		"orders":     len(allOrders),
		"start_date": startDate,
		"end_date":   endDate,
	}).Info("Pedidos com atribuição coletados do Shopify")

	return allOrders, nil
}
