package googleadsclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	adsdomain "github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/googleads/domain"
	"github.com/risingfishing/pmax-optimizer-api/internal/config"
)

type Client interface {
	GetAssetPerformance(campaignID, startDate, endDate string) ([]adsdomain.AssetRow, error)
	GetImagePerformance(campaignID, startDate, endDate string) ([]adsdomain.AssetRow, error)
	GetCampaignMetrics(campaignID, startDate, endDate string) (*adsdomain.CampaignMetrics, error)
	GetCampaignBudget(campaignID string) (float64, error)
	GetCampaignSettings(campaignID string) (*adsdomain.CampaignSettings, error)
}

type GoogleAdsClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	HTTPClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &GoogleAdsClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		HTTPClient:   &http.Client{Timeout: 60 * time.Second},
	}
	return client
}

type searchRequest struct {
	Query string `json:"query"`
}

// search executa uma consulta GAQL via endpoint REST googleAds:searchStream.
// A conta consultada é a do cliente; o login-customer-id aponta para a conta
// gerenciadora (MCC).
func (c *GoogleAdsClient) search(query string) ([]adsdomain.SearchRow, error) {
	url := fmt.Sprintf("%s/customers/%s/googleAds:searchStream", c.Cfg.GoogleAds.URL, c.Cfg.GoogleAds.CustomerID)

	payload, err := json.Marshal(searchRequest{Query: strings.TrimSpace(query)})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a consulta: %w", err)
	}

	resp, err := c.doRequest(url, payload)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Token expirado, invalidar e tentar novamente uma única vez
		resp.Body.Close()
		c.TokenManager.Invalidate()

		resp, err = c.doRequest(url, payload)
		if err != nil {
			return nil, err
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		detail := string(body)
		if len(detail) > 2000 {
			detail = detail[:2000]
		}

		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"detail": detail,
		}).Error("Erro na API do Google Ads")

		return nil, fmt.Errorf("google ads api %d: %s", resp.StatusCode, detail)
	}

	var chunks []adsdomain.SearchStreamChunk
	if err := json.Unmarshal(body, &chunks); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do searchStream")
		return nil, err
	}

	results := make([]adsdomain.SearchRow, 0)
	for _, chunk := range chunks {
		results = append(results, chunk.Results...)
	}

	// Rate limit: no máximo 1 requisição/segundo por developer token
	time.Sleep(time.Second)

	return results, nil
}

func (c *GoogleAdsClient) doRequest(url string, payload []byte) (*http.Response, error) {
	accessToken, err := c.TokenManager.AccessToken()
	if err != nil {
		return nil, fmt.Errorf("erro ao obter access token: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	loginCustomerID := c.Cfg.GoogleAds.LoginCustomerID
	if loginCustomerID == "" {
		loginCustomerID = c.Cfg.GoogleAds.CustomerID
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)
	req.Header.Set("login-customer-id", loginCustomerID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}

	return resp, nil
}
