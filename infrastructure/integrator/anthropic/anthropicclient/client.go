package anthropicclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/internal/config"
)

type Client interface {
	CreateMessage(ctx context.Context, prompt string, maxTokens int) (string, error)
}

type AnthropicClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	client := &AnthropicClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: 120 * time.Second},
	}
	return client
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CreateMessage envia um prompt de usuário para a Messages API e retorna o
// texto do primeiro bloco de conteúdo
func (c *AnthropicClient) CreateMessage(ctx context.Context, prompt string, maxTokens int) (string, error) {
	payload, err := json.Marshal(messagesRequest{
		Model:     c.Cfg.Anthropic.Model,
		MaxTokens: maxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	url := fmt.Sprintf("%s/v1/messages", c.Cfg.Anthropic.BaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return "", err
	}

	req.Header.Set("x-api-key", c.Cfg.Anthropic.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("content-type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		detail := string(body)
		if len(detail) > 300 {
			detail = detail[:300]
		}
		return "", fmt.Errorf("anthropic api %d: %s", resp.StatusCode, detail)
	}

	var response messagesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da Messages API")
		return "", err
	}

	if len(response.Content) == 0 {
		return "", fmt.Errorf("resposta sem blocos de conteúdo")
	}

	return response.Content[0].Text, nil
}
