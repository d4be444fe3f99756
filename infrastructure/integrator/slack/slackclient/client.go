package slackclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/internal/config"
)

type Client interface {
	PostMessage(text string) error
}

// SlackClient entrega mensagens via incoming webhook
type SlackClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	client := &SlackClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
	return client
}

type webhookPayload struct {
	Text   string `json:"text"`
	Mrkdwn bool   `json:"mrkdwn"`
}

func (c *SlackClient) PostMessage(text string) error {
	if c.Cfg.Slack.WebhookURL == "" {
		return fmt.Errorf("webhook do slack não configurado")
	}

	payload, err := json.Marshal(webhookPayload{Text: text, Mrkdwn: true})
	if err != nil {
		return fmt.Errorf("erro ao serializar a mensagem: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.Cfg.Slack.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack webhook %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
