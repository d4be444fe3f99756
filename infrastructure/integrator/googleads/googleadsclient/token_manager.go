package googleadsclient

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/risingfishing/pmax-optimizer-api/internal/config"
)

// TokenManager troca o refresh token por access tokens de curta duração e os
// renova quando expiram. A renovação fica a cargo do oauth2.TokenSource; o
// Invalidate força uma troca nova quando a API responde 401 mesmo assim.
type TokenManager struct {
	mu     sync.Mutex
	cfg    *config.Config
	source oauth2.TokenSource
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	tm := &TokenManager{cfg: cfg}
	tm.source = tm.newSource()
	return tm
}

func (tm *TokenManager) newSource() oauth2.TokenSource {
	conf := &oauth2.Config{
		ClientID:     tm.cfg.GoogleAds.ClientID,
		ClientSecret: tm.cfg.GoogleAds.ClientSecret,
		Endpoint:     google.Endpoint,
	}

	return conf.TokenSource(context.Background(), &oauth2.Token{
		RefreshToken: tm.cfg.GoogleAds.RefreshToken,
	})
}

// AccessToken retorna um access token válido, renovando se necessário
func (tm *TokenManager) AccessToken() (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	token, err := tm.source.Token()
	if err != nil {
		logrus.WithError(err).Error("Erro ao obter access token do Google Ads")
		return "", err
	}

	return token.AccessToken, nil
}

// Invalidate descarta o token em cache para forçar uma nova troca
func (tm *TokenManager) Invalidate() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	logrus.Info("Token do Google Ads invalidado, próxima requisição fará nova troca")
	tm.source = tm.newSource()
}
