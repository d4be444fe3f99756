package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/campaigns"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/images"
	"github.com/risingfishing/pmax-optimizer-api/pkg/apiErrors"
	"github.com/risingfishing/pmax-optimizer-api/pkg/middleware"
)

// ListCampaigns retorna as configurações de todas as campanhas gerenciadas
func ListCampaigns(service *campaigns.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		configs, err := service.LoadCampaigns()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar campanhas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(configs); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetCampaign retorna a configuração de uma campanha pelo slug
func GetCampaign(service *campaigns.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config, ok := campaignFromSlug(w, r, service)
		if !ok {
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(config); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateCampaignStrategy grava a estratégia manual da campanha, carimbando o
// autor a partir do token. As configurações sincronizadas do Google Ads e o
// perfil de imagens não são alterados por aqui.
func UpdateCampaignStrategy(service *campaigns.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCampaignStrategy")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		config, ok := campaignFromSlug(w, r, service)
		if !ok {
			return
		}

		var manual domain.ManualStrategy
		if err := json.NewDecoder(r.Body).Decode(&manual); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.UpdateManualStrategy(config.CampaignName, manual, userClaims.UserEmail); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar estratégia da campanha", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// GetImageGaps compara a composição de imagens da campanha com o perfil alvo
// e devolve a análise de lacunas. Com ?format=text retorna o relatório em
// texto pronto para colar no Slack.
func GetImageGaps(campaignService *campaigns.Service, imageService *images.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config, ok := campaignFromSlug(w, r, campaignService)
		if !ok {
			return
		}

		analysis, err := imageService.Analyze(config)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao analisar composição de imagens", nil)
			return
		}

		if r.URL.Query().Get("format") == "text" {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			if _, err := w.Write([]byte(images.Format(analysis))); err != nil {
				logrus.Error(err)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(analysis); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// campaignFromSlug resolve o slug da URL para a configuração da campanha,
// escrevendo o erro apropriado quando não encontrada
func campaignFromSlug(w http.ResponseWriter, r *http.Request, service *campaigns.Service) (*domain.CampaignConfig, bool) {
	slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")
	if slug == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Slug da campanha não fornecido", nil)
		return nil, false
	}

	config, err := service.GetBySlug(slug)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar campanha", nil)
		return nil, false
	}

	if config == nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Campanha não encontrada", nil)
		return nil, false
	}

	return config, true
}
