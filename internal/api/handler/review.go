package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/reviewing"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/verifying"
	"github.com/risingfishing/pmax-optimizer-api/pkg/apiErrors"
)

// RunReview executa a revisão semanal sob demanda. Com ?preview=true a análise
// roda sem matar assets nem gerar substitutas; ?month=N simula outra estação.
func RunReview(service *reviewing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunReview")

		previewMode := r.URL.Query().Get("preview") == "true"

		month := 0
		if monthParam := r.URL.Query().Get("month"); monthParam != "" {
			parsed, err := strconv.Atoi(monthParam)
			if err != nil || parsed < 1 || parsed > 12 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido, use um valor de 1 a 12", nil)
				return
			}
			month = parsed
		}

		result, err := service.RunForMonth(r.Context(), month, previewMode)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar a revisão semanal", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// RunVerification confere se as recomendações da última revisão foram
// aplicadas no Google Ads e notifica o resultado
func RunVerification(service *verifying.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunVerification")

		result, err := service.Run()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar a verificação de upload", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
