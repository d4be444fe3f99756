package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/internal/domain"
	"github.com/risingfishing/pmax-optimizer-api/internal/scheduler"
	"github.com/risingfishing/pmax-optimizer-api/pkg/apiErrors"
	"github.com/risingfishing/pmax-optimizer-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeWeeklyReview = "weekly-review"
	CronJobTypeConfigSync   = "config-sync"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	WeeklyReviewSyncService   *scheduler.WeeklyReviewSyncService
	CampaignConfigSyncService *scheduler.CampaignConfigSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeWeeklyReview:
			if services.WeeklyReviewSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de revisão semanal não disponível", nil)
				return
			}
			services.WeeklyReviewSyncService.TriggerManualSync()

		case CronJobTypeConfigSync:
			if services.CampaignConfigSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sync de configurações não disponível", nil)
				return
			}
			services.CampaignConfigSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.WeeklyReviewSyncService != nil {
				services.WeeklyReviewSyncService.TriggerManualSync()
			}
			if services.CampaignConfigSyncService != nil {
				services.CampaignConfigSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: weekly-review, config-sync, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"weekly-review": services.WeeklyReviewSyncService.GetStatus(),
			"config-sync":   services.CampaignConfigSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
