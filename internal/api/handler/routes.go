package handler

import (
	"net/http"

	"github.com/risingfishing/pmax-optimizer-api/infrastructure/repository"
	"github.com/risingfishing/pmax-optimizer-api/internal/api/handler/router"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/authenticating"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/campaigns"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/images"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/reviewing"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/verifying"
	"github.com/risingfishing/pmax-optimizer-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Campaigns expõe as configurações, registros de performance, histórico de
// orçamento, análise de imagens e export CSV de cada campanha
func Campaigns(
	campaignService *campaigns.Service,
	imageService *images.Service,
	assetRepo repository.AssetPerformanceRepository,
	budgetRepo repository.BudgetPerformanceRepository,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(campaignService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:slug",
			Method:      http.MethodGet,
			Handler:     GetCampaign(campaignService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:slug/strategy",
			Method:      http.MethodPut,
			Handler:     UpdateCampaignStrategy(campaignService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/campaigns/:slug/assets",
			Method:      http.MethodGet,
			Handler:     GetCampaignAssets(campaignService, assetRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:slug/budget/history",
			Method:      http.MethodGet,
			Handler:     GetBudgetHistory(campaignService, budgetRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:slug/images/gaps",
			Method:      http.MethodGet,
			Handler:     GetImageGaps(campaignService, imageService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:slug/export",
			Method:      http.MethodGet,
			Handler:     ExportReplacementsCSV(campaignService, assetRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

// Reviews expõe a execução sob demanda da revisão semanal e da verificação
// de upload
func Reviews(reviewService *reviewing.Service, verifyService *verifying.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/review/run",
			Method:      http.MethodPost,
			Handler:     RunReview(reviewService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/verify/run",
			Method:      http.MethodPost,
			Handler:     RunVerification(verifyService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Audits(newAuditor AuditorFactory) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/audit/run",
			Method:      http.MethodPost,
			Handler:     RunAudit(newAuditor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
