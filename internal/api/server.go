package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/infrastructure/repository"
	"github.com/risingfishing/pmax-optimizer-api/internal/api/handler"
	"github.com/risingfishing/pmax-optimizer-api/internal/api/handler/router"
	"github.com/risingfishing/pmax-optimizer-api/internal/config"
	"github.com/risingfishing/pmax-optimizer-api/internal/scheduler"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/authenticating"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/campaigns"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/images"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/reviewing"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/verifying"
	"github.com/risingfishing/pmax-optimizer-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	campaignService *campaigns.Service,
	imageService *images.Service,
	reviewService *reviewing.Service,
	verifyService *verifying.Service,
	newAuditor handler.AuditorFactory,
	assetRepo repository.AssetPerformanceRepository,
	budgetRepo repository.BudgetPerformanceRepository,
	weeklyReviewSyncService *scheduler.WeeklyReviewSyncService,
	campaignConfigSyncService *scheduler.CampaignConfigSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		WeeklyReviewSyncService:   weeklyReviewSyncService,
		CampaignConfigSyncService: campaignConfigSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Campaigns(campaignService, imageService, assetRepo, budgetRepo)...),
		router.WithRoutes(handler.Reviews(reviewService, verifyService)...),
		router.WithRoutes(handler.Audits(newAuditor)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
