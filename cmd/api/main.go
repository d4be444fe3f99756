package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/infrastructure/database/postgres"
	"github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/anthropic"
	"github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/anthropic/anthropicclient"
	"github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/googleads"
	"github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/shopify"
	"github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/slack"
	"github.com/risingfishing/pmax-optimizer-api/infrastructure/integrator/slack/slackclient"
	"github.com/risingfishing/pmax-optimizer-api/infrastructure/repository"
	"github.com/risingfishing/pmax-optimizer-api/internal/api"
	"github.com/risingfishing/pmax-optimizer-api/internal/config"
	"github.com/risingfishing/pmax-optimizer-api/internal/scheduler"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/auditing"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/authenticating"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/campaigns"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/images"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/reviewing"
	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/verifying"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	assetRepo := repository.NewAssetPerformanceRepository(pgConn)
	graveyardRepo := repository.NewGraveyardRepository(pgConn)
	budgetRepo := repository.NewBudgetPerformanceRepository(pgConn)
	campaignConfigRepo := repository.NewCampaignConfigRepository(pgConn)
	imageRepo := repository.NewImageRegistryRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Integrações externas: Google Ads, Shopify, Anthropic e Slack
	tokenManager := googleadsclient.NewTokenManager(cfg)
	googleAdsClient := googleadsclient.NewClient(cfg, tokenManager)
	googleAdsIntegrator := googleads.New(cfg, googleAdsClient)

	shopifyClient := shopifyclient.NewClient(cfg)
	shopifyIntegrator := shopify.New(cfg, shopifyClient)

	anthropicClient := anthropicclient.NewClient(cfg)
	anthropicIntegrator := anthropic.New(cfg, anthropicClient)

	slackClient := slackclient.NewClient(cfg)
	slackIntegrator := slack.New(cfg, slackClient)

	campaignService := campaigns.NewService(cfg, campaignConfigRepo, googleAdsIntegrator)
	if err := campaignService.Seed(); err != nil {
		logrus.WithError(err).Warn("Erro ao semear configurações iniciais de campanha")
	}

	imageService := images.NewService(imageRepo)

	reviewService := reviewing.NewService(
		cfg,
		campaignService,
		googleAdsIntegrator,
		shopifyIntegrator,
		anthropicIntegrator,
		slackIntegrator,
		assetRepo,
		graveyardRepo,
		budgetRepo,
	)

	verifyService := verifying.NewService(
		campaignService,
		googleAdsIntegrator,
		slackIntegrator,
		assetRepo,
	)

	newAuditor := func(month int) (*auditing.Auditor, error) {
		return auditing.NewAuditor(
			month,
			campaignConfigRepo,
			budgetRepo,
			assetRepo,
			graveyardRepo,
			imageRepo,
			anthropicIntegrator,
		)
	}

	// Inicializa os agendadores da revisão semanal e do sync de configurações
	weeklyReviewSyncService := scheduler.NewWeeklyReviewSyncService(reviewService, cfg)
	campaignConfigSyncService := scheduler.NewCampaignConfigSyncService(campaignService, cfg)

	if err := weeklyReviewSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da revisão semanal")
	} else {
		logrus.Info("Agendador da revisão semanal iniciado com sucesso")
	}

	if err := campaignConfigSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sync de configurações de campanha")
	} else {
		logrus.Info("Agendador de sync de configurações de campanha iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		campaignService,
		imageService,
		reviewService,
		verifyService,
		newAuditor,
		assetRepo,
		budgetRepo,
		weeklyReviewSyncService,
		campaignConfigSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
