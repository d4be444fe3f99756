package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	GoogleAds          GoogleAds          `mapstructure:",squash"`
	Shopify            Shopify            `mapstructure:",squash"`
	Anthropic          Anthropic          `mapstructure:",squash"`
	Slack              Slack              `mapstructure:",squash"`
	WeeklyReviewSync   WeeklyReviewSync   `mapstructure:",squash"`
	CampaignConfigSync CampaignConfigSync `mapstructure:",squash"`
	SecretKey          string             `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// GoogleAds concentra as credenciais OAuth e os identificadores da conta
type GoogleAds struct {
	APIVersion      string `mapstructure:"google_ads_api_version"`
	BaseURL         string `mapstructure:"google_ads_base_url"`
	URL             string `mapstructure:"-"`
	DeveloperToken  string `mapstructure:"google_ads_developer_token"`
	ClientID        string `mapstructure:"google_ads_client_id"`
	ClientSecret    string `mapstructure:"google_ads_client_secret"`
	RefreshToken    string `mapstructure:"google_ads_refresh_token"`
	CustomerID      string `mapstructure:"google_ads_customer_id"`
	LoginCustomerID string `mapstructure:"google_ads_login_customer_id"`
}

type Shopify struct {
	StoreDomain string `mapstructure:"shopify_store_domain"`
	APIVersion  string `mapstructure:"shopify_api_version"`
	AccessToken string `mapstructure:"shopify_access_token"`
}

type Anthropic struct {
	APIKey  string `mapstructure:"anthropic_api_key"`
	Model   string `mapstructure:"anthropic_model"`
	BaseURL string `mapstructure:"anthropic_base_url"`
}

type Slack struct {
	WebhookURL string `mapstructure:"slack_webhook_url"`
}

// WeeklyReviewSync controla o job semanal de revisão de assets e orçamento
type WeeklyReviewSync struct {
	CronSchedule string `mapstructure:"weekly_review_cron"`
	Enabled      bool   `mapstructure:"weekly_review_enabled"`
	DryRun       bool   `mapstructure:"weekly_review_dry_run"`
}

// CampaignConfigSync controla o job diário de sincronização de configurações
type CampaignConfigSync struct {
	CronSchedule string `mapstructure:"campaign_config_sync_cron"`
	Enabled      bool   `mapstructure:"campaign_config_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pmax")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("GOOGLE_ADS_API_VERSION", "v18")
	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_ADS_REFRESH_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")

	viper.SetDefault("SHOPIFY_STORE_DOMAIN", "")
	viper.SetDefault("SHOPIFY_API_VERSION", "2024-10")
	viper.SetDefault("SHOPIFY_ACCESS_TOKEN", "")

	viper.SetDefault("ANTHROPIC_API_KEY", "")
	viper.SetDefault("ANTHROPIC_MODEL", "claude-sonnet-4-5-20250929")
	viper.SetDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com")

	viper.SetDefault("SLACK_WEBHOOK_URL", "")

	// Segunda-feira às 6h; o host roda em Mountain Time
	viper.SetDefault("WEEKLY_REVIEW_CRON", "0 6 * * 1")
	viper.SetDefault("WEEKLY_REVIEW_ENABLED", false)
	viper.SetDefault("WEEKLY_REVIEW_DRY_RUN", true)

	// Todos os dias às 5h da manhã
	viper.SetDefault("CAMPAIGN_CONFIG_SYNC_CRON", "0 5 * * *")
	viper.SetDefault("CAMPAIGN_CONFIG_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.APIVersion)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
