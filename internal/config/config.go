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
	App                  App                  `mapstructure:",squash"`
	Server               Server               `mapstructure:",squash"`
	Database             Database             `mapstructure:",squash"`
	SHX                  SHX                  `mapstructure:",squash"`
	Evolution            Evolution            `mapstructure:",squash"`
	Auth                 Auth                 `mapstructure:",squash"`
	NotificationDispatch NotificationDispatch `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
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

// SHX é a integração de vendas do ERP da rede
type SHX struct {
	URL      string `mapstructure:"shx_url"`
	Username string `mapstructure:"shx_username"`
	Password string `mapstructure:"shx_password"`
	PageSize int    `mapstructure:"shx_page_size"`
	MaxPages int    `mapstructure:"shx_max_pages"`
}

// Evolution é o gateway de WhatsApp
type Evolution struct {
	URL          string `mapstructure:"evolution_api_url"`
	APIKey       string `mapstructure:"evolution_api_key"`
	InstanceName string `mapstructure:"evolution_instance_name"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type NotificationDispatch struct {
	CronSchedule string `mapstructure:"notification_dispatch_cron"`
	Enabled      bool   `mapstructure:"notification_dispatch_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/vendas_insights")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SHX_URL", "https://int.torrescabral.com.br/shx-integracao-servicos")
	viper.SetDefault("SHX_USERNAME", "MOISES")
	viper.SetDefault("SHX_PAGE_SIZE", 1000) // Tamanho de página aceito pela integração
	viper.SetDefault("SHX_MAX_PAGES", 100)  // Teto de segurança da paginação

	viper.SetDefault("EVOLUTION_API_URL", "")
	viper.SetDefault("EVOLUTION_API_KEY", "")
	viper.SetDefault("EVOLUTION_INSTANCE_NAME", "vendas-insights")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("NOTIFICATION_DISPATCH_CRON", "* * * * *") // Avaliação dos agendamentos a cada minuto
	viper.SetDefault("NOTIFICATION_DISPATCH_ENABLED", true)

	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate confere uma única vez, na subida, os segredos obrigatórios.
func (c *Config) Validate() error {
	if c.SHX.Password == "" {
		return fmt.Errorf("SHX_PASSWORD não configurado: a credencial da integração de vendas é obrigatória")
	}

	if c.NotificationDispatch.Enabled {
		if c.Evolution.URL == "" || c.Evolution.APIKey == "" {
			return fmt.Errorf("EVOLUTION_API_URL e EVOLUTION_API_KEY são obrigatórios com o despacho de notificações habilitado")
		}
	}

	return nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
