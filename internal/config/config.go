package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	GoAffPro   GoAffPro   `mapstructure:",squash"`
	Sheets     Sheets     `mapstructure:",squash"`
	Report     Report     `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type GoAffPro struct {
	URL         string `mapstructure:"goaffpro_url"`
	AccessToken string `mapstructure:"goaffpro_access_token"`
}

// Sheets identifica a planilha de destino. O ID e o nome da aba são
// configuração injetada, nunca literais no código.
type Sheets struct {
	SpreadsheetID   string `mapstructure:"sheets_spreadsheet_id"`
	SheetName       string `mapstructure:"sheets_sheet_name"`
	CredentialsFile string `mapstructure:"sheets_credentials_file"`
	WritePolicy     string `mapstructure:"sheets_write_policy"`
}

type Report struct {
	AccumulationPolicy string `mapstructure:"report_accumulation_policy"`
}

type ReportSync struct {
	CronSchedule string `mapstructure:"report_sync_cron"`
	LookbackDays int    `mapstructure:"report_sync_lookback_days"`
	Enabled      bool   `mapstructure:"report_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("GOAFFPRO_URL", "https://api.goaffpro.com/v1")
	viper.SetDefault("GOAFFPRO_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("SHEETS_SPREADSHEET_ID", "")
	viper.SetDefault("SHEETS_SHEET_NAME", "30days")
	viper.SetDefault("SHEETS_CREDENTIALS_FILE", "")
	viper.SetDefault("SHEETS_WRITE_POLICY", "append") // append | upsert

	viper.SetDefault("REPORT_ACCUMULATION_POLICY", "first-order-only") // first-order-only | sum-all-orders

	// Defaults para a sincronização agendada do relatório
	viper.SetDefault("REPORT_SYNC_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("REPORT_SYNC_LOOKBACK_DAYS", 30)   // Janela móvel de 30 dias
	viper.SetDefault("REPORT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Leitura do .env pelo Viper é opcional, já que usamos godotenv
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	return config, nil
}

// loadEnvFile tenta carregar o .env das localizações conhecidas
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

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
