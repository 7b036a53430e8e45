package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// En Render las variables llegan como archivo secreto; local se usa el
// .env del proyecto si existe.
const secretsFile = "/etc/secrets/env"

// Config se arma una sola vez al arranque y es inmutable después; los
// componentes la reciben por constructor, no leen el entorno por su
// cuenta.
type Config struct {
	Server    ServerConfig
	Companies CompaniesConfig
	Mail      MailConfig
	Queue     QueueConfig
	Payments  PaymentsConfig
	CORS      CORSConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port int
}

type CompaniesConfig struct {
	BaseDir string
}

type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type QueueConfig struct {
	AMQPURL string
}

type PaymentsConfig struct {
	DefaultBase string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	if _, err := os.Stat(secretsFile); err == nil {
		godotenv.Load(secretsFile)
	} else {
		godotenv.Load()
	}

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("EMPRESAS_DIR", "empresas")
	viper.SetDefault("MAIL_HOST", "smtp.gmail.com")
	viper.SetDefault("MAIL_PORT", 587)
	viper.SetDefault("MAIL_FROM", "no-responder@aurenstar.com")
	viper.SetDefault("PAYMENT_DEFAULT_BASE", "https://pagos.aurenstar.com")
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("LOG_LEVEL", "info")
	// EMAIL_USER/EMAIL_PASS y AMQP_URL no tienen default: sin ellas el
	// notifier y la cola quedan apagados.

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Companies: CompaniesConfig{
			BaseDir: viper.GetString("EMPRESAS_DIR"),
		},
		Mail: MailConfig{
			Host:     viper.GetString("MAIL_HOST"),
			Port:     viper.GetInt("MAIL_PORT"),
			User:     viper.GetString("EMAIL_USER"),
			Password: viper.GetString("EMAIL_PASS"),
			From:     viper.GetString("MAIL_FROM"),
		},
		Queue: QueueConfig{
			AMQPURL: viper.GetString("AMQP_URL"),
		},
		Payments: PaymentsConfig{
			DefaultBase: viper.GetString("PAYMENT_DEFAULT_BASE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(viper.GetString("CORS_ORIGINS")),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}

// MailConfigured maneja el flag email_configurado de la raíz y decide
// si el notifier se cablea al arrancar.
func (c *Config) MailConfigured() bool {
	return c.Mail.User != "" && c.Mail.Password != ""
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			origins = append(origins, v)
		}
	}
	return origins
}
