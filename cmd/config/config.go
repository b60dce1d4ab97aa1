package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("havenground_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = AppConfig{
			General: GeneralConfig{
				LogLevel: viper.GetString("general.log_level"),
			},
			Postgresql: PostgresqlConfig{
				DSN: viper.GetString("database.dsn"),
			},
			Twilio: TwilioConfig{
				AccountSid:       viper.GetString("twilio.account_sid"),
				AuthToken:        viper.GetString("twilio.auth_token"),
				VerifyServiceSid: viper.GetString("twilio.verify_service_sid"),
				FromNumber:       viper.GetString("twilio.from_number"),
				AlertNumber:      viper.GetString("twilio.alert_number"),
			},
			Webhook: WebhookConfig{
				URL: viper.GetString("webhook.url"),
			},
			Regrid: RegridConfig{
				BaseURL: viper.GetString("regrid.base_url"),
				Token:   viper.GetString("regrid.token"),
			},
			Classifier: ClassifierConfig{
				Endpoint: viper.GetString("classifier.endpoint"),
				APIKey:   viper.GetString("classifier.api_key"),
			},
		}
	})

	return configInstance
}

type AppConfig struct {
	General    GeneralConfig
	Postgresql PostgresqlConfig
	Twilio     TwilioConfig
	Webhook    WebhookConfig
	Regrid     RegridConfig
	Classifier ClassifierConfig
}

type GeneralConfig struct {
	LogLevel string
}

type PostgresqlConfig struct {
	DSN string
}

type TwilioConfig struct {
	AccountSid       string
	AuthToken        string
	VerifyServiceSid string
	FromNumber       string
	AlertNumber      string
}

type WebhookConfig struct {
	URL string
}

type RegridConfig struct {
	BaseURL string
	Token   string
}

type ClassifierConfig struct {
	Endpoint string
	APIKey   string
}
