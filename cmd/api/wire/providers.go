package wire

import (
	"os"
	"sync"

	"havenground-server/cmd/config"
	"havenground-server/internal/funnel/usecases"
	"havenground-server/internal/funnel/verification"
	"havenground-server/internal/infra/cache"
	"havenground-server/internal/infra/classifier"
	"havenground-server/internal/infra/notification"
	"havenground-server/internal/infra/regrid"
	"havenground-server/internal/infra/sql"
)

// Injectors are invoked once per controller, so stateful infrastructure is
// memoized here to keep every service on the same database and cache.
var (
	databaseOnce     sync.Once
	databaseInstance sql.ORM

	cacheOnce     sync.Once
	cacheInstance cache.Cache
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideDatabase(cfg config.AppConfig) sql.ORM {
	databaseOnce.Do(func() {
		env, ok := os.LookupEnv("ENV")
		if !ok {
			env = "production"
		}

		var err error
		if env == "local" {
			databaseInstance, err = sql.NewMemoryORM()
		} else {
			databaseInstance, err = sql.NewPosgreORM(cfg.Postgresql.DSN)
		}
		if err != nil {
			panic(err)
		}
	})

	return databaseInstance
}

func provideCache() cache.Cache {
	cacheOnce.Do(func() {
		instance, err := cache.New(nil)
		if err != nil {
			panic(err)
		}
		cacheInstance = instance
	})

	return cacheInstance
}

func provideVerificationProvider(cfg config.AppConfig) usecases.VerificationProvider {
	return verification.NewTwilioProvider(
		cfg.Twilio.AccountSid,
		cfg.Twilio.AuthToken,
		cfg.Twilio.VerifyServiceSid,
	)
}

func provideWebhookClient(cfg config.AppConfig) notification.WebhookClient {
	return notification.NewHTTPWebhookClient(cfg.Webhook.URL)
}

func provideSMSClient(cfg config.AppConfig) notification.SMSClient {
	return notification.NewTwilioSMSClient(
		cfg.Twilio.AccountSid,
		cfg.Twilio.AuthToken,
		cfg.Twilio.FromNumber,
	)
}

func provideAlertNumber(cfg config.AppConfig) string {
	return cfg.Twilio.AlertNumber
}

func provideRegridClient(cfg config.AppConfig, cacheInstance cache.Cache) regrid.Client {
	return regrid.NewAPIClient(cfg.Regrid.BaseURL, cfg.Regrid.Token, cacheInstance)
}

func provideClassifierClient(cfg config.AppConfig) usecases.ReasonClassifier {
	return classifier.NewAPIClient(cfg.Classifier.Endpoint, cfg.Classifier.APIKey)
}
