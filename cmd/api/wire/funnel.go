//go:build wireinject
// +build wireinject

package wire

import (
	"havenground-server/internal/funnel/httpapi"
	"havenground-server/internal/funnel/persistence"
	"havenground-server/internal/funnel/usecases"
	"havenground-server/internal/infra/async"

	"github.com/google/wire"
)

var SessionServiceSet = wire.NewSet(
	usecases.NewSessionService,
	wire.Bind(new(usecases.SessionService), new(*usecases.SimpleSessionService)),
)

var VerificationServiceSet = wire.NewSet(
	provideVerificationProvider,
	usecases.NewVerificationService,
	wire.Bind(new(usecases.VerificationService), new(*usecases.SimpleVerificationService)),
)

var LeadServiceSet = wire.NewSet(
	provideDatabase,
	persistence.NewLeadRepository,
	wire.Bind(new(usecases.LeadRepository), new(*persistence.SimpleLeadRepository)),
	usecases.NewLeadService,
	wire.Bind(new(usecases.LeadService), new(*usecases.SimpleLeadService)),
)

func InitializeSessionController(broker async.InternalBroker) (*httpapi.SessionController, error) {
	wire.Build(
		provideAppConfig,
		provideCache,
		SessionServiceSet,
		VerificationServiceSet,
		LeadServiceSet,
		httpapi.NewSessionController,
	)
	return nil, nil
}

func InitializeOtpController() (*httpapi.OtpController, error) {
	wire.Build(
		provideAppConfig,
		provideCache,
		VerificationServiceSet,
		httpapi.NewOtpController,
	)
	return nil, nil
}

func InitializeLeadController(broker async.InternalBroker) (*httpapi.LeadController, error) {
	wire.Build(
		provideAppConfig,
		provideCache,
		SessionServiceSet,
		VerificationServiceSet,
		LeadServiceSet,
		httpapi.NewLeadController,
	)
	return nil, nil
}

func InitializeParcelController() (*httpapi.ParcelController, error) {
	wire.Build(
		provideAppConfig,
		provideCache,
		provideRegridClient,
		httpapi.NewParcelController,
	)
	return nil, nil
}

func InitializeReasonController() (*httpapi.ReasonController, error) {
	wire.Build(
		provideAppConfig,
		provideClassifierClient,
		usecases.NewReasonService,
		wire.Bind(new(usecases.ReasonService), new(*usecases.SimpleReasonService)),
		httpapi.NewReasonController,
	)
	return nil, nil
}

func InitializeForwardingWorker(broker async.InternalBroker) (*usecases.ForwardingWorker, error) {
	wire.Build(
		provideAppConfig,
		provideWebhookClient,
		provideSMSClient,
		provideAlertNumber,
		usecases.NewForwardingWorker,
	)
	return nil, nil
}
