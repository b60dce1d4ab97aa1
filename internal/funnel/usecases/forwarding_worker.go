package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"havenground-server/internal/funnel/domain"
	"havenground-server/internal/infra/async"
	"havenground-server/internal/infra/notification"
	"havenground-server/internal/infra/utils"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const _metricKeyForwardingFailures = "forwarding_failures"

func NewForwardingWorker(
	broker async.InternalBroker,
	webhookClient notification.WebhookClient,
	smsClient notification.SMSClient,
	alertNumber string,
) *ForwardingWorker {
	return &ForwardingWorker{
		broker:         broker,
		webhookClient:  webhookClient,
		smsClient:      smsClient,
		alertNumber:    alertNumber,
		metricCounters: make(map[string]metric.Int64Counter),
	}
}

var _ async.Worker = (*ForwardingWorker)(nil)

// ForwardingWorker delivers submitted leads to the downstream webhook and the
// internal SMS alert number. Delivery is best-effort: failures are logged and
// counted, never retried, never surfaced to the lead.
type ForwardingWorker struct {
	broker         async.InternalBroker
	webhookClient  notification.WebhookClient
	smsClient      notification.SMSClient
	alertNumber    string
	metricCounters map[string]metric.Int64Counter
}

func (w *ForwardingWorker) Run(ctx context.Context, done func()) {
	slog.Debug("forwarding worker run with context initialized")
	defer done()

	subscription, err := w.broker.Subscribe(TopicLeadSubmitted)
	if err != nil {
		slog.Error("subscribing to lead submissions topic", slog.Any("error", err))
		return
	}

	if err := w.initializeMetrics(); err != nil {
		slog.Error("initializing metrics", slog.Any("error", err))
		return
	}

	w.processMessages(ctx, subscription)
}

func (w *ForwardingWorker) Shutdown() {
	slog.Debug("forwarding worker shutdown")
}

func (w *ForwardingWorker) processMessages(ctx context.Context, subscription async.Subscription) {
	var wg sync.WaitGroup

	for {
		select {
		case <-ctx.Done():
			slog.Debug("forwarding worker context done, waiting for in-flight leads")
			wg.Wait()
			return
		case msg := <-subscription.Receiver:
			wg.Add(1)
			go w.processLeadMessage(ctx, msg, wg.Done)
		}
	}
}

func (w *ForwardingWorker) processLeadMessage(ctx context.Context, message async.BrokerMessage, done func()) {
	ctx, span := otel.Tracer("forwarding-worker").Start(ctx, "forward-lead")
	defer span.End()
	defer done()

	lead, ok := message.Value.(domain.Lead)
	if !ok {
		slog.Warn("invalid lead message format", slog.Any("value", message.Value))
		span.RecordError(fmt.Errorf("invalid lead message format"))
		return
	}

	span.SetAttributes(
		attribute.String("lead.id", lead.ID.String()),
		attribute.String("lead.source", lead.Source),
	)

	if err := w.webhookClient.Forward(ctx, webhookPayload(lead)); err != nil {
		slog.Warn("lead webhook forwarding failed",
			slog.String("lead_id", lead.ID.String()),
			slog.Any("error", err))
		span.RecordError(err)
		w.recordFailure(ctx, "webhook")
	}

	if w.alertNumber != "" {
		if err := w.smsClient.Send(ctx, w.alertNumber, alertBody(lead)); err != nil {
			slog.Warn("lead sms alert failed",
				slog.String("lead_id", lead.ID.String()),
				slog.Any("error", err))
			span.RecordError(err)
			w.recordFailure(ctx, "sms")
		}
	}

	slog.Info("lead forwarded",
		slog.String("lead_id", lead.ID.String()),
		slog.String("source", lead.Source))
}

type leadWebhookPayload struct {
	LeadID         string     `json:"lead_id"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	PhoneVerified  bool       `json:"phone_verified"`
	Acreage        string     `json:"acreage"`
	HomeOnProperty string     `json:"home_on_property"`
	PropertyListed string     `json:"property_listed"`
	IsInherited    string     `json:"is_inherited"`
	OwnedFourYears string     `json:"owned_four_years"`
	WhySelling     string     `json:"why_selling"`
	State          string     `json:"state"`
	County         string     `json:"county"`
	Address        string     `json:"address"`
	DeedNames      string     `json:"deed_names"`
	Source         string     `json:"source"`
	Outcome        string     `json:"outcome"`
	SubmittedAt    utils.Time `json:"submitted_at"`
}

func webhookPayload(lead domain.Lead) leadWebhookPayload {
	return leadWebhookPayload{
		LeadID:         lead.ID.String(),
		FullName:       lead.FullName,
		Email:          lead.Email,
		Phone:          lead.PhoneE164,
		PhoneVerified:  lead.PhoneVerified,
		Acreage:        lead.Acreage,
		HomeOnProperty: lead.HomeOnProperty,
		PropertyListed: lead.PropertyListed,
		IsInherited:    lead.IsInherited,
		OwnedFourYears: lead.OwnedFourYears,
		WhySelling:     lead.WhySelling,
		State:          lead.State,
		County:         lead.County,
		Address:        lead.Address,
		DeedNames:      lead.DeedNames,
		Source:         lead.Source,
		Outcome:        string(lead.Outcome),
		SubmittedAt:    utils.Time{Time: lead.SubmittedAt},
	}
}

func alertBody(lead domain.Lead) string {
	return fmt.Sprintf("New lead: %s, %s acres, %s County %s. Phone %s",
		lead.FullName, lead.Acreage, lead.County, lead.State, lead.PhoneE164)
}

func (w *ForwardingWorker) initializeMetrics() error {
	meter := otel.Meter("forwarding-worker")

	failureCounter, err := meter.Int64Counter(
		"havenground_server.lead.forwarding.failures.total",
		metric.WithDescription("Total number of lead forwarding failures"),
	)
	if err != nil {
		return fmt.Errorf("creating forwarding failure counter: %w", err)
	}

	w.metricCounters[_metricKeyForwardingFailures] = failureCounter
	return nil
}

func (w *ForwardingWorker) recordFailure(ctx context.Context, channel string) {
	if counter, exists := w.metricCounters[_metricKeyForwardingFailures]; exists {
		counter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("channel", channel),
		))
	}
}
