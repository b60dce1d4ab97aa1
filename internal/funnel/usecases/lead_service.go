package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"havenground-server/internal/funnel/domain"
	"havenground-server/internal/infra/async"
	"havenground-server/internal/infra/utils"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	TopicLeadSubmitted async.BrokerTopicName = "lead_submissions"

	EventLeadSubmitted = "lead_submitted"

	_sourceWizard = "qualification-wizard"
	_sourceDirect = "direct-form"
)

func NewLeadService(
	repository LeadRepository,
	sessions SessionService,
	verification VerificationService,
	broker async.InternalBroker,
) *SimpleLeadService {
	service := &SimpleLeadService{
		repository:   repository,
		sessions:     sessions,
		verification: verification,
		broker:       broker,
	}

	meter := otel.Meter("lead-service")
	counter, err := meter.Int64Counter(
		"havenground_server.lead.persist.failures.total",
		metric.WithDescription("Total number of lead persistence failures"),
	)
	if err != nil {
		slog.Error("creating persist failure counter", slog.Any("error", err))
	} else {
		service.persistFailures = counter
	}

	return service
}

var _ LeadService = (*SimpleLeadService)(nil)

type SimpleLeadService struct {
	repository      LeadRepository
	sessions        SessionService
	verification    VerificationService
	broker          async.InternalBroker
	persistFailures metric.Int64Counter
}

// SubmitFromSession is the qualification-wizard path: the session must have
// completed every qualifying step and its phone must be verified.
func (s *SimpleLeadService) SubmitFromSession(ctx context.Context, sessionID domain.ID) (Submission, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return Submission{}, err
	}

	if session.Disqualified {
		return Submission{}, domain.ErrSessionDisqualified
	}

	if !session.ReadyForOtp() {
		return Submission{}, ErrSessionNotReady
	}

	e164 := domain.ToE164(session.Answers.Get(domain.FieldPhone))
	if !s.verification.IsVerified(ctx, e164) {
		return Submission{}, ErrPhoneNotVerified
	}

	lead, err := domain.NewLeadBuilder().
		WithAnswers(session.Answers).
		WithVerifiedPhone(e164).
		WithSource(_sourceWizard).
		Build()
	if err != nil {
		return Submission{}, fmt.Errorf("building lead: %w", err)
	}

	s.store(ctx, lead)
	s.publish(ctx, lead)

	return Submission{LeadID: lead.ID, Redirect: lead.Outcome.Redirect()}, nil
}

// SubmitDirect is the flat-form path. It still requires a verified phone and
// additionally triggers the internal SMS alert via the forwarding worker.
func (s *SimpleLeadService) SubmitDirect(ctx context.Context, lead domain.Lead) (Submission, error) {
	if lead.PhoneE164 == "" {
		lead.PhoneE164 = domain.ToE164(lead.PhoneDisplay)
	}

	if !s.verification.IsVerified(ctx, lead.PhoneE164) {
		return Submission{}, ErrPhoneNotVerified
	}

	lead.PhoneVerified = true
	if lead.ID == "" {
		lead.ID = domain.ID(utils.GenerateUUID())
	}
	if lead.Source == "" {
		lead.Source = _sourceDirect
	}
	if lead.SubmittedAt.IsZero() {
		lead.SubmittedAt = time.Now()
	}
	lead.Outcome = domain.EvaluateOutcome(leadAnswers(lead))

	s.store(ctx, lead)
	s.publish(ctx, lead)

	return Submission{LeadID: lead.ID, Redirect: lead.Outcome.Redirect()}, nil
}

func (s *SimpleLeadService) AllLeads(ctx context.Context, pagination Pagination) ([]domain.Lead, int, error) {
	leads, total, err := s.repository.FindAll(ctx, pagination)
	if err != nil {
		slog.Error("listing leads", slog.Any("error", err))
		return nil, 0, fmt.Errorf("listing leads: %w", err)
	}

	return leads, total, nil
}

// store is best-effort. A persistence failure is logged and counted but never
// surfaced: the lead already passed verification and forwarding still runs.
func (s *SimpleLeadService) store(ctx context.Context, lead domain.Lead) {
	err := s.repository.Create(ctx, lead)
	if err == nil {
		return
	}

	slog.Error("persisting lead",
		slog.String("lead_id", lead.ID.String()),
		slog.String("source", lead.Source),
		slog.Any("error", err))

	if s.persistFailures != nil {
		s.persistFailures.Add(ctx, 1, metric.WithAttributes(
			attribute.String("source", lead.Source),
		))
	}
}

func (s *SimpleLeadService) publish(ctx context.Context, lead domain.Lead) {
	err := s.broker.Publish(ctx, TopicLeadSubmitted, async.BrokerMessage{
		Event: EventLeadSubmitted,
		Value: lead,
	})
	if err != nil {
		slog.Warn("publishing lead submission",
			slog.String("lead_id", lead.ID.String()),
			slog.Any("error", err))
	}
}

func leadAnswers(lead domain.Lead) domain.FormAnswers {
	return domain.FormAnswers{
		domain.FieldHomeOnProperty: lead.HomeOnProperty,
		domain.FieldPropertyListed: lead.PropertyListed,
		domain.FieldIsInherited:    lead.IsInherited,
		domain.FieldOwnedFourYears: lead.OwnedFourYears,
	}
}
