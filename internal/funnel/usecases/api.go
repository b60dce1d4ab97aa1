package usecases

import (
	"context"

	"havenground-server/internal/funnel/domain"
	"havenground-server/internal/infra/classifier"
)

type SessionService interface {
	Create(context.Context, domain.Step) (domain.QualificationSession, error)
	Get(context.Context, domain.ID) (domain.QualificationSession, error)
	Advance(ctx context.Context, id domain.ID, field domain.Field, value string) (domain.QualificationSession, error)
	Retreat(context.Context, domain.ID) (domain.QualificationSession, error)
	Restart(context.Context, domain.ID) (domain.QualificationSession, error)
}

type VerificationService interface {
	RequestCode(ctx context.Context, e164 string) error
	VerifyCode(ctx context.Context, e164, code string) error
	IsVerified(ctx context.Context, e164 string) bool
	Reset(ctx context.Context, e164 string)
}

type LeadService interface {
	SubmitFromSession(context.Context, domain.ID) (Submission, error)
	SubmitDirect(context.Context, domain.Lead) (Submission, error)
	AllLeads(context.Context, Pagination) ([]domain.Lead, int, error)
}

type ReasonService interface {
	ValidateReason(ctx context.Context, reason string) classifier.Result
}

// Submission is the user-facing result of a lead submission.
type Submission struct {
	LeadID   domain.ID
	Redirect string
}
