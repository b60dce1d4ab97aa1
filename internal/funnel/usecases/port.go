package usecases

import (
	"context"
	"errors"

	"havenground-server/internal/funnel/domain"
	"havenground-server/internal/infra/classifier"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionNotReady     = errors.New("session has not completed all qualifying steps")
	ErrPhoneNotVerified    = errors.New("phone number is not verified")
	ErrCodeNotRequested    = errors.New("no code was requested for this phone number")
	ErrCodeRejected        = errors.New("verification code rejected")
	ErrProviderRejected    = errors.New("verification provider rejected the request")
	ErrProviderUnavailable = errors.New("verification provider unavailable")
	ErrStateNotStored      = errors.New("state could not be stored")
)

// Pagination encapsulates pagination parameters for repository queries
type Pagination struct {
	Limit  int
	Offset int
}

type LeadRepository interface {
	Create(context.Context, domain.Lead) error
	FindAll(context.Context, Pagination) ([]domain.Lead, int, error)
}

// VerificationProvider is the outbound port to the OTP provider. The provider
// holds all knowledge of valid codes; no local comparison ever happens.
type VerificationProvider interface {
	SendCode(ctx context.Context, e164 string) error
	CheckCode(ctx context.Context, e164, code string) (bool, error)
}

type ReasonClassifier interface {
	Classify(ctx context.Context, reason string) (classifier.Result, error)
}
