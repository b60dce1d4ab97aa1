package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"havenground-server/internal/infra/cache"
)

const (
	_otpSessionTTL = 10 * time.Minute
	_otpKeyPrefix  = "otp_session:"
)

// OtpSession is the ephemeral verification state for one phone number. It is
// destroyed when the phone is edited and expires with the provider challenge
// window.
type OtpSession struct {
	Phone     string
	CodeSent  bool
	Verified  bool
	LastError string
}

func NewVerificationService(provider VerificationProvider, cacheInstance cache.Cache) *SimpleVerificationService {
	return &SimpleVerificationService{
		provider: provider,
		cache:    cacheInstance,
	}
}

var _ VerificationService = (*SimpleVerificationService)(nil)

type SimpleVerificationService struct {
	provider VerificationProvider
	cache    cache.Cache
}

// RequestCode dispatches a one-time code over SMS. A new request supersedes
// any prior unconsumed challenge for the same number, provider-side and here.
func (s *SimpleVerificationService) RequestCode(ctx context.Context, e164 string) error {
	session := OtpSession{Phone: e164}

	err := s.provider.SendCode(ctx, e164)
	if err != nil {
		session.LastError = err.Error()
		s.save(ctx, session)

		if errors.Is(err, ErrProviderRejected) {
			slog.Warn("otp send rejected by provider", slog.String("phone", e164))
			return ErrProviderRejected
		}

		slog.Error("otp send failed", slog.String("phone", e164), slog.Any("error", err))
		return ErrProviderUnavailable
	}

	session.CodeSent = true
	if err := s.save(ctx, session); err != nil {
		return err
	}
	return nil
}

// VerifyCode checks the submitted code with the provider. It never runs before
// a successful RequestCode for the same number, and acceptance comes only from
// the provider's affirmative status.
func (s *SimpleVerificationService) VerifyCode(ctx context.Context, e164, code string) error {
	session, found := s.load(ctx, e164)
	if !found || !session.CodeSent {
		return ErrCodeNotRequested
	}

	approved, err := s.provider.CheckCode(ctx, e164, code)
	if err != nil {
		session.LastError = err.Error()
		s.save(ctx, session)

		if errors.Is(err, ErrProviderRejected) {
			slog.Warn("otp check rejected by provider", slog.String("phone", e164))
			return ErrProviderRejected
		}

		slog.Error("otp check failed", slog.String("phone", e164), slog.Any("error", err))
		return ErrProviderUnavailable
	}

	if !approved {
		session.LastError = "code rejected"
		s.save(ctx, session)
		return ErrCodeRejected
	}

	session.Verified = true
	session.LastError = ""
	if err := s.save(ctx, session); err != nil {
		return err
	}

	slog.Info("phone verified", slog.String("phone", e164))
	return nil
}

func (s *SimpleVerificationService) IsVerified(ctx context.Context, e164 string) bool {
	session, found := s.load(ctx, e164)
	return found && session.Verified
}

// Reset destroys the session, used when the user edits the phone number or
// navigates back.
func (s *SimpleVerificationService) Reset(ctx context.Context, e164 string) {
	s.cache.Delete(ctx, otpKey(e164))
}

// The cache is the only store for OTP sessions. A rejected write on the
// CodeSent or Verified transition fails the operation; LastError bookkeeping
// writes on paths already returning an error stay best-effort.
func (s *SimpleVerificationService) save(ctx context.Context, session OtpSession) error {
	if !s.cache.Set(ctx, otpKey(session.Phone), session, _otpSessionTTL) {
		slog.Error("otp session not stored", slog.String("phone", session.Phone))
		return fmt.Errorf("otp session for %s: %w", session.Phone, ErrStateNotStored)
	}
	return nil
}

func (s *SimpleVerificationService) load(ctx context.Context, e164 string) (OtpSession, bool) {
	value, found := s.cache.Get(ctx, otpKey(e164))
	if !found {
		return OtpSession{}, false
	}

	session, ok := value.(OtpSession)
	if !ok {
		return OtpSession{}, false
	}

	return session, true
}

func otpKey(e164 string) string {
	return _otpKeyPrefix + e164
}
