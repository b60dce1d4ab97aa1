package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"havenground-server/internal/funnel/domain"
	"havenground-server/internal/infra/cache"
)

const (
	_sessionTTL       = 24 * time.Hour
	_sessionKeyPrefix = "wizard_session:"
)

func NewSessionService(cacheInstance cache.Cache) *SimpleSessionService {
	return &SimpleSessionService{
		cache: cacheInstance,
	}
}

var _ SessionService = (*SimpleSessionService)(nil)

type SimpleSessionService struct {
	cache cache.Cache
}

func (s *SimpleSessionService) Create(ctx context.Context, startingStep domain.Step) (domain.QualificationSession, error) {
	builder := domain.NewQualificationSessionBuilder()
	if startingStep != "" {
		builder = builder.WithStartingStep(startingStep)
	}

	session, err := builder.Build()
	if err != nil {
		return domain.QualificationSession{}, err
	}

	if startingStep != "" && startingStep != domain.FirstStep() {
		slog.Info("session created from deep link",
			slog.String("session_id", session.ID.String()),
			slog.String("step", string(startingStep)),
			slog.Bool("partial", true))
	}

	if err := s.save(ctx, session); err != nil {
		return domain.QualificationSession{}, err
	}
	return session, nil
}

func (s *SimpleSessionService) Get(ctx context.Context, id domain.ID) (domain.QualificationSession, error) {
	value, found := s.cache.Get(ctx, sessionKey(id))
	if !found {
		return domain.QualificationSession{}, ErrSessionNotFound
	}

	session, ok := value.(domain.QualificationSession)
	if !ok {
		return domain.QualificationSession{}, fmt.Errorf("unexpected cache value type %T", value)
	}

	return session, nil
}

func (s *SimpleSessionService) Advance(ctx context.Context, id domain.ID, field domain.Field, value string) (domain.QualificationSession, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return domain.QualificationSession{}, err
	}

	if err := session.Advance(field, value); err != nil {
		return session, err
	}

	if err := s.save(ctx, session); err != nil {
		return domain.QualificationSession{}, err
	}
	return session, nil
}

func (s *SimpleSessionService) Retreat(ctx context.Context, id domain.ID) (domain.QualificationSession, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return domain.QualificationSession{}, err
	}

	if err := session.Retreat(); err != nil {
		return session, err
	}

	if err := s.save(ctx, session); err != nil {
		return domain.QualificationSession{}, err
	}
	return session, nil
}

func (s *SimpleSessionService) Restart(ctx context.Context, id domain.ID) (domain.QualificationSession, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return domain.QualificationSession{}, err
	}

	session.Restart()

	if err := s.save(ctx, session); err != nil {
		return domain.QualificationSession{}, err
	}
	return session, nil
}

// The cache is the only store for in-progress sessions, so a rejected write is
// a failed operation, never a silent miss.
func (s *SimpleSessionService) save(ctx context.Context, session domain.QualificationSession) error {
	if !s.cache.Set(ctx, sessionKey(session.ID), session, _sessionTTL) {
		slog.Error("session state not stored", slog.String("session_id", session.ID.String()))
		return fmt.Errorf("session %s: %w", session.ID, ErrStateNotStored)
	}
	return nil
}

func sessionKey(id domain.ID) string {
	return _sessionKeyPrefix + id.String()
}
