package domain

import (
	"errors"
	"strings"
	"time"

	"havenground-server/internal/infra/utils"
)

type DisqualifyReason string

const (
	DisqualifyProfessionalRole DisqualifyReason = "PROFESSIONAL_ROLE"
	DisqualifyTooSmall         DisqualifyReason = "TOO_SMALL"
	DisqualifyHasHome          DisqualifyReason = "HAS_HOME"
	DisqualifyAlreadyListed    DisqualifyReason = "ALREADY_LISTED"
)

// MinReasonLength is the character-count floor for the free-text selling
// reason step.
const MinReasonLength = 50

var (
	ErrSessionDisqualified = errors.New("session is disqualified")
	ErrSessionComplete     = errors.New("session already completed all steps")
	ErrReasonTooShort      = errors.New("selling reason below minimum length")
	ErrUnexpectedField     = errors.New("answer does not belong to the current step")
	ErrAtFirstStep         = errors.New("already at the first step")
	ErrUnknownStep         = errors.New("unknown step")
)

// QualificationSession owns the wizard's step position and collected answers
// for one in-progress form instance. It is never shared across sessions.
type QualificationSession struct {
	ID               ID
	Current          Step
	Answers          FormAnswers
	Disqualified     bool
	DisqualifyReason DisqualifyReason
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Advance merges the answer for the current step, evaluates the hard
// disqualification rules for the step just completed, and moves to the next
// step honoring skip predicates.
func (s *QualificationSession) Advance(field Field, value string) error {
	if s.Disqualified {
		return ErrSessionDisqualified
	}
	if s.Current == StepReadyForOtp {
		return ErrSessionComplete
	}

	expected, ok := FieldForStep(s.Current)
	if !ok {
		return ErrUnknownStep
	}
	if field != expected {
		return ErrUnexpectedField
	}

	if s.Current == StepWhySelling && len(strings.TrimSpace(value)) < MinReasonLength {
		return ErrReasonTooShort
	}

	s.Answers.Set(field, value)
	s.UpdatedAt = time.Now()

	if reason, disqualified := disqualifyReasonFor(s.Current, s.Answers); disqualified {
		s.Disqualified = true
		s.DisqualifyReason = reason
		return nil
	}

	s.Current = NextStep(s.Current, s.Answers)
	return nil
}

// Retreat moves to the previous step with symmetric skip handling. It never
// clears answers already entered, and a disqualified session does not
// support retreat.
func (s *QualificationSession) Retreat() error {
	if s.Disqualified {
		return ErrSessionDisqualified
	}

	previous := PreviousStep(s.Current, s.Answers)
	if previous == s.Current {
		return ErrAtFirstStep
	}

	s.Current = previous
	s.UpdatedAt = time.Now()
	return nil
}

// Restart is the only way out of the disqualified state.
func (s *QualificationSession) Restart() {
	s.Current = FirstStep()
	s.Answers = make(FormAnswers)
	s.Disqualified = false
	s.DisqualifyReason = ""
	s.UpdatedAt = time.Now()
}

func (s *QualificationSession) ReadyForOtp() bool {
	return s.Current == StepReadyForOtp
}

// disqualifyReasonFor evaluates the hard rules against the updated answers
// for the step just completed.
func disqualifyReasonFor(completed Step, answers FormAnswers) (DisqualifyReason, bool) {
	switch completed {
	case StepRole:
		role := answers.Get(FieldRole)
		if role == RoleRealtor || role == RoleWholesaler {
			return DisqualifyProfessionalRole, true
		}
	case StepAcreage:
		if answers.Get(FieldAcreage) == smallestAcreageBracket() {
			return DisqualifyTooSmall, true
		}
	case StepHomeOnProperty:
		if answers.Get(FieldHomeOnProperty) == AnswerYes && !isLargeAcreageBracket(answers.Get(FieldAcreage)) {
			return DisqualifyHasHome, true
		}
	case StepPropertyListed:
		if answers.Get(FieldPropertyListed) == AnswerYes {
			return DisqualifyAlreadyListed, true
		}
	}

	return "", false
}

func NewQualificationSessionBuilder() *qualificationSessionBuilder {
	return &qualificationSessionBuilder{}
}

type qualificationSessionBuilder struct {
	actions []qualificationSessionHandler
}

type qualificationSessionHandler func(s *QualificationSession) error

// WithStartingStep supports the direct deep-link entry point: an arbitrary
// mid-sequence step is accepted without retroactive validation of earlier
// answers.
func (b *qualificationSessionBuilder) WithStartingStep(step Step) *qualificationSessionBuilder {
	b.actions = append(b.actions, func(s *QualificationSession) error {
		if !IsValidStep(step) {
			return ErrUnknownStep
		}
		s.Current = step
		return nil
	})
	return b
}

func (b *qualificationSessionBuilder) Build() (QualificationSession, error) {
	now := time.Now()
	result := QualificationSession{
		ID:        ID(utils.GenerateUUID()),
		Current:   FirstStep(),
		Answers:   make(FormAnswers),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return QualificationSession{}, err
		}
	}

	return result, nil
}
