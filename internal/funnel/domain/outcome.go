package domain

// Outcome is the soft qualification tag attached at submission time. It is
// intentionally a separate rule set from the hard disqualification gate: a
// session can reach submission without being hard-disqualified and still be
// tagged as not fully qualified for routing.
type Outcome string

const (
	OutcomeFullyQualified    Outcome = "fully_qualified"
	OutcomeNotFullyQualified Outcome = "not_fully_qualified"
)

const (
	redirectQualified = "/thank-you-qualified"
	redirectDefault   = "/thank-you"
)

// EvaluateOutcome retags the answers for routing: no home, not listed, and
// tenure satisfied. An inherited property satisfies tenure because the
// years-owned question is skipped for it.
func EvaluateOutcome(answers FormAnswers) Outcome {
	tenure := answers.Get(FieldOwnedFourYears) == AnswerYes ||
		answers.Get(FieldIsInherited) == AnswerYes

	if answers.Get(FieldHomeOnProperty) == AnswerNo &&
		answers.Get(FieldPropertyListed) == AnswerNo &&
		tenure {
		return OutcomeFullyQualified
	}

	return OutcomeNotFullyQualified
}

// Redirect returns the outcome destination shown after submission.
func (o Outcome) Redirect() string {
	if o == OutcomeFullyQualified {
		return redirectQualified
	}
	return redirectDefault
}
