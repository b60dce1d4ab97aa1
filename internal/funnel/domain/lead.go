package domain

import (
	"time"

	"havenground-server/internal/infra/utils"
)

// Lead is the durable artifact assembled after phone verification succeeds.
// Once persisted it is immutable; the form session retains no write access.
type Lead struct {
	ID             ID
	FullName       string
	Email          string
	PhoneDisplay   string
	PhoneE164      string
	PhoneVerified  bool
	Role           string
	Acreage        string
	HomeOnProperty string
	PropertyListed string
	IsInherited    string
	OwnedFourYears string
	WhySelling     string
	State          string
	County         string
	Address        string
	DeedNames      string
	Source         string
	Outcome        Outcome
	SubmittedAt    time.Time
}

func NewLeadBuilder() *leadBuilder {
	return &leadBuilder{}
}

type leadBuilder struct {
	actions []leadHandler
}

type leadHandler func(l *Lead) error

// WithAnswers copies the collected responses into the lead record.
func (b *leadBuilder) WithAnswers(answers FormAnswers) *leadBuilder {
	b.actions = append(b.actions, func(l *Lead) error {
		l.FullName = answers.Get(FieldFullName)
		l.Email = answers.Get(FieldEmail)
		l.PhoneDisplay = answers.Get(FieldPhone)
		l.Role = answers.Get(FieldRole)
		l.Acreage = answers.Get(FieldAcreage)
		l.HomeOnProperty = answers.Get(FieldHomeOnProperty)
		l.PropertyListed = answers.Get(FieldPropertyListed)
		l.IsInherited = answers.Get(FieldIsInherited)
		l.OwnedFourYears = answers.Get(FieldOwnedFourYears)
		l.WhySelling = answers.Get(FieldWhySelling)
		l.State = answers.Get(FieldState)
		l.County = answers.Get(FieldCounty)
		l.Address = answers.Get(FieldAddress)
		l.DeedNames = answers.Get(FieldDeedNames)
		l.Outcome = EvaluateOutcome(answers)
		return nil
	})
	return b
}

func (b *leadBuilder) WithVerifiedPhone(e164 string) *leadBuilder {
	b.actions = append(b.actions, func(l *Lead) error {
		l.PhoneE164 = e164
		l.PhoneVerified = true
		return nil
	})
	return b
}

func (b *leadBuilder) WithSource(source string) *leadBuilder {
	b.actions = append(b.actions, func(l *Lead) error {
		l.Source = source
		return nil
	})
	return b
}

func (b *leadBuilder) Build() (Lead, error) {
	result := Lead{
		ID:          ID(utils.GenerateUUID()),
		Outcome:     OutcomeNotFullyQualified,
		SubmittedAt: time.Now(),
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Lead{}, err
		}
	}

	return result, nil
}
