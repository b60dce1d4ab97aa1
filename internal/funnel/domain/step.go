package domain

// Step identifies a position in the qualification wizard. The domain is a
// fixed enumerated set, not a dense index range, because skip-logic jumps
// over steps.
type Step string

const (
	StepRole           Step = "role"
	StepAcreage        Step = "acreage"
	StepHomeOnProperty Step = "home_on_property"
	StepPropertyListed Step = "property_listed"
	StepIsInherited    Step = "is_inherited"
	StepOwnedFourYears Step = "owned_four_years"
	StepWhySelling     Step = "why_selling"
	StepState          Step = "state"
	StepCounty         Step = "county"
	StepAddress        Step = "address"
	StepFullName       Step = "full_name"
	StepDeedNames      Step = "deed_names"
	StepEmail          Step = "email"
	StepPhone          Step = "phone"

	// StepReadyForOtp is the terminal qualifying state: all steps completed,
	// awaiting phone verification.
	StepReadyForOtp Step = "ready_for_otp"
)

const (
	RoleRealtor    = "realtor"
	RoleWholesaler = "wholesaler"
)

// AcreageBrackets is ordered smallest to largest.
var AcreageBrackets = []string{
	"0-2 Acres",
	"2-5 Acres",
	"5-10 Acres",
	"10-20 Acres",
	"20-50 Acres",
	"50-100 Acres",
	"100+ Acres",
}

// stepDefinition declares a step's collected field and its skip predicate.
// Declaring skips here keeps forward and backward navigation symmetric by
// construction instead of re-deriving the jump in two places.
type stepDefinition struct {
	step     Step
	field    Field
	skipWhen func(FormAnswers) bool
}

var stepSequence = []stepDefinition{
	{step: StepRole, field: FieldRole},
	{step: StepAcreage, field: FieldAcreage},
	{step: StepHomeOnProperty, field: FieldHomeOnProperty},
	{step: StepPropertyListed, field: FieldPropertyListed},
	{step: StepIsInherited, field: FieldIsInherited},
	{
		step:  StepOwnedFourYears,
		field: FieldOwnedFourYears,
		skipWhen: func(answers FormAnswers) bool {
			return answers.Get(FieldIsInherited) == AnswerYes
		},
	},
	{step: StepWhySelling, field: FieldWhySelling},
	{step: StepState, field: FieldState},
	{step: StepCounty, field: FieldCounty},
	{step: StepAddress, field: FieldAddress},
	{step: StepFullName, field: FieldFullName},
	{step: StepDeedNames, field: FieldDeedNames},
	{step: StepEmail, field: FieldEmail},
	{step: StepPhone, field: FieldPhone},
}

func FirstStep() Step {
	return stepSequence[0].step
}

func IsValidStep(step Step) bool {
	return indexOfStep(step) >= 0
}

// FieldForStep returns the field a step collects. The terminal step collects
// nothing.
func FieldForStep(step Step) (Field, bool) {
	index := indexOfStep(step)
	if index < 0 {
		return "", false
	}
	return stepSequence[index].field, true
}

// NextStep walks forward from the given step, jumping over any step whose
// skip predicate holds for the current answers. Walking past the last step
// lands on StepReadyForOtp.
func NextStep(current Step, answers FormAnswers) Step {
	index := indexOfStep(current)
	if index < 0 {
		return current
	}

	for i := index + 1; i < len(stepSequence); i++ {
		if stepSequence[i].skipWhen != nil && stepSequence[i].skipWhen(answers) {
			continue
		}
		return stepSequence[i].step
	}

	return StepReadyForOtp
}

// PreviousStep walks backward honoring the same skip predicates, so
// retreating from the step after a skipped one lands on the step that caused
// the skip, not on the skipped step itself. At the first step it returns the
// step unchanged.
func PreviousStep(current Step, answers FormAnswers) Step {
	index := indexOfStep(current)
	if current == StepReadyForOtp {
		index = len(stepSequence)
	}
	if index < 0 {
		return current
	}

	for i := index - 1; i >= 0; i-- {
		if stepSequence[i].skipWhen != nil && stepSequence[i].skipWhen(answers) {
			continue
		}
		return stepSequence[i].step
	}

	return current
}

func indexOfStep(step Step) int {
	for i, definition := range stepSequence {
		if definition.step == step {
			return i
		}
	}
	return -1
}

func smallestAcreageBracket() string {
	return AcreageBrackets[0]
}

// isLargeAcreageBracket reports whether the bracket is one of the two
// largest, the only brackets where a home on the property does not
// disqualify.
func isLargeAcreageBracket(bracket string) bool {
	for _, large := range AcreageBrackets[len(AcreageBrackets)-2:] {
		if bracket == large {
			return true
		}
	}
	return false
}
