package domain

// Field is the logical name of a collected response.
type Field string

const (
	FieldRole           Field = "role"
	FieldAcreage        Field = "acreage"
	FieldHomeOnProperty Field = "home_on_property"
	FieldPropertyListed Field = "property_listed"
	FieldIsInherited    Field = "is_inherited"
	FieldOwnedFourYears Field = "owned_four_years"
	FieldWhySelling     Field = "why_selling"
	FieldState          Field = "state"
	FieldCounty         Field = "county"
	FieldAddress        Field = "address"
	FieldFullName       Field = "full_name"
	FieldDeedNames      Field = "deed_names"
	FieldEmail          Field = "email"
	FieldPhone          Field = "phone"
)

// FormAnswers holds collected responses keyed by field. Fields not yet
// reached are absent, never defaulted.
type FormAnswers map[Field]string

func (a FormAnswers) Get(field Field) string {
	return a[field]
}

func (a FormAnswers) Has(field Field) bool {
	_, ok := a[field]
	return ok
}

func (a FormAnswers) Set(field Field, value string) {
	a[field] = value
}

func (a FormAnswers) Clone() FormAnswers {
	clone := make(FormAnswers, len(a))
	for field, value := range a {
		clone[field] = value
	}
	return clone
}
