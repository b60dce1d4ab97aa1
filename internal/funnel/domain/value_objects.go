package domain

type ID string

func (vo ID) String() string {
	return string(vo)
}

const (
	AnswerYes = "yes"
	AnswerNo  = "no"
)
