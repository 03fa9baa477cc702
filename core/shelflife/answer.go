package shelflife

import "strings"

type Answer int

const (
	AnswerInvalid Answer = iota
	AnswerYes
	AnswerNo
)

// AnswerFrom reads a single operator response, only an exact y or n counts
func AnswerFrom(input string) Answer {
	switch strings.TrimSpace(input) {
	case "y":
		return AnswerYes
	case "n":
		return AnswerNo
	}
	return AnswerInvalid
}

func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "yes"
	case AnswerNo:
		return "no"
	}
	return "invalid"
}
