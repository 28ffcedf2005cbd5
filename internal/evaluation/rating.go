package evaluation

import "fmt"

// Rating is a Likert answer. Lower is better; NotApplicable is stored but
// never enters an average.
type Rating int

const (
	StronglyAgree Rating = iota + 1
	Agree
	Neutral
	Disagree
	StronglyDisagree
	NotApplicable
)

var ratingLabels = map[Rating]string{
	StronglyAgree:    "Strongly Agree",
	Agree:            "Agree",
	Neutral:          "Neither Agree nor Disagree",
	Disagree:         "Disagree",
	StronglyDisagree: "Strongly Disagree",
	NotApplicable:    "Not Applicable",
}

func (r Rating) Valid() bool {
	return r >= StronglyAgree && r <= NotApplicable
}

// Eligible reports whether r counts towards averages.
func (r Rating) Eligible() bool {
	return r >= StronglyAgree && r < NotApplicable
}

func (r Rating) Label() string {
	if l, ok := ratingLabels[r]; ok {
		return l
	}
	return fmt.Sprintf("Unknown (%d)", int(r))
}

// Kind is the answer type of a question.
type Kind string

const (
	KindRating Kind = "rating"
	KindText   Kind = "text"
)

func (k Kind) Valid() bool {
	return k == KindRating || k == KindText
}
