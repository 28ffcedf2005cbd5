package evaluation

import "github.com/google/uuid"

type Stage string

const (
	StageProfessors Stage = "professors"
	StageInternship Stage = "internship"
)

// Transition is what follows after the cursor moves.
type Transition int

const (
	// Continue means another professor is waiting.
	Continue Transition = iota
	// EnterInternship means the professors are exhausted and the group is past
	// its first semester.
	EnterInternship
	// Complete means the pass is over and participation must be counted.
	Complete
)

func (t Transition) String() string {
	switch t {
	case Continue:
		return "continue"
	case EnterInternship:
		return "internship"
	case Complete:
		return "complete"
	}
	return "unknown"
}

// Progress is the per-session wizard state.
type Progress struct {
	GroupID        uuid.UUID `json:"group_id"`
	Language       Language  `json:"language"`
	ProfessorIndex int       `json:"professor_index"`
	Stage          Stage     `json:"stage"`
}

func NewProgress(groupID uuid.UUID, lang Language) *Progress {
	return &Progress{
		GroupID:  groupID,
		Language: lang,
		Stage:    StageProfessors,
	}
}

// Exhausted reports whether every one of total professors has been handled.
func (p *Progress) Exhausted(total int) bool {
	return p.ProfessorIndex >= total
}

// Advance moves past the current professor, submitted or skipped. When that
// was the last one the completion branch is taken.
func (p *Progress) Advance(total, semester int) Transition {
	p.ProfessorIndex++
	if p.ProfessorIndex < total {
		return Continue
	}
	return p.Conclude(semester)
}

// Conclude runs the completion branch. Groups past semester 1 move on to the
// internship step with the cursor cleared; everyone else is done.
func (p *Progress) Conclude(semester int) Transition {
	if HasInternship(semester) {
		p.Stage = StageInternship
		p.ProfessorIndex = 0
		return EnterInternship
	}
	return Complete
}

func HasInternship(semester int) bool {
	return semester > 1
}

// Percent is the progress shown while evaluating the professor at index.
func Percent(index, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(index+1) / float64(total) * 100
}
