package evaluation

import (
	"testing"

	"github.com/google/uuid"
)

func TestProgressAdvance(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		semester  int
		steps     int
		want      Transition
		wantStage Stage
		wantIndex int
	}{
		{"more professors left", 3, 1, 1, Continue, StageProfessors, 1},
		{"last professor semester one", 2, 1, 2, Complete, StageProfessors, 2},
		{"last professor later semester", 2, 4, 2, EnterInternship, StageInternship, 0},
		{"single professor semester two", 1, 2, 1, EnterInternship, StageInternship, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProgress(uuid.New(), Uzbek)
			var got Transition
			for i := 0; i < tt.steps; i++ {
				got = p.Advance(tt.total, tt.semester)
			}
			if got != tt.want {
				t.Errorf("Advance() = %v, want %v", got, tt.want)
			}
			if p.Stage != tt.wantStage {
				t.Errorf("Stage = %q, want %q", p.Stage, tt.wantStage)
			}
			if p.ProfessorIndex != tt.wantIndex {
				t.Errorf("ProfessorIndex = %d, want %d", p.ProfessorIndex, tt.wantIndex)
			}
			if p.Language != Uzbek {
				t.Errorf("Language = %q, want %q", p.Language, Uzbek)
			}
		})
	}
}

func TestProgressExhausted(t *testing.T) {
	p := &Progress{ProfessorIndex: 3}
	if !p.Exhausted(3) {
		t.Error("Expected exhausted at index == total")
	}
	if p.Exhausted(4) {
		t.Error("Expected not exhausted at index < total")
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(0, 4); got != 25 {
		t.Errorf("Percent(0, 4) = %v, want 25", got)
	}
	if got := Percent(3, 4); got != 100 {
		t.Errorf("Percent(3, 4) = %v, want 100", got)
	}
	if got := Percent(0, 0); got != 0 {
		t.Errorf("Percent(0, 0) = %v, want 0", got)
	}
}
