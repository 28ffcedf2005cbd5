package evaluation

import (
	"testing"

	"github.com/google/uuid"
)

func TestSurveyAverage(t *testing.T) {
	tests := []struct {
		name    string
		ratings []Rating
		want    float64
	}{
		{"not applicable excluded", []Rating{1, 2, 6, 6}, 1.5},
		{"only not applicable", []Rating{6, 6, 6}, 0},
		{"empty", nil, 0},
		{"single", []Rating{4}, 4},
		{"mixed", []Rating{1, 2, 3, 4, 5}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SurveyAverage(tt.ratings); got != tt.want {
				t.Errorf("SurveyAverage(%v) = %v, want %v", tt.ratings, got, tt.want)
			}
		})
	}
}

func TestStrictAndNaiveAverage(t *testing.T) {
	tests := []struct {
		name       string
		averages   []float64
		wantStrict float64
		wantStrOK  bool
		wantNaive  float64
		wantNaiOK  bool
	}{
		{"zeros dropped by strict only", []float64{2, 0, 4}, 3, true, 2, true},
		{"all zeros", []float64{0, 0}, 0, false, 0, true},
		{"no surveys", nil, 0, false, 0, false},
		{"all rated", []float64{1.5, 2.5}, 2, true, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strict, ok := StrictAverage(tt.averages)
			if strict != tt.wantStrict || ok != tt.wantStrOK {
				t.Errorf("StrictAverage() = (%v, %v), want (%v, %v)", strict, ok, tt.wantStrict, tt.wantStrOK)
			}
			naive, ok := NaiveAverage(tt.averages)
			if naive != tt.wantNaive || ok != tt.wantNaiOK {
				t.Errorf("NaiveAverage() = (%v, %v), want (%v, %v)", naive, ok, tt.wantNaive, tt.wantNaiOK)
			}
		})
	}
}

func TestPooledAverage(t *testing.T) {
	avg, ok := PooledAverage([]Rating{1, 1, 4, 6})
	if !ok || avg != 2 {
		t.Errorf("PooledAverage() = (%v, %v), want (2, true)", avg, ok)
	}

	if _, ok := PooledAverage([]Rating{6}); ok {
		t.Error("Expected no data for a question answered only with N/A")
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.234, 1.23},
		{1.235, 1.24},
		{2, 2},
		{2.666666, 2.67},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParticipationRate(t *testing.T) {
	if got := ParticipationRate(5, 20); got != 25 {
		t.Errorf("ParticipationRate(5, 20) = %v, want 25", got)
	}
	if got := ParticipationRate(3, 0); got != 0 {
		t.Errorf("ParticipationRate(3, 0) = %v, want 0", got)
	}
}

func TestRankAscending(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	ranked := RankAscending([]Score{
		{ProfessorID: a, Average: 3.2},
		{ProfessorID: b, Average: 1.4},
		{ProfessorID: c, Average: 2.0},
	})

	want := []uuid.UUID{b, c, a}
	for i, r := range ranked {
		if r.ProfessorID != want[i] {
			t.Errorf("rank %d = %s, want %s", i+1, r.ProfessorID, want[i])
		}
		if r.Rank != i+1 {
			t.Errorf("Rank = %d, want %d", r.Rank, i+1)
		}
	}
}
