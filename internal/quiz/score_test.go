package quiz

import (
	"strings"
	"testing"

	"github.com/trilhaup/trilha/internal/category"
)

// answerAll builds a complete AnswerSet picking the same letter everywhere.
func answerAll(bank []Question, letter string) AnswerSet {
	answers := make(AnswerSet, len(bank))
	for _, q := range bank {
		answers[q.ID] = letter
	}
	return answers
}

func TestScore_TallySumsToQuestionCount(t *testing.T) {
	bank := DefaultBank()
	for _, letter := range []string{"a", "b", "c"} {
		tally, _ := Score(bank, answerAll(bank, letter))
		sum := tally.Administracao + tally.Tecnologia + tally.RH
		if sum != len(bank) {
			t.Errorf("letter %s: tally sum = %d, want %d", letter, sum, len(bank))
		}
	}
}

func TestScore_StrictMajorityWins(t *testing.T) {
	bank := DefaultBank()
	tests := []struct {
		letter string
		want   category.Category
	}{
		{"a", category.Administracao},
		{"b", category.Tecnologia},
		{"c", category.RH},
	}
	for _, tt := range tests {
		tally, winner := Score(bank, answerAll(bank, tt.letter))
		if winner != tt.want {
			t.Errorf("letter %s: winner = %s, want %s", tt.letter, winner, tt.want)
		}
		if got := tally.Count(tt.want); got != len(bank) {
			t.Errorf("letter %s: count = %d, want %d", tt.letter, got, len(bank))
		}
	}
}

func TestScore_TieBreakFixedOrder(t *testing.T) {
	bank := DefaultBank()
	// First five questions vote ADMINISTRACAO, last five TECNOLOGIA: 5×5×0.
	answers := make(AnswerSet, len(bank))
	for i, q := range bank {
		if i < 5 {
			answers[q.ID] = "a"
		} else {
			answers[q.ID] = "b"
		}
	}

	tally, winner := Score(bank, answers)
	if tally.Administracao != 5 || tally.Tecnologia != 5 || tally.RH != 0 {
		t.Fatalf("tally = %+v, want 5/5/0", tally)
	}
	if winner != category.Administracao {
		t.Errorf("winner = %s, want %s (fixed priority order)", winner, category.Administracao)
	}
}

func TestScore_ThreeWayTieBreak(t *testing.T) {
	// A synthetic 3-question bank where every category scores 1.
	bank := []Question{
		{ID: 1, Alternatives: []Alternative{{Letter: "a", Category: category.Administracao}}},
		{ID: 2, Alternatives: []Alternative{{Letter: "a", Category: category.Tecnologia}}},
		{ID: 3, Alternatives: []Alternative{{Letter: "a", Category: category.RH}}},
	}
	_, winner := Score(bank, AnswerSet{1: "a", 2: "a", 3: "a"})
	if winner != category.Administracao {
		t.Errorf("winner = %s, want %s", winner, category.Administracao)
	}
}

func TestValidate_MissingAnswer(t *testing.T) {
	bank := DefaultBank()
	answers := answerAll(bank, "a")
	delete(answers, bank[3].ID)

	err := Validate(bank, answers)
	if err == nil {
		t.Fatal("expected error for missing answer")
	}
	if !strings.Contains(err.Error(), "incompleto") {
		t.Errorf("error = %q, want mention of incompleteness", err)
	}
}

func TestValidate_UnknownLetter(t *testing.T) {
	bank := DefaultBank()
	answers := answerAll(bank, "a")
	answers[bank[0].ID] = "z"

	if err := Validate(bank, answers); err == nil {
		t.Fatal("expected error for unknown letter")
	}
}

func TestValidate_Complete(t *testing.T) {
	bank := DefaultBank()
	if err := Validate(bank, answerAll(bank, "c")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDefaultBank_Shape(t *testing.T) {
	bank := DefaultBank()
	if len(bank) != 10 {
		t.Fatalf("bank size = %d, want 10", len(bank))
	}
	for _, q := range bank {
		if len(q.Alternatives) != 3 {
			t.Errorf("question %d has %d alternatives, want 3", q.ID, len(q.Alternatives))
		}
		for _, alt := range q.Alternatives {
			if !category.Valid(alt.Category) {
				t.Errorf("question %d alternative %s has invalid category %q", q.ID, alt.Letter, alt.Category)
			}
		}
	}
}
