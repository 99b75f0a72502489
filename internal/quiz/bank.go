package quiz

import (
	"errors"
	"fmt"

	"github.com/trilhaup/trilha/internal/category"
)

// ErrIncomplete means the answer set does not cover every question in the
// bank. Scoring requires a complete set; callers validate before scoring.
var ErrIncomplete = errors.New("questionário incompleto")

// Alternative is one choice of a question, tagged with the category it
// votes for.
type Alternative struct {
	Letter   string
	Text     string
	Category category.Category
}

// Question is one entry of the fixed diagnostic bank.
type Question struct {
	ID           int
	Prompt       string
	Alternatives []Alternative
}

// Alternative returns the alternative with the given letter, or nil.
func (q *Question) Alternative(letter string) *Alternative {
	for i := range q.Alternatives {
		if q.Alternatives[i].Letter == letter {
			return &q.Alternatives[i]
		}
	}
	return nil
}

// AnswerSet maps question id to the chosen alternative letter.
type AnswerSet map[int]string

// Validate checks that answers covers every question in the bank with a
// letter that exists on that question. This is the precondition gate for
// Score; partial or malformed input never reaches the scorer.
func Validate(bank []Question, answers AnswerSet) error {
	for i := range bank {
		q := &bank[i]
		letter, ok := answers[q.ID]
		if !ok {
			return fmt.Errorf("%w: questão %d sem resposta", ErrIncomplete, q.ID)
		}
		if q.Alternative(letter) == nil {
			return fmt.Errorf("%w: questão %d: alternativa %q inexistente", ErrIncomplete, q.ID, letter)
		}
	}
	return nil
}
