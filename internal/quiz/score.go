package quiz

import "github.com/trilhaup/trilha/internal/category"

// Tally holds the per-category vote counts of a scored answer set. The
// three counts always sum to the number of answered questions.
type Tally struct {
	Administracao int
	Tecnologia    int
	RH            int
}

// Count returns the tally for one category.
func (t Tally) Count(c category.Category) int {
	switch c {
	case category.Administracao:
		return t.Administracao
	case category.Tecnologia:
		return t.Tecnologia
	case category.RH:
		return t.RH
	default:
		return 0
	}
}

// add increments the tally for one category.
func (t *Tally) add(c category.Category) {
	switch c {
	case category.Administracao:
		t.Administracao++
	case category.Tecnologia:
		t.Tecnologia++
	case category.RH:
		t.RH++
	}
}

// Score tallies one vote per answered question for the chosen
// alternative's category and returns the winning category.
//
// Precondition: answers is complete over bank (see Validate). Missing or
// unknown answers are skipped, which callers must prevent — a short tally
// is a caller bug, not a recoverable condition.
//
// Ties resolve to the first category reaching the maximum in the fixed
// order category.All() returns: ADMINISTRACAO, then TECNOLOGIA, then RH.
func Score(bank []Question, answers AnswerSet) (Tally, category.Category) {
	var tally Tally
	for i := range bank {
		q := &bank[i]
		alt := q.Alternative(answers[q.ID])
		if alt == nil {
			continue
		}
		tally.add(alt.Category)
	}

	winner := category.Administracao
	best := -1
	for _, c := range category.All() {
		if n := tally.Count(c); n > best {
			best = n
			winner = c
		}
	}
	return tally, winner
}
