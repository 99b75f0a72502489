package diagnostic

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/trilhaup/trilha/internal/category"
	"github.com/trilhaup/trilha/internal/quiz"
	"github.com/trilhaup/trilha/internal/trail"
)

type fakeBackend struct {
	trails     []trail.Trail
	userTrails []trail.Trail

	created   []Record
	linked    [][2]int
	createErr error
	linkErr   error
	listErr   error
	userErr   error
}

func (f *fakeBackend) ListTrails(ctx context.Context) ([]trail.Trail, error) {
	return f.trails, f.listErr
}

func (f *fakeBackend) ListUserTrails(ctx context.Context, userID int) ([]trail.Trail, error) {
	return f.userTrails, f.userErr
}

func (f *fakeBackend) CreateDiagnostic(ctx context.Context, rec Record) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, rec)
	return nil
}

func (f *fakeBackend) LinkTrail(ctx context.Context, userID, trailID int) error {
	if f.linkErr != nil {
		return f.linkErr
	}
	f.linked = append(f.linked, [2]int{userID, trailID})
	return nil
}

type fakeEligibility struct {
	eligible bool
	err      error
}

func (f *fakeEligibility) EligibleToRediagnose(ctx context.Context, userID int) (bool, error) {
	return f.eligible, f.err
}

func techAnswers(bank []quiz.Question) quiz.AnswerSet {
	answers := make(quiz.AnswerSet, len(bank))
	for _, q := range bank {
		answers[q.ID] = "b"
	}
	return answers
}

func newTestSubmitter(f *fakeBackend, e *fakeEligibility) *Submitter {
	return NewSubmitter(f, e, zap.NewNop(), nil)
}

func TestSubmit_Success(t *testing.T) {
	f := &fakeBackend{trails: []trail.Trail{
		{ID: 1, Name: "Trilha de Tecnologia"},
		{ID: 2, Name: "RH"},
	}}
	s := newTestSubmitter(f, &fakeEligibility{eligible: true})
	bank := quiz.DefaultBank()

	result, err := s.Submit(context.Background(), 5, bank, techAnswers(bank))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TrailID != 1 {
		t.Errorf("trail id = %d, want 1", result.TrailID)
	}
	if result.TrailName != "Trilha de Tecnologia" {
		t.Errorf("trail name = %q", result.TrailName)
	}
	if result.Winner != category.Tecnologia {
		t.Errorf("winner = %s, want TECNOLOGIA", result.Winner)
	}
	if len(f.created) != 1 {
		t.Fatalf("created = %d records, want 1", len(f.created))
	}
	rec := f.created[0]
	if rec.UserID != 5 || rec.TrailID != 1 || rec.Tally.Tecnologia != len(bank) {
		t.Errorf("record = %+v", rec)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("record timestamp is zero")
	}
	if len(f.linked) != 1 || f.linked[0] != [2]int{5, 1} {
		t.Errorf("linked = %v, want [[5 1]]", f.linked)
	}
}

func TestSubmit_UnresolvedTrailPersistsNothing(t *testing.T) {
	f := &fakeBackend{trails: []trail.Trail{{ID: 2, Name: "Culinária"}}}
	s := newTestSubmitter(f, &fakeEligibility{eligible: true})
	bank := quiz.DefaultBank()

	_, err := s.Submit(context.Background(), 5, bank, techAnswers(bank))
	if !errors.Is(err, category.ErrTrailNotResolved) {
		t.Fatalf("err = %v, want ErrTrailNotResolved", err)
	}
	if len(f.created) != 0 || len(f.linked) != 0 {
		t.Errorf("created=%d linked=%d, want nothing persisted", len(f.created), len(f.linked))
	}
}

func TestSubmit_NotEligibleBlocksBeforePersist(t *testing.T) {
	f := &fakeBackend{trails: []trail.Trail{{ID: 1, Name: "Tecnologia"}}}
	s := newTestSubmitter(f, &fakeEligibility{eligible: false})
	bank := quiz.DefaultBank()

	_, err := s.Submit(context.Background(), 5, bank, techAnswers(bank))
	if !errors.Is(err, ErrNotEligible) {
		t.Fatalf("err = %v, want ErrNotEligible", err)
	}
	if len(f.created) != 0 {
		t.Errorf("created = %d, want 0", len(f.created))
	}
}

func TestSubmit_PrimaryWriteFailureSurfacedVerbatim(t *testing.T) {
	backendErr := errors.New("limite de registros excedido")
	f := &fakeBackend{
		trails:    []trail.Trail{{ID: 1, Name: "Tecnologia"}},
		createErr: backendErr,
	}
	s := newTestSubmitter(f, &fakeEligibility{eligible: true})
	bank := quiz.DefaultBank()

	_, err := s.Submit(context.Background(), 5, bank, techAnswers(bank))
	if !errors.Is(err, backendErr) {
		t.Fatalf("err = %v, want the backend error passed through", err)
	}
	if len(f.linked) != 0 {
		t.Errorf("linked = %d, want 0 (nothing downstream runs)", len(f.linked))
	}
}

func TestSubmit_LinkFailureSwallowed(t *testing.T) {
	f := &fakeBackend{
		trails:  []trail.Trail{{ID: 1, Name: "Tecnologia"}},
		linkErr: errors.New("perfil bloqueado"),
	}
	s := newTestSubmitter(f, &fakeEligibility{eligible: true})
	bank := quiz.DefaultBank()

	result, err := s.Submit(context.Background(), 5, bank, techAnswers(bank))
	if err != nil {
		t.Fatalf("link failure must not fail the submission: %v", err)
	}
	if result.TrailID != 1 {
		t.Errorf("trail id = %d, want 1", result.TrailID)
	}
	if len(f.created) != 1 {
		t.Errorf("created = %d, want 1", len(f.created))
	}
}

func TestSubmit_DuplicateLinkSkipped(t *testing.T) {
	f := &fakeBackend{
		trails:     []trail.Trail{{ID: 1, Name: "Tecnologia"}},
		userTrails: []trail.Trail{{ID: 1, Name: "Tecnologia"}},
	}
	s := newTestSubmitter(f, &fakeEligibility{eligible: true})
	bank := quiz.DefaultBank()

	if _, err := s.Submit(context.Background(), 5, bank, techAnswers(bank)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.linked) != 0 {
		t.Errorf("linked = %v, want no duplicate link", f.linked)
	}
	if len(f.created) != 1 {
		t.Errorf("created = %d, want 1 (a new diagnostic is still recorded)", len(f.created))
	}
}

func TestSubmit_IncompleteAnswersRejected(t *testing.T) {
	f := &fakeBackend{trails: []trail.Trail{{ID: 1, Name: "Tecnologia"}}}
	s := newTestSubmitter(f, &fakeEligibility{eligible: true})
	bank := quiz.DefaultBank()
	answers := techAnswers(bank)
	delete(answers, bank[0].ID)

	_, err := s.Submit(context.Background(), 5, bank, answers)
	if !errors.Is(err, quiz.ErrIncomplete) {
		t.Fatalf("err = %v, want ErrIncomplete", err)
	}
	if len(f.created) != 0 {
		t.Errorf("created = %d, want 0", len(f.created))
	}
}
