package trail

import (
	"context"
	"errors"
	"testing"
)

func TestEligible_ZeroLinkedTrails(t *testing.T) {
	f := newFakeBackend()
	ok, err := NewAggregator(f).EligibleToRediagnose(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("eligible = false, want true with zero linked trails")
	}
}

func TestEligible_IncompleteTrail(t *testing.T) {
	f := newFakeBackend()
	seedTrail(f)
	f.userTrails = f.trails
	f.overlays[11] = Overlay{UserID: 5, TrailCourseID: 11, Status: StatusCompleted}
	f.overlays[12] = Overlay{UserID: 5, TrailCourseID: 12, Status: StatusInProgress}

	ok, err := NewAggregator(f).EligibleToRediagnose(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("eligible = true, want false while a phase is incomplete")
	}
}

func TestEligible_AllTrailsComplete(t *testing.T) {
	f := newFakeBackend()
	seedTrail(f)
	f.userTrails = f.trails
	for _, id := range []int{11, 12, 13} {
		f.overlays[id] = Overlay{UserID: 5, TrailCourseID: id, Status: StatusCompleted}
	}

	ok, err := NewAggregator(f).EligibleToRediagnose(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("eligible = false, want true once every phase is completed")
	}
}

func TestEligible_EmptyLinkedTrailNeverComplete(t *testing.T) {
	f := newFakeBackend()
	f.userTrails = []Trail{{ID: 9, Name: "Sem cursos"}}

	ok, err := NewAggregator(f).EligibleToRediagnose(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("eligible = true, want false for a linked trail with no courses")
	}
}

func TestEligible_MissingOverlayCountsAsIncomplete(t *testing.T) {
	f := newFakeBackend()
	seedTrail(f)
	f.userTrails = f.trails
	f.overlays[11] = Overlay{UserID: 5, TrailCourseID: 11, Status: StatusCompleted}
	// Phases 2 and 3 have no rows at all.

	ok, err := NewAggregator(f).EligibleToRediagnose(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("eligible = true, want false with implicit NOT_STARTED phases")
	}
}

func TestEligible_ReadErrorSurfaced(t *testing.T) {
	f := newFakeBackend()
	f.readErr = errors.New("could not load")

	if _, err := NewAggregator(f).EligibleToRediagnose(context.Background(), 5); err == nil {
		t.Fatal("expected read error, not a silent answer")
	}
}
