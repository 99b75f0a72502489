package category

import (
	"errors"
	"testing"

	"github.com/trilhaup/trilha/internal/trail"
)

func TestResolveTrail_SynonymMatch(t *testing.T) {
	trails := []trail.Trail{
		{ID: 1, Name: "Trilha de Tecnologia"},
		{ID: 2, Name: "RH"},
	}
	id, err := ResolveTrail(Tecnologia, trails)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Errorf("id = %d, want 1", id)
	}
}

func TestResolveTrail_ShortTrailName(t *testing.T) {
	// "RH" is shorter than the synonym "recursos humanos": the
	// name-inside-synonym direction must also match.
	trails := []trail.Trail{{ID: 7, Name: "RH"}}
	id, err := ResolveTrail(RH, trails)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("id = %d, want 7", id)
	}
}

func TestResolveTrail_AccentedName(t *testing.T) {
	trails := []trail.Trail{{ID: 3, Name: "Trilha de Administração e Negócios"}}
	id, err := ResolveTrail(Administracao, trails)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 3 {
		t.Errorf("id = %d, want 3", id)
	}
}

func TestResolveTrail_FirstMatchWins(t *testing.T) {
	trails := []trail.Trail{
		{ID: 1, Name: "Tecnologia Básica"},
		{ID: 2, Name: "Tecnologia Avançada"},
	}
	id, err := ResolveTrail(Tecnologia, trails)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Errorf("id = %d, want 1 (first match)", id)
	}
}

func TestResolveTrail_EmptyList(t *testing.T) {
	_, err := ResolveTrail(Administracao, nil)
	if !errors.Is(err, ErrTrailNotResolved) {
		t.Errorf("err = %v, want ErrTrailNotResolved", err)
	}
}

func TestResolveTrail_NoMatch(t *testing.T) {
	trails := []trail.Trail{{ID: 1, Name: "Culinária"}}
	_, err := ResolveTrail(Tecnologia, trails)
	if !errors.Is(err, ErrTrailNotResolved) {
		t.Errorf("err = %v, want ErrTrailNotResolved", err)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{Administracao, "Administração"},
		{Tecnologia, "Tecnologia"},
		{RH, "Recursos Humanos"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.c); got != tt.want {
			t.Errorf("DisplayName(%s) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestAll_Order(t *testing.T) {
	all := All()
	want := []Category{Administracao, Tecnologia, RH}
	if len(all) != len(want) {
		t.Fatalf("len = %d, want %d", len(all), len(want))
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("All()[%d] = %s, want %s", i, all[i], want[i])
		}
	}
}
