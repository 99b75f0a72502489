package category

// Category represents a professional development track.
type Category string

const (
	Administracao Category = "ADMINISTRACAO"
	Tecnologia    Category = "TECNOLOGIA"
	RH            Category = "RH"
)

// All returns every category in its fixed priority order. The order is
// load-bearing: scoring tie-breaks resolve to the first category in this
// slice that reaches the maximum tally.
func All() []Category {
	return []Category{Administracao, Tecnologia, RH}
}

// DisplayName returns the human-readable name for a category.
func DisplayName(c Category) string {
	switch c {
	case Administracao:
		return "Administração"
	case Tecnologia:
		return "Tecnologia"
	case RH:
		return "Recursos Humanos"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the three known categories.
func Valid(c Category) bool {
	switch c {
	case Administracao, Tecnologia, RH:
		return true
	}
	return false
}
