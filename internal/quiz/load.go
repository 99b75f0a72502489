package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/trilhaup/trilha/internal/category"
)

// bankSchema validates the shape of a custom question-bank file before any
// of it is trusted: positive ids, exactly three alternatives per question,
// known letters and categories.
var bankSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":       map[string]any{"type": "integer", "minimum": 1},
			"pergunta": map[string]any{"type": "string", "minLength": 1},
			"alternativas": map[string]any{
				"type":     "array",
				"minItems": 3,
				"maxItems": 3,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"letra":     map[string]any{"type": "string", "enum": []any{"a", "b", "c"}},
						"texto":     map[string]any{"type": "string", "minLength": 1},
						"categoria": map[string]any{"type": "string", "enum": []any{"ADMINISTRACAO", "TECNOLOGIA", "RH"}},
					},
					"required":             []any{"letra", "texto", "categoria"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"id", "pergunta", "alternativas"},
		"additionalProperties": false,
	},
	"minItems": 1,
}

type bankFileQuestion struct {
	ID           int    `json:"id"`
	Pergunta     string `json:"pergunta"`
	Alternativas []struct {
		Letra     string `json:"letra"`
		Texto     string `json:"texto"`
		Categoria string `json:"categoria"`
	} `json:"alternativas"`
}

// LoadBank reads a question bank from a JSON file, validating it against
// the embedded schema first. Question order follows ascending id.
func LoadBank(path string) ([]Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ler banco de questões: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("banco de questões inválido: %w", err)
	}

	compiled, err := compileBankSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("banco de questões inválido: %w", err)
	}

	var fileQuestions []bankFileQuestion
	if err := json.Unmarshal(raw, &fileQuestions); err != nil {
		return nil, fmt.Errorf("banco de questões inválido: %w", err)
	}

	sort.Slice(fileQuestions, func(i, j int) bool {
		return fileQuestions[i].ID < fileQuestions[j].ID
	})

	bank := make([]Question, 0, len(fileQuestions))
	seen := make(map[int]bool, len(fileQuestions))
	for _, fq := range fileQuestions {
		if seen[fq.ID] {
			return nil, fmt.Errorf("banco de questões inválido: id %d duplicado", fq.ID)
		}
		seen[fq.ID] = true

		q := Question{ID: fq.ID, Prompt: fq.Pergunta}
		for _, fa := range fq.Alternativas {
			q.Alternatives = append(q.Alternatives, Alternative{
				Letter:   fa.Letra,
				Text:     fa.Texto,
				Category: category.Category(fa.Categoria),
			})
		}
		bank = append(bank, q)
	}
	return bank, nil
}

func compileBankSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(bankSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal bank schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse bank schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const url = "schema://question-bank.json"
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add bank schema resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	return compiled, nil
}
