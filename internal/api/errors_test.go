package api

import "testing"

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message": "registro não encontrado"}`, "registro não encontrado"},
		{"error field", `{"error": "acesso negado"}`, "acesso negado"},
		{"detalhe field", `{"detalhe": "trilha inexistente"}`, "trilha inexistente"},
		{"erro field", `{"erro": "usuário inválido"}`, "usuário inválido"},
		{"field priority", `{"erro": "segundo", "message": "primeiro"}`, "primeiro"},
		{"plain text", "algo deu errado", "algo deu errado"},
		{"plain text trimmed", "  falha  \n", "falha"},
		{"empty body", "", ""},
		{"json without known fields", `{"code": 42}`, ""},
		{"non-string field", `{"message": 42}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractMessage([]byte(tt.body)); got != tt.want {
				t.Errorf("extractMessage(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestStatusError_Error(t *testing.T) {
	withMsg := &StatusError{Code: 404, Message: "não encontrado"}
	if withMsg.Error() != "não encontrado" {
		t.Errorf("got %q, want the verbatim message", withMsg.Error())
	}

	noMsg := &StatusError{Code: 502}
	if noMsg.Error() != "backend respondeu HTTP 502" {
		t.Errorf("got %q", noMsg.Error())
	}
}
