package quiz

import "github.com/trilhaup/trilha/internal/category"

// DefaultBank returns the built-in diagnostic questionnaire: 10 questions,
// 3 alternatives each, one category vote per alternative. A custom bank
// can be loaded from JSON with LoadBank.
func DefaultBank() []Question {
	return defaultBank
}

var defaultBank = []Question{
	{
		ID:     1,
		Prompt: "No trabalho, o que mais te motiva no dia a dia?",
		Alternatives: []Alternative{
			{Letter: "a", Text: "Organizar processos e acompanhar resultados", Category: category.Administracao},
			{Letter: "b", Text: "Resolver problemas técnicos e automatizar tarefas", Category: category.Tecnologia},
			{Letter: "c", Text: "Apoiar o desenvolvimento das pessoas do time", Category: category.RH},
		},
	},
	{
		ID:     2,
		Prompt: "Qual dessas atividades você escolheria para uma tarde livre?",
		Alternatives: []Alternative{
			{Letter: "a", Text: "Montar uma planilha de controle financeiro", Category: category.Administracao},
			{Letter: "b", Text: "Aprender uma nova linguagem de programação", Category: category.Tecnologia},
			{Letter: "c", Text: "Participar de uma dinâmica de grupo", Category: category.RH},
		},
	},
	{
		ID:     3,
		Prompt: "Em um projeto novo, qual papel você assume naturalmente?",
		Alternatives: []Alternative{
			{Letter: "a", Text: "Planejar prazos, custos e entregas", Category: category.Administracao},
			{Letter: "b", Text: "Construir a solução e cuidar das ferramentas", Category: category.Tecnologia},
			{Letter: "c", Text: "Alinhar expectativas e mediar conflitos", Category: category.RH},
		},
	},
	{
		ID:     4,
		Prompt: "O que você considera o maior diferencial de uma empresa?",
		Alternatives: []Alternative{
			{Letter: "a", Text: "Uma gestão eficiente e bem estruturada", Category: category.Administracao},
			{Letter: "b", Text: "Inovação e domínio de tecnologia", Category: category.Tecnologia},
			{Letter: "c", Text: "Um time engajado e bem cuidado", Category: category.RH},
		},
	},
	{
		ID:     5,
		Prompt: "Qual tipo de conteúdo você consome com mais frequência?",
		Alternatives: []Alternative{
			{Letter: "a", Text: "Negócios, finanças e empreendedorismo", Category: category.Administracao},
			{Letter: "b", Text: "Tutoriais, lançamentos e tendências de TI", Category: category.Tecnologia},
			{Letter: "c", Text: "Comportamento, liderança e cultura organizacional", Category: category.RH},
		},
	},
	{
		ID:     6,
		Prompt: "Diante de um problema inesperado, qual é sua primeira reação?",
		Alternatives: []Alternative{
			{Letter: "a", Text: "Levantar os dados e reorganizar o plano", Category: category.Administracao},
			{Letter: "b", Text: "Investigar a causa raiz até encontrar a falha", Category: category.Tecnologia},
			{Letter: "c", Text: "Reunir as pessoas envolvidas para conversar", Category: category.RH},
		},
	},
	{
		ID:     7,
		Prompt: "Qual conquista te deixaria mais orgulhoso?",
		Alternatives: []Alternative{
			{Letter: "a", Text: "Reduzir custos de um processo pela metade", Category: category.Administracao},
			{Letter: "b", Text: "Lançar um sistema usado por milhares de pessoas", Category: category.Tecnologia},
			{Letter: "c", Text: "Ver alguém que você mentorou ser promovido", Category: category.RH},
		},
	},
	{
		ID:     8,
		Prompt: "Como você prefere trabalhar?",
		Alternatives: []Alternative{
			{Letter: "a", Text: "Com metas claras, indicadores e rotina definida", Category: category.Administracao},
			{Letter: "b", Text: "Com autonomia para experimentar e construir", Category: category.Tecnologia},
			{Letter: "c", Text: "Em contato constante com pessoas diferentes", Category: category.RH},
		},
	},
	{
		ID:     9,
		Prompt: "Qual curso gratuito você faria primeiro?",
		Alternatives: []Alternative{
			{Letter: "a", Text: "Gestão de projetos", Category: category.Administracao},
			{Letter: "b", Text: "Desenvolvimento web", Category: category.Tecnologia},
			{Letter: "c", Text: "Comunicação não violenta", Category: category.RH},
		},
	},
	{
		ID:     10,
		Prompt: "O que as pessoas costumam pedir sua ajuda para fazer?",
		Alternatives: []Alternative{
			{Letter: "a", Text: "Organizar, planejar e priorizar", Category: category.Administracao},
			{Letter: "b", Text: "Configurar, consertar e explicar tecnologia", Category: category.Tecnologia},
			{Letter: "c", Text: "Ouvir, aconselhar e dar feedback", Category: category.RH},
		},
	},
}
