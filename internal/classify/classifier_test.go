package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oficinagl/garantia/internal/model"
)

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases and strips accents", input: "Vazamento de ÓLEO", want: "vazamento de oleo"},
		{name: "punctuation becomes whitespace", input: "motor aquecendo, perdendo água!", want: "motor aquecendo perdendo agua"},
		{name: "whitespace runs collapse", input: "  muito    espaço  ", want: "muito espaco"},
		{name: "empty", input: "", want: ""},
		{name: "only punctuation", input: "?!...", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Preprocess(tt.input))
		})
	}
}

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		text string
		want model.Classification
	}{
		{
			name: "overheating with water loss",
			text: "Motor aquecendo muito, perdendo água do radiador",
			want: model.Classification{
				Grupo:       "Problemas de Funcionamento/Desempenho",
				Subgrupo:    "Superaquecimento",
				Subsubgrupo: "Com Perda de Água",
				Confianca:   model.ConfidenceFullMatch,
			},
		},
		{
			name: "oil leak",
			text: "Vazamento de óleo no cárter",
			want: model.Classification{
				Grupo:       "Vazamentos",
				Subgrupo:    "Vazamento de Fluido",
				Subsubgrupo: "Óleo",
				Confianca:   model.ConfidenceFullMatch,
			},
		},
		{
			name: "no rule matches",
			text: "texto sem qualquer correspondência conhecida",
			want: model.Unclassified(),
		},
		{
			name: "empty text",
			text: "",
			want: model.Unclassified(),
		},
		{
			name: "whitespace only",
			text: "   \t  ",
			want: model.Unclassified(),
		},
		{
			name: "group match only falls back to Geral at half confidence",
			text: "pingando embaixo",
			want: model.Classification{
				Grupo:       "Vazamentos",
				Subgrupo:    GeralSubgroup,
				Subsubgrupo: GeralSubgroup,
				Confianca:   model.ConfidenceGroup,
			},
		},
		{
			name: "subgroup match without leaf",
			text: "vazamento de fluido",
			want: model.Classification{
				Grupo:       "Vazamentos",
				Subgrupo:    "Vazamento de Fluido",
				Subsubgrupo: GeralSubgroup,
				Confianca:   model.ConfidenceSubgroup,
			},
		},
		{
			name: "overheating without symptom detail hits the Geral leaf",
			text: "motor aquecendo",
			want: model.Classification{
				Grupo:       "Problemas de Funcionamento/Desempenho",
				Subgrupo:    "Superaquecimento",
				Subsubgrupo: GeralSubgroup,
				Confianca:   model.ConfidenceFullMatch,
			},
		},
		{
			name: "diacritics do not change the outcome",
			text: "VAZAMENTO DE OLEO NO CARTER",
			want: model.Classification{
				Grupo:       "Vazamentos",
				Subgrupo:    "Vazamento de Fluido",
				Subsubgrupo: "Óleo",
				Confianca:   model.ConfidenceFullMatch,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.text))
		})
	}
}

// Group declaration order decides which group wins when a description
// mentions symptoms from several groups.
func TestClassifier_FirstMatchWins(t *testing.T) {
	c := NewClassifier()

	// Mentions both a leak and a noise; Vazamentos is declared first.
	got := c.Classify("vazamento de óleo com barulho no motor")
	assert.Equal(t, "Vazamentos", got.Grupo)

	// Reversing the group order flips the winner.
	reversed := NewClassifierWithRules(NewRuleTree([]Group{
		{
			Name:     "Ruídos",
			Keywords: []string{"barulho"},
		},
		{
			Name:     "Vazamentos",
			Keywords: []string{"vazamento"},
		},
	}))
	got = reversed.Classify("vazamento de óleo com barulho no motor")
	assert.Equal(t, "Ruídos", got.Grupo)
}

func TestClassifier_ConfidenceIsDepthOnly(t *testing.T) {
	c := NewClassifier()

	// Keyword count beyond the first match never changes the score.
	single := c.Classify("vazamento de óleo")
	many := c.Classify("vazamento vazando de óleo do carter no retentor e na junta")
	assert.Equal(t, single.Confianca, many.Confianca)
	assert.Equal(t, model.ConfidenceFullMatch, single.Confianca)
}

func TestRuleTree_GroupNames(t *testing.T) {
	names := DefaultRules().GroupNames()
	assert.Equal(t, 9, len(names))
	assert.Equal(t, "Vazamentos", names[0])
	assert.Equal(t, "Outros", names[len(names)-1])
}

func TestClassifier_KeywordsArePreprocessed(t *testing.T) {
	tree := NewRuleTree([]Group{
		{
			Name:     "Vazamentos",
			Keywords: []string{"VAZAMENTO!", "Óleo"},
		},
	})
	c := NewClassifierWithRules(tree)

	got := c.Classify("vazamento constatado")
	assert.Equal(t, "Vazamentos", got.Grupo)
	assert.Equal(t, model.ConfidenceGroup, got.Confianca)
}
