package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokens(pairs ...string) []Token {
	toks := make([]Token, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		toks = append(toks, Token{Text: pairs[i], Tag: pairs[i+1]})
	}
	return toks
}

func TestChunkNounPhrases(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   []string
	}{
		{
			name:   "determiner adjective noun",
			tokens: tokens("The", "DT", "green", "JJ", "cell", "NN"),
			want:   []string{"The green cell"},
		},
		{
			name: "verbs split runs",
			tokens: tokens(
				"Cells", "NNS", "divide", "VBP", "rapidly", "RB",
				"in", "IN", "tissue", "NN",
			),
			want: []string{"Cells", "tissue"},
		},
		{
			name:   "proper noun run",
			tokens: tokens("Marie", "NNP", "Curie", "NNP"),
			want:   []string{"Marie Curie"},
		},
		{
			name:   "possessive opener",
			tokens: tokens("his", "PRP$", "mitochondria", "NNS"),
			want:   []string{"his mitochondria"},
		},
		{
			name:   "adjectives without a noun are dropped",
			tokens: tokens("very", "RB", "green", "JJ", "and", "CC"),
			want:   nil,
		},
		{
			name:   "determiner without a noun is dropped",
			tokens: tokens("the", "DT", "quickly", "RB"),
			want:   nil,
		},
		{
			name:   "opener only starts a phrase",
			tokens: tokens("big", "JJ", "the", "DT", "cell", "NN"),
			want:   []string{"cell"},
		},
		{
			name:   "comparative adjective counts",
			tokens: tokens("larger", "JJR", "organisms", "NNS"),
			want:   []string{"larger organisms"},
		},
		{
			name:   "no tokens",
			tokens: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chunkNounPhrases(tt.tokens))
		})
	}
}

func TestTagPredicates(t *testing.T) {
	assert.True(t, isNounTag("NN"))
	assert.True(t, isNounTag("NNPS"))
	assert.False(t, isNounTag("VB"))

	assert.True(t, isAdjectiveTag("JJS"))
	assert.False(t, isAdjectiveTag("RB"))

	assert.True(t, isOpenerTag("DT"))
	assert.True(t, isOpenerTag("PRP$"))
	assert.False(t, isOpenerTag("PRP"))
}
