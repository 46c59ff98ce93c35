package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegate(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     string
	}{
		{
			name:     "is",
			sentence: "Photosynthesis is the process by which plants convert light.",
			want:     "Photosynthesis is not the process by which plants convert light.",
		},
		{
			name:     "are",
			sentence: "Whales are mammals.",
			want:     "Whales are not mammals.",
		},
		{
			name:     "can",
			sentence: "Birds can fly.",
			want:     "Birds cannot fly.",
		},
		{
			name:     "first occurrence only",
			sentence: "The sun is a star and the moon is a satellite.",
			want:     "The sun is not a star and the moon is a satellite.",
		},
		{
			name:     "is branch wins even when are comes earlier",
			sentence: "Lions are apex predators when the habitat is intact.",
			want:     "Lions are apex predators when the habitat is not intact.",
		},
		{
			name:     "no copula wraps and lowercases",
			sentence: "Plants grow toward light.",
			want:     "It is incorrect that plants grow toward light.",
		},
		{
			name:     "wrapping lowercases the whole sentence",
			sentence: "DNA encodes proteins.",
			want:     "It is incorrect that dna encodes proteins.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, negate(tt.sentence))
		})
	}
}
