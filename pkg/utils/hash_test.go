package utils

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:  "abc",
			input: "abc",
			want:  "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HashString(tt.input))
		})
	}
}

func TestHashBytesMatchesHashString(t *testing.T) {
	input := "the cell is the basic unit of life"
	assert.Equal(t, HashString(input), HashBytes([]byte(input)))
}

func TestHashReader(t *testing.T) {
	input := "streamed document content"

	got, err := HashReader(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, HashString(input), got)
}

func TestHashReaderError(t *testing.T) {
	_, err := HashReader(iotest.ErrReader(errors.New("disk gone")))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to hash content")
}
