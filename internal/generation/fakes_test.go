package generation

import (
	"context"
	"strings"

	"github.com/quizforge/backend/internal/llm"
	"github.com/quizforge/backend/internal/nlp"
)

// fakeAnalyzer returns a canned analysis so tests control exactly what the
// extractor sees. Sentence splitting stays naive but real enough for the
// controlled inputs used here.
type fakeAnalyzer struct {
	analysis *nlp.Analysis
	err      error
}

func (f *fakeAnalyzer) Analyze(string) (*nlp.Analysis, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.analysis, nil
}

func (f *fakeAnalyzer) Sentences(text string) []string {
	return naiveSentences(text)
}

func naiveSentences(text string) []string {
	var sentences []string
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(b.String()); s != "" {
				sentences = append(sentences, s)
			}
			b.Reset()
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// keywordAnalysis builds an analysis whose only concepts are the given
// words, each tagged as a noun.
func keywordAnalysis(words ...string) *nlp.Analysis {
	analysis := &nlp.Analysis{}
	for _, w := range words {
		analysis.Tokens = append(analysis.Tokens, nlp.Token{Text: w, Tag: "NN"})
	}
	return analysis
}

// stubRand replays a fixed value sequence so template, type, and sentence
// selection are deterministic. Shuffle is a no-op, which leaves the correct
// answer in the leading option slot.
type stubRand struct {
	vals []int
	pos  int
}

func (s *stubRand) Intn(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.pos%len(s.vals)] % n
	s.pos++
	return v
}

func (s *stubRand) Shuffle(int, func(i, j int)) {}

type fakeProvider struct {
	question *llm.Question
	err      error
	calls    int
}

func (f *fakeProvider) GenerateQuestion(context.Context, string, string) (*llm.Question, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.question, nil
}
