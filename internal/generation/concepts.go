package generation

import (
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/quizforge/backend/internal/nlp"
	"github.com/quizforge/backend/pkg/logger"
)

const (
	entityImportance     = 0.8
	nounPhraseImportance = 0.6
	keywordImportance    = 0.4

	minKeywordLength = 3
)

// Entity categories worth asking about. The analyzer may emit a subset of
// these labels; anything outside the set is dropped.
var entityLabels = map[string]struct{}{
	"PERSON":      {},
	"ORG":         {},
	"GPE":         {},
	"EVENT":       {},
	"WORK_OF_ART": {},
	"LAW":         {},
}

// ExtractConcepts returns the ranked concept candidates found in text,
// sorted by importance descending. Entities rank above noun phrases, noun
// phrases above keywords; duplicates merge case-insensitively with the
// higher-importance entry winning. A missing or failing analyzer degrades
// to an empty list rather than an error.
func (g *Generator) ExtractConcepts(text string) []Concept {
	if g.analyzer == nil {
		return nil
	}

	analysis, err := g.analyzer.Analyze(text)
	if err != nil {
		logger.Warn("Text analysis failed", zap.Error(err))
		return nil
	}

	index := make(map[string]int)
	var concepts []Concept

	add := func(c Concept) {
		key := strings.ToLower(c.Text)
		if i, ok := index[key]; ok {
			if c.Importance > concepts[i].Importance {
				concepts[i] = c
			}
			return
		}
		index[key] = len(concepts)
		concepts = append(concepts, c)
	}

	for _, ent := range analysis.Entities {
		if _, ok := entityLabels[ent.Label]; !ok {
			continue
		}
		add(Concept{
			Text:       ent.Text,
			Kind:       KindEntity,
			Label:      ent.Label,
			Importance: entityImportance,
		})
	}

	for _, phrase := range analysis.NounPhrases {
		if len(strings.Fields(phrase)) <= 1 {
			continue
		}
		if nlp.IsStopword(phrase) {
			continue
		}
		add(Concept{
			Text:       phrase,
			Kind:       KindNounPhrase,
			Importance: nounPhraseImportance,
		})
	}

	for _, tok := range analysis.Tokens {
		if !isKeywordTag(tok.Tag) {
			continue
		}
		if utf8.RuneCountInString(tok.Text) <= minKeywordLength {
			continue
		}
		if nlp.IsStopword(tok.Text) {
			continue
		}
		add(Concept{
			Text:       strings.ToLower(tok.Text),
			Kind:       KindKeyword,
			Label:      tok.Tag,
			Importance: keywordImportance,
		})
	}

	sort.SliceStable(concepts, func(i, j int) bool {
		return concepts[i].Importance > concepts[j].Importance
	})

	return concepts
}

func isKeywordTag(tag string) bool {
	return strings.HasPrefix(tag, "NN") ||
		strings.HasPrefix(tag, "VB") ||
		strings.HasPrefix(tag, "JJ")
}
