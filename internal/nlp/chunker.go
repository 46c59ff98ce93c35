package nlp

import "strings"

// chunkNounPhrases collects base noun phrases from tagged tokens using a
// Treebank tag pattern: an optional determiner or possessive opener, any
// number of adjectives, then nouns. A run only counts as a phrase when it
// contains at least one noun.
func chunkNounPhrases(tokens []Token) []string {
	var phrases []string
	var current []Token

	flush := func() {
		if hasNoun(current) {
			words := make([]string, len(current))
			for i, tok := range current {
				words[i] = tok.Text
			}
			phrases = append(phrases, strings.Join(words, " "))
		}
		current = nil
	}

	for _, tok := range tokens {
		switch {
		case isNounTag(tok.Tag) || isAdjectiveTag(tok.Tag):
			current = append(current, tok)
		case isOpenerTag(tok.Tag) && len(current) == 0:
			current = append(current, tok)
		default:
			flush()
		}
	}
	flush()

	return phrases
}

func hasNoun(tokens []Token) bool {
	for _, tok := range tokens {
		if isNounTag(tok.Tag) {
			return true
		}
	}
	return false
}

func isNounTag(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

func isAdjectiveTag(tag string) bool {
	return strings.HasPrefix(tag, "JJ")
}

func isOpenerTag(tag string) bool {
	return tag == "DT" || tag == "PDT" || tag == "PRP$"
}
