package generation

import "strings"

// negate rewrites a true sentence as its false counterpart. The first
// matching copula is replaced exactly once; later occurrences stay intact
// so sentences with repeated copulas still read naturally. Sentences with
// no matching verb are wrapped instead.
func negate(sentence string) string {
	switch {
	case strings.Contains(sentence, " is "):
		return strings.Replace(sentence, " is ", " is not ", 1)
	case strings.Contains(sentence, " are "):
		return strings.Replace(sentence, " are ", " are not ", 1)
	case strings.Contains(sentence, " can "):
		return strings.Replace(sentence, " can ", " cannot ", 1)
	default:
		return "It is incorrect that " + strings.ToLower(sentence)
	}
}
