package extraction

import "regexp"

// Control words (with optional numeric parameter and trailing space), hex
// character escapes, group braces, and escaped specials.
var rtfControlPattern = regexp.MustCompile(`\\'[0-9a-fA-F]{2}|\\[a-zA-Z]+-?\d* ?|\\[^a-zA-Z]|[{}]`)

// stripRTF removes RTF control sequences and grouping, leaving the plain
// text runs. Destination groups such as font tables are not interpreted;
// their residual names are cleaned up like any other text.
func stripRTF(text string) string {
	return rtfControlPattern.ReplaceAllString(text, " ")
}
