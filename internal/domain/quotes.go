package domain

import "strings"

const (
	// EscapedQuote is a backslash followed by a double quote.
	EscapedQuote = `\"`
	// Quote is a plain double quote.
	Quote = `"`
)

// UnescapeQuotes replaces every escaped quote in content with a plain quote
// and reports how many occurrences were replaced.
func UnescapeQuotes(content string) (string, int) {
	n := strings.Count(content, EscapedQuote)
	if n == 0 {
		return content, 0
	}
	return strings.ReplaceAll(content, EscapedQuote, Quote), n
}
