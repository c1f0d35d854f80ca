package usecase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"solosync/internal/analyzer"
)

// extractClient returns the first capitalized word outside the stoplist.
// Words that are only punctuation are skipped.
func extractClient(text string) string {
	for _, word := range strings.Fields(text) {
		clean := strings.Trim(word, clientPunctuation)
		if clean == "" {
			continue
		}

		first, _ := utf8.DecodeRuneInString(clean)
		if !unicode.IsUpper(first) {
			continue
		}
		if _, stop := clientStoplist[strings.ToLower(clean)]; stop {
			continue
		}
		return clean
	}
	return analyzer.DefaultClient
}
