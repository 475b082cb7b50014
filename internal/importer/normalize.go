package importer

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	symbolRe     = regexp.MustCompile(`[^\p{L}\p{N} ]+`)
)

// NormalizeMerchant canonicalizes a merchant string for matching and
// fingerprinting. Japanese card statements mix half-width katakana,
// full-width latin and inconsistent whitespace for the same merchant, so
// everything is NFKC-folded, lowercased and stripped of symbols.
func NormalizeMerchant(s string) string {
	s = norm.NFKC.String(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = symbolRe.ReplaceAllString(s, "")
	s = strings.ToLower(strings.TrimSpace(s))

	return s
}
