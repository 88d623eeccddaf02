// Package normalize cleans up title text extracted from board markup.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var spaceRe = regexp.MustCompile(`\s+`)

// CleanTitle folds full-width characters (ministry boards love full-width
// digits and brackets), replaces NBSP, and collapses runs of whitespace.
func CleanTitle(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = width.Fold.String(s)
	s = norm.NFC.String(s)
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
