package export

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// DateSuffix returns the date portion in "02.01.2006" format.
func DateSuffix(t time.Time) string {
	return t.Format("02.01.2006")
}

// DefaultName builds a filesystem-safe PNG filename from a window title, of
// the form slug_02.01.2006.png. Runs of non-alphanumeric characters collapse
// to a single underscore.
func DefaultName(title string, t time.Time) string {
	return fmt.Sprintf("%s_%s.png", slugify(title), DateSuffix(t))
}

func slugify(s string) string {
	var b strings.Builder
	lastUnderscore := true // trim leading separators
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastUnderscore = false
		} else if !lastUnderscore {
			b.WriteRune('_')
			lastUnderscore = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
