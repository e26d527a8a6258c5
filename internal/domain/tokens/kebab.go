package tokens

import (
	"strings"

	"github.com/fatih/camelcase"
)

// kebab lowercases s, putting a hyphen wherever an ASCII lowercase letter is
// directly followed by an ASCII uppercase one: lineHeight -> line-height.
// Existing hyphens and digit runs are left alone.
func kebab(s string) string {
	words := camelcase.Split(s)
	var b strings.Builder
	for i, w := range words {
		if i > 0 && isLower(lastByte(words[i-1])) && isUpper(w[0]) {
			b.WriteByte('-')
		}
		b.WriteString(w)
	}
	return strings.ToLower(b.String())
}

func lastByte(s string) byte { return s[len(s)-1] }

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
