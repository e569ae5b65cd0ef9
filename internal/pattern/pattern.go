// Package pattern implements fnmatch-style hostname matching.
//
// Patterns support "*" (any run of characters) and "?" (any single
// character); everything else matches literally. Compiled patterns are
// cached process-wide because reconciliation loops re-resolve the same
// pattern on every tick, often concurrently for distinct services.
package pattern

import (
	"regexp"
	"strings"

	"github.com/puzpuzpuz/xsync/v4"
)

// compiled caches translated patterns. A duplicate compile from a racing
// Store is harmless: translation is a pure function of the pattern.
var compiled = xsync.NewMap[string, *regexp.Regexp]()

// Match reports whether hostname matches the fnmatch-style glob pattern.
//
// Parameters:
//   - pat: Glob pattern ("*" and "?" wildcards)
//   - hostname: Host name to test
//
// Returns:
//   - bool: true when the full hostname matches the pattern
func Match(pat, hostname string) bool {
	return lookup(pat).MatchString(hostname)
}

// MatchingHostnames returns the hostnames matching pat, preserving order.
func MatchingHostnames(pat string, hostnames []string) []string {
	re := lookup(pat)
	var out []string
	for _, h := range hostnames {
		if re.MatchString(h) {
			out = append(out, h)
		}
	}

	return out
}

func lookup(pat string) *regexp.Regexp {
	if re, ok := compiled.Load(pat); ok {
		return re
	}
	re := regexp.MustCompile(translate(pat))
	compiled.Store(pat, re)

	return re
}

// translate converts a glob to an anchored regular expression. Wildcards
// map exactly as fnmatch does ("*" → ".*", "?" → "."); all other runes are
// quoted, so the result always compiles.
func translate(pat string) string {
	var b strings.Builder
	b.WriteString(`\A`)
	for _, r := range pat {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(`\z`)

	return b.String()
}
