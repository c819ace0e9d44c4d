package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// ISO calendar date, e.g. 2024-10-03
	ISODatePattern = `^\d{4}-\d{2}-\d{2}$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email   *regexp.Regexp
	ISODate *regexp.Regexp
}{
	Email:   regexp.MustCompile(EmailPattern),
	ISODate: regexp.MustCompile(ISODatePattern),
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(s)
}

// IsISODate reports whether s is a YYYY-MM-DD date string. The format is what
// keeps lexical date comparison chronological, so every stored date goes
// through this check.
func IsISODate(s string) bool {
	return CompiledPatterns.ISODate.MatchString(s)
}
