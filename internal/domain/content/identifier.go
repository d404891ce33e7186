package content

import "regexp"

var (
	// codePattern keeps codes URL-safe: lower-case words joined by '-' or '_'.
	codePattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)
	// identPattern restricts table and column names to plain SQL identifiers.
	identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)
)

// IsValidCode reports whether s can be used as a category or module code.
func IsValidCode(s string) bool {
	return len(s) <= 100 && codePattern.MatchString(s)
}

// IsValidIdentifier reports whether s is safe to use as a table or column name.
func IsValidIdentifier(s string) bool {
	return identPattern.MatchString(s)
}
