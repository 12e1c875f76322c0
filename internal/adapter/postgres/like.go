package postgres

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes the LIKE/ILIKE metacharacters in s so it matches as a
// literal substring. Postgres treats backslash as the default escape
// character, so it must be doubled before % and _ are escaped with it.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
