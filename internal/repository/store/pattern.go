package store

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Contains шаблон ILIKE для поиска подстроки, спецсимволы LIKE экранируются.
func Contains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
