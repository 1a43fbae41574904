package store

import (
	"strconv"
	"strings"
)

// Dialect identifica el backend relacional. Los builders generan siempre
// placeholders `?`; Rebind los traduce cuando el driver usa otra notación.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
	MySQL
)

// Rebind reescribe los placeholders `?` como `$1..$n` para postgres (pgx vía
// database/sql). SQLite y MySQL usan `?` nativo y pasan tal cual.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
