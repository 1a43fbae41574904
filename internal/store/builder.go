package store

import (
	"fmt"
	"strings"
)

// Columnas de timestamp que posee esta capa. Los llamadores nunca las
// escriben directamente: insert/update las estampan y el borrado lógico
// se apoya en deleted_at.
const (
	colCreatedAt = "created_at"
	colUpdatedAt = "updated_at"
	colDeletedAt = "deleted_at"
)

// Options configura una consulta SELECT/COUNT genérica.
//
// Valores por defecto:
//   - Columns: `*`
//   - Where: sin condiciones extra (solo el filtro de borrado lógico)
//   - OrderBy: `created_at DESC`
//   - IncludeDeleted: false (las filas con deleted_at no nulo se excluyen)
type Options struct {
	Columns        []string
	Where          []Condition
	OrderBy        []Order
	IncludeDeleted bool
}

// ---------------- Render de WHERE ----------------

// buildWhere convierte las condiciones en un fragmento `WHERE ...` y su lista
// plana de argumentos. Los valores jamás se interpolan en el texto SQL: cada
// uno viaja como placeholder `?`, que es el único mecanismo anti inyección.
func buildWhere(conds []Condition, includeDeleted bool) (string, []any, error) {
	var parts []string
	var args []any

	if !includeDeleted {
		parts = append(parts, colDeletedAt+" IS NULL")
	}

	for _, c := range conds {
		if c.Op == OpIn {
			values, ok := c.Value.([]any)
			if !ok {
				return "", nil, fmt.Errorf("store: IN condition on %q requires a []any value", c.Column)
			}
			if len(values) == 0 {
				return "", nil, ErrEmptyIn
			}
			placeholders := strings.TrimSuffix(strings.Repeat("?,", len(values)), ",")
			parts = append(parts, fmt.Sprintf("%s IN (%s)", c.Column, placeholders))
			args = append(args, values...)
			continue
		}

		parts = append(parts, fmt.Sprintf("%s %s ?", c.Column, c.Op))
		args = append(args, c.Value)
	}

	if len(parts) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(parts, " AND "), args, nil
}

// ---------------- Render de SELECT / COUNT ----------------

func buildSelect(table string, opts Options) (string, []any, error) {
	columns := "*"
	if len(opts.Columns) > 0 {
		columns = strings.Join(opts.Columns, ", ")
	}

	where, args, err := buildWhere(opts.Where, opts.IncludeDeleted)
	if err != nil {
		return "", nil, err
	}

	orderBy := colCreatedAt + " DESC"
	if len(opts.OrderBy) > 0 {
		var orders []string
		for _, o := range opts.OrderBy {
			dir := "ASC"
			if o.Desc {
				dir = "DESC"
			}
			orders = append(orders, o.Column+" "+dir)
		}
		orderBy = strings.Join(orders, ", ")
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s", columns, table, where, orderBy)
	return query, args, nil
}

func buildCount(table string, conds []Condition, includeDeleted bool) (string, []any, error) {
	where, args, err := buildWhere(conds, includeDeleted)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("SELECT COUNT(*) FROM %s%s", table, where), args, nil
}
