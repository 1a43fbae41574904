package store

import (
	"context"

	"go.uber.org/zap"
)

// RawResult es el resultado crudo de una consulta escapada.
type RawResult struct {
	Columns []string `json:"fields"`
	Rows    []Record `json:"rows"`
}

// Raw pasa el SQL literal y sus parámetros directo a la conexión: sin filtro
// de borrado lógico, sin validación de columnas y sin Rebind (el texto va tal
// cual se escribió, en la notación del dialecto del llamador). Existe para lo
// que los builders no expresan, joins y agregados complejos; la
// parametrización corre por cuenta de quien llama.
func (s *session) Raw(ctx context.Context, query string, args ...any) (*RawResult, error) {
	s.log.Debug("store raw", zap.String("sql", query))
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	records, columns, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	return &RawResult{Columns: columns, Rows: records}, nil
}
