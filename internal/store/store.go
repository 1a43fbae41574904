// Package store implementa la capa de acceso a datos genérica: construye SQL
// parametrizado por tabla, aplica el borrado lógico por defecto, calcula la
// paginación y envuelve operaciones multi-paso en transacciones. No gestiona
// el ciclo de vida de las conexiones ni reintentos; eso pertenece al
// arranque de la aplicación.
package store

import (
	"context"
	"database/sql"

	"go.uber.org/zap"
)

// Record es una fila genérica: columna -> valor primitivo.
type Record map[string]any

// queryer es lo que necesitamos tanto de *sql.DB como de *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// session agrupa las primitivas compartidas entre Store y Tx: ambos exponen
// exactamente las mismas operaciones de consulta y mutación, atadas a su
// propio queryer.
type session struct {
	q       queryer
	dialect Dialect
	log     *zap.Logger
}

// Store es la capa de acceso a datos sobre un pool de conexiones ya
// inicializado. Cada operación fuera de una transacción toma y devuelve una
// conexión del pool por la duración de una sola sentencia.
type Store struct {
	session
	db *sql.DB
}

// New construye el Store. Un logger nil se sustituye por zap.NewNop().
func New(db *sql.DB, dialect Dialect, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		session: session{q: db, dialect: dialect, log: log},
		db:      db,
	}
}

// ---------------- Ejecución con rebind ----------------

func (s *session) query(ctx context.Context, query string, args []any) (*sql.Rows, error) {
	query = s.dialect.Rebind(query)
	s.log.Debug("store query", zap.String("sql", query))
	return s.q.QueryContext(ctx, query, args...)
}

func (s *session) exec(ctx context.Context, query string, args []any) (sql.Result, error) {
	query = s.dialect.Rebind(query)
	s.log.Debug("store exec", zap.String("sql", query))
	return s.q.ExecContext(ctx, query, args...)
}

// ---------------- Scan genérico ----------------

// scanRecords vuelca las filas en mapas columna -> valor. Los drivers
// devuelven []byte para texto; lo convertimos a string para que los
// Records sean serializables tal cual.
func scanRecords(rows *sql.Rows) ([]Record, []string, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var records []Record
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, nil, err
		}

		record := make(Record, len(columns))
		for i, col := range columns {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			record[col] = v
		}
		records = append(records, record)
	}
	return records, columns, rows.Err()
}

// ---------------- Consultas ----------------

// FindByID devuelve la fila con ese id, o (nil, nil) si no existe o está
// borrada lógicamente. "No encontrado" no es un error.
func (s *session) FindByID(ctx context.Context, table string, id any, columns ...string) (Record, error) {
	query, args, err := buildSelect(table, Options{
		Columns: columns,
		Where:   []Condition{Eq("id", id)},
	})
	if err != nil {
		return nil, err
	}

	rows, err := s.query(ctx, query+" LIMIT 1", args)
	if err != nil {
		return nil, err
	}
	records, _, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

// FindAll devuelve todas las filas que cumplen las opciones, sin paginar.
func (s *session) FindAll(ctx context.Context, table string, opts Options) ([]Record, error) {
	query, args, err := buildSelect(table, opts)
	if err != nil {
		return nil, err
	}
	rows, err := s.query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	records, _, err := scanRecords(rows)
	return records, err
}

// Page es una página de resultados junto con su metadata.
type Page struct {
	Data       []Record   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// FindPage ejecuta dos sentencias: un COUNT con el mismo WHERE y después el
// SELECT con LIMIT/OFFSET. No son atómicas entre sí: bajo escrituras
// concurrentes el total y la página pueden observar estados distintos. Es un
// comportamiento documentado, no un bug.
func (s *session) FindPage(ctx context.Context, table string, opts Options, params PageParams) (*Page, error) {
	params = params.normalize()

	total, err := s.Count(ctx, table, opts.Where, opts.IncludeDeleted)
	if err != nil {
		return nil, err
	}

	query, args, err := buildSelect(table, opts)
	if err != nil {
		return nil, err
	}
	args = append(args, params.Limit, params.Offset())

	rows, err := s.query(ctx, query+" LIMIT ? OFFSET ?", args)
	if err != nil {
		return nil, err
	}
	records, _, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []Record{}
	}

	return &Page{Data: records, Pagination: NewPagination(params, total)}, nil
}

// FindByIDs devuelve las filas cuyos ids estén en la lista. Una lista vacía
// corta en seco sin tocar la conexión: jamás se genera un `IN ()`.
func (s *session) FindByIDs(ctx context.Context, table string, ids []any) ([]Record, error) {
	if len(ids) == 0 {
		return []Record{}, nil
	}
	return s.FindAll(ctx, table, Options{Where: []Condition{In("id", ids...)}})
}

// SearchOptions extiende Options para FindBySearch.
type SearchOptions struct {
	Options
	// ExactMatch cambia el LIKE %term% por una igualdad estricta.
	ExactMatch bool
}

// FindBySearch busca por subcadena (LIKE %term%) sobre una columna, o por
// igualdad exacta con ExactMatch.
func (s *session) FindBySearch(ctx context.Context, table, column, term string, opts SearchOptions) ([]Record, error) {
	cond := Like(column, "%"+term+"%")
	if opts.ExactMatch {
		cond = Eq(column, term)
	}
	all := opts.Options
	all.Where = append([]Condition{cond}, all.Where...)
	return s.FindAll(ctx, table, all)
}

// Count cuenta filas con el mismo WHERE que usaría FindAll.
func (s *session) Count(ctx context.Context, table string, where []Condition, includeDeleted bool) (int64, error) {
	query, args, err := buildCount(table, where, includeDeleted)
	if err != nil {
		return 0, err
	}

	rows, err := s.query(ctx, query, args)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var total int64
	if rows.Next() {
		if err := rows.Scan(&total); err != nil {
			return 0, err
		}
	}
	return total, rows.Err()
}

// Exists responde si hay al menos una fila que cumpla las condiciones.
// Se apoya en COUNT: nunca trae filas.
func (s *session) Exists(ctx context.Context, table string, where []Condition) (bool, error) {
	total, err := s.Count(ctx, table, where, false)
	if err != nil {
		return false, err
	}
	return total > 0, nil
}
