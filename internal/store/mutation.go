package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// InsertResult replica lo que reporta el driver tras un INSERT.
type InsertResult struct {
	// InsertID es el id autogenerado de la fila nueva. Con el dialecto
	// postgres el adaptador de pgx no soporta LastInsertId y queda en 0;
	// quien necesite el id usa RETURNING a través de Raw.
	InsertID     int64 `json:"insertId"`
	AffectedRows int64 `json:"affectedRows"`
}

// ExecResult reporta el efecto de un UPDATE/DELETE.
type ExecResult struct {
	AffectedRows int64 `json:"affectedRows"`
	// ChangedRows iguala a AffectedRows: database/sql solo expone
	// RowsAffected, la distinción matched/changed de MySQL no es observable
	// por la interfaz portable del driver.
	ChangedRows int64 `json:"changedRows"`
}

// sanitize copia el Record del llamador descartando las columnas de
// timestamp: esta capa es su única dueña.
func sanitize(data Record) Record {
	clean := make(Record, len(data))
	for k, v := range data {
		if k == colCreatedAt || k == colUpdatedAt || k == colDeletedAt {
			continue
		}
		clean[k] = v
	}
	return clean
}

// sortedColumns devuelve las columnas en orden estable. Los mapas de Go
// iteran en orden aleatorio y el SQL generado debe ser determinista.
func sortedColumns(data Record) []string {
	columns := make([]string, 0, len(data))
	for k := range data {
		columns = append(columns, k)
	}
	sort.Strings(columns)
	return columns
}

// ---------------- INSERT ----------------

// Insert estampa created_at/updated_at y genera el INSERT parametrizado.
func (s *session) Insert(ctx context.Context, table string, data Record) (InsertResult, error) {
	now := time.Now().UTC()
	data = sanitize(data)
	data[colCreatedAt] = now
	data[colUpdatedAt] = now

	columns := sortedColumns(data)
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",")
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		args = append(args, data[col])
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), placeholders)

	res, err := s.exec(ctx, query, args)
	if err != nil {
		return InsertResult{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return InsertResult{}, err
	}
	insertID, err := res.LastInsertId()
	if err != nil {
		insertID = 0 // driver sin soporte (pgx stdlib)
	}
	return InsertResult{InsertID: insertID, AffectedRows: affected}, nil
}

// BatchInsert genera un único INSERT multi-fila. Todas las filas del lote
// comparten el mismo par created_at/updated_at. Un lote vacío es un error de
// lógica del llamador y se rechaza antes de tocar la conexión.
func (s *session) BatchInsert(ctx context.Context, table string, records []Record) (InsertResult, error) {
	if len(records) == 0 {
		return InsertResult{}, ErrEmptyBatch
	}

	now := time.Now().UTC()
	first := sanitize(records[0])
	first[colCreatedAt] = now
	first[colUpdatedAt] = now
	columns := sortedColumns(first)

	rowPlaceholders := "(" + strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",") + ")"
	allPlaceholders := strings.TrimSuffix(strings.Repeat(rowPlaceholders+",", len(records)), ",")

	args := make([]any, 0, len(columns)*len(records))
	for _, record := range records {
		row := sanitize(record)
		row[colCreatedAt] = now
		row[colUpdatedAt] = now
		for _, col := range columns {
			args = append(args, row[col]) // columna ausente -> NULL
		}
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		table, strings.Join(columns, ", "), allPlaceholders)

	res, err := s.exec(ctx, query, args)
	if err != nil {
		return InsertResult{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return InsertResult{}, err
	}
	insertID, err := res.LastInsertId()
	if err != nil {
		insertID = 0
	}
	return InsertResult{InsertID: insertID, AffectedRows: affected}, nil
}

// ---------------- UPDATE / DELETE ----------------

// UpdateByID re-estampa updated_at y actualiza la fila, siempre con la
// guarda de borrado lógico: mutar una fila borrada es un no-op de cero filas,
// no la resucita implícitamente.
func (s *session) UpdateByID(ctx context.Context, table string, id any, data Record) (ExecResult, error) {
	data = sanitize(data)
	data[colUpdatedAt] = time.Now().UTC()

	columns := sortedColumns(data)
	sets := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns)+1)
	for _, col := range columns {
		sets = append(sets, col+" = ?")
		args = append(args, data[col])
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ? AND %s IS NULL",
		table, strings.Join(sets, ", "), colDeletedAt)

	return s.execResult(ctx, query, args)
}

// SoftDeleteByID marca la fila como borrada. Idempotente: un segundo borrado
// sobre el mismo id afecta cero filas.
func (s *session) SoftDeleteByID(ctx context.Context, table string, id any) (ExecResult, error) {
	now := time.Now().UTC()
	query := fmt.Sprintf("UPDATE %s SET %s = ?, %s = ? WHERE id = ? AND %s IS NULL",
		table, colDeletedAt, colUpdatedAt, colDeletedAt)
	return s.execResult(ctx, query, []any{now, now, id})
}

// HardDeleteByID elimina la fila físicamente. Es la única operación sin
// guarda de borrado lógico sobre DELETE: puede actuar sobre filas ya
// borradas lógicamente.
func (s *session) HardDeleteByID(ctx context.Context, table string, id any) (ExecResult, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", table)
	return s.execResult(ctx, query, []any{id})
}

// RestoreByID limpia deleted_at y re-estampa updated_at. Sin guarda: tiene
// que poder alcanzar filas borradas.
func (s *session) RestoreByID(ctx context.Context, table string, id any) (ExecResult, error) {
	query := fmt.Sprintf("UPDATE %s SET %s = NULL, %s = ? WHERE id = ?",
		table, colDeletedAt, colUpdatedAt)
	return s.execResult(ctx, query, []any{time.Now().UTC(), id})
}

func (s *session) execResult(ctx context.Context, query string, args []any) (ExecResult, error) {
	res, err := s.exec(ctx, query, args)
	if err != nil {
		return ExecResult{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return ExecResult{}, err
	}
	return ExecResult{AffectedRows: affected, ChangedRows: affected}, nil
}
