package store

import "errors"

// Errores de lógica del llamador: se detectan antes de tocar la conexión.
// Los errores del driver (conexión perdida, constraint violada...) se
// propagan sin envolver; este paquete no los traduce ni los reintenta.
var (
	// ErrEmptyBatch indica un BatchInsert sin registros.
	ErrEmptyBatch = errors.New("store: batch insert requires at least one record")

	// ErrEmptyIn indica una condición IN sin valores; nunca se genera `IN ()`.
	ErrEmptyIn = errors.New("store: IN condition requires at least one value")
)
