package store

import (
	"context"

	"go.uber.org/zap"
)

// Tx expone las mismas primitivas de consulta y mutación que Store, atadas a
// una única conexión y transacción. Deliberadamente no tiene WithinTx: las
// transacciones anidadas no existen en esta capa y abrir una desde dentro de
// otra es un error del llamador que aquí ni siquiera compila.
type Tx struct {
	session
}

// WithinTx abre una transacción, invoca fn con un handle atado a ella y:
//   - si fn devuelve nil, hace commit y devuelve el error del commit si lo hay;
//   - si fn devuelve error, hace rollback y devuelve el error original tal
//     cual (la identidad del error se preserva, nunca se envuelve).
//
// Ninguna sentencia de fn es visible fuera hasta el commit; tras un rollback
// la base queda exactamente como estaba, sin escrituras parciales.
func (s *Store) WithinTx(ctx context.Context, fn func(tx *Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	tx := &Tx{session: session{q: sqlTx, dialect: s.dialect, log: s.log}}

	if err := fn(tx); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil {
			s.log.Error("rollback failed", zap.Error(rbErr))
		}
		return err
	}
	return sqlTx.Commit()
}
