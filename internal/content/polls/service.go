package polls

import (
	"context"

	"go.uber.org/zap"

	"github.com/davicafu/tablero/internal/store"
)

const (
	tablePolls   = "polls"
	tableOptions = "poll_options"
	tableVotes   = "poll_votes"
)

// Service expone las operaciones de encuestas sobre el store genérico.
type Service struct {
	store *store.Store
	log   *zap.Logger
}

func NewService(st *store.Store, log *zap.Logger) *Service {
	return &Service{store: st, log: log}
}

// CreateWithOptions crea la encuesta y sus opciones en una sola transacción:
// si el lote de opciones falla, la encuesta tampoco queda creada.
func (s *Service) CreateWithOptions(ctx context.Context, title string, options []string) (int64, error) {
	var pollID int64
	err := s.store.WithinTx(ctx, func(tx *store.Tx) error {
		res, err := tx.Insert(ctx, tablePolls, store.Record{"title": title, "status": "draft"})
		if err != nil {
			return err
		}
		pollID = res.InsertID

		records := make([]store.Record, 0, len(options))
		for i, label := range options {
			records = append(records, store.Record{
				"poll_id":  pollID,
				"label":    label,
				"position": i,
			})
		}
		// Un lote vacío es ErrEmptyBatch y revierte también la encuesta.
		_, err = tx.BatchInsert(ctx, tableOptions, records)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("poll created", zap.Int64("poll_id", pollID), zap.Int("options", len(options)))
	return pollID, nil
}

// Get devuelve la encuesta y sus opciones, o (nil, nil, nil) si no existe.
func (s *Service) Get(ctx context.Context, id int64) (store.Record, []store.Record, error) {
	poll, err := s.store.FindByID(ctx, tablePolls, id)
	if err != nil || poll == nil {
		return nil, nil, err
	}

	options, err := s.store.FindAll(ctx, tableOptions, store.Options{
		Where:   []store.Condition{store.Eq("poll_id", id)},
		OrderBy: []store.Order{store.Asc("position")},
	})
	if err != nil {
		return nil, nil, err
	}
	return poll, options, nil
}

// List pagina las encuestas, opcionalmente filtradas por estado.
func (s *Service) List(ctx context.Context, status string, params store.PageParams) (*store.Page, error) {
	opts := store.Options{}
	if status != "" {
		opts.Where = []store.Condition{store.Eq("status", status)}
	}
	return s.store.FindPage(ctx, tablePolls, opts, params)
}

// Publish pasa la encuesta a estado published.
func (s *Service) Publish(ctx context.Context, id int64) (store.ExecResult, error) {
	return s.store.UpdateByID(ctx, tablePolls, id, store.Record{"status": "published"})
}

// Vote registra un voto para una opción existente y no borrada.
func (s *Service) Vote(ctx context.Context, optionID int64, voterIP string) error {
	ok, err := s.store.Exists(ctx, tableOptions, []store.Condition{store.Eq("id", optionID)})
	if err != nil {
		return err
	}
	if !ok {
		return ErrOptionNotFound
	}
	_, err = s.store.Insert(ctx, tableVotes, store.Record{
		"option_id": optionID,
		"voter_ip":  voterIP,
	})
	return err
}

// Results agrega los votos por opción. El join con agregado queda fuera de lo
// que los builders expresan, de ahí el escape a Raw.
func (s *Service) Results(ctx context.Context, pollID int64) ([]store.Record, error) {
	out, err := s.store.Raw(ctx, `
        SELECT o.id, o.label, COUNT(v.id) AS votes
        FROM poll_options o
        LEFT JOIN poll_votes v ON v.option_id = o.id AND v.deleted_at IS NULL
        WHERE o.poll_id = ? AND o.deleted_at IS NULL
        GROUP BY o.id, o.label
        ORDER BY o.position`, pollID)
	if err != nil {
		return nil, err
	}
	return out.Rows, nil
}

// Delete hace borrado lógico de la encuesta.
func (s *Service) Delete(ctx context.Context, id int64) (store.ExecResult, error) {
	return s.store.SoftDeleteByID(ctx, tablePolls, id)
}

// Restore revive una encuesta borrada lógicamente.
func (s *Service) Restore(ctx context.Context, id int64) (store.ExecResult, error) {
	return s.store.RestoreByID(ctx, tablePolls, id)
}
