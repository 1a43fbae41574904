package news

import (
	"context"

	"go.uber.org/zap"

	"github.com/davicafu/tablero/internal/store"
)

const tableNews = "news"

// Service expone las operaciones de noticias. Es deliberadamente fino: toda
// la semántica de borrado lógico, paginación y búsqueda vive en el store.
type Service struct {
	store *store.Store
	log   *zap.Logger
}

func NewService(st *store.Store, log *zap.Logger) *Service {
	return &Service{store: st, log: log}
}

func (s *Service) Create(ctx context.Context, title, body string) (store.InsertResult, error) {
	return s.store.Insert(ctx, tableNews, store.Record{
		"title":  title,
		"body":   body,
		"status": "draft",
	})
}

func (s *Service) Get(ctx context.Context, id int64) (store.Record, error) {
	return s.store.FindByID(ctx, tableNews, id)
}

func (s *Service) Update(ctx context.Context, id int64, data store.Record) (store.ExecResult, error) {
	return s.store.UpdateByID(ctx, tableNews, id, data)
}

// List pagina, filtrando por estado si se indica.
func (s *Service) List(ctx context.Context, status string, params store.PageParams) (*store.Page, error) {
	opts := store.Options{}
	if status != "" {
		opts.Where = []store.Condition{store.Eq("status", status)}
	}
	return s.store.FindPage(ctx, tableNews, opts, params)
}

// Search busca por subcadena en el título.
func (s *Service) Search(ctx context.Context, term string, exact bool) ([]store.Record, error) {
	return s.store.FindBySearch(ctx, tableNews, "title", term, store.SearchOptions{ExactMatch: exact})
}

func (s *Service) Delete(ctx context.Context, id int64) (store.ExecResult, error) {
	return s.store.SoftDeleteByID(ctx, tableNews, id)
}

func (s *Service) Restore(ctx context.Context, id int64) (store.ExecResult, error) {
	return s.store.RestoreByID(ctx, tableNews, id)
}

// Purge elimina físicamente una noticia, esté o no borrada lógicamente.
func (s *Service) Purge(ctx context.Context, id int64) (store.ExecResult, error) {
	s.log.Warn("news purged", zap.Int64("id", id))
	return s.store.HardDeleteByID(ctx, tableNews, id)
}
