package media

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/davicafu/tablero/internal/store"
)

const tableMedia = "media"

// Service registra metadata de ficheros subidos. La subida real al object
// storage es un colaborador externo; aquí solo viven las filas.
type Service struct {
	store *store.Store
	log   *zap.Logger
}

func NewService(st *store.Store, log *zap.Logger) *Service {
	return &Service{store: st, log: log}
}

// Register crea la fila de metadata y devuelve la clave de objeto generada.
func (s *Service) Register(ctx context.Context, filename, mimeType string, sizeBytes int64) (string, store.InsertResult, error) {
	objectKey := uuid.NewString()
	res, err := s.store.Insert(ctx, tableMedia, store.Record{
		"object_key": objectKey,
		"filename":   filename,
		"mime_type":  mimeType,
		"size_bytes": sizeBytes,
	})
	if err != nil {
		return "", store.InsertResult{}, err
	}
	s.log.Info("media registered", zap.String("object_key", objectKey), zap.String("filename", filename))
	return objectKey, res, nil
}

// FindByKey localiza una fila por su clave de objeto (igualdad exacta).
func (s *Service) FindByKey(ctx context.Context, objectKey string) (store.Record, error) {
	rows, err := s.store.FindBySearch(ctx, tableMedia, "object_key", objectKey, store.SearchOptions{ExactMatch: true})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// List pagina la metadata, opcionalmente filtrando por tipo MIME.
func (s *Service) List(ctx context.Context, mimeType string, params store.PageParams) (*store.Page, error) {
	opts := store.Options{
		Columns: []string{"id", "object_key", "filename", "mime_type", "size_bytes", "created_at"},
	}
	if mimeType != "" {
		opts.Where = []store.Condition{store.Eq("mime_type", mimeType)}
	}
	return s.store.FindPage(ctx, tableMedia, opts, params)
}

func (s *Service) Delete(ctx context.Context, id int64) (store.ExecResult, error) {
	return s.store.SoftDeleteByID(ctx, tableMedia, id)
}
