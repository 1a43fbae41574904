package settings

import (
	"context"

	"go.uber.org/zap"

	"github.com/davicafu/tablero/internal/platform/cache"
	"github.com/davicafu/tablero/internal/store"
)

const tableSettings = "settings"

func cacheKey(key string) string { return "settings:" + key }

// Service gestiona los ajustes clave-valor del panel con lectura vía caché.
// La invalidación ocurre aquí, tras cada mutación exitosa: el store no sabe
// que la caché existe.
type Service struct {
	store *store.Store
	cache cache.Cache
	log   *zap.Logger
}

func NewService(st *store.Store, c cache.Cache, log *zap.Logger) *Service {
	return &Service{store: st, cache: c, log: log}
}

// Get devuelve el valor del ajuste, o ("", false, nil) si no existe.
func (s *Service) Get(ctx context.Context, key string) (string, bool, error) {
	var cached string
	if hit, err := s.cache.Get(ctx, cacheKey(key), &cached); err == nil && hit {
		return cached, true, nil
	}

	rows, err := s.store.FindBySearch(ctx, tableSettings, "key", key, store.SearchOptions{ExactMatch: true})
	if err != nil {
		return "", false, err
	}
	if len(rows) == 0 {
		return "", false, nil
	}

	value, _ := rows[0]["value"].(string)
	if err := s.cache.Set(ctx, cacheKey(key), value, 0); err != nil {
		s.log.Warn("settings cache set failed", zap.String("key", key), zap.Error(err))
	}
	return value, true, nil
}

// Set crea o actualiza el ajuste y después invalida su entrada de caché.
func (s *Service) Set(ctx context.Context, key, value string) error {
	exists, err := s.store.Exists(ctx, tableSettings, []store.Condition{store.Eq("key", key)})
	if err != nil {
		return err
	}

	if exists {
		rows, err := s.store.FindBySearch(ctx, tableSettings, "key", key, store.SearchOptions{
			Options:    store.Options{Columns: []string{"id"}},
			ExactMatch: true,
		})
		if err != nil {
			return err
		}
		if _, err := s.store.UpdateByID(ctx, tableSettings, rows[0]["id"], store.Record{"value": value}); err != nil {
			return err
		}
	} else {
		if _, err := s.store.Insert(ctx, tableSettings, store.Record{"key": key, "value": value}); err != nil {
			return err
		}
	}

	if err := s.cache.Delete(ctx, cacheKey(key)); err != nil {
		s.log.Warn("settings cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}

// All devuelve todos los ajustes vigentes como mapa clave -> valor.
func (s *Service) All(ctx context.Context) (map[string]string, error) {
	rows, err := s.store.FindAll(ctx, tableSettings, store.Options{
		Columns: []string{"key", "value"},
		OrderBy: []store.Order{store.Asc("key")},
	})
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		k, _ := row["key"].(string)
		v, _ := row["value"].(string)
		out[k] = v
	}
	return out, nil
}

// Delete hace borrado lógico del ajuste e invalida la caché.
func (s *Service) Delete(ctx context.Context, key string) (store.ExecResult, error) {
	rows, err := s.store.FindBySearch(ctx, tableSettings, "key", key, store.SearchOptions{
		Options:    store.Options{Columns: []string{"id"}},
		ExactMatch: true,
	})
	if err != nil {
		return store.ExecResult{}, err
	}
	if len(rows) == 0 {
		return store.ExecResult{}, nil
	}

	res, err := s.store.SoftDeleteByID(ctx, tableSettings, rows[0]["id"])
	if err != nil {
		return res, err
	}
	if err := s.cache.Delete(ctx, cacheKey(key)); err != nil {
		s.log.Warn("settings cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
	return res, nil
}
