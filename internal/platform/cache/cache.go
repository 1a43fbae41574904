// Package cache ofrece la caché clave-valor que los servicios de contenido
// usan para lecturas calientes e invalidación tras mutaciones. La capa de
// datos nunca la toca: invalidar es responsabilidad de quien llama.
package cache

import "context"

// Cache es una caché clave-valor con serialización JSON.
type Cache interface {
	// Get puebla dest (un puntero) con el valor de key.
	// (true, nil) en hit; (false, nil) en miss.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set serializa y guarda el valor con un TTL en segundos.
	// ttlSecs <= 0 usa el TTL por defecto de la implementación.
	Set(ctx context.Context, key string, val any, ttlSecs int) error

	// Delete elimina la clave.
	Delete(ctx context.Context, key string) error
}
