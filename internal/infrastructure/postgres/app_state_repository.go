package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/resto-caja/internal/domain/repository"
)

var _ repository.AppStateRepository = (*AppStateRepo)(nil)

// AppStateRepo flags persistidos key/value (ej: "seeded").
type AppStateRepo struct {
	q Querier
}

// NewAppStateRepository construye el adaptador de estado de aplicación. Pasar pool o tx (Querier).
func NewAppStateRepository(q Querier) *AppStateRepo {
	return &AppStateRepo{q: q}
}

// Get devuelve el valor del flag, o "" si no existe.
func (r *AppStateRepo) Get(key string) (string, error) {
	var value string
	err := r.q.QueryRow(context.Background(),
		`SELECT value FROM app_state WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get app state: %w", err)
	}
	return value, nil
}

// Set guarda el flag (upsert).
func (r *AppStateRepo) Set(key, value string) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO app_state (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set app state: %w", err)
	}
	return nil
}
