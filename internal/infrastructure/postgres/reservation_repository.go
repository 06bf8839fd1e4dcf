package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/resto-caja/internal/domain"
	"github.com/tu-usuario/resto-caja/internal/domain/entity"
	"github.com/tu-usuario/resto-caja/internal/domain/repository"
)

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

// ReservationRepo implementación del puerto ReservationRepository sobre PostgreSQL.
type ReservationRepo struct {
	q Querier
}

// NewReservationRepository construye el adaptador de persistencia para reservas. Pasar pool o tx (Querier).
func NewReservationRepository(q Querier) *ReservationRepo {
	return &ReservationRepo{q: q}
}

// Create persiste una reserva.
func (r *ReservationRepo) Create(reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, customer_name, phone, table_label, date, party_size, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		reservation.ID, reservation.CustomerName, reservation.Phone, reservation.Table,
		reservation.Date, reservation.PartySize, reservation.Status, reservation.Notes, reservation.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por ID. Devuelve (nil, nil) si no existe.
func (r *ReservationRepo) GetByID(id string) (*entity.Reservation, error) {
	query := `
		SELECT id, customer_name, phone, table_label, date, party_size, status, notes, created_at
		FROM reservations WHERE id = $1`
	var res entity.Reservation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&res.ID, &res.CustomerName, &res.Phone, &res.Table, &res.Date,
		&res.PartySize, &res.Status, &res.Notes, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return &res, nil
}

// List devuelve todas las reservas ordenadas por fecha.
func (r *ReservationRepo) List() ([]entity.Reservation, error) {
	query := `
		SELECT id, customer_name, phone, table_label, date, party_size, status, notes, created_at
		FROM reservations ORDER BY date`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var out []entity.Reservation
	for rows.Next() {
		var res entity.Reservation
		if err := rows.Scan(
			&res.ID, &res.CustomerName, &res.Phone, &res.Table, &res.Date,
			&res.PartySize, &res.Status, &res.Notes, &res.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// Update actualiza una reserva.
func (r *ReservationRepo) Update(reservation *entity.Reservation) error {
	query := `
		UPDATE reservations SET customer_name = $2, phone = $3, table_label = $4, date = $5, party_size = $6, status = $7, notes = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		reservation.ID, reservation.CustomerName, reservation.Phone, reservation.Table,
		reservation.Date, reservation.PartySize, reservation.Status, reservation.Notes,
	)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una reserva.
func (r *ReservationRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAll vacía las reservas (reset financiero).
func (r *ReservationRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM reservations`); err != nil {
		return fmt.Errorf("delete all reservations: %w", err)
	}
	return nil
}
