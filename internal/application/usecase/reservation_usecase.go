package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/resto-caja/internal/application/dto"
	"github.com/tu-usuario/resto-caja/internal/domain"
	"github.com/tu-usuario/resto-caja/internal/domain/entity"
	"github.com/tu-usuario/resto-caja/internal/domain/repository"
)

// ReservationUseCase CRUD de reservas de mesa.
type ReservationUseCase struct {
	repo repository.ReservationRepository
}

// NewReservationUseCase construye el caso de uso de reservas.
func NewReservationUseCase(repo repository.ReservationRepository) *ReservationUseCase {
	return &ReservationUseCase{repo: repo}
}

// Create da de alta una reserva en estado pending.
func (uc *ReservationUseCase) Create(req dto.CreateReservationRequest) (*entity.Reservation, error) {
	if req.CustomerName == "" || req.Date.IsZero() || req.PartySize <= 0 {
		return nil, domain.ErrInvalidInput
	}
	reservation := &entity.Reservation{
		ID:           uuid.New().String(),
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Table:        req.Table,
		Date:         req.Date,
		PartySize:    req.PartySize,
		Status:       entity.ReservationPending,
		Notes:        req.Notes,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// List devuelve todas las reservas.
func (uc *ReservationUseCase) List() ([]entity.Reservation, error) {
	return uc.repo.List()
}

// Update cambia estado, mesa o notas de la reserva.
func (uc *ReservationUseCase) Update(id string, req dto.UpdateReservationRequest) (*entity.Reservation, error) {
	reservation, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, domain.ErrNotFound
	}
	if req.Status != "" {
		status, ok := parseReservationStatus(req.Status)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		reservation.Status = status
	}
	if req.Table != "" {
		reservation.Table = req.Table
	}
	if req.Notes != "" {
		reservation.Notes = req.Notes
	}
	if err := uc.repo.Update(reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// Delete elimina una reserva.
func (uc *ReservationUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func parseReservationStatus(s string) (entity.ReservationStatus, bool) {
	switch s {
	case string(entity.ReservationPending):
		return entity.ReservationPending, true
	case string(entity.ReservationConfirmed):
		return entity.ReservationConfirmed, true
	case string(entity.ReservationCancelled):
		return entity.ReservationCancelled, true
	case string(entity.ReservationDone):
		return entity.ReservationDone, true
	}
	return "", false
}
