package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
)

// ScheduleRepository is an append-only log of bookings.
type ScheduleRepository interface {
	Create(booking *model.Booking) error
	ByRoomAndDate(roomName, date string) ([]model.Booking, error)
}

type scheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(booking *model.Booking) error {
	query := `
		INSERT INTO schedule (room_name, order_by, order_date, order_interval)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.db.QueryRow(query, booking.RoomName, booking.OrderBy, booking.OrderDate, booking.OrderInterval).Scan(&booking.ID)
}

func (r *scheduleRepository) ByRoomAndDate(roomName, date string) ([]model.Booking, error) {
	var bookings []model.Booking
	query := `
		SELECT id, room_name, order_by, order_date, order_interval
		FROM schedule
		WHERE room_name = $1 AND order_date = $2
		ORDER BY id ASC
	`

	err := r.db.Select(&bookings, query, roomName, date)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
