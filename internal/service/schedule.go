package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/ctxkeys"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/repository"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/validation"
)

// Slot is one interval of a room's day.
type Slot struct {
	Interval string
	Booked   bool
	OrderBy  string
	Bookable bool
}

type DayPlan struct {
	Room  string
	Date  string
	Slots []Slot
}

type BookingResult struct {
	Booking *model.Booking

	// DeliveryErr is set when the booking is stored but the confirmation email failed.
	DeliveryErr error
}

type ScheduleService struct {
	scheduleRepository repository.ScheduleRepository
	roomRepository     repository.RoomRepository
	notifier           Notifier
	now                func() time.Time
}

func NewScheduleService(
	scheduleRepository repository.ScheduleRepository,
	roomRepository repository.RoomRepository,
	notifier Notifier,
) *ScheduleService {
	return &ScheduleService{
		scheduleRepository: scheduleRepository,
		roomRepository:     roomRepository,
		notifier:           notifier,
		now:                time.Now,
	}
}

// Day lists every interval of room on date with its booking state.
// Past days and intervals that already started are not bookable.
func (s *ScheduleService) Day(ctx context.Context, room, date string) (*DayPlan, error) {
	now := s.now()

	day, err := validation.ParseDate(date, now.Location())
	if err != nil {
		return nil, err
	}

	err = s.ensureRoom(room)
	if err != nil {
		return nil, err
	}

	date = day.Format(model.DateLayout)
	bookings, err := s.scheduleRepository.ByRoomAndDate(room, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	orderBy := make(map[string]string, len(bookings))
	for _, b := range bookings {
		orderBy[b.OrderInterval] = b.OrderBy
	}

	plan := &DayPlan{Room: room, Date: date, Slots: make([]Slot, 0, len(model.Intervals))}
	for _, iv := range model.Intervals {
		by, booked := orderBy[iv.Label()]
		plan.Slots = append(plan.Slots, Slot{
			Interval: iv.Label(),
			Booked:   booked,
			OrderBy:  by,
			Bookable: !booked && checkOpen(day, iv, now) == nil,
		})
	}

	return plan, nil
}

// Book reserves interval of room on date for the signed-in user and sends a
// confirmation email. The booking is kept when the email fails.
func (s *ScheduleService) Book(ctx context.Context, room, date, interval string) (*BookingResult, error) {
	user := ctxkeys.User(ctx)
	if user == nil {
		return nil, ErrNotSignedIn
	}

	iv, ok := model.IntervalByLabel(interval)
	if !ok {
		return nil, ErrUnknownInterval
	}

	now := s.now()
	day, err := validation.ParseDate(date, now.Location())
	if err != nil {
		return nil, err
	}

	err = checkOpen(day, iv, now)
	if err != nil {
		return nil, err
	}

	err = s.ensureRoom(room)
	if err != nil {
		return nil, err
	}

	date = day.Format(model.DateLayout)
	bookings, err := s.scheduleRepository.ByRoomAndDate(room, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	for _, b := range bookings {
		if b.OrderInterval == iv.Label() {
			return nil, ErrSlotTaken
		}
	}

	booking := &model.Booking{
		RoomName:      room,
		OrderBy:       user.Username,
		OrderDate:     date,
		OrderInterval: iv.Label(),
	}
	err = s.scheduleRepository.Create(booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	slog.Info("room booked", "room", room, "date", date, "interval", booking.OrderInterval, "username", user.Username)

	result := &BookingResult{Booking: booking}
	err = s.notifier.SendBookingConfirmation(ctx, user.Email, room, date, booking.OrderInterval)
	if err != nil {
		slog.Warn("failed to send booking confirmation", "error", err, "username", user.Username)
		result.DeliveryErr = err
	}

	return result, nil
}

func (s *ScheduleService) ensureRoom(room string) error {
	_, err := s.roomRepository.ByName(room)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("failed to get room: %w", err)
	}
	return nil
}

// checkOpen rejects days before today and, for today, intervals whose start has passed.
func checkOpen(day time.Time, iv model.Interval, now time.Time) error {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	if day.Before(today) {
		return ErrDateInPast
	}
	if day.Equal(today) && !now.Before(iv.StartOn(day)) {
		return ErrSlotPassed
	}
	return nil
}
