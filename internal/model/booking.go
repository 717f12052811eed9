package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the day format stored in the schedule table (dd.mm.yyyy).
const DateLayout = "02.01.2006"

type Booking struct {
	ID            int64  `db:"id"`
	RoomName      string `db:"room_name"`
	OrderBy       string `db:"order_by"`
	OrderDate     string `db:"order_date"`
	OrderInterval string `db:"order_interval"`
}

// Interval is a fixed two-hour booking slot.
type Interval struct {
	StartHour int
	EndHour   int
}

func (i Interval) Label() string {
	return fmt.Sprintf("%02d:00 - %02d:00", i.StartHour, i.EndHour)
}

// StartOn returns the start of the interval on the given day, in day's location.
func (i Interval) StartOn(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, i.StartHour, 0, 0, 0, day.Location())
}

var Intervals = []Interval{
	{8, 10}, {10, 12}, {12, 14}, {14, 16}, {16, 18}, {18, 20}, {20, 22},
}

// IntervalByLabel finds an interval by its label, tolerating surrounding spaces.
func IntervalByLabel(label string) (Interval, bool) {
	label = strings.TrimSpace(label)
	for _, iv := range Intervals {
		if iv.Label() == label {
			return iv, true
		}
	}
	return Interval{}, false
}
