package validation

import (
	"strings"
	"time"

	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
)

const DateField = "Date"

// ParseDate parses a dd.mm.yyyy day in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fail(DateField, EmptyField, "Date field is empty!")
	}

	day, err := time.ParseInLocation(model.DateLayout, value, loc)
	if err != nil {
		return time.Time{}, fail(DateField, InvalidDate, "Date must have the format dd.mm.yyyy!")
	}

	return day, nil
}
