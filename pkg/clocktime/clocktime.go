// Package clocktime normalizes the wall-clock strings the scheduling UI
// sends ("2:30 PM") into the 24-hour "HH:MM:SS" form the schedule tables
// store, and derives end times from a duration in minutes.
package clocktime

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a wall-clock time of day with minute precision.
type Clock struct {
	Hour   int // 0..23
	Minute int // 0..59
}

// Parse converts "h:mm AM" / "h:mm PM" into a Clock. Malformed input is a
// caller contract violation and returns an error rather than a default.
func Parse(s string) (Clock, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return Clock{}, fmt.Errorf("clocktime: %q is not in \"h:mm AM|PM\" form", s)
	}

	hm := strings.SplitN(fields[0], ":", 2)
	if len(hm) != 2 {
		return Clock{}, fmt.Errorf("clocktime: %q is missing the hour:minute separator", s)
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil {
		return Clock{}, fmt.Errorf("clocktime: bad hour in %q", s)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil {
		return Clock{}, fmt.Errorf("clocktime: bad minute in %q", s)
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("clocktime: %q is out of range", s)
	}

	switch strings.ToUpper(fields[1]) {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	default:
		return Clock{}, fmt.Errorf("clocktime: %q has no AM/PM marker", s)
	}

	return Clock{Hour: hour, Minute: minute}, nil
}

// AddMinutes returns the clock d minutes later. The arithmetic is calendar
// agnostic: minute overflow rolls into the hour and the hour wraps mod 24,
// so an end time past midnight lands on the next day's clock face.
func (c Clock) AddMinutes(d int) Clock {
	total := c.Hour*60 + c.Minute + d
	total %= 24 * 60
	if total < 0 {
		total += 24 * 60
	}
	return Clock{Hour: total / 60, Minute: total % 60}
}

// String renders the stored "HH:MM:SS" form.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:00", c.Hour, c.Minute)
}

// ParseStored converts the stored "HH:MM:SS" form back into a Clock.
func ParseStored(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 && len(parts) != 2 {
		return Clock{}, fmt.Errorf("clocktime: %q is not in \"HH:MM:SS\" form", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return Clock{}, fmt.Errorf("clocktime: bad hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return Clock{}, fmt.Errorf("clocktime: bad minute in %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("clocktime: %q is out of range", s)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// Format12 renders the clock the way mobile clients display it: "02:30 PM".
func (c Clock) Format12() string {
	meridiem := "AM"
	hour := c.Hour
	if hour >= 12 {
		meridiem = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%02d:%02d %s", hour, c.Minute, meridiem)
}

// Minutes is the number of minutes since midnight, used for chronological
// comparison of same-day clocks.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// EndTime parses a start clock and returns both normalized start and the
// end reached after duration minutes.
func EndTime(start string, duration int) (string, string, error) {
	c, err := Parse(start)
	if err != nil {
		return "", "", err
	}
	return c.String(), c.AddMinutes(duration).String(), nil
}
