package models

import (
	"encoding/json"
	"errors"
	"strconv"
)

// allLocationsSentinel is the wire encoding the frontend sends and expects
// in the locationValues field for "every location of the account". It exists
// only here, in the codec; business code works with the tagged variant.
const allLocationsSentinel = -99

// LocationAssignment says where a schedule entry applies: pinned to one
// location, or fanned out to all locations of its account. The zero value
// means no location rows exist for the entry and renders as null.
type LocationAssignment struct {
	all        bool
	locationID uint
}

// PinnedLocation builds an assignment for a single location.
func PinnedLocation(locationID uint) LocationAssignment {
	return LocationAssignment{locationID: locationID}
}

// AllLocations builds the fan-out assignment.
func AllLocations() LocationAssignment {
	return LocationAssignment{all: true}
}

// AssignmentForCount derives the assignment reported for a schedule entry
// from its stored location rows: more than one distinct row means the entry
// was fanned out, zero rows means it is unassigned.
func AssignmentForCount(rowCount int, locationID uint) LocationAssignment {
	if rowCount > 1 {
		return AllLocations()
	}
	if rowCount < 1 {
		return LocationAssignment{}
	}
	return PinnedLocation(locationID)
}

// IsAll reports whether the assignment targets every location.
func (a LocationAssignment) IsAll() bool { return a.all }

// LocationID returns the pinned location id; meaningful only when !IsAll().
func (a LocationAssignment) LocationID() uint { return a.locationID }

func (a LocationAssignment) MarshalJSON() ([]byte, error) {
	if a.all {
		return []byte(strconv.Itoa(allLocationsSentinel)), nil
	}
	if a.locationID == 0 {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatUint(uint64(a.locationID), 10)), nil
}

func (a *LocationAssignment) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("locationValues must be a number")
	}
	if n == allLocationsSentinel {
		*a = AllLocations()
		return nil
	}
	if n <= 0 {
		return errors.New("locationValues must be a positive location id or the all-locations value")
	}
	*a = PinnedLocation(uint(n))
	return nil
}
