package models

import (
	"encoding/json"
	"testing"
)

func TestLocationAssignmentMarshal(t *testing.T) {
	tests := []struct {
		name string
		in   LocationAssignment
		want string
	}{
		{"all locations", AllLocations(), "-99"},
		{"pinned", PinnedLocation(42), "42"},
		{"unassigned", LocationAssignment{}, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("marshal = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLocationAssignmentUnmarshal(t *testing.T) {
	var all LocationAssignment
	if err := json.Unmarshal([]byte("-99"), &all); err != nil {
		t.Fatalf("Unmarshal -99: %v", err)
	}
	if !all.IsAll() {
		t.Errorf("-99 should decode to the all-locations assignment")
	}

	var pinned LocationAssignment
	if err := json.Unmarshal([]byte("7"), &pinned); err != nil {
		t.Fatalf("Unmarshal 7: %v", err)
	}
	if pinned.IsAll() || pinned.LocationID() != 7 {
		t.Errorf("7 should decode to a pin on location 7")
	}
}

func TestLocationAssignmentUnmarshalRejectsGarbage(t *testing.T) {
	for _, raw := range []string{`"abc"`, "0", "-5", "null"} {
		var a LocationAssignment
		if err := json.Unmarshal([]byte(raw), &a); err == nil {
			t.Errorf("Unmarshal(%s) succeeded, want error", raw)
		}
	}
}

func TestAssignmentForCount(t *testing.T) {
	if a := AssignmentForCount(3, 10); !a.IsAll() {
		t.Errorf("multiple fan-out rows should collapse to the all-locations assignment")
	}
	if a := AssignmentForCount(1, 10); a.IsAll() || a.LocationID() != 10 {
		t.Errorf("single fan-out row should pin its location")
	}
	if a := AssignmentForCount(0, 0); a != (LocationAssignment{}) {
		t.Errorf("zero fan-out rows should report the unassigned value")
	}
}

func TestRoundTrip(t *testing.T) {
	for _, in := range []LocationAssignment{AllLocations(), PinnedLocation(3)} {
		raw, err := json.Marshal(in)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		var out LocationAssignment
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("Unmarshal(%s): %v", raw, err)
		}
		if out != in {
			t.Errorf("round trip changed %v to %v", in, out)
		}
	}
}
