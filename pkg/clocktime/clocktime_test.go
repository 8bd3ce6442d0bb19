package clocktime

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2:30 PM", "14:30:00"},
		{"12:15 AM", "00:15:00"},
		{"12:00 PM", "12:00:00"},
		{"11:59 PM", "23:59:00"},
		{"1:05 am", "01:05:00"},
		{"9:00 AM", "09:00:00"},
	}
	for _, tt := range tests {
		c, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got := c.String(); got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{
		"",
		"2:30",
		"230 PM",
		"x:30 PM",
		"2:xx PM",
		"2:30 XX",
		"13:00 PM",
		"0:30 AM",
		"2:75 PM",
	} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) expected error, got none", in)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		start    string
		duration int
		want     string
	}{
		{"2:30 PM", 90, "16:00:00"},
		{"2:30 PM", 0, "14:30:00"},
		{"11:45 AM", 30, "12:15:00"},
		{"12:15 AM", 45, "01:00:00"},
		// hour overflow past 23:59 wraps onto the next clock face
		{"11:30 PM", 60, "00:30:00"},
	}
	for _, tt := range tests {
		c, err := Parse(tt.start)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.start, err)
		}
		if got := c.AddMinutes(tt.duration).String(); got != tt.want {
			t.Errorf("%q + %dmin = %s, want %s", tt.start, tt.duration, got, tt.want)
		}
	}
}

func TestParseStoredAndFormat12(t *testing.T) {
	tests := []struct {
		stored string
		want   string
	}{
		{"14:30:00", "02:30 PM"},
		{"00:15:00", "12:15 AM"},
		{"12:00:00", "12:00 PM"},
		{"23:59:00", "11:59 PM"},
	}
	for _, tt := range tests {
		c, err := ParseStored(tt.stored)
		if err != nil {
			t.Fatalf("ParseStored(%q): %v", tt.stored, err)
		}
		if got := c.Format12(); got != tt.want {
			t.Errorf("Format12(%q) = %s, want %s", tt.stored, got, tt.want)
		}
	}

	if _, err := ParseStored("25:00:00"); err == nil {
		t.Error("ParseStored out-of-range hour expected error")
	}
}

func TestEndTime(t *testing.T) {
	start, end, err := EndTime("2:30 PM", 90)
	if err != nil {
		t.Fatalf("EndTime: %v", err)
	}
	if start != "14:30:00" || end != "16:00:00" {
		t.Errorf("EndTime = (%s, %s), want (14:30:00, 16:00:00)", start, end)
	}

	if _, _, err := EndTime("garbage", 60); err == nil {
		t.Error("EndTime with malformed start expected error")
	}
}
