package types

import "testing"

func TestParseServiceTime_Basic(t *testing.T) {
	cases := []struct {
		in      string
		ok      bool
		seconds int
	}{
		{"00:00:00", true, 0},
		{"08:05:09", true, 8*3600 + 5*60 + 9},
		{"24:00:00", true, 24 * 3600},       // allowed by GTFS
		{"25:00:00", true, 25 * 3600},       // late night service (1 AM next day)
		{"25:30:00", true, 25*3600 + 30*60}, // 1:30 AM next day
		{"26:45:00", true, 26*3600 + 45*60}, // 2:45 AM next day
		{"47:59:59", true, maxServiceSeconds},
		{"48:00:00", false, 0}, // one second past the representable range
		{"8:00:00", true, 8 * 3600}, // hours may be unpadded per GTFS
		{"08:0:00", false, 0},       // invalid padding
		{"08:00:0", false, 0},       // invalid padding
	}
	for _, c := range cases {
		tt, err := ParseServiceTime(c.in)
		if c.ok && err != nil {
			t.Errorf("expected ok for %s, got err %v", c.in, err)
			continue
		}
		if !c.ok && err == nil {
			t.Errorf("expected error for %s", c.in)
			continue
		}
		if c.ok {
			if got := tt.ToSeconds(); got != c.seconds {
				t.Errorf("%s seconds expected %d, got %d", c.in, c.seconds, got)
			}
			if got := tt.String(); got != c.in && !(c.in == "8:00:00" && got == "08:00:00") {
				t.Errorf("%s round-trip mismatch, got %s", c.in, got)
			}
		}
	}
}

func TestServiceTime_OverflowOrdering(t *testing.T) {
	before, err := ParseServiceTime("23:50:00")
	if err != nil {
		t.Fatal(err)
	}
	after, err := ParseServiceTime("25:10:00")
	if err != nil {
		t.Fatal(err)
	}
	if !before.Before(after) {
		t.Errorf("expected 23:50:00 to sort before 25:10:00")
	}
	if !after.IsOverflow() {
		t.Errorf("expected 25:10:00 to be flagged as overflow")
	}
	if before.IsOverflow() {
		t.Errorf("expected 23:50:00 to not be flagged as overflow")
	}
}

func TestServiceTime_AddDurationSaturates(t *testing.T) {
	start, err := ParseServiceTime("47:00:00")
	if err != nil {
		t.Fatal(err)
	}
	end, err := start.AddDuration(2 * 3600)
	if err != nil {
		t.Fatal(err)
	}
	if end.ToSeconds() != maxServiceSeconds {
		t.Errorf("expected saturation at 47:59:59, got %s", end)
	}
	if _, err := start.AddDuration(-1); err == nil {
		t.Errorf("expected negative duration to be rejected")
	}
}

func TestParseGTFSDate_Basic(t *testing.T) {
	cases := []struct {
		in      string
		ok      bool
		y, m, d int
	}{
		{"20250101", true, 2025, 1, 1},
		{"20240229", true, 2024, 2, 29}, // leap day
		{"20250230", false, 0, 0, 0},    // invalid day
		{"2025-01-01", false, 0, 0, 0},  // wrong format
		{"2025010", false, 0, 0, 0},     // wrong length
	}
	for _, c := range cases {
		d, err := ParseGTFSDate(c.in)
		if c.ok && err != nil {
			t.Errorf("expected ok for %s, got err %v", c.in, err)
			continue
		}
		if !c.ok && err == nil {
			t.Errorf("expected error for %s", c.in)
			continue
		}
		if c.ok {
			if d.Year != c.y || d.Month != c.m || d.Day != c.d {
				t.Errorf("%s parsed mismatch got %04d-%02d-%02d", c.in, d.Year, d.Month, d.Day)
			}
		}
	}
}

func TestCoordinate_Validate(t *testing.T) {
	cases := []struct {
		lat, lon float64
		ok       bool
	}{
		{45.5, -122.6, true},
		{90, 180, true},
		{-90, -180, true},
		{90.1, 0, false},
		{0, 180.1, false},
	}
	for _, c := range cases {
		coord := Coordinate{Latitude: c.lat, Longitude: c.lon}
		if err := coord.Validate(); (err == nil) != c.ok {
			t.Errorf("Coordinate{%v,%v} validate ok=%v, want %v (err=%v)", c.lat, c.lon, err == nil, c.ok, err)
		}
	}
}
