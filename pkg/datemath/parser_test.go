package datemath_test

import (
	"testing"
	"time"

	"solosync/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("Asia/Ho_Chi_Minh"); err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	p, err := datemath.NewParser("Local")
	if err != nil {
		t.Fatalf("unexpected error for Local: %v", err)
	}
	if p.Location() != time.Local {
		t.Errorf("expected time.Local, got %v", p.Location())
	}

	if _, err = datemath.NewParser("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		from, target time.Weekday
		want         int
	}{
		{time.Wednesday, time.Friday, 2},
		{time.Friday, time.Friday, 7},
		{time.Saturday, time.Friday, 6},
		{time.Sunday, time.Monday, 1},
		{time.Monday, time.Monday, 7},
		{time.Tuesday, time.Monday, 6},
	}

	for _, tt := range tests {
		if got := datemath.DaysUntil(tt.from, tt.target); got != tt.want {
			t.Errorf("DaysUntil(%v, %v) = %d, want %d", tt.from, tt.target, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Tomorrow", relative: "Tomorrow", want: baseTime.AddDate(0, 0, 1)},
		{name: "Next week", relative: "  Next Week ", want: baseTime.AddDate(0, 0, 7)},
		{name: "Next Monday (from Wed)", relative: "next monday", want: baseTime.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", relative: "next wednesday", want: baseTime.AddDate(0, 0, 7)},
		{name: "Bare weekday", relative: "friday", want: baseTime.AddDate(0, 0, 2)},
		{name: "Unknown phrase", relative: "some random day", want: baseTime, wantErr: true},
		{name: "Duration phrases unsupported", relative: "in 3 days", want: baseTime, wantErr: true},
		{name: "Invalid Next Weekday", relative: "next funday", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextWeekdayKeepsClock(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	parser, _ := datemath.NewParser("America/New_York")

	// Friday 2024-03-08 09:15, the following Friday crosses the DST switch.
	base := time.Date(2024, 3, 8, 9, 15, 0, 0, loc)
	got := parser.NextWeekday(base, time.Friday)

	want := time.Date(2024, 3, 15, 9, 15, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("NextWeekday() = %v, want %v", got, want)
	}
}

func TestNowUsesClock(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	fixed := time.Date(2024, 5, 1, 8, 0, 0, 0, time.FixedZone("X", 3600))
	parser.SetClock(func() time.Time { return fixed })

	got := parser.Now()
	if !got.Equal(fixed) || got.Location() != time.UTC {
		t.Errorf("Now() = %v, want %v in UTC", got, fixed)
	}
}
