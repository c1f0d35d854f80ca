package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"solosync/pkg/response"
)

func TestNaiveDateTimeMarshalJSON(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"whole seconds", time.Date(2024, 5, 3, 15, 30, 0, 0, loc), `"2024-05-03T15:30:00"`},
		{"microseconds", time.Date(2024, 5, 3, 15, 30, 0, 123456000, loc), `"2024-05-03T15:30:00.123456"`},
		{"trailing zeros kept", time.Date(2024, 5, 3, 15, 30, 0, 120000000, loc), `"2024-05-03T15:30:00.120000"`},
		{"nanoseconds truncated", time.Date(2024, 5, 3, 15, 30, 0, 500000999, loc), `"2024-05-03T15:30:00.500000"`},
		{"sub-microsecond only", time.Date(2024, 5, 3, 15, 30, 0, 999, loc), `"2024-05-03T15:30:00"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.NaiveDateTime(tt.in))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}
