package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// NaiveDateTime marshals using the wall clock of the location the time
// already carries. Fractions are always six digits and omitted when the
// microsecond part is zero.
type NaiveDateTime time.Time

// MarshalJSON implements json.Marshaler for NaiveDateTime.
func (d NaiveDateTime) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	layout := NaiveISOFormat
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		layout = naiveISOMicroFormat
	}
	return json.Marshal(t.Format(layout))
}
