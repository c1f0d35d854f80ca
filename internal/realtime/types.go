package realtime

import "time"

const (
	subscriberBuffer = 16
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
)

// Frame is the JSON envelope pushed to every subscriber.
type Frame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}
