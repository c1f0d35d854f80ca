package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"solosync/internal/model"
)

// implRepository keeps every record in process memory. Used when no
// database is configured; data is lost on restart.
type implRepository struct {
	mu  sync.RWMutex
	now func() time.Time

	communications []model.Communication
	clients        []model.Client
	projects       []model.Project
	invoices       []model.Invoice
}

// New creates an empty in-memory repository.
func New() *implRepository {
	return &implRepository{now: time.Now}
}

func newID() string {
	return uuid.NewString()
}

// window returns the [start, end) slice bounds for newest-first pagination over n records.
func window(n, limit, offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset >= n {
		return 0, 0
	}
	end := n - offset
	start := 0
	if limit > 0 && end-limit > 0 {
		start = end - limit
	}
	return start, end
}

// newestFirst copies items[start:end] in reverse order.
func newestFirst[T any](items []T, start, end int) []T {
	out := make([]T, 0, end-start)
	for i := end - 1; i >= start; i-- {
		out = append(out, items[i])
	}
	return out
}
