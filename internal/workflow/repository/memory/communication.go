package memory

import (
	"context"

	"solosync/internal/model"
	repo "solosync/internal/workflow/repository"
)

func (r *implRepository) CreateCommunication(ctx context.Context, opt repo.CreateCommunicationOptions) (model.Communication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comm := model.Communication{
		ID:        newID(),
		Platform:  opt.Platform,
		Content:   opt.Content,
		Timestamp: r.now(),
	}
	r.communications = append(r.communications, comm)
	return comm, nil
}

func (r *implRepository) ListCommunications(ctx context.Context, opt repo.ListOptions) ([]model.Communication, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start, end := window(len(r.communications), opt.Limit, opt.Offset)
	return newestFirst(r.communications, start, end), len(r.communications), nil
}
