package memory

import (
	"context"

	"solosync/internal/model"
	repo "solosync/internal/workflow/repository"
)

func (r *implRepository) CreateClient(ctx context.Context, opt repo.CreateClientOptions) (model.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	client := model.Client{
		ID:      newID(),
		Name:    opt.Name,
		Email:   opt.Email,
		Company: opt.Company,
		History: append([]model.ClientEvent(nil), opt.History...),
	}
	r.clients = append(r.clients, client)
	return cloneClient(client), nil
}

func (r *implRepository) GetOneClient(ctx context.Context, opt repo.GetOneClientOptions) (model.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.clients {
		if opt.ID != "" && c.ID != opt.ID {
			continue
		}
		if opt.Name != "" && c.Name != opt.Name {
			continue
		}
		return cloneClient(c), nil
	}
	return model.Client{}, nil
}

func (r *implRepository) ListClients(ctx context.Context, opt repo.ListOptions) ([]model.Client, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start, end := window(len(r.clients), opt.Limit, opt.Offset)
	out := newestFirst(r.clients, start, end)
	for i := range out {
		out[i] = cloneClient(out[i])
	}
	return out, len(r.clients), nil
}

// cloneClient detaches the history slice from the stored record.
func cloneClient(c model.Client) model.Client {
	c.History = append([]model.ClientEvent(nil), c.History...)
	return c
}
