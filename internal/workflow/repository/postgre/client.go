package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"solosync/internal/model"
	repo "solosync/internal/workflow/repository"
)

const clientColumns = `id, name, email, company, history`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(s rowScanner) (model.Client, error) {
	var (
		client  model.Client
		history []byte
	)
	if err := s.Scan(&client.ID, &client.Name, &client.Email, &client.Company, &history); err != nil {
		return model.Client{}, err
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &client.History); err != nil {
			return model.Client{}, fmt.Errorf("decode history: %w", err)
		}
	}
	return client, nil
}

func (r *implRepository) CreateClient(ctx context.Context, opt repo.CreateClientOptions) (model.Client, error) {
	history := opt.History
	if history == nil {
		history = []model.ClientEvent{}
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal history: %v", r.op("CreateClient"), err)
		return model.Client{}, repo.ErrFailedToInsert
	}

	query := `
		INSERT INTO clients (id, name, email, company, history, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + clientColumns

	client, err := scanClient(r.db.QueryRowContext(ctx, query, newID(), opt.Name, opt.Email, opt.Company, historyJSON))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("CreateClient"), err)
		return model.Client{}, repo.ErrFailedToInsert
	}
	return client, nil
}

// GetOneClient retrieves a single Client by the provided filters.
// Returns zero-value Client (ID == "") when not found.
func (r *implRepository) GetOneClient(ctx context.Context, opt repo.GetOneClientOptions) (model.Client, error) {
	where, args := r.buildGetOneClientQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM clients WHERE %s ORDER BY created_at ASC LIMIT 1`, clientColumns, where)

	client, err := scanClient(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Client{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("GetOneClient"), err)
		return model.Client{}, repo.ErrFailedToGet
	}
	return client, nil
}

func (r *implRepository) ListClients(ctx context.Context, opt repo.ListOptions) ([]model.Client, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.op("ListClients"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query, args := paginate(`SELECT `+clientColumns+` FROM clients ORDER BY created_at DESC`, nil, opt.Limit, opt.Offset)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("ListClients"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	clients := make([]model.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.op("ListClients"), err)
			return nil, 0, repo.ErrFailedToList
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.op("ListClients"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return clients, total, nil
}
