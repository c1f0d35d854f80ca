package postgre

import (
	"context"

	"solosync/internal/model"
	repo "solosync/internal/workflow/repository"
)

func (r *implRepository) CreateCommunication(ctx context.Context, opt repo.CreateCommunicationOptions) (model.Communication, error) {
	const query = `
		INSERT INTO communications (id, platform, content, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, platform, content, created_at`

	var comm model.Communication
	err := r.db.QueryRowContext(ctx, query, newID(), opt.Platform, opt.Content).Scan(
		&comm.ID, &comm.Platform, &comm.Content, &comm.Timestamp,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("CreateCommunication"), err)
		return model.Communication{}, repo.ErrFailedToInsert
	}
	return comm, nil
}

func (r *implRepository) ListCommunications(ctx context.Context, opt repo.ListOptions) ([]model.Communication, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM communications`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.op("ListCommunications"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query, args := paginate(
		`SELECT id, platform, content, created_at FROM communications ORDER BY created_at DESC`,
		nil, opt.Limit, opt.Offset,
	)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("ListCommunications"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	comms := make([]model.Communication, 0)
	for rows.Next() {
		var comm model.Communication
		if err := rows.Scan(&comm.ID, &comm.Platform, &comm.Content, &comm.Timestamp); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.op("ListCommunications"), err)
			return nil, 0, repo.ErrFailedToList
		}
		comms = append(comms, comm)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.op("ListCommunications"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return comms, total, nil
}
