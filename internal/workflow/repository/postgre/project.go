package postgre

import (
	"context"
	"database/sql"

	"solosync/internal/model"
	repo "solosync/internal/workflow/repository"
)

const projectColumns = `id, client_name, task_title, budget, deadline, status, calendar_link, created_at`

func scanProject(s rowScanner) (model.Project, error) {
	var (
		p        model.Project
		status   string
		deadline sql.NullTime
	)
	err := s.Scan(&p.ID, &p.ClientName, &p.TaskTitle, &p.Budget, &deadline, &status, &p.CalendarLink, &p.CreatedAt)
	if err != nil {
		return model.Project{}, err
	}
	p.Status = model.ProjectStatus(status)
	if deadline.Valid {
		p.Deadline = deadline.Time
	}
	return p, nil
}

func (r *implRepository) CreateProject(ctx context.Context, opt repo.CreateProjectOptions) (model.Project, error) {
	query := `
		INSERT INTO projects (id, client_name, task_title, budget, deadline, status, calendar_link, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING ` + projectColumns

	p, err := scanProject(r.db.QueryRowContext(ctx, query,
		newID(), opt.ClientName, opt.TaskTitle, opt.Budget, opt.Deadline, string(opt.Status), opt.CalendarLink,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("CreateProject"), err)
		return model.Project{}, repo.ErrFailedToInsert
	}
	return p, nil
}

func (r *implRepository) ListProjects(ctx context.Context, opt repo.ListOptions) ([]model.Project, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.op("ListProjects"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query, args := paginate(`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`, nil, opt.Limit, opt.Offset)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("ListProjects"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	projects := make([]model.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.op("ListProjects"), err)
			return nil, 0, repo.ErrFailedToList
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.op("ListProjects"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return projects, total, nil
}

func (r *implRepository) UpdateProjectStatus(ctx context.Context, opt repo.UpdateProjectStatusOptions) (model.Project, error) {
	query := `UPDATE projects SET status = $1 WHERE id = $2 RETURNING ` + projectColumns

	p, err := scanProject(r.db.QueryRowContext(ctx, query, string(opt.Status), opt.ID))
	if err == sql.ErrNoRows {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("UpdateProjectStatus"), err)
		return model.Project{}, repo.ErrFailedToUpdate
	}
	return p, nil
}
