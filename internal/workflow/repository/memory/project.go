package memory

import (
	"context"

	"solosync/internal/model"
	repo "solosync/internal/workflow/repository"
)

func (r *implRepository) CreateProject(ctx context.Context, opt repo.CreateProjectOptions) (model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	project := model.Project{
		ID:           newID(),
		ClientName:   opt.ClientName,
		TaskTitle:    opt.TaskTitle,
		Budget:       opt.Budget,
		Deadline:     opt.Deadline,
		Status:       opt.Status,
		CalendarLink: opt.CalendarLink,
		CreatedAt:    r.now(),
	}
	r.projects = append(r.projects, project)
	return project, nil
}

func (r *implRepository) ListProjects(ctx context.Context, opt repo.ListOptions) ([]model.Project, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start, end := window(len(r.projects), opt.Limit, opt.Offset)
	return newestFirst(r.projects, start, end), len(r.projects), nil
}

func (r *implRepository) UpdateProjectStatus(ctx context.Context, opt repo.UpdateProjectStatusOptions) (model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.projects {
		if r.projects[i].ID == opt.ID {
			r.projects[i].Status = opt.Status
			return r.projects[i], nil
		}
	}
	return model.Project{}, nil
}
