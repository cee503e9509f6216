package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

// Task counts are aggregated from live task rows on every read so they can
// never drift from the tasks table.
const projectWithCountsQuery = `
SELECT
  p.id,
  p.name,
  p.description,
  p.owner_id,
  p.created_at,
  COUNT(t.id) AS total_tasks,
  COALESCE(SUM(t.status = 'TODO'), 0) AS todo_tasks,
  COALESCE(SUM(t.status = 'IN_PROGRESS'), 0) AS in_progress_tasks,
  COALESCE(SUM(t.status = 'DONE'), 0) AS done_tasks
FROM projects p
LEFT JOIN tasks t ON t.project_id = p.id
`

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID              int64          `db:"id"`
	Name            string         `db:"name"`
	Description     sql.NullString `db:"description"`
	OwnerID         int64          `db:"owner_id"`
	CreatedAt       time.Time      `db:"created_at"`
	TotalTasks      int            `db:"total_tasks"`
	TodoTasks       int            `db:"todo_tasks"`
	InProgressTasks int            `db:"in_progress_tasks"`
	DoneTasks       int            `db:"done_tasks"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) FindAllByOwner(ctx context.Context, ownerID int64) ([]domain.Project, error) {
	var rows []projectRow
	query := projectWithCountsQuery + `WHERE p.owner_id = ? GROUP BY p.id ORDER BY p.created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProjectRowToDomainProject(row))
	}

	return projects, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, projectID int64) (*domain.Project, error) {
	var row projectRow
	query := projectWithCountsQuery + `WHERE p.id = ? GROUP BY p.id`
	err := r.db.GetContext(ctx, &row, query, projectID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	project := mapProjectRowToDomainProject(row)
	return &project, nil
}

func (r *ProjectRepository) CreateProject(ctx context.Context, input domain.CreateProjectInput, ownerID int64) (*domain.Project, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (name, description, owner_id) VALUES (?, ?, ?)`,
		input.Name, input.Description, ownerID,
	)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func mapProjectRowToDomainProject(row projectRow) domain.Project {
	project := domain.Project{
		ID:        row.ID,
		Name:      row.Name,
		OwnerID:   row.OwnerID,
		CreatedAt: row.CreatedAt,
		TaskCounts: domain.TaskCounts{
			Total:      row.TotalTasks,
			Todo:       row.TodoTasks,
			InProgress: row.InProgressTasks,
			Done:       row.DoneTasks,
		},
	}

	if row.Description.Valid {
		value := row.Description.String
		project.Description = &value
	}

	return project
}
