package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ordering"
	"taskboard/internal/core/ports"
)

const taskColumns = `
  t.id,
  t.project_id,
  t.title,
  t.description,
  t.status,
  t.priority,
  t.position,
  t.due_date,
  t.assignee_id,
  t.created_at,
  t.updated_at,
  u.name AS assignee_name,
  u.email AS assignee_email
`

// Rows come back unordered; display order is applied in Go through the
// ordering package.
const listByProjectQuery = `
SELECT` + taskColumns + `
FROM tasks t
LEFT JOIN users u ON u.id = t.assignee_id
WHERE t.project_id = ?
`

const listColumnQuery = `
SELECT` + taskColumns + `
FROM tasks t
LEFT JOIN users u ON u.id = t.assignee_id
WHERE t.project_id = ? AND t.status = ?
`

const findByIDQuery = `
SELECT` + taskColumns + `,
  p.owner_id AS project_owner_id
FROM tasks t
JOIN projects p ON p.id = t.project_id
LEFT JOIN users u ON u.id = t.assignee_id
WHERE t.id = ?
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID             int64          `db:"id"`
	ProjectID      int64          `db:"project_id"`
	Title          string         `db:"title"`
	Description    sql.NullString `db:"description"`
	Status         string         `db:"status"`
	Priority       string         `db:"priority"`
	Position       int            `db:"position"`
	DueDate        sql.NullTime   `db:"due_date"`
	AssigneeID     sql.NullInt64  `db:"assignee_id"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	AssigneeName   sql.NullString `db:"assignee_name"`
	AssigneeEmail  sql.NullString `db:"assignee_email"`
	ProjectOwnerID sql.NullInt64  `db:"project_owner_id"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListByProject returns the whole board: TODO, IN_PROGRESS, DONE columns in
// that order, each sorted by the ordering package.
func (r *TaskRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	tasks, err := r.selectTasks(ctx, listByProjectQuery, projectID)
	if err != nil {
		return nil, err
	}
	return boardOrder(tasks), nil
}

func (r *TaskRepository) ListColumn(ctx context.Context, projectID int64, status domain.TaskStatus) ([]domain.Task, error) {
	tasks, err := r.selectTasks(ctx, listColumnQuery, projectID, string(status))
	if err != nil {
		return nil, err
	}
	ordering.Sort(tasks)
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, taskID int64) (*domain.TaskWithOwner, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, findByIDQuery, taskID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	task := domain.TaskWithOwner{
		Task:           mapTaskRowToDomainTask(row),
		ProjectOwnerID: row.ProjectOwnerID.Int64,
	}
	return &task, nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput, position int) (*domain.Task, error) {
	var dueDate any
	if input.DueDate != nil {
		dueDate = input.DueDate.Format("2006-01-02")
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (project_id, title, description, status, priority, position, due_date, assignee_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		input.ProjectID, input.Title, input.Description, string(input.Status), string(input.Priority),
		position, dueDate, input.AssigneeID,
	)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	created, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, sql.ErrNoRows
	}

	return &created.Task, nil
}

// UpdateTask writes the patched fields and the renumbered columns in one
// transaction so a partially applied move can never be observed.
func (r *TaskRepository) UpdateTask(ctx context.Context, taskID int64, patch domain.UpdateTaskInput, reorders []domain.ColumnOrder) (*domain.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	sets, args := buildTaskUpdate(patch)
	args = append(args, taskID)
	if _, err := tx.ExecContext(ctx, `UPDATE tasks SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...); err != nil {
		return nil, err
	}

	for _, reorder := range reorders {
		if err := applyColumnOrder(ctx, tx, reorder); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	updated, err := r.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, sql.ErrNoRows
	}

	return &updated.Task, nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, taskID int64, reorder domain.ColumnOrder) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, taskID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	if err := applyColumnOrder(ctx, tx, reorder); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *TaskRepository) selectTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

// boardOrder groups tasks into the fixed column sequence and sorts each
// column.
func boardOrder(tasks []domain.Task) []domain.Task {
	board := make([]domain.Task, 0, len(tasks))
	for _, status := range domain.TaskStatuses {
		column := make([]domain.Task, 0, len(tasks))
		for _, task := range tasks {
			if task.Status == status {
				column = append(column, task)
			}
		}
		ordering.Sort(column)
		board = append(board, column...)
	}
	return board
}

func buildTaskUpdate(patch domain.UpdateTaskInput) ([]string, []any) {
	sets := []string{"updated_at = CURRENT_TIMESTAMP(6)"}
	args := []any{}

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, patch.Description)
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*patch.Status))
	}
	if patch.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*patch.Priority))
	}
	if patch.AssigneeIDSet {
		sets = append(sets, "assignee_id = ?")
		args = append(args, patch.AssigneeID)
	}
	if patch.DueDateSet {
		var dueDate any
		if patch.DueDate != nil {
			dueDate = patch.DueDate.Format("2006-01-02")
		}
		sets = append(sets, "due_date = ?")
		args = append(args, dueDate)
	}

	return sets, args
}

// applyColumnOrder renumbers one column to the dense sequence 0..n-1.
func applyColumnOrder(ctx context.Context, tx *sqlx.Tx, reorder domain.ColumnOrder) error {
	for index, id := range reorder.OrderedIDs {
		if _, err := tx.ExecContext(ctx,
			`UPDATE tasks SET position = ? WHERE id = ? AND project_id = ?`,
			index, id, reorder.ProjectID,
		); err != nil {
			return err
		}
	}
	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		ProjectID: row.ProjectID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		Priority:  domain.TaskPriority(row.Priority),
		Position:  row.Position,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	if row.AssigneeID.Valid {
		id := row.AssigneeID.Int64
		task.AssigneeID = &id
		task.Assignee = &domain.UserRef{
			ID:    id,
			Name:  row.AssigneeName.String,
			Email: row.AssigneeEmail.String,
		}
	}

	return task
}
