package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type TaskRepository interface {
	// ListByProject returns tasks in board order: TODO, IN_PROGRESS, DONE
	// columns, position ascending within each.
	ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error)
	// ListColumn returns one column ordered by position ascending, ties broken
	// by newest created first.
	ListColumn(ctx context.Context, projectID int64, status domain.TaskStatus) ([]domain.Task, error)
	// FindByID returns (nil, nil) when the task does not exist.
	FindByID(ctx context.Context, taskID int64) (*domain.TaskWithOwner, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput, position int) (*domain.Task, error)
	// UpdateTask applies the patch and the column renumberings in a single
	// transaction. Position values come only from reorders, never the patch.
	UpdateTask(ctx context.Context, taskID int64, patch domain.UpdateTaskInput, reorders []domain.ColumnOrder) (*domain.Task, error)
	// DeleteTask removes the task and renumbers its vacated column atomically.
	DeleteTask(ctx context.Context, taskID int64, reorder domain.ColumnOrder) error
}

type TaskService interface {
	ListTasks(ctx context.Context, projectID, principalID int64) ([]domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput, principalID int64) (*domain.Task, error)
	UpdateTask(ctx context.Context, taskID int64, patch domain.UpdateTaskInput, principalID int64) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID, principalID int64) error
}
