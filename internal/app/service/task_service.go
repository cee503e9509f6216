package service

import (
	"context"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ordering"
	"taskboard/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	projectService ports.ProjectService
	locks          *projectLocks
}

func NewTaskService(taskRepository ports.TaskRepository, projectService ports.ProjectService) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		projectService: projectService,
		locks:          newProjectLocks(),
	}
}

func (s *TaskService) ListTasks(ctx context.Context, projectID, principalID int64) ([]domain.Task, error) {
	if _, err := s.projectService.GetOwnedProject(ctx, projectID, principalID); err != nil {
		return nil, err
	}
	return s.taskRepository.ListByProject(ctx, projectID)
}

// CreateTask appends the task to the tail of its status column.
func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput, principalID int64) (*domain.Task, error) {
	if _, err := s.projectService.GetOwnedProject(ctx, input.ProjectID, principalID); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(input.ProjectID)
	defer unlock()

	column, err := s.taskRepository.ListColumn(ctx, input.ProjectID, input.Status)
	if err != nil {
		return nil, err
	}

	return s.taskRepository.CreateTask(ctx, input, ordering.AppendIndex(column))
}

// UpdateTask applies a partial patch. Status or position changes are routed
// through the ordering engine so the affected columns stay dense; the raw
// position from the patch is never written directly.
func (s *TaskService) UpdateTask(ctx context.Context, taskID int64, patch domain.UpdateTaskInput, principalID int64) (*domain.Task, error) {
	task, err := s.findOwnedTask(ctx, taskID, principalID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(task.ProjectID)
	defer unlock()

	// Re-read under the lock; a concurrent request may have moved or deleted
	// the task between the guard check and now.
	task, err = s.findOwnedTask(ctx, taskID, principalID)
	if err != nil {
		return nil, err
	}

	reorders, err := s.planReorders(ctx, task, patch)
	if err != nil {
		return nil, err
	}

	return s.taskRepository.UpdateTask(ctx, taskID, patch, reorders)
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID, principalID int64) error {
	task, err := s.findOwnedTask(ctx, taskID, principalID)
	if err != nil {
		return err
	}

	unlock := s.locks.Lock(task.ProjectID)
	defer unlock()

	task, err = s.findOwnedTask(ctx, taskID, principalID)
	if err != nil {
		return err
	}

	column, err := s.taskRepository.ListColumn(ctx, task.ProjectID, task.Status)
	if err != nil {
		return err
	}

	return s.taskRepository.DeleteTask(ctx, taskID, domain.ColumnOrder{
		ProjectID:  task.ProjectID,
		Status:     task.Status,
		OrderedIDs: ordering.Remove(column, taskID),
	})
}

// findOwnedTask loads a task together with its parent project's owner and
// asserts the principal is that owner. Ownership is always inherited through
// the project; there is no weaker task-level rule.
func (s *TaskService) findOwnedTask(ctx context.Context, taskID, principalID int64) (*domain.TaskWithOwner, error) {
	task, err := s.taskRepository.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	if task.ProjectOwnerID != principalID {
		return nil, domain.ErrTaskForbidden
	}
	return task, nil
}

// planReorders computes the column renumberings a patch requires: none for a
// plain field edit, one column for a reorder in place, two for a status move.
func (s *TaskService) planReorders(ctx context.Context, task *domain.TaskWithOwner, patch domain.UpdateTaskInput) ([]domain.ColumnOrder, error) {
	statusChanged := patch.Status != nil && *patch.Status != task.Status
	if !statusChanged && patch.Position == nil {
		return nil, nil
	}

	if !statusChanged {
		column, err := s.taskRepository.ListColumn(ctx, task.ProjectID, task.Status)
		if err != nil {
			return nil, err
		}
		return []domain.ColumnOrder{{
			ProjectID:  task.ProjectID,
			Status:     task.Status,
			OrderedIDs: ordering.MoveWithin(column, task.ID, *patch.Position),
		}}, nil
	}

	source, err := s.taskRepository.ListColumn(ctx, task.ProjectID, task.Status)
	if err != nil {
		return nil, err
	}
	dest, err := s.taskRepository.ListColumn(ctx, task.ProjectID, *patch.Status)
	if err != nil {
		return nil, err
	}

	target := ordering.AppendIndex(dest)
	if patch.Position != nil {
		target = *patch.Position
	}

	return []domain.ColumnOrder{
		{
			ProjectID:  task.ProjectID,
			Status:     task.Status,
			OrderedIDs: ordering.Remove(source, task.ID),
		},
		{
			ProjectID:  task.ProjectID,
			Status:     *patch.Status,
			OrderedIDs: ordering.InsertAt(dest, task.ID, target),
		},
	}, nil
}

var _ ports.TaskService = (*TaskService)(nil)
