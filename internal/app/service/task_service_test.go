package service_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appservice "taskboard/internal/app/service"
	"taskboard/internal/core/domain"
)

func todoColumn(projectID int64, ids ...int64) []domain.Task {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tasks := make([]domain.Task, 0, len(ids))
	for i, id := range ids {
		tasks = append(tasks, domain.Task{
			ID:        id,
			ProjectID: projectID,
			Status:    domain.TaskStatusTodo,
			Position:  i,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return tasks
}

func ownedTask(taskID, projectID, ownerID int64, status domain.TaskStatus, position int) *domain.TaskWithOwner {
	return &domain.TaskWithOwner{
		Task: domain.Task{
			ID:        taskID,
			ProjectID: projectID,
			Title:     "task",
			Status:    status,
			Position:  position,
		},
		ProjectOwnerID: ownerID,
	}
}

func TestTaskService_ListTasks_GuardShortCircuits(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	projects := new(projectServiceMock)
	projects.On("GetOwnedProject", mock.Anything, int64(10), int64(999)).
		Return(nil, domain.ErrProjectForbidden).
		Once()

	svc := appservice.NewTaskService(taskRepo, projects)
	_, err := svc.ListTasks(context.Background(), 10, 999)

	require.ErrorIs(t, err, domain.ErrProjectForbidden)
	taskRepo.AssertNotCalled(t, "ListByProject", mock.Anything, mock.Anything)
	projects.AssertExpectations(t)
}

func TestTaskService_CreateTask_AppendsToColumnTail(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	projects := new(projectServiceMock)

	input := domain.CreateTaskInput{ProjectID: 10, Title: "New card", Status: domain.TaskStatusTodo, Priority: domain.TaskPriorityMedium}

	projects.On("GetOwnedProject", mock.Anything, int64(10), int64(1)).
		Return(&domain.Project{ID: 10, OwnerID: 1}, nil).
		Once()
	taskRepo.On("ListColumn", mock.Anything, int64(10), domain.TaskStatusTodo).
		Return(todoColumn(10, 100, 101), nil).
		Once()
	taskRepo.On("CreateTask", mock.Anything, input, 2).
		Return(&domain.Task{ID: 102, ProjectID: 10, Title: "New card", Status: domain.TaskStatusTodo, Position: 2}, nil).
		Once()

	svc := appservice.NewTaskService(taskRepo, projects)
	task, err := svc.CreateTask(context.Background(), input, 1)

	require.NoError(t, err)
	require.Equal(t, 2, task.Position)
	taskRepo.AssertExpectations(t)
	projects.AssertExpectations(t)
}

func TestTaskService_UpdateTask_NotFound(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	projects := new(projectServiceMock)
	taskRepo.On("FindByID", mock.Anything, int64(404)).Return(nil, nil).Once()

	svc := appservice.NewTaskService(taskRepo, projects)
	_, err := svc.UpdateTask(context.Background(), 404, domain.UpdateTaskInput{}, 1)

	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	taskRepo.AssertExpectations(t)
}

func TestTaskService_UpdateTask_ForbiddenForNonOwner(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	projects := new(projectServiceMock)
	taskRepo.On("FindByID", mock.Anything, int64(100)).
		Return(ownedTask(100, 10, 1, domain.TaskStatusTodo, 0), nil).
		Once()

	svc := appservice.NewTaskService(taskRepo, projects)
	_, err := svc.UpdateTask(context.Background(), 100, domain.UpdateTaskInput{}, 999)

	require.ErrorIs(t, err, domain.ErrTaskForbidden)
	taskRepo.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskService_UpdateTask_PlainFieldEditSkipsReorder(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	projects := new(projectServiceMock)

	title := "Renamed"
	patch := domain.UpdateTaskInput{Title: &title}

	taskRepo.On("FindByID", mock.Anything, int64(100)).
		Return(ownedTask(100, 10, 1, domain.TaskStatusTodo, 0), nil).
		Twice()
	taskRepo.On("UpdateTask", mock.Anything, int64(100), patch, []domain.ColumnOrder(nil)).
		Return(&domain.Task{ID: 100, ProjectID: 10, Title: "Renamed", Status: domain.TaskStatusTodo}, nil).
		Once()

	svc := appservice.NewTaskService(taskRepo, projects)
	task, err := svc.UpdateTask(context.Background(), 100, patch, 1)

	require.NoError(t, err)
	require.Equal(t, "Renamed", task.Title)
	taskRepo.AssertExpectations(t)
}

func TestTaskService_UpdateTask_ReorderWithinColumn(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	projects := new(projectServiceMock)

	// Move the task at position 2 to the front of TODO: [102,100,101].
	position := 0
	patch := domain.UpdateTaskInput{Position: &position}

	taskRepo.On("FindByID", mock.Anything, int64(102)).
		Return(ownedTask(102, 10, 1, domain.TaskStatusTodo, 2), nil).
		Twice()
	taskRepo.On("ListColumn", mock.Anything, int64(10), domain.TaskStatusTodo).
		Return(todoColumn(10, 100, 101, 102), nil).
		Once()
	taskRepo.On("UpdateTask", mock.Anything, int64(102), patch, []domain.ColumnOrder{
		{ProjectID: 10, Status: domain.TaskStatusTodo, OrderedIDs: []int64{102, 100, 101}},
	}).
		Return(&domain.Task{ID: 102, ProjectID: 10, Status: domain.TaskStatusTodo, Position: 0}, nil).
		Once()

	svc := appservice.NewTaskService(taskRepo, projects)
	task, err := svc.UpdateTask(context.Background(), 102, patch, 1)

	require.NoError(t, err)
	require.Equal(t, 0, task.Position)
	taskRepo.AssertExpectations(t)
}

func TestTaskService_UpdateTask_MoveAcrossColumns(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	projects := new(projectServiceMock)

	// Task 101 leaves the middle of a three-task TODO column for an empty
	// IN_PROGRESS column: source renumbers to [100,102], destination to [101].
	status := domain.TaskStatusInProgress
	patch := domain.UpdateTaskInput{Status: &status}

	taskRepo.On("FindByID", mock.Anything, int64(101)).
		Return(ownedTask(101, 10, 1, domain.TaskStatusTodo, 1), nil).
		Twice()
	taskRepo.On("ListColumn", mock.Anything, int64(10), domain.TaskStatusTodo).
		Return(todoColumn(10, 100, 101, 102), nil).
		Once()
	taskRepo.On("ListColumn", mock.Anything, int64(10), domain.TaskStatusInProgress).
		Return(nil, nil).
		Once()
	taskRepo.On("UpdateTask", mock.Anything, int64(101), patch, []domain.ColumnOrder{
		{ProjectID: 10, Status: domain.TaskStatusTodo, OrderedIDs: []int64{100, 102}},
		{ProjectID: 10, Status: domain.TaskStatusInProgress, OrderedIDs: []int64{101}},
	}).
		Return(&domain.Task{ID: 101, ProjectID: 10, Status: domain.TaskStatusInProgress, Position: 0}, nil).
		Once()

	svc := appservice.NewTaskService(taskRepo, projects)
	task, err := svc.UpdateTask(context.Background(), 101, patch, 1)

	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusInProgress, task.Status)
	require.Equal(t, 0, task.Position)
	taskRepo.AssertExpectations(t)
}

// Concurrent moves on one project must not interleave their
// read-plan-write sequences: the column read and the write that consumes it
// belong to the same critical section.
func TestTaskService_UpdateTask_ConcurrentMovesSerializedPerProject(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	projects := new(projectServiceMock)

	const movers = 8
	var inMutation, overlaps int32

	taskRepo.On("FindByID", mock.Anything, int64(102)).
		Return(ownedTask(102, 10, 1, domain.TaskStatusTodo, 2), nil)
	taskRepo.On("ListColumn", mock.Anything, int64(10), domain.TaskStatusTodo).
		Run(func(mock.Arguments) {
			if atomic.AddInt32(&inMutation, 1) > 1 {
				atomic.AddInt32(&overlaps, 1)
			}
			time.Sleep(time.Millisecond)
		}).
		Return(todoColumn(10, 100, 101, 102), nil)
	taskRepo.On("UpdateTask", mock.Anything, int64(102), mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inMutation, -1)
		}).
		Return(&domain.Task{ID: 102, ProjectID: 10, Status: domain.TaskStatusTodo, Position: 0}, nil)

	svc := appservice.NewTaskService(taskRepo, projects)

	position := 0
	errs := make(chan error, movers)
	var wg sync.WaitGroup
	for i := 0; i < movers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.UpdateTask(context.Background(), 102, domain.UpdateTaskInput{Position: &position}, 1)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Zero(t, atomic.LoadInt32(&overlaps))
	taskRepo.AssertNumberOfCalls(t, "UpdateTask", movers)
}

func TestTaskService_DeleteTask_RenumbersVacatedColumn(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	projects := new(projectServiceMock)

	taskRepo.On("FindByID", mock.Anything, int64(101)).
		Return(ownedTask(101, 10, 1, domain.TaskStatusTodo, 1), nil).
		Twice()
	taskRepo.On("ListColumn", mock.Anything, int64(10), domain.TaskStatusTodo).
		Return(todoColumn(10, 100, 101, 102), nil).
		Once()
	taskRepo.On("DeleteTask", mock.Anything, int64(101), domain.ColumnOrder{
		ProjectID:  10,
		Status:     domain.TaskStatusTodo,
		OrderedIDs: []int64{100, 102},
	}).
		Return(nil).
		Once()

	svc := appservice.NewTaskService(taskRepo, projects)
	err := svc.DeleteTask(context.Background(), 101, 1)

	require.NoError(t, err)
	taskRepo.AssertExpectations(t)
}

func TestTaskService_DeleteTask_ForbiddenForNonOwner(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	projects := new(projectServiceMock)

	taskRepo.On("FindByID", mock.Anything, int64(101)).
		Return(ownedTask(101, 10, 1, domain.TaskStatusTodo, 1), nil).
		Once()

	svc := appservice.NewTaskService(taskRepo, projects)
	err := svc.DeleteTask(context.Background(), 101, 999)

	require.ErrorIs(t, err, domain.ErrTaskForbidden)
	taskRepo.AssertNotCalled(t, "DeleteTask", mock.Anything, mock.Anything, mock.Anything)
}
