package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taskboard/internal/core/domain"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	args := m.Called(ctx, input)

	var result *domain.AuthResult
	if value := args.Get(0); value != nil {
		result = value.(*domain.AuthResult)
	}
	return result, args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	args := m.Called(ctx, email, password)

	var result *domain.AuthResult
	if value := args.Get(0); value != nil {
		result = value.(*domain.AuthResult)
	}
	return result, args.Error(1)
}

type projectServiceMock struct {
	mock.Mock
}

func (m *projectServiceMock) ListProjects(ctx context.Context, principalID int64) ([]domain.Project, error) {
	args := m.Called(ctx, principalID)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectServiceMock) CreateProject(ctx context.Context, input domain.CreateProjectInput, principalID int64) (*domain.Project, error) {
	args := m.Called(ctx, input, principalID)

	var project *domain.Project
	if value := args.Get(0); value != nil {
		project = value.(*domain.Project)
	}
	return project, args.Error(1)
}

func (m *projectServiceMock) GetOwnedProject(ctx context.Context, projectID, principalID int64) (*domain.Project, error) {
	args := m.Called(ctx, projectID, principalID)

	var project *domain.Project
	if value := args.Get(0); value != nil {
		project = value.(*domain.Project)
	}
	return project, args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, projectID, principalID int64) ([]domain.Task, error) {
	args := m.Called(ctx, projectID, principalID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput, principalID int64) (*domain.Task, error) {
	args := m.Called(ctx, input, principalID)

	var task *domain.Task
	if value := args.Get(0); value != nil {
		task = value.(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, taskID int64, patch domain.UpdateTaskInput, principalID int64) (*domain.Task, error) {
	args := m.Called(ctx, taskID, patch, principalID)

	var task *domain.Task
	if value := args.Get(0); value != nil {
		task = value.(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, taskID, principalID int64) error {
	args := m.Called(ctx, taskID, principalID)
	return args.Error(0)
}
