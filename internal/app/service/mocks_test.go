package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taskboard/internal/core/domain"
	"taskboard/pkg/token"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)

	var user *domain.User
	if value := args.Get(0); value != nil {
		user = value.(*domain.User)
	}
	return user, args.Error(1)
}

func (m *userRepositoryMock) CreateUser(ctx context.Context, email, passwordHash, name string) (*domain.User, error) {
	args := m.Called(ctx, email, passwordHash, name)

	var user *domain.User
	if value := args.Get(0); value != nil {
		user = value.(*domain.User)
	}
	return user, args.Error(1)
}

type tokenManagerMock struct {
	mock.Mock
}

func (m *tokenManagerMock) Issue(userID int64, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func (m *tokenManagerMock) Verify(raw string) (*token.Claims, error) {
	args := m.Called(raw)

	var claims *token.Claims
	if value := args.Get(0); value != nil {
		claims = value.(*token.Claims)
	}
	return claims, args.Error(1)
}

type projectRepositoryMock struct {
	mock.Mock
}

func (m *projectRepositoryMock) FindAllByOwner(ctx context.Context, ownerID int64) ([]domain.Project, error) {
	args := m.Called(ctx, ownerID)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectRepositoryMock) FindByID(ctx context.Context, projectID int64) (*domain.Project, error) {
	args := m.Called(ctx, projectID)

	var project *domain.Project
	if value := args.Get(0); value != nil {
		project = value.(*domain.Project)
	}
	return project, args.Error(1)
}

func (m *projectRepositoryMock) CreateProject(ctx context.Context, input domain.CreateProjectInput, ownerID int64) (*domain.Project, error) {
	args := m.Called(ctx, input, ownerID)

	var project *domain.Project
	if value := args.Get(0); value != nil {
		project = value.(*domain.Project)
	}
	return project, args.Error(1)
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

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	args := m.Called(ctx, projectID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListColumn(ctx context.Context, projectID int64, status domain.TaskStatus) ([]domain.Task, error) {
	args := m.Called(ctx, projectID, status)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) FindByID(ctx context.Context, taskID int64) (*domain.TaskWithOwner, error) {
	args := m.Called(ctx, taskID)

	var task *domain.TaskWithOwner
	if value := args.Get(0); value != nil {
		task = value.(*domain.TaskWithOwner)
	}
	return task, args.Error(1)
}

func (m *taskRepositoryMock) CreateTask(ctx context.Context, input domain.CreateTaskInput, position int) (*domain.Task, error) {
	args := m.Called(ctx, input, position)

	var task *domain.Task
	if value := args.Get(0); value != nil {
		task = value.(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskRepositoryMock) UpdateTask(ctx context.Context, taskID int64, patch domain.UpdateTaskInput, reorders []domain.ColumnOrder) (*domain.Task, error) {
	args := m.Called(ctx, taskID, patch, reorders)

	var task *domain.Task
	if value := args.Get(0); value != nil {
		task = value.(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskRepositoryMock) DeleteTask(ctx context.Context, taskID int64, reorder domain.ColumnOrder) error {
	args := m.Called(ctx, taskID, reorder)
	return args.Error(0)
}
