package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"taskboard/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) ListByOwner(ctx context.Context, ownerID uint64, query domain.ListTasksQuery) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID, query)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) GetByOwner(ctx context.Context, ownerID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, ownerID, taskID uint64, changes domain.UpdateTaskInput, updatedAt time.Time) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID, changes, updatedAt)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) DeleteByOwner(ctx context.Context, ownerID, taskID uint64) error {
	return m.Called(ctx, ownerID, taskID).Error(0)
}

func (m *taskRepositoryMock) CountByOwner(ctx context.Context, ownerID uint64) (domain.TaskStats, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(domain.TaskStats), args.Error(1)
}

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) FindByID(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

// plainHasher keeps tests fast; it is obviously not a real hash.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (plainHasher) Verify(hash, password string) bool    { return hash == "hashed:"+password }

type recorderMock struct {
	mock.Mock
}

func (m *recorderMock) AuthEvent(event, result string) { m.Called(event, result) }
func (m *recorderMock) TaskMutation(op string)         { m.Called(op) }
