package ports

import (
	"context"
	"time"

	"taskboard/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	ListByOwner(ctx context.Context, ownerID uint64, query domain.ListTasksQuery) ([]domain.Task, error)
	GetByOwner(ctx context.Context, ownerID, taskID uint64) (domain.Task, error)
	// Update writes only the attributes present in changes and stamps
	// updatedAt. It returns domain.ErrTaskNotFound for tasks ownerID does
	// not own.
	Update(ctx context.Context, ownerID, taskID uint64, changes domain.UpdateTaskInput, updatedAt time.Time) (domain.Task, error)
	DeleteByOwner(ctx context.Context, ownerID, taskID uint64) error
	CountByOwner(ctx context.Context, ownerID uint64) (domain.TaskStats, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, ownerID uint64, input domain.CreateTaskInput) (domain.Task, error)
	ListTasks(ctx context.Context, ownerID uint64, query domain.ListTasksQuery) ([]domain.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID uint64) error
	TaskStats(ctx context.Context, ownerID uint64) (domain.TaskStats, error)
}
