package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	recorder       ports.EventRecorder
	now            func() time.Time
}

func NewTaskService(taskRepository ports.TaskRepository, recorder ports.EventRecorder) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		recorder:       recorderOrNoop(recorder),
		now:            time.Now,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Task{}, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	priority := domain.PriorityMedium
	if input.Priority != nil {
		priority = *input.Priority
	}

	now := s.timestamp()
	task, err := s.taskRepository.Create(ctx, domain.Task{
		UserID:      ownerID,
		Title:       title,
		Description: trimOptional(input.Description),
		DueDate:     input.DueDate,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return domain.Task{}, err
	}

	s.recorder.TaskMutation("create")
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID uint64, query domain.ListTasksQuery) ([]domain.Task, error) {
	query.SortBy = domain.ParseSortField(string(query.SortBy))
	query.SortOrder = domain.ParseSortOrder(string(query.SortOrder))
	return s.taskRepository.ListByOwner(ctx, ownerID, query)
}

func (s *TaskService) UpdateTask(ctx context.Context, ownerID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	current, err := s.taskRepository.GetByOwner(ctx, ownerID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	changes, err := normalizeChanges(input)
	if err != nil {
		return domain.Task{}, err
	}

	// updatedAt must move forward even when two writes land in the same tick.
	updatedAt := s.timestamp()
	if !updatedAt.After(current.UpdatedAt) {
		updatedAt = current.UpdatedAt.Add(time.Microsecond)
	}

	task, err := s.taskRepository.Update(ctx, ownerID, taskID, changes, updatedAt)
	if err != nil {
		return domain.Task{}, err
	}

	s.recorder.TaskMutation("update")
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID uint64) error {
	if err := s.taskRepository.DeleteByOwner(ctx, ownerID, taskID); err != nil {
		return err
	}
	s.recorder.TaskMutation("delete")
	return nil
}

func (s *TaskService) TaskStats(ctx context.Context, ownerID uint64) (domain.TaskStats, error) {
	return s.taskRepository.CountByOwner(ctx, ownerID)
}

// timestamp is truncated to the precision both supported databases keep.
func (s *TaskService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// normalizeChanges trims the supplied text attributes. Only the attributes
// present in input reach the store.
func normalizeChanges(input domain.UpdateTaskInput) (domain.UpdateTaskInput, error) {
	changes := input

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return domain.UpdateTaskInput{}, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
		}
		changes.Title = &title
	}
	if input.DescriptionSet || input.Description != nil {
		changes.Description = trimOptional(input.Description)
		changes.DescriptionSet = true
	}
	if input.DueDate != nil {
		changes.DueDateSet = true
	}

	return changes, nil
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

var _ ports.TaskService = (*TaskService)(nil)
