package mapper

import (
	"time"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

const DateLayout = "2006-01-02"

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Priority:  string(task.Priority),
		Completed: task.Completed,
		CreatedAt: task.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: task.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(DateLayout)
		item.DueDate = &value
	}

	return item
}

func ToTaskStats(stats domain.TaskStats) dto.TaskStats {
	return dto.TaskStats{
		Total:     stats.Total,
		Completed: stats.Completed,
		Pending:   stats.Pending,
	}
}

func ToUserItem(user domain.User) dto.UserItem {
	item := dto.UserItem{
		ID:    user.ID,
		Email: user.Email,
	}

	if user.Name != nil {
		value := *user.Name
		item.Name = &value
	}

	if !user.CreatedAt.IsZero() {
		item.CreatedAt = user.CreatedAt.UTC().Format(time.RFC3339)
	}

	return item
}
