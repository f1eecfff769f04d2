package domain

import (
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Priorities lists the accepted labels in declaration order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// ParsePriority normalizes a label case-insensitively.
func ParsePriority(value string) (Priority, bool) {
	candidate := Priority(strings.ToUpper(strings.TrimSpace(value)))
	for _, p := range Priorities {
		if p == candidate {
			return p, true
		}
	}
	return "", false
}

type Task struct {
	ID          uint64
	UserID      uint64
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    Priority
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    *Priority
}

// UpdateTaskInput carries one optional value per mutable attribute.
// Nil pointers leave the stored value untouched. Description and DueDate
// can also be cleared, which is what the *Set flags are for.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	DueDate        *time.Time
	DueDateSet     bool
	Priority       *Priority
	Completed      *bool
}

type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByDueDate   SortField = "dueDate"
	SortByPriority  SortField = "priority"
)

// ParseSortField falls back to createdAt for anything it does not know.
func ParseSortField(value string) SortField {
	switch SortField(value) {
	case SortByDueDate:
		return SortByDueDate
	case SortByPriority:
		return SortByPriority
	default:
		return SortByCreatedAt
	}
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder falls back to desc for anything other than asc.
func ParseSortOrder(value string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(value), string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

type ListTasksQuery struct {
	SortBy    SortField
	SortOrder SortOrder
	Completed *bool
}

type TaskStats struct {
	Total     int
	Completed int
	Pending   int
}
