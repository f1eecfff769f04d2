package validation

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
	"taskboard/pkg/apierrors"
)

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, invalid(apierrors.MsgTitleRequired)
	}
	if err := checkText(title, titleRule, apierrors.MsgTitleTooLong); err != nil {
		return domain.CreateTaskInput{}, err
	}
	if err := checkOptionalText(req.Description, descriptionRule, apierrors.MsgDescriptionTooLong); err != nil {
		return domain.CreateTaskInput{}, err
	}

	input := domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
	}

	if req.Priority != nil {
		priority, ok := domain.ParsePriority(*req.Priority)
		if !ok {
			return domain.CreateTaskInput{}, invalid(apierrors.MsgInvalidPriority)
		}
		input.Priority = &priority
	}

	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, err
		}
		input.DueDate = dueDate
	}

	return input, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	var input domain.UpdateTaskInput

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateTaskInput{}, invalid(apierrors.MsgTitleRequired)
		}
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.UpdateTaskInput{}, invalid(apierrors.MsgTitleRequired)
		}
		if err := checkText(title, titleRule, apierrors.MsgTitleTooLong); err != nil {
			return domain.UpdateTaskInput{}, err
		}
		input.Title = &title
	}

	if hasJSONField(raw, "description") {
		if err := checkOptionalText(req.Description, descriptionRule, apierrors.MsgDescriptionTooLong); err != nil {
			return domain.UpdateTaskInput{}, err
		}
		input.DescriptionSet = true
		input.Description = req.Description
	}

	if hasJSONField(raw, "dueDate") {
		input.DueDateSet = true
		if req.DueDate != nil {
			dueDate, err := parseDueDate(*req.DueDate)
			if err != nil {
				return domain.UpdateTaskInput{}, err
			}
			input.DueDate = dueDate
		}
	}

	if hasJSONField(raw, "priority") {
		if req.Priority == nil {
			return domain.UpdateTaskInput{}, invalid(apierrors.MsgInvalidPriority)
		}
		priority, ok := domain.ParsePriority(*req.Priority)
		if !ok {
			return domain.UpdateTaskInput{}, invalid(apierrors.MsgInvalidPriority)
		}
		input.Priority = &priority
	}

	if hasJSONField(raw, "completed") {
		if req.Completed == nil {
			return domain.UpdateTaskInput{}, invalid(apierrors.MsgInvalidPayload)
		}
		input.Completed = req.Completed
	}

	return input, nil
}

func BuildListTasksQuery(req dto.ListTasksQuery) (domain.ListTasksQuery, error) {
	query := domain.ListTasksQuery{
		SortBy:    domain.ParseSortField(req.SortBy),
		SortOrder: domain.ParseSortOrder(req.SortOrder),
	}

	if req.Completed != nil && *req.Completed != "" {
		completed, err := strconv.ParseBool(*req.Completed)
		if err != nil {
			return domain.ListTasksQuery{}, invalid(apierrors.MsgInvalidCompletedFilter)
		}
		query.Completed = &completed
	}

	return query, nil
}

// parseDueDate accepts a calendar date or an RFC 3339 timestamp and keeps
// only the date part. An empty string clears the date.
func parseDueDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return nil, invalid(apierrors.MsgInvalidDueDate)
		}
	}

	year, month, day := parsed.Date()
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &date, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}
